package bridge

import (
	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
)

var (
	_ tide.Msg = (*RegisterDomainMsg)(nil)
	_ tide.Msg = (*ExportMsg)(nil)
	_ tide.Msg = (*ImportMsg)(nil)
)

// Path implements tide.Msg interface.
func (RegisterDomainMsg) Path() string {
	return "bridge/register_domain"
}

// Validate implements tide.Msg interface.
func (m *RegisterDomainMsg) Validate() error {
	var errs error
	if m.DomainId == "" {
		errs = errors.AppendField(errs, "DomainId", errors.ErrEmpty)
	}
	if len(m.Adapter) == 0 {
		errs = errors.AppendField(errs, "Adapter", errors.ErrEmpty)
	}
	if m.TokenId == "" {
		errs = errors.AppendField(errs, "TokenId", errors.ErrEmpty)
	}
	if m.RateLimit != nil {
		errs = errors.AppendField(errs, "RateLimit.Period", m.RateLimit.Period.Validate())
	}
	return errs
}

// Path implements tide.Msg interface.
func (ExportMsg) Path() string {
	return "bridge/export"
}

// Validate implements tide.Msg interface.
func (m *ExportMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Src", m.Src.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	if m.RemoteDomain == "" {
		errs = errors.AppendField(errs, "RemoteDomain", errors.ErrEmpty)
	}
	return errs
}

// Path implements tide.Msg interface.
func (ImportMsg) Path() string {
	return "bridge/import"
}

// Validate implements tide.Msg interface.
func (m *ImportMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Dest", m.Dest.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	if len(m.Payload) == 0 {
		errs = errors.AppendField(errs, "Payload", errors.ErrEmpty)
	}
	if m.SourceDomain == "" {
		errs = errors.AppendField(errs, "SourceDomain", errors.ErrEmpty)
	}
	return errs
}
