package ledger

import (
	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
)

const maxMemoSize = 128

var (
	_ tide.Msg = (*MintMsg)(nil)
	_ tide.Msg = (*BurnMsg)(nil)
	_ tide.Msg = (*SendMsg)(nil)
	_ tide.Msg = (*SetDefaultRateMsg)(nil)
)

// Path implements tide.Msg interface.
func (MintMsg) Path() string {
	return "ledger/mint"
}

// Validate implements tide.Msg interface.
func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Dest", m.Dest.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	return errs
}

// Path implements tide.Msg interface.
func (BurnMsg) Path() string {
	return "ledger/burn"
}

// Validate implements tide.Msg interface.
func (m *BurnMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Src", m.Src.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	return errs
}

// Path implements tide.Msg interface.
func (SendMsg) Path() string {
	return "ledger/send"
}

// Validate implements tide.Msg interface.
func (m *SendMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Src", m.Src.Validate())
	errs = errors.AppendField(errs, "Dest", m.Dest.Validate())
	if m.Src.Equals(m.Dest) {
		errs = errors.AppendField(errs, "Dest", errors.ErrInput)
	}
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	if len(m.Memo) > maxMemoSize {
		errs = errors.AppendField(errs, "Memo", errors.ErrInput)
	}
	return errs
}

// Path implements tide.Msg interface.
func (SetDefaultRateMsg) Path() string {
	return "ledger/set_default_rate"
}

// Validate implements tide.Msg interface.
func (m *SetDefaultRateMsg) Validate() error {
	// Whether the rate is low enough can only be decided against the
	// current configuration, which happens in the handler.
	return nil
}
