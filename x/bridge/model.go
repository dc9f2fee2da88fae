package bridge

import (
	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
	"github.com/tideledger/tide/gconf"
	"github.com/tideledger/tide/orm"
)

var _ orm.Model = (*RemoteDomain)(nil)

// Validate ensures the remote domain registration is complete.
func (d *RemoteDomain) Validate() error {
	var errs error
	if d.DomainId == "" {
		errs = errors.AppendField(errs, "DomainId", errors.ErrEmpty)
	}
	if len(d.Adapter) == 0 {
		errs = errors.AppendField(errs, "Adapter", errors.ErrEmpty)
	}
	if d.TokenId == "" {
		errs = errors.AppendField(errs, "TokenId", errors.ErrEmpty)
	}
	if d.RateLimit != nil {
		errs = errors.AppendField(errs, "RateLimit.Period", d.RateLimit.Period.Validate())
	}
	return errs
}

// NewDomainBucket returns a bucket for keeping remote domain
// registrations, keyed by the domain identifier.
func NewDomainBucket() orm.ModelBucket {
	return orm.NewModelBucket("domain", &RemoteDomain{})
}

// loadDomain returns the registration of the remote domain, or
// ErrUnknownDomain when there is none.
func loadDomain(db tide.ReadOnlyKVStore, bucket orm.ModelBucket, domainID string) (*RemoteDomain, error) {
	var domain RemoteDomain
	switch err := bucket.One(db, []byte(domainID), &domain); {
	case err == nil:
		return &domain, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(ErrUnknownDomain, domainID)
	default:
		return nil, errors.Wrap(err, "bucket one")
	}
}

var _ gconf.Configuration = (*Configuration)(nil)

// Validate ensures the configuration is complete.
func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	errs = errors.AppendField(errs, "Relay", c.Relay.Validate())
	return errs
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "bridge", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
