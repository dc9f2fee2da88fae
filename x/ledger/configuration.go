package ledger

import (
	"fmt"

	"github.com/tideledger/tide/errors"
	"github.com/tideledger/tide/gconf"
)

var _ gconf.Configuration = (*Configuration)(nil)

// Validate ensures the configuration is complete.
func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	if len(c.Minters) == 0 {
		errs = errors.AppendField(errs, "Minters", errors.ErrEmpty)
	}
	for i, m := range c.Minters {
		errs = errors.AppendField(errs, fmt.Sprintf("Minters.%d", i), m.Validate())
	}
	return errs
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "ledger", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
