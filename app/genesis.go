package app

import (
	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
)

// ChainInitializers combines many initializers into one. They are
// executed in the given order.
func ChainInitializers(inits ...tide.Initializer) tide.Initializer {
	return chainInitializer{inits: inits}
}

type chainInitializer struct {
	inits []tide.Initializer
}

// FromGenesis will pass opts to all the initializers in the chain and
// stop at the first error.
func (c chainInitializer) FromGenesis(opts tide.Options, db tide.KVStore) error {
	for _, i := range c.inits {
		if i == nil {
			continue
		}
		if err := i.FromGenesis(opts, db); err != nil {
			return errors.Wrapf(err, "initializer %T", i)
		}
	}
	return nil
}
