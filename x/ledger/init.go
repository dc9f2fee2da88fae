package ledger

import (
	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
	"github.com/tideledger/tide/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ tide.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial configuration and accounts from the
// genesis and save it to the database.
func (*Initializer) FromGenesis(opts tide.Options, db tide.KVStore) error {
	if err := gconf.InitConfig(db, opts, "ledger", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var accounts []struct {
		Address   tide.Address  `json:"address"`
		Principal uint64        `json:"principal"`
		Rate      uint64        `json:"rate"`
		Since     tide.UnixTime `json:"since"`
	}
	if err := opts.ReadOptions("ledger", &accounts); err != nil {
		return errors.Wrap(err, "read accounts")
	}
	bucket := NewAccountBucket()
	for i, a := range accounts {
		if err := a.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d address", i)
		}
		acct := Account{
			Principal:  a.Principal,
			Rate:       a.Rate,
			LastUpdate: a.Since,
		}
		if err := bucket.Put(db, a.Address, &acct); err != nil {
			return errors.Wrapf(err, "save account #%d", i)
		}
	}
	return nil
}
