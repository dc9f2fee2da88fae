package bridge

import (
	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
	"github.com/tideledger/tide/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ tide.Initializer = (*Initializer)(nil)

// FromGenesis will parse the bridge configuration and initial domain
// pairings from the genesis and save them to the database.
func (*Initializer) FromGenesis(opts tide.Options, db tide.KVStore) error {
	if err := gconf.InitConfig(db, opts, "bridge", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var domains []struct {
		DomainID string `json:"domain_id"`
		Adapter  []byte `json:"adapter"`
		TokenID  string `json:"token_id"`
	}
	if err := opts.ReadOptions("bridge", &domains); err != nil {
		return errors.Wrap(err, "read domains")
	}
	bucket := NewDomainBucket()
	for i, d := range domains {
		domain := RemoteDomain{
			DomainId: d.DomainID,
			Adapter:  d.Adapter,
			TokenId:  d.TokenID,
		}
		if err := bucket.Put(db, []byte(d.DomainID), &domain); err != nil {
			return errors.Wrapf(err, "save domain #%d", i)
		}
	}
	return nil
}
