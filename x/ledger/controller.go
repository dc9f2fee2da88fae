package ledger

import (
	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
	"github.com/tideledger/tide/gconf"
	"github.com/tideledger/tide/orm"
)

// Controller is the functionality of the ledger that other extensions can
// safely depend on. It moves and inspects value without going through the
// message handlers, so the caller is responsible for authorization.
type Controller interface {
	// Balance returns the current balance of the holder, including the
	// growth accrued since the last settlement. An unknown holder has a
	// zero balance.
	Balance(db tide.ReadOnlyKVStore, holder tide.Address, now tide.UnixTime) (uint64, error)

	// Principal returns the balance of the holder as it was last
	// settled, excluding any pending growth.
	Principal(db tide.ReadOnlyKVStore, holder tide.Address) (uint64, error)

	// Rate returns the personal accrual rate of the holder.
	Rate(db tide.ReadOnlyKVStore, holder tide.Address) (uint64, error)

	// DefaultRate returns the rate currently assigned to fresh deposits.
	DefaultRate(db tide.ReadOnlyKVStore) (uint64, error)

	// Mint issues the given amount to the destination and imposes the
	// given rate on the whole account, also when the account was funded
	// before.
	Mint(db tide.KVStore, dest tide.Address, amount, rate uint64, now tide.UnixTime) error

	// Burn destroys the given amount of the source account balance.
	// Passing EntireBalance destroys the full current balance. The
	// amount destroyed is returned.
	Burn(db tide.KVStore, src tide.Address, amount uint64, now tide.UnixTime) (uint64, error)

	// Move transfers the given amount from the source to the
	// destination. Passing EntireBalance moves the full current balance
	// of the source. The amount moved is returned.
	Move(db tide.KVStore, src, dest tide.Address, amount uint64, now tide.UnixTime) (uint64, error)

	// SetDefaultRate lowers the default rate. A rate that is not
	// strictly below the current one is rejected with ErrRateIncrease.
	SetDefaultRate(db tide.KVStore, rate uint64) error
}

// NewController returns a controller operating on the default account
// bucket.
func NewController() Controller {
	return &controller{bucket: NewAccountBucket()}
}

type controller struct {
	bucket orm.ModelBucket
}

var _ Controller = (*controller)(nil)

// account loads the account of the holder. A missing account is returned
// as an empty one, as the two cannot be told apart by their behaviour.
func (c *controller) account(db tide.ReadOnlyKVStore, holder tide.Address) (*Account, error) {
	var acct Account
	switch err := c.bucket.One(db, holder, &acct); {
	case err == nil:
		return &acct, nil
	case errors.ErrNotFound.Is(err):
		return &Account{}, nil
	default:
		return nil, errors.Wrap(err, "bucket one")
	}
}

func (c *controller) Balance(db tide.ReadOnlyKVStore, holder tide.Address, now tide.UnixTime) (uint64, error) {
	acct, err := c.account(db, holder)
	if err != nil {
		return 0, err
	}
	return acct.BalanceAt(now)
}

func (c *controller) Principal(db tide.ReadOnlyKVStore, holder tide.Address) (uint64, error) {
	acct, err := c.account(db, holder)
	if err != nil {
		return 0, err
	}
	return acct.Principal, nil
}

func (c *controller) Rate(db tide.ReadOnlyKVStore, holder tide.Address) (uint64, error) {
	acct, err := c.account(db, holder)
	if err != nil {
		return 0, err
	}
	return acct.Rate, nil
}

func (c *controller) DefaultRate(db tide.ReadOnlyKVStore) (uint64, error) {
	conf, err := loadConf(db)
	if err != nil {
		return 0, err
	}
	return conf.DefaultRate, nil
}

func (c *controller) Mint(db tide.KVStore, dest tide.Address, amount, rate uint64, now tide.UnixTime) error {
	acct, err := c.account(db, dest)
	if err != nil {
		return err
	}
	if err := acct.Settle(now); err != nil {
		return errors.Wrap(err, "settle")
	}
	// Minting imposes the rate unconditionally. A repeated deposit
	// refreshes the whole account to the new rate.
	acct.Rate = rate
	total := acct.Principal + amount
	if total < acct.Principal {
		return errors.Wrap(errors.ErrOverflow, "principal")
	}
	acct.Principal = total
	return c.bucket.Put(db, dest, acct)
}

func (c *controller) Burn(db tide.KVStore, src tide.Address, amount uint64, now tide.UnixTime) (uint64, error) {
	acct, err := c.account(db, src)
	if err != nil {
		return 0, err
	}
	if err := acct.Settle(now); err != nil {
		return 0, errors.Wrap(err, "settle")
	}
	if amount == EntireBalance {
		amount = acct.Principal
	}
	if amount > acct.Principal {
		return 0, errors.Wrapf(errors.ErrInsufficientAmount, "burn %d of %d", amount, acct.Principal)
	}
	acct.Principal -= amount
	if err := c.bucket.Put(db, src, acct); err != nil {
		return 0, err
	}
	return amount, nil
}

func (c *controller) Move(db tide.KVStore, src, dest tide.Address, amount uint64, now tide.UnixTime) (uint64, error) {
	if src.Equals(dest) {
		return 0, errors.Wrap(errors.ErrInput, "send to self")
	}
	sender, err := c.account(db, src)
	if err != nil {
		return 0, err
	}
	if err := sender.Settle(now); err != nil {
		return 0, errors.Wrap(err, "settle sender")
	}
	if amount == EntireBalance {
		amount = sender.Principal
	}
	if amount > sender.Principal {
		return 0, errors.Wrapf(errors.ErrInsufficientAmount, "send %d of %d", amount, sender.Principal)
	}
	receiver, err := c.account(db, dest)
	if err != nil {
		return 0, err
	}
	if err := receiver.Settle(now); err != nil {
		return 0, errors.Wrap(err, "settle receiver")
	}
	if receiver.Principal == 0 {
		// An empty receiver accrues with the rate of the sender from
		// now on. A funded receiver keeps its own rate, so that a
		// sender cannot overwrite it with a transfer.
		receiver.Rate = sender.Rate
	}
	total := receiver.Principal + amount
	if total < receiver.Principal {
		return 0, errors.Wrap(errors.ErrOverflow, "principal")
	}
	sender.Principal -= amount
	receiver.Principal = total
	if err := c.bucket.Put(db, src, sender); err != nil {
		return 0, err
	}
	if err := c.bucket.Put(db, dest, receiver); err != nil {
		return 0, err
	}
	return amount, nil
}

func (c *controller) SetDefaultRate(db tide.KVStore, rate uint64) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if rate >= conf.DefaultRate {
		return errors.Wrapf(ErrRateIncrease, "%d is not below %d", rate, conf.DefaultRate)
	}
	conf.DefaultRate = rate
	return gconf.Save(db, "ledger", conf)
}
