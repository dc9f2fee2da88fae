package ledger

import (
	"math"
	"math/big"

	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
	"github.com/tideledger/tide/orm"
)

const (
	// Precision is the scale of the fixed point accrual rates. A rate of
	// Precision doubles the principal after one second.
	Precision uint64 = 1e18

	// EntireBalance is an amount sentinel. Burn and send operations
	// replace it with the full current balance of the source account, so
	// that no dust is left behind when redeeming everything.
	EntireBalance uint64 = math.MaxUint64
)

var precision = new(big.Int).SetUint64(Precision)

var _ orm.Model = (*Account)(nil)

// Validate ensures the account is sane to be persisted.
func (a *Account) Validate() error {
	var errs error
	if a.LastUpdate < 0 {
		errs = errors.AppendField(errs, "LastUpdate", errors.ErrState)
	}
	return errs
}

// BalanceAt returns the balance of the account at the given moment,
// including the growth accrued since the last settlement. The result is
// rounded down. An account with a zero principal has a zero balance no
// matter its rate or age.
func (a *Account) BalanceAt(now tide.UnixTime) (uint64, error) {
	if a.Principal == 0 {
		return 0, nil
	}
	elapsed := int64(now) - int64(a.LastUpdate)
	if elapsed <= 0 || a.Rate == 0 {
		return a.Principal, nil
	}
	growth := new(big.Int).SetUint64(a.Rate)
	growth.Mul(growth, big.NewInt(elapsed))
	growth.Add(growth, precision)
	total := new(big.Int).SetUint64(a.Principal)
	total.Mul(total, growth)
	total.Quo(total, precision)
	if !total.IsUint64() {
		return 0, errors.Wrap(errors.ErrOverflow, "balance")
	}
	return total.Uint64(), nil
}

// Settle folds the growth accrued until the given moment into the
// principal and resets the accrual clock. Settling twice at the same
// moment adds nothing on the second call.
func (a *Account) Settle(now tide.UnixTime) error {
	if now < a.LastUpdate {
		return errors.Wrapf(errors.ErrState, "settled at %s, now is %s", a.LastUpdate, now)
	}
	total, err := a.BalanceAt(now)
	if err != nil {
		return err
	}
	a.Principal = total
	a.LastUpdate = now
	return nil
}

// NewAccountBucket returns a bucket for keeping accounts. An account is
// keyed by the address of the holder.
func NewAccountBucket() orm.ModelBucket {
	return orm.NewModelBucket("acct", &Account{})
}
