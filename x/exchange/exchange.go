package exchange

import (
	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
)

// ErrPayoutFailed is returned when a withdrawal burned the ledger value
// but the base asset could not be released to the holder.
var ErrPayoutFailed = errors.Register(1020, "payout failed")

// Exchanger is implemented by the base asset wrapper.
type Exchanger interface {
	// Deposit accepts a base asset deposit and mints the equivalent
	// ledger value to the holder at the ledger's current default rate.
	Deposit(db tide.KVStore, holder tide.Address, amount uint64, now tide.UnixTime) error

	// Withdraw burns ledger value of the holder and releases the
	// equivalent base asset. Passing the maximum uint64 amount redeems
	// the full current balance. The amount released is returned.
	// A failure to release the base asset after a successful burn is
	// reported as ErrPayoutFailed.
	Withdraw(db tide.KVStore, holder tide.Address, amount uint64, now tide.UnixTime) (uint64, error)
}
