package ledger

import (
	"github.com/tideledger/tide/errors"
)

// ErrRateIncrease is returned when a change of the default rate would not
// lower it. The default rate may only ever decrease.
var ErrRateIncrease = errors.Register(1000, "rate must decrease")
