package utils

import (
	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
)

// Recovery is a decorator to recover from panics in transactions, so we
// can return an error instead of taking the process down.
type Recovery struct{}

var _ tide.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator.
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors.
func (r Recovery) Check(ctx tide.Context, store tide.KVStore, tx tide.Tx, next tide.Checker) (res *tide.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors.
func (r Recovery) Deliver(ctx tide.Context, store tide.KVStore, tx tide.Tx, next tide.Deliverer) (res *tide.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
