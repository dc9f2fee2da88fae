package utils

import (
	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
)

// Savepoint wraps the execution in a cached store. The writes are only
// flushed to the parent store when the execution succeeds, so a failing
// transaction leaves no partial state behind.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ tide.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator. Use OnCheck and OnDeliver
// to activate it for the desired execution modes.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a copy that is active on Check.
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver returns a copy that is active on Deliver.
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

// Check implements the tide.Decorator interface.
func (s Savepoint) Check(ctx tide.Context, store tide.KVStore, tx tide.Tx, next tide.Checker) (*tide.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, store, tx)
	}
	cstore, ok := store.(tide.CacheableKVStore)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "store cannot be cache wrapped")
	}
	cache := cstore.CacheWrap()
	res, err := next.Check(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return res, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write cache")
	}
	return res, nil
}

// Deliver implements the tide.Decorator interface.
func (s Savepoint) Deliver(ctx tide.Context, store tide.KVStore, tx tide.Tx, next tide.Deliverer) (*tide.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, store, tx)
	}
	cstore, ok := store.(tide.CacheableKVStore)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "store cannot be cache wrapped")
	}
	cache := cstore.CacheWrap()
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return res, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write cache")
	}
	return res, nil
}
