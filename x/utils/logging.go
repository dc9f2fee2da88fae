package utils

import (
	"time"

	"github.com/tideledger/tide"
)

// Logging is a decorator to log messages as they pass through.
type Logging struct{}

var _ tide.Decorator = Logging{}

// NewLogging creates a Logging decorator.
func NewLogging() Logging {
	return Logging{}
}

// Check logs error/success and the duration of the call.
func (l Logging) Check(ctx tide.Context, store tide.KVStore, tx tide.Tx, next tide.Checker) (*tide.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	l.log("Check", start, ctx, tx, err)
	return res, err
}

// Deliver logs error/success and the duration of the call.
func (l Logging) Deliver(ctx tide.Context, store tide.KVStore, tx tide.Tx, next tide.Deliverer) (*tide.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	l.log("Deliver", start, ctx, tx, err)
	return res, err
}

func (l Logging) log(kind string, start time.Time, ctx tide.Context, tx tide.Tx, err error) {
	logger := tide.GetLogger(ctx).With("duration", micros(time.Since(start)))
	if tx != nil {
		logger = logger.With("path", tide.GetPath(tx))
	}
	if err != nil {
		logger.With("err", err).Error(kind)
	} else {
		logger.Info(kind)
	}
}

// micros returns the duration in microseconds.
func micros(d time.Duration) int64 {
	return int64(d / time.Microsecond)
}
