package app

import (
	"github.com/tideledger/tide"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler.
type Decorators struct {
	chain []tide.Decorator
}

// ChainDecorators takes a chain of decorators. Upon adding a final
// Handler, often a Router, it returns a Handler that will execute the
// whole stack.
//
//   app.ChainDecorators(
//     utils.NewLogging(),
//     utils.NewRecovery(),
//     utils.NewSavepoint().OnDeliver(),
//   ).WithHandler(
//     router,
//   )
func ChainDecorators(chain ...tide.Decorator) Decorators {
	return Decorators{chain: cutoffNil(chain)}
}

// Chain appends more decorators to the stack.
func (d Decorators) Chain(chain ...tide.Decorator) Decorators {
	return Decorators{chain: append(d.chain, cutoffNil(chain)...)}
}

// WithHandler resolves the stack with a final handler.
func (d Decorators) WithHandler(h tide.Handler) tide.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = decoratedHandler{d: d.chain[i], next: h}
	}
	return h
}

func cutoffNil(chain []tide.Decorator) []tide.Decorator {
	res := make([]tide.Decorator, 0, len(chain))
	for _, d := range chain {
		if d != nil {
			res = append(res, d)
		}
	}
	return res
}

type decoratedHandler struct {
	d    tide.Decorator
	next tide.Handler
}

var _ tide.Handler = decoratedHandler{}

func (h decoratedHandler) Check(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.CheckResult, error) {
	return h.d.Check(ctx, store, tx, h.next)
}

func (h decoratedHandler) Deliver(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.DeliverResult, error) {
	return h.d.Deliver(ctx, store, tx, h.next)
}
