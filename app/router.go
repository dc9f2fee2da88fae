package app

import (
	"fmt"
	"regexp"

	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
)

// isPath ensures the routes look like "extension/operation".
var isPath = regexp.MustCompile(`^[a-z]+(/[a-z_]+)?$`).MatchString

// Router allows us to register many handlers, each one handling the
// messages of one path.
type Router struct {
	handlers map[string]tide.Handler
}

var _ tide.Registry = (*Router)(nil)
var _ tide.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]tide.Handler),
	}
}

// Handle implements the tide.Registry interface. Registering a second
// handler for the same message path panics, as that is a programmer
// error during application construction.
func (r *Router) Handle(m tide.Msg, h tide.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid message path %q", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("double registration of %q", path))
	}
	r.handlers[path] = h
}

// Check dispatches to the proper handler based on the message path.
func (r *Router) Check(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.CheckResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on the message path.
func (r *Router) Deliver(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.DeliverResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, store, tx)
}

func (r *Router) handler(tx tide.Tx) (tide.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	h, ok := r.handlers[msg.Path()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", msg.Path())
	}
	return h, nil
}
