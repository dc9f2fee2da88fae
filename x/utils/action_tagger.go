package utils

import (
	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
)

// ActionKey is the tag key under which the message path is reported.
const ActionKey = "action"

// ActionTagger appends a tag to every successful delivery, with the path
// of the executed message, so clients can subscribe by action.
type ActionTagger struct{}

var _ tide.Decorator = ActionTagger{}

// NewActionTagger creates an ActionTagger decorator.
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check passes the request through untouched.
func (ActionTagger) Check(ctx tide.Context, store tide.KVStore, tx tide.Tx, next tide.Checker) (*tide.CheckResult, error) {
	return next.Check(ctx, store, tx)
}

// Deliver appends the action tag on success.
func (ActionTagger) Deliver(ctx tide.Context, store tide.KVStore, tx tide.Tx, next tide.Deliverer) (*tide.DeliverResult, error) {
	res, err := next.Deliver(ctx, store, tx)
	if err != nil {
		return res, err
	}
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	res.Tags = append(res.Tags, tide.Pair(ActionKey, msg.Path()))
	return res, nil
}
