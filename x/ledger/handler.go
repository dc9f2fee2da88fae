package ledger

import (
	"strconv"

	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
	"github.com/tideledger/tide/x"
)

const (
	mintCost int64 = 100
	burnCost int64 = 100
	sendCost int64 = 100
	confCost int64 = 50
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r tide.Registry, auth x.Authenticator, control Controller) {
	r.Handle(&MintMsg{}, MintHandler{auth: auth, control: control})
	r.Handle(&BurnMsg{}, BurnHandler{auth: auth, control: control})
	r.Handle(&SendMsg{}, SendHandler{auth: auth, control: control})
	r.Handle(&SetDefaultRateMsg{}, SetDefaultRateHandler{auth: auth, control: control})
}

// blockNow returns the current block time as the ledger clock.
func blockNow(ctx tide.Context) (tide.UnixTime, error) {
	t, err := tide.BlockTime(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "block time")
	}
	return tide.AsUnixTime(t), nil
}

// MintHandler issues new value. Only a configured minter can execute it.
type MintHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ tide.Handler = MintHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h MintHandler) Check(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.CheckResult, error) {
	if _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &tide.CheckResult{GasAllocated: mintCost}, nil
}

// Deliver issues the amount to the destination account.
func (h MintHandler) Deliver(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.DeliverResult, error) {
	msg, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.control.Mint(store, msg.Dest, msg.Amount, msg.Rate, now); err != nil {
		return nil, errors.Wrap(err, "mint")
	}
	res := tide.DeliverResult{}
	res.Tags = append(res.Tags,
		tide.Pair("mint:dest", msg.Dest.String()),
		tide.Pair("mint:amount", strconv.FormatUint(msg.Amount, 10)),
	)
	return &res, nil
}

func (h MintHandler) validate(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*MintMsg, error) {
	var msg MintMsg
	if err := tide.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(store)
	if err != nil {
		return nil, err
	}
	if !x.HasAnyAddress(ctx, h.auth, conf.Minters) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "not a minter")
	}
	return &msg, nil
}

// BurnHandler destroys value. Only a configured minter can execute it.
type BurnHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ tide.Handler = BurnHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h BurnHandler) Check(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.CheckResult, error) {
	if _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &tide.CheckResult{GasAllocated: burnCost}, nil
}

// Deliver destroys the amount, or the whole balance when the amount is
// the EntireBalance sentinel.
func (h BurnHandler) Deliver(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.DeliverResult, error) {
	msg, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := h.control.Burn(store, msg.Src, msg.Amount, now); err != nil {
		return nil, errors.Wrap(err, "burn")
	}
	return &tide.DeliverResult{}, nil
}

func (h BurnHandler) validate(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*BurnMsg, error) {
	var msg BurnMsg
	if err := tide.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(store)
	if err != nil {
		return nil, err
	}
	if !x.HasAnyAddress(ctx, h.auth, conf.Minters) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "not a minter")
	}
	return &msg, nil
}

// SendHandler moves value between accounts. The transaction must be
// authorized by the source account.
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ tide.Handler = SendHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h SendHandler) Check(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.CheckResult, error) {
	if _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &tide.CheckResult{GasAllocated: sendCost}, nil
}

// Deliver moves the amount, or the whole balance when the amount is the
// EntireBalance sentinel, from the source to the destination.
func (h SendHandler) Deliver(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.DeliverResult, error) {
	msg, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := h.control.Move(store, msg.Src, msg.Dest, msg.Amount, now); err != nil {
		return nil, errors.Wrap(err, "send")
	}
	return &tide.DeliverResult{}, nil
}

func (h SendHandler) validate(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := tide.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Src) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no authority over the source account")
	}
	return &msg, nil
}

// SetDefaultRateHandler lowers the ledger default rate. Only the
// configuration owner can execute it.
type SetDefaultRateHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ tide.Handler = SetDefaultRateHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h SetDefaultRateHandler) Check(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.CheckResult, error) {
	if _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &tide.CheckResult{GasAllocated: confCost}, nil
}

// Deliver updates the default rate. Raising it is rejected.
func (h SetDefaultRateHandler) Deliver(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.DeliverResult, error) {
	msg, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.SetDefaultRate(store, msg.Rate); err != nil {
		return nil, errors.Wrap(err, "set default rate")
	}
	return &tide.DeliverResult{}, nil
}

func (h SetDefaultRateHandler) validate(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*SetDefaultRateMsg, error) {
	var msg SetDefaultRateMsg
	if err := tide.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(store)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "not the owner")
	}
	return &msg, nil
}
