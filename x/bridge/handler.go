package bridge

import (
	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
	"github.com/tideledger/tide/orm"
	"github.com/tideledger/tide/x"
	"github.com/tideledger/tide/x/ledger"
)

const (
	registerDomainCost int64 = 50
	exportCost         int64 = 200
	importCost         int64 = 200
)

// RegisterRoutes will instantiate and register all handlers in this
// package. The ledger controller is what the adapter burns from and mints
// into.
func RegisterRoutes(r tide.Registry, auth x.Authenticator, control ledger.Controller) {
	bucket := NewDomainBucket()
	r.Handle(&RegisterDomainMsg{}, RegisterDomainHandler{auth: auth, bucket: bucket})
	r.Handle(&ExportMsg{}, ExportHandler{auth: auth, bucket: bucket, control: control})
	r.Handle(&ImportMsg{}, ImportHandler{auth: auth, bucket: bucket, control: control})
}

func blockNow(ctx tide.Context) (tide.UnixTime, error) {
	t, err := tide.BlockTime(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "block time")
	}
	return tide.AsUnixTime(t), nil
}

// RegisterDomainHandler pairs this adapter with one on a remote domain.
// Only the configuration owner can execute it. Registering an already
// known domain updates the pairing.
type RegisterDomainHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ tide.Handler = RegisterDomainHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h RegisterDomainHandler) Check(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.CheckResult, error) {
	if _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &tide.CheckResult{GasAllocated: registerDomainCost}, nil
}

// Deliver persists the domain registration.
func (h RegisterDomainHandler) Deliver(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.DeliverResult, error) {
	msg, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	domain := RemoteDomain{
		DomainId:  msg.DomainId,
		Adapter:   msg.Adapter,
		TokenId:   msg.TokenId,
		RateLimit: msg.RateLimit,
	}
	if err := h.bucket.Put(store, []byte(msg.DomainId), &domain); err != nil {
		return nil, errors.Wrap(err, "save domain")
	}
	return &tide.DeliverResult{}, nil
}

func (h RegisterDomainHandler) validate(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*RegisterDomainMsg, error) {
	var msg RegisterDomainMsg
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

// ExportHandler burns value on this domain and emits a receipt with the
// payload for the remote mint. The transaction must be authorized by the
// source account.
type ExportHandler struct {
	auth    x.Authenticator
	bucket  orm.ModelBucket
	control ledger.Controller
}

var _ tide.Handler = ExportHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h ExportHandler) Check(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.CheckResult, error) {
	if _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &tide.CheckResult{GasAllocated: exportCost}, nil
}

// Deliver reads the rate of the source, burns the amount and returns a
// receipt. The rate is read before the burn, as the burn settles the
// account and the exported rate must be the one in effect until then.
func (h ExportHandler) Deliver(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.DeliverResult, error) {
	msg, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	// The domain must be resolved before any ledger mutation so that an
	// unknown domain cannot burn anything.
	domain, err := loadDomain(store, h.bucket, msg.RemoteDomain)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	rate, err := h.control.Rate(store, msg.Src)
	if err != nil {
		return nil, errors.Wrap(err, "rate")
	}
	burned, err := h.control.Burn(store, msg.Src, msg.Amount, now)
	if err != nil {
		return nil, errors.Wrap(err, "burn")
	}
	receipt := ExportReceipt{
		Payload: EncodePayload(rate),
		TokenId: domain.TokenId,
		Amount:  burned,
		Adapter: domain.Adapter,
	}
	data, err := receipt.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal receipt")
	}
	return &tide.DeliverResult{Data: data}, nil
}

func (h ExportHandler) validate(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*ExportMsg, error) {
	var msg ExportMsg
	if err := tide.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Src) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no authority over the source account")
	}
	return &msg, nil
}

// ImportHandler completes a transfer exported on another domain by
// minting the amount under the rate decoded from the payload. Only the
// configured relay can deliver it. Deduplication of redelivered messages
// is the relay's duty, a second delivery of the same message mints again.
type ImportHandler struct {
	auth    x.Authenticator
	bucket  orm.ModelBucket
	control ledger.Controller
}

var _ tide.Handler = ImportHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h ImportHandler) Check(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.CheckResult, error) {
	if _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &tide.CheckResult{GasAllocated: importCost}, nil
}

// Deliver mints the transferred amount. The minted amount always equals
// the requested one, there is no destination side fee.
func (h ImportHandler) Deliver(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*tide.DeliverResult, error) {
	msg, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	if _, err := loadDomain(store, h.bucket, msg.SourceDomain); err != nil {
		return nil, err
	}
	rate, err := DecodePayload(msg.Payload)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.control.Mint(store, msg.Dest, msg.Amount, rate, now); err != nil {
		return nil, errors.Wrap(err, "mint")
	}
	return &tide.DeliverResult{}, nil
}

func (h ImportHandler) validate(ctx tide.Context, store tide.KVStore, tx tide.Tx) (*ImportMsg, error) {
	var msg ImportMsg
	if err := tide.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(store)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Relay) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "not the relay")
	}
	return &msg, nil
}
