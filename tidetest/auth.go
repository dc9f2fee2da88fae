package tidetest

import (
	"context"
	"crypto/rand"

	"github.com/tideledger/tide"
)

// NewCondition returns a random condition. Each call returns a different
// one.
func NewCondition() tide.Condition {
	data := make([]byte, 20)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return tide.NewCondition("tidetest", "random", data)
}

// NewKey returns an address of a random condition. Use it whenever a test
// needs an address that no signer controls.
func NewKey() tide.Address {
	return NewCondition().Address()
}

// Auth is an authenticator that confirms whatever conditions it was given.
// It ignores the context.
type Auth struct {
	// Signer is included in the conditions if set.
	Signer tide.Condition
	// Signers are included in the conditions if set.
	Signers []tide.Condition
}

func (a *Auth) GetConditions(tide.Context) []tide.Condition {
	var conds []tide.Condition
	if a.Signer != nil {
		conds = append(conds, a.Signer)
	}
	return append(conds, a.Signers...)
}

func (a *Auth) HasAddress(ctx tide.Context, addr tide.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is an authenticator that reads the conditions from the context.
// Use SetConditions to provide them.
type CtxAuth struct {
	// Key under which the conditions are stored in the context.
	Key string
}

type ctxAuthKey string

func (a *CtxAuth) SetConditions(ctx tide.Context, conds ...tide.Condition) tide.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx tide.Context) []tide.Condition {
	conds, _ := ctx.Value(ctxAuthKey(a.Key)).([]tide.Condition)
	return conds
}

func (a *CtxAuth) HasAddress(ctx tide.Context, addr tide.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
