package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
	"github.com/tideledger/tide/gconf"
	"github.com/tideledger/tide/store"
	"github.com/tideledger/tide/tidetest"
)

func TestMintHandler(t *testing.T) {
	owner := tidetest.NewCondition()
	minter := tidetest.NewCondition()
	holder := tidetest.NewKey()

	cases := map[string]struct {
		signer  tide.Condition
		msg     tide.Msg
		wantErr *errors.Error
	}{
		"minter can mint": {
			signer: minter,
			msg:    &MintMsg{Dest: holder, Amount: 1000, Rate: 50000000000},
		},
		"owner alone cannot mint": {
			signer:  owner,
			msg:     &MintMsg{Dest: holder, Amount: 1000, Rate: 50000000000},
			wantErr: errors.ErrUnauthorized,
		},
		"zero amount is rejected": {
			signer:  minter,
			msg:     &MintMsg{Dest: holder, Amount: 0},
			wantErr: errors.ErrAmount,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			conf := Configuration{
				Owner:       owner.Address(),
				Minters:     []tide.Address{minter.Address()},
				DefaultRate: 50000000000,
			}
			if err := gconf.Save(db, "ledger", &conf); err != nil {
				t.Fatalf("save configuration: %+v", err)
			}

			auth := &tidetest.Auth{Signer: tc.signer}
			h := MintHandler{auth: auth, control: NewController()}
			ctx := tide.WithBlockTime(context.Background(), time.Unix(1500000000, 0))
			tx := &tidetest.Tx{Msg: tc.msg}

			if _, err := h.Check(ctx, db, tx); !tc.wantErr.Is(err) {
				t.Fatalf("check: want %v, got %+v", tc.wantErr, err)
			}
			if _, err := h.Deliver(ctx, db, tx); !tc.wantErr.Is(err) {
				t.Fatalf("deliver: want %v, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestSendHandler(t *testing.T) {
	minter := tidetest.NewCondition()
	src := tidetest.NewCondition()
	dest := tidetest.NewKey()

	cases := map[string]struct {
		signer  tide.Condition
		amount  uint64
		wantErr *errors.Error
	}{
		"source can send": {
			signer: src,
			amount: 400,
		},
		"a stranger cannot send": {
			signer:  minter,
			amount:  400,
			wantErr: errors.ErrUnauthorized,
		},
		"insufficient balance": {
			signer:  src,
			amount:  5000,
			wantErr: errors.ErrInsufficientAmount,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			conf := Configuration{
				Owner:       tidetest.NewKey(),
				Minters:     []tide.Address{minter.Address()},
				DefaultRate: 50000000000,
			}
			if err := gconf.Save(db, "ledger", &conf); err != nil {
				t.Fatalf("save configuration: %+v", err)
			}
			control := NewController()
			if err := control.Mint(db, src.Address(), 1000, 0, 1500000000); err != nil {
				t.Fatalf("mint: %+v", err)
			}

			auth := &tidetest.Auth{Signer: tc.signer}
			h := SendHandler{auth: auth, control: control}
			ctx := tide.WithBlockTime(context.Background(), time.Unix(1500000100, 0))
			tx := &tidetest.Tx{Msg: &SendMsg{Src: src.Address(), Dest: dest, Amount: tc.amount}}

			_, err := h.Deliver(ctx, db, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("deliver: want %v, got %+v", tc.wantErr, err)
			}
			if tc.wantErr == nil {
				got, err := control.Principal(db, dest)
				if err != nil {
					t.Fatalf("principal: %+v", err)
				}
				if got != tc.amount {
					t.Fatalf("destination principal: %d", got)
				}
			}
		})
	}
}

func TestSetDefaultRateHandler(t *testing.T) {
	owner := tidetest.NewCondition()
	minter := tidetest.NewCondition()

	cases := map[string]struct {
		signer  tide.Condition
		rate    uint64
		wantErr *errors.Error
	}{
		"owner can lower": {
			signer: owner,
			rate:   40000000000,
		},
		"raising is rejected": {
			signer:  owner,
			rate:    60000000000,
			wantErr: ErrRateIncrease,
		},
		"keeping the rate is rejected": {
			signer:  owner,
			rate:    50000000000,
			wantErr: ErrRateIncrease,
		},
		"minter cannot change the rate": {
			signer:  minter,
			rate:    40000000000,
			wantErr: errors.ErrUnauthorized,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			conf := Configuration{
				Owner:       owner.Address(),
				Minters:     []tide.Address{minter.Address()},
				DefaultRate: 50000000000,
			}
			if err := gconf.Save(db, "ledger", &conf); err != nil {
				t.Fatalf("save configuration: %+v", err)
			}

			auth := &tidetest.Auth{Signer: tc.signer}
			control := NewController()
			h := SetDefaultRateHandler{auth: auth, control: control}
			ctx := tide.WithBlockTime(context.Background(), time.Unix(1500000000, 0))
			tx := &tidetest.Tx{Msg: &SetDefaultRateMsg{Rate: tc.rate}}

			_, err := h.Deliver(ctx, db, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("deliver: want %v, got %+v", tc.wantErr, err)
			}

			want := uint64(50000000000)
			if tc.wantErr == nil {
				want = tc.rate
			}
			if got, _ := control.DefaultRate(db); got != want {
				t.Fatalf("default rate: %d", got)
			}
		})
	}
}
