package ledger

import (
	"testing"

	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
	"github.com/tideledger/tide/gconf"
	"github.com/tideledger/tide/store"
	"github.com/tideledger/tide/tidetest"
)

func newLedgerStore(t testing.TB, defaultRate uint64) tide.KVStore {
	t.Helper()
	db := store.MemStore()
	conf := Configuration{
		Owner:       tidetest.NewKey(),
		Minters:     []tide.Address{tidetest.NewKey()},
		DefaultRate: defaultRate,
	}
	if err := gconf.Save(db, "ledger", &conf); err != nil {
		t.Fatalf("save configuration: %+v", err)
	}
	return db
}

func TestRedeemEverything(t *testing.T) {
	db := newLedgerStore(t, 50000000000)
	control := NewController()
	holder := tidetest.NewKey()

	const t0 = tide.UnixTime(1500000000)
	if err := control.Mint(db, holder, 100000000, 50000000000, t0); err != nil {
		t.Fatalf("mint: %+v", err)
	}

	got, err := control.Balance(db, holder, t0+3600)
	if err != nil {
		t.Fatalf("balance: %+v", err)
	}
	if got != 100018000 {
		t.Fatalf("balance after an hour: %d", got)
	}

	// Burning the sentinel destroys the balance including the growth
	// accrued up to this very moment.
	burned, err := control.Burn(db, holder, EntireBalance, t0+3600)
	if err != nil {
		t.Fatalf("burn: %+v", err)
	}
	if burned != 100018000 {
		t.Fatalf("burned %d", burned)
	}
	if got, err := control.Balance(db, holder, t0+7200); err != nil || got != 0 {
		t.Fatalf("balance after redeem: %d, %+v", got, err)
	}
}

func TestMintOverwritesRate(t *testing.T) {
	db := newLedgerStore(t, 50000000000)
	control := NewController()
	holder := tidetest.NewKey()

	const t0 = tide.UnixTime(1500000000)
	if err := control.Mint(db, holder, 1000, 50000000000, t0); err != nil {
		t.Fatalf("first mint: %+v", err)
	}
	// A repeated deposit refreshes the rate of the whole account, also
	// for the principal that was minted under the old rate.
	if err := control.Mint(db, holder, 1000, 40000000000, t0+10); err != nil {
		t.Fatalf("second mint: %+v", err)
	}
	rate, err := control.Rate(db, holder)
	if err != nil {
		t.Fatalf("rate: %+v", err)
	}
	if rate != 40000000000 {
		t.Fatalf("rate after second mint: %d", rate)
	}
}

func TestBurnInsufficient(t *testing.T) {
	db := newLedgerStore(t, 50000000000)
	control := NewController()
	holder := tidetest.NewKey()

	const t0 = tide.UnixTime(1500000000)
	if err := control.Mint(db, holder, 1000, 0, t0); err != nil {
		t.Fatalf("mint: %+v", err)
	}
	if _, err := control.Burn(db, holder, 1001, t0); !errors.ErrInsufficientAmount.Is(err) {
		t.Fatalf("want ErrInsufficientAmount, got %+v", err)
	}
	// A failed burn must not change the account.
	if got, _ := control.Principal(db, holder); got != 1000 {
		t.Fatalf("principal after failed burn: %d", got)
	}
}

func TestMoveInheritsRateOnEmptyReceiver(t *testing.T) {
	db := newLedgerStore(t, 50000000000)
	control := NewController()
	src := tidetest.NewKey()
	dest := tidetest.NewKey()

	const t0 = tide.UnixTime(1500000000)
	if err := control.Mint(db, src, 5000, 50000000000, t0); err != nil {
		t.Fatalf("mint: %+v", err)
	}
	if _, err := control.Move(db, src, dest, 2000, t0); err != nil {
		t.Fatalf("move: %+v", err)
	}
	rate, err := control.Rate(db, dest)
	if err != nil {
		t.Fatalf("rate: %+v", err)
	}
	if rate != 50000000000 {
		t.Fatalf("receiver rate: %d", rate)
	}
}

func TestMoveKeepsRateOfFundedReceiver(t *testing.T) {
	db := newLedgerStore(t, 50000000000)
	control := NewController()
	src := tidetest.NewKey()
	dest := tidetest.NewKey()

	const t0 = tide.UnixTime(1500000000)
	if err := control.Mint(db, src, 5000, 50000000000, t0); err != nil {
		t.Fatalf("mint source: %+v", err)
	}
	if err := control.Mint(db, dest, 1, 40000000000, t0); err != nil {
		t.Fatalf("mint destination: %+v", err)
	}
	if _, err := control.Move(db, src, dest, 2000, t0); err != nil {
		t.Fatalf("move: %+v", err)
	}
	rate, err := control.Rate(db, dest)
	if err != nil {
		t.Fatalf("rate: %+v", err)
	}
	if rate != 40000000000 {
		t.Fatalf("a transfer must not overwrite the rate of a funded receiver: %d", rate)
	}
}

func TestMovePreservesSupply(t *testing.T) {
	db := newLedgerStore(t, 50000000000)
	control := NewController()
	src := tidetest.NewKey()
	dest := tidetest.NewKey()

	const t0 = tide.UnixTime(1500000000)
	if err := control.Mint(db, src, 100000000, 50000000000, t0); err != nil {
		t.Fatalf("mint source: %+v", err)
	}
	if err := control.Mint(db, dest, 100000000, 50000000000, t0); err != nil {
		t.Fatalf("mint destination: %+v", err)
	}

	// Both accounts settle an hour of growth during the move.
	if _, err := control.Move(db, src, dest, 2000, t0+3600); err != nil {
		t.Fatalf("move: %+v", err)
	}
	a, err := control.Principal(db, src)
	if err != nil {
		t.Fatalf("principal source: %+v", err)
	}
	b, err := control.Principal(db, dest)
	if err != nil {
		t.Fatalf("principal destination: %+v", err)
	}
	if total := a + b; total != 2*100018000 {
		t.Fatalf("total supply after move: %d", total)
	}
}

func TestMoveEntireBalance(t *testing.T) {
	db := newLedgerStore(t, 50000000000)
	control := NewController()
	src := tidetest.NewKey()
	dest := tidetest.NewKey()

	const t0 = tide.UnixTime(1500000000)
	if err := control.Mint(db, src, 100000000, 50000000000, t0); err != nil {
		t.Fatalf("mint: %+v", err)
	}
	moved, err := control.Move(db, src, dest, EntireBalance, t0+3600)
	if err != nil {
		t.Fatalf("move: %+v", err)
	}
	if moved != 100018000 {
		t.Fatalf("moved %d", moved)
	}
	if got, _ := control.Principal(db, src); got != 0 {
		t.Fatalf("source principal after moving everything: %d", got)
	}
}

func TestMoveInsufficient(t *testing.T) {
	db := newLedgerStore(t, 50000000000)
	control := NewController()
	src := tidetest.NewKey()
	dest := tidetest.NewKey()

	const t0 = tide.UnixTime(1500000000)
	if err := control.Mint(db, src, 1000, 0, t0); err != nil {
		t.Fatalf("mint: %+v", err)
	}
	if _, err := control.Move(db, src, dest, 1001, t0); !errors.ErrInsufficientAmount.Is(err) {
		t.Fatalf("want ErrInsufficientAmount, got %+v", err)
	}
}

func TestAccountsSurviveCommit(t *testing.T) {
	commit := tidetest.CommitKVStore(t)
	control := NewController()
	holder := tidetest.NewKey()

	const t0 = tide.UnixTime(1500000000)

	db := commit.CacheWrap()
	conf := Configuration{
		Owner:       tidetest.NewKey(),
		Minters:     []tide.Address{tidetest.NewKey()},
		DefaultRate: 50000000000,
	}
	if err := gconf.Save(db, "ledger", &conf); err != nil {
		t.Fatalf("save configuration: %+v", err)
	}
	if err := control.Mint(db, holder, 1000, 50000000000, t0); err != nil {
		t.Fatalf("mint: %+v", err)
	}
	if err := db.Write(); err != nil {
		t.Fatalf("write: %+v", err)
	}
	if _, err := commit.Commit(); err != nil {
		t.Fatalf("commit: %+v", err)
	}
	if v := commit.LatestVersion().Version; v != 1 {
		t.Fatalf("latest version: %d", v)
	}

	// A fresh wrap over the committed state must see the account.
	fresh := commit.CacheWrap()
	got, err := control.Principal(fresh, holder)
	if err != nil {
		t.Fatalf("principal: %+v", err)
	}
	if got != 1000 {
		t.Fatalf("principal after commit: %d", got)
	}
}

func TestSetDefaultRateOnlyLowers(t *testing.T) {
	db := newLedgerStore(t, 50000000000)
	control := NewController()

	if err := control.SetDefaultRate(db, 40000000000); err != nil {
		t.Fatalf("lower: %+v", err)
	}
	rate, err := control.DefaultRate(db)
	if err != nil {
		t.Fatalf("default rate: %+v", err)
	}
	if rate != 40000000000 {
		t.Fatalf("default rate after lowering: %d", rate)
	}

	for _, r := range []uint64{40000000000, 40000000001} {
		if err := control.SetDefaultRate(db, r); !ErrRateIncrease.Is(err) {
			t.Fatalf("want ErrRateIncrease for %d, got %+v", r, err)
		}
	}
	// The rejected updates must leave the rate untouched.
	if rate, _ := control.DefaultRate(db); rate != 40000000000 {
		t.Fatalf("default rate after rejected updates: %d", rate)
	}
}
