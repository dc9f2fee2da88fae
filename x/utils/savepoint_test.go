package utils

import (
	"context"
	"testing"

	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
	"github.com/tideledger/tide/store"
	"github.com/tideledger/tide/tidetest"
	"github.com/tideledger/tide/x/ledger"
)

// writingHandler writes a key and then returns the configured error.
type writingHandler struct {
	key   []byte
	value []byte
	err   error
}

func (h writingHandler) Check(ctx tide.Context, db tide.KVStore, tx tide.Tx) (*tide.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &tide.CheckResult{}, h.err
}

func (h writingHandler) Deliver(ctx tide.Context, db tide.KVStore, tx tide.Tx) (*tide.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &tide.DeliverResult{}, h.err
}

func TestSavepointDiscardsOnError(t *testing.T) {
	db := store.MemStore()
	h := writingHandler{
		key:   []byte("a"),
		value: []byte("1"),
		err:   errors.ErrHuman.New("boom"),
	}

	s := NewSavepoint().OnDeliver()
	if _, err := s.Deliver(context.Background(), db, nil, h); !errors.ErrHuman.Is(err) {
		t.Fatalf("want ErrHuman, got %+v", err)
	}
	if raw, _ := db.Get([]byte("a")); raw != nil {
		t.Fatal("failed delivery left state behind")
	}
}

func TestSavepointWritesOnSuccess(t *testing.T) {
	db := store.MemStore()
	h := writingHandler{
		key:   []byte("a"),
		value: []byte("1"),
	}

	s := NewSavepoint().OnDeliver()
	if _, err := s.Deliver(context.Background(), db, nil, h); err != nil {
		t.Fatalf("deliver: %+v", err)
	}
	raw, err := db.Get([]byte("a"))
	if err != nil {
		t.Fatalf("get: %+v", err)
	}
	if string(raw) != "1" {
		t.Fatalf("want 1, got %q", raw)
	}
}

func TestSavepointInactiveMode(t *testing.T) {
	db := store.MemStore()
	h := writingHandler{
		key:   []byte("a"),
		value: []byte("1"),
		err:   errors.ErrHuman.New("boom"),
	}

	// Only active on Check, so a failing Deliver writes through.
	s := NewSavepoint().OnCheck()
	if _, err := s.Deliver(context.Background(), db, nil, h); !errors.ErrHuman.Is(err) {
		t.Fatalf("want ErrHuman, got %+v", err)
	}
	if raw, _ := db.Get([]byte("a")); string(raw) != "1" {
		t.Fatal("inactive savepoint must not isolate writes")
	}
}

type panicHandler struct{}

func (panicHandler) Check(tide.Context, tide.KVStore, tide.Tx) (*tide.CheckResult, error) {
	panic("check")
}

func (panicHandler) Deliver(tide.Context, tide.KVStore, tide.Tx) (*tide.DeliverResult, error) {
	panic("deliver")
}

func TestRecovery(t *testing.T) {
	db := store.MemStore()
	r := NewRecovery()

	if _, err := r.Check(context.Background(), db, nil, panicHandler{}); !errors.ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
	if _, err := r.Deliver(context.Background(), db, nil, panicHandler{}); !errors.ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
}

type doneHandler struct{}

func (doneHandler) Check(tide.Context, tide.KVStore, tide.Tx) (*tide.CheckResult, error) {
	return &tide.CheckResult{}, nil
}

func (doneHandler) Deliver(tide.Context, tide.KVStore, tide.Tx) (*tide.DeliverResult, error) {
	return &tide.DeliverResult{}, nil
}

func TestActionTagger(t *testing.T) {
	db := store.MemStore()
	a := NewActionTagger()
	tx := &tidetest.Tx{Msg: &ledger.SendMsg{}}

	res, err := a.Deliver(context.Background(), db, tx, doneHandler{})
	if err != nil {
		t.Fatalf("deliver: %+v", err)
	}
	if len(res.Tags) != 1 {
		t.Fatalf("want one tag, got %d", len(res.Tags))
	}
	if string(res.Tags[0].Key) != ActionKey || string(res.Tags[0].Value) != "ledger/send" {
		t.Fatalf("unexpected tag %s=%s", res.Tags[0].Key, res.Tags[0].Value)
	}
}
