package app

import (
	"context"
	"testing"

	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
	"github.com/tideledger/tide/store"
	"github.com/tideledger/tide/tidetest"
)

// routeMsg is a minimal message with a configurable path.
type routeMsg struct {
	path string
}

func (m *routeMsg) Path() string               { return m.path }
func (m *routeMsg) Validate() error            { return nil }
func (m *routeMsg) Marshal() ([]byte, error)   { return []byte(m.path), nil }
func (m *routeMsg) Unmarshal(raw []byte) error { m.path = string(raw); return nil }

// countingHandler counts how often it was called.
type countingHandler struct {
	checks   int
	delivers int
	err      error
}

func (h *countingHandler) Check(tide.Context, tide.KVStore, tide.Tx) (*tide.CheckResult, error) {
	h.checks++
	return &tide.CheckResult{}, h.err
}

func (h *countingHandler) Deliver(tide.Context, tide.KVStore, tide.Tx) (*tide.DeliverResult, error) {
	h.delivers++
	return &tide.DeliverResult{}, h.err
}

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	var a, b countingHandler
	r.Handle(&routeMsg{path: "one/create"}, &a)
	r.Handle(&routeMsg{path: "two/create"}, &b)

	db := store.MemStore()
	ctx := context.Background()
	tx := &tidetest.Tx{Msg: &routeMsg{path: "two/create"}}

	if _, err := r.Check(ctx, db, tx); err != nil {
		t.Fatalf("check: %+v", err)
	}
	if _, err := r.Deliver(ctx, db, tx); err != nil {
		t.Fatalf("deliver: %+v", err)
	}
	if a.checks != 0 || a.delivers != 0 {
		t.Fatal("wrong handler called")
	}
	if b.checks != 1 || b.delivers != 1 {
		t.Fatalf("handler called %d/%d times", b.checks, b.delivers)
	}
}

func TestRouterNoHandler(t *testing.T) {
	r := NewRouter()
	db := store.MemStore()
	tx := &tidetest.Tx{Msg: &routeMsg{path: "one/create"}}
	if _, err := r.Deliver(context.Background(), db, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want ErrNotFound, got %+v", err)
	}
}

func TestRouterRejectsDoubleRegistration(t *testing.T) {
	r := NewRouter()
	r.Handle(&routeMsg{path: "one/create"}, &countingHandler{})

	defer func() {
		if recover() == nil {
			t.Fatal("double registration must panic")
		}
	}()
	r.Handle(&routeMsg{path: "one/create"}, &countingHandler{})
}

func TestRouterRejectsInvalidPath(t *testing.T) {
	r := NewRouter()
	defer func() {
		if recover() == nil {
			t.Fatal("invalid path must panic")
		}
	}()
	r.Handle(&routeMsg{path: "Not A Path"}, &countingHandler{})
}
