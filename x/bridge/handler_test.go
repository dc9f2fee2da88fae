package bridge

import (
	"context"
	"testing"
	"time"

	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
	"github.com/tideledger/tide/gconf"
	"github.com/tideledger/tide/orm"
	"github.com/tideledger/tide/store"
	"github.com/tideledger/tide/tidetest"
	"github.com/tideledger/tide/x/ledger"
)

// testDomain is a single execution domain with its own store, ledger and
// adapter configuration.
type testDomain struct {
	db      tide.KVStore
	control ledger.Controller
	bucket  orm.ModelBucket
	owner   tide.Condition
	relay   tide.Condition
}

func newTestDomain(t testing.TB) *testDomain {
	t.Helper()
	d := testDomain{
		db:      store.MemStore(),
		control: ledger.NewController(),
		bucket:  NewDomainBucket(),
		owner:   tidetest.NewCondition(),
		relay:   tidetest.NewCondition(),
	}
	conf := Configuration{
		Owner: d.owner.Address(),
		Relay: d.relay.Address(),
	}
	if err := gconf.Save(d.db, "bridge", &conf); err != nil {
		t.Fatalf("save configuration: %+v", err)
	}
	return &d
}

// pair registers the other domain under the given identifier.
func (d *testDomain) pair(t testing.TB, domainID string) {
	t.Helper()
	domain := RemoteDomain{
		DomainId: domainID,
		Adapter:  tidetest.NewKey(),
		TokenId:  "tide-" + domainID,
	}
	if err := d.bucket.Put(d.db, []byte(domainID), &domain); err != nil {
		t.Fatalf("register %q: %+v", domainID, err)
	}
}

// export burns on this domain and returns the receipt.
func (d *testDomain) export(t testing.TB, holder tide.Condition, amount uint64, remote string, at int64) *ExportReceipt {
	t.Helper()
	h := ExportHandler{
		auth:    &tidetest.Auth{Signer: holder},
		bucket:  d.bucket,
		control: d.control,
	}
	ctx := tide.WithBlockTime(context.Background(), time.Unix(at, 0))
	tx := &tidetest.Tx{Msg: &ExportMsg{Src: holder.Address(), Amount: amount, RemoteDomain: remote}}
	res, err := h.Deliver(ctx, d.db, tx)
	if err != nil {
		t.Fatalf("export: %+v", err)
	}
	var receipt ExportReceipt
	if err := receipt.Unmarshal(res.Data); err != nil {
		t.Fatalf("unmarshal receipt: %+v", err)
	}
	return &receipt
}

// deliver plays the relay and completes an inbound transfer.
func (d *testDomain) deliver(t testing.TB, msg *ImportMsg, at int64) error {
	t.Helper()
	h := ImportHandler{
		auth:    &tidetest.Auth{Signer: d.relay},
		bucket:  d.bucket,
		control: d.control,
	}
	ctx := tide.WithBlockTime(context.Background(), time.Unix(at, 0))
	_, err := h.Deliver(ctx, d.db, &tidetest.Tx{Msg: msg})
	return err
}

func TestExportImportRoundTrip(t *testing.T) {
	x := newTestDomain(t)
	y := newTestDomain(t)
	x.pair(t, "domy")
	y.pair(t, "domx")

	holder := tidetest.NewCondition()
	receiver := tidetest.NewKey()

	const t0 = int64(1500000000)
	if err := x.control.Mint(x.db, holder.Address(), 100000, 50000000000, tide.AsUnixTime(time.Unix(t0, 0))); err != nil {
		t.Fatalf("mint: %+v", err)
	}

	receipt := x.export(t, holder, 100000, "domy", t0)
	if receipt.Amount != 100000 {
		t.Fatalf("exported %d", receipt.Amount)
	}
	if receipt.TokenId != "tide-domy" {
		t.Fatalf("token id %q", receipt.TokenId)
	}
	if len(receipt.Adapter) == 0 {
		t.Fatal("receipt is missing the remote adapter address")
	}
	rate, err := DecodePayload(receipt.Payload)
	if err != nil {
		t.Fatalf("decode payload: %+v", err)
	}
	if rate != 50000000000 {
		t.Fatalf("exported rate %d", rate)
	}

	// A week in transit earns nothing. The import mints exactly the
	// burned amount and accrual resumes only from the minting moment.
	deliveredAt := t0 + 7*24*3600
	err = y.deliver(t, &ImportMsg{
		Dest:         receiver,
		Amount:       receipt.Amount,
		Payload:      receipt.Payload,
		SourceDomain: "domx",
	}, deliveredAt)
	if err != nil {
		t.Fatalf("import: %+v", err)
	}

	now := tide.AsUnixTime(time.Unix(deliveredAt, 0))
	if got, _ := y.control.Balance(y.db, receiver, now); got != 100000 {
		t.Fatalf("balance right after import: %d", got)
	}
	if got, _ := y.control.Rate(y.db, receiver); got != 50000000000 {
		t.Fatalf("rate after import: %d", got)
	}
	if got, _ := x.control.Balance(x.db, holder.Address(), now); got != 0 {
		t.Fatalf("balance left on the source domain: %d", got)
	}
}

func TestExportIncludesAccruedGrowth(t *testing.T) {
	x := newTestDomain(t)
	x.pair(t, "domy")

	holder := tidetest.NewCondition()
	const t0 = int64(1500000000)
	if err := x.control.Mint(x.db, holder.Address(), 100000000, 50000000000, tide.AsUnixTime(time.Unix(t0, 0))); err != nil {
		t.Fatalf("mint: %+v", err)
	}

	// Exporting everything an hour later must include the growth
	// settled by the burn, not just the minted principal.
	receipt := x.export(t, holder, ledger.EntireBalance, "domy", t0+3600)
	if receipt.Amount != 100018000 {
		t.Fatalf("exported %d", receipt.Amount)
	}
}

func TestExportUnknownDomain(t *testing.T) {
	x := newTestDomain(t)

	holder := tidetest.NewCondition()
	const t0 = int64(1500000000)
	if err := x.control.Mint(x.db, holder.Address(), 100000, 0, tide.AsUnixTime(time.Unix(t0, 0))); err != nil {
		t.Fatalf("mint: %+v", err)
	}

	h := ExportHandler{
		auth:    &tidetest.Auth{Signer: holder},
		bucket:  x.bucket,
		control: x.control,
	}
	ctx := tide.WithBlockTime(context.Background(), time.Unix(t0, 0))
	tx := &tidetest.Tx{Msg: &ExportMsg{Src: holder.Address(), Amount: 100000, RemoteDomain: "nowhere"}}
	if _, err := h.Deliver(ctx, x.db, tx); !ErrUnknownDomain.Is(err) {
		t.Fatalf("want ErrUnknownDomain, got %+v", err)
	}
	// The rejection must happen before anything is burned.
	if got, _ := x.control.Principal(x.db, holder.Address()); got != 100000 {
		t.Fatalf("principal after rejected export: %d", got)
	}
}

func TestImportRequiresRelay(t *testing.T) {
	y := newTestDomain(t)
	y.pair(t, "domx")

	stranger := tidetest.NewCondition()
	h := ImportHandler{
		auth:    &tidetest.Auth{Signer: stranger},
		bucket:  y.bucket,
		control: y.control,
	}
	ctx := tide.WithBlockTime(context.Background(), time.Unix(1500000000, 0))
	tx := &tidetest.Tx{Msg: &ImportMsg{
		Dest:         tidetest.NewKey(),
		Amount:       100000,
		Payload:      EncodePayload(50000000000),
		SourceDomain: "domx",
	}}
	if _, err := h.Deliver(ctx, y.db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want ErrUnauthorized, got %+v", err)
	}
}

func TestImportMalformedPayload(t *testing.T) {
	y := newTestDomain(t)
	y.pair(t, "domx")

	receiver := tidetest.NewKey()
	err := y.deliver(t, &ImportMsg{
		Dest:         receiver,
		Amount:       100000,
		Payload:      []byte{1, 2, 3},
		SourceDomain: "domx",
	}, 1500000000)
	if !ErrMalformedPayload.Is(err) {
		t.Fatalf("want ErrMalformedPayload, got %+v", err)
	}
	// No mint may happen on a decode failure.
	if got, _ := y.control.Principal(y.db, receiver); got != 0 {
		t.Fatalf("principal after rejected import: %d", got)
	}
}

func TestImportUnknownSourceDomain(t *testing.T) {
	y := newTestDomain(t)

	err := y.deliver(t, &ImportMsg{
		Dest:         tidetest.NewKey(),
		Amount:       100000,
		Payload:      EncodePayload(50000000000),
		SourceDomain: "nowhere",
	}, 1500000000)
	if !ErrUnknownDomain.Is(err) {
		t.Fatalf("want ErrUnknownDomain, got %+v", err)
	}
}

func TestRelayMayReorder(t *testing.T) {
	x := newTestDomain(t)
	y := newTestDomain(t)
	x.pair(t, "domy")
	y.pair(t, "domx")

	first := tidetest.NewCondition()
	second := tidetest.NewCondition()
	const t0 = int64(1500000000)
	if err := x.control.Mint(x.db, first.Address(), 1000, 50000000000, tide.AsUnixTime(time.Unix(t0, 0))); err != nil {
		t.Fatalf("mint first: %+v", err)
	}
	if err := x.control.Mint(x.db, second.Address(), 2000, 40000000000, tide.AsUnixTime(time.Unix(t0, 0))); err != nil {
		t.Fatalf("mint second: %+v", err)
	}

	a := x.export(t, first, 1000, "domy", t0)
	b := x.export(t, second, 2000, "domy", t0)

	// The relay delivers the transfers in the opposite order. Each
	// transfer is self contained, so both receivers still end up with
	// the amount and rate that was exported for them.
	for _, m := range []*ImportMsg{
		{Dest: second.Address(), Amount: b.Amount, Payload: b.Payload, SourceDomain: "domx"},
		{Dest: first.Address(), Amount: a.Amount, Payload: a.Payload, SourceDomain: "domx"},
	} {
		if err := y.deliver(t, m, t0+100); err != nil {
			t.Fatalf("deliver: %+v", err)
		}
	}

	if got, _ := y.control.Principal(y.db, first.Address()); got != 1000 {
		t.Fatalf("first principal: %d", got)
	}
	if got, _ := y.control.Rate(y.db, first.Address()); got != 50000000000 {
		t.Fatalf("first rate: %d", got)
	}
	if got, _ := y.control.Principal(y.db, second.Address()); got != 2000 {
		t.Fatalf("second principal: %d", got)
	}
	if got, _ := y.control.Rate(y.db, second.Address()); got != 40000000000 {
		t.Fatalf("second rate: %d", got)
	}
}

func TestRegisterDomainHandler(t *testing.T) {
	x := newTestDomain(t)

	msg := &RegisterDomainMsg{
		DomainId: "domy",
		Adapter:  tidetest.NewKey(),
		TokenId:  "tide-domy",
	}

	stranger := tidetest.NewCondition()
	h := RegisterDomainHandler{auth: &tidetest.Auth{Signer: stranger}, bucket: x.bucket}
	ctx := tide.WithBlockTime(context.Background(), time.Unix(1500000000, 0))
	if _, err := h.Deliver(ctx, x.db, &tidetest.Tx{Msg: msg}); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want ErrUnauthorized, got %+v", err)
	}

	h = RegisterDomainHandler{auth: &tidetest.Auth{Signer: x.owner}, bucket: x.bucket}
	if _, err := h.Deliver(ctx, x.db, &tidetest.Tx{Msg: msg}); err != nil {
		t.Fatalf("register: %+v", err)
	}

	var domain RemoteDomain
	if err := x.bucket.One(x.db, []byte("domy"), &domain); err != nil {
		t.Fatalf("load domain: %+v", err)
	}
	if domain.TokenId != "tide-domy" {
		t.Fatalf("token id %q", domain.TokenId)
	}

	// The owner may update an existing registration.
	msg.TokenId = "tide-domy-v2"
	if _, err := h.Deliver(ctx, x.db, &tidetest.Tx{Msg: msg}); err != nil {
		t.Fatalf("update: %+v", err)
	}
	if err := x.bucket.One(x.db, []byte("domy"), &domain); err != nil {
		t.Fatalf("load domain: %+v", err)
	}
	if domain.TokenId != "tide-domy-v2" {
		t.Fatalf("token id after update %q", domain.TokenId)
	}
}
