package tidetest

import (
	"testing"

	"github.com/tideledger/tide"
	"github.com/tideledger/tide/store/iavl"
)

// CommitKVStore returns a merkleized commit store backed by an in memory
// database. Use it in tests that exercise the commit and version
// behaviour. For everything else store.MemStore is enough.
func CommitKVStore(t testing.TB) tide.CommitKVStore {
	t.Helper()
	db := iavl.MockCommitStore()
	if err := db.LoadLatestVersion(); err != nil {
		t.Fatalf("load latest version: %+v", err)
	}
	return db
}
