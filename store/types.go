package store

import "github.com/tideledger/tide"

// Move references for all storage types into this package
// for shorter names everywhere.

type ReadOnlyKVStore = tide.ReadOnlyKVStore
type KVStore = tide.KVStore
type SetDeleter = tide.SetDeleter
type Batch = tide.Batch
type Iterator = tide.Iterator
type Model = tide.Model
type CacheableKVStore = tide.CacheableKVStore
type KVCacheWrap = tide.KVCacheWrap
type CommitKVStore = tide.CommitKVStore
type CommitID = tide.CommitID
