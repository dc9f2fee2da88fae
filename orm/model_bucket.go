package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is implemented by any entity that can be stored using a
// ModelBucket.
type Model interface {
	tide.Persistent
	Validate() error
}

// ModelBucket is implemented by buckets that operate on Models.
type ModelBucket interface {
	// One queries the database for a single model instance. Lookup is
	// done by the primary key. The result is loaded into the given
	// destination model.
	// This method returns ErrNotFound if the entity does not exist in
	// the database.
	// If the given model type cannot be used to contain the stored
	// entity, ErrType is returned.
	One(db tide.ReadOnlyKVStore, key []byte, dest Model) error

	// Put saves the given model in the database under the given key.
	Put(db tide.KVStore, key []byte, m Model) error

	// Delete removes an entity with the given primary key from the
	// database. It returns ErrNotFound if an entity with the given key
	// does not exist.
	Delete(db tide.KVStore, key []byte) error

	// Has returns nil if an entity with the given primary key exists,
	// ErrNotFound otherwise.
	Has(db tide.ReadOnlyKVStore, key []byte) error
}

// NewModelBucket returns a ModelBucket instance that stores entities of the
// same type as the given model prototype, within a subspace of the database
// determined by the bucket name.
func NewModelBucket(name string, proto Model) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket name: %q", name))
	}
	return &modelBucket{
		prefix: append([]byte(name), ':'),
		proto:  reflect.TypeOf(proto),
	}
}

type modelBucket struct {
	prefix []byte
	proto  reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)

// dbKey is the full key we store in the db, including the bucket prefix.
// We copy into a new array rather than use append, as we don't want
// consecutive calls to overwrite the same byte array.
func (b *modelBucket) dbKey(key []byte) []byte {
	out := make([]byte, len(b.prefix)+len(key))
	copy(out, b.prefix)
	copy(out[len(b.prefix):], key)
	return out
}

func (b *modelBucket) One(db tide.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != b.proto {
		return errors.Wrapf(errors.ErrType, "%v cannot be represented as %v", reflect.TypeOf(dest), b.proto)
	}
	raw, err := db.Get(b.dbKey(key))
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the bucket", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal %T", dest)
	}
	return nil
}

func (b *modelBucket) Put(db tide.KVStore, key []byte, m Model) error {
	if reflect.TypeOf(m) != b.proto {
		return errors.Wrapf(errors.ErrType, "%v cannot be stored as %v", reflect.TypeOf(m), b.proto)
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal %T", m)
	}
	return db.Set(b.dbKey(key), raw)
}

func (b *modelBucket) Delete(db tide.KVStore, key []byte) error {
	if err := b.Has(db, key); err != nil {
		return err
	}
	return db.Delete(b.dbKey(key))
}

func (b *modelBucket) Has(db tide.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(b.dbKey(key))
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}
