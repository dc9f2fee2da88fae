package orm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tideledger/tide/errors"
	"github.com/tideledger/tide/store"
)

// counter is a minimal model implementation for tests.
type counter struct {
	value int64
}

var _ Model = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(c.value))
	return raw, nil
}

func (c *counter) Unmarshal(raw []byte) error {
	if len(raw) != 8 {
		return errors.Wrapf(errors.ErrInput, "invalid length: %d", len(raw))
	}
	c.value = int64(binary.BigEndian.Uint64(raw))
	return nil
}

func (c *counter) Validate() error {
	if c.value < 0 {
		return errors.Wrap(errors.ErrState, "negative counter")
	}
	return nil
}

func TestModelBucketPutOne(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	require.NoError(t, b.Put(db, []byte("c1"), &counter{value: 42}))

	var got counter
	require.NoError(t, b.One(db, []byte("c1"), &got))
	assert.Equal(t, int64(42), got.value)
}

func TestModelBucketOneMissing(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	var got counter
	err := b.One(db, []byte("unknown"), &got)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestModelBucketPutInvalid(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	err := b.Put(db, []byte("c1"), &counter{value: -1})
	assert.True(t, errors.ErrState.Is(err))

	// the invalid model must not be persisted
	err = b.Has(db, []byte("c1"))
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestModelBucketDelete(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	require.NoError(t, b.Put(db, []byte("c1"), &counter{value: 1}))
	require.NoError(t, b.Delete(db, []byte("c1")))

	err := b.Delete(db, []byte("c1"))
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestModelBucketPrefixIsolation(t *testing.T) {
	db := store.MemStore()
	a := NewModelBucket("aaa", &counter{})
	z := NewModelBucket("zzz", &counter{})

	require.NoError(t, a.Put(db, []byte("k"), &counter{value: 1}))

	err := z.Has(db, []byte("k"))
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestModelBucketIllegalName(t *testing.T) {
	assert.Panics(t, func() {
		NewModelBucket("TooBigAName", &counter{})
	})
}
