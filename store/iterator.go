package store

import (
	"bytes"
)

// cachedItem is one cached write, as captured by a cache wrap snapshot.
type cachedItem struct {
	key     []byte
	value   []byte
	deleted bool
}

// cacheIterator merges a snapshot of cached writes with the iterator of the
// backing store. Cached writes shadow the parent on key collision and
// cached deletes drop keys from the output.
type cacheIterator struct {
	items     []cachedItem
	parent    Iterator
	ascending bool
	exhausted bool
}

var _ Iterator = (*cacheIterator)(nil)

func newCacheIterator(items []cachedItem, parent Iterator, ascending bool) (Iterator, error) {
	iter := &cacheIterator{
		items:     items,
		parent:    parent,
		ascending: ascending,
	}
	// make sure we do not start on a deleted entry
	if err := iter.settle(); err != nil {
		iter.Close()
		return nil, err
	}
	return iter, nil
}

// Valid implements Iterator and returns true iff the cursor can be read.
func (i *cacheIterator) Valid() bool {
	return !i.exhausted && (len(i.items) > 0 || i.parent.Valid())
}

// Next moves the iterator to the next sequential key.
func (i *cacheIterator) Next() error {
	if !i.Valid() {
		panic("advanced past the end")
	}
	if err := i.advance(); err != nil {
		return err
	}
	return i.settle()
}

// Key returns the key of the cursor.
func (i *cacheIterator) Key() []byte {
	switch i.source() {
	case fromCache, fromBoth:
		return i.items[0].key
	case fromParent:
		return i.parent.Key()
	default:
		panic("advanced past the end")
	}
}

// Value returns the value of the cursor.
func (i *cacheIterator) Value() []byte {
	switch i.source() {
	case fromCache, fromBoth:
		return i.items[0].value
	case fromParent:
		return i.parent.Value()
	default:
		panic("advanced past the end")
	}
}

// Close releases the Iterator.
func (i *cacheIterator) Close() {
	i.parent.Close()
	i.items = nil
	i.exhausted = true
}

type source int

const (
	fromNone source = iota
	fromCache
	fromParent
	fromBoth
)

// source tells where the current cursor position comes from. On a key
// collision the cache shadows the parent.
func (i *cacheIterator) source() source {
	cacheValid := len(i.items) > 0
	parentValid := i.parent.Valid()

	switch {
	case i.exhausted || (!cacheValid && !parentValid):
		return fromNone
	case !parentValid:
		return fromCache
	case !cacheValid:
		return fromParent
	}

	cmp := bytes.Compare(i.items[0].key, i.parent.Key())
	if !i.ascending {
		cmp = -cmp
	}
	switch {
	case cmp < 0:
		return fromCache
	case cmp > 0:
		return fromParent
	default:
		return fromBoth
	}
}

// advance moves past the current position, moving the cache, the parent, or
// both when they point at the same key.
func (i *cacheIterator) advance() error {
	switch i.source() {
	case fromCache:
		i.items = i.items[1:]
	case fromParent:
		return i.parent.Next()
	case fromBoth:
		i.items = i.items[1:]
		return i.parent.Next()
	default:
		panic("advanced past the end")
	}
	return nil
}

// settle skips over all entries that are deleted in the cache.
func (i *cacheIterator) settle() error {
	for {
		switch src := i.source(); {
		case src == fromNone:
			return nil
		case (src == fromCache || src == fromBoth) && i.items[0].deleted:
			if err := i.advance(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// SliceIterator wraps an Iterator over a slice of models.
type SliceIterator struct {
	data []Model
	idx  int
}

var _ Iterator = (*SliceIterator)(nil)

// NewSliceIterator creates a new Iterator over this slice.
func NewSliceIterator(data []Model) *SliceIterator {
	return &SliceIterator{
		data: data,
	}
}

// Valid implements Iterator and returns true iff it can be read.
func (s *SliceIterator) Valid() bool {
	return s.idx < len(s.data)
}

// Next moves the iterator to the next sequential key in the database.
func (s *SliceIterator) Next() error {
	s.assertValid()
	s.idx++
	return nil
}

func (s *SliceIterator) assertValid() {
	if s.idx >= len(s.data) {
		panic("index out of bounds")
	}
}

// Key returns the key of the cursor.
func (s *SliceIterator) Key() (key []byte) {
	s.assertValid()
	return s.data[s.idx].Key
}

// Value returns the value of the cursor.
func (s *SliceIterator) Value() (value []byte) {
	s.assertValid()
	return s.data[s.idx].Value
}

// Close releases the Iterator.
func (s *SliceIterator) Close() {
	s.data = nil
	s.idx = 0
}
