package collection

import (
	"fmt"
	"math"
	"slices"

	"github.com/the127/attestate/internal/utils/modelError"
)

// Index is a 0-based position in a UniqueCollection.
type Index uint32

// MaxLen is the largest number of elements a UniqueCollection can hold.
// Inserting past it fails with ErrIndexOutOfRange.
const MaxLen = math.MaxUint32

type KeyFunc[V any, K comparable] func(V) K

// UniqueCollection is an ordered sequence of values in which no two values
// share a key. Positions are meaningful and never change implicitly.
type UniqueCollection[V any, K comparable] struct {
	key    KeyFunc[V, K]
	values []V
	keys   map[K]struct{}
}

func New[V any, K comparable](key KeyFunc[V, K]) *UniqueCollection[V, K] {
	return &UniqueCollection[V, K]{
		key:  key,
		keys: make(map[K]struct{}),
	}
}

// NewFrom builds a collection holding values in the given order.
func NewFrom[V any, K comparable](key KeyFunc[V, K], values []V) (*UniqueCollection[V, K], error) {
	c := New(key)
	c.values = make([]V, 0, len(values))
	for _, v := range values {
		err := c.Append(v)
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *UniqueCollection[V, K]) Len() int {
	return len(c.values)
}

func (c *UniqueCollection[V, K]) Empty() bool {
	return len(c.values) == 0
}

func (c *UniqueCollection[V, K]) At(at Index) (V, error) {
	err := c.checkIndex(at)
	if err != nil {
		var zero V
		return zero, err
	}

	return c.values[at], nil
}

func (c *UniqueCollection[V, K]) Contains(key K) bool {
	_, ok := c.keys[key]
	return ok
}

func (c *UniqueCollection[V, K]) IndexOf(key K) (Index, bool) {
	if !c.Contains(key) {
		return 0, false
	}

	for i, v := range c.values {
		if c.key(v) == key {
			return Index(i), true
		}
	}

	return 0, false
}

// Values returns a copy of the sequence.
func (c *UniqueCollection[V, K]) Values() []V {
	return slices.Clone(c.values)
}

func (c *UniqueCollection[V, K]) Keys() []K {
	keys := make([]K, len(c.values))
	for i, v := range c.values {
		keys[i] = c.key(v)
	}

	return keys
}

func (c *UniqueCollection[V, K]) Clone() *UniqueCollection[V, K] {
	keys := make(map[K]struct{}, len(c.keys))
	for k := range c.keys {
		keys[k] = struct{}{}
	}

	return &UniqueCollection[V, K]{
		key:    c.key,
		values: slices.Clone(c.values),
		keys:   keys,
	}
}

func (c *UniqueCollection[V, K]) Insert(v V, at Index) error {
	key := c.key(v)
	if c.Contains(key) {
		return fmt.Errorf("key %v is already present: %w", key, modelError.ErrDuplicateKey)
	}
	if int(at) > len(c.values) || uint64(len(c.values)) >= MaxLen {
		return fmt.Errorf("index %d: %w", at, modelError.ErrIndexOutOfRange)
	}

	c.values = slices.Insert(c.values, int(at), v)
	c.keys[key] = struct{}{}
	return nil
}

func (c *UniqueCollection[V, K]) Append(v V) error {
	return c.Insert(v, Index(len(c.values)))
}

// InsertMany inserts all values at once. Entries are applied in ascending
// index order, so every index is the position the value occupies once the
// whole batch is in place. Nothing is inserted unless the whole batch is valid.
func (c *UniqueCollection[V, K]) InsertMany(values map[Index]V) error {
	indices := sortedIndices(values)

	if uint64(len(c.values)+len(indices)) > MaxLen {
		return fmt.Errorf("batch of %d values: %w", len(indices), modelError.ErrIndexOutOfRange)
	}

	batchKeys := make(map[K]struct{}, len(values))
	for n, at := range indices {
		if int(at) > len(c.values)+n {
			return fmt.Errorf("index %d: %w", at, modelError.ErrIndexOutOfRange)
		}

		key := c.key(values[at])
		if c.Contains(key) {
			return fmt.Errorf("key %v is already present: %w", key, modelError.ErrDuplicateKey)
		}
		if _, ok := batchKeys[key]; ok {
			return fmt.Errorf("key %v is repeated in batch: %w", key, modelError.ErrDuplicateKey)
		}
		batchKeys[key] = struct{}{}
	}

	c.values = slices.Grow(c.values, len(indices))
	for _, at := range indices {
		v := values[at]
		c.values = slices.Insert(c.values, int(at), v)
		c.keys[c.key(v)] = struct{}{}
	}

	return nil
}

func (c *UniqueCollection[V, K]) Remove(at Index) (V, error) {
	err := c.checkIndex(at)
	if err != nil {
		var zero V
		return zero, err
	}

	return c.removeAt(at), nil
}

// RemoveMany removes the values at the given positions and returns them keyed
// by the position they had before removal. Passing the result to InsertMany
// restores the collection.
func (c *UniqueCollection[V, K]) RemoveMany(at []Index) (map[Index]V, error) {
	unique := make(map[Index]struct{}, len(at))
	for _, i := range at {
		unique[i] = struct{}{}
	}

	indices := sortedIndices(unique)
	for _, i := range indices {
		err := c.checkIndex(i)
		if err != nil {
			return nil, err
		}
	}

	removed := make(map[Index]V, len(indices))
	for n, i := range indices {
		removed[i] = c.removeAt(i - Index(n))
	}

	return removed, nil
}

// Move shifts the value at from to position to, sliding the values between
// them by one.
func (c *UniqueCollection[V, K]) Move(from Index, to Index) error {
	err := c.checkIndex(from)
	if err != nil {
		return err
	}

	err = c.checkIndex(to)
	if err != nil {
		return err
	}

	v := c.values[from]
	if from < to {
		copy(c.values[from:to], c.values[from+1:to+1])
	} else {
		copy(c.values[to+1:from+1], c.values[to:from])
	}
	c.values[to] = v

	return nil
}

func (c *UniqueCollection[V, K]) removeAt(at Index) V {
	v := c.values[at]
	c.values = slices.Delete(c.values, int(at), int(at)+1)
	delete(c.keys, c.key(v))
	return v
}

func (c *UniqueCollection[V, K]) checkIndex(at Index) error {
	if int(at) >= len(c.values) {
		return fmt.Errorf("index %d: %w", at, modelError.ErrIndexOutOfRange)
	}

	return nil
}

func sortedIndices[T any](m map[Index]T) []Index {
	indices := make([]Index, 0, len(m))
	for i := range m {
		indices = append(indices, i)
	}
	slices.Sort(indices)

	return indices
}
