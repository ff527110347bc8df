package diff

import (
	"fmt"
	"maps"
	"slices"

	"github.com/the127/attestate/internal/utils/modelError"
	"github.com/the127/attestate/internal/utils/pointer"
)

// Change is the transition of a single key. A nil Old means the key is
// added, a nil New means it is removed.
type Change[V comparable] struct {
	Old *V
	New *V
}

func Added[V comparable](v V) Change[V] {
	return Change[V]{New: &v}
}

func Removed[V comparable](v V) Change[V] {
	return Change[V]{Old: &v}
}

func Updated[V comparable](old V, updated V) Change[V] {
	return Change[V]{Old: &old, New: &updated}
}

func (c Change[V]) Equal(o Change[V]) bool {
	return pointer.Equal(c.Old, o.Old) && pointer.Equal(c.New, o.New)
}

func (c Change[V]) String() string {
	return fmt.Sprintf("(%s, %s)", format(c.Old), format(c.New))
}

// Patch maps keys to the change between two snapshots.
type Patch[K comparable, V comparable] map[K]Change[V]

func (p Patch[K, V]) Empty() bool {
	return len(p) == 0
}

func (p Patch[K, V]) Equal(o Patch[K, V]) bool {
	return maps.EqualFunc(p, o, Change[V].Equal)
}

// SortedKeys returns the patch keys ordered by less.
func (p Patch[K, V]) SortedKeys(less func(a, b K) int) []K {
	return slices.SortedFunc(maps.Keys(p), less)
}

// Compute returns the patch transforming v1 into v2.
func Compute[K comparable, V comparable](v1 map[K]V, v2 map[K]V) Patch[K, V] {
	result := make(Patch[K, V])
	for k, old := range v1 {
		updated, ok := v2[k]
		switch {
		case !ok:
			result[k] = Removed(old)
		case old != updated:
			result[k] = Updated(old, updated)
		}
	}

	for k, added := range v2 {
		if _, ok := v1[k]; !ok {
			result[k] = Added(added)
		}
	}

	return result
}

// Apply checks that p is a patch of v and applies it in place. v is left
// untouched when the check fails.
func Apply[K comparable, V comparable](v map[K]V, p Patch[K, V]) error {
	for k, c := range p {
		err := check(v, k, c)
		if err != nil {
			return err
		}
	}

	for k, c := range p {
		if c.New == nil {
			delete(v, k)
		} else {
			v[k] = *c.New
		}
	}

	return nil
}

// Reverse returns the patch undoing p.
func Reverse[K comparable, V comparable](p Patch[K, V]) Patch[K, V] {
	result := make(Patch[K, V], len(p))
	for k, c := range p {
		result[k] = Change[V]{Old: c.New, New: c.Old}
	}

	return result
}

func check[K comparable, V comparable](v map[K]V, k K, c Change[V]) error {
	current, ok := v[k]

	if c.Old == nil {
		if c.New == nil {
			return fmt.Errorf("both values are absent for key %v: %w", k, modelError.ErrDegeneratePatch)
		}
		if ok {
			return fmt.Errorf("key %v is not expected: %w", k, modelError.ErrInconsistentPatch)
		}
		return nil
	}

	if !ok {
		return fmt.Errorf("key %v not found: %w", k, modelError.ErrInconsistentPatch)
	}
	if current != *c.Old {
		return fmt.Errorf("value for key %v mismatch, expected %v, got %v: %w", k, *c.Old, current, modelError.ErrInconsistentPatch)
	}
	if c.New != nil && *c.New == *c.Old {
		return fmt.Errorf("equal values %v for key %v: %w", *c.Old, k, modelError.ErrDegeneratePatch)
	}

	return nil
}

func format[V any](v *V) string {
	if v == nil {
		return "none"
	}

	return fmt.Sprint(*v)
}
