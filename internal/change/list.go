package change

import (
	"maps"
	"slices"
)

// List tracks which keys joined or left a keyed collection since its last
// saved baseline. Re-inserting a key that was just removed cancels out.
type List[T comparable] struct {
	original map[T]struct{}
	added    map[T]struct{}
	removed  map[T]struct{}
}

func NewList[T comparable](original []T) List[T] {
	l := List[T]{}
	l.Reset(original)
	return l
}

// Reset makes original the new baseline and discards tracked changes.
func (l *List[T]) Reset(original []T) {
	l.original = make(map[T]struct{}, len(original))
	for _, key := range original {
		l.original[key] = struct{}{}
	}
	l.added = make(map[T]struct{})
	l.removed = make(map[T]struct{})
}

// TrackAdded records that key was inserted into the collection.
func (l *List[T]) TrackAdded(key T) {
	if _, ok := l.removed[key]; ok {
		delete(l.removed, key)
		return
	}

	if _, ok := l.original[key]; !ok {
		l.added[key] = struct{}{}
	}
}

// TrackRemoved records that key was removed from the collection.
func (l *List[T]) TrackRemoved(key T) {
	if _, ok := l.added[key]; ok {
		delete(l.added, key)
		return
	}

	if _, ok := l.original[key]; ok {
		l.removed[key] = struct{}{}
	}
}

func (l *List[T]) IsOriginal(key T) bool {
	_, ok := l.original[key]
	return ok
}

func (l *List[T]) GetAdded() []T {
	return slices.Collect(maps.Keys(l.added))
}

func (l *List[T]) GetRemoved() []T {
	return slices.Collect(maps.Keys(l.removed))
}

// HasChanges reports whether any net addition or removal remains.
func (l *List[T]) HasChanges() bool {
	return len(l.added) > 0 || len(l.removed) > 0
}
