package model

import (
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/utils/pointer"
)

// Field is a single versioned value. It is modified when it has no original
// or when the current value differs from the original.
type Field[T any] struct {
	value       T
	original    T
	hasOriginal bool
	modified    bool
	equal       func(a, b T) bool
}

// NewField creates a field without an original, which is always modified.
func NewField[T any](value T, equal func(a, b T) bool) Field[T] {
	return Field[T]{
		value:    value,
		modified: true,
		equal:    equal,
	}
}

// LoadField creates a field whose original is value.
func LoadField[T any](value T, equal func(a, b T) bool) Field[T] {
	return Field[T]{
		value:       value,
		original:    value,
		hasOriginal: true,
		equal:       equal,
	}
}

func (f *Field[T]) Get() T {
	return f.value
}

func (f *Field[T]) Set(value T) {
	if f.equal(value, f.value) {
		return
	}

	f.value = value
	f.modified = !f.hasOriginal || !f.equal(value, f.original)
}

func (f *Field[T]) IsModified() bool {
	return f.modified
}

// Commit makes the current value the original.
func (f *Field[T]) Commit() {
	f.original = f.value
	f.hasOriginal = true
	f.modified = false
}

func equalValues[T comparable](a, b T) bool {
	return a == b
}

func equalPointers[T comparable](a, b *T) bool {
	return pointer.Equal(a, b)
}

func equalIds(a, b ids.ID) bool {
	return a.Equal(b)
}

func newValueField[T comparable](value T) Field[T] {
	return NewField(value, equalValues[T])
}

func loadValueField[T comparable](value T) Field[T] {
	return LoadField(value, equalValues[T])
}

func newPointerField[T comparable](value *T) Field[*T] {
	return NewField(pointer.Clone(value), equalPointers[T])
}

func loadPointerField[T comparable](value *T) Field[*T] {
	return LoadField(pointer.Clone(value), equalPointers[T])
}
