package pointer

// Equal reports whether both pointers are nil or both point to equal values.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

// Clone returns a pointer to a copy of the value p points to.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p
	return &v
}
