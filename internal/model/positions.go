package model

import (
	"github.com/the127/attestate/internal/collection"
)

// positions snapshots a sequence as a map from key to position.
func positions[V any, K comparable](values []V, key func(V) K) map[K]collection.Index {
	result := make(map[K]collection.Index, len(values))
	for i, v := range values {
		result[key(v)] = collection.Index(i)
	}

	return result
}
