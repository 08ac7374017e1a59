// File: sample.go
// Role: uniform sampling of trial indices without replacement.

package experiment

import (
	"fmt"
	"math/rand"
)

// SampleIndices draws k distinct indices uniformly without replacement from
// [0, n), returned in draw order. It uses a partial Fisher–Yates shuffle, so
// exactly k values are consumed from rng.
//
// Complexity: O(n) time and space.
func SampleIndices(rng *rand.Rand, n, k int) ([]int, error) {
	if k < 0 || k > n {
		return nil, fmt.Errorf("SampleIndices: k=%d, n=%d: %w", k, n, ErrSampleTooLarge)
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k:k], nil
}
