// validators.go - parameter contracts shared by the constructors.
// Each helper returns an error wrapping the matching sentinel.

package builder

import (
	"fmt"

	"github.com/katalvlaran/randnet/core"
)

// validateMin ensures that n ≥ MinVertices.
// Complexity: O(1).
func validateMin(method string, n int) error {
	if n < MinVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, MinVertices, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateNeighbors checks the ring-lattice parameter k: even and 0 ≤ k < n.
// Complexity: O(1).
func validateNeighbors(method string, n, k int) error {
	if k%2 != 0 {
		return fmt.Errorf("%s: k=%d: %w", method, k, ErrOddNeighbors)
	}
	if k < 0 || k >= n {
		return fmt.Errorf("%s: k=%d must satisfy 0 ≤ k < n=%d: %w", method, k, n, ErrTooFewVertices)
	}

	return nil
}

// validateTarget ensures g exists and has exactly n vertices.
// Complexity: O(1).
func validateTarget(method string, g core.Topology, n int) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", method, ErrConstructFailed)
	}
	if got := g.VertexCount(); got != n {
		return fmt.Errorf("%s: graph has %d vertices, want %d: %w", method, got, n, ErrConstructFailed)
	}

	return nil
}

// needsRand reports an error when p is strictly between 0 and 1 and no RNG
// was configured; p ∈ {0,1} is deterministic.
func needsRand(method string, cfg builderConfig, p float64) error {
	if cfg.rng == nil && p > MinProbability && p < MaxProbability {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}
