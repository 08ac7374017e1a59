// SPDX-License-Identifier: MIT
// Package: randnet/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n²) edges emission.
//   • Space: O(1) extra.
//
// Determinism:
//   • Deterministic pair order: lexicographic by (i,j), i<j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/randnet/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g core.Mutator, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n); err != nil {
			return err
		}
		if err := validateTarget(MethodComplete, g, n); err != nil {
			return err
		}

		return addComplete(MethodComplete, g, n)
	}
}

// addComplete emits every pair {i,j}, i<j, into g. Shared by Complete and
// the p == 1 shortcut of ErdosRenyi.
func addComplete(method string, g core.Mutator, n int) error {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return fmt.Errorf("%s: %w", method, err)
			}
		}
	}

	return nil
}
