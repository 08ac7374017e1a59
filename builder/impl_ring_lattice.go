// SPDX-License-Identifier: MIT
// Package: randnet/builder
//
// impl_ring_lattice.go - implementation of RingLattice(n, k) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - k even (else ErrOddNeighbors) and 0 ≤ k < n (else ErrTooFewVertices).
//   - Vertex u is joined to u±1 … u±k/2 (mod n); every degree is exactly k.
//
// Complexity:
//   - Time: O(n·k).
//   - Space: O(1) extra.
//
// Determinism:
//   - Edges are emitted by offset j asc, then u asc: (u, u+j mod n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/randnet/core"
)

// RingLattice returns a Constructor that builds the circulant ring lattice
// in which every vertex is adjacent to its k nearest ring neighbors.
func RingLattice(n, k int) Constructor {
	return func(g core.Mutator, cfg builderConfig) error {
		if err := validateRing(MethodRingLattice, g, n, k); err != nil {
			return err
		}

		return addRing(MethodRingLattice, g, n, k)
	}
}

// validateRing runs the checks shared by RingLattice and WattsStrogatz.
func validateRing(method string, g core.Mutator, n, k int) error {
	if err := validateMin(method, n); err != nil {
		return err
	}
	if err := validateNeighbors(method, n, k); err != nil {
		return err
	}

	return validateTarget(method, g, n)
}

// addRing emits the edges (u, u+j mod n) for j = 1..k/2 and every u.
func addRing(method string, g core.Mutator, n, k int) error {
	for j := 1; j <= k/2; j++ {
		for u := 0; u < n; u++ {
			v := (u + j) % n
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: %w", method, err)
			}
		}
	}

	return nil
}
