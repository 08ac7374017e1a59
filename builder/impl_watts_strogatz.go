// SPDX-License-Identifier: MIT
// Package: randnet/builder
//
// impl_watts_strogatz.go - implementation of WattsStrogatz(n, k, p) constructor.
//
// Model: start from RingLattice(n,k); then, for each offset j = 1..k/2 and each
// vertex u in ascending order, with probability p replace the lattice edge
// (u, u+j mod n) by (u, w), w drawn uniformly among vertices that are neither
// u nor already adjacent to u. A vertex adjacent to every other vertex keeps
// its edge. The edge count n·k/2 is preserved.
//
// Contract:
//   - Same size checks as RingLattice.
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when p > 0 (else ErrNeedRandSource).
//   - p == 0 returns the ring lattice untouched and consumes no randomness.
//
// Complexity:
//   - Time: O(n·k) expected; the rejection draw for w terminates quickly
//     because deg(u) < n-1 guarantees a valid target exists.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/randnet/core"
)

// WattsStrogatz returns a Constructor that builds a small-world graph.
func WattsStrogatz(n, k int, p float64) Constructor {
	return func(g core.Mutator, cfg builderConfig) error {
		if err := validateRing(MethodWattsStrogatz, g, n, k); err != nil {
			return err
		}
		if err := validateProbability(MethodWattsStrogatz, p); err != nil {
			return err
		}
		// Rewiring targets are random even when p == 1.
		if cfg.rng == nil && p > MinProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodWattsStrogatz, ErrNeedRandSource)
		}

		if err := addRing(MethodWattsStrogatz, g, n, k); err != nil {
			return err
		}
		if p == MinProbability {
			return nil
		}

		for j := 1; j <= k/2; j++ {
			for u := 0; u < n; u++ {
				if p < MaxProbability && cfg.rng.Float64() >= p {
					continue
				}
				if err := rewire(g, cfg, n, u, (u+j)%n); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// rewire moves the edge u–v to u–w for a uniformly drawn admissible w.
func rewire(g core.Mutator, cfg builderConfig, n, u, v int) error {
	deg, err := g.Degree(u)
	if err != nil {
		return fmt.Errorf("%s: %w", MethodWattsStrogatz, err)
	}
	if deg >= n-1 {
		return nil // u is adjacent to everyone
	}

	w := u
	for w == u || g.HasEdge(u, w) {
		w = cfg.rng.Intn(n)
	}
	if err = g.RemoveEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w", MethodWattsStrogatz, err)
	}
	if err = g.AddEdge(u, w); err != nil {
		return fmt.Errorf("%s: %w", MethodWattsStrogatz, err)
	}

	return nil
}
