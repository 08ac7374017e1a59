// SPDX-License-Identifier: MIT
// Package: randnet/builder
//
// impl_erdos_renyi.go - implementation of ErdosRenyi(n, p) constructor.
//
// Model G(n,p): each of the C(n,2) unordered pairs is an edge independently
// with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - p == 0 yields the empty graph and p == 1 the complete graph; neither
//     consumes randomness.
//
// Implementation:
//   - Stage 1: Validate parameters and the target graph.
//   - Stage 2: Geometric skip over the lower-triangle pair sequence
//     (w,v), w < v (Batagelj & Brandes): the gap to the next edge is
//     1 + ⌊log1p(-r)/log1p(-p)⌋, so only emitted edges cost work.
//     log1p keeps tiny p distinguishable from 0; a gap reaching C(n,2)
//     (or +Inf) ends the sampling.
//
// Complexity:
//   - Time: O(n + m) expected, m the number of edges emitted.
//   - Space: O(1) extra.
//
// Determinism:
//   - Pairs are visited in order (v asc, w asc within v), one uniform draw per
//     emitted edge plus one final draw; identical for a fixed seed.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/randnet/core"
)

// ErdosRenyi returns a Constructor that samples G(n,p) into an n-vertex graph.
func ErdosRenyi(n int, p float64) Constructor {
	return func(g core.Mutator, cfg builderConfig) error {
		// Stage 1: validation.
		if err := validateMin(MethodErdosRenyi, n); err != nil {
			return err
		}
		if err := validateProbability(MethodErdosRenyi, p); err != nil {
			return err
		}
		if err := needsRand(MethodErdosRenyi, cfg, p); err != nil {
			return err
		}
		if err := validateTarget(MethodErdosRenyi, g, n); err != nil {
			return err
		}

		switch p {
		case MinProbability:
			return nil
		case MaxProbability:
			return addComplete(MethodErdosRenyi, g, n)
		}

		// Stage 2: geometric skip.
		lp := math.Log1p(-p)
		pairs := float64(n) * float64(n-1) / 2
		for v, w := 1, -1; v < n; {
			gap := math.Log1p(-cfg.rng.Float64()) / lp
			if math.IsNaN(gap) || gap >= pairs {
				break // the next edge lies past the last pair
			}
			w += 1 + int(gap)
			for w >= v && v < n {
				w -= v
				v++
			}
			if v < n {
				if err := g.AddEdge(w, v); err != nil {
					return fmt.Errorf("%s: %w", MethodErdosRenyi, err)
				}
			}
		}

		return nil
	}
}
