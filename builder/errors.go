// SPDX-License-Identifier: MIT
// Package: randnet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`: "<Method>: <detail>: <sentinel>".
//   • Constructors never panic at runtime; option constructors may (WithRand(nil)).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, or k relative to n)
// is outside the allowed range for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrOddNeighbors indicates that a ring-lattice neighbor count k is odd;
// every vertex is joined to k/2 neighbors on each side, so k must be even.
var ErrOddNeighbors = errors.New("builder: neighbor count must be even")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the target graph could not host the
// topology: nil constructor, factory failure, or a vertex-count mismatch.
var ErrConstructFailed = errors.New("builder: construction failed")
