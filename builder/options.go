// SPDX-License-Identifier: MIT
// Package: randnet/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// The experiment driver shares one *rand.Rand across every trial and the
// sample draw, so a single seed reproduces a whole run.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithEdgeHint passes the expected number of edges to the Factory so the
// target graph can pre-size its edge catalog. Negative values panic.
func WithEdgeHint(m int) BuilderOption {
	if m < 0 {
		panic("builder: WithEdgeHint(m<0)")
	}
	return func(c *builderConfig) {
		c.edgeHint = m
	}
}
