// SPDX-License-Identifier: MIT
// Package: randnet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator per shape: BuildGraph for a single graph, Generate for a
//     Trial Collection. Both allocate through a core.Factory, resolve cfg once,
//     and run constructors in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/randnet/common"
	"github.com/katalvlaran/randnet/core"
)

// Constructor applies a deterministic graph mutation to g using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Check that g has the vertex count they were declared with.
//   - Preserve determinism for the same config and call order.
type Constructor func(g core.Mutator, cfg builderConfig) error

// BuildGraph allocates an n-vertex graph from factory, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(factory core.Factory, n int, bopts []BuilderOption, cons ...Constructor) (core.Mutator, error) {
	return build(factory, n, newBuilderConfig(bopts...), cons)
}

// Generate produces exactly trials graphs of n vertices by running ctor
// against a fresh graph from factory each time. The returned collection is in
// generation order. The shared RNG in opts is consumed in that same order, so a
// fixed seed reproduces the whole collection.
//
// Progress is logged as "Running loop on graph number: i" (1-based) through
// the logger carried by ctx. Cancellation is checked between trials.
//
// Errors:
//   - ErrTooFewVertices when trials < 1.
//   - Any constructor or factory error, wrapped with the trial number.
//   - ctx.Err() when cancelled.
func Generate(ctx context.Context, factory core.Factory, n int, ctor Constructor, trials int, opts ...BuilderOption) ([]core.Topology, error) {
	if trials < 1 {
		return nil, fmt.Errorf("%s: trials=%d < 1: %w", MethodGenerate, trials, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	logger := common.Logger(ctx)

	graphs := make([]core.Topology, 0, trials)
	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Infof("Running loop on graph number: %d", i+1)
		g, err := build(factory, n, cfg, []Constructor{ctor})
		if err != nil {
			return nil, fmt.Errorf("%s: graph %d: %w", MethodGenerate, i+1, err)
		}
		graphs = append(graphs, g)
	}

	return graphs, nil
}

// build is the shared body of BuildGraph and Generate.
func build(factory core.Factory, n int, cfg builderConfig, cons []Constructor) (core.Mutator, error) {
	if factory == nil {
		return nil, fmt.Errorf("%s: nil factory: %w", MethodBuildGraph, ErrConstructFailed)
	}
	if err := validateMin(MethodBuildGraph, n); err != nil {
		return nil, err
	}
	g, err := factory(n, cfg.edgeHint)
	if err != nil {
		return nil, fmt.Errorf("%s: factory: %v: %w", MethodBuildGraph, err, ErrConstructFailed)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}
