// File: pathlength.go
// Role: all-pairs average path length, optionally on the largest component.
//
// Backends:
//   - core.ShortestPather / core.ComponentFinder when the graph offers them,
//     bfs.Distances / bfs.Components otherwise.

package metrics

import (
	"context"
	"fmt"

	"github.com/katalvlaran/randnet/bfs"
	"github.com/katalvlaran/randnet/core"
)

// AveragePathLength returns the mean shortest-path hop count over all ordered
// pairs of distinct vertices. A single-vertex graph has path length 0.
//
// Errors:
//   - ErrEmptyGraph when g has no vertices.
//   - *DisconnectedGraphError (errors.Is ErrDisconnected) when some pair is
//     unreachable.
//   - ctx.Err() when cancelled between sources.
//
// Graphs implementing core.ShortestPather answer their own single-source
// queries; all others go through bfs.Distances.
//
// Complexity: O(V·(V + E)) with the bfs fallback.
func AveragePathLength(ctx context.Context, g core.Topology) (float64, error) {
	n := g.VertexCount()
	switch n {
	case 0:
		return 0, ErrEmptyGraph
	case 1:
		return 0, nil
	}

	var (
		dist []int
		err  error
		sum  int64
	)
	for s := 0; s < n; s++ {
		if err = ctx.Err(); err != nil {
			return 0, err
		}
		if dist, err = hopDistances(ctx, g, s, dist); err != nil {
			return 0, fmt.Errorf("AveragePathLength: source %d: %w", s, err)
		}
		for _, d := range dist {
			if d == bfs.Unreached {
				return 0, disconnected(ctx, g)
			}
			sum += int64(d)
		}
	}

	return float64(sum) / float64(n*(n-1)), nil
}

// AveragePathLengthLargestComponent returns AveragePathLength of the subgraph
// induced by the largest connected component; ties go to the component with
// the smallest vertex. A connected graph gives the same value as
// AveragePathLength.
//
// Complexity: O(V + E) for the components plus O(L·(L + E_L)) on the
// L-vertex component.
func AveragePathLengthLargestComponent(ctx context.Context, g core.Topology) (float64, error) {
	comps, err := components(ctx, g)
	if err != nil {
		return 0, err
	}
	if len(comps) == 0 {
		return 0, ErrEmptyGraph
	}
	if len(comps) == 1 {
		return AveragePathLength(ctx, g)
	}
	sub, err := core.Induced(g, comps[0])
	if err != nil {
		return 0, fmt.Errorf("AveragePathLengthLargestComponent: %w", err)
	}

	return AveragePathLength(ctx, sub)
}

// disconnected builds the error describing g's component structure.
func disconnected(ctx context.Context, g core.Topology) error {
	comps, err := components(ctx, g)
	if err != nil {
		return err
	}

	return &DisconnectedGraphError{Components: len(comps), Largest: len(comps[0])}
}

// hopDistances dispatches to the graph's own shortest paths when available.
func hopDistances(ctx context.Context, g core.Topology, source int, buf []int) ([]int, error) {
	if sp, ok := g.(core.ShortestPather); ok {
		return sp.HopDistances(ctx, source)
	}

	return bfs.Distances(ctx, g, source, buf)
}

// components dispatches to the graph's own component finder when available.
func components(ctx context.Context, g core.Topology) ([][]int, error) {
	if cf, ok := g.(core.ComponentFinder); ok {
		return cf.Components(ctx)
	}

	return bfs.Components(ctx, g)
}
