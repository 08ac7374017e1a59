package bfs

import (
	"cmp"
	"context"
	"slices"

	"github.com/katalvlaran/randnet/core"
)

// Components partitions the vertices of g into connected components.
// Each component lists its vertices ascending; components are ordered by
// size descending, ties broken by smallest vertex.
//
// One walker is reused for every component: its depth slice marks the
// vertices already assigned, and an OnEnqueue hook collects the members of
// the component being explored.
//
// Complexity: O(V + E + C·log C) for C components.
func Components(ctx context.Context, g core.Topology) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()

	var comp []int
	o, _ := resolve([]Option{
		WithContext(ctx),
		WithOnEnqueue(func(id, _ int) { comp = append(comp, id) }),
	})
	w := newWalker(g, o, filled(n, Unreached), false)

	var comps [][]int
	for s := 0; s < n; s++ {
		if w.depth[s] != Unreached {
			continue
		}
		comp = nil
		if err := w.run(s); err != nil {
			return nil, err
		}
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	slices.SortStableFunc(comps, func(a, b []int) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a[0], b[0])
	})

	return comps, nil
}
