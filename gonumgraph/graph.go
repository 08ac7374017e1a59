// Package gonumgraph exposes a gonum simple.UndirectedGraph through the
// core capability interfaces, so every generator and analyzer in randnet can
// run against gonum's graph implementation and algorithms.
//
// Vertices are the gonum nodes 0..n-1, all added at construction. Shortest
// paths come from path.DijkstraFrom (uniform edge cost) and components from
// topo.ConnectedComponents.
package gonumgraph

import (
	"context"
	"fmt"
	"iter"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/randnet/core"
)

// Graph adapts *simple.UndirectedGraph to core.Mutator and core.ShortestPather.
// It is not safe for concurrent mutation.
type Graph struct {
	g *simple.UndirectedGraph
	n int
	m int
}

// New returns a Graph with n isolated vertices.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, core.ErrNegativeOrder
	}
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}

	return &Graph{g: g, n: n}, nil
}

// NewFactory returns a core.Factory producing gonum-backed graphs.
// The edge hint is ignored; gonum sizes its maps on demand.
func NewFactory() core.Factory {
	return func(n, _ int) (core.Mutator, error) {
		return New(n)
	}
}

// Unwrap returns the underlying gonum graph.
func (a *Graph) Unwrap() *simple.UndirectedGraph { return a.g }

// VertexCount returns n.
func (a *Graph) VertexCount() int { return a.n }

// EdgeCount returns the number of undirected edges.
func (a *Graph) EdgeCount() int { return a.m }

// Degree returns the number of neighbors of id.
func (a *Graph) Degree(id int) (int, error) {
	if !a.has(id) {
		return 0, fmt.Errorf("Degree(%d): %w", id, core.ErrVertexNotFound)
	}

	return a.g.From(int64(id)).Len(), nil
}

// Neighbors yields the neighbors of id in gonum's iteration order.
func (a *Graph) Neighbors(id int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !a.has(id) {
			return
		}
		it := a.g.From(int64(id))
		for it.Next() {
			if !yield(int(it.Node().ID())) {
				return
			}
		}
	}
}

// HasEdge reports whether u and v are adjacent.
func (a *Graph) HasEdge(u, v int) bool {
	if !a.has(u) || !a.has(v) {
		return false
	}

	return a.g.HasEdgeBetween(int64(u), int64(v))
}

// AddEdge inserts u–v, enforcing the same rules as core.Graph: both vertices
// must exist, no self-loops, no parallel edges. gonum panics on self edges,
// so the checks happen here first.
func (a *Graph) AddEdge(u, v int) error {
	switch {
	case !a.has(u) || !a.has(v):
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, core.ErrVertexNotFound)
	case u == v:
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, core.ErrLoopNotAllowed)
	case a.g.HasEdgeBetween(int64(u), int64(v)):
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, core.ErrMultiEdgeNotAllowed)
	}
	a.g.SetEdge(a.g.NewEdge(simple.Node(u), simple.Node(v)))
	a.m++

	return nil
}

// RemoveEdge deletes u–v.
func (a *Graph) RemoveEdge(u, v int) error {
	if !a.HasEdge(u, v) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, core.ErrEdgeNotFound)
	}
	a.g.RemoveEdge(int64(u), int64(v))
	a.m--

	return nil
}

// HopDistances runs gonum's Dijkstra with uniform cost from source and
// converts the result to hop counts; unreachable vertices report -1.
//
// Complexity: O((V + E) log V).
func (a *Graph) HopDistances(ctx context.Context, source int) ([]int, error) {
	if !a.has(source) {
		return nil, fmt.Errorf("HopDistances(%d): %w", source, core.ErrVertexNotFound)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sp := path.DijkstraFrom(simple.Node(source), a.g)
	dist := make([]int, a.n)
	for v := range dist {
		w := sp.WeightTo(int64(v))
		if math.IsInf(w, 1) {
			dist[v] = -1
			continue
		}
		dist[v] = int(w)
	}

	return dist, nil
}

// Components returns the connected components using topo.ConnectedComponents,
// normalised to the bfs.Components order: vertices ascending within a
// component, components by size descending then smallest vertex.
func (a *Graph) Components(ctx context.Context) ([][]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := topo.ConnectedComponents(a.g)

	comps := make([][]int, 0, len(raw))
	for _, c := range raw {
		comps = append(comps, nodeIDs(c))
	}
	slices.SortStableFunc(comps, func(x, y []int) int {
		if len(x) != len(y) {
			return len(y) - len(x)
		}
		return x[0] - y[0]
	})

	return comps, nil
}

// nodeIDs converts gonum nodes to sorted ints.
func nodeIDs(nodes []graph.Node) []int {
	ids := make([]int, len(nodes))
	for i, nd := range nodes {
		ids[i] = int(nd.ID())
	}
	slices.Sort(ids)

	return ids
}

func (a *Graph) has(id int) bool { return id >= 0 && id < a.n }

var (
	_ core.Mutator         = (*Graph)(nil)
	_ core.ShortestPather  = (*Graph)(nil)
	_ core.ComponentFinder = (*Graph)(nil)
)
