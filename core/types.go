// File: types.go
// Role: Sentinel errors, capability interfaces and the Graph type.
//
// Errors:
//   - ErrNegativeOrder       - vertex count below zero.
//   - ErrVertexNotFound      - vertex ID outside 0..n-1.
//   - ErrEdgeNotFound        - requested edge does not exist.
//   - ErrLoopNotAllowed      - self-loop requested.
//   - ErrMultiEdgeNotAllowed - attempt to add a parallel edge.

package core

import (
	"context"
	"errors"
	"iter"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeOrder indicates NewGraph was asked for fewer than zero vertices.
	ErrNegativeOrder = errors.New("core: negative vertex count")

	// ErrVertexNotFound indicates an operation referenced a vertex outside 0..n-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Topology is the read-only capability set consumed by analysis code:
// vertex/edge counts, degree query, neighbor iteration and adjacency test.
//
// Implementations must report vertices as the dense range 0..VertexCount()-1.
type Topology interface {
	// VertexCount returns the number of vertices n.
	VertexCount() int

	// EdgeCount returns the number of undirected edges.
	EdgeCount() int

	// Degree returns the number of edges incident to id.
	Degree(id int) (int, error)

	// Neighbors yields every vertex adjacent to id exactly once.
	// An unknown id yields nothing.
	Neighbors(id int) iter.Seq[int]

	// HasEdge reports whether u and v are adjacent.
	HasEdge(u, v int) bool
}

// Mutator is a Topology that constructors can write edges into.
type Mutator interface {
	Topology

	// AddEdge inserts the undirected edge u–v.
	AddEdge(u, v int) error

	// RemoveEdge deletes the undirected edge u–v.
	RemoveEdge(u, v int) error
}

// ShortestPather is an optional capability: a graph that can answer
// single-source hop distances itself. Unreachable vertices report -1.
// Analysis code falls back to bfs when a graph does not implement it.
type ShortestPather interface {
	HopDistances(ctx context.Context, source int) ([]int, error)
}

// ComponentFinder is an optional capability: a graph that can partition its
// own vertices into connected components, each ascending, largest first.
type ComponentFinder interface {
	Components(ctx context.Context) ([][]int, error)
}

// Factory allocates an empty Mutator with n vertices and a hint of the
// expected number of edges (0 when unknown).
type Factory func(n, edgeHint int) (Mutator, error)

// Edge is an undirected edge with From < To.
type Edge struct {
	From int
	To   int
}

// edgeKey packs an unordered vertex pair into one map key.
type edgeKey uint64

// keyOf returns the canonical key for the pair {u,v}.
func keyOf(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}

	return edgeKey(uint64(uint32(u))<<32 | uint64(uint32(v)))
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithEdgeCapacity pre-sizes the edge catalog for m edges.
// Non-positive values are ignored.
func WithEdgeCapacity(m int) GraphOption {
	return func(g *Graph) {
		if m > 0 {
			g.edgeHint = m
		}
	}
}

// Graph is the in-memory undirected simple graph.
//
// adj[v] lists the neighbors of v in insertion order (removals swap the last
// neighbor into the freed slot). edges mirrors adj as a set of canonical pair
// keys for O(1) adjacency tests.
type Graph struct {
	mu sync.RWMutex // guards adj and edges

	edgeHint int

	adj   [][]int
	edges map[edgeKey]struct{}
}

// NewGraph creates a graph with n isolated vertices 0..n-1.
// Complexity: O(n) time and space.
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.adj = make([][]int, n)
	g.edges = make(map[edgeKey]struct{}, g.edgeHint)

	return g, nil
}

// NewFactory returns a Factory producing *Graph values.
func NewFactory() Factory {
	return func(n, edgeHint int) (Mutator, error) {
		return NewGraph(n, WithEdgeCapacity(edgeHint))
	}
}

var (
	_ Topology = (*Graph)(nil)
	_ Mutator  = (*Graph)(nil)
)
