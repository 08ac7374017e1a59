// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges sorted by (From, To) ascending.
//
// Concurrency:
//   - Mutations under the write lock; queries under the read lock.

package core

import (
	"cmp"
	"fmt"
	"slices"
)

// AddEdge inserts the undirected edge u–v.
//
// Steps:
//  1. Validate both endpoints (ErrVertexNotFound) and reject loops (ErrLoopNotAllowed).
//  2. Reject an existing pair (ErrMultiEdgeNotAllowed).
//  3. Record the key in the catalog and append each endpoint to the other's list.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertex(u) || !g.hasVertex(v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	k := keyOf(u, v)
	if _, exists := g.edges[k]; exists {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	g.edges[k] = struct{}{}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)

	return nil
}

// RemoveEdge deletes the undirected edge u–v.
//
// Errors:
//   - ErrVertexNotFound: an endpoint is outside 0..n-1.
//   - ErrEdgeNotFound: the pair is not adjacent.
//
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertex(u) || !g.hasVertex(v) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	k := keyOf(u, v)
	if _, exists := g.edges[k]; !exists {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}

	delete(g.edges, k)
	g.adj[u] = dropNeighbor(g.adj[u], v)
	g.adj[v] = dropNeighbor(g.adj[v], u)

	return nil
}

// HasEdge reports whether u and v are adjacent. Unknown vertices yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u == v || !g.hasVertex(u) || !g.hasVertex(v) {
		return false
	}
	_, ok := g.edges[keyOf(u, v)]

	return ok
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns every edge once with From < To, sorted ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})

	return out
}

// dropNeighbor removes the first occurrence of x by swapping in the last element.
func dropNeighbor(list []int, x int) []int {
	for i, y := range list {
		if y == x {
			last := len(list) - 1
			list[i] = list[last]
			return list[:last]
		}
	}

	return list
}
