// File: methods_vertices.go
// Role: Vertex queries: VertexCount, Vertices, Degree, Neighbors, NeighborIDs.
//
// Determinism:
//   - Vertices() returns 0..n-1 ascending.
//   - NeighborIDs() returns neighbors sorted ascending.
//   - Neighbors() yields in adjacency order, which is stable for a fixed
//     sequence of mutations.
//
// Concurrency:
//   - All queries take the read lock.

package core

import (
	"fmt"
	"iter"
	"slices"
)

// VertexCount returns the number of vertices n.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, len(g.adj))
	for i := range ids {
		ids[i] = i
	}

	return ids
}

// Degree returns the number of edges incident to id.
//
// Errors:
//   - ErrVertexNotFound: id outside 0..n-1.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(id) {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}

	return len(g.adj[id]), nil
}

// Neighbors yields the neighbors of id. The read lock is held for the whole
// iteration, so the loop body must not mutate g, and must not start another
// Neighbors iteration of g either: sync.RWMutex forbids recursive read
// locking, and a writer queued in between would deadlock both. Copy the
// neighbors out first (or use NeighborIDs) when a nested walk is needed.
//
// Complexity: O(deg(id)) for a full iteration, no allocation.
func (g *Graph) Neighbors(id int) iter.Seq[int] {
	return func(yield func(int) bool) {
		g.mu.RLock()
		defer g.mu.RUnlock()

		if !g.hasVertex(id) {
			return
		}
		for _, nbr := range g.adj[id] {
			if !yield(nbr) {
				return
			}
		}
	}
}

// NeighborIDs returns a sorted copy of the neighbors of id.
//
// Errors:
//   - ErrVertexNotFound: id outside 0..n-1.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(id) {
		return nil, ErrVertexNotFound
	}
	out := slices.Clone(g.adj[id])
	slices.Sort(out)

	return out, nil
}

// hasVertex is the lock-free membership test; callers hold g.mu.
func (g *Graph) hasVertex(id int) bool {
	return id >= 0 && id < len(g.adj)
}
