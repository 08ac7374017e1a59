// File: view.go
// Role: Non-mutating graph views built from any Topology.
// Determinism:
//   - Induced relabels kept vertices by their position in keep.
// Concurrency:
//   - Reads go through the Topology interface only; the result is a fresh graph.

package core

import "fmt"

// Induced returns the subgraph of src induced by the vertices in keep.
// Vertex keep[i] becomes vertex i of the result; an edge is copied when both
// endpoints are kept. The input graph is not mutated.
//
// Errors:
//   - ErrVertexNotFound: keep names a vertex outside src.
//
// Complexity: O(Σ deg(keep)).
func Induced(src Topology, keep []int) (*Graph, error) {
	n := src.VertexCount()
	pos := make(map[int]int, len(keep))
	for i, id := range keep {
		if id < 0 || id >= n {
			return nil, fmt.Errorf("Induced: vertex %d: %w", id, ErrVertexNotFound)
		}
		pos[id] = i
	}

	out, err := NewGraph(len(keep))
	if err != nil {
		return nil, err
	}
	for i, id := range keep {
		for nbr := range src.Neighbors(id) {
			j, ok := pos[nbr]
			if !ok || j <= i {
				continue // each kept edge is added from its lower endpoint
			}
			if err = out.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("Induced: %w", err)
			}
		}
	}

	return out, nil
}
