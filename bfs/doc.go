// Package bfs provides a breadth-first search over a core.Topology,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start, Unreached otherwise
//   - Parent: vertex → predecessor in the BFS tree, Unreached otherwise
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a vertex is discovered)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Built on the same walker
//
//   - Distances: single-source hop distances with a reusable buffer, no
//     hooks and no parent/order tracing. metrics runs it once per vertex to
//     obtain the average path length.
//   - Components: connected components, largest first, collected through an
//     OnEnqueue hook while one walker sweeps every unvisited vertex.
//
// Determinism
//
//	Neighbors are enqueued in the order the Topology yields them, so the
//	visit sequence is reproducible for a fixed graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, Depth, Parent)
//
// Usage
//
//	result, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // context errors, or hook errors
//	}
//
//	dist, err := bfs.Distances(ctx, g, 0, nil)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex is outside 0..n-1.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
