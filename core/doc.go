// Package core provides the undirected simple Graph used by every randnet
// experiment, together with the capability interfaces the rest of the module
// is written against.
//
// The Graph G = (V,E) has a fixed vertex set V = {0..n-1}:
//
//   - No self-loops (AddEdge(v,v) → ErrLoopNotAllowed).
//   - No parallel edges (second AddEdge(u,v) → ErrMultiEdgeNotAllowed).
//   - Constant-time adjacency tests via a catalog of canonical pair keys.
//   - Allocation-free neighbor iteration via iter.Seq.
//   - One sync.RWMutex; queries share the read lock.
//
// Capabilities:
//
//	Topology       – VertexCount, EdgeCount, Degree, Neighbors, HasEdge
//	Mutator        – Topology + AddEdge, RemoveEdge
//	ShortestPather – optional HopDistances(ctx, source)
//	ComponentFinder – optional Components(ctx)
//	Factory        – func(n, edgeHint int) (Mutator, error)
//
// Analysis packages (bfs, metrics) accept a Topology, so any backend that
// satisfies it (for example the gonum adapter in package gonumgraph) can be
// swapped in without touching the algorithms.
//
// Core Methods:
//
//	NewGraph(n, opts...) (*Graph, error)   // O(n)
//	AddEdge(u, v int) error                // O(1) amortized
//	RemoveEdge(u, v int) error             // O(deg u + deg v)
//	HasEdge(u, v int) bool                 // O(1)
//	Degree(id int) (int, error)            // O(1)
//	Neighbors(id int) iter.Seq[int]        // O(deg)
//	NeighborIDs(id int) ([]int, error)     // O(d·log d), sorted copy
//	Edges() []Edge                         // O(E·log E), sorted
//
// Views:
//
//	Induced(src, keep) (*Graph, error)     // relabelled induced subgraph
package core
