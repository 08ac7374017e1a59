package core_test

import (
	"fmt"

	"github.com/katalvlaran/randnet/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Four isolated vertices 0..3:
	g, _ := core.NewGraph(4)

	// 2) A path 0–1–2–3:
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)

	// 3) Inspect:
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Edge 2→1 exists?", g.HasEdge(2, 1))
	nbrs, _ := g.NeighborIDs(2)
	fmt.Println("Neighbors of 2:", nbrs)

	// 4) Break the path:
	_ = g.RemoveEdge(1, 2)
	d, _ := g.Degree(1)
	fmt.Println("Degree of 1 after removal:", d)

	// Output:
	// Edges: 3
	// Edge 2→1 exists? true
	// Neighbors of 2: [1 3]
	// Degree of 1 after removal: 1
}
