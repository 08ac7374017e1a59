package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/randnet/bfs"
	"github.com/katalvlaran/randnet/core"
)

// ExampleBFS demonstrates a traversal on a 4-vertex path and the
// reconstruction of a shortest path.
func ExampleBFS() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)

	res, _ := bfs.BFS(g, 0)
	fmt.Println("Order:", res.Order)
	fmt.Println("Depth of 3:", res.Depth[3])
	path, _ := res.PathTo(3)
	fmt.Println("Path:", path)
	// Output:
	// Order: [0 1 2 3]
	// Depth of 3: 3
	// Path: [0 1 2 3]
}

// ExampleComponents shows component ordering on a graph with an isolated vertex.
func ExampleComponents() {
	g, _ := core.NewGraph(5)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 4)

	comps, _ := bfs.Components(context.Background(), g)
	fmt.Println(comps)
	// Output:
	// [[2 3 4] [0 1]]
}
