package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dsaviz/bfs"
	"github.com/katalvlaran/dsaviz/builder"
	"github.com/katalvlaran/dsaviz/engine"
)

// ExampleSearch_gridTraversal shows BFS layering on a 3×3 grid.
func ExampleSearch_gridTraversal() {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	body, err := bfs.Search(g, "0,0", "")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	run, _ := engine.Execute(context.Background(), "graph.bfs", body)
	res, _ := engine.ResultAs[*bfs.Result](run)

	fmt.Println(res.Order)
	// Output:
	// [0,0 0,1 1,0 0,2 1,1 2,0 1,2 2,1 2,2]
}

// ExampleSearch_shortestHops finds the fewest-hop path between grid corners.
func ExampleSearch_shortestHops() {
	g, _ := builder.BuildGraph(nil, nil, builder.Grid(3, 3, 1))
	body, _ := bfs.Search(g, "0,0", "2,2")
	run, _ := engine.Execute(context.Background(), "graph.bfs", body)
	res, _ := engine.ResultAs[*bfs.Result](run)

	fmt.Println(res.Path, res.Cost)
	// Output:
	// [0,0 0,1 0,2 1,2 2,2] 4
}
