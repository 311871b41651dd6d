package dfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dsaviz/core"
	"github.com/katalvlaran/dsaviz/dfs"
	"github.com/katalvlaran/dsaviz/engine"
)

// ExampleSearch walks a small tree; the last-inserted child is explored first.
func ExampleSearch() {
	g := core.NewGraph()
	g.AddEdge("root", "left", 1)
	g.AddEdge("root", "right", 1)
	g.AddEdge("left", "leaf", 1)

	body, _ := dfs.Search(g, "root", "")
	run, _ := engine.Execute(context.Background(), "graph.dfs", body)
	res, _ := engine.ResultAs[*dfs.Result](run)

	fmt.Println(res.Order)
	// Output:
	// [root right left leaf]
}
