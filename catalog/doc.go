// Package catalog binds algorithm ids to runnable bodies.
//
// An Entry knows how to build an engine.Body from a typed input document.
// Catalog.Run resolves the id, checks the input type and starts the body on
// an engine.Runner:
//
//	cat := catalog.New(catalog.DefaultPresets())
//	in, _ := cat.Decode("graph.dijkstra", yamlBytes)
//	run, err := cat.Run(ctx, runner, "graph.dijkstra", in, engine.WithPacingMs(300))
//
// A nil input selects the entry's defaults (sample words, sample jobs, a
// seeded random graph, the easy Sudoku preset and so on).
//
// Graph inputs pick one of four sources: explicit nodes and edges, a grid,
// a random geometric graph, or the preset random graph. Catalog.Graph builds
// the graph an input describes without running a search.
//
// Entries with an animation body (nqueens, sudoku) honour
// engine.WithAnimateOnly: the result is computed off-screen first and only
// the final placement is animated. Other entries reject the flag.
package catalog
