// Package dsaviz is an engine for watching classic algorithms think, one
// step at a time.
//
// 🚀 What is dsaviz?
//
//	An animated-algorithm engine: every algorithm runs as an asynchronous
//	Run that publishes an append-only log of immutable Steps. Renderers read
//	the log (live or after the fact); controllers pace, pause, single-step,
//	reconfigure or cancel it. Nothing about drawing lives here.
//
//		• Engine: Run lifecycle, pacing, manual stepping, cancellation, replay
//		• Searching: binary search, BST insert/search/delete/traversals
//		• Graphs: BFS, DFS, Dijkstra, A* over a thread-safe core.Graph
//		• Linear structures: stack, queue, linked list
//		• Strings & hashing: trie autocomplete, hash table with three policies
//		• Backtracking: N-Queens (first / all solutions), Sudoku
//		• Sorting: bubble, insertion, merge, quick, plus a four-way race
//		• Scheduling: SJF, EDF, Priority, FCFS on one machine
//
// ✨ Why dsaviz?
//
//   - One Step model for every family; counters ride along with each step
//   - Runs never share mutable input: each body works on its own snapshot
//   - Deterministic orders: same input, same step sequence
//   - Runs are independent: one failing or cancelled run never touches another
//
// Layout:
//
//	engine/      - Step, Emitter, Run, Runner, options
//	core/        - Graph, Vertex, Edge and the shared graph-search payload
//	builder/     - random geometric and grid graph constructors
//	bfs/ dfs/ dijkstra/ astar/ - graph searches
//	binsearch/ bst/ trie/ hashtable/ - searching and structures
//	linear/      - stack, queue and linked list operations
//	nqueens/ sudoku/ - backtracking
//	sorting/     - four sorts and the race
//	scheduling/  - job scheduling policies
//	catalog/     - algorithm ids → bodies, YAML input decoding
//	config/      - versioned YAML configuration
//	stream/      - HTTP/WebSocket bridge for renderers
//	cmd/dsaviz/  - CLI: JSON-lines runs, races, bridge server
//
// Quick example:
//
//	body, _ := sorting.Sort(sorting.Quick, []int{5, 2, 9, 1})
//	run, _ := engine.NewRunner().Start(ctx, "sort.quick", body, engine.WithPacingMs(300))
//	for step := range run.Subscribe(ctx) {
//		draw(step)
//	}
//
//	go install github.com/katalvlaran/dsaviz/cmd/dsaviz@latest
package dsaviz
