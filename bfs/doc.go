// Package bfs animates breadth-first search over a core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing edge count from a start vertex.
//   - Each dequeued vertex emits a visit step (with the current frontier);
//     each newly discovered neighbor emits a discover step.
//   - With a goal, the search stops when the goal is dequeued and ends with
//     found{Path, Cost}; an exhausted queue ends with not-found.
//     Without a goal the whole component is traversed and the run ends with done.
//   - The body returns *Result: Order, Depth, Parent, Found, Path, Cost.
//
// Determinism
//
//	Vertices are marked on discovery and neighbors are taken in core adjacency
//	insertion order, so the visit sequence is fully reproducible and each
//	vertex is enqueued at most once.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	body, err := bfs.Search(g, "A", "E", bfs.WithMaxDepth(4))
//	if err != nil {
//		// errors.Is(err, engine.ErrInvalidInput) plus a bfs sentinel
//	}
//	run, _ := runner.Start(ctx, "graph.bfs", body, engine.WithPacingMs(300))
//
// Options
//
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0), 0 = unlimited.
//   - WithFilterNeighbor(fn): skip edges for which fn(curr, neighbor) == false.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrGoalVertexNotFound, ErrOptionViolation
//     (all wrapped with engine.ErrInvalidInput).
//   - ErrNoPath from Result.PathTo.
package bfs
