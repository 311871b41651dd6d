// Package dfs animates iterative depth-first search over a core.Graph.
//
// The walk keeps an explicit stack. A popped vertex that was already visited
// is skipped; otherwise it is marked, emitted as a visit step, and every
// unvisited neighbor (in adjacency insertion order) is pushed with a discover
// step, its parent overwritten by the current vertex. Because the last
// neighbor pushed is popped first, the walk explores the most recently
// inserted edge of each vertex first.
//
// With a goal the run ends with found{Path, Cost} as soon as the goal is
// popped, or not-found once the stack is empty. With an empty goal the
// reachable component is traversed and the run ends with done.
//
// Complexity:
//
//   - Time:   O(V + E) pops and pushes (a vertex may be pushed once per incident edge).
//   - Memory: O(E) for the stack.
//
// Options:
//
//   - WithFilterNeighbor(fn)    filters edges; return false to skip.
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrGoalVertexNotFound (wrapped with engine.ErrInvalidInput).
//   - ErrNoPath from Result.PathTo.
package dfs
