// Package astar animates A* search between two vertices of a core.Graph,
// guided by a heuristic over vertex positions.
//
// What
//
//   - The open set is ordered by f = g + h(v, goal). The vertex with the lowest
//     f is closed and emitted as a visit step; ties go to the vertex that
//     entered the open set first.
//   - Each neighbor outside the closed set is opened (discover step) or, when
//     already open, updated only on a strictly smaller g (relax step).
//   - The run ends with found{Path, Cost} once the goal is closed, or not-found
//     when the open set empties.
//
// Heuristic
//
//	The default heuristic is the Euclidean distance between vertex positions.
//	With distance-weighted edges it never overestimates, so the returned path
//	is optimal. WithHeuristic replaces it; a zero heuristic turns A* into
//	Dijkstra with first-opened tie-breaking.
//
// Complexity
//
//   - Time:  O((V + E) log V) with lazy heap updates.
//   - Space: O(V + E).
//
// Errors (wrapped with engine.ErrInvalidInput)
//
//   - ErrNilGraph, ErrVertexNotFound, ErrEmptyGoal.
package astar
