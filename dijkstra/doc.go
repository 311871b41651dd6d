// Package dijkstra animates Dijkstra's shortest-path search on a core.Graph
// with non-negative float64 weights.
//
// Overview:
//
//   - The body repeatedly settles the unsettled vertex with the smallest
//     tentative distance (visit step) and relaxes its unsettled neighbors,
//     emitting a relax step for every strict improvement.
//   - With a goal, the run ends with found{Path, Cost} when the goal is settled,
//     or not-found once no reachable vertex remains. Without a goal every
//     reachable vertex is settled and the run ends with done.
//   - A min-heap with lazy decrease-key replaces the linear minimum scan; ties
//     on distance are broken by vertex insertion order, which is exactly the
//     "first minimum in insertion order" a linear scan would pick.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy heap entries)
//
// Options:
//
//   - WithMaxDistance(max): stop once the nearest open vertex is farther than max.
//     Panics on negative max.
//
// Error handling (sentinel errors, wrapped with engine.ErrInvalidInput):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: start or non-empty goal is absent.
//
// Negative weights cannot occur: core.Graph rejects them on AddEdge.
package dijkstra
