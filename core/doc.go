// Package core provides the thread-safe in-memory Graph searched by the bfs,
// dfs, dijkstra and astar packages.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Undirected by default; WithDirected() stores one-way edges only.
//   - Vertices carry a 2D position (X, Y) used for layout and the A* heuristic.
//   - Edges carry a non-negative float64 weight (typically the Euclidean
//     distance between endpoints).
//   - No self-loops, no parallel edges.
//   - Vertices, edges and each adjacency list keep insertion order, so searches
//     over the same construction sequence always visit in the same order.
//   - Undirected edges are mirrored: v ∈ Neighbors(u) ⇔ u ∈ Neighbors(v).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, opts ...VertexOption) error  // O(1), idempotent
//	SetPosition(id string, x, y float64) error        // O(1)
//	HasVertex(id string) bool                         // O(1)
//	Vertex(id string) (Vertex, bool)                  // O(1)
//	Index(id string) (int, bool)                      // O(1), insertion position
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(deg)
//	HasEdge(from, to string) bool
//	EdgeBetween(from, to string) (Edge, bool)
//
//	// Query
//	Neighbors(id string) ([]Neighbor, error)  // insertion order
//	Vertices() []Vertex                       // insertion order
//	Edges() []Edge                            // insertion order
//	Distance(a, b string) (float64, error)    // Euclidean
//
//	// Cloning
//	Clone() *Graph                            // O(V+E) deep copy
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – negative or NaN weight
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
package core
