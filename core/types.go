// SPDX-License-Identifier: MIT

// This file declares Vertex, Edge, Neighbor, Graph, GraphOption,
// VertexOption, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - negative or NaN edge weight.
//	ErrLoopNotAllowed      - self-loop.
//	ErrMultiEdgeNotAllowed - second edge between the same endpoints.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a non-negative number")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a graph node with a 2D layout position.
// The position is opaque to every search except heuristic ones (A*).
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string `json:"id"`

	// X and Y place the vertex on the drawing plane.
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Edge connects two vertices with a non-negative weight.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string `json:"id"`

	// From is the source vertex ID.
	From string `json:"from"`

	// To is the destination vertex ID.
	To string `json:"to"`

	// Weight is the traversal cost.
	Weight float64 `json:"weight"`
}

// Neighbor is one adjacency entry as seen from a vertex.
type Neighbor struct {
	ID     string
	EdgeID string
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes new edges one-way. Graphs are undirected by default.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// VertexOption configures a vertex when it is first added.
type VertexOption func(*Vertex)

// WithPosition places a vertex at (x, y).
func WithPosition(x, y float64) VertexOption {
	return func(v *Vertex) {
		v.X = x
		v.Y = y
	}
}

// Graph is an in-memory weighted graph with positioned vertices.
//
// Vertices and each vertex's adjacency are kept in insertion order, so every
// traversal over the same construction sequence is reproducible. Undirected
// edges are mirrored in both endpoints' adjacency.
// mu guards all fields below it.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	nextEdgeID uint64

	order     []string            // vertex IDs in insertion order
	vertices  map[string]*Vertex  // vertex ID → Vertex
	index     map[string]int      // vertex ID → position in order
	edges     map[string]*Edge    // edge ID → Edge
	edgeOrder []string            // edge IDs in insertion order
	adjacency map[string][]Neighbor
}

// NewGraph creates an empty Graph. By default it is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		index:     make(map[string]int),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]Neighbor),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether new edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
