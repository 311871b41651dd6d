// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and VertexIDs() return insertion order.
package core

import (
	"fmt"
	"math"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Steps:
//  1. Validate non-empty ID (ErrEmptyVertexID).
//  2. If present, return without touching the stored position.
//  3. Otherwise apply opts, register, and record the insertion index.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id, opts...)

	return nil
}

func (g *Graph) addVertexLocked(id string, opts ...VertexOption) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	v := &Vertex{ID: id}
	for _, opt := range opts {
		opt(v)
	}
	g.vertices[id] = v
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
}

// SetPosition moves an existing vertex.
func (g *Graph) SetPosition(id string, x, y float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	v.X, v.Y = x, y

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex with the given ID.
func (g *Graph) Vertex(id string) (Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, false
	}

	return *v, true
}

// Index returns the insertion position of a vertex. Searches use it as a
// deterministic tie-breaker.
func (g *Graph) Index(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]

	return i, ok
}

// Vertices returns copies of all vertices in insertion order.
// Complexity: O(V)
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, len(g.order))
	for i, id := range g.order {
		out[i] = *g.vertices[id]
	}

	return out
}

// VertexIDs returns vertex IDs in insertion order.
func (g *Graph) VertexIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.order...)
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Distance returns the Euclidean distance between two vertex positions.
func (g *Graph) Distance(a, b string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	va, ok := g.vertices[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, a)
	}
	vb, ok := g.vertices[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, b)
	}

	return Euclidean(*va, *vb), nil
}

// Euclidean returns the straight-line distance between two vertices.
func Euclidean(a, b Vertex) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
