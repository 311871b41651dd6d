// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeBetween/Edges/EdgeCount/Neighbors.
// Determinism:
//   - Edges() and Neighbors() return insertion order.
//   - nextEdgeID() is monotonic ("e" + decimal).
package core

import (
	"fmt"
	"math"
	"strconv"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge and returns its ID. Missing endpoints are added
// at the origin.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints exist.
//  3. Reject a second edge between the same ordered pair (mirrored for undirected graphs).
//  4. Store the edge, append to adjacency; mirror when undirected.
//
// Complexity: O(deg(from)) for the multi-edge check.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) {
		return "", fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}
	if from == to {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure vertices exist
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Multi-edge check
	for _, nb := range g.adjacency[from] {
		if nb.ID == to {
			return "", fmt.Errorf("%w: %q-%q", ErrMultiEdgeNotAllowed, from, to)
		}
	}

	// 4) Store and link adjacency
	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edgeOrder = append(g.edgeOrder, eid)
	g.adjacency[from] = append(g.adjacency[from], Neighbor{ID: to, EdgeID: eid, Weight: weight})
	if !g.directed {
		g.adjacency[to] = append(g.adjacency[to], Neighbor{ID: from, EdgeID: eid, Weight: weight})
	}

	return eid, nil
}

// HasEdge reports whether an edge from→to exists (either direction when undirected).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.EdgeBetween(from, to)

	return ok
}

// EdgeBetween returns the edge traversable from→to.
func (g *Graph) EdgeBetween(from, to string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, nb := range g.adjacency[from] {
		if nb.ID == to {
			return *g.edges[nb.EdgeID], true
		}
	}

	return Edge{}, false
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(eid string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrEdgeNotFound, eid)
	}

	return *e, nil
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edgeOrder))
	for i, eid := range g.edgeOrder {
		out[i] = *g.edges[eid]
	}

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeOrder)
}

// Neighbors returns the adjacency of id in edge insertion order.
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return append([]Neighbor(nil), g.adjacency[id]...), nil
}

// nextEdgeID reserves the next textual edge ID. g.mu must be held for writing.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
