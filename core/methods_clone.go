// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves vertex, edge, and adjacency order and carries nextEdgeID.
package core

// Clone returns a deep copy of the Graph. Every search runs on a clone so the
// caller's graph can be edited while runs are in flight.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		directed:   g.directed,
		nextEdgeID: g.nextEdgeID,
		order:      append([]string(nil), g.order...),
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		index:      make(map[string]int, len(g.index)),
		edges:      make(map[string]*Edge, len(g.edges)),
		edgeOrder:  append([]string(nil), g.edgeOrder...),
		adjacency:  make(map[string][]Neighbor, len(g.adjacency)),
	}
	for id, v := range g.vertices {
		cv := *v
		clone.vertices[id] = &cv
	}
	for id, i := range g.index {
		clone.index[id] = i
	}
	for eid, e := range g.edges {
		ce := *e
		clone.edges[eid] = &ce
	}
	for id, nbs := range g.adjacency {
		clone.adjacency[id] = append([]Neighbor(nil), nbs...)
	}

	return clone
}
