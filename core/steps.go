// SPDX-License-Identifier: MIT

// File: steps.go
// Role: Step payload shared by the graph searches (bfs, dfs, dijkstra, astar).
package core

import "github.com/katalvlaran/dsaviz/engine"

// SearchPayload describes one graph search step.
//
//	visit     Vertex became current; Distance/Estimate hold its scores.
//	discover  Vertex entered the frontier from From.
//	relax     Vertex got a better Distance through From.
//	found     Path from start to goal and its Cost.
//	not-found goal unreachable; Frontier is empty.
//	done      full traversal finished (no goal given).
type SearchPayload struct {
	Vertex   string   `json:"vertex,omitempty"`
	From     string   `json:"from,omitempty"`
	Distance float64  `json:"distance,omitempty"`
	Estimate float64  `json:"estimate,omitempty"`
	Frontier []string `json:"frontier,omitempty"`
	Path     []string `json:"path,omitempty"`
	Cost     float64  `json:"cost,omitempty"`
}

// Clone implements engine.Payload.
func (p SearchPayload) Clone() engine.Payload {
	c := p
	c.Frontier = append([]string(nil), p.Frontier...)
	c.Path = append([]string(nil), p.Path...)

	return c
}

// PathCost sums edge weights along path. Missing edges yield ErrEdgeNotFound.
func (g *Graph) PathCost(path []string) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		e, ok := g.EdgeBetween(path[i-1], path[i])
		if !ok {
			return 0, ErrEdgeNotFound
		}
		total += e.Weight
	}

	return total, nil
}

// Reconstruct walks parent links back from dest and returns the path
// start → dest. It returns nil if a cycle in parent is detected.
func Reconstruct(parent map[string]string, dest string) []string {
	path := []string{dest}
	seen := map[string]bool{dest: true}
	for cur := dest; ; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		if seen[prev] {
			return nil
		}
		seen[prev] = true
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
