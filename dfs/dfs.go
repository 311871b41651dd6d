// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dsaviz/core"
	"github.com/katalvlaran/dsaviz/engine"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    Options
	em      *engine.Emitter
	stack   []string
	metrics engine.Metrics
	res     *Result
}

// Search validates the input and returns a Body that runs an iterative
// depth-first search on a snapshot of g.
//
// The stack may hold a vertex several times: a vertex is marked when popped,
// already-visited pops are skipped, and every push of an unvisited neighbor
// overwrites its parent with the vertex being expanded. With an empty goal
// the reachable component is traversed and the run ends with done.
func Search(g *core.Graph, start, goal string, opts ...Option) (engine.Body, error) {
	// 1. Validate input graph and endpoints
	if g == nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, ErrGraphNil)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %w: %q", engine.ErrInvalidInput, ErrStartVertexNotFound, start)
	}
	if goal != "" && !g.HasVertex(goal) {
		return nil, fmt.Errorf("%w: %w: %q", engine.ErrInvalidInput, ErrGoalVertexNotFound, goal)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Snapshot
	snap := g.Clone()

	return func(_ context.Context, e *engine.Emitter) (any, error) {
		n := snap.VertexCount()
		w := &dfsWalker{
			graph: snap,
			opts:  o,
			em:    e,
			stack: make([]string, 0, n),
			res: &Result{
				Order:   make([]string, 0, n),
				Parent:  make(map[string]string, n),
				visited: make(map[string]bool, n),
			},
		}

		return w.run(start, goal)
	}, nil
}

func (w *dfsWalker) run(start, goal string) (*Result, error) {
	w.stack = append(w.stack, start)
	for len(w.stack) > 0 {
		// pop
		cur := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.res.visited[cur] {
			continue
		}

		// visit
		w.res.visited[cur] = true
		w.res.Order = append(w.res.Order, cur)
		w.metrics.Visited++
		if err := w.em.Emit(engine.KindVisit, core.SearchPayload{
			Vertex:   cur,
			Frontier: append([]string(nil), w.stack...),
		}, w.metrics); err != nil {
			return nil, err
		}
		if cur == goal {
			return w.found(goal)
		}

		// push unvisited neighbors in adjacency order
		neighbors, err := w.graph.Neighbors(cur)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %q: %w", cur, err)
		}
		for _, nb := range neighbors {
			if !w.opts.FilterNeighbor(cur, nb.ID) {
				continue
			}
			w.metrics.Comparisons++
			if w.res.visited[nb.ID] {
				continue
			}
			w.res.Parent[nb.ID] = cur
			w.stack = append(w.stack, nb.ID)
			if err := w.em.Emit(engine.KindDiscover, core.SearchPayload{
				Vertex: nb.ID,
				From:   cur,
			}, w.metrics); err != nil {
				return nil, err
			}
		}
	}

	kind := engine.KindNotFound
	if goal == "" {
		kind = engine.KindDone
	}
	if err := w.em.Emit(kind, core.SearchPayload{}, w.metrics); err != nil {
		return nil, err
	}

	return w.res, nil
}

func (w *dfsWalker) found(goal string) (*Result, error) {
	path := core.Reconstruct(w.res.Parent, goal)
	cost, err := w.graph.PathCost(path)
	if err != nil {
		return nil, fmt.Errorf("dfs: path cost: %w", err)
	}
	w.res.Found, w.res.Path, w.res.Cost = true, path, cost

	if err := w.em.Emit(engine.KindFound, core.SearchPayload{
		Vertex: goal,
		Path:   path,
		Cost:   cost,
	}, w.metrics); err != nil {
		return nil, err
	}

	return w.res, nil
}
