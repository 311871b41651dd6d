// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dsaviz/core"
	"github.com/katalvlaran/dsaviz/engine"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	em      *engine.Emitter
	queue   []queueItem
	visited map[string]bool
	metrics engine.Metrics
	res     *Result
}

// Search validates the input and returns a Body that runs BFS on a snapshot
// of g from start. With a non-empty goal the body stops when goal is
// dequeued and ends with a found or not-found step; with an empty goal it
// traverses the whole component and ends with done. The body returns *Result.
//
// Setup errors wrap engine.ErrInvalidInput together with ErrGraphNil,
// ErrStartVertexNotFound, ErrGoalVertexNotFound or ErrOptionViolation.
func Search(g *core.Graph, start, goal string, opts ...Option) (engine.Body, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, ErrGraphNil)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, o.err)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %w: %q", engine.ErrInvalidInput, ErrStartVertexNotFound, start)
	}
	if goal != "" && !g.HasVertex(goal) {
		return nil, fmt.Errorf("%w: %w: %q", engine.ErrInvalidInput, ErrGoalVertexNotFound, goal)
	}
	snap := g.Clone()

	return func(_ context.Context, e *engine.Emitter) (any, error) {
		n := snap.VertexCount()
		w := &walker{
			graph:   snap,
			opts:    o,
			em:      e,
			queue:   make([]queueItem, 0, n),
			visited: make(map[string]bool, n),
			res: &Result{
				Order:  make([]string, 0, n),
				Depth:  make(map[string]int, n),
				Parent: make(map[string]string, n),
			},
		}

		return w.run(start, goal)
	}, nil
}

// run processes the queue until the goal is dequeued or the queue empties.
func (w *walker) run(start, goal string) (*Result, error) {
	w.enqueue(start, 0, "")
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return nil, err
		}
		if item.id == goal {
			return w.found(goal)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return nil, err
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

// enqueue marks id visited at depth d, records its parent, and appends it.
// Marking on discovery keeps every vertex in the queue at most once.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the vertex in Order and emits a visit step.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	w.metrics.Visited++

	return w.em.Emit(engine.KindVisit, core.SearchPayload{
		Vertex:   item.id,
		Distance: float64(item.depth),
		Frontier: w.frontier(),
	}, w.metrics)
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor, emitting a discover step for it.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, nb := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nb.ID) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		w.metrics.Comparisons++
		if w.visited[nb.ID] {
			continue
		}
		w.enqueue(nb.ID, nextDepth, item.id)
		if err := w.em.Emit(engine.KindDiscover, core.SearchPayload{
			Vertex:   nb.ID,
			From:     item.id,
			Distance: float64(nextDepth),
		}, w.metrics); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) found(goal string) (*Result, error) {
	path := core.Reconstruct(w.res.Parent, goal)
	cost, err := w.graph.PathCost(path)
	if err != nil {
		return nil, fmt.Errorf("bfs: path cost: %w", err)
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

func (w *walker) frontier() []string {
	ids := make([]string, len(w.queue))
	for i, q := range w.queue {
		ids[i] = q.id
	}

	return ids
}
