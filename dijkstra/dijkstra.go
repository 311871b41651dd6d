// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/dsaviz/core"
	"github.com/katalvlaran/dsaviz/engine"
)

// Search validates the input and returns a Body computing shortest paths from
// start on a snapshot of g, stopping when goal is settled.
//
// Steps:
//  1. Validate graph and endpoints.
//  2. Snapshot g; capture options.
//  3. In the body: settle the closest open vertex (visit), relax its unsettled
//     neighbors on strict improvement (relax), stop at goal (found) or when the
//     nearest open vertex is unreachable or beyond MaxDistance (not-found).
//
// Ties between equally distant vertices go to the one inserted first into g.
// An empty goal settles every reachable vertex and ends with done.
func Search(g *core.Graph, start, goal string, opts ...Option) (engine.Body, error) {
	// 1) Validate
	if g == nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, ErrNilGraph)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %w: start %q", engine.ErrInvalidInput, ErrVertexNotFound, start)
	}
	if goal != "" && !g.HasVertex(goal) {
		return nil, fmt.Errorf("%w: %w: goal %q", engine.ErrInvalidInput, ErrVertexNotFound, goal)
	}

	// 2) Snapshot
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	snap := g.Clone()

	// 3) Body
	return func(_ context.Context, e *engine.Emitter) (any, error) {
		r := newRunner(snap, cfg, e)
		r.init(start)

		return r.process(goal)
	}, nil
}

// runner encapsulates the mutable state of one Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	em      *engine.Emitter
	dist    map[string]float64
	visited map[string]bool
	pq      nodePQ
	metrics engine.Metrics
	res     *Result
}

func newRunner(g *core.Graph, cfg Options, e *engine.Emitter) *runner {
	V := g.VertexCount()

	return &runner{
		g:       g,
		options: cfg,
		em:      e,
		dist:    make(map[string]float64, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
		res: &Result{
			Order: make([]string, 0, V),
			Prev:  make(map[string]string, V),
		},
	}
}

// init sets every distance to +Inf except the start and seeds the heap.
func (r *runner) init(start string) {
	for _, id := range r.g.VertexIDs() {
		r.dist[id] = math.Inf(1)
	}
	r.dist[start] = 0
	r.res.Dist = r.dist

	heap.Init(&r.pq)
	r.push(start, 0)
}

// process pops vertices in (distance, insertion index) order.
// Stale heap entries (already settled) are skipped lazily.
func (r *runner) process(goal string) (*Result, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.res.Order = append(r.res.Order, u)
		r.metrics.Visited++
		if err := r.em.Emit(engine.KindVisit, core.SearchPayload{
			Vertex:   u,
			Distance: item.dist,
		}, r.metrics); err != nil {
			return nil, err
		}

		if u == goal {
			return r.found(goal)
		}
		if err := r.relax(u); err != nil {
			return nil, err
		}
	}

	kind := engine.KindNotFound
	if goal == "" {
		kind = engine.KindDone
	}
	if err := r.em.Emit(kind, core.SearchPayload{}, r.metrics); err != nil {
		return nil, err
	}

	return r.res, nil
}

// relax tries every unsettled neighbor v of u and keeps strict improvements.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, nb := range neighbors {
		v := nb.ID
		if r.visited[v] {
			continue
		}
		r.metrics.Comparisons++
		newDist := r.dist[u] + nb.Weight
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.res.Prev[v] = u
		r.push(v, newDist)
		if err := r.em.Emit(engine.KindRelax, core.SearchPayload{
			Vertex:   v,
			From:     u,
			Distance: newDist,
		}, r.metrics); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner) found(goal string) (*Result, error) {
	path := core.Reconstruct(r.res.Prev, goal)
	r.res.Found, r.res.Path, r.res.Cost = true, path, r.dist[goal]

	if err := r.em.Emit(engine.KindFound, core.SearchPayload{
		Vertex: goal,
		Path:   path,
		Cost:   r.res.Cost,
	}, r.metrics); err != nil {
		return nil, err
	}

	return r.res, nil
}

func (r *runner) push(id string, d float64) {
	idx, _ := r.g.Index(id)
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, index: idx})
}

// nodeItem is a heap entry; index is the vertex insertion position used
// to break distance ties.
type nodeItem struct {
	id    string
	dist  float64
	index int
}

// nodePQ implements heap.Interface as a min-heap on (dist, index).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].index < pq[j].index
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
