// SPDX-License-Identifier: MIT

package astar

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/dsaviz/core"
	"github.com/katalvlaran/dsaviz/engine"
)

// Search validates the input and returns a Body running A* from start to goal
// on a snapshot of g. The body returns *Result.
func Search(g *core.Graph, start, goal string, opts ...Option) (engine.Body, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, ErrNilGraph)
	}
	if goal == "" {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, ErrEmptyGoal)
	}
	for _, id := range []string{start, goal} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %w: %q", engine.ErrInvalidInput, ErrVertexNotFound, id)
		}
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	snap := g.Clone()

	return func(_ context.Context, e *engine.Emitter) (any, error) {
		s := newSearcher(snap, cfg, e, goal)

		return s.run(start)
	}, nil
}

// searcher holds the open/closed sets and scores of one execution.
type searcher struct {
	g       *core.Graph
	h       Heuristic
	em      *engine.Emitter
	goal    core.Vertex
	open    openPQ
	opened  map[string]int // vertex → order it first entered the open set
	closed  map[string]bool
	f       map[string]float64
	metrics engine.Metrics
	res     *Result
}

func newSearcher(g *core.Graph, cfg Options, e *engine.Emitter, goal string) *searcher {
	gv, _ := g.Vertex(goal)
	V := g.VertexCount()

	return &searcher{
		g:      g,
		h:      cfg.Heuristic,
		em:     e,
		goal:   gv,
		open:   make(openPQ, 0, V),
		opened: make(map[string]int, V),
		closed: make(map[string]bool, V),
		f:      make(map[string]float64, V),
		res: &Result{
			Order: make([]string, 0, V),
			G:     make(map[string]float64, V),
			Prev:  make(map[string]string, V),
		},
	}
}

func (s *searcher) estimate(id string) float64 {
	v, _ := s.g.Vertex(id)
	return s.h(v, s.goal)
}

func (s *searcher) run(start string) (*Result, error) {
	s.res.G[start] = 0
	s.openVertex(start, s.estimate(start))

	for s.open.Len() > 0 {
		item := heap.Pop(&s.open).(*openItem)
		u := item.id
		if s.closed[u] || item.f != s.f[u] {
			continue // stale entry
		}

		s.closed[u] = true
		s.res.Order = append(s.res.Order, u)
		s.metrics.Visited++
		if err := s.em.Emit(engine.KindVisit, core.SearchPayload{
			Vertex:   u,
			Distance: s.res.G[u],
			Estimate: s.f[u],
		}, s.metrics); err != nil {
			return nil, err
		}

		if u == s.goal.ID {
			return s.found()
		}
		if err := s.expand(u); err != nil {
			return nil, err
		}
	}

	if err := s.em.Emit(engine.KindNotFound, core.SearchPayload{}, s.metrics); err != nil {
		return nil, err
	}

	return s.res, nil
}

// expand opens or improves every neighbor of u outside the closed set.
func (s *searcher) expand(u string) error {
	neighbors, err := s.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %q: %w", u, err)
	}

	for _, nb := range neighbors {
		v := nb.ID
		if s.closed[v] {
			continue
		}
		s.metrics.Comparisons++
		tentative := s.res.G[u] + nb.Weight

		_, isOpen := s.opened[v]
		kind := engine.KindDiscover
		if isOpen {
			if tentative >= s.res.G[v] {
				continue
			}
			kind = engine.KindRelax
		}

		s.res.Prev[v] = u
		s.res.G[v] = tentative
		f := tentative + s.estimate(v)
		s.openVertex(v, f)

		if err := s.em.Emit(kind, core.SearchPayload{
			Vertex:   v,
			From:     u,
			Distance: tentative,
			Estimate: f,
		}, s.metrics); err != nil {
			return err
		}
	}

	return nil
}

// openVertex records f for id and pushes a heap entry. The first-opened
// sequence number is assigned once and reused on later improvements.
func (s *searcher) openVertex(id string, f float64) {
	seq, ok := s.opened[id]
	if !ok {
		seq = len(s.opened)
		s.opened[id] = seq
	}
	s.f[id] = f
	heap.Push(&s.open, &openItem{id: id, f: f, seq: seq})
}

func (s *searcher) found() (*Result, error) {
	goal := s.goal.ID
	path := core.Reconstruct(s.res.Prev, goal)
	s.res.Found, s.res.Path, s.res.Cost = true, path, s.res.G[goal]

	if err := s.em.Emit(engine.KindFound, core.SearchPayload{
		Vertex: goal,
		Path:   path,
		Cost:   s.res.Cost,
	}, s.metrics); err != nil {
		return nil, err
	}

	return s.res, nil
}

type openItem struct {
	id  string
	f   float64
	seq int
}

// openPQ is a min-heap on (f, seq).
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
