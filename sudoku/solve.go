// SPDX-License-Identifier: MIT

package sudoku

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dsaviz/engine"
)

// Payload describes one solver step.
//
//	try / place / backtrack  Value at (Row, Col)
//	conflict                 Value at (Row, Col) clashes with Conflicts
//	found / not-found        Grid is the final state
type Payload struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Value     int    `json:"value,omitempty"`
	Conflicts []Cell `json:"conflicts,omitempty"`
	Grid      *Grid  `json:"grid,omitempty"`
}

// Clone implements engine.Payload.
func (p Payload) Clone() engine.Payload {
	c := p
	c.Conflicts = append([]Cell(nil), p.Conflicts...)
	if p.Grid != nil {
		g := *p.Grid
		c.Grid = &g
	}

	return c
}

// Result is the solver outcome. Exhausted reports that the attempt limit
// stopped the search.
type Result struct {
	Solved    bool `json:"solved"`
	Exhausted bool `json:"exhausted,omitempty"`
	Original  Grid `json:"original"`
	Grid      Grid `json:"grid"`
}

// Options configures Solve.
type Options struct {
	MaxAttempts int // 0 means unlimited
}

// Option mutates Options.
type Option func(*Options)

// WithMaxAttempts stops the search after n tries. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sudoku: WithMaxAttempts(%d): must be positive", n))
	}
	return func(o *Options) {
		o.MaxAttempts = n
	}
}

// solver carries the working grid of one run.
type solver struct {
	grid    Grid
	max     int
	em      *engine.Emitter
	metrics engine.Metrics
	stopped bool
}

// Solve returns a Body solving a copy of g.
func Solve(g Grid, opts ...Option) (engine.Body, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(_ context.Context, e *engine.Emitter) (any, error) {
		s := &solver{grid: g, max: cfg.MaxAttempts, em: e}
		res := &Result{Original: g}

		solved := false
		if Validate(g).Valid {
			var err error
			if solved, err = s.solve(); err != nil {
				return nil, err
			}
		}
		res.Solved, res.Exhausted, res.Grid = solved, s.stopped, s.grid

		kind := engine.KindNotFound
		if solved {
			kind = engine.KindFound
		}
		final := s.grid
		if err := e.Emit(kind, Payload{Row: -1, Col: -1, Grid: &final}, s.metrics); err != nil {
			return nil, err
		}

		return res, nil
	}, nil
}

func (s *solver) emit(kind engine.Kind, p Payload) error {
	return s.em.Emit(kind, p, s.metrics)
}

// solve fills the first empty cell and recurses. It reports true once the
// grid is full.
func (s *solver) solve() (bool, error) {
	cell, ok := s.grid.firstEmpty()
	if !ok {
		return true, nil
	}
	r, c := cell.Row, cell.Col

	for v := 1; v <= Size; v++ {
		if s.max > 0 && s.metrics.Attempts >= s.max {
			s.stopped = true
			return false, nil
		}

		// 1) Try the digit.
		s.metrics.Attempts++
		if err := s.emit(engine.KindTry, Payload{Row: r, Col: c, Value: v}); err != nil {
			return false, err
		}
		if conflicts := s.grid.Conflicts(r, c, v); len(conflicts) > 0 {
			if err := s.emit(engine.KindConflict, Payload{Row: r, Col: c, Value: v, Conflicts: conflicts}); err != nil {
				return false, err
			}
			continue
		}

		// 2) Place and recurse.
		s.grid[r][c] = v
		if err := s.emit(engine.KindPlace, Payload{Row: r, Col: c, Value: v}); err != nil {
			return false, err
		}
		done, err := s.solve()
		if err != nil || done {
			return done, err
		}
		if s.stopped {
			return false, nil
		}

		// 3) Undo.
		s.metrics.Backtracks++
		s.grid[r][c] = 0
		if err := s.emit(engine.KindBacktrack, Payload{Row: r, Col: c, Value: v}); err != nil {
			return false, err
		}
	}

	return false, nil
}

// Show returns a Body replaying solved over original: one place step per
// cell that original leaves empty, then found.
func Show(original, solved Grid) (engine.Body, error) {
	if err := original.check(); err != nil {
		return nil, err
	}
	if !Validate(solved).Solved {
		return nil, fmt.Errorf("%w: %w: grid is incomplete or conflicting", engine.ErrInvalidInput, ErrInvalidSolution)
	}
	for r := range original {
		for c, v := range original[r] {
			if v != 0 && v != solved[r][c] {
				return nil, fmt.Errorf("%w: %w: given (%d,%d)=%d changed", engine.ErrInvalidInput, ErrInvalidSolution, r, c, v)
			}
		}
	}

	return func(_ context.Context, e *engine.Emitter) (any, error) {
		var m engine.Metrics
		for r := range original {
			for c, v := range original[r] {
				if v != 0 {
					continue
				}
				if err := e.Emit(engine.KindPlace, Payload{Row: r, Col: c, Value: solved[r][c]}, m); err != nil {
					return nil, err
				}
			}
		}
		final := solved
		if err := e.Emit(engine.KindFound, Payload{Row: -1, Col: -1, Grid: &final}, m); err != nil {
			return nil, err
		}

		return &Result{Solved: true, Original: original, Grid: solved}, nil
	}, nil
}
