// SPDX-License-Identifier: MIT

package nqueens

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dsaviz/engine"
)

// Board size limits.
const (
	MinSize = 1
	MaxSize = 16
)

// Sentinel errors.
var (
	ErrBadSize         = errors.New("nqueens: board size out of range")
	ErrInvalidSolution = errors.New("nqueens: not a valid solution")
)

// Payload describes one N-Queens step.
//
//	try / place / backtrack  Row, Col of the square
//	conflict                 Attackers lists the rows whose queens attack (Row, Col)
//	solution / found         Queens is a complete board
type Payload struct {
	Row       int   `json:"row"`
	Col       int   `json:"col"`
	Queens    []int `json:"queens,omitempty"`
	Attackers []int `json:"attackers,omitempty"`
	Solutions int   `json:"solutions,omitempty"`
}

// Clone implements engine.Payload.
func (p Payload) Clone() engine.Payload {
	c := p
	c.Queens = append([]int(nil), p.Queens...)
	c.Attackers = append([]int(nil), p.Attackers...)

	return c
}

// Result lists the boards found, in discovery order.
type Result struct {
	N         int     `json:"n"`
	Found     bool    `json:"found"`
	Solutions [][]int `json:"solutions"`
}

func checkSize(n int) error {
	if n < MinSize || n > MaxSize {
		return fmt.Errorf("%w: %w: n=%d not in [%d,%d]", engine.ErrInvalidInput, ErrBadSize, n, MinSize, MaxSize)
	}

	return nil
}

// solver is the backtracking state of one run.
type solver struct {
	n       int
	all     bool
	queens  []int
	em      *engine.Emitter
	metrics engine.Metrics
	res     *Result
}

// Solve returns a Body searching for the first solution on an n×n board.
func Solve(n int) (engine.Body, error) {
	return newSolver(n, false)
}

// SolveAll returns a Body enumerating every solution on an n×n board.
func SolveAll(n int) (engine.Body, error) {
	return newSolver(n, true)
}

func newSolver(n int, all bool) (engine.Body, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}

	return func(_ context.Context, e *engine.Emitter) (any, error) {
		s := &solver{n: n, all: all, queens: make([]int, 0, n), em: e, res: &Result{N: n, Solutions: [][]int{}}}
		if _, err := s.place(0); err != nil {
			return nil, err
		}

		s.res.Found = len(s.res.Solutions) > 0
		kind, p := engine.KindNotFound, Payload{Row: -1, Col: -1, Solutions: len(s.res.Solutions)}
		if s.res.Found {
			kind, p.Queens = engine.KindFound, s.res.Solutions[0]
		}
		if err := e.Emit(kind, p, s.metrics); err != nil {
			return nil, err
		}

		return s.res, nil
	}, nil
}

func (s *solver) emit(kind engine.Kind, p Payload) error {
	return s.em.Emit(kind, p, s.metrics)
}

// place fills row and below. It reports true once a solution ends the search.
func (s *solver) place(row int) (bool, error) {
	if row == s.n {
		board := append([]int(nil), s.queens...)
		s.res.Solutions = append(s.res.Solutions, board)
		if s.all {
			err := s.emit(engine.KindSolution, Payload{Row: row - 1, Col: board[row-1], Queens: board, Solutions: len(s.res.Solutions)})
			return false, err
		}
		return true, nil
	}

	for col := 0; col < s.n; col++ {
		// 1) Try the square.
		s.metrics.Attempts++
		if err := s.emit(engine.KindTry, Payload{Row: row, Col: col, Queens: s.queens}); err != nil {
			return false, err
		}
		if attackers := Attackers(s.queens, row, col); len(attackers) > 0 {
			if err := s.emit(engine.KindConflict, Payload{Row: row, Col: col, Queens: s.queens, Attackers: attackers}); err != nil {
				return false, err
			}
			continue
		}

		// 2) Place and recurse.
		s.queens = append(s.queens, col)
		if err := s.emit(engine.KindPlace, Payload{Row: row, Col: col, Queens: s.queens}); err != nil {
			return false, err
		}
		done, err := s.place(row + 1)
		if err != nil || done {
			return done, err
		}

		// 3) Lift the queen.
		s.metrics.Backtracks++
		s.queens = s.queens[:row]
		if err := s.emit(engine.KindBacktrack, Payload{Row: row, Col: col, Queens: s.queens}); err != nil {
			return false, err
		}
	}

	return false, nil
}

// Attackers returns the rows of queens that attack (row, col) through a
// column or a diagonal. queens[i] is the column of the queen in row i.
func Attackers(queens []int, row, col int) []int {
	var out []int
	for r, c := range queens {
		if r >= row {
			break
		}
		if c == col || abs(c-col) == row-r {
			out = append(out, r)
		}
	}

	return out
}

// Valid reports whether queens is a complete non-attacking board.
func Valid(queens []int) bool {
	n := len(queens)
	if n < MinSize || n > MaxSize {
		return false
	}
	for row, col := range queens {
		if col < 0 || col >= n || len(Attackers(queens, row, col)) > 0 {
			return false
		}
	}

	return true
}

// Show returns a Body replaying a known solution as place steps followed by
// found. It performs no search.
func Show(queens []int) (engine.Body, error) {
	if !Valid(queens) {
		return nil, fmt.Errorf("%w: %w: %v", engine.ErrInvalidInput, ErrInvalidSolution, queens)
	}
	board := append([]int(nil), queens...)

	return func(_ context.Context, e *engine.Emitter) (any, error) {
		var m engine.Metrics
		for row, col := range board {
			if err := e.Emit(engine.KindPlace, Payload{Row: row, Col: col, Queens: board[:row+1]}, m); err != nil {
				return nil, err
			}
		}
		if err := e.Emit(engine.KindFound, Payload{Row: -1, Col: -1, Queens: board, Solutions: 1}, m); err != nil {
			return nil, err
		}

		return &Result{N: len(board), Found: true, Solutions: [][]int{board}}, nil
	}, nil
}

// Format draws a board with Q for queens and . for empty squares.
func Format(queens []int) string {
	var b strings.Builder
	for _, col := range queens {
		for c := 0; c < len(queens); c++ {
			if c == col {
				b.WriteByte('Q')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
