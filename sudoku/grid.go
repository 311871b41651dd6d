// SPDX-License-Identifier: MIT

package sudoku

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dsaviz/engine"
)

// Size is the side of the grid; Box is the side of a box.
const (
	Size = 9
	Box  = 3
)

// Sentinel errors.
var (
	ErrBadCell         = errors.New("sudoku: cell value out of range 0..9")
	ErrBadShape        = errors.New("sudoku: grid must be 9x9")
	ErrUnknownPreset   = errors.New("sudoku: unknown preset")
	ErrInvalidSolution = errors.New("sudoku: not a solution of the puzzle")
)

// Grid holds digits 1..9; 0 marks an empty cell.
type Grid [Size][Size]int

// Cell addresses one grid square.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// FromRows converts a [][]int (as decoded from YAML or JSON) into a Grid.
func FromRows(rows [][]int) (Grid, error) {
	var g Grid
	if len(rows) != Size {
		return g, fmt.Errorf("%w: %w: %d rows", engine.ErrInvalidInput, ErrBadShape, len(rows))
	}
	for r, row := range rows {
		if len(row) != Size {
			return g, fmt.Errorf("%w: %w: row %d has %d cells", engine.ErrInvalidInput, ErrBadShape, r, len(row))
		}
		copy(g[r][:], row)
	}

	return g, g.check()
}

// Rows returns g as a [][]int.
func (g Grid) Rows() [][]int {
	out := make([][]int, Size)
	for r := range g {
		out[r] = append([]int(nil), g[r][:]...)
	}

	return out
}

func (g Grid) check() error {
	for r := range g {
		for c, v := range g[r] {
			if v < 0 || v > Size {
				return fmt.Errorf("%w: %w: (%d,%d)=%d", engine.ErrInvalidInput, ErrBadCell, r, c, v)
			}
		}
	}

	return nil
}

// Empty returns the number of empty cells.
func (g Grid) Empty() int {
	n := 0
	for r := range g {
		for _, v := range g[r] {
			if v == 0 {
				n++
			}
		}
	}

	return n
}

// firstEmpty returns the first empty cell in row-major order.
func (g *Grid) firstEmpty() (Cell, bool) {
	for r := range g {
		for c, v := range g[r] {
			if v == 0 {
				return Cell{r, c}, true
			}
		}
	}

	return Cell{}, false
}

// Conflicts returns the cells in the row, column and box of (row, col) that
// already hold v, ignoring (row, col) itself. Cells may repeat across units.
func (g *Grid) Conflicts(row, col, v int) []Cell {
	var out []Cell
	for c := 0; c < Size; c++ {
		if c != col && g[row][c] == v {
			out = append(out, Cell{row, c})
		}
	}
	for r := 0; r < Size; r++ {
		if r != row && g[r][col] == v {
			out = append(out, Cell{r, col})
		}
	}
	br, bc := row/Box*Box, col/Box*Box
	for r := br; r < br+Box; r++ {
		for c := bc; c < bc+Box; c++ {
			if (r != row || c != col) && g[r][c] == v {
				out = append(out, Cell{r, c})
			}
		}
	}

	return out
}

// Report is the outcome of Validate.
type Report struct {
	Valid     bool   `json:"valid"`
	Solved    bool   `json:"solved"`
	Empty     int    `json:"empty"`
	Conflicts []Cell `json:"conflicts,omitempty"`
}

// Validate checks every filled cell against its row, column and box.
func Validate(g Grid) Report {
	rep := Report{Empty: g.Empty()}
	for r := range g {
		for c, v := range g[r] {
			if v != 0 && len(g.Conflicts(r, c, v)) > 0 {
				rep.Conflicts = append(rep.Conflicts, Cell{r, c})
			}
		}
	}
	rep.Valid = len(rep.Conflicts) == 0
	rep.Solved = rep.Valid && rep.Empty == 0

	return rep
}

// String draws the grid with dots for empty cells.
func (g Grid) String() string {
	var b strings.Builder
	for r := range g {
		for c, v := range g[r] {
			if c > 0 && c%Box == 0 {
				b.WriteString("| ")
			}
			if v == 0 {
				b.WriteString(". ")
			} else {
				fmt.Fprintf(&b, "%d ", v)
			}
		}
		b.WriteString("\n")
		if r%Box == Box-1 && r < Size-1 {
			b.WriteString("------+-------+------\n")
		}
	}

	return b.String()
}

var presets = map[string]Grid{
	"easy": {
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	},
	"medium": {
		{0, 0, 0, 6, 0, 0, 4, 0, 0},
		{7, 0, 0, 0, 0, 3, 6, 0, 0},
		{0, 0, 0, 0, 9, 1, 0, 8, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 5, 0, 1, 8, 0, 0, 0, 3},
		{0, 0, 0, 3, 0, 6, 0, 4, 5},
		{0, 4, 0, 2, 0, 0, 0, 6, 0},
		{9, 0, 3, 0, 0, 0, 0, 0, 0},
		{0, 2, 0, 0, 0, 0, 1, 0, 0},
	},
	"hard": {
		{0, 0, 0, 0, 0, 0, 0, 1, 0},
		{4, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 6, 0, 2},
		{0, 0, 0, 0, 3, 0, 0, 7, 0},
		{5, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 8, 0, 4, 0},
		{0, 0, 0, 2, 0, 0, 0, 0, 0},
		{0, 6, 0, 0, 0, 0, 0, 0, 5},
		{0, 0, 4, 0, 0, 0, 0, 0, 0},
	},
	"expert": {
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 3, 0, 8, 5},
		{0, 0, 1, 0, 2, 0, 0, 0, 0},
		{0, 0, 0, 5, 0, 7, 0, 0, 0},
		{0, 0, 4, 0, 0, 0, 1, 0, 0},
		{0, 9, 0, 0, 0, 0, 0, 0, 0},
		{5, 0, 0, 0, 0, 0, 0, 7, 3},
		{0, 0, 2, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 4, 0, 0, 0, 9},
	},
}

// PresetNames lists the built-in puzzles from easiest to hardest.
func PresetNames() []string {
	return []string{"easy", "medium", "hard", "expert"}
}

// Preset returns a built-in puzzle by name.
func Preset(name string) (Grid, error) {
	g, ok := presets[strings.ToLower(name)]
	if !ok {
		return Grid{}, fmt.Errorf("%w: %w: %q", engine.ErrInvalidInput, ErrUnknownPreset, name)
	}

	return g, nil
}
