// SPDX-License-Identifier: MIT
// Package: dsaviz/builder
//
// impl_grid.go - Grid(rows, cols, spacing) constructor.
//
// Model:
//   • 2D orthogonal grid with 4-neighborhood; vertex "r,c" sits at
//     (margin + c*spacing, margin + r*spacing).
//   • Vertex IDs use the fixed scheme "r,c" (row-major order) so coordinates
//     stay readable; cfg.idFn is not consulted.
//   • Every edge weighs spacing (the distance between adjacent cells),
//     rounded under WithRoundedWeights.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices); spacing > 0 (else ErrInvalidCanvas).
//   • Directed graphs receive both arcs per cell pair.
//
// Determinism:
//   • Stable vertex order: row-major. Stable edge order: Right then Bottom per cell.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dsaviz/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID of cell (r, c) in a Grid.
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int, spacing float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if spacing <= 0 {
			return fmt.Errorf("%s: spacing=%g: %w", methodGrid, spacing, ErrInvalidCanvas)
		}

		// 2) Add all vertices in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				x := cfg.margin + float64(c)*spacing
				y := cfg.margin + float64(r)*spacing
				if err := g.AddVertex(id, core.WithPosition(x, y)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		// 3) Emit Right and Bottom edges per cell.
		w := cfg.weight(spacing)
		link := func(u, v string) error {
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodGrid, u, v, err)
			}
			if g.Directed() {
				if _, err := g.AddEdge(v, u, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodGrid, v, u, err)
				}
			}
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
