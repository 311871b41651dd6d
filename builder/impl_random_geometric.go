// SPDX-License-Identifier: MIT
// Package: dsaviz/builder
//
// impl_random_geometric.go - RandomGeometric(n, radius, keep) constructor.
//
// Model:
//   - Place n vertices uniformly at random inside the canvas, keeping the margin clear.
//   - For every unordered pair {i,j} (i<j) closer than radius, keep the edge
//     with probability keep. Weight = Euclidean distance between endpoints.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ keep ≤ 1 (else ErrInvalidProbability).
//   - radius > 0 and the canvas larger than twice the margin (else ErrInvalidCanvas).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Determinism:
//   - Vertex draws happen in index order (x then y).
//   - Pair trials run i asc, j asc; a keep draw is consumed only for pairs
//     within radius.
//
// Complexity:
//   - Time: O(n²) pair checks. Space: O(n) for positions.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dsaviz/core"
)

const (
	methodRandomGeometric      = "RandomGeometric"
	minRandomGeometricVertices = 1
	probMin                    = 0.0
	probMax                    = 1.0
)

// RandomGeometric returns a Constructor that samples a random geometric graph.
func RandomGeometric(n int, radius, keep float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters.
		if n < minRandomGeometricVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomGeometric, n, minRandomGeometricVertices, ErrTooFewVertices)
		}
		if keep < probMin || keep > probMax || math.IsNaN(keep) {
			return fmt.Errorf("%s: keep=%.6f not in [%.1f,%.1f]: %w",
				methodRandomGeometric, keep, probMin, probMax, ErrInvalidProbability)
		}
		spanX := cfg.width - 2*cfg.margin
		spanY := cfg.height - 2*cfg.margin
		if radius <= 0 || spanX < 0 || spanY < 0 {
			return fmt.Errorf("%s: radius=%g canvas=%gx%g margin=%g: %w",
				methodRandomGeometric, radius, cfg.width, cfg.height, cfg.margin, ErrInvalidCanvas)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGeometric, ErrNeedRandSource)
		}
		rng := cfg.rng

		// 2) Place vertices.
		pts := make([]core.Vertex, n)
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			x := cfg.margin + rng.Float64()*spanX
			y := cfg.margin + rng.Float64()*spanY
			if err := g.AddVertex(id, core.WithPosition(x, y)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomGeometric, id, err)
			}
			pts[i] = core.Vertex{ID: id, X: x, Y: y}
		}

		// 3) Link nearby pairs.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := core.Euclidean(pts[i], pts[j])
				if d >= radius || rng.Float64() >= keep {
					continue
				}
				w := cfg.weight(d)
				if _, err := g.AddEdge(pts[i].ID, pts[j].ID, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w",
						methodRandomGeometric, pts[i].ID, pts[j].ID, w, err)
				}
			}
		}

		return nil
	}
}
