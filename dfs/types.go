// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dsaviz/core"
)

// Sentinel errors for DFS setup. Each is returned wrapped together with
// engine.ErrInvalidInput.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrGoalVertexNotFound is returned when a non-empty goal ID is absent.
	ErrGoalVertexNotFound = errors.New("dfs: goal vertex not found")

	// ErrNoPath is returned by Result.PathTo for unvisited vertices.
	ErrNoPath = errors.New("dfs: no path")
)

// Option configures DFS behavior.
type Option func(*Options)

// Options holds DFS tuning parameters.
type Options struct {
	// FilterNeighbor returns false to skip the edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool
}

// DefaultOptions returns Options that follow every edge.
func DefaultOptions() Options {
	return Options{
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a DFS run.
//   - Order: vertices in the order they were popped and visited.
//   - Parent: the last vertex that pushed each vertex (the predecessor on Path).
//   - Found, Path, Cost: goal outcome.
type Result struct {
	Order  []string          `json:"order"`
	Parent map[string]string `json:"parent"`
	Found  bool              `json:"found"`
	Path   []string          `json:"path,omitempty"`
	Cost   float64           `json:"cost,omitempty"`

	visited map[string]bool
}

// PathTo reconstructs the tree path from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.visited[dest] {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}

	return core.Reconstruct(r.Parent, dest), nil
}
