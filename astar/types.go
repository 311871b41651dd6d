// SPDX-License-Identifier: MIT

package astar

import (
	"errors"

	"github.com/katalvlaran/dsaviz/core"
)

// Sentinel errors for A* setup.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrVertexNotFound indicates that the start or goal vertex does not exist.
	ErrVertexNotFound = errors.New("astar: vertex not found in graph")

	// ErrEmptyGoal indicates a missing goal; A* needs one to aim its heuristic.
	ErrEmptyGoal = errors.New("astar: goal vertex is required")
)

// Heuristic estimates the remaining cost from v to goal.
type Heuristic func(v, goal core.Vertex) float64

// Zero is the heuristic that always returns 0.
func Zero(_, _ core.Vertex) float64 { return 0 }

// Options configures A*.
type Options struct {
	Heuristic Heuristic
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions uses the Euclidean heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: core.Euclidean}
}

// WithHeuristic replaces the heuristic. Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("astar: WithHeuristic(nil)")
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// Result holds the outcome of an A* run.
//   - Order: vertices in the order they were closed.
//   - G: best known cost from start for every opened vertex.
//   - Prev: predecessor on the best known path.
type Result struct {
	Order []string           `json:"order"`
	G     map[string]float64 `json:"g"`
	Prev  map[string]string  `json:"prev"`
	Found bool               `json:"found"`
	Path  []string           `json:"path,omitempty"`
	Cost  float64            `json:"cost,omitempty"`
}
