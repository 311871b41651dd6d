// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors for Dijkstra setup. Each is returned wrapped together with
// engine.ErrInvalidInput.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the start or goal vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures Dijkstra.
type Options struct {
	// MaxDistance prunes every vertex farther than this from the start.
	// Default: +Inf (no pruning).
	MaxDistance float64
}

// Option mutates Options.
type Option func(*Options)

// WithMaxDistance stops exploring once the nearest open vertex lies beyond max.
// Panics on negative values.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance limit.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// Result holds the outcome of a Dijkstra run.
//   - Order: vertices in settle order.
//   - Dist: best known distance per vertex (+Inf if never reached).
//   - Prev: predecessor on the best known path.
//   - Found, Path, Cost: goal outcome.
type Result struct {
	Order []string           `json:"order"`
	Dist  map[string]float64 `json:"-"`
	Prev  map[string]string  `json:"prev"`
	Found bool               `json:"found"`
	Path  []string           `json:"path,omitempty"`
	Cost  float64            `json:"cost,omitempty"`
}
