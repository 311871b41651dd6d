// SPDX-License-Identifier: MIT
// Package: dsaviz/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn    = DefaultIDFn ("0","1","2",...)
//   • rng     = nil (stochastic constructors require WithSeed/WithRand)
//   • canvas  = 800×500 with a 50px margin
//   • weights = unrounded Euclidean distance

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Drawing area for positioned vertices.
	width  float64
	height float64
	margin float64

	// Round edge weights to the nearest integer distance.
	roundWeights bool
}

// Deterministic defaults (named, no magic numbers).
const (
	DefaultWidth  = 800.0
	DefaultHeight = 500.0
	DefaultMargin = 50.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		width:  DefaultWidth,
		height: DefaultHeight,
		margin: DefaultMargin,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight converts a vertex distance to an edge weight under the config policy.
func (c builderConfig) weight(d float64) float64 {
	if c.roundWeights {
		return float64(int64(d + 0.5))
	}

	return d
}
