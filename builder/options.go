// SPDX-License-Identifier: MIT
// Package: dsaviz/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCanvas sets the drawing area vertices are placed in.
// Panics on non-positive dimensions.
func WithCanvas(width, height float64) BuilderOption {
	if width <= 0 || height <= 0 {
		panic("builder: WithCanvas(width<=0 || height<=0)")
	}
	return func(c *builderConfig) {
		c.width, c.height = width, height
	}
}

// WithMargin sets the empty border kept around placed vertices.
// Panics if m < 0.
func WithMargin(m float64) BuilderOption {
	if m < 0 {
		panic("builder: WithMargin(m<0)")
	}
	return func(c *builderConfig) {
		c.margin = m
	}
}

// WithRoundedWeights rounds every edge weight to the nearest whole distance,
// the way the on-screen labels show them.
func WithRoundedWeights() BuilderOption {
	return func(c *builderConfig) {
		c.roundWeights = true
	}
}
