// SPDX-License-Identifier: MIT
// Package: dsaviz/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach method context with %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidCanvas indicates a drawing area too small to hold vertices inside
// its margin, or a non-positive connection radius or spacing.
var ErrInvalidCanvas = errors.New("builder: invalid canvas geometry")

// ErrConstructFailed indicates a nil constructor or an unrecoverable core error.
var ErrConstructFailed = errors.New("builder: construction failed")
