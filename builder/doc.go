// Package builder generates positioned graphs for the search animations.
//
// What
//
//   - RandomGeometric(n, radius, keep): n vertices scattered over a canvas,
//     nearby pairs linked with probability keep, weighted by distance. This is
//     the "generate graph" button of the playground.
//   - Grid(rows, cols, spacing): a lattice with fixed, readable "r,c" IDs; the
//     usual fixture for searches whose exact order matters.
//   - BuildGraph composes constructors over one core.Graph.
//   - Endpoints(g) returns the default start (first vertex) and goal (last vertex).
//
// Options
//
//   - WithSeed(seed) / WithRand(r): required by RandomGeometric.
//   - WithCanvas(w, h), WithMargin(m): placement area (default 800×500, margin 50).
//   - WithIDScheme(fn), WithLetterIDs(), WithPrefixIDs(p): vertex labels.
//   - WithRoundedWeights(): integer weights as displayed on screen.
//
// Option constructors panic on meaningless arguments; constructors return
// sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrInvalidCanvas, ErrConstructFailed) wrapped with method context.
//
// Determinism
//
//	The same options, seed and constructor order always yield the same graph.
package builder
