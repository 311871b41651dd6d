// Package engine runs step-emitting algorithms as independent, controllable
// executions ("runs") whose progress can be observed live or replayed later.
//
// What
//
//   - An algorithm body is a Body: func(ctx, *Emitter) (result, error).
//   - Every observable action of the body is published through Emitter.Emit as
//     an immutable Step{Seq, Kind, Payload, Metrics}.
//   - A Run owns the append-only step log, its lifecycle Status, and its
//     result. Status moves pending → running → exactly one of
//     completed | cancelled | failed.
//   - A Runner starts Runs on their own goroutines, keeps them addressable by
//     ID, and exposes cancel / reconfigure / replay / wait-all controls.
//
// Suspension model
//
//	Emit is the only place a body yields. After appending a step it either
//	  - waits for Run.Advance (manual mode),
//	  - waits the pacing delay, or
//	  - yields the goroutine when pacing is zero,
//	and returns ErrCancelled if the Run was cancelled meanwhile. A body stops
//	by returning that error; no step is appended after cancellation.
//
// Observation
//
//	Run.Steps returns a snapshot copy of the log. Run.Subscribe streams every
//	step from Seq 0 without loss, then closes once the Run is terminal and all
//	steps were delivered. Subscribers never block the body.
//
// Options
//
//   - DefaultOptions(): no pacing, automatic stepping, compute mode.
//   - WithPacing(d) / WithPacingMs(ms): per-step delay (>= 0).
//   - WithManual():                     single-step mode driven by Run.Advance.
//   - WithAnimateOnly():                flag read by catalogs to replay a precomputed result.
//   - WithLogger(l):                    lifecycle logger (falls back to the context logger).
//
// Errors
//
//   - ErrInvalidInput  synchronous start failure; the Run never starts.
//   - ErrCancelled     returned by Emit after cancellation.
//   - ErrNotReady      Run.Result before completion.
//   - ErrRunNotFound   unknown run ID passed to a Runner.
//   - ErrBodyPanicked  recovered panic, reported through Run.Err with status failed.
//
// Concurrency
//
//	Each Run is driven by one goroutine; Run state is guarded by a mutex, and
//	all Run methods are safe for concurrent use. Runs share no mutable state.
package engine
