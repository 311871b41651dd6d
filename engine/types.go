// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Sentinel errors for run execution.
var (
	// ErrInvalidInput is returned synchronously when a run cannot start:
	// malformed input, bad options or a nil body. Algorithm packages wrap it.
	ErrInvalidInput = errors.New("engine: invalid input")

	// ErrCancelled is returned by Emitter.Emit once the run has been cancelled.
	// Algorithm bodies must propagate it and stop.
	ErrCancelled = errors.New("engine: run cancelled")

	// ErrNotReady is returned by Run.Result when the run has not completed.
	ErrNotReady = errors.New("engine: result not ready")

	// ErrRunNotFound is returned by Runner lookups for unknown run IDs.
	ErrRunNotFound = errors.New("engine: run not found")

	// ErrBodyPanicked wraps a recovered panic raised by an algorithm body.
	ErrBodyPanicked = errors.New("engine: algorithm body panicked")
)

// Kind tags an emitted Step.
type Kind string

// Step kinds shared across algorithm families.
const (
	KindCompare   Kind = "compare"   // two values or a probe position are compared
	KindVisit     Kind = "visit"     // a node/element becomes current
	KindDiscover  Kind = "discover"  // a node enters a frontier
	KindRelax     Kind = "relax"     // a tentative distance improved
	KindHighlight Kind = "highlight" // a position is pointed at without deciding anything
	KindPlace     Kind = "place"     // a value/queen/digit is written into the structure
	KindReplace   Kind = "replace"   // a stored value is overwritten in place
	KindRemove    Kind = "remove"    // a value is taken out of the structure
	KindWrite     Kind = "write"     // an array slot is overwritten (shift, merge)
	KindTry       Kind = "try"       // a candidate placement is about to be checked
	KindConflict  Kind = "conflict"  // a candidate placement violates a constraint
	KindBacktrack Kind = "backtrack" // a placement is undone after a dead end
	KindSolution  Kind = "solution"  // a complete assignment was reached
	KindSwap      Kind = "swap"      // two array slots exchanged values
	KindCollision Kind = "collision" // a hash bucket was already occupied
	KindProbe     Kind = "probe"     // a bucket is inspected during a scan
	KindSchedule  Kind = "schedule"  // a job was assigned a time slot
	KindFound     Kind = "found"     // terminal: positive outcome
	KindNotFound  Kind = "not-found" // terminal: negative outcome (no-path, no-solution)
	KindFull      Kind = "full"      // terminal: structure has no room left
	KindDone      Kind = "done"      // terminal: algorithm finished without a search outcome
)

// Terminal reports whether k ends an algorithm's step sequence.
func (k Kind) Terminal() bool {
	switch k {
	case KindFound, KindNotFound, KindFull, KindDone:
		return true
	default:
		return false
	}
}

// Payload is the variant-specific data carried by a Step.
// Clone must return a copy sharing no mutable memory with the receiver;
// the emitter stores only clones, so an emitted step never changes.
type Payload interface {
	Clone() Payload
}

// Metrics holds running counters valid as of the step that carries them.
type Metrics struct {
	Comparisons int `json:"comparisons,omitempty"`
	Swaps       int `json:"swaps,omitempty"`
	Attempts    int `json:"attempts,omitempty"`
	Backtracks  int `json:"backtracks,omitempty"`
	Visited     int `json:"visited,omitempty"`
	Collisions  int `json:"collisions,omitempty"`
	Probes      int `json:"probes,omitempty"`
}

// Step is one immutable observation of algorithm progress.
// Seq values are contiguous from 0 within a Run.
type Step struct {
	Seq     int     `json:"sequence"`
	Kind    Kind    `json:"kind"`
	Payload Payload `json:"payload,omitempty"`
	Metrics Metrics `json:"metrics"`
}

// Status is the lifecycle state of a Run.
type Status int32

const (
	StatusPending Status = iota
	StatusRunning
	StatusCompleted
	StatusCancelled
	StatusFailed
)

var statusNames = [...]string{"pending", "running", "completed", "cancelled", "failed"}

// String returns the lower-case status name.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("status(%d)", int32(s))
	}

	return statusNames[s]
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reports whether s is completed, cancelled or failed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusFailed
}

// Body is an algorithm bound to its input snapshot. It publishes progress
// through e and returns the run result. Returning ErrCancelled (or an error
// wrapping it) marks the run cancelled; any other error marks it failed.
type Body func(ctx context.Context, e *Emitter) (any, error)

// Option configures a run or a Runner's defaults.
// Invalid options are recorded and surfaced as ErrInvalidInput on Start.
type Option func(*Options)

// Options holds pacing and control settings for a run.
type Options struct {
	// Pacing is the delay applied after every emitted step.
	// Zero still yields the goroutine so concurrent runs interleave.
	Pacing time.Duration

	// Manual makes every Emit wait for Run.Advance (or Run.Resume).
	Manual bool

	// AnimateOnly asks the caller to replay a precomputed result instead of
	// computing it. The engine only carries the flag; catalogs act on it.
	AnimateOnly bool

	// Logger receives run lifecycle records. Nil means the context logger.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns unpaced, automatic, compute-mode options.
func DefaultOptions() Options {
	return Options{
		Pacing:      0,
		Manual:      false,
		AnimateOnly: false,
		Logger:      nil,
		err:         nil,
	}
}

// WithPacing sets the per-step delay. Negative values are rejected.
func WithPacing(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: pacing cannot be negative (%s)", ErrInvalidInput, d)
			return
		}
		o.Pacing = d
	}
}

// WithPacingMs sets the per-step delay in milliseconds.
func WithPacingMs(ms int) Option {
	return WithPacing(time.Duration(ms) * time.Millisecond)
}

// WithManual enables single-step mode: each step waits for Run.Advance.
func WithManual() Option {
	return func(o *Options) {
		o.Manual = true
	}
}

// WithAnimateOnly requests replay of a precomputed result.
func WithAnimateOnly() Option {
	return func(o *Options) {
		o.AnimateOnly = true
	}
}

// WithLogger sets the logger used for run lifecycle records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Resolve applies opts over DefaultOptions and reports the first invalid option.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	err := o.apply(opts...)

	return o, err
}

func (o *Options) apply(opts ...Option) error {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o.err
}
