// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Run is one execution of an algorithm body on an input snapshot.
// All methods are safe for concurrent use.
type Run struct {
	id        string
	algorithm string
	ctx       context.Context
	cancel    context.CancelFunc
	logger    *slog.Logger

	mu       sync.Mutex
	status   Status
	steps    []Step
	result   any
	err      error
	pacing   time.Duration
	manual   bool
	started  time.Time
	finished time.Time
	changed  chan struct{} // closed and replaced on every state change
	done     chan struct{} // closed when the driving goroutine exits
	gate     chan struct{} // manual-mode tokens, capacity 1
}

func newRun(parent context.Context, algorithm string, o Options, logger *slog.Logger) *Run {
	ctx, cancel := context.WithCancel(parent)
	id := uuid.NewString()

	return &Run{
		id:        id,
		algorithm: algorithm,
		ctx:       ctx,
		cancel:    cancel,
		logger:    logger.With("run", id, "algorithm", algorithm),
		status:    StatusPending,
		pacing:    o.Pacing,
		manual:    o.Manual,
		changed:   make(chan struct{}),
		done:      make(chan struct{}),
		gate:      make(chan struct{}, 1),
	}
}

// ID returns the unique run identifier.
func (r *Run) ID() string { return r.id }

// Algorithm returns the algorithm name the run was started with.
func (r *Run) Algorithm() string { return r.algorithm }

// Status returns the current lifecycle state.
func (r *Run) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.status
}

// Len returns the number of steps emitted so far.
func (r *Run) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.steps)
}

// Steps returns a copy of the step log.
func (r *Run) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Step, len(r.steps))
	copy(out, r.steps)

	return out
}

// Step returns the step with the given sequence number.
func (r *Run) Step(seq int) (Step, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seq < 0 || seq >= len(r.steps) {
		return Step{}, false
	}

	return r.steps[seq], true
}

// Result returns the body's result once the run has completed.
// Before that, or for cancelled and failed runs, it returns ErrNotReady.
func (r *Run) Result() (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != StatusCompleted {
		return nil, fmt.Errorf("%w: run %s is %s", ErrNotReady, r.id, r.status)
	}

	return r.result, nil
}

// ResultAs returns the completed result of r asserted to T.
func ResultAs[T any](r *Run) (T, error) {
	var zero T
	v, err := r.Result()
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("engine: result of run %s is %T, not %T", r.id, v, zero)
	}

	return t, nil
}

// Err returns the failure cause of a failed run, or nil.
func (r *Run) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.err
}

// Elapsed returns the wall time between start and the terminal transition
// (or now, while still running).
func (r *Run) Elapsed() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case r.started.IsZero():
		return 0
	case r.finished.IsZero():
		return time.Since(r.started)
	default:
		return r.finished.Sub(r.started)
	}
}

// Done is closed once the body has returned and the final status is recorded.
func (r *Run) Done() <-chan struct{} { return r.done }

// Wait blocks until the run finishes or ctx ends, and returns the final status.
func (r *Run) Wait(ctx context.Context) (Status, error) {
	select {
	case <-r.done:
		return r.Status(), nil
	case <-ctx.Done():
		return r.Status(), ctx.Err()
	}
}

// Cancel requests cancellation. The status becomes cancelled immediately and
// the body stops at its next Emit. Cancelling a terminal run is a no-op.
func (r *Run) Cancel() {
	r.mu.Lock()
	if r.status.Terminal() {
		r.mu.Unlock()
		return
	}
	r.status = StatusCancelled
	r.notifyLocked()
	r.mu.Unlock()

	r.cancel()
}

// SetPacing changes the per-step delay. A step already waiting is re-timed
// against the new delay.
func (r *Run) SetPacing(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%w: pacing cannot be negative (%s)", ErrInvalidInput, d)
	}
	r.mu.Lock()
	r.pacing = d
	r.notifyLocked()
	r.mu.Unlock()

	return nil
}

// Pacing returns the current per-step delay.
func (r *Run) Pacing() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.pacing
}

// Pause switches the run to manual mode. The status stays running.
func (r *Run) Pause() {
	r.mu.Lock()
	r.manual = true
	r.notifyLocked()
	r.mu.Unlock()

	select {
	case <-r.gate:
	default:
	}
}

// Resume leaves manual mode and releases a waiting Emit.
func (r *Run) Resume() {
	r.mu.Lock()
	r.manual = false
	r.notifyLocked()
	r.mu.Unlock()

	r.Advance()
}

// Advance releases exactly one waiting step in manual mode.
// Extra calls before the next step collapse into one.
func (r *Run) Advance() {
	select {
	case r.gate <- struct{}{}:
	default:
	}
}

// Manual reports whether the run is in single-step mode.
func (r *Run) Manual() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.manual
}

// Subscribe streams every step from Seq 0 in order. The channel closes when
// the run is terminal and all its steps were delivered, or when ctx ends.
func (r *Run) Subscribe(ctx context.Context) <-chan Step {
	out := make(chan Step)

	go func() {
		defer close(out)

		next := 0
		for {
			r.mu.Lock()
			pending := make([]Step, len(r.steps)-next)
			copy(pending, r.steps[next:])
			terminal := r.status.Terminal()
			changed := r.changed
			r.mu.Unlock()

			for _, s := range pending {
				select {
				case out <- s:
					next++
				case <-ctx.Done():
					return
				}
			}
			if len(pending) > 0 {
				continue
			}
			if terminal {
				return
			}

			select {
			case <-changed:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// notifyLocked wakes every subscriber. r.mu must be held.
func (r *Run) notifyLocked() {
	close(r.changed)
	r.changed = make(chan struct{})
}

// markRunning moves a pending run to running. A run cancelled before it
// got here stays cancelled; its body then stops at the first Emit.
func (r *Run) markRunning() {
	r.mu.Lock()
	r.started = time.Now()
	if r.status != StatusPending {
		r.mu.Unlock()
		return
	}
	r.status = StatusRunning
	r.notifyLocked()
	r.mu.Unlock()

	r.logger.Debug("run started")
}

// drive executes body on the calling goroutine and records the outcome.
func (r *Run) drive(body Body) {
	defer close(r.done)
	defer r.cancel()

	var (
		res any
		err error
	)
	func() {
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("%w: %v", ErrBodyPanicked, p)
			}
		}()
		res, err = body(r.ctx, &Emitter{run: r})
	}()

	r.finish(res, err)
}

func (r *Run) finish(res any, err error) {
	r.mu.Lock()
	r.finished = time.Now()
	switch {
	case r.status == StatusCancelled:
		// Cancel already decided the outcome; the body's result is discarded.
	case errors.Is(err, ErrCancelled), err != nil && r.ctx.Err() != nil:
		r.status = StatusCancelled
	case err != nil:
		r.status = StatusFailed
		r.err = err
	default:
		r.status = StatusCompleted
		r.result = res
	}
	status, steps, elapsed := r.status, len(r.steps), r.finished.Sub(r.started)
	r.notifyLocked()
	r.mu.Unlock()

	attrs := []any{"status", status.String(), "steps", steps, "elapsed", elapsed}
	switch status {
	case StatusCompleted:
		r.logger.Info("run completed", attrs...)
	case StatusFailed:
		r.logger.Warn("run failed", append(attrs, "err", err)...)
	default:
		r.logger.Debug("run cancelled", attrs...)
	}
}
