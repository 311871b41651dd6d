// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dsaviz/internal/ctxlog"
)

// Runner starts runs and keeps them addressable by ID until forgotten.
// The zero value is not usable; call NewRunner.
type Runner struct {
	defaults Options

	mu   sync.RWMutex
	runs map[string]*Run
}

// NewRunner returns a Runner whose runs start from DefaultOptions overlaid
// with opts. Invalid defaults surface on every Start.
func NewRunner(opts ...Option) *Runner {
	d := DefaultOptions()
	_ = d.apply(opts...)

	return &Runner{
		defaults: d,
		runs:     make(map[string]*Run),
	}
}

// Start validates options, registers a pending Run, moves it to running and
// drives body on a new goroutine. It returns immediately.
func (rn *Runner) Start(ctx context.Context, algorithm string, body Body, opts ...Option) (*Run, error) {
	r, err := rn.prepare(ctx, algorithm, body, opts...)
	if err != nil {
		return nil, err
	}

	r.markRunning()
	go r.drive(body)

	return r, nil
}

// Execute runs body to completion on the caller's goroutine.
// Pacing options still apply; without them the run is unpaced.
func (rn *Runner) Execute(ctx context.Context, algorithm string, body Body, opts ...Option) (*Run, error) {
	r, err := rn.prepare(ctx, algorithm, body, opts...)
	if err != nil {
		return nil, err
	}

	r.markRunning()
	r.drive(body)

	return r, nil
}

// Execute runs body synchronously on a throwaway Runner.
func Execute(ctx context.Context, algorithm string, body Body, opts ...Option) (*Run, error) {
	return NewRunner().Execute(ctx, algorithm, body, opts...)
}

func (rn *Runner) prepare(ctx context.Context, algorithm string, body Body, opts ...Option) (*Run, error) {
	// 1) Validate.
	if body == nil {
		return nil, fmt.Errorf("%w: nil body for %q", ErrInvalidInput, algorithm)
	}
	o := rn.defaults
	if err := o.apply(opts...); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 2) Resolve logger.
	logger := o.Logger
	if logger == nil {
		logger = ctxlog.FromContext(ctx)
	}

	// 3) Register.
	r := newRun(ctx, algorithm, o, logger)
	rn.mu.Lock()
	rn.runs[r.id] = r
	rn.mu.Unlock()

	return r, nil
}

// Get returns the run with the given ID.
func (rn *Runner) Get(id string) (*Run, bool) {
	rn.mu.RLock()
	defer rn.mu.RUnlock()

	r, ok := rn.runs[id]

	return r, ok
}

// Runs returns every registered run ordered by start time.
func (rn *Runner) Runs() []*Run {
	rn.mu.RLock()
	out := make([]*Run, 0, len(rn.runs))
	for _, r := range rn.runs {
		out = append(out, r)
	}
	rn.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		si, sj := out[i].startedAt(), out[j].startedAt()
		if si.Equal(sj) {
			return out[i].id < out[j].id
		}
		return si.Before(sj)
	})

	return out
}

// Cancel cancels the run with the given ID.
func (rn *Runner) Cancel(id string) error {
	r, ok := rn.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	r.Cancel()

	return nil
}

// Reconfigure changes the pacing of a live run.
func (rn *Runner) Reconfigure(id string, pacing time.Duration) error {
	r, ok := rn.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	return r.SetPacing(pacing)
}

// Forget drops a terminal run from the registry. Live runs are kept.
func (rn *Runner) Forget(id string) bool {
	rn.mu.Lock()
	defer rn.mu.Unlock()

	r, ok := rn.runs[id]
	if !ok || !r.Status().Terminal() {
		return false
	}
	delete(rn.runs, id)

	return true
}

// Prune forgets every run that finished more than maxAge ago and returns
// how many were dropped. Prune(0) drops all finished runs.
func (rn *Runner) Prune(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	rn.mu.Lock()
	defer rn.mu.Unlock()

	n := 0
	for id, r := range rn.runs {
		if at, ok := r.finishedAt(); ok && !at.After(cutoff) {
			delete(rn.runs, id)
			n++
		}
	}

	return n
}

// Replay starts a new run that re-emits the steps of a completed run and
// finishes with the same result. Paced or manual options turn a recorded
// log back into a live animation.
func (rn *Runner) Replay(ctx context.Context, src *Run, opts ...Option) (*Run, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source run", ErrInvalidInput)
	}
	res, err := src.Result()
	if err != nil {
		return nil, err
	}

	return rn.Start(ctx, src.Algorithm(), ReplayBody(src.Steps(), res), opts...)
}

// ReplayBody returns a Body that emits steps in order and then returns result.
func ReplayBody(steps []Step, result any) Body {
	return func(_ context.Context, e *Emitter) (any, error) {
		for _, s := range steps {
			if err := e.Emit(s.Kind, s.Payload, s.Metrics); err != nil {
				return nil, err
			}
		}

		return result, nil
	}
}

// WaitAll blocks until every run has finished or ctx ends.
func WaitAll(ctx context.Context, runs ...*Run) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, r := range runs {
		if r == nil {
			continue
		}
		g.Go(func() error {
			_, err := r.Wait(gctx)
			return err
		})
	}

	return g.Wait()
}

func (r *Run) startedAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.started
}

// finishedAt reports when the body returned, once it has.
func (r *Run) finishedAt() (time.Time, bool) {
	select {
	case <-r.done:
	default:
		return time.Time{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.finished, true
}

// Logger returns the run-scoped logger.
func (r *Run) Logger() *slog.Logger { return r.logger }
