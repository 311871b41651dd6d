// SPDX-License-Identifier: MIT

package engine

import (
	"runtime"
	"time"
)

// Emitter publishes steps for the Run that owns it.
// It is handed to a Body and must not be used after the body returns.
type Emitter struct {
	run *Run
}

// RunID returns the ID of the owning run.
func (e *Emitter) RunID() string { return e.run.id }

// Emit appends a step and then suspends according to the run's pacing mode.
// After cancellation it returns ErrCancelled and appends nothing; the body
// must return that error unchanged (or wrapped).
func (e *Emitter) Emit(kind Kind, payload Payload, m Metrics) error {
	r := e.run

	// 1) Refuse new steps once cancelled.
	r.mu.Lock()
	if r.status == StatusCancelled || r.ctx.Err() != nil {
		r.mu.Unlock()
		return ErrCancelled
	}

	// 2) Append an immutable copy and wake subscribers.
	if payload != nil {
		payload = payload.Clone()
	}
	r.steps = append(r.steps, Step{
		Seq:     len(r.steps),
		Kind:    kind,
		Payload: payload,
		Metrics: m,
	})
	r.notifyLocked()
	r.mu.Unlock()

	// 3) Suspend.
	return r.suspend(time.Now())
}

// suspend blocks according to the current pacing mode. Pacing and manual
// changes made while waiting take effect immediately.
func (r *Run) suspend(emitted time.Time) error {
	for {
		r.mu.Lock()
		pacing, manual, changed := r.pacing, r.manual, r.changed
		r.mu.Unlock()

		if manual {
			select {
			case <-r.gate:
			case <-r.ctx.Done():
				return ErrCancelled
			}
			break
		}

		remaining := pacing - time.Since(emitted)
		if remaining <= 0 {
			runtime.Gosched()
			break
		}

		t := time.NewTimer(remaining)
		select {
		case <-t.C:
		case <-changed:
			t.Stop()
			continue
		case <-r.ctx.Done():
			t.Stop()
			return ErrCancelled
		}
		break
	}

	if r.ctx.Err() != nil {
		return ErrCancelled
	}

	return nil
}
