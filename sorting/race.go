// SPDX-License-Identifier: MIT

package sorting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/dsaviz/engine"
)

// Entrant is one algorithm's run in a race.
type Entrant struct {
	Algorithm Algorithm
	Run       *engine.Run
}

// Race is a set of concurrently running sorts over the same input.
type Race struct {
	entrants []Entrant
}

// Standing summarizes one entrant after the race.
type Standing struct {
	Algorithm   Algorithm     `json:"algorithm"`
	RunID       string        `json:"run_id"`
	Status      engine.Status `json:"status"`
	Steps       int           `json:"steps"`
	Comparisons int           `json:"comparisons"`
	Swaps       int           `json:"swaps"`
	Elapsed     time.Duration `json:"elapsed"`
}

// Outcome ranks the entrants. Winner is empty when no run completed.
type Outcome struct {
	Winner    Algorithm  `json:"winner,omitempty"`
	Standings []Standing `json:"standings"`
}

// StartRace starts one run per algorithm on rn, all with the same options.
// If any start fails the already started runs are cancelled.
func StartRace(ctx context.Context, rn *engine.Runner, values []int, opts ...engine.Option) (*Race, error) {
	if rn == nil {
		return nil, fmt.Errorf("%w: nil runner", engine.ErrInvalidInput)
	}

	race := &Race{}
	for _, alg := range Algorithms() {
		body, err := Sort(alg, values)
		if err == nil {
			var run *engine.Run
			if run, err = rn.Start(ctx, "sort."+string(alg), body, opts...); err == nil {
				race.entrants = append(race.entrants, Entrant{Algorithm: alg, Run: run})
				continue
			}
		}
		race.Cancel()
		return nil, err
	}

	return race, nil
}

// Entrants returns the runs in race order.
func (r *Race) Entrants() []Entrant {
	return append([]Entrant(nil), r.entrants...)
}

// Cancel cancels every run still in flight.
func (r *Race) Cancel() {
	for _, e := range r.entrants {
		e.Run.Cancel()
	}
}

// Wait blocks until every run is terminal, then ranks them.
func (r *Race) Wait(ctx context.Context) (*Outcome, error) {
	runs := make([]*engine.Run, len(r.entrants))
	for i, e := range r.entrants {
		runs[i] = e.Run
	}
	if err := engine.WaitAll(ctx, runs...); err != nil {
		return nil, err
	}

	out := &Outcome{Standings: make([]Standing, len(r.entrants))}
	for i, e := range r.entrants {
		st := Standing{
			Algorithm: e.Algorithm,
			RunID:     e.Run.ID(),
			Status:    e.Run.Status(),
			Steps:     e.Run.Len(),
			Elapsed:   e.Run.Elapsed(),
		}
		if res, err := engine.ResultAs[*Result](e.Run); err == nil {
			st.Comparisons, st.Swaps = res.Comparisons, res.Swaps
		}
		out.Standings[i] = st
	}

	// completed runs first, then by steps; stable keeps race order on ties
	sort.SliceStable(out.Standings, func(i, j int) bool {
		a, b := out.Standings[i], out.Standings[j]
		ac, bc := a.Status == engine.StatusCompleted, b.Status == engine.StatusCompleted
		if ac != bc {
			return ac
		}
		return a.Steps < b.Steps
	})
	if len(out.Standings) > 0 && out.Standings[0].Status == engine.StatusCompleted {
		out.Winner = out.Standings[0].Algorithm
	}

	return out, nil
}

// RunRace starts a race and waits for it.
func RunRace(ctx context.Context, rn *engine.Runner, values []int, opts ...engine.Option) (*Outcome, error) {
	race, err := StartRace(ctx, rn, values, opts...)
	if err != nil {
		return nil, err
	}

	return race.Wait(ctx)
}
