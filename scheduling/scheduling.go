// SPDX-License-Identifier: MIT

package scheduling

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/dsaviz/engine"
)

// Sentinel errors.
var (
	ErrUnknownPolicy = errors.New("scheduling: unknown policy")
	ErrNoJobs        = errors.New("scheduling: no jobs to schedule")
	ErrInvalidJob    = errors.New("scheduling: invalid job")
)

// Policy selects the ordering key.
type Policy string

// Policies.
const (
	SJF      Policy = "sjf"
	EDF      Policy = "edf"
	Priority Policy = "priority"
	FCFS     Policy = "fcfs"
)

var descriptions = map[Policy]string{
	SJF:      "Shortest Job First: increasing execution time, minimizing average wait.",
	EDF:      "Earliest Deadline First: increasing deadline, minimizing missed deadlines.",
	Priority: "Priority: increasing priority number (1 is the highest priority).",
	FCFS:     "First Come First Serve: arrival order.",
}

// Policies lists every policy.
func Policies() []Policy {
	return []Policy{SJF, EDF, Priority, FCFS}
}

// ParsePolicy accepts a policy name, case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := descriptions[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}

	return p, nil
}

// Describe returns a one-line explanation of p.
func (p Policy) Describe() string { return descriptions[p] }

// Job is one unit of work. A zero Deadline means the job has none: it is
// never missed and EDF orders it after every job that has one.
type Job struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Duration int64  `json:"duration" yaml:"duration"`
	Deadline int64  `json:"deadline" yaml:"deadline"`
	Priority int    `json:"priority" yaml:"priority"`
	Arrival  int64  `json:"arrival,omitempty" yaml:"arrival"`
}

// Slot is a job's place on the timeline.
type Slot struct {
	Job    Job   `json:"job"`
	Start  int64 `json:"start"`
	End    int64 `json:"end"`
	Wait   int64 `json:"wait"`
	Missed bool  `json:"missed,omitempty"`
}

// Summary aggregates a schedule.
type Summary struct {
	Makespan int64   `json:"makespan"`
	AvgWait  float64 `json:"avg_wait"`
	Missed   int     `json:"missed"`
}

// Payload describes one scheduling step.
//
//	highlight  Slot.Job was picked at position Index
//	schedule   Slot is fixed
//	done       Summary of the whole schedule
type Payload struct {
	Index   int      `json:"index"`
	Slot    Slot     `json:"slot"`
	Summary *Summary `json:"summary,omitempty"`
}

// Clone implements engine.Payload.
func (p Payload) Clone() engine.Payload {
	c := p
	if p.Summary != nil {
		s := *p.Summary
		c.Summary = &s
	}

	return c
}

// Result is the computed schedule.
type Result struct {
	Policy  Policy  `json:"policy"`
	Slots   []Slot  `json:"slots"`
	Summary Summary `json:"summary"`
}

// Order returns a copy of jobs stably sorted by p's key.
func Order(p Policy, jobs []Job) []Job {
	out := append([]Job(nil), jobs...)
	key := func(j Job) int64 {
		switch p {
		case SJF:
			return j.Duration
		case EDF:
			if j.Deadline == 0 {
				return math.MaxInt64
			}

			return j.Deadline
		case Priority:
			return int64(j.Priority)
		default:
			return j.Arrival
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return key(out[a]) < key(out[b]) })

	return out
}

func validate(jobs []Job) error {
	if len(jobs) == 0 {
		return fmt.Errorf("%w: %w", engine.ErrInvalidInput, ErrNoJobs)
	}
	for i, j := range jobs {
		if j.Duration <= 0 || j.Deadline < 0 || j.Priority < 0 || j.Arrival < 0 {
			return fmt.Errorf("%w: %w: #%d %q duration=%d deadline=%d priority=%d arrival=%d",
				engine.ErrInvalidInput, ErrInvalidJob, i, j.Name, j.Duration, j.Deadline, j.Priority, j.Arrival)
		}
	}

	return nil
}

// Schedule returns a Body placing a copy of jobs on a timeline under p.
// Jobs without an ID get their 1-based input position.
func Schedule(p Policy, jobs []Job) (engine.Body, error) {
	p, err := ParsePolicy(string(p))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, err)
	}
	if err := validate(jobs); err != nil {
		return nil, err
	}
	snap := append([]Job(nil), jobs...)
	for i := range snap {
		if snap[i].ID == 0 {
			snap[i].ID = i + 1
		}
	}

	return func(_ context.Context, e *engine.Emitter) (any, error) {
		var m engine.Metrics
		res := &Result{Policy: p, Slots: make([]Slot, 0, len(snap))}
		var now, waitSum int64

		for i, job := range Order(p, snap) {
			m.Visited++
			if err := e.Emit(engine.KindHighlight, Payload{Index: i, Slot: Slot{Job: job}}, m); err != nil {
				return nil, err
			}

			start := max(now, job.Arrival)
			slot := Slot{Job: job, Start: start, End: start + job.Duration, Wait: start - job.Arrival}
			slot.Missed = job.Deadline > 0 && slot.End > job.Deadline
			now = slot.End
			waitSum += slot.Wait
			if slot.Missed {
				res.Summary.Missed++
			}
			res.Slots = append(res.Slots, slot)

			if err := e.Emit(engine.KindSchedule, Payload{Index: i, Slot: slot}, m); err != nil {
				return nil, err
			}
		}

		res.Summary.Makespan = now
		res.Summary.AvgWait = float64(waitSum) / float64(len(res.Slots))
		sum := res.Summary
		if err := e.Emit(engine.KindDone, Payload{Index: -1, Summary: &sum}, m); err != nil {
			return nil, err
		}

		return res, nil
	}, nil
}

// SampleJobs returns the demonstration job set.
func SampleJobs() []Job {
	return []Job{
		{ID: 1, Name: "Compile Code", Duration: 2000, Deadline: 5000, Priority: 2},
		{ID: 2, Name: "Run Tests", Duration: 1500, Deadline: 4000, Priority: 1},
		{ID: 3, Name: "Deploy App", Duration: 3000, Deadline: 8000, Priority: 3},
		{ID: 4, Name: "Send Email", Duration: 500, Deadline: 2000, Priority: 4},
		{ID: 5, Name: "Backup Data", Duration: 2500, Deadline: 10000, Priority: 5},
	}
}
