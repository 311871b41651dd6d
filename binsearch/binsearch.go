// SPDX-License-Identifier: MIT

package binsearch

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/dsaviz/engine"
)

// ErrBadSize indicates a non-positive array size for GenerateSorted.
var ErrBadSize = errors.New("binsearch: array size must be positive")

// Sample array limits.
const (
	sampleSpan   = 100 // values spread over roughly [0, sampleSpan]
	sampleJitter = 5   // each value gets rand[0, sampleJitter) added
)

// Payload describes one binary search step.
//
//	compare   window [Low, High], probed Mid and its Value
//	found     Index of the target
//	not-found Low > High
type Payload struct {
	Low    int `json:"low"`
	High   int `json:"high"`
	Mid    int `json:"mid"`
	Value  int `json:"value"`
	Target int `json:"target"`
	Index  int `json:"index"`
}

// Clone implements engine.Payload.
func (p Payload) Clone() engine.Payload { return p }

// Result is the outcome of a search. Index is -1 when the target is absent.
type Result struct {
	Index int  `json:"index"`
	Found bool `json:"found"`
	Steps int  `json:"steps"`
}

// Search returns a Body looking for target in a snapshot of values.
// values must be sorted ascending.
func Search(values []int, target int) (engine.Body, error) {
	arr := append([]int(nil), values...)

	return func(_ context.Context, e *engine.Emitter) (any, error) {
		var m engine.Metrics
		low, high := 0, len(arr)-1

		for low <= high {
			mid := (low + high) / 2
			m.Comparisons++
			p := Payload{Low: low, High: high, Mid: mid, Value: arr[mid], Target: target, Index: -1}
			if err := e.Emit(engine.KindCompare, p, m); err != nil {
				return nil, err
			}

			switch {
			case arr[mid] == target:
				p.Index = mid
				if err := e.Emit(engine.KindFound, p, m); err != nil {
					return nil, err
				}
				return &Result{Index: mid, Found: true, Steps: m.Comparisons}, nil
			case arr[mid] < target:
				low = mid + 1
			default:
				high = mid - 1
			}
		}

		p := Payload{Low: low, High: high, Mid: -1, Target: target, Index: -1}
		if err := e.Emit(engine.KindNotFound, p, m); err != nil {
			return nil, err
		}

		return &Result{Index: -1, Steps: m.Comparisons}, nil
	}, nil
}

// GenerateSorted returns n ascending values: the i-th is
// (i+1)*⌊100/n⌋ plus a jitter in [0, 5), then the whole slice is sorted.
func GenerateSorted(rng *rand.Rand, n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %w: n=%d", engine.ErrInvalidInput, ErrBadSize, n)
	}
	step := sampleSpan / n
	out := make([]int, n)
	for i := range out {
		out[i] = (i+1)*step + rng.Intn(sampleJitter)
	}
	sort.Ints(out)

	return out, nil
}
