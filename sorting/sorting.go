// SPDX-License-Identifier: MIT

package sorting

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/dsaviz/engine"
)

// Sentinel errors.
var (
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
	ErrBadRange         = errors.New("sorting: invalid random array range")
)

// Algorithm names a sort.
type Algorithm string

// Sorts, in race order.
const (
	Bubble    Algorithm = "bubble"
	Insertion Algorithm = "insertion"
	Merge     Algorithm = "merge"
	Quick     Algorithm = "quick"
)

// Algorithms lists every sort in race order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Insertion, Merge, Quick}
}

// ParseAlgorithm accepts an algorithm name, case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case Bubble, Insertion, Merge, Quick:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Payload describes one sorting step.
type Payload struct {
	I     int   `json:"i"`
	J     int   `json:"j"`
	Value int   `json:"value,omitempty"`
	Array []int `json:"array,omitempty"`
}

// Clone implements engine.Payload.
func (p Payload) Clone() engine.Payload {
	c := p
	c.Array = append([]int(nil), p.Array...)

	return c
}

// Result is the sorted array with final counters.
type Result struct {
	Algorithm   Algorithm `json:"algorithm"`
	Sorted      []int     `json:"sorted"`
	Comparisons int       `json:"comparisons"`
	Swaps       int       `json:"swaps"`
}

// sorter holds the working array of one run.
type sorter struct {
	a       []int
	em      *engine.Emitter
	metrics engine.Metrics
}

// Sort returns a Body sorting a copy of values with alg.
func Sort(alg Algorithm, values []int) (engine.Body, error) {
	alg, err := ParseAlgorithm(string(alg))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, err)
	}
	snap := append([]int(nil), values...)

	return func(_ context.Context, e *engine.Emitter) (any, error) {
		s := &sorter{a: snap, em: e}
		var err error
		switch alg {
		case Bubble:
			err = s.bubble()
		case Insertion:
			err = s.insertion()
		case Merge:
			err = s.mergeSort(0, len(s.a)-1)
		case Quick:
			err = s.quickSort(0, len(s.a)-1)
		}
		if err != nil {
			return nil, err
		}
		if err := s.em.Emit(engine.KindDone, Payload{I: -1, J: -1, Array: s.a}, s.metrics); err != nil {
			return nil, err
		}

		return &Result{
			Algorithm:   alg,
			Sorted:      s.a,
			Comparisons: s.metrics.Comparisons,
			Swaps:       s.metrics.Swaps,
		}, nil
	}, nil
}

func (s *sorter) compare(i, j int) error {
	s.metrics.Comparisons++
	return s.em.Emit(engine.KindCompare, Payload{I: i, J: j}, s.metrics)
}

// swap exchanges a[i] and a[j]. Equal values are left alone.
func (s *sorter) swap(i, j int) error {
	if s.a[i] == s.a[j] {
		return nil
	}
	s.a[i], s.a[j] = s.a[j], s.a[i]
	s.metrics.Swaps++

	return s.em.Emit(engine.KindSwap, Payload{I: i, J: j, Array: s.a}, s.metrics)
}

// write stores v at i. Writes that leave the slot unchanged emit nothing.
func (s *sorter) write(i, v int) error {
	if s.a[i] == v {
		return nil
	}
	s.a[i] = v
	s.metrics.Swaps++

	return s.em.Emit(engine.KindWrite, Payload{I: i, J: -1, Value: v, Array: s.a}, s.metrics)
}

func (s *sorter) bubble() error {
	n := len(s.a)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if err := s.compare(j, j+1); err != nil {
				return err
			}
			if s.a[j] > s.a[j+1] {
				if err := s.swap(j, j+1); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (s *sorter) insertion() error {
	for i := 1; i < len(s.a); i++ {
		key := s.a[i]
		if err := s.em.Emit(engine.KindHighlight, Payload{I: i, J: -1, Value: key}, s.metrics); err != nil {
			return err
		}
		j := i - 1
		for j >= 0 {
			if err := s.compare(j, j+1); err != nil {
				return err
			}
			if s.a[j] <= key {
				break
			}
			if err := s.write(j+1, s.a[j]); err != nil {
				return err
			}
			j--
		}
		if err := s.write(j+1, key); err != nil {
			return err
		}
	}

	return nil
}

func (s *sorter) mergeSort(left, right int) error {
	if left >= right {
		return nil
	}
	mid := (left + right) / 2
	if err := s.mergeSort(left, mid); err != nil {
		return err
	}
	if err := s.mergeSort(mid+1, right); err != nil {
		return err
	}

	return s.merge(left, mid, right)
}

func (s *sorter) merge(left, mid, right int) error {
	l := append([]int(nil), s.a[left:mid+1]...)
	r := append([]int(nil), s.a[mid+1:right+1]...)
	i, j, k := 0, 0, left

	for i < len(l) && j < len(r) {
		if err := s.compare(left+i, mid+1+j); err != nil {
			return err
		}
		v := r[j]
		if l[i] <= r[j] {
			v = l[i]
			i++
		} else {
			j++
		}
		if err := s.write(k, v); err != nil {
			return err
		}
		k++
	}
	for ; i < len(l); i, k = i+1, k+1 {
		if err := s.write(k, l[i]); err != nil {
			return err
		}
	}
	for ; j < len(r); j, k = j+1, k+1 {
		if err := s.write(k, r[j]); err != nil {
			return err
		}
	}

	return nil
}

func (s *sorter) quickSort(low, high int) error {
	if low >= high {
		return nil
	}
	p, err := s.partition(low, high)
	if err != nil {
		return err
	}
	if err := s.quickSort(low, p-1); err != nil {
		return err
	}

	return s.quickSort(p+1, high)
}

// partition places a[high] at its final index and returns it.
func (s *sorter) partition(low, high int) (int, error) {
	pivot := s.a[high]
	if err := s.em.Emit(engine.KindHighlight, Payload{I: high, J: -1, Value: pivot}, s.metrics); err != nil {
		return 0, err
	}

	i := low - 1
	for j := low; j < high; j++ {
		if err := s.compare(j, high); err != nil {
			return 0, err
		}
		if s.a[j] < pivot {
			i++
			if i != j {
				if err := s.swap(i, j); err != nil {
					return 0, err
				}
			}
		}
	}
	if i+1 != high {
		if err := s.swap(i+1, high); err != nil {
			return 0, err
		}
	}

	return i + 1, nil
}

// RandomArray returns n values drawn uniformly from [lo, hi].
func RandomArray(rng *rand.Rand, n, lo, hi int) ([]int, error) {
	if n < 0 || lo > hi {
		return nil, fmt.Errorf("%w: %w: n=%d range=[%d,%d]", engine.ErrInvalidInput, ErrBadRange, n, lo, hi)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo+1)
	}

	return out, nil
}
