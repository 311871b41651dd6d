// SPDX-License-Identifier: MIT

package linear

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dsaviz/engine"
)

// tracer emits steps carrying the current items and running counters.
type tracer struct {
	e     *engine.Emitter
	s     Structure
	items []int
	m     engine.Metrics
}

func (tr *tracer) step(kind engine.Kind, p Payload) error {
	p.Structure = tr.s
	p.Items = tr.items

	return tr.e.Emit(kind, p, tr.m)
}

func body(s Structure, items []int, fn func(*tracer) (*Result, error)) engine.Body {
	snap := append([]int{}, items...)

	return func(_ context.Context, e *engine.Emitter) (any, error) {
		tr := &tracer{e: e, s: s, items: append([]int{}, snap...)}
		res, err := fn(tr)
		if err != nil {
			return nil, err
		}
		res.Structure = s
		res.Items = tr.items

		return res, nil
	}
}

func nonEmpty(s Structure, items []int) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: %w: %s", engine.ErrInvalidInput, ErrEmpty, s)
	}

	return nil
}

// Push returns a Body putting v on top of a copy of items.
func Push(items []int, v int) (engine.Body, error) {
	return body(Stack, items, func(tr *tracer) (*Result, error) {
		return tr.append(v)
	}), nil
}

// Pop returns a Body taking the top off a copy of items.
func Pop(items []int) (engine.Body, error) {
	if err := nonEmpty(Stack, items); err != nil {
		return nil, err
	}

	return body(Stack, items, func(tr *tracer) (*Result, error) {
		return tr.take(len(tr.items) - 1)
	}), nil
}

// Peek returns a Body reporting the top of items.
func Peek(items []int) (engine.Body, error) {
	if err := nonEmpty(Stack, items); err != nil {
		return nil, err
	}

	return body(Stack, items, func(tr *tracer) (*Result, error) {
		return tr.show(len(tr.items) - 1)
	}), nil
}

// Enqueue returns a Body adding v at the back of a copy of items.
func Enqueue(items []int, v int) (engine.Body, error) {
	return body(Queue, items, func(tr *tracer) (*Result, error) {
		return tr.append(v)
	}), nil
}

// Dequeue returns a Body taking the front off a copy of items.
func Dequeue(items []int) (engine.Body, error) {
	if err := nonEmpty(Queue, items); err != nil {
		return nil, err
	}

	return body(Queue, items, func(tr *tracer) (*Result, error) {
		return tr.take(0)
	}), nil
}

// Front returns a Body reporting the front of items.
func Front(items []int) (engine.Body, error) {
	if err := nonEmpty(Queue, items); err != nil {
		return nil, err
	}

	return body(Queue, items, func(tr *tracer) (*Result, error) {
		return tr.show(0)
	}), nil
}

// Insert returns a Body inserting v at pos in a copy of the list items.
// pos may equal len(items) to append.
func Insert(items []int, pos, v int) (engine.Body, error) {
	if pos < 0 || pos > len(items) {
		return nil, fmt.Errorf("%w: %w: insert at %d, want 0..%d", engine.ErrInvalidInput, ErrPosition, pos, len(items))
	}

	return body(List, items, func(tr *tracer) (*Result, error) {
		if err := tr.walk(pos); err != nil {
			return nil, err
		}
		tr.items = append(tr.items[:pos], append([]int{v}, tr.items[pos:]...)...)
		if err := tr.step(engine.KindPlace, Payload{Index: pos, Value: v}); err != nil {
			return nil, err
		}

		return tr.done(&Result{Index: pos, Value: v})
	}), nil
}

// Delete returns a Body removing the node at pos from a copy of the list items.
func Delete(items []int, pos int) (engine.Body, error) {
	if pos < 0 || pos >= len(items) {
		return nil, fmt.Errorf("%w: %w: delete at %d, want 0..%d", engine.ErrInvalidInput, ErrPosition, pos, len(items)-1)
	}

	return body(List, items, func(tr *tracer) (*Result, error) {
		if err := tr.walk(pos); err != nil {
			return nil, err
		}
		return tr.take(pos)
	}), nil
}

// Search returns a Body looking for the first node holding v.
func Search(items []int, v int) (engine.Body, error) {
	return body(List, items, func(tr *tracer) (*Result, error) {
		for i, x := range tr.items {
			tr.m.Visited++
			tr.m.Comparisons++
			if err := tr.step(engine.KindCompare, Payload{Index: i, Value: x, Target: v}); err != nil {
				return nil, err
			}
			if x == v {
				if err := tr.step(engine.KindFound, Payload{Index: i, Value: x, Target: v}); err != nil {
					return nil, err
				}
				return &Result{Index: i, Value: x, Found: true}, nil
			}
		}
		if err := tr.step(engine.KindNotFound, Payload{Index: -1, Target: v}); err != nil {
			return nil, err
		}

		return &Result{Index: -1, Value: v}, nil
	}), nil
}

// Clear returns a Body emptying a copy of items, removing the last element
// first.
func Clear(s Structure, items []int) (engine.Body, error) {
	switch s {
	case Stack, Queue, List:
	default:
		return nil, fmt.Errorf("%w: unknown structure %q", engine.ErrInvalidInput, s)
	}

	return body(s, items, func(tr *tracer) (*Result, error) {
		for len(tr.items) > 0 {
			i := len(tr.items) - 1
			v := tr.items[i]
			tr.items = tr.items[:i]
			if err := tr.step(engine.KindRemove, Payload{Index: i, Value: v}); err != nil {
				return nil, err
			}
		}

		return tr.done(&Result{Index: -1})
	}), nil
}

// walk visits the nodes before pos, starting at the head.
func (tr *tracer) walk(pos int) error {
	for i := 0; i < pos; i++ {
		tr.m.Visited++
		if err := tr.step(engine.KindVisit, Payload{Index: i, Value: tr.items[i]}); err != nil {
			return err
		}
	}

	return nil
}

func (tr *tracer) append(v int) (*Result, error) {
	idx := len(tr.items)
	if err := tr.step(engine.KindHighlight, Payload{Index: idx, Value: v}); err != nil {
		return nil, err
	}
	tr.items = append(tr.items, v)
	if err := tr.step(engine.KindPlace, Payload{Index: idx, Value: v}); err != nil {
		return nil, err
	}

	return tr.done(&Result{Index: idx, Value: v})
}

func (tr *tracer) take(idx int) (*Result, error) {
	v := tr.items[idx]
	if err := tr.step(engine.KindHighlight, Payload{Index: idx, Value: v}); err != nil {
		return nil, err
	}
	tr.items = append(tr.items[:idx], tr.items[idx+1:]...)
	if err := tr.step(engine.KindRemove, Payload{Index: idx, Value: v}); err != nil {
		return nil, err
	}

	return tr.done(&Result{Index: idx, Value: v, Found: true})
}

func (tr *tracer) show(idx int) (*Result, error) {
	v := tr.items[idx]
	if err := tr.step(engine.KindHighlight, Payload{Index: idx, Value: v}); err != nil {
		return nil, err
	}
	if err := tr.step(engine.KindFound, Payload{Index: idx, Value: v}); err != nil {
		return nil, err
	}

	return &Result{Index: idx, Value: v, Found: true}, nil
}

func (tr *tracer) done(res *Result) (*Result, error) {
	if err := tr.step(engine.KindDone, Payload{Index: res.Index, Value: res.Value}); err != nil {
		return nil, err
	}

	return res, nil
}
