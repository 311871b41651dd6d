// SPDX-License-Identifier: MIT

package bst

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dsaviz/engine"
)

// Side tells where a node hangs relative to its parent.
type Side string

// Sides.
const (
	SideRoot  Side = "root"
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Payload describes one tree step.
type Payload struct {
	Target   int   `json:"target"`
	Node     int   `json:"node"`
	Side     Side  `json:"side,omitempty"`
	Value    int   `json:"value,omitempty"`
	Sequence []int `json:"sequence,omitempty"`
}

// Clone implements engine.Payload.
func (p Payload) Clone() engine.Payload {
	c := p
	c.Sequence = append([]int(nil), p.Sequence...)

	return c
}

// OpResult is returned by every animated operation.
//   - Tree: state after the operation.
//   - Found: the target was present before the operation.
//   - Order: traversal sequence (Traverse only).
type OpResult struct {
	Tree  *Tree `json:"tree"`
	Found bool  `json:"found"`
	Order []int `json:"order,omitempty"`
}

// op carries the state of one animated operation.
type op struct {
	tree    *Tree
	em      *engine.Emitter
	target  int
	metrics engine.Metrics
}

func newBody(t *Tree, target int, fn func(o *op) (*OpResult, error)) (engine.Body, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, ErrNilTree)
	}
	snap := t.Clone()

	return func(_ context.Context, e *engine.Emitter) (any, error) {
		return fn(&op{tree: snap, em: e, target: target})
	}, nil
}

func (o *op) emit(kind engine.Kind, p Payload) error {
	p.Target = o.target
	return o.em.Emit(kind, p, o.metrics)
}

func (o *op) compare(n *Node) error {
	o.metrics.Comparisons++
	return o.emit(engine.KindCompare, Payload{Node: n.Value})
}

// Insert returns a Body adding value to a clone of t.
func Insert(t *Tree, value int) (engine.Body, error) {
	return newBody(t, value, (*op).insert)
}

func (o *op) insert() (*OpResult, error) {
	if o.tree.Root == nil {
		o.tree.Root = &Node{Value: o.target}
		if err := o.emit(engine.KindPlace, Payload{Side: SideRoot}); err != nil {
			return nil, err
		}
		return o.done(false)
	}

	n := o.tree.Root
	for {
		if err := o.compare(n); err != nil {
			return nil, err
		}
		var link **Node
		side := SideLeft
		switch {
		case o.target < n.Value:
			link = &n.Left
		case o.target > n.Value:
			link, side = &n.Right, SideRight
		default:
			if err := o.emit(engine.KindFound, Payload{Node: n.Value}); err != nil {
				return nil, err
			}
			return &OpResult{Tree: o.tree, Found: true}, nil
		}

		if *link == nil {
			*link = &Node{Value: o.target}
			if err := o.emit(engine.KindPlace, Payload{Node: n.Value, Side: side}); err != nil {
				return nil, err
			}
			return o.done(false)
		}
		n = *link
	}
}

// Search returns a Body looking value up in a clone of t.
func Search(t *Tree, value int) (engine.Body, error) {
	return newBody(t, value, (*op).search)
}

func (o *op) search() (*OpResult, error) {
	for n := o.tree.Root; n != nil; {
		if err := o.compare(n); err != nil {
			return nil, err
		}
		switch {
		case o.target == n.Value:
			if err := o.emit(engine.KindFound, Payload{Node: n.Value}); err != nil {
				return nil, err
			}
			return &OpResult{Tree: o.tree, Found: true}, nil
		case o.target < n.Value:
			n = n.Left
		default:
			n = n.Right
		}
	}
	if err := o.emit(engine.KindNotFound, Payload{}); err != nil {
		return nil, err
	}

	return &OpResult{Tree: o.tree}, nil
}

// Delete returns a Body removing value from a clone of t.
func Delete(t *Tree, value int) (engine.Body, error) {
	return newBody(t, value, (*op).delete)
}

func (o *op) delete() (*OpResult, error) {
	if !o.tree.Contains(o.target) {
		// walk anyway so the search path is shown
		return o.search()
	}

	root, err := o.deleteFrom(o.tree.Root, o.target)
	if err != nil {
		return nil, err
	}
	o.tree.Root = root

	return o.done(true)
}

// deleteFrom removes v from the subtree at n and returns the new subtree root.
func (o *op) deleteFrom(n *Node, v int) (*Node, error) {
	if n == nil {
		return nil, nil
	}
	if err := o.compare(n); err != nil {
		return nil, err
	}

	var err error
	switch {
	case v < n.Value:
		n.Left, err = o.deleteFrom(n.Left, v)
		return n, err
	case v > n.Value:
		n.Right, err = o.deleteFrom(n.Right, v)
		return n, err
	}

	if n.Left == nil || n.Right == nil {
		if err := o.emit(engine.KindRemove, Payload{Node: n.Value}); err != nil {
			return nil, err
		}
		if n.Left == nil {
			return n.Right, nil
		}
		return n.Left, nil
	}

	succ, err := o.minimum(n.Right)
	if err != nil {
		return nil, err
	}
	if err := o.emit(engine.KindReplace, Payload{Node: n.Value, Value: succ}); err != nil {
		return nil, err
	}
	n.Value = succ
	n.Right, err = o.deleteFrom(n.Right, succ)

	return n, err
}

// minimum walks the left spine of n, emitting a visit per node.
func (o *op) minimum(n *Node) (int, error) {
	for {
		o.metrics.Visited++
		if err := o.emit(engine.KindVisit, Payload{Node: n.Value}); err != nil {
			return 0, err
		}
		if n.Left == nil {
			return n.Value, nil
		}
		n = n.Left
	}
}

// Traverse returns a Body visiting every node of a clone of t in order.
func Traverse(t *Tree, order Order) (engine.Body, error) {
	order, err := ParseOrder(string(order))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrInvalidInput, err)
	}

	return newBody(t, 0, func(o *op) (*OpResult, error) {
		seq := make([]int, 0, o.tree.Len())
		for _, v := range collect(o.tree.Root, order, nil) {
			seq = append(seq, v)
			o.metrics.Visited++
			if err := o.em.Emit(engine.KindVisit, Payload{Node: v, Sequence: seq}, o.metrics); err != nil {
				return nil, err
			}
		}
		if err := o.em.Emit(engine.KindDone, Payload{Sequence: seq}, o.metrics); err != nil {
			return nil, err
		}

		return &OpResult{Tree: o.tree, Order: seq}, nil
	})
}

func (o *op) done(found bool) (*OpResult, error) {
	if err := o.emit(engine.KindDone, Payload{Sequence: o.tree.Values()}); err != nil {
		return nil, err
	}

	return &OpResult{Tree: o.tree, Found: found}, nil
}
