// SPDX-License-Identifier: MIT

package bst

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilTree indicates an operation on a nil *Tree.
var ErrNilTree = errors.New("bst: tree is nil")

// ErrUnknownOrder indicates a traversal name ParseOrder does not know.
var ErrUnknownOrder = errors.New("bst: unknown traversal order")

// Node is one tree node.
type Node struct {
	Value int   `json:"value"`
	Left  *Node `json:"left,omitempty"`
	Right *Node `json:"right,omitempty"`
}

// Tree is an unbalanced binary search tree without duplicates.
type Tree struct {
	Root *Node `json:"root"`
}

// New builds a tree by inserting values in order.
func New(values ...int) *Tree {
	t := &Tree{}
	for _, v := range values {
		t.Add(v)
	}

	return t
}

// Add inserts v without emitting steps. It reports false for a duplicate.
func (t *Tree) Add(v int) bool {
	link := &t.Root
	for *link != nil {
		switch n := *link; {
		case v < n.Value:
			link = &n.Left
		case v > n.Value:
			link = &n.Right
		default:
			return false
		}
	}
	*link = &Node{Value: v}

	return true
}

// Contains reports whether v is stored in t.
func (t *Tree) Contains(v int) bool {
	n := t.Root
	for n != nil && n.Value != v {
		if v < n.Value {
			n = n.Left
		} else {
			n = n.Right
		}
	}

	return n != nil
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return count(t.Root) }

func count(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + count(n.Left) + count(n.Right)
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int { return height(t.Root) }

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.Left), height(n.Right))
}

// Values returns the in-order sequence.
func (t *Tree) Values() []int {
	return collect(t.Root, InOrder, nil)
}

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	return &Tree{Root: cloneNode(t.Root)}
}

func cloneNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{Value: n.Value, Left: cloneNode(n.Left), Right: cloneNode(n.Right)}
}

// Order names a depth-first traversal.
type Order string

// Traversal orders.
const (
	InOrder   Order = "inorder"
	PreOrder  Order = "preorder"
	PostOrder Order = "postorder"
)

// ParseOrder accepts "inorder", "preorder" or "postorder" (case-insensitive,
// dashes ignored).
func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")); o {
	case InOrder, PreOrder, PostOrder:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOrder, s)
	}
}

func collect(n *Node, o Order, out []int) []int {
	if n == nil {
		return out
	}
	if o == PreOrder {
		out = append(out, n.Value)
	}
	out = collect(n.Left, o, out)
	if o == InOrder {
		out = append(out, n.Value)
	}
	out = collect(n.Right, o, out)
	if o == PostOrder {
		out = append(out, n.Value)
	}

	return out
}

// Layout constants: the root sits at (layoutRootX, layoutRootY); each level
// drops by layoutLevelDY and halves the horizontal offset.
const (
	layoutRootX   = 400.0
	layoutRootY   = 50.0
	layoutOffset  = 200.0
	layoutLevelDY = 80.0
)

// Position is a node's drawing coordinate.
type Position struct {
	Value int     `json:"value"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Layout returns drawing positions in pre-order.
func (t *Tree) Layout() []Position {
	var out []Position
	var place func(n *Node, x, y, offset float64)
	place = func(n *Node, x, y, offset float64) {
		if n == nil {
			return
		}
		out = append(out, Position{Value: n.Value, X: x, Y: y})
		place(n.Left, x-offset, y+layoutLevelDY, offset/2)
		place(n.Right, x+offset, y+layoutLevelDY, offset/2)
	}
	place(t.Root, layoutRootX, layoutRootY, layoutOffset)

	return out
}
