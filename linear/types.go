// SPDX-License-Identifier: MIT

package linear

import (
	"errors"

	"github.com/katalvlaran/dsaviz/engine"
)

// Sentinel errors.
var (
	ErrEmpty    = errors.New("linear: structure is empty")
	ErrPosition = errors.New("linear: position out of range")
)

// Structure names the container an operation acts on.
type Structure string

// Structures.
const (
	Stack Structure = "stack"
	Queue Structure = "queue"
	List  Structure = "list"
)

// Payload describes one step.
//
//	highlight  Index is the top, the front or the insertion point
//	visit      the walk from the head reached Index
//	compare    Value at Index is compared with Target
//	place      Value was stored at Index
//	remove     Value was taken from Index
//	found      Value sits at Index
//	not-found  Target is absent
//	done       Items is final
type Payload struct {
	Structure Structure `json:"structure"`
	Index     int       `json:"index"`
	Value     int       `json:"value"`
	Target    int       `json:"target,omitempty"`
	Items     []int     `json:"items"`
}

// Clone implements engine.Payload.
func (p Payload) Clone() engine.Payload {
	c := p
	c.Items = append([]int{}, p.Items...)

	return c
}

// Result is the outcome of one operation.
//   - Items: the structure after the operation.
//   - Index: position acted on, -1 when nothing matched.
//   - Value: the pushed, popped, peeked, inserted, deleted or found value.
type Result struct {
	Structure Structure `json:"structure"`
	Items     []int     `json:"items"`
	Index     int       `json:"index"`
	Value     int       `json:"value"`
	Found     bool      `json:"found"`
}
