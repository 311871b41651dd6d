// Package linear animates the three linear structures: a stack, a queue and
// a singly linked list, each held as a slice of integers.
//
// Operations
//
//	Stack  Push, Pop, Peek, Clear   top is the last element
//	Queue  Enqueue, Dequeue, Front, Clear   front is the first element
//	List   Insert, Delete, Search, Clear   positions are 0-based
//
// Every operation works on a copy of the items it is given and returns the
// resulting items in its Result. Each step carries the items as they stand
// after the step, so a renderer never has to replay earlier steps.
//
// List operations walk from the head: Insert and Delete emit a visit step
// for every node before the target position, and Search emits a compare
// step per node until it finds the value.
//
// Invalid input is rejected before any step is emitted: a pop, peek,
// dequeue or front on an empty structure, an insert position outside
// [0, len] and a delete position outside [0, len).
package linear
