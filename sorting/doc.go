// Package sorting animates four comparison sorts and races them.
//
// Algorithms
//
//   - Bubble: adjacent compare-and-swap passes with a shrinking boundary.
//   - Insertion: shift larger elements right, then write the key.
//   - Merge: top-down, stable (ties take the left run first).
//   - Quick: Lomuto partition with the last element as pivot.
//
// Steps
//
//	compare    I and J are compared
//	swap       I and J exchanged values
//	write      Value was written to slot I (shift, merge, key placement)
//	highlight  I is the insertion key or the partition pivot
//	done       Array is sorted
//
// Every swap and write step carries the full Array after the change.
// Comparisons counts element comparisons; Swaps counts swaps and writes that
// change the array, so an already sorted input finishes with zero swaps.
//
// Race
//
//	StartRace launches one run per algorithm on the same input through a
//	shared engine.Runner; Wait blocks until all four are terminal and ranks
//	them by emitted steps (ties in Algorithms order).
package sorting
