// Package binsearch animates binary search over a sorted integer slice.
//
// Each probe emits a compare step carrying the current window [Low, High],
// the probed index Mid and its Value. The run ends with found{Index} or
// not-found once the window is empty. For n elements at most ⌈log2(n+1)⌉
// compare steps are emitted.
//
// The input must be sorted ascending; Search does not check it.
// GenerateSorted produces the roughly evenly spaced sample arrays used for
// demonstrations.
package binsearch
