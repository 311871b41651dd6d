// Package nqueens animates N-Queens backtracking.
//
// Queens are placed row by row, trying columns left to right. Every candidate
// emits try; a safe square (no queen in its column or on either diagonal
// above it) emits place and the search recurses into the next row; an
// attacked square emits conflict naming the attacking rows. When a subtree is
// exhausted the queen is lifted with a backtrack step.
//
//   - Solve stops at the first full board: found{Queens} or not-found.
//   - SolveAll keeps searching, emitting solution for each full board, and
//     ends with found (at least one) or not-found.
//   - Show replays a known solution as place steps without searching.
//
// A board is a []int: Queens[row] is the queen's column.
// Board sizes range over [MinSize, MaxSize].
package nqueens
