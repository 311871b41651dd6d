// Package sudoku animates a backtracking 9×9 Sudoku solver.
//
// The solver fills the first empty cell in row-major order, trying digits
// 1..9. Each candidate emits try; a digit already present in the cell's row,
// column or 3×3 box emits conflict listing the clashing cells; an allowed
// digit emits place and the solver recurses. When no digit works the most
// recent placement is undone with a backtrack step. The run ends with
// found{Grid} or not-found.
//
// Puzzles whose givens already clash end immediately with not-found.
// WithMaxAttempts bounds the search for animation purposes; hitting the bound
// ends the run with not-found and Result.Exhausted set.
//
// Show replays a known solution (animate-only), Validate reports conflicts
// and empty cells without searching, and Preset returns the built-in puzzles.
package sudoku
