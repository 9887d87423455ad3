// SPDX-License-Identifier: MIT

// Package matrix: Gauss–Seidel relaxation kernel.
//
// Purpose:
//   - Solve A·x = b iteratively for the symmetric, diagonally dominant
//     systems produced by the placement builder.
//   - Detect singular systems (zero diagonal) up front instead of
//     propagating NaN/Inf out of a division by zero.
//   - Bound the sweep loop: a pathological system surfaces as
//     ErrNonConvergence rather than hanging the caller.

package matrix

import "math"

// GaussSeidel solves a·x = b by in-place Gauss–Seidel relaxation.
//
// Starting from the zero vector, it sweeps the rows in increasing index
// order; each row's update
//
//	x[r] = (b[r] − Σ_{c≠r} a[r][c]·x[c]) / a[r][r]
//
// uses the most recently computed values of every other row, including
// rows already advanced within the current sweep. The sweep loop stops
// once the maximum absolute per-row change drops below tol, or fails
// with ErrNonConvergence after maxSweeps sweeps.
//
// The matrix is read-only for the duration of the call: the same matrix
// may back several GaussSeidel invocations (the placement pipeline runs
// one per axis against different right-hand sides).
//
// Inputs:
//   - a: non-nil square matrix with a nonzero diagonal.
//   - b: right-hand side, len(b) == a.Rows().
//   - tol: positive finite convergence tolerance.
//   - maxSweeps: positive sweep cap.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch (shape).
//   - ErrBadTolerance / ErrBadSweepLimit (parameters).
//   - ErrSingular: some a[i][i] == 0; the relaxation step is undefined.
//   - ErrNonConvergence: tolerance not reached within maxSweeps.
//
// Complexity: O(maxSweeps·n²) worst case, O(n) extra memory.
func GaussSeidel(a *Dense, b []float64, tol float64, maxSweeps int) ([]float64, error) {
	if err := ValidateSquareSystem(a, b); err != nil {
		return nil, err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		return nil, ErrBadTolerance
	}
	if maxSweeps <= 0 {
		return nil, ErrBadSweepLimit
	}

	n := a.r
	// A zero pivot means an equation with no self-term (an isolated
	// variable); refuse it before any arithmetic happens.
	var row int
	for row = 0; row < n; row++ {
		if a.data[row*n+row] == 0 {
			return nil, ErrSingular
		}
	}

	solution := make([]float64, n)
	var (
		sweep, col int
		acc, diff  float64
		iterDiff   float64
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		iterDiff = 0
		for row = 0; row < n; row++ {
			acc = b[row]
			// Fold in every off-diagonal term using the newest values,
			// rows already updated this sweep included.
			for col = 0; col < n; col++ {
				if col == row {
					continue
				}
				acc -= a.data[row*n+col] * solution[col]
			}
			acc /= a.data[row*n+row]

			diff = math.Abs(solution[row] - acc)
			if diff > iterDiff {
				iterDiff = diff
			}
			solution[row] = acc
		}

		if iterDiff < tol {
			return solution, nil
		}
	}

	return nil, ErrNonConvergence
}

// RoundHalfAway rounds v to the nearest integer with ties away from
// zero: RoundHalfAway(2.5) == 3, RoundHalfAway(-2.5) == -3.
func RoundHalfAway(v float64) int {
	return int(math.Round(v))
}

// RoundVector applies RoundHalfAway to every element of v.
// Complexity: O(n).
func RoundVector(v []float64) []int {
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = RoundHalfAway(x)
	}

	return out
}
