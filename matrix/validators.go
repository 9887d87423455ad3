// SPDX-License-Identifier: MIT

// Package matrix: structural validators shared by the relaxation kernel,
// its callers, and the test suite. Validators never mutate their input.

package matrix

import "math"

// ValidateSquareSystem checks that a is a non-nil square matrix and that
// b has matching length. It is the common precondition gate for system
// solvers in this package.
//
// Returns ErrNilMatrix, ErrNonSquare, or ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquareSystem(a *Dense, b []float64) error {
	if a == nil {
		return ErrNilMatrix
	}
	if a.r != a.c {
		return ErrNonSquare
	}
	if len(b) != a.r {
		return ErrDimensionMismatch
	}

	return nil
}

// IsSymmetric reports whether a equals its transpose exactly.
// The placement builder only writes integral values, so exact comparison
// is the right check here; no epsilon policy is involved.
// A nil matrix is not symmetric. Complexity: O(n²).
func IsSymmetric(a *Dense) bool {
	if a == nil || a.r != a.c {
		return false
	}
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = i + 1; j < a.c; j++ {
			if a.data[i*a.c+j] != a.data[j*a.c+i] {
				return false
			}
		}
	}

	return true
}

// IsDiagDominant reports whether every row satisfies
// |a[i][i]| ≥ Σ_{j≠i} |a[i][j]|, the property that guarantees
// Gauss–Seidel convergence for the systems this package targets.
// A nil or non-square matrix is not diagonally dominant. Complexity: O(n²).
func IsDiagDominant(a *Dense) bool {
	if a == nil || a.r != a.c {
		return false
	}
	var i, j int
	var offSum float64
	for i = 0; i < a.r; i++ {
		offSum = 0
		for j = 0; j < a.c; j++ {
			if j == i {
				continue
			}
			offSum += math.Abs(a.data[i*a.c+j])
		}
		if math.Abs(a.data[i*a.c+i]) < offSum {
			return false
		}
	}

	return true
}
