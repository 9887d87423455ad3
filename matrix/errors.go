// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// All public functions return these sentinels (possibly wrapped with
// context via %w) and tests check them with errors.Is. Panics are
// reserved for programmer errors, never for user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/AddAt) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates that a right-hand-side vector's length
	// does not match the system's dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadTolerance indicates a convergence tolerance that is not a
	// positive finite value.
	ErrBadTolerance = errors.New("matrix: tolerance must be positive and finite")

	// ErrBadSweepLimit indicates a non-positive sweep cap.
	ErrBadSweepLimit = errors.New("matrix: sweep limit must be > 0")

	// ErrSingular is returned when a diagonal entry is zero: the row's
	// relaxation step would divide by zero, so the system is reported as
	// singular instead of letting NaN/Inf propagate.
	ErrSingular = errors.New("matrix: singular system (zero diagonal entry)")

	// ErrNonConvergence is returned when the relaxation exhausts its sweep
	// cap before the maximum per-sweep change drops below the tolerance.
	ErrNonConvergence = errors.New("matrix: relaxation did not converge within sweep limit")
)
