// Package matrix provides the dense linear-algebra core of qplace:
// a flat, row-major coefficient matrix and a Gauss–Seidel relaxation
// kernel for symmetric, diagonally dominant systems.
//
// What:
//
//   - Dense: row-major float64 storage with bounds-checked accessors
//     (At/Set/AddAt), deep Clone, and a Stringer for debugging.
//   - GaussSeidel: in-place relaxation of A·x = b to a caller-supplied
//     tolerance, bounded by a sweep cap.
//   - IsSymmetric / IsDiagDominant: structural validators for the
//     matrices this package is designed around.
//   - RoundHalfAway: half-away-from-zero rounding used to turn a real
//     solution vector into integer coordinates.
//
// Why:
//
//   - Quadratic placement reduces to solving one weighted-Laplacian
//     system per axis; Gauss–Seidel converges for the diagonally
//     dominant matrices that construction yields.
//   - A flat contiguous buffer with explicit row*cols+col indexing keeps
//     the solver's hot inner loop cache-friendly.
//
// Complexity:
//
//   - NewDense: O(r·c) zero-init; At/Set/AddAt: O(1); Clone: O(r·c).
//   - GaussSeidel: O(n²) per sweep, O(n) extra memory.
//   - IsSymmetric / IsDiagDominant: O(n²).
//
// Errors:
//
//   - ErrInvalidDimensions: requested dimensions are non-positive.
//   - ErrOutOfRange: row or column index outside valid bounds.
//   - ErrNilMatrix: nil *Dense passed where a matrix is required.
//   - ErrNonSquare: a square matrix was required but the input wasn't.
//   - ErrDimensionMismatch: vector length does not match the system size.
//   - ErrBadTolerance: tolerance is not a positive finite value.
//   - ErrBadSweepLimit: sweep cap is not positive.
//   - ErrSingular: a zero diagonal entry makes the relaxation undefined.
//   - ErrNonConvergence: the sweep cap elapsed before the tolerance was met.
package matrix
