// Package qplace computes analytical ("quadratic") placements: given
// fixed static cells, a set of movable floating cells, and pairwise
// connectivity edges, it finds the floating-cell coordinates minimizing
// the sum of squared edge lengths and reports the total Manhattan
// wirelength of the result.
//
// 🚀 What is qplace?
//
//	A small, deterministic placement core plus a thin CLI:
//		• placement/ — problem model, weighted-Laplacian system builder,
//		  solve pipeline, and the Manhattan wirelength evaluator
//		• matrix/    — flat row-major dense matrix and the Gauss–Seidel
//		  relaxation kernel (tolerance-driven, sweep-capped)
//		• placefile/ — parser for the flat text problem format
//		• cmd/qplace — command-line front end (cobra)
//
// How it fits together:
//
//	Problem → BuildSystem → (A, xb, yb) → GaussSeidel ×2 → round →
//	floating Coordinates → Wirelength → total
//
// The construction yields a symmetric, diagonally dominant system per
// axis, the regime in which Gauss–Seidel relaxation is guaranteed to
// converge. Isolated floating cells make the system singular and are
// reported as errors rather than solved to an arbitrary position.
//
// The core is single-threaded and pure: no global state, no logging,
// no I/O; each run's structures are local to that run.
package qplace
