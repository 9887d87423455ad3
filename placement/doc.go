// Package placement computes an analytical ("quadratic") placement of
// floating cells on a 2-D integer plane, given fixed static cells and a
// list of pairwise connectivity edges.
//
// What:
//
//   - Problem describes one placement instance: convergence tolerance,
//     floating-cell count, static-cell coordinates, and the edge list.
//     Node indices are global: [0, NumStatic) are static cells,
//     [NumStatic, NumStatic+NumFloating) are floating cells.
//   - BuildSystem folds the edge list into the weighted graph Laplacian
//     of the floating sub-system (coefficient matrix A) plus one
//     right-hand-side vector per axis, with static neighbors folded
//     into the right-hand sides.
//   - Place runs the full pipeline: validate → build → Gauss–Seidel per
//     axis → round to integer coordinates.
//   - Wirelength totals the Manhattan (L1) distance over all edges, the
//     placement quality metric.
//
// Why:
//
//   - Minimizing the sum of squared edge lengths has a closed linear
//     form (the normal equations); solving one system per axis yields
//     the continuous relaxation of the placement problem.
//   - The construction makes A symmetric and diagonally dominant, the
//     precondition under which Gauss–Seidel relaxation converges.
//
// The package performs no legalization, overlap removal, or
// combinatorial placement, and never logs or prints; all failures are
// returned as errors.
//
// Complexity:
//
//   - BuildSystem: O(E + n²) time, O(n²) memory (n = floating cells).
//   - Place: BuildSystem + two Gauss–Seidel solves (O(sweeps·n²)).
//   - Wirelength: O(E).
//
// Errors:
//
//   - ErrNilProblem: a nil *Problem was passed.
//   - ErrBadTolerance: tolerance is not a positive finite value.
//   - ErrBadCellCount: negative floating-cell count.
//   - ErrEdgeOutOfRange: an edge references a node index outside
//     [0, NumStatic+NumFloating).
//   - matrix.ErrSingular (wrapped): a floating cell with no incident
//     edges leaves a zero diagonal; the system is reported singular.
//   - matrix.ErrNonConvergence (wrapped): the sweep cap elapsed first.
package placement
