package placement

import (
	"fmt"

	"github.com/katalvlaran/qplace/matrix"
)

// Place solves the quadratic placement for p and returns the floating
// cells' integer coordinates, indexed by floating-local position (global
// index minus NumStatic).
//
// Pipeline: validate → BuildSystem → Gauss–Seidel on xb → Gauss–Seidel
// on yb → round half-away-from-zero → merge. The two axis solves share
// the read-only coefficient matrix but no mutable state; they run
// strictly sequentially.
//
// A Problem with zero floating cells is legal and yields an empty,
// non-nil slice. All failures abort the run with no partial result:
//   - ErrNilProblem / ErrBadTolerance / ErrBadCellCount /
//     ErrEdgeOutOfRange on a malformed Problem.
//   - matrix.ErrSingular (wrapped) if some floating cell has no incident
//     edges.
//   - matrix.ErrNonConvergence (wrapped) if a solve exhausts
//     opts.MaxSweeps.
//
// Complexity: O(E + sweeps·n²) time, O(n²) memory.
func Place(p *Problem, opts Options) ([]Coordinate, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	if p.NumFloating == 0 {
		return []Coordinate{}, nil
	}

	maxSweeps := opts.MaxSweeps
	if maxSweeps == 0 {
		maxSweeps = DefaultMaxSweeps
	}

	a, xb, yb, err := BuildSystem(p)
	if err != nil {
		return nil, err
	}

	xs, err := matrix.GaussSeidel(a, xb, p.Tolerance, maxSweeps)
	if err != nil {
		return nil, fmt.Errorf("placement: solve x-axis: %w", err)
	}
	ys, err := matrix.GaussSeidel(a, yb, p.Tolerance, maxSweeps)
	if err != nil {
		return nil, fmt.Errorf("placement: solve y-axis: %w", err)
	}

	cells := make([]Coordinate, p.NumFloating)
	for i := range cells {
		cells[i] = Coordinate{
			X: matrix.RoundHalfAway(xs[i]),
			Y: matrix.RoundHalfAway(ys[i]),
		}
	}

	return cells, nil
}
