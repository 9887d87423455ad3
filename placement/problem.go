package placement

import (
	"fmt"
	"math"
)

// NewProblem constructs a validated Problem. It deep-copies the static
// and edge slices so later caller mutations cannot corrupt a run.
//
// Validation (all structural checks happen here, never inside the solver):
//   - tol must be a positive finite value (ErrBadTolerance).
//   - numFloating must be >= 0 (ErrBadCellCount).
//   - every edge index must lie in [0, len(static)+numFloating)
//     (ErrEdgeOutOfRange, wrapped with the offending edge position).
//
// Complexity: O(S + E) time and memory.
func NewProblem(tol float64, numFloating int, static []Coordinate, edges []Edge) (*Problem, error) {
	p := &Problem{
		Tolerance:   tol,
		NumFloating: numFloating,
		Static:      make([]Coordinate, len(static)),
		Edges:       make([]Edge, len(edges)),
	}
	copy(p.Static, static)
	copy(p.Edges, edges)

	if err := validate(p); err != nil {
		return nil, err
	}

	return p, nil
}

// validate applies the full MalformedProblem check to p.
// Shared by NewProblem and Place so hand-built Problem values cross the
// same boundary before any arithmetic happens.
func validate(p *Problem) error {
	if p == nil {
		return ErrNilProblem
	}
	if math.IsNaN(p.Tolerance) || math.IsInf(p.Tolerance, 0) || p.Tolerance <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadTolerance, p.Tolerance)
	}
	if p.NumFloating < 0 {
		return fmt.Errorf("%w: got %d", ErrBadCellCount, p.NumFloating)
	}

	total := p.NumCells()
	for i, e := range p.Edges {
		if e.A < 0 || e.A >= total || e.B < 0 || e.B >= total {
			return fmt.Errorf("edge %d (%d,%d): %w (cell count %d)", i, e.A, e.B, ErrEdgeOutOfRange, total)
		}
	}

	return nil
}
