package placement

import (
	"github.com/katalvlaran/qplace/matrix"
)

// edgeWeight is the per-edge contribution to the normal equations: the
// quadratic objective Σ (Δx² + Δy²) differentiates to a factor of 2 on
// every term.
const edgeWeight = 2

// BuildSystem transforms a validated Problem into the normal-equations
// system for the least-squares placement objective: the weighted graph
// Laplacian A of the floating sub-system plus one right-hand-side
// vector per axis, with static neighbors folded into the right-hand
// sides.
//
// Per edge (a, b), classified by the global-index convention:
//   - static–static: no variable involved, skipped.
//   - static–floating: A[f][f] += 2; xb[f] += 2·Static[s].X;
//     yb[f] += 2·Static[s].Y.
//   - floating–floating: A[fa][fa] += 2, A[fb][fb] += 2,
//     A[fa][fb] −= 2, A[fb][fa] −= 2.
//
// Floating self-loops are skipped: the self-weight and coupling terms
// cancel exactly, so they must not disturb the diagonal.
//
// The result is symmetric with A[i][i] = 2·degree(i) (degree counting
// edges to static and floating neighbors alike) and −2 per
// floating–floating edge off the diagonal, accumulated over parallel
// edges. Diagonal dominance follows from the construction.
//
// Requires p.NumFloating >= 1 (matrix.ErrInvalidDimensions otherwise);
// malformed edge indices surface as validation errors before any
// matrix is touched. Complexity: O(E + n²) time, O(n²) memory.
func BuildSystem(p *Problem) (*matrix.Dense, []float64, []float64, error) {
	if err := validate(p); err != nil {
		return nil, nil, nil, err
	}

	a, err := matrix.NewSquare(p.NumFloating)
	if err != nil {
		return nil, nil, nil, err
	}
	xb := make([]float64, p.NumFloating)
	yb := make([]float64, p.NumFloating)

	numStatic := p.NumStatic()
	var s, f int
	for _, e := range p.Edges {
		switch {
		case e.A < numStatic && e.B < numStatic:
			// Both endpoints fixed: nothing to solve for.
			continue
		case e.A < numStatic:
			s, f = e.A, e.B-numStatic
		case e.B < numStatic:
			s, f = e.B, e.A-numStatic
		default:
			fa, fb := e.A-numStatic, e.B-numStatic
			if fa == fb {
				// Self-loop: +2+2−2−2 nets to zero on the diagonal.
				continue
			}
			_ = a.AddAt(fa, fa, edgeWeight)
			_ = a.AddAt(fb, fb, edgeWeight)
			_ = a.AddAt(fa, fb, -edgeWeight)
			_ = a.AddAt(fb, fa, -edgeWeight)
			continue
		}

		// static–floating: self-weight on the diagonal, anchor folded
		// into both right-hand sides.
		_ = a.AddAt(f, f, edgeWeight)
		xb[f] += edgeWeight * float64(p.Static[s].X)
		yb[f] += edgeWeight * float64(p.Static[s].Y)
	}

	return a, xb, yb, nil
}
