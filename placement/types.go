// Package placement defines core types, options, and sentinel errors
// for the placement subpackage of github.com/katalvlaran/qplace.
package placement

// Coordinate is a 2-D integer point. Static-cell coordinates are fixed
// input; floating-cell coordinates are computed once per run.
type Coordinate struct {
	X, Y int
}

// Edge is an unordered pairwise connectivity constraint between two
// cells, identified by global node indices: indices in [0, NumStatic)
// refer to static cells, indices in [NumStatic, NumStatic+NumFloating)
// refer to floating cells. Self-loops are tolerated and contribute
// nothing to the objective.
type Edge struct {
	A, B int
}

// Problem is one placement instance. It is pure data: build it once via
// NewProblem and treat it as read-only for the duration of a run.
type Problem struct {
	// Tolerance is the Gauss–Seidel convergence tolerance (> 0): the
	// relaxation stops once the maximum per-sweep change drops below it.
	Tolerance float64

	// NumFloating is the number of cells whose coordinates are solved for.
	NumFloating int

	// Static holds the fixed cell coordinates; global index i < len(Static)
	// refers to Static[i].
	Static []Coordinate

	// Edges lists all pairwise connections, static or floating endpoints.
	Edges []Edge
}

// NumStatic returns the number of static cells.
func (p *Problem) NumStatic() int { return len(p.Static) }

// NumCells returns the total cell count; every edge index must be below it.
func (p *Problem) NumCells() int { return len(p.Static) + p.NumFloating }
