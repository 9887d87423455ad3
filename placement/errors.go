package placement

import "errors"

var (
	// ErrNilProblem indicates a nil *Problem was passed to the pipeline.
	ErrNilProblem = errors.New("placement: problem is nil")
	// ErrBadTolerance indicates a convergence tolerance that is not a positive finite value.
	ErrBadTolerance = errors.New("placement: tolerance must be positive and finite")
	// ErrBadCellCount indicates a negative floating-cell count.
	ErrBadCellCount = errors.New("placement: floating-cell count must be >= 0")
	// ErrEdgeOutOfRange indicates an edge referencing a node index outside
	// [0, NumStatic+NumFloating).
	ErrEdgeOutOfRange = errors.New("placement: edge index out of range")
)
