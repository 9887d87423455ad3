package placement

// DefaultMaxSweeps bounds the Gauss–Seidel sweep loop. The Laplacian
// construction converges within a few dozen sweeps on well-posed
// inputs; the cap only exists so a pathological system fails with
// matrix.ErrNonConvergence instead of hanging.
const DefaultMaxSweeps = 10000

// Options contains tunable parameters for the placement pipeline.
type Options struct {
	// MaxSweeps caps the relaxation sweep count per axis.
	// Zero selects DefaultMaxSweeps; negative values are rejected by
	// the solver.
	MaxSweeps int
}

// DefaultOptions returns Options with default settings:
// MaxSweeps=DefaultMaxSweeps.
func DefaultOptions() Options {
	return Options{MaxSweeps: DefaultMaxSweeps}
}
