package neumann

import "errors"

var (
	// ErrNilBox indicates the reflecting box reference is nil.
	ErrNilBox = errors.New("neumann: box must not be nil")
	// ErrDimensionMismatch indicates point/batch dimensions disagree with each other or with the box.
	ErrDimensionMismatch = errors.New("neumann: dimension mismatch")
	// ErrOutsideDomain indicates a pre-step point lies outside the reflecting box.
	// The process must never leave the domain between steps, so this is a caller bug.
	ErrOutsideDomain = errors.New("neumann: pre-step point outside the reflecting box")
	// ErrRaggedBatch indicates batch rows of differing lengths.
	ErrRaggedBatch = errors.New("neumann: all batch rows must have the same number of columns")
	// ErrBadMaxPasses indicates a negative MaxPasses option.
	ErrBadMaxPasses = errors.New("neumann: MaxPasses must be non-negative")
	// ErrNonConvergence indicates the reflection-pass cap was exceeded before the
	// trajectory settled inside the box (degenerate geometry, e.g. a zero-width axis).
	ErrNonConvergence = errors.New("neumann: reflection did not converge within MaxPasses")
)
