package box

import "errors"

var (
	// ErrEmptyBox indicates the bounds describe no axes at all.
	ErrEmptyBox = errors.New("box: bounds must have at least one axis")
	// ErrDimensionMismatch indicates min/max (or a queried point) differ in length.
	ErrDimensionMismatch = errors.New("box: dimension mismatch")
	// ErrNonFiniteBound indicates a bound is NaN or ±Inf.
	ErrNonFiniteBound = errors.New("box: bounds must be finite")
	// ErrInvertedBounds indicates min[i] > max[i] for some axis.
	ErrInvertedBounds = errors.New("box: lower bound exceeds upper bound")
)
