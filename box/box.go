package box

import (
	"fmt"
	"math"
)

// Box is an axis-aligned hyperrectangle [min, max] in d dimensions.
//
// The bounds are copied by New and never mutated afterwards, so a single
// *Box may be shared by reference across any number of goroutines.
// A zero-width axis (min[i] == max[i]) is legal; algorithms clipping
// against such a box must bound their own iteration counts.
type Box struct {
	min []float64
	max []float64
}

// New validates and constructs a Box from per-axis bounds.
// Both slices are copied; the caller keeps ownership of its arguments.
//
// Returns:
//   - ErrEmptyBox if len(min) == 0,
//   - ErrDimensionMismatch if len(min) != len(max),
//   - ErrNonFiniteBound if any bound is NaN or ±Inf,
//   - ErrInvertedBounds if min[i] > max[i] for some axis.
func New(min, max []float64) (*Box, error) {
	if len(min) == 0 {
		return nil, ErrEmptyBox
	}
	if len(min) != len(max) {
		return nil, fmt.Errorf("len(min)=%d, len(max)=%d: %w", len(min), len(max), ErrDimensionMismatch)
	}
	for i := range min {
		if !isFinite(min[i]) || !isFinite(max[i]) {
			return nil, fmt.Errorf("axis %d: [%v, %v]: %w", i, min[i], max[i], ErrNonFiniteBound)
		}
		if min[i] > max[i] {
			return nil, fmt.Errorf("axis %d: [%v, %v]: %w", i, min[i], max[i], ErrInvertedBounds)
		}
	}
	b := &Box{
		min: make([]float64, len(min)),
		max: make([]float64, len(max)),
	}
	copy(b.min, min)
	copy(b.max, max)

	return b, nil
}

// Dim returns the number of axes.
func (b *Box) Dim() int { return len(b.min) }

// Min returns the lower bound of axis i.
func (b *Box) Min(i int) float64 { return b.min[i] }

// Max returns the upper bound of axis i.
func (b *Box) Max(i int) float64 { return b.max[i] }

// Bounds returns fresh copies of the lower and upper bound vectors.
func (b *Box) Bounds() (min, max []float64) {
	min = make([]float64, len(b.min))
	max = make([]float64, len(b.max))
	copy(min, b.min)
	copy(max, b.max)

	return min, max
}

// Contains reports whether p lies inside the closed box, componentwise
// min[i] <= p[i] <= max[i]. Boundary points are inside.
// Returns ErrDimensionMismatch when len(p) != Dim().
func (b *Box) Contains(p []float64) (bool, error) {
	if len(p) != len(b.min) {
		return false, fmt.Errorf("len(p)=%d, dim=%d: %w", len(p), len(b.min), ErrDimensionMismatch)
	}
	for i, v := range p {
		if v < b.min[i] || v > b.max[i] {
			return false, nil
		}
	}

	return true, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
