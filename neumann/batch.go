package neumann

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hyperbox/box"
)

// ReflectBatch — elastic boundary reflection of m trajectories at once
//
// Description:
//
//	ReflectBatch applies the Reflect semantics independently to every
//	column of a [d][m] batch: row i holds axis i of all m trajectories,
//	column j is one trajectory's point. A[·][j] is trajectory j's
//	pre-step point (inside the box), B[·][j] its tentative post-step
//	point. The kernel is an explicit lane model: the outer loop runs
//	while any lane still violates the box, each pass performs at most
//	one reflection per lane, and settled lanes pass through untouched
//	(their crossing scan yields the sentinel, so the pass is an identity
//	for them). Column j of the result is exactly what
//	Reflect(A-column-j, B-column-j, bx, opts) returns.
//
// The outer-iteration count equals the maximum per-lane reflection
// count, not the sum, which is what makes the lane formulation map onto
// SIMD or GPU execution without semantic drift.
//
// Complexity:
//
//	Time   = O(k·d·m), k = max reflection passes over lanes (≤ cap)
//	Memory = O(d·m)
//
// Inputs are never mutated; the result is a freshly allocated batch.
// An m of zero is legal and yields an empty batch. A nil opts selects
// DefaultOptions.
//
// Errors:
//   - ErrNilBox             — bx is nil.
//   - ErrDimensionMismatch  — row counts of A, B and bx.Dim() disagree.
//   - ErrRaggedBatch        — rows of A or B differ in length.
//   - ErrOutsideDomain      — some column of A is outside the closed box.
//   - ErrBadMaxPasses       — opts.MaxPasses is negative.
//   - ErrNonConvergence     — pass cap exceeded by some lane.
func ReflectBatch(A, B [][]float64, bx *box.Box, opts *Options) ([][]float64, error) {
	if bx == nil {
		return nil, ErrNilBox
	}
	d := bx.Dim()
	if len(A) != d || len(B) != d {
		return nil, fmt.Errorf("rows(A)=%d, rows(B)=%d, box dim=%d: %w", len(A), len(B), d, ErrDimensionMismatch)
	}
	m := len(A[0])
	for i := 0; i < d; i++ {
		if len(A[i]) != m {
			return nil, fmt.Errorf("row %d of A has %d columns, want %d: %w", i, len(A[i]), m, ErrRaggedBatch)
		}
		if len(B[i]) != m {
			return nil, fmt.Errorf("row %d of B has %d columns, want %d: %w", i, len(B[i]), m, ErrRaggedBatch)
		}
	}
	for j := 0; j < m; j++ {
		for i := 0; i < d; i++ {
			if A[i][j] < bx.Min(i) || A[i][j] > bx.Max(i) {
				return nil, fmt.Errorf("column %d: A[%d][%d]=%v outside [%v, %v]: %w",
					j, i, j, A[i][j], bx.Min(i), bx.Max(i), ErrOutsideDomain)
			}
		}
	}
	limit, err := opts.maxPasses(d)
	if err != nil {
		return nil, err
	}

	// Scratch batches; the caller's rows stay intact.
	cur := cloneBatch(A)
	end := cloneBatch(B)

	for pass := 0; ; pass++ {
		active := false
		for j := 0; j < m; j++ {
			r, axis := columnCrossing(cur, end, bx, j)
			if r >= 1 {
				continue // lane settled: identity no-op from here on
			}
			if pass == limit {
				return nil, fmt.Errorf("column %d after %d passes: %w", j, limit, ErrNonConvergence)
			}
			for i := 0; i < d; i++ {
				cur[i][j] += r * (end[i][j] - cur[i][j])
			}
			end[axis][j] = 2*cur[axis][j] - end[axis][j]
			active = true
		}
		if !active {
			return end, nil
		}
	}
}

// columnCrossing is firstCrossing over column j of a [d][m] batch:
// same candidate fractions, same skip of non-finite candidates, same
// ascending scan with last-axis-wins tie-break, so lane j's selection is
// bitwise the scalar kernel's.
func columnCrossing(a, b [][]float64, bx *box.Box, j int) (r float64, axis int) {
	r, axis = noCrossing, -1
	for i := range a {
		var ri float64
		switch {
		case b[i][j] < bx.Min(i):
			ri = (a[i][j] - bx.Min(i)) / (a[i][j] - b[i][j])
		case b[i][j] > bx.Max(i):
			ri = (bx.Max(i) - a[i][j]) / (b[i][j] - a[i][j])
		default:
			continue
		}
		if math.IsNaN(ri) || math.IsInf(ri, 0) {
			continue
		}
		if ri <= r {
			r, axis = ri, i
		}
	}

	return r, axis
}

// cloneBatch deep-copies a [d][m] batch.
func cloneBatch(src [][]float64) [][]float64 {
	dst := make([][]float64, len(src))
	for i, row := range src {
		dst[i] = append([]float64(nil), row...)
	}

	return dst
}
