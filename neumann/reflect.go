package neumann

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hyperbox/box"
)

// noCrossing is the crossing-fraction sentinel: strictly beyond the
// segment (fractions live in [0,1]), so "no face struck this pass"
// never wins the minimum and compares as ≥ 1 at the termination check.
const noCrossing = 2.0

// Reflect — elastic boundary reflection of one trajectory step
//
// Description:
//
//	Reflect clips the straight segment a→b against the axis-aligned box
//	bx (an iterative Liang–Barsky-style clip). If b escapes the box, the
//	segment is cut at the first face struck, the remainder of the motion
//	is folded back across that face, and the procedure repeats from the
//	impact point, since the folded remainder may strike another face
//	(e.g. near a corner). The final endpoint lies inside the closed box
//	and the piecewise-reflected path has the same length as |a−b|.
//
// Algorithm Outline:
//  1. r ← noCrossing, axis ← none.
//  2. For each axis i (ascending): if b[i] escapes a face, the candidate
//     fraction is (a[i]−min[i])/(a[i]−b[i]) below or
//     (max[i]−a[i])/(b[i]−a[i]) above. Non-finite candidates
//     (degenerate a[i]==b[i]) are skipped. Keep the minimum; an exact
//     tie keeps the later axis.
//  3. r ≥ 1 ⇒ done: b already satisfies the box (immediate idempotent
//     case when the input never left it).
//  4. Otherwise impact c = a + r·(b−a); fold the struck coordinate,
//     b[axis] = 2·c[axis] − b[axis]; advance a ← c; go to 2.
//
// The fold is the specular reflection b − 2·n·((b−c)·n) specialized to
// the axis-aligned unit normal n, where it is independent of the face
// sign.
//
// Complexity:
//
//	Time   = O(k·d), k = reflection passes (≤ effective MaxPasses)
//	Memory = O(d)
//
// Inputs are never mutated; the result is a freshly allocated point.
// A nil opts selects DefaultOptions.
//
// Errors:
//   - ErrNilBox             — bx is nil.
//   - ErrDimensionMismatch  — len(a), len(b), bx.Dim() disagree.
//   - ErrOutsideDomain      — a lies outside the closed box (caller bug).
//   - ErrBadMaxPasses       — opts.MaxPasses is negative.
//   - ErrNonConvergence     — pass cap exceeded (degenerate geometry).
func Reflect(a, b []float64, bx *box.Box, opts *Options) ([]float64, error) {
	if bx == nil {
		return nil, ErrNilBox
	}
	d := bx.Dim()
	if len(a) != d || len(b) != d {
		return nil, fmt.Errorf("len(a)=%d, len(b)=%d, box dim=%d: %w", len(a), len(b), d, ErrDimensionMismatch)
	}
	if i, ok := insideAxis(a, bx); !ok {
		return nil, fmt.Errorf("a[%d]=%v outside [%v, %v]: %w", i, a[i], bx.Min(i), bx.Max(i), ErrOutsideDomain)
	}
	limit, err := opts.maxPasses(d)
	if err != nil {
		return nil, err
	}

	// Scratch copies: the loop rewrites both, the caller's slices stay intact.
	cur := append([]float64(nil), a...)
	end := append([]float64(nil), b...)

	for pass := 0; ; pass++ {
		r, axis := firstCrossing(cur, end, bx)
		if r >= 1 {
			return end, nil
		}
		if pass == limit {
			return nil, fmt.Errorf("%d passes: %w", limit, ErrNonConvergence)
		}
		// Impact point c = cur + r·(end−cur), then fold the struck axis.
		for i := range cur {
			cur[i] += r * (end[i] - cur[i])
		}
		end[axis] = 2*cur[axis] - end[axis]
	}
}

// firstCrossing returns the smallest fraction r ∈ [0,1) at which the
// segment a→b leaves the box, and the axis whose face is struck there.
// Axes are scanned in ascending order and an exact tie keeps the later
// axis; this ordering is part of the kernel's contract (bit-reproducible
// selection). Non-finite candidates are never selected. When no face is
// struck the sentinel (noCrossing, -1) is returned.
func firstCrossing(a, b []float64, bx *box.Box) (r float64, axis int) {
	r, axis = noCrossing, -1
	for i := range a {
		var ri float64
		switch {
		case b[i] < bx.Min(i):
			ri = (a[i] - bx.Min(i)) / (a[i] - b[i])
		case b[i] > bx.Max(i):
			ri = (bx.Max(i) - a[i]) / (b[i] - a[i])
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

// insideAxis reports whether p lies inside the closed box; on failure it
// also returns the first offending axis for error context.
func insideAxis(p []float64, bx *box.Box) (int, bool) {
	for i, v := range p {
		if v < bx.Min(i) || v > bx.Max(i) {
			return i, false
		}
	}

	return -1, true
}
