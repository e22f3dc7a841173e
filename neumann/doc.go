// Package neumann folds straight-line steps of simulated stochastic
// processes back into an axis-aligned box by elastic reflection,
// implementing Neumann (reflecting) boundary conditions for Monte-Carlo
// PDE schemes.
//
// 🚀 What does it do?
//
//	Given a pre-step point a (inside the box) and a tentative post-step
//	point b (possibly outside), the kernel clips the segment a→b against
//	the box faces, reflects the overshoot across the first face struck,
//	and iterates until the endpoint rests inside. The returned point has
//	the same travelled path length as the original straight step
//	(energy-preserving specular reflection).
//
// ✨ Key features:
//   - Reflect: one trajectory, iterated detect→impact→fold passes
//   - ReflectBatch: m trajectories at once as a [d][m] lane batch; the
//     loop runs while any lane still violates, settled lanes are no-ops
//   - bit-identical results between the scalar and batched forms
//   - deterministic tie-break: axes are scanned in increasing order and
//     an exact tie keeps the later axis (preserved reference behavior)
//   - bounded: every trajectory is capped at Options.MaxPasses passes
//     (default 4·d) and fails with ErrNonConvergence past the cap
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/hyperbox/box"
//	  "github.com/katalvlaran/hyperbox/neumann"
//	)
//
//	bx, _ := box.New([]float64{0}, []float64{1})
//	b2, err := neumann.Reflect([]float64{0.5}, []float64{1.5}, bx, nil)
//	// b2 = [0.5]: the overshoot past 1 is folded back symmetrically
//
// Performance:
//
//   - Reflect:      O(k·d) time, O(d) memory (k = reflection passes, ≤ MaxPasses)
//   - ReflectBatch: O(k·d·m) time, O(d·m) memory (k = max passes over lanes)
//
// Both kernels are pure functions: inputs are never mutated, the Box is
// read-only, and calls are safe from any number of goroutines.
//
// Errors:
//
//   - ErrNilBox: the box reference is nil.
//   - ErrDimensionMismatch: point/batch/box dimensions disagree.
//   - ErrOutsideDomain: a pre-step point (or batch column) is outside the box.
//   - ErrRaggedBatch: batch rows differ in length.
//   - ErrBadMaxPasses: negative MaxPasses option.
//   - ErrNonConvergence: pass cap exceeded (degenerate geometry).
package neumann
