// Package box provides the shared geometry foundation for hyperbox:
// validated, immutable axis-aligned hyperrectangles and containment tests.
//
// What:
//
//   - Box wraps per-axis lower/upper bounds (min, max) copied at
//     construction; no mutation path exists after New returns.
//   - Contains reports closed-interval componentwise membership.
//
// Why:
//
//   - Reflecting domains: every reflection kernel in neumann clips
//     segments against a Box.
//   - Safe sharing: a Box is read-only by construction, so a single
//     instance may back arbitrarily many concurrent simulations.
//
// Complexity:
//
//   - New:      O(d) time, O(d) memory (d = number of axes).
//   - Contains: O(d) time, O(1) memory.
//
// Errors:
//
//   - ErrEmptyBox: bounds have no axes.
//   - ErrDimensionMismatch: min and max (or a queried point) differ in length.
//   - ErrNonFiniteBound: a bound is NaN or ±Inf.
//   - ErrInvertedBounds: min[i] > max[i] for some axis i.
package box
