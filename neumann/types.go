// Package neumann defines options for the boundary-reflection kernels.
package neumann

// DefaultMaxPassesFactor scales the default reflection-pass cap with the
// dimension: a zero MaxPasses resolves to DefaultMaxPassesFactor·d.
// Generic trajectories reflect at most once per face (2·d passes); the
// factor leaves headroom for near-corner grazing before declaring
// non-convergence.
const DefaultMaxPassesFactor = 4

// Options configures the reflection kernels.
//
// Fields:
//   - MaxPasses — hard cap on reflection passes per trajectory.
//     0 means the default cap of DefaultMaxPassesFactor·d for a
//     d-dimensional box; negative values are rejected with
//     ErrBadMaxPasses. When the cap is exceeded the kernel fails with
//     ErrNonConvergence instead of looping on degenerate geometry.
//
// Example:
//
//	opts := neumann.DefaultOptions()
//	opts.MaxPasses = 64 // pathological near-corner trajectories expected
//	b2, err := neumann.Reflect(a, b, bx, &opts)
type Options struct {
	MaxPasses int
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{MaxPasses: 0}
}

// maxPasses resolves the effective pass cap for dimension d.
// A nil receiver selects all defaults, mirroring a nil *Options argument.
func (o *Options) maxPasses(d int) (int, error) {
	if o == nil || o.MaxPasses == 0 {
		return DefaultMaxPassesFactor * d, nil
	}
	if o.MaxPasses < 0 {
		return 0, ErrBadMaxPasses
	}

	return o.MaxPasses, nil
}
