package neumann_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperbox/box"
	"github.com/katalvlaran/hyperbox/neumann"
)

// containTol absorbs the floating-point slack allowed on the guarantee
// that reflected endpoints land inside the closed box.
const containTol = 1e-12

// foldCoord is the independent oracle for one axis: iterated specular
// reflection against [lo, hi] equals folding x by the triangle wave of
// period 2·(hi−lo). Face reflections in an axis-aligned box act on each
// axis separately, so the full oracle is foldCoord applied per axis.
func foldCoord(x, lo, hi float64) float64 {
	if x >= lo && x <= hi {
		return x
	}
	w := hi - lo
	t := math.Mod(x-lo, 2*w)
	if t < 0 {
		t += 2 * w
	}
	if t > w {
		t = 2*w - t
	}

	return lo + t
}

// TestReflect_NoCrossingIdentity verifies the immediate idempotent case:
// a step that never leaves the box comes back exactly unchanged.
func TestReflect_NoCrossingIdentity(t *testing.T) {
	bx, err := box.New([]float64{-1, -1, -1}, []float64{1, 1, 1})
	require.NoError(t, err)

	a := []float64{0, 0, 0}
	b := []float64{0.5, 0.5, 0.5}
	got, err := neumann.Reflect(a, b, bx, nil)
	require.NoError(t, err)
	assert.Equal(t, b, got, "in-box step must be returned bit-identical")
}

// TestReflect_SingleAxisFold verifies the 1-D scenario: an overshoot past
// the upper face folds back symmetrically about it.
func TestReflect_SingleAxisFold(t *testing.T) {
	bx, err := box.New([]float64{0}, []float64{1})
	require.NoError(t, err)

	got, err := neumann.Reflect([]float64{0.5}, []float64{1.5}, bx, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 0.5, got[0], containTol, "1.5 must fold about 1 back to 0.5")
}

// TestReflect_CornerDoubleReflection verifies that a near-corner step
// strikes two faces in sequence and still lands inside with the
// per-axis fold values.
func TestReflect_CornerDoubleReflection(t *testing.T) {
	bx, err := box.New([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	a := []float64{0.9, 0.9}
	b := []float64{1.3, 1.3}
	got, err := neumann.Reflect(a, b, bx, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range got {
		assert.GreaterOrEqual(t, got[i], 0.0-containTol)
		assert.LessOrEqual(t, got[i], 1.0+containTol)
		assert.InDelta(t, 0.7, got[i], 1e-9, "1.3 folds about 1 back to 0.7 on each axis")
	}
}

// TestReflect_StartOnBoundary verifies that a pre-step point sitting
// exactly on a face satisfies the closed-box precondition and reflects
// normally.
func TestReflect_StartOnBoundary(t *testing.T) {
	bx, err := box.New([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	a := []float64{1, 0.5} // on the upper face of axis 0
	b := []float64{1.4, 0.5}
	got, err := neumann.Reflect(a, b, bx, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, got[0], 1e-9, "overshoot 0.4 past the face folds to 0.6")
	assert.InDelta(t, 0.5, got[1], containTol)
}

// TestReflect_InputsNotMutated verifies value semantics: the caller's
// a and b survive the call untouched even when reflections occur.
func TestReflect_InputsNotMutated(t *testing.T) {
	bx, err := box.New([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	a := []float64{0.9, 0.9}
	b := []float64{1.3, 1.3}
	_, err = neumann.Reflect(a, b, bx, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.9, 0.9}, a, "a must not be mutated")
	assert.Equal(t, []float64{1.3, 1.3}, b, "b must not be mutated")
}

// TestReflect_FoldOracle_Random cross-checks the kernel against the
// independent per-axis folding oracle on seeded random trajectories
// with excursions of up to 2.5 box widths (several folds per axis),
// and asserts containment.
// Matching the oracle also certifies length preservation: the fold is
// the arc-length-preserving unrolling of the reflected path.
func TestReflect_FoldOracle_Random(t *testing.T) {
	bx, err := box.New([]float64{-1, 0, 2}, []float64{1, 0.5, 5})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		a := make([]float64, 3)
		b := make([]float64, 3)
		for i := 0; i < 3; i++ {
			w := bx.Max(i) - bx.Min(i)
			a[i] = bx.Min(i) + rng.Float64()*w
			b[i] = a[i] + (rng.Float64()*2-1)*2.5*w
		}

		got, rErr := neumann.Reflect(a, b, bx, nil)
		require.NoError(t, rErr, "trial %d", trial)
		for i := 0; i < 3; i++ {
			assert.GreaterOrEqual(t, got[i], bx.Min(i)-containTol, "trial %d axis %d containment", trial, i)
			assert.LessOrEqual(t, got[i], bx.Max(i)+containTol, "trial %d axis %d containment", trial, i)
			assert.InDelta(t, foldCoord(b[i], bx.Min(i), bx.Max(i)), got[i], 1e-9,
				"trial %d axis %d oracle", trial, i)
		}
	}
}

// TestReflect_OutsideDomain verifies the precondition on the pre-step
// point: outside the closed box fails with ErrOutsideDomain.
func TestReflect_OutsideDomain(t *testing.T) {
	bx, err := box.New([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	_, err = neumann.Reflect([]float64{1.2, 0.5}, []float64{0.5, 0.5}, bx, nil)
	assert.ErrorIs(t, err, neumann.ErrOutsideDomain, "a outside the box must error")
	assert.ErrorContains(t, err, "a[0]", "the error must identify the offending axis")
}

// TestReflect_DimensionMismatch verifies the shape preconditions against
// both the companion point and the box.
func TestReflect_DimensionMismatch(t *testing.T) {
	bx, err := box.New([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	_, err = neumann.Reflect([]float64{0.5, 0.5}, []float64{0.5}, bx, nil)
	assert.ErrorIs(t, err, neumann.ErrDimensionMismatch, "len(a) != len(b) must error")

	_, err = neumann.Reflect([]float64{0.5}, []float64{0.5}, bx, nil)
	assert.ErrorIs(t, err, neumann.ErrDimensionMismatch, "points shorter than the box must error")
}

// TestReflect_NilBox verifies the nil-box guard.
func TestReflect_NilBox(t *testing.T) {
	_, err := neumann.Reflect([]float64{0}, []float64{0}, nil, nil)
	assert.ErrorIs(t, err, neumann.ErrNilBox)
}

// TestReflect_BadMaxPasses verifies that a negative pass cap is rejected.
func TestReflect_BadMaxPasses(t *testing.T) {
	bx, err := box.New([]float64{0}, []float64{1})
	require.NoError(t, err)

	opts := neumann.DefaultOptions()
	opts.MaxPasses = -1
	_, err = neumann.Reflect([]float64{0.5}, []float64{0.5}, bx, &opts)
	assert.ErrorIs(t, err, neumann.ErrBadMaxPasses)
}

// TestReflect_PassCap verifies the cap semantics: a trajectory needing
// three folds succeeds under the default cap but fails with
// ErrNonConvergence when MaxPasses is tightened below its need.
func TestReflect_PassCap(t *testing.T) {
	bx, err := box.New([]float64{0}, []float64{1})
	require.NoError(t, err)

	a := []float64{0.5}
	b := []float64{3.7} // folds at 1, 0, 1 again: three passes to 0.3

	got, err := neumann.Reflect(a, b, bx, nil)
	require.NoError(t, err, "three passes fit the default cap of 4·d")
	assert.InDelta(t, 0.3, got[0], 1e-9)

	opts := neumann.DefaultOptions()
	opts.MaxPasses = 2
	_, err = neumann.Reflect(a, b, bx, &opts)
	assert.ErrorIs(t, err, neumann.ErrNonConvergence, "two passes must not be enough")
}

// TestReflect_NonConvergence_DegenerateBox verifies the hardening path:
// a zero-width axis makes the overshoot ping-pong without progress, and
// the kernel must cut the loop with ErrNonConvergence instead of
// spinning forever.
func TestReflect_NonConvergence_DegenerateBox(t *testing.T) {
	bx, err := box.New([]float64{0}, []float64{0})
	require.NoError(t, err)

	_, err = neumann.Reflect([]float64{0}, []float64{1}, bx, nil)
	assert.ErrorIs(t, err, neumann.ErrNonConvergence, "zero-width axis must hit the pass cap")
}
