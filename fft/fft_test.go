package fft_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Actimia/aoc25/fft"
)

const eps = 1e-9

// assertComplexDelta compares slices of complex values component-wise.
func assertComplexDelta(t *testing.T, want, got []complex128) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), eps, "re[%d]", i)
		assert.InDelta(t, imag(want[i]), imag(got[i]), eps, "im[%d]", i)
	}
}

// TestNextPow2 pins the padding helper.
func TestNextPow2(t *testing.T) {
	assert.Equal(t, 1, fft.NextPow2(0))
	assert.Equal(t, 1, fft.NextPow2(1))
	assert.Equal(t, 2, fft.NextPow2(2))
	assert.Equal(t, 4, fft.NextPow2(3))
	assert.Equal(t, 8, fft.NextPow2(8))
	assert.Equal(t, 16, fft.NextPow2(9))
}

// TestTransform_BadLength rejects zero and non-power-of-two lengths.
func TestTransform_BadLength(t *testing.T) {
	_, err := fft.Transform(nil)
	assert.ErrorIs(t, err, fft.ErrNotPowerOfTwo)
	_, err = fft.Transform(make([]complex128, 3))
	assert.ErrorIs(t, err, fft.ErrNotPowerOfTwo)
	_, err = fft.Inverse(make([]complex128, 6))
	assert.ErrorIs(t, err, fft.ErrNotPowerOfTwo)
}

// TestTransform_LengthOne is the identity.
func TestTransform_LengthOne(t *testing.T) {
	got, err := fft.Transform([]complex128{3 + 2i})
	require.NoError(t, err)
	assertComplexDelta(t, []complex128{3 + 2i}, got)
}

// TestTransform_KnownSpectra pins small analytic cases.
func TestTransform_KnownSpectra(t *testing.T) {
	// Constant signal concentrates in the DC bin.
	got, err := fft.Transform([]complex128{1, 1, 1, 1})
	require.NoError(t, err)
	assertComplexDelta(t, []complex128{4, 0, 0, 0}, got)

	// Unit impulse has a flat spectrum.
	got, err = fft.Transform([]complex128{1, 0, 0, 0})
	require.NoError(t, err)
	assertComplexDelta(t, []complex128{1, 1, 1, 1}, got)

	// Shifted impulse picks up the twiddle phases.
	got, err = fft.Transform([]complex128{0, 1, 0, 0})
	require.NoError(t, err)
	assertComplexDelta(t, []complex128{1, -1i, -1, 1i}, got)
}

// TestRoundTrip: Inverse(Transform(x)) recovers x on random input.
func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	original := make([]complex128, 256)
	for i := range original {
		original[i] = complex(r.Float64()*2-1, r.Float64()*2-1)
	}

	work := make([]complex128, len(original))
	copy(work, original)

	work, err := fft.Transform(work)
	require.NoError(t, err)
	work, err = fft.Inverse(work)
	require.NoError(t, err)

	assertComplexDelta(t, original, work)
}

// naiveConvolve is the O(n·m) definition used as the oracle.
func naiveConvolve(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}

	return out
}

// TestConvolve_KnownValues pins a hand-checked product.
func TestConvolve_KnownValues(t *testing.T) {
	// (1 + 2x + 3x²)(4 + 5x) = 4 + 13x + 22x² + 15x³
	got := fft.Convolve([]float64{1, 2, 3}, []float64{4, 5})
	require.Len(t, got, 4)
	for i, want := range []float64{4, 13, 22, 15} {
		assert.InDelta(t, want, got[i], eps)
	}
}

// TestConvolve_MatchesNaive cross-checks against the direct definition.
func TestConvolve_MatchesNaive(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	a := make([]float64, 37)
	b := make([]float64, 53)
	for i := range a {
		a[i] = r.Float64()*2 - 1
	}
	for i := range b {
		b[i] = r.Float64()*2 - 1
	}

	want := naiveConvolve(a, b)
	got := fft.Convolve(a, b)
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-8, "coefficient %d", i)
	}
}

// TestConvolve_Empty: an empty operand yields an empty product.
func TestConvolve_Empty(t *testing.T) {
	assert.Empty(t, fft.Convolve(nil, []float64{1, 2}))
	assert.Empty(t, fft.Convolve([]float64{1}, nil))
}
