// Package fft implements the fast Fourier transform for complex128
// slices and FFT-based linear convolution of real sequences.
//
// Transform and Inverse are iterative radix-2 Cooley-Tukey: bit-reversal
// permutation followed by in-place butterfly passes. Input length must
// be a power of two (ErrNotPowerOfTwo otherwise); NextPow2 helps callers
// pad. Inverse applies the 1/N scale, so Inverse(Transform(x)) == x up
// to floating-point error (~1e-9 for unit-scale inputs).
package fft

import (
	"errors"
	"math"
	"math/bits"
	"math/cmplx"
)

// ErrNotPowerOfTwo indicates an input whose length is not a power of
// two (zero included).
var ErrNotPowerOfTwo = errors.New("fft: length must be a power of two")

// NextPow2 returns the smallest power of two >= n, and 1 for n <= 1.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// Transform computes the discrete Fourier transform of x in place and
// returns x. The length must be a power of two.
// Complexity: O(n log n).
func Transform(x []complex128) ([]complex128, error) {
	return transform(x, false)
}

// Inverse computes the inverse discrete Fourier transform of x in place
// and returns x, scaling by 1/N. The length must be a power of two.
// Complexity: O(n log n).
func Inverse(x []complex128) ([]complex128, error) {
	return transform(x, true)
}

func transform(x []complex128, invert bool) ([]complex128, error) {
	n := len(x)
	if n == 0 || n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}
	if n == 1 {
		return x, nil
	}

	// 1) Bit-reversal permutation brings the butterflies in order.
	shift := 64 - uint(bits.Len(uint(n-1)))
	for i := 1; i < n; i++ {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}

	// 2) Butterfly passes over doubling block sizes.
	for size := 2; size <= n; size *= 2 {
		angle := 2 * math.Pi / float64(size)
		if !invert {
			angle = -angle
		}
		wStep := cmplx.Rect(1, angle)
		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for k := 0; k < size/2; k++ {
				even := x[start+k]
				odd := x[start+k+size/2] * w
				x[start+k] = even + odd
				x[start+k+size/2] = even - odd
				w *= wStep
			}
		}
	}

	// 3) The inverse carries the 1/N normalization.
	if invert {
		scale := complex(1/float64(n), 0)
		for i := range x {
			x[i] *= scale
		}
	}

	return x, nil
}

// Convolve returns the linear convolution of a and b: a slice of length
// len(a)+len(b)-1 where out[k] = Σ a[i]·b[k-i]. Either input empty
// yields an empty result.
//
// Both inputs are zero-padded to a power of two, transformed, multiplied
// pointwise, and inverse-transformed.
// Complexity: O((|a|+|b|) log(|a|+|b|)).
func Convolve(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return []float64{}
	}

	outLen := len(a) + len(b) - 1
	n := NextPow2(outLen)

	fa := make([]complex128, n)
	fb := make([]complex128, n)
	for i, v := range a {
		fa[i] = complex(v, 0)
	}
	for i, v := range b {
		fb[i] = complex(v, 0)
	}

	// Lengths are powers of two by construction; errors cannot occur.
	fa, _ = Transform(fa)
	fb, _ = Transform(fb)
	for i := range fa {
		fa[i] *= fb[i]
	}
	fa, _ = Inverse(fa)

	out := make([]float64, outLen)
	for i := range out {
		out[i] = real(fa[i])
	}

	return out
}
