package bitvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Actimia/aoc25/bitvec"
)

// TestNew_Validation covers construction and bounds checking.
func TestNew_Validation(t *testing.T) {
	_, err := bitvec.New(-1)
	assert.ErrorIs(t, err, bitvec.ErrBadLength)

	b, err := bitvec.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.All()) // vacuously true
	assert.True(t, b.None())

	b, err = bitvec.New(100)
	require.NoError(t, err)
	assert.ErrorIs(t, b.Set(100), bitvec.ErrOutOfRange)
	assert.ErrorIs(t, b.Set(-1), bitvec.ErrOutOfRange)
	_, err = b.Get(100)
	assert.ErrorIs(t, err, bitvec.ErrOutOfRange)
}

// TestSetClearFlip exercises single-bit mutation across word boundaries.
func TestSetClearFlip(t *testing.T) {
	b, err := bitvec.New(130) // spans three words
	require.NoError(t, err)

	for _, i := range []int{0, 63, 64, 127, 128, 129} {
		require.NoError(t, b.Set(i))
		on, getErr := b.Get(i)
		require.NoError(t, getErr)
		assert.True(t, on, "bit %d", i)
	}
	assert.Equal(t, 6, b.Count())

	require.NoError(t, b.Clear(64))
	on, err := b.Get(64)
	require.NoError(t, err)
	assert.False(t, on)

	require.NoError(t, b.Flip(64))
	require.NoError(t, b.Flip(65))
	assert.Equal(t, 7, b.Count())
}

// TestBulk_SetAllClearAll checks the tail-masking invariant: SetAll on a
// non-word-multiple length must count exactly Len bits.
func TestBulk_SetAllClearAll(t *testing.T) {
	b, err := bitvec.New(70)
	require.NoError(t, err)

	b.SetAll()
	assert.Equal(t, 70, b.Count())
	assert.True(t, b.All())
	assert.True(t, b.Any())

	b.ClearAll()
	assert.True(t, b.None())
	assert.False(t, b.Any())
}

// TestSetAlgebra covers Union, Intersect, Difference and length checks.
func TestSetAlgebra(t *testing.T) {
	a, _ := bitvec.New(10)
	b, _ := bitvec.New(10)
	for _, i := range []int{1, 3, 5} {
		require.NoError(t, a.Set(i))
	}
	for _, i := range []int{3, 5, 7} {
		require.NoError(t, b.Set(i))
	}

	u := a.Clone()
	require.NoError(t, u.Union(b))
	assert.Equal(t, 4, u.Count()) // {1,3,5,7}

	i := a.Clone()
	require.NoError(t, i.Intersect(b))
	assert.Equal(t, 2, i.Count()) // {3,5}

	d := a.Clone()
	require.NoError(t, d.Difference(b))
	assert.Equal(t, 1, d.Count()) // {1}
	on, err := d.Get(1)
	require.NoError(t, err)
	assert.True(t, on)

	short, _ := bitvec.New(9)
	assert.ErrorIs(t, a.Union(short), bitvec.ErrLengthMismatch)
	assert.ErrorIs(t, a.Intersect(nil), bitvec.ErrLengthMismatch)
}

// TestClone_Independence verifies clones do not alias storage.
func TestClone_Independence(t *testing.T) {
	a, _ := bitvec.New(8)
	require.NoError(t, a.Set(2))

	c := a.Clone()
	require.NoError(t, c.Set(5))

	assert.Equal(t, 1, a.Count())
	assert.Equal(t, 2, c.Count())
}

// TestNextSet scans set bits in order, including across words.
func TestNextSet(t *testing.T) {
	b, _ := bitvec.New(200)
	want := []int{3, 64, 65, 190}
	for _, i := range want {
		require.NoError(t, b.Set(i))
	}

	var got []int
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		got = append(got, i)
	}
	assert.Equal(t, want, got)

	_, ok := b.NextSet(191)
	assert.False(t, ok)
	_, ok = b.NextSet(1000)
	assert.False(t, ok)

	// Negative from clamps to zero.
	i, ok := b.NextSet(-5)
	assert.True(t, ok)
	assert.Equal(t, 3, i)
}
