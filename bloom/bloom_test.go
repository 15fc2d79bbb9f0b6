package bloom_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Actimia/aoc25/bloom"
)

// TestNew_Validation covers constructor bounds.
func TestNew_Validation(t *testing.T) {
	_, err := bloom.New(0, 3)
	assert.ErrorIs(t, err, bloom.ErrBadBitCount)
	_, err = bloom.New(1024, 0)
	assert.ErrorIs(t, err, bloom.ErrBadHashCount)
	_, err = bloom.New(1024, 65)
	assert.ErrorIs(t, err, bloom.ErrBadHashCount)

	f, err := bloom.New(1024, 3)
	require.NoError(t, err)
	assert.Equal(t, 1024, f.Bits())
	assert.Equal(t, 3, f.Hashes())

	// Sizes round up to whole words.
	f, err = bloom.New(1000, 3)
	require.NoError(t, err)
	assert.Equal(t, 1024, f.Bits())
}

// TestInsertHas_NoFalseNegatives: every inserted key must be reported.
func TestInsertHas_NoFalseNegatives(t *testing.T) {
	f, err := bloom.New(4096, 4)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		f.InsertString(fmt.Sprintf("key-%d", i))
	}
	for i := 0; i < 200; i++ {
		assert.True(t, f.HasString(fmt.Sprintf("key-%d", i)), "key-%d", i)
	}
}

// TestHas_FalsePositiveRateHolds samples keys that were never inserted:
// with a 1% target, far fewer than 5% of 1000 probes may hit.
func TestHas_FalsePositiveRateHolds(t *testing.T) {
	f, err := bloom.Optimal(200, 0.01)
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		f.InsertString(fmt.Sprintf("member-%d", i))
	}

	hits := 0
	for i := 0; i < 1000; i++ {
		if f.HasString(fmt.Sprintf("stranger-%d", i)) {
			hits++
		}
	}
	assert.Less(t, hits, 50, "false-positive rate drifted far above target")
}

// TestOptimal_Sizing pins the sizing formulas (bits round to word
// multiples; hash count from -ln(p)/ln 2).
func TestOptimal_Sizing(t *testing.T) {
	f, err := bloom.Optimal(10000, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 47936, f.Bits())
	assert.Equal(t, 3, f.Hashes())

	f, err = bloom.Optimal(1000, 0.01)
	require.NoError(t, err)
	assert.Equal(t, 9600, f.Bits())
	assert.Equal(t, 6, f.Hashes())

	f, err = bloom.Optimal(20, 0.001)
	require.NoError(t, err)
	assert.Equal(t, 320, f.Bits())
	assert.Equal(t, 9, f.Hashes())

	_, err = bloom.Optimal(0, 0.1)
	assert.ErrorIs(t, err, bloom.ErrBadItemCount)
	_, err = bloom.Optimal(10, 0)
	assert.ErrorIs(t, err, bloom.ErrBadRate)
	_, err = bloom.Optimal(10, 1)
	assert.ErrorIs(t, err, bloom.ErrBadRate)
}

// TestApproxItems estimates the inserted count within 10%.
func TestApproxItems(t *testing.T) {
	const num = 100
	f, err := bloom.New(1024, 4)
	require.NoError(t, err)
	for i := 0; i < num; i++ {
		f.InsertString(fmt.Sprintf("item-%d", i))
	}

	approx := f.ApproxItems()
	n := float64(num)
	assert.Greater(t, approx, int(n*0.9))
	assert.Less(t, approx, int(n/0.9))
}

// TestFalsePositiveRate_TracksLoad: a saturated filter reports a high
// rate, a lightly loaded one a low rate.
func TestFalsePositiveRate_TracksLoad(t *testing.T) {
	heavy, err := bloom.New(256, 4)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		heavy.InsertString(fmt.Sprintf("h-%d", i))
	}
	assert.Greater(t, heavy.FalsePositiveRate(), 0.5)

	light, err := bloom.New(256, 4)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		light.InsertString(fmt.Sprintf("l-%d", i))
	}
	assert.Less(t, light.FalsePositiveRate(), 0.15)
	assert.Greater(t, light.FalsePositiveRate(), 0.0)

	// An empty filter reports zero on both estimates.
	empty, err := bloom.New(256, 4)
	require.NoError(t, err)
	assert.Zero(t, empty.SetBits())
	assert.Zero(t, empty.ApproxItems())
	assert.Zero(t, empty.FalsePositiveRate())
}
