package kmeans_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Actimia/aoc25/kmeans"
)

// threeBlobs generates n points around each of three well-separated
// centers, deterministically.
func threeBlobs(n int) [][]float64 {
	r := rand.New(rand.NewSource(99))
	centers := [][]float64{{0, 0}, {10, 10}, {-10, 10}}

	var points [][]float64
	for _, c := range centers {
		for i := 0; i < n; i++ {
			points = append(points, []float64{
				c[0] + r.NormFloat64()*0.5,
				c[1] + r.NormFloat64()*0.5,
			})
		}
	}

	return points
}

// TestFit_Validation covers every sentinel.
func TestFit_Validation(t *testing.T) {
	_, err := kmeans.Fit(nil, 1)
	assert.ErrorIs(t, err, kmeans.ErrNoPoints)

	_, err = kmeans.Fit([][]float64{{}}, 1)
	assert.ErrorIs(t, err, kmeans.ErrDimensionMismatch)
	_, err = kmeans.Fit([][]float64{{1, 2}, {3}}, 1)
	assert.ErrorIs(t, err, kmeans.ErrDimensionMismatch)

	points := [][]float64{{1}, {2}, {3}}
	_, err = kmeans.Fit(points, 0)
	assert.ErrorIs(t, err, kmeans.ErrBadK)
	_, err = kmeans.Fit(points, 4)
	assert.ErrorIs(t, err, kmeans.ErrBadK)

	_, err = kmeans.Fit(points, 2, kmeans.WithMaxIterations(0))
	assert.ErrorIs(t, err, kmeans.ErrBadOption)
	_, err = kmeans.Fit(points, 2, kmeans.WithTolerance(-1))
	assert.ErrorIs(t, err, kmeans.ErrBadOption)
}

// TestFit_KEqualsOne: a single cluster centers on the mean.
func TestFit_KEqualsOne(t *testing.T) {
	points := [][]float64{{0, 0}, {2, 0}, {0, 2}, {2, 2}}

	res, err := kmeans.Fit(points, 1)
	require.NoError(t, err)
	require.Len(t, res.Centroids, 1)
	assert.InDelta(t, 1.0, res.Centroids[0][0], 1e-9)
	assert.InDelta(t, 1.0, res.Centroids[0][1], 1e-9)
	assert.Equal(t, []int{0, 0, 0, 0}, res.Labels)
	assert.True(t, res.Converged)
}

// TestFit_SeparatedBlobs: three well-separated blobs recover their
// generating partition.
func TestFit_SeparatedBlobs(t *testing.T) {
	const perBlob = 40
	points := threeBlobs(perBlob)

	res, err := kmeans.Fit(points, 3)
	require.NoError(t, err)
	require.Len(t, res.Centroids, 3)
	require.Len(t, res.Labels, 3*perBlob)
	assert.True(t, res.Converged)

	// Every blob must map to a single label, and the labels must differ.
	seen := make(map[int]bool)
	for blob := 0; blob < 3; blob++ {
		label := res.Labels[blob*perBlob]
		assert.False(t, seen[label], "blob %d shares a label", blob)
		seen[label] = true
		for i := 1; i < perBlob; i++ {
			assert.Equal(t, label, res.Labels[blob*perBlob+i], "blob %d point %d", blob, i)
		}
	}
}

// TestFit_Deterministic: same inputs and seed give identical results.
func TestFit_Deterministic(t *testing.T) {
	points := threeBlobs(20)

	first, err := kmeans.Fit(points, 3, kmeans.WithSeed(5))
	require.NoError(t, err)
	second, err := kmeans.Fit(points, 3, kmeans.WithSeed(5))
	require.NoError(t, err)

	assert.Equal(t, first.Labels, second.Labels)
	assert.Equal(t, first.Centroids, second.Centroids)
	assert.Equal(t, first.Inertia, second.Inertia)
}

// TestFit_KEqualsN: every point becomes its own centroid, inertia 0.
func TestFit_KEqualsN(t *testing.T) {
	points := [][]float64{{0}, {5}, {10}}

	res, err := kmeans.Fit(points, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Inertia, 1e-12)
	assert.True(t, res.Converged)

	// Labels form a bijection onto the centroids.
	seen := make(map[int]bool)
	for _, l := range res.Labels {
		assert.False(t, seen[l])
		seen[l] = true
	}
}

// TestFit_IterationCap: a tiny cap stops early without converging on
// hard data.
func TestFit_IterationCap(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	points := make([][]float64, 200)
	for i := range points {
		points[i] = []float64{r.Float64(), r.Float64()}
	}

	res, err := kmeans.Fit(points, 8, kmeans.WithMaxIterations(1), kmeans.WithTolerance(0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	assert.False(t, res.Converged)
}
