package kmeans

import (
	"math"
	"math/rand"
)

// defaultSeed is the fixed seed substituted when Options.Seed is 0, so
// default runs stay reproducible.
const defaultSeed int64 = 1

// Fit clusters points into k groups.
//
// Validation: points must be non-empty (ErrNoPoints) and share one
// non-zero dimension (ErrDimensionMismatch); k must lie in
// [1, len(points)] (ErrBadK); option values must be in range
// (ErrBadOption).
//
// Steps:
//  1. Seed k centroids with k-means++ (squared-distance weighting).
//  2. Assign each point to its nearest centroid (ties to the lowest
//     centroid index).
//  3. Move each centroid to the mean of its members; a centroid that
//     lost all members stays where it was.
//  4. Stop when the largest centroid displacement drops to Tolerance or
//     MaxIterations is reached.
//
// Complexity: O(iterations · k · n · d).
func Fit(points [][]float64, k int, opts ...Option) (*Result, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	dim := len(points[0])
	if dim == 0 {
		return nil, ErrDimensionMismatch
	}
	for _, p := range points {
		if len(p) != dim {
			return nil, ErrDimensionMismatch
		}
	}
	if k < 1 || k > len(points) {
		return nil, ErrBadK
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxIterations < 1 || o.Tolerance < 0 {
		return nil, ErrBadOption
	}

	seed := o.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	centroids := seedPlusPlus(points, k, rng)
	labels := make([]int, len(points))

	var (
		iterations int
		converged  bool
	)
	for iterations = 1; iterations <= o.MaxIterations; iterations++ {
		assign(points, centroids, labels)
		shift := update(points, centroids, labels)
		if shift <= o.Tolerance {
			converged = true
			break
		}
	}
	if iterations > o.MaxIterations {
		iterations = o.MaxIterations
	}

	// Final assignment reflects the last centroid update.
	assign(points, centroids, labels)
	inertia := 0.0
	for i, p := range points {
		inertia += dist2(p, centroids[labels[i]])
	}

	return &Result{
		Centroids:  centroids,
		Labels:     labels,
		Inertia:    inertia,
		Iterations: iterations,
		Converged:  converged,
	}, nil
}

// seedPlusPlus picks k initial centroids: the first uniformly, each
// following one with probability proportional to its squared distance
// from the nearest centroid chosen so far.
func seedPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, clonePoint(points[rng.Intn(len(points))]))

	// best[i] caches the squared distance from point i to its nearest
	// chosen centroid.
	best := make([]float64, len(points))
	for i, p := range points {
		best[i] = dist2(p, centroids[0])
	}

	for len(centroids) < k {
		total := 0.0
		for _, d := range best {
			total += d
		}

		var next int
		if total == 0 {
			// All points coincide with chosen centroids; fall back to a
			// uniform pick.
			next = rng.Intn(len(points))
		} else {
			target := rng.Float64() * total
			for i, d := range best {
				target -= d
				if target <= 0 {
					next = i
					break
				}
			}
		}

		centroids = append(centroids, clonePoint(points[next]))
		for i, p := range points {
			if d := dist2(p, centroids[len(centroids)-1]); d < best[i] {
				best[i] = d
			}
		}
	}

	return centroids
}

// assign writes each point's nearest-centroid index into labels.
func assign(points, centroids [][]float64, labels []int) {
	for i, p := range points {
		bestIdx, bestDist := 0, dist2(p, centroids[0])
		for c := 1; c < len(centroids); c++ {
			if d := dist2(p, centroids[c]); d < bestDist {
				bestIdx, bestDist = c, d
			}
		}
		labels[i] = bestIdx
	}
}

// update moves each centroid to the mean of its assigned points and
// returns the largest Euclidean displacement. Empty clusters keep their
// previous centroid.
func update(points, centroids [][]float64, labels []int) float64 {
	dim := len(points[0])
	sums := make([][]float64, len(centroids))
	counts := make([]int, len(centroids))
	for c := range sums {
		sums[c] = make([]float64, dim)
	}
	for i, p := range points {
		c := labels[i]
		counts[c]++
		for d, v := range p {
			sums[c][d] += v
		}
	}

	maxShift := 0.0
	for c := range centroids {
		if counts[c] == 0 {
			continue
		}
		for d := range sums[c] {
			sums[c][d] /= float64(counts[c])
		}
		if shift := math.Sqrt(dist2(centroids[c], sums[c])); shift > maxShift {
			maxShift = shift
		}
		centroids[c] = sums[c]
	}

	return maxShift
}

// dist2 returns the squared Euclidean distance between equal-length
// points.
func dist2(a, b []float64) float64 {
	total := 0.0
	for i := range a {
		d := a[i] - b[i]
		total += d * d
	}

	return total
}

func clonePoint(p []float64) []float64 {
	out := make([]float64, len(p))
	copy(out, p)

	return out
}
