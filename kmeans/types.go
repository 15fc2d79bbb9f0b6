// Package kmeans clusters points in R^d with Lloyd's algorithm seeded by
// k-means++.
//
// Fit is deterministic: randomness comes only from the configured seed
// (seed 0 selects a fixed default; no time-based sources), so the same
// inputs and options always produce the same clustering.
package kmeans

import "errors"

// Sentinel errors returned by Fit.
var (
	// ErrNoPoints indicates an empty input point set.
	ErrNoPoints = errors.New("kmeans: no points")

	// ErrBadK indicates k < 1 or k > the number of points.
	ErrBadK = errors.New("kmeans: k must be in [1, len(points)]")

	// ErrDimensionMismatch indicates points of differing (or zero)
	// dimension.
	ErrDimensionMismatch = errors.New("kmeans: points must share one non-zero dimension")

	// ErrBadOption indicates an out-of-range option value.
	ErrBadOption = errors.New("kmeans: invalid option value")
)

// Options configures a Fit run. Construct via DefaultOptions and the
// With* modifiers.
type Options struct {
	// MaxIterations bounds the number of Lloyd iterations. Must be >= 1.
	MaxIterations int

	// Tolerance is the maximum centroid displacement below which the run
	// counts as converged. Must be >= 0.
	Tolerance float64

	// Seed drives centroid seeding. Seed 0 selects the fixed default.
	Seed int64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: 100 iterations,
// tolerance 1e-6, default seed.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 100,
		Tolerance:     1e-6,
		Seed:          0,
	}
}

// WithMaxIterations caps the number of Lloyd iterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithTolerance sets the convergence threshold on centroid movement.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithSeed fixes the seeding RNG. Seed 0 keeps the stable default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// Result is the outcome of a Fit run.
type Result struct {
	// Centroids holds the k cluster centers, index-aligned with Labels.
	Centroids [][]float64

	// Labels assigns each input point the index of its nearest centroid.
	Labels []int

	// Inertia is the sum of squared distances from each point to its
	// centroid. Lower is tighter.
	Inertia float64

	// Iterations is the number of Lloyd iterations actually run.
	Iterations int

	// Converged reports whether centroid movement fell below Tolerance
	// before MaxIterations ran out.
	Converged bool
}
