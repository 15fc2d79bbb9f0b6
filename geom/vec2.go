// Package geom provides 2D vector and polygon primitives: shoelace areas,
// perimeters, centroids, bounding boxes, and point-in-polygon tests.
//
// Coordinates are float64. Predicates that must decide incidence (a point
// lying exactly on an edge) use a small absolute tolerance, Epsilon, which
// is appropriate for the unit-to-thousands coordinate scales puzzle inputs
// use.
package geom

import (
	"errors"
	"math"
)

// Epsilon is the absolute tolerance used by boundary predicates.
const Epsilon = 1e-9

// Sentinel errors for geometry operations.
var (
	// ErrDegeneratePolygon indicates fewer than three vertices.
	ErrDegeneratePolygon = errors.New("geom: polygon needs at least 3 vertices")

	// ErrZeroVector indicates an attempt to normalize the zero vector.
	ErrZeroVector = errors.New("geom: cannot normalize zero vector")
)

// Vec2 is a 2D vector (or point).
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Dot returns the dot product v·o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z-component of the 3D cross product v×o.
// Positive when o lies counter-clockwise of v.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.Len2()) }

// Len2 returns the squared length of v, avoiding the square root.
func (v Vec2) Len2() float64 { return v.X*v.X + v.Y*v.Y }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Normalize returns the unit vector in v's direction.
// Returns ErrZeroVector when v has (near-)zero length.
func (v Vec2) Normalize() (Vec2, error) {
	l := v.Len()
	if l < Epsilon {
		return Vec2{}, ErrZeroVector
	}

	return v.Scale(1 / l), nil
}
