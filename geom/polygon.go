package geom

import "math"

// Polygon is a simple polygon given by its vertices in order (either
// winding). Construct with NewPolygon to get vertex-count validation.
type Polygon []Vec2

// NewPolygon validates and returns a polygon over the given vertices.
// Returns ErrDegeneratePolygon for fewer than three vertices. The vertex
// slice is copied.
func NewPolygon(vertices ...Vec2) (Polygon, error) {
	if len(vertices) < 3 {
		return nil, ErrDegeneratePolygon
	}
	p := make(Polygon, len(vertices))
	copy(p, vertices)

	return p, nil
}

// SignedArea returns the shoelace area: positive for counter-clockwise
// winding, negative for clockwise.
// Complexity: O(n).
func (p Polygon) SignedArea() float64 {
	var sum float64
	for i, a := range p {
		b := p[(i+1)%len(p)]
		sum += a.Cross(b)
	}

	return sum / 2
}

// Area returns the absolute enclosed area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Perimeter returns the total edge length.
// Complexity: O(n).
func (p Polygon) Perimeter() float64 {
	var sum float64
	for i, a := range p {
		sum += a.Dist(p[(i+1)%len(p)])
	}

	return sum
}

// Centroid returns the area centroid. For (near-)zero-area polygons it
// falls back to the vertex average, which is the only meaningful answer
// for collinear rings.
// Complexity: O(n).
func (p Polygon) Centroid() Vec2 {
	area := p.SignedArea()
	if math.Abs(area) < Epsilon {
		var avg Vec2
		for _, v := range p {
			avg = avg.Add(v)
		}

		return avg.Scale(1 / float64(len(p)))
	}

	var cx, cy float64
	for i, a := range p {
		b := p[(i+1)%len(p)]
		f := a.Cross(b)
		cx += (a.X + b.X) * f
		cy += (a.Y + b.Y) * f
	}
	inv := 1 / (6 * area)

	return Vec2{X: cx * inv, Y: cy * inv}
}

// BoundingBox returns the axis-aligned bounding box as (min, max) corners.
// Complexity: O(n).
func (p Polygon) BoundingBox() (Vec2, Vec2) {
	mn := p[0]
	mx := p[0]
	for _, v := range p[1:] {
		mn.X = math.Min(mn.X, v.X)
		mn.Y = math.Min(mn.Y, v.Y)
		mx.X = math.Max(mx.X, v.X)
		mx.Y = math.Max(mx.Y, v.Y)
	}

	return mn, mx
}

// OnBoundary reports whether pt lies on one of the polygon's edges
// (within Epsilon).
// Complexity: O(n).
func (p Polygon) OnBoundary(pt Vec2) bool {
	for i, a := range p {
		b := p[(i+1)%len(p)]
		if onSegment(a, b, pt) {
			return true
		}
	}

	return false
}

// Contains reports whether pt lies inside the polygon. Boundary points
// (vertices and edge points, within Epsilon) count as inside.
//
// The interior test is the crossing-number method: a ray cast towards +X
// crosses the boundary an odd number of times for interior points. The
// half-open vertex rule ((a.Y > pt.Y) != (b.Y > pt.Y)) counts each vertex
// crossing exactly once; the unstable exactly-on-boundary cases are
// resolved by the explicit OnBoundary check first.
//
// Complexity: O(n).
func (p Polygon) Contains(pt Vec2) bool {
	if p.OnBoundary(pt) {
		return true
	}

	inside := false
	for i, a := range p {
		b := p[(i+1)%len(p)]
		if (a.Y > pt.Y) == (b.Y > pt.Y) {
			continue // edge does not straddle the ray
		}
		// X coordinate where the edge crosses the horizontal through pt.
		xCross := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if pt.X < xCross {
			inside = !inside
		}
	}

	return inside
}

// onSegment reports whether pt lies on the segment a-b within Epsilon:
// collinear with the segment and between its endpoints.
func onSegment(a, b, pt Vec2) bool {
	ab := b.Sub(a)
	ap := pt.Sub(a)
	if math.Abs(ab.Cross(ap)) > Epsilon*math.Max(1, ab.Len()) {
		return false
	}
	dot := ap.Dot(ab)

	return dot >= -Epsilon && dot <= ab.Len2()+Epsilon
}
