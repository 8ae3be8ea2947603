package geo

import "math"

// Epsilon is the fixed tolerance used for float comparisons throughout the
// core. It is derived once per polygon from its diameter (see
// SimplePolygon.Tolerance); this constant is the floor used when no better
// scale is available.
const Epsilon = 1e-5

// Point is a pair of real numbers in the plane.
type Point struct {
	X, Y float32
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float32) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z-component of the 3D cross product of p and q,
// treated as vectors from the origin.
func (p Point) Cross(q Point) float32 {
	return p.X*q.Y - p.Y*q.X
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float32 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// AlmostEqual reports whether p and q are within eps of each other.
func (p Point) AlmostEqual(q Point, eps float32) bool {
	return p.DistanceTo(q) <= eps
}

// Edge is an ordered pair of points.
type Edge struct {
	A, B Point
}

// Vector returns the direction vector of the edge, from A to B.
func (e Edge) Vector() Point {
	return e.B.Sub(e.A)
}

// Length returns the Euclidean length of the edge.
func (e Edge) Length() float32 {
	return e.A.DistanceTo(e.B)
}

// Transform applies t to both endpoints and returns the resulting edge.
func (e Edge) Transform(t Transformation) Edge {
	return Edge{t.ApplyToPoint(e.A), t.ApplyToPoint(e.B)}
}

// Intersects reports whether e and other cross as open segments (sharing
// only an endpoint does not count as an intersection).
func (e Edge) Intersects(other Edge) bool {
	d1 := direction(other.A, other.B, e.A)
	d2 := direction(other.A, other.B, e.B)
	d3 := direction(e.A, e.B, other.A)
	d4 := direction(e.A, e.B, other.B)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}

func direction(a, b, c Point) float32 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Circle is a disk defined by its center and radius.
type Circle struct {
	Center Point
	Radius float32
}

// Overlaps reports whether two circles' interiors intersect.
func (c Circle) Overlaps(other Circle) bool {
	return c.Center.DistanceTo(other.Center) < c.Radius+other.Radius
}

// Contains reports whether p lies within the closed disk.
func (c Circle) Contains(p Point) bool {
	return c.Center.DistanceTo(p) <= c.Radius
}

// Transform applies t to the circle. Rotation and translation preserve the
// radius; no scaling component exists in this core's rigid transforms.
func (c Circle) Transform(t Transformation) Circle {
	return Circle{Center: t.ApplyToPoint(c.Center), Radius: c.Radius}
}
