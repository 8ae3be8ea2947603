package geo

import "math"

// Rect is an axis-aligned rectangle given by its min and max corners.
type Rect struct {
	XMin, YMin, XMax, YMax float32
}

// NewRect builds a Rect from two opposite corners, ordering the bounds.
func NewRect(x0, y0, x1, y1 float32) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{XMin: x0, YMin: y0, XMax: x1, YMax: y1}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 { return r.XMax - r.XMin }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 { return r.YMax - r.YMin }

// Area returns the rectangle's area.
func (r Rect) Area() float32 { return r.Width() * r.Height() }

// Diameter returns the length of the rectangle's diagonal.
func (r Rect) Diameter() float32 {
	w, h := r.Width(), r.Height()
	return float32(math.Sqrt(float64(w*w + h*h)))
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{(r.XMin + r.XMax) / 2, (r.YMin + r.YMax) / 2}
}

// ContainsPoint reports whether p lies within the closed rectangle (the
// boundary counts as contained — the "closed for point containment" policy
// from the collision spec).
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.XMin && p.X <= r.XMax && p.Y >= r.YMin && p.Y <= r.YMax
}

// ContainsRect reports whether other is entirely within r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.XMin >= r.XMin && other.XMax <= r.XMax &&
		other.YMin >= r.YMin && other.YMax <= r.YMax
}

// Intersects reports whether r and other overlap (as closed regions).
func (r Rect) Intersects(other Rect) bool {
	if r.XMax < other.XMin || other.XMax < r.XMin {
		return false
	}
	if r.YMax < other.YMin || other.YMax < r.YMin {
		return false
	}
	return true
}

// outcode bits for the Cohen-Sutherland rejection test.
const (
	outLeft   = 1 << 0
	outRight  = 1 << 1
	outBottom = 1 << 2
	outTop    = 1 << 3
)

func (r Rect) outcode(p Point) int {
	code := 0
	if p.X < r.XMin {
		code |= outLeft
	} else if p.X > r.XMax {
		code |= outRight
	}
	if p.Y < r.YMin {
		code |= outBottom
	} else if p.Y > r.YMax {
		code |= outTop
	}
	return code
}

// CollidesWithEdge reports whether e crosses the rectangle's boundary.
// The rectangle's boundary is treated as open for this test: an edge that
// only touches a corner or runs exactly along a side without crossing into
// the interior is not counted as a collision.
func (r Rect) CollidesWithEdge(e Edge) bool {
	oc1, oc2 := r.outcode(e.A), r.outcode(e.B)

	// Trivial reject: both endpoints share an outside half-plane.
	if oc1&oc2 != 0 {
		return false
	}

	// Trivial accept candidate: at least one endpoint strictly inside.
	if oc1 == 0 || oc2 == 0 {
		// An endpoint exactly on the boundary with the other endpoint
		// outside doesn't necessarily cross into the interior; fall
		// through to the explicit side-intersection test below, which
		// correctly rejects edges that merely graze the boundary.
	}

	// Explicit intersection against each of the four open sides.
	sides := [4]Edge{
		{Point{r.XMin, r.YMin}, Point{r.XMax, r.YMin}}, // bottom
		{Point{r.XMax, r.YMin}, Point{r.XMax, r.YMax}}, // right
		{Point{r.XMax, r.YMax}, Point{r.XMin, r.YMax}}, // top
		{Point{r.XMin, r.YMax}, Point{r.XMin, r.YMin}}, // left
	}

	for _, side := range sides {
		if e.Intersects(side) {
			return true
		}
	}

	// An edge fully inside the rectangle (both endpoints interior, no
	// side crossed) does not "collide" with the boundary under this
	// open-boundary policy.
	return false
}

// InflatedBy returns r expanded (or, for a negative offset, shrunk) by
// offset on every side.
func (r Rect) InflatedBy(offset float32) Rect {
	return Rect{
		XMin: r.XMin - offset,
		YMin: r.YMin - offset,
		XMax: r.XMax + offset,
		YMax: r.YMax + offset,
	}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		XMin: min32(r.XMin, other.XMin),
		YMin: min32(r.YMin, other.YMin),
		XMax: max32(r.XMax, other.XMax),
		YMax: max32(r.YMax, other.YMax),
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
