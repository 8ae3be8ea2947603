package cde

import (
	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/hazard"
)

// rectOverlapsPoly reports whether rect and poly share any area: either
// contains a vertex/corner of the other, or their boundaries cross. Used
// to confirm an Entire quadtree hit actually touches the query shape
// rather than just its bounding box.
func rectOverlapsPoly(rect geo.Rect, poly *geo.SimplePolygon) bool {
	for _, e := range poly.Edges() {
		if rect.CollidesWithEdge(e) {
			return true
		}
	}
	if len(poly.Vertices()) > 0 && rect.ContainsPoint(poly.Vertices()[0]) {
		return true
	}
	return poly.ContainsPoint(rect.Center())
}

// polysOverlap reports whether a and b share any area: an edge crossing,
// or one fully containing the other.
func polysOverlap(a, b *geo.SimplePolygon) bool {
	for _, ea := range a.Edges() {
		for _, eb := range b.Edges() {
			if ea.Intersects(eb) {
				return true
			}
		}
	}
	for _, v := range a.Vertices() {
		if b.ContainsPoint(v) {
			return true
		}
	}
	for _, v := range b.Vertices() {
		if a.ContainsPoint(v) {
			return true
		}
	}
	return false
}

// polyContainsPoly reports whether inner lies entirely within container:
// every vertex of inner is inside container, and no edge of inner crosses
// a boundary edge of container.
func polyContainsPoly(container, inner *geo.SimplePolygon) bool {
	for _, v := range inner.Vertices() {
		if !container.ContainsPoint(v) {
			return false
		}
	}
	for _, ei := range inner.Edges() {
		for _, ec := range container.Edges() {
			if ei.Intersects(ec) {
				return false
			}
		}
	}
	return true
}

// polyCollidesHazard is the exact (non-conservative) test backing a
// confirmed poly-vs-hazard collision, dispatched on which side of the
// hazard's shape is dangerous.
func polyCollidesHazard(poly *geo.SimplePolygon, hz hazard.Hazard) bool {
	switch hz.Side {
	case hazard.SideInside:
		return polysOverlap(poly, hz.Shape)
	default: // hazard.SideOutside
		return !polyContainsPoly(hz.Shape, poly)
	}
}

// circleOverlapsRect reports whether circle c overlaps rectangle r.
func circleOverlapsRect(c geo.Circle, r geo.Rect) bool {
	cx := clamp32(c.Center.X, r.XMin, r.XMax)
	cy := clamp32(c.Center.Y, r.YMin, r.YMax)
	closest := geo.Point{X: cx, Y: cy}
	return c.Center.DistanceTo(closest) <= c.Radius
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// circleCollidesHazard is the exact test backing a confirmed circle
// (pole) vs hazard collision.
func circleCollidesHazard(c geo.Circle, hz hazard.Hazard) bool {
	dist := distanceToBoundary(c.Center, hz.Shape)
	inside := hz.Shape.ContainsPoint(c.Center)
	switch hz.Side {
	case hazard.SideInside:
		return inside || dist <= c.Radius
	default: // hazard.SideOutside
		return !inside || dist < c.Radius
	}
}

// edgeCollidesHazard is the exact test backing a confirmed edge (pier)
// vs hazard collision.
func edgeCollidesHazard(edge geo.Edge, hz hazard.Hazard) bool {
	for _, e := range hz.Shape.Edges() {
		if edge.Intersects(e) {
			return true
		}
	}
	aIn := hz.Shape.ContainsPoint(edge.A)
	bIn := hz.Shape.ContainsPoint(edge.B)
	switch hz.Side {
	case hazard.SideInside:
		return aIn || bIn
	default: // hazard.SideOutside
		return !aIn || !bIn
	}
}

// distanceToBoundary returns the minimum distance from p to any edge of
// poly.
func distanceToBoundary(p geo.Point, poly *geo.SimplePolygon) float32 {
	best := float32(-1)
	for _, e := range poly.Edges() {
		d := pointSegmentDistance(p, e)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

func pointSegmentDistance(p geo.Point, e geo.Edge) float32 {
	ab := e.Vector()
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.DistanceTo(e.A)
	}
	t := p.Sub(e.A).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := e.A.Add(ab.Scale(t))
	return p.DistanceTo(proj)
}
