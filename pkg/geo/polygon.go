package geo

import (
	"fmt"
	"math"

	"github.com/jaguago/jaguago/pkg/surrogate"
)

// SimplePolygon is an ordered cycle of at least three distinct vertices,
// with no self-intersection and no collinear consecutive triple. Its
// winding fixes the sign of the signed area: counter-clockwise for
// exteriors, clockwise for holes. Derived quantities (bounding box, signed
// area, diameter, centroid, pole of inaccessibility) and its attached
// Surrogate are computed once at construction.
type SimplePolygon struct {
	vertices []Point

	bbox       Rect
	signedArea float32
	diameter   float32
	centroid   Point
	poi        Circle

	Surrogate *surrogate.Surrogate
}

// NewSimplePolygon validates vertices and builds a SimplePolygon,
// generating its surrogate using cfg.
func NewSimplePolygon(vertices []Point, cfg surrogate.Config) (*SimplePolygon, error) {
	if err := validateVertices(vertices); err != nil {
		return nil, err
	}

	p := &SimplePolygon{vertices: vertices}
	p.bbox = computeBBox(vertices)
	p.signedArea = computeSignedArea(vertices)
	p.diameter = p.bbox.Diameter()
	p.centroid = computeCentroid(vertices, p.signedArea)
	p.poi = computePoleOfInaccessibility(p)
	p.Surrogate = surrogate.Generate(p, cfg)

	return p, nil
}

func validateVertices(vertices []Point) error {
	if len(vertices) < 3 {
		return fmt.Errorf("geo: polygon needs at least 3 vertices, got %d", len(vertices))
	}

	n := len(vertices)
	for i := 0; i < n; i++ {
		a, b := vertices[i], vertices[(i+1)%n]
		if a.AlmostEqual(b, Epsilon) {
			return fmt.Errorf("geo: duplicate consecutive vertex at index %d", i)
		}
	}

	for i := 0; i < n; i++ {
		prev := vertices[(i-1+n)%n]
		cur := vertices[i]
		next := vertices[(i+1)%n]
		cross := cur.Sub(prev).Cross(next.Sub(cur))
		if math.Abs(float64(cross)) < float64(Epsilon) {
			return fmt.Errorf("geo: collinear consecutive triple at index %d", i)
		}
	}

	if selfIntersects(vertices) {
		return fmt.Errorf("geo: polygon boundary self-intersects")
	}

	return nil
}

func selfIntersects(vertices []Point) bool {
	n := len(vertices)
	for i := 0; i < n; i++ {
		e1 := Edge{vertices[i], vertices[(i+1)%n]}
		for j := i + 1; j < n; j++ {
			// Adjacent edges share an endpoint by construction; that
			// shared endpoint is not an intersection.
			if j == i || (j+1)%n == i {
				continue
			}
			e2 := Edge{vertices[j], vertices[(j+1)%n]}
			if e1.Intersects(e2) {
				return true
			}
		}
	}
	return false
}

func computeBBox(vertices []Point) Rect {
	r := Rect{XMin: vertices[0].X, YMin: vertices[0].Y, XMax: vertices[0].X, YMax: vertices[0].Y}
	for _, v := range vertices[1:] {
		r.XMin = min32(r.XMin, v.X)
		r.YMin = min32(r.YMin, v.Y)
		r.XMax = max32(r.XMax, v.X)
		r.YMax = max32(r.YMax, v.Y)
	}
	return r
}

// computeSignedArea returns the shoelace signed area: positive for
// counter-clockwise winding, negative for clockwise.
func computeSignedArea(vertices []Point) float32 {
	var sum float32
	n := len(vertices)
	for i := 0; i < n; i++ {
		a, b := vertices[i], vertices[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func computeCentroid(vertices []Point, signedArea float32) Point {
	if math.Abs(float64(signedArea)) < float64(Epsilon) {
		// Degenerate-area fallback: average of vertices.
		var sx, sy float32
		for _, v := range vertices {
			sx += v.X
			sy += v.Y
		}
		n := float32(len(vertices))
		return Point{sx / n, sy / n}
	}

	var cx, cy float32
	n := len(vertices)
	for i := 0; i < n; i++ {
		a, b := vertices[i], vertices[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	factor := float32(1.0 / (6.0 * float64(signedArea)))
	return Point{cx * factor, cy * factor}
}

// computePoleOfInaccessibility performs a coarse grid search for the point
// deepest inside the polygon; used only to seed the precomputed PoI field,
// the authoritative poles live on the attached Surrogate.
func computePoleOfInaccessibility(p *SimplePolygon) Circle {
	const precision = 24
	bbox := p.bbox
	stepX := bbox.Width() / precision
	stepY := bbox.Height() / precision
	if stepX <= 0 || stepY <= 0 {
		return Circle{Center: p.centroid, Radius: 0}
	}

	best := p.centroid
	bestR := float32(-1)
	for i := 0; i <= precision; i++ {
		x := bbox.XMin + float32(i)*stepX
		for j := 0; j <= precision; j++ {
			y := bbox.YMin + float32(j)*stepY
			pt := Point{x, y}
			if !p.ContainsPoint(pt) {
				continue
			}
			r := distanceToBoundaryGeo(p.vertices, pt)
			if r > bestR {
				bestR = r
				best = pt
			}
		}
	}
	if bestR < 0 {
		bestR = 0
	}
	return Circle{Center: best, Radius: bestR}
}

func distanceToBoundaryGeo(vertices []Point, p Point) float32 {
	best := float32(math.MaxFloat32)
	n := len(vertices)
	for i := 0; i < n; i++ {
		a, b := vertices[i], vertices[(i+1)%n]
		d := pointSegmentDistanceGeo(p, a, b)
		if d < best {
			best = d
		}
	}
	return best
}

func pointSegmentDistanceGeo(p, a, b Point) float32 {
	ab := b.Sub(a)
	abLenSq := ab.Dot(ab)
	if abLenSq == 0 {
		return p.DistanceTo(a)
	}
	t := p.Sub(a).Dot(ab) / abLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := a.Add(ab.Scale(t))
	return p.DistanceTo(proj)
}

// Vertices returns the polygon's vertex cycle. Callers must not mutate the
// returned slice.
func (p *SimplePolygon) Vertices() []Point { return p.vertices }

// Edges returns the polygon's boundary edges in winding order.
func (p *SimplePolygon) Edges() []Edge {
	n := len(p.vertices)
	edges := make([]Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = Edge{p.vertices[i], p.vertices[(i+1)%n]}
	}
	return edges
}

// BBox returns the polygon's precomputed bounding box.
func (p *SimplePolygon) BBox() Rect { return p.bbox }

// SignedArea returns the shoelace signed area (positive: CCW, negative: CW).
func (p *SimplePolygon) SignedArea() float32 { return p.signedArea }

// Area returns the unsigned area.
func (p *SimplePolygon) Area() float32 {
	if p.signedArea < 0 {
		return -p.signedArea
	}
	return p.signedArea
}

// IsCCW reports whether the polygon winds counter-clockwise (the exterior
// convention).
func (p *SimplePolygon) IsCCW() bool { return p.signedArea > 0 }

// Diameter returns the polygon's precomputed bounding-box diagonal length.
func (p *SimplePolygon) Diameter() float32 { return p.diameter }

// Centroid returns the polygon's precomputed centroid.
func (p *SimplePolygon) Centroid() Point { return p.centroid }

// PoleOfInaccessibility returns the precomputed deepest interior point and
// its distance to the boundary.
func (p *SimplePolygon) PoleOfInaccessibility() Circle { return p.poi }

// Tolerance returns the fixed-epsilon tolerance scaled to this polygon's
// diameter, used for equality comparisons involving its geometry.
func (p *SimplePolygon) Tolerance() float32 {
	t := p.diameter * 1e-6
	if t < Epsilon {
		return Epsilon
	}
	return t
}

// ContainsPoint performs a ray-casting point-in-polygon test. Ties at
// vertices are resolved by the rule that upward edges include their lower
// endpoint (and downward edges exclude it), which is the standard way to
// make the test well-defined on boundary-adjacent horizontal rays.
func (p *SimplePolygon) ContainsPoint(pt Point) bool {
	inside := false
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a, b := p.vertices[i], p.vertices[(i+1)%n]

		upward := b.Y > a.Y
		var lo, hi Point
		if upward {
			lo, hi = a, b
		} else {
			lo, hi = b, a
		}

		if upward {
			// Upward edge includes its lower endpoint: [lo.Y, hi.Y)
			if pt.Y < lo.Y || pt.Y >= hi.Y {
				continue
			}
		} else if a.Y != b.Y {
			// Downward edge excludes its lower endpoint: (lo.Y, hi.Y]
			if pt.Y <= lo.Y || pt.Y > hi.Y {
				continue
			}
		} else {
			// Horizontal edge never toggles the crossing count.
			continue
		}

		t := (pt.Y - a.Y) / (b.Y - a.Y)
		xCross := a.X + t*(b.X-a.X)
		if xCross > pt.X {
			inside = !inside
		}
	}
	return inside
}

// Transform returns a new SimplePolygon with every vertex moved by t and a
// correspondingly transformed surrogate. The new polygon's surrogate is
// derived with Surrogate.Transform, not regenerated from
// scratch: regenerating poles per placement would defeat the point of a
// precomputed fail-fast structure.
func (p *SimplePolygon) Transform(t Transformation) *SimplePolygon {
	out := &SimplePolygon{
		vertices: make([]Point, len(p.vertices)),
	}
	for i, v := range p.vertices {
		out.vertices[i] = t.ApplyToPoint(v)
	}
	out.bbox = computeBBox(out.vertices)
	out.signedArea = computeSignedArea(out.vertices)
	out.diameter = out.bbox.Diameter()
	out.centroid = t.ApplyToPoint(p.centroid)
	out.poi = p.poi.Transform(t)
	if p.Surrogate != nil {
		out.Surrogate = p.Surrogate.Transform(t)
	}
	return out
}

// StripSurrogate returns a shallow copy of p with its Surrogate cleared.
// Used for the LBF inner-loop scratch buffer, which transforms the exact
// polygon on every sample and never needs the (cheap-rejection-only)
// surrogate attached.
func (p *SimplePolygon) StripSurrogate() *SimplePolygon {
	out := *p
	out.Surrogate = nil
	return &out
}

// TransformFrom overwrites dst's vertices/bbox/centroid in place from src
// transformed by t, reusing dst's backing array when lengths match. This
// is the scratch-buffer transform the LBF inner loop uses to avoid a fresh
// allocation on every sample.
func (dst *SimplePolygon) TransformFrom(src *SimplePolygon, t Transformation) {
	if cap(dst.vertices) < len(src.vertices) {
		dst.vertices = make([]Point, len(src.vertices))
	} else {
		dst.vertices = dst.vertices[:len(src.vertices)]
	}
	for i, v := range src.vertices {
		dst.vertices[i] = t.ApplyToPoint(v)
	}
	dst.bbox = computeBBox(dst.vertices)
	dst.signedArea = computeSignedArea(dst.vertices)
	dst.diameter = dst.bbox.Diameter()
	dst.centroid = t.ApplyToPoint(src.centroid)
	dst.poi = src.poi.Transform(t)
	dst.Surrogate = nil
}
