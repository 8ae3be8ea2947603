package surrogate

import (
	"math"

	"github.com/jaguago/jaguago/pkg/geo"
)

// Generate builds a Surrogate for poly following cfg. Poles are placed
// greedily: repeatedly find the largest disk inscribed in poly that does
// not overlap any already-placed pole, until the staircase in
// cfg.PoleLimits is satisfied or cfg.MaxPoles is reached. Piers are then
// drawn between poles far enough apart that a straight edge between their
// centers lies entirely inside poly, capped at cfg.MaxPiers.
func Generate(poly Polygon, cfg Config) *Surrogate {
	s := &Surrogate{}
	area := poly.Area()

	for len(s.Poles) < cfg.MaxPoles {
		if area > 0 && staircaseSatisfied(cfg.PoleLimits, len(s.Poles), coveredFraction(s.Poles, area)) {
			break
		}
		center, radius := largestEmptyDisk(poly, s.Poles, cfg.GridPrecision)
		if radius <= 0 {
			break
		}
		s.Poles = append(s.Poles, Pole{Circle: geo.Circle{Center: center, Radius: radius}})
	}

	s.Piers = generatePiers(poly, s.Poles, cfg.MaxPiers)

	s.FailFastPoles = cfg.FailFastPoles
	if s.FailFastPoles > len(s.Poles) {
		s.FailFastPoles = len(s.Poles)
	}
	s.FailFastPiers = cfg.FailFastPiers
	if s.FailFastPiers > len(s.Piers) {
		s.FailFastPiers = len(s.Piers)
	}

	return s
}

// staircaseSatisfied checks, in order, whether count/coverage clears any
// step of the staircase; generation stops at the first satisfied step.
func staircaseSatisfied(limits []PoleLimit, count int, coverage float32) bool {
	for _, step := range limits {
		if count >= step.Count && coverage >= step.Coverage {
			return true
		}
	}
	return false
}

func coveredFraction(poles []Pole, area float32) float32 {
	var covered float32
	for _, p := range poles {
		covered += float32(math.Pi) * p.Circle.Radius * p.Circle.Radius
	}
	f := covered / area
	if f > 1 {
		f = 1
	}
	return f
}

// largestEmptyDisk searches for the point inside poly maximizing the
// radius of a disk centered there that stays inside poly and does not
// overlap any pole in existing. Returns a zero radius if no interior point
// is found (degenerate polygon).
func largestEmptyDisk(poly Polygon, existing []Pole, precision int) (geo.Point, float32) {
	if precision < 4 {
		precision = 4
	}

	box := poly.BBox()
	var best geo.Point
	bestR := float32(-1)

	const passes = 5
	for pass := 0; pass < passes; pass++ {
		stepX := box.Width() / float32(precision)
		stepY := box.Height() / float32(precision)
		if stepX <= 0 || stepY <= 0 {
			break
		}

		foundThisPass := false
		for i := 0; i <= precision; i++ {
			x := box.XMin + float32(i)*stepX
			for j := 0; j <= precision; j++ {
				y := box.YMin + float32(j)*stepY
				p := geo.Point{X: x, Y: y}
				if !poly.ContainsPoint(p) {
					continue
				}
				r := distanceToBoundary(poly, p)
				for _, pole := range existing {
					d := p.DistanceTo(pole.Circle.Center) - pole.Circle.Radius
					if d < r {
						r = d
					}
				}
				if r > bestR {
					bestR = r
					best = p
					foundThisPass = true
				}
			}
		}
		if !foundThisPass || bestR <= 0 {
			break
		}
		// Narrow the search window around the current best for the next,
		// finer pass.
		box = geo.Rect{
			XMin: best.X - stepX,
			YMin: best.Y - stepY,
			XMax: best.X + stepX,
			YMax: best.Y + stepY,
		}
	}

	if bestR < 0 {
		bestR = 0
	}
	return best, bestR
}

// distanceToBoundary returns the distance from p to the nearest edge of
// poly's boundary.
func distanceToBoundary(poly Polygon, p geo.Point) float32 {
	verts := poly.Vertices()
	if len(verts) < 2 {
		return 0
	}
	best := float32(math.MaxFloat32)
	n := len(verts)
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		d := pointSegmentDistance(p, a, b)
		if d < best {
			best = d
		}
	}
	return best
}

func pointSegmentDistance(p, a, b geo.Point) float32 {
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

// generatePiers connects poles that are far enough apart that the straight
// edge between their centers would meaningfully extend fail-fast coverage,
// keeping only edges that stay entirely inside poly and capping the result
// at maxPiers.
func generatePiers(poly Polygon, poles []Pole, maxPiers int) []Pier {
	if maxPiers <= 0 || len(poles) < 2 {
		return nil
	}

	var piers []Pier
	for i := 0; i < len(poles) && len(piers) < maxPiers; i++ {
		for j := i + 1; j < len(poles) && len(piers) < maxPiers; j++ {
			a, b := poles[i].Circle, poles[j].Circle
			dist := a.Center.DistanceTo(b.Center)
			if dist < (a.Radius+b.Radius)*1.5 {
				// Too close together to be worth a dedicated pier; the
				// poles themselves already cover the gap.
				continue
			}
			edge := geo.Edge{A: a.Center, B: b.Center}
			if edgeInsidePolygon(poly, edge) {
				piers = append(piers, Pier{Edge: edge})
			}
		}
	}
	return piers
}

// edgeInsidePolygon approximates "lies entirely inside poly" by sampling
// the segment at a fixed resolution and checking containment of each
// sample. A pier that leaves poly between two samples is kept, and a
// collision of that pier is still reported by the surrogate check, which
// does not recheck the item's full shape.
func edgeInsidePolygon(poly Polygon, e geo.Edge) bool {
	const samples = 8
	for i := 0; i <= samples; i++ {
		t := float32(i) / float32(samples)
		p := geo.Point{
			X: e.A.X + (e.B.X-e.A.X)*t,
			Y: e.A.Y + (e.B.Y-e.A.Y)*t,
		}
		if !poly.ContainsPoint(p) {
			return false
		}
	}
	return true
}
