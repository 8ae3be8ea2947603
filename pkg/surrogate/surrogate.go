package surrogate

import (
	"github.com/jaguago/jaguago/pkg/geo"
)

// Polygon is the minimal structural contract surrogate generation needs
// from a polygon. geo.SimplePolygon satisfies this without surrogate ever
// importing geo.SimplePolygon by name, which is what keeps pkg/geo and
// pkg/surrogate from forming an import cycle despite each needing the
// other's types.
type Polygon interface {
	Vertices() []geo.Point
	BBox() geo.Rect
	Area() float32
	ContainsPoint(p geo.Point) bool
}

// PoleLimit is one step of the generation staircase: generation may stop
// once at least Count poles are placed and at least Coverage of the
// polygon's area is covered by them.
type PoleLimit struct {
	Count    int
	Coverage float32
}

// Config controls surrogate generation.
type Config struct {
	// PoleLimits is the staircase described in the data model: checked in
	// order on every iteration, generation stops at the first satisfied
	// step.
	PoleLimits []PoleLimit
	// MaxPoles is a hard cap applied regardless of the staircase.
	MaxPoles int
	// MaxPiers caps the number of internal edges generated between
	// well-separated poles.
	MaxPiers int
	// FailFastPoles/FailFastPiers size the prefix used for cheap
	// collision rejection.
	FailFastPoles int
	FailFastPiers int
	// GridPrecision controls the resolution of the largest-empty-disk
	// search (higher is more accurate, slower).
	GridPrecision int
}

// DefaultConfig returns the staircase quoted in the data model: 100 poles
// at >=0% coverage, 20 at >=75%, 10 at >=90%.
func DefaultConfig() Config {
	return Config{
		PoleLimits: []PoleLimit{
			{Count: 100, Coverage: 0.0},
			{Count: 20, Coverage: 0.75},
			{Count: 10, Coverage: 0.90},
		},
		MaxPoles:      100,
		MaxPiers:      8,
		FailFastPoles: 5,
		FailFastPiers: 2,
		GridPrecision: 24,
	}
}

// Pole is one interior disk of a Surrogate.
type Pole struct {
	Circle geo.Circle
}

// Pier is an internal edge of a Surrogate, connecting two widely separated
// poles.
type Pier struct {
	Edge geo.Edge
}

// Surrogate is the conservative approximation of a polygon used for
// fail-fast collision rejection: poles ordered largest-first (Poles[0] is
// the pole of inaccessibility) plus optional piers.
type Surrogate struct {
	Poles []Pole
	Piers []Pier

	// FailFastPoles/FailFastPiers are prefix lengths into Poles/Piers used
	// by cheap collision rejection; never larger than len(Poles)/len(Piers).
	FailFastPoles int
	FailFastPiers int
}

// FailFastPoleSet returns the prefix of poles used for fail-fast rejection.
func (s *Surrogate) FailFastPoleSet() []Pole {
	return s.Poles[:s.FailFastPoles]
}

// FailFastPierSet returns the prefix of piers used for fail-fast rejection.
func (s *Surrogate) FailFastPierSet() []Pier {
	return s.Piers[:s.FailFastPiers]
}

// PoleOfInaccessibility returns the first (largest) pole, or false if the
// surrogate has no poles.
func (s *Surrogate) PoleOfInaccessibility() (geo.Circle, bool) {
	if len(s.Poles) == 0 {
		return geo.Circle{}, false
	}
	return s.Poles[0].Circle, true
}

// Transform returns a new Surrogate with every pole center and pier
// endpoint moved by t. Pole radii are unchanged, since this core's
// transforms are rigid (rotation + translation only).
func (s *Surrogate) Transform(t geo.Transformation) *Surrogate {
	out := &Surrogate{
		FailFastPoles: s.FailFastPoles,
		FailFastPiers: s.FailFastPiers,
		Poles:         make([]Pole, len(s.Poles)),
		Piers:         make([]Pier, len(s.Piers)),
	}
	for i, p := range s.Poles {
		out.Poles[i] = Pole{Circle: p.Circle.Transform(t)}
	}
	for i, p := range s.Piers {
		out.Piers[i] = Pier{Edge: p.Edge.Transform(t)}
	}
	return out
}
