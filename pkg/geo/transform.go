package geo

import "math"

// DTransformation is the decomposed form of a rigid transform: a rotation
// followed by a translation. Placed items store their transform in this
// form; Compose produces the Transformation used to actually move shapes.
type DTransformation struct {
	Rotation    float32 // radians
	Tx, Ty      float32
}

// Compose builds the applied Transformation from its decomposed parts.
func (d DTransformation) Compose() Transformation {
	return Transformation{Rotation: d.Rotation, Tx: d.Tx, Ty: d.Ty}
}

// Transformation is a rigid transform: rotate about the origin, then
// translate. Composing and decomposing are inverses up to floating
// tolerance, since Transformation and DTransformation carry the same
// three scalars; Decompose exists so call sites that only have a
// Transformation can recover the decomposed form without re-deriving it.
type Transformation struct {
	Rotation float32
	Tx, Ty   float32
}

// Identity returns the transform that leaves every point unchanged.
func Identity() Transformation {
	return Transformation{}
}

// Decompose returns the DTransformation equivalent to t.
func (t Transformation) Decompose() DTransformation {
	return DTransformation{Rotation: t.Rotation, Tx: t.Tx, Ty: t.Ty}
}

// ApplyToPoint rotates p about the origin by t.Rotation, then translates it.
func (t Transformation) ApplyToPoint(p Point) Point {
	s, c := math.Sincos(float64(t.Rotation))
	sf, cf := float32(s), float32(c)
	rx := p.X*cf - p.Y*sf
	ry := p.X*sf + p.Y*cf
	return Point{rx + t.Tx, ry + t.Ty}
}

// Translate returns a copy of t with an additional translation applied.
func (t Transformation) Translate(dx, dy float32) Transformation {
	t.Tx += dx
	t.Ty += dy
	return t
}

// RotationKind distinguishes the three allowed orientation domains for an
// item: no rotation, any continuous angle, or a fixed discrete set.
type RotationKind int

const (
	// RotationNone permits only the identity orientation.
	RotationNone RotationKind = iota
	// RotationContinuous permits any angle in [0, 2*pi).
	RotationContinuous
	// RotationDiscrete permits only the angles listed in RotationRange.Angles.
	RotationDiscrete
)

// RotationRange describes which orientations an item may take.
type RotationRange struct {
	Kind   RotationKind
	Angles []float32 // radians; only meaningful when Kind == RotationDiscrete
}

// NoRotation returns a RotationRange allowing only the identity orientation.
func NoRotation() RotationRange { return RotationRange{Kind: RotationNone} }

// ContinuousRotation returns a RotationRange allowing any angle.
func ContinuousRotation() RotationRange { return RotationRange{Kind: RotationContinuous} }

// DiscreteRotation returns a RotationRange restricted to the given angles.
func DiscreteRotation(angles []float32) RotationRange {
	return RotationRange{Kind: RotationDiscrete, Angles: angles}
}
