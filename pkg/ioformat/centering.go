package ioformat

import (
	"math"

	"github.com/jaguago/jaguago/pkg/geo"
)

// centerPolygon returns a copy of orig translated so its centroid lies at
// the origin, plus the centroid itself. The centroid is what export needs
// to recompose the external transformation; callers keep it keyed by item
// ID rather than attaching it to the polygon, since geo.SimplePolygon
// carries no room for wire-format metadata.
func centerPolygon(orig *geo.SimplePolygon) (*geo.SimplePolygon, geo.Point) {
	centroid := orig.Centroid()
	toOrigin := geo.Transformation{Tx: -centroid.X, Ty: -centroid.Y}
	return orig.Transform(toOrigin), centroid
}

// externalTransform composes the stored pre_transform (translate by
// +centroid) with an internal transform computed against the centered
// shape, producing the transform reported to callers against the
// original, uncentered shape: external(p) = internal(p - centroid).
func externalTransform(internal geo.Transformation, centroid geo.Point) geo.Transformation {
	s, c := math.Sincos(float64(internal.Rotation))
	sf, cf := float32(s), float32(c)
	rcx := centroid.X*cf - centroid.Y*sf
	rcy := centroid.X*sf + centroid.Y*cf
	return geo.Transformation{
		Rotation: internal.Rotation,
		Tx:       internal.Tx - rcx,
		Ty:       internal.Ty - rcy,
	}
}
