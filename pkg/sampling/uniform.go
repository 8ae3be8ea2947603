package sampling

import (
	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/randsrc"
)

// UniformRectSampler draws transformations uniformly at random: the
// translation from BBox, the rotation from Rotation's allowed domain,
// independently of each other.
type UniformRectSampler struct {
	BBox     geo.Rect
	Rotation geo.RotationRange
}

// NewUniformRectSampler builds a sampler bounded by bbox for an item
// allowed the given rotation domain.
func NewUniformRectSampler(bbox geo.Rect, rotation geo.RotationRange) *UniformRectSampler {
	return &UniformRectSampler{BBox: bbox, Rotation: rotation}
}

// Sample draws a random decomposed transformation.
func (s *UniformRectSampler) Sample(rng *randsrc.Source) geo.DTransformation {
	return geo.DTransformation{
		Rotation: sampleUniformRotation(s.Rotation, rng),
		Tx:       float32(rng.Float64Range(float64(s.BBox.XMin), float64(s.BBox.XMax))),
		Ty:       float32(rng.Float64Range(float64(s.BBox.YMin), float64(s.BBox.YMax))),
	}
}

// Tighten atomically replaces the sampling rectangle with bbox. A caller
// narrowing the search region as it commits to a candidate area must
// swap the whole rectangle in one assignment, never mutate XMin/XMax/
// YMin/YMax one field at a time, so that a Sample call never observes a
// half-updated box.
func (s *UniformRectSampler) Tighten(bbox geo.Rect) {
	s.BBox = bbox
}
