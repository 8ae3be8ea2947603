package sampling

import (
	"math"

	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/randsrc"
)

const (
	translStartFrac = 0.01
	translEndFrac   = 0.001
	rotStartRad     = 2.0 * math.Pi / 180.0
	rotEndRad       = 0.5 * math.Pi / 180.0
)

// LocalSearchSampler draws transformations from a Gaussian centered on a
// reference transform. The standard deviations start wide and decay
// exponentially towards a narrow end value as a local search converges
// on a candidate placement.
type LocalSearchSampler struct {
	rotation geo.RotationRange

	refTx, refTy float64
	refRotation  float64

	stddevTransl      float64
	stddevRotation    float64
	stddevTranslRange [2]float64
	stddevRotRange    [2]float64
}

// NewLocalSearchSampler builds a sampler for an item allowed the given
// rotation domain, centered on ref, with standard deviation ranges
// derived from bbox's largest dimension.
func NewLocalSearchSampler(rotation geo.RotationRange, ref geo.DTransformation, bbox geo.Rect) *LocalSearchSampler {
	maxDim := float64(bbox.Width())
	if h := float64(bbox.Height()); h > maxDim {
		maxDim = h
	}

	s := &LocalSearchSampler{
		rotation:          rotation,
		stddevTranslRange: [2]float64{maxDim * translStartFrac, maxDim * translEndFrac},
		stddevRotRange:    [2]float64{rotStartRad, rotEndRad},
	}
	s.stddevTransl = s.stddevTranslRange[0]
	s.stddevRotation = s.stddevRotRange[0]
	s.ShiftMean(ref)
	return s
}

// ShiftMean recenters the sampler's distributions on ref without
// disturbing the current standard deviations.
func (s *LocalSearchSampler) ShiftMean(ref geo.DTransformation) {
	s.refTx = float64(ref.Tx)
	s.refTy = float64(ref.Ty)
	s.refRotation = float64(ref.Rotation)
}

// DecayStddev sets the standard deviations according to an exponential
// decay curve given progress in [0, 1]:
//
//	f(0) = start
//	f(1) = end
//	f(x) = start * (end/start)^x
func (s *LocalSearchSampler) DecayStddev(progress float32) {
	decay := func(r [2]float64, pct float64) float64 {
		return r[0] * math.Pow(r[1]/r[0], pct)
	}
	pct := float64(progress)
	s.stddevTransl = decay(s.stddevTranslRange, pct)
	s.stddevRotation = decay(s.stddevRotRange, pct)
}

// Sample draws a random decomposed transformation from the sampler's
// current Gaussian state.
func (s *LocalSearchSampler) Sample(rng *randsrc.Source) geo.DTransformation {
	return geo.DTransformation{
		Rotation: sampleNormalRotation(s.rotation, s.refRotation, s.stddevRotation, rng),
		Tx:       float32(rng.NormFloat64(s.refTx, s.stddevTransl)),
		Ty:       float32(rng.NormFloat64(s.refTy, s.stddevTransl)),
	}
}
