package sampling

import (
	"math"

	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/randsrc"
)

const twoPi = 2 * math.Pi

// sampleUniformRotation draws an angle uniformly at random from rot's
// allowed domain: the identity angle when rotation is disallowed, any
// angle in [0, 2*pi) for continuous rotation, or a uniformly chosen entry
// of rot.Angles for a discrete set.
func sampleUniformRotation(rot geo.RotationRange, rng *randsrc.Source) float32 {
	switch rot.Kind {
	case geo.RotationContinuous:
		return float32(rng.Float64Range(0, twoPi))
	case geo.RotationDiscrete:
		if len(rot.Angles) == 0 {
			return 0
		}
		return rot.Angles[rng.Intn(len(rot.Angles))]
	default:
		return 0
	}
}

// sampleNormalRotation draws an angle from a normal distribution centered
// on mean with the given standard deviation. An item restricted to a
// discrete orientation set always returns mean unchanged: perturbing a
// fixed set of allowed angles makes no sense, mirroring the teacher's
// NormalRotDistr::Discrete case.
func sampleNormalRotation(rot geo.RotationRange, mean, stddev float64, rng *randsrc.Source) float32 {
	switch rot.Kind {
	case geo.RotationContinuous:
		return float32(rng.NormFloat64(mean, stddev))
	case geo.RotationDiscrete:
		return float32(mean)
	default:
		return 0
	}
}
