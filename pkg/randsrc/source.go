package randsrc

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// Source is a stage-specific random source deriving its seed from a
// master seed. The derivation follows:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where H is SHA-256 and the first 8 bytes of the digest are used as the
// int64 seed for a math/rand source. All methods are deterministic given
// the same derived seed.
type Source struct {
	seed      uint64
	stageName string
	r         *rand.Rand
}

// New derives a Source for stageName from masterSeed and configHash.
func New(masterSeed uint64, stageName string, configHash []byte) *Source {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(stageName))
	h.Write(configHash)

	digest := h.Sum(nil)
	derived := binary.BigEndian.Uint64(digest[:8])

	return &Source{
		seed:      derived,
		stageName: stageName,
		r:         rand.New(rand.NewSource(int64(derived))),
	}
}

// Seed returns the derived seed this source was constructed from.
func (s *Source) Seed() uint64 { return s.seed }

// StageName returns the stage name this source was derived for.
func (s *Source) StageName() string { return s.stageName }

// Intn returns a pseudo-random integer in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int { return s.r.Intn(n) }

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (s *Source) Float64() float64 { return s.r.Float64() }

// Float64Range returns a pseudo-random float64 in [lo, hi). It panics if
// lo >= hi.
func (s *Source) Float64Range(lo, hi float64) float64 {
	if lo >= hi {
		panic("randsrc: Float64Range lo must be < hi")
	}
	return lo + s.r.Float64()*(hi-lo)
}

// NormFloat64 returns a pseudo-random float64 from a normal distribution
// with the given mean and standard deviation.
func (s *Source) NormFloat64(mean, stddev float64) float64 {
	return mean + s.r.NormFloat64()*stddev
}
