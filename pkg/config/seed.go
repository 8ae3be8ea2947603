package config

import "time"

// GenerateSeed derives a master seed from the current time when the
// configuration does not pin one explicitly.
func GenerateSeed() uint64 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint64(now)
	if seed == 0 {
		seed = 1
	}
	return seed
}
