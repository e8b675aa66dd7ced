package util

import "math/rand"

// NewRand returns a deterministic source; seed 0 is treated as 1 so an unset
// flag still reproduces.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}
