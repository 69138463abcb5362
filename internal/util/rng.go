package util

import "math/rand"

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Derive spawns an independent stream seeded from r, so consumers that only
// need identifiers never advance the combat roll sequence.
func Derive(r *rand.Rand) *rand.Rand {
	return rand.New(rand.NewSource(r.Int63()))
}
