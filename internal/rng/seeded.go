package rng

import "math/rand"

// Seeded returns a deterministic Generator for the given seed.
// Intended for tests and anywhere a reproducible shuffle or bot decision is needed.
func Seeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed))
}
