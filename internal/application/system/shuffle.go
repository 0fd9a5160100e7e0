package system

import "math/rand/v2"

// Shuffle returns a random permutation of values using a Fisher-Yates pass.
// The input slice is left untouched.
func Shuffle[T any](rng *rand.Rand, values []T) []T {
	out := make([]T, len(values))
	copy(out, values)

	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// NewRand creates the seeded generator used for margin shuffles.
// Sessions replayed with the same seed draw the same margins.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
