package service

import (
	"math/rand"
	"slices"
)

// ShuffleOptions returns a uniformly permuted copy of options (Fisher-Yates).
// A nil rng falls back to the global source.
func ShuffleOptions(rng *rand.Rand, options []string) []string {
	shuffled := slices.Clone(options)

	swap := func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	if rng == nil {
		rand.Shuffle(len(shuffled), swap)
	} else {
		rng.Shuffle(len(shuffled), swap)
	}

	return shuffled
}
