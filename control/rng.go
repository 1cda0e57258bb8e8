// SPDX-License-Identifier: MIT
// RNG utilities for resampling.
//
// Goals:
//   - Determinism: same seed ⇒ identical control matrices for any parallelism.
//   - No process-wide source: every draw goes through an explicit *rand.Rand.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; every iteration owns its stream.

package control

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand (seed 0 ⇒ defaultRNGSeed).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// iterationRNG returns the stream of iteration i under the base seed.
// It depends only on (seed, i), never on scheduling.
func iterationRNG(seed int64, i int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, uint64(i))))
}

// shuffleStrings performs an in-place Fisher–Yates shuffle of a using rng.
func shuffleStrings(a []string, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
