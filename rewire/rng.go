// SPDX-License-Identifier: MIT

// Package rewire - RNG utilities.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Ensemble derives one stream per member.
package rewire

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0 or no seed at all.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand (seed 0 ⇒ defaultRNGSeed).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, so consecutive streams are decorrelated.
// Ensemble member k runs on DeriveSeed(seed, k).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
