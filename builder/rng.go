// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// defaultRNGSeed is used when no RNG option is given or the seed is 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer,
// so neighbouring stream ids produce unrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// ScenarioSeed returns the RNG seed of remote scenario (nodes, id).
func ScenarioSeed(nodes int, id uint32) int64 {
	return deriveSeed(int64(nodes), uint64(id))
}
