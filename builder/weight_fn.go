// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lanetsp/matrix"
)

// WeightFn produces an edge weight from an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) matrix.Weight

// DefaultWeightFn always returns DefaultWeight.
func DefaultWeightFn(_ *rand.Rand) matrix.Weight {
	return DefaultWeight
}

// ConstantWeightFn returns a WeightFn that always yields w.
func ConstantWeightFn(w matrix.Weight) WeightFn {
	return func(_ *rand.Rand) matrix.Weight {
		return w
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [lo, hi] inclusive.
// Panics if hi < lo. With a nil rng it yields lo.
// Complexity: O(1).
func UniformWeightFn(lo, hi matrix.Weight) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	span := uint64(hi-lo) + 1

	return func(rng *rand.Rand) matrix.Weight {
		if rng == nil || span == 1 {
			return lo
		}

		return lo + matrix.Weight(uint64(rng.Int63n(int64(span))))
	}
}

// ScenarioWeightFn samples in [MinScenarioWeight, MaxScenarioWeight].
func ScenarioWeightFn(rng *rand.Rand) matrix.Weight {
	return UniformWeightFn(MinScenarioWeight, MaxScenarioWeight)(rng)
}
