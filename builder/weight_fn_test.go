// Package builder_test covers the WeightFn implementations, both behavior and
// panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lanetsp/builder"
)

func TestWeightFnPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithGridSpan(0) })
	require.Panics(t, func() { builder.WithGridSpan(builder.MaxGridSpan + 1) })
}

func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	require.Equal(t, builder.DefaultWeight, builder.DefaultWeightFn(nil))
	require.Equal(t, builder.DefaultWeight, builder.DefaultWeightFn(rng))

	c := builder.ConstantWeightFn(7)
	require.Equal(t, uint32(7), c(nil))
	require.Equal(t, uint32(7), c(rng))

	// Degenerate interval and nil rng both yield lo.
	require.Equal(t, uint32(3), builder.UniformWeightFn(3, 3)(rng))
	require.Equal(t, uint32(4), builder.UniformWeightFn(4, 9)(nil))

	u := builder.UniformWeightFn(10, 12)
	seen := map[uint32]bool{}
	for i := 0; i < 500; i++ {
		w := u(rng)
		require.GreaterOrEqual(t, w, uint32(10))
		require.LessOrEqual(t, w, uint32(12))
		seen[w] = true
	}
	require.Len(t, seen, 3, "every value of a small interval is reachable")

	// Full range does not overflow the span computation.
	_ = builder.UniformWeightFn(0, ^uint32(0))(rng)

	for i := 0; i < 200; i++ {
		w := builder.ScenarioWeightFn(rng)
		require.GreaterOrEqual(t, w, builder.MinScenarioWeight)
		require.LessOrEqual(t, w, builder.MaxScenarioWeight)
	}
}
