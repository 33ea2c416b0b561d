// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved configuration of one constructor call.
type builderConfig struct {
	rng       *rand.Rand
	weightFn  WeightFn
	symmetric bool
	span      int
}

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn:  DefaultWeightFn,
		symmetric: true,
		span:      DefaultGridSpan,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// WithSeed seeds a fresh RNG; equal seeds give equal matrices.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithUniformWeight is shorthand for WithWeightFn(UniformWeightFn(lo, hi)).
func WithUniformWeight(lo, hi uint32) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithSymmetric selects whether Random mirrors the upper triangle (default true).
func WithSymmetric(on bool) BuilderOption {
	return func(c *builderConfig) {
		c.symmetric = on
	}
}

// WithGridSpan sets the Grid lattice side length. Panics unless 1 ≤ span ≤ MaxGridSpan.
func WithGridSpan(span int) BuilderOption {
	if span < 1 || span > MaxGridSpan {
		panic("builder: WithGridSpan(span out of range)")
	}
	return func(c *builderConfig) {
		c.span = span
	}
}
