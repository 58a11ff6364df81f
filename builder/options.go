// SPDX-License-Identifier: MIT
//
// options.go - BuilderOption constructors. Invalid arguments panic here so
// constructors can assume a sane builderConfig.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → vertex ID mapping for generated topologies.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand attaches a caller-owned RNG.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDistanceFn sets the distance generator for generated edges.
func WithDistanceFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithDistanceFn(nil)")
	}
	return func(c *builderConfig) {
		c.distanceFn = fn
	}
}

// WithSafetyFn sets the safety-score generator for generated edges.
func WithSafetyFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithSafetyFn(nil)")
	}
	return func(c *builderConfig) {
		c.safetyFn = fn
	}
}
