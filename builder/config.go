// SPDX-License-Identifier: MIT
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = decimalID  ("0","1","2",...)
//   • rng        = nil        (pure/deterministic unless seeded)
//   • distanceFn = ConstantWeightFn(DefaultDistance)
//   • safetyFn   = ConstantWeightFn(DefaultSafetyScore)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn func(int) string
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Attribute generators for generated edges.
	distanceFn WeightFn
	safetyFn   WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       decimalID,
		distanceFn: ConstantWeightFn(DefaultDistance),
		safetyFn:   ConstantWeightFn(DefaultSafetyScore),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
