// SPDX-License-Identifier: MIT
//
// weight_fn.go - attribute distributions for generated edges.

package builder

import (
	"fmt"
	"math/rand"
)

// Defaults used when no generator is configured.
const (
	DefaultDistance    float64 = 1
	DefaultSafetyScore float64 = 0
)

// WeightFn produces a non-negative edge attribute given an optional RNG.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. A nil rng yields min.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// RoundedWeightFn wraps fn and rounds its output to the given number of decimals.
func RoundedWeightFn(fn WeightFn, decimals int) WeightFn {
	if fn == nil || decimals < 0 {
		panic("RoundedWeightFn: need non-nil fn and decimals ≥ 0")
	}
	scale := 1.0
	for i := 0; i < decimals; i++ {
		scale *= 10
	}

	return func(rng *rand.Rand) float64 {
		v := fn(rng) * scale
		return float64(int64(v+0.5)) / scale
	}
}
