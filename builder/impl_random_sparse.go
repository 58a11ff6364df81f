// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Directed Erdős–Rényi-like generator: each ordered pair (i,j) is kept
//     independently with probability p; self-pairs only when g.Looped().
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//
// Determinism:
//   - Trial order: i asc, then j asc; per kept edge distance then safety are drawn.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/safepath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed random network
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, cfg.idFn(i), err)
			}
		}

		loops := g.Looped()
		var (
			u, v string
			d, s float64
		)
		for i := 0; i < n; i++ {
			u = cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !keep(cfg, p) {
					continue
				}
				v = cfg.idFn(j)
				d, s = cfg.distanceFn(cfg.rng), cfg.safetyFn(cfg.rng)
				if _, err := g.AddEdge(u, v, d, s); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, d=%g, s=%g): %w",
						methodRandomSparse, u, v, d, s, err)
				}
			}
		}

		return nil
	}
}

// keep runs one Bernoulli trial; p ∈ {0,1} needs no RNG.
func keep(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}
	return cfg.rng.Float64() < p
}
