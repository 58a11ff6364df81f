// SPDX-License-Identifier: MIT
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits directed edges (i-1) → i for i=1..n-1 in increasing order.
//   - Attributes: distance = cfg.distanceFn(cfg.rng), safety = cfg.safetyFn(cfg.rng),
//     drawn in that order per edge.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/safepath/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the chain 0→1→…→n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, cfg.idFn(i), err)
			}
		}

		var (
			u, v string
			d, s float64
		)
		for i := 1; i < n; i++ {
			u, v = cfg.idFn(i-1), cfg.idFn(i)
			d, s = cfg.distanceFn(cfg.rng), cfg.safetyFn(cfg.rng)
			if _, err := g.AddEdge(u, v, d, s); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, d=%g, s=%g): %w", methodPath, u, v, d, s, err)
			}
		}

		return nil
	}
}
