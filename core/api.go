// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over construction flags and the Stats snapshot.

package core

import "math"

// GraphStats is a read-only summary of graph policy and catalog sizes.
type GraphStats struct {
	AllowsMulti bool
	AllowsLoops bool

	VertexCount int
	EdgeCount   int

	// MaxWeight is the largest Distance+SafetyScore in the catalog (0 when empty).
	MaxWeight float64
	// TotalDistance sums Distance over every edge.
	TotalDistance float64
	// TotalSafetyScore sums SafetyScore over every edge.
	TotalSafetyScore float64
}

// Looped reports whether self-loops are permitted.
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Stats produces a deterministic snapshot of configuration flags, catalog sizes
// and edge attribute sums.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, scan the edge catalog once, then release.
//
// The two phases never hold both locks at once, so under concurrent mutation the
// snapshot is consistent per phase only.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edges {
		stats.MaxWeight = math.Max(stats.MaxWeight, e.Weight())
		stats.TotalDistance += e.Distance
		stats.TotalSafetyScore += e.SafetyScore
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
