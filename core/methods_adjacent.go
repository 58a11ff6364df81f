// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Neighbors() keeps insertion order of the source's adjacency.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Locks are taken in the order muVert -> muEdgeAdj, the same as AddEdge.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the outgoing edges of id in insertion order.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Copy the adjacency slice so callers never alias internal storage.
//
// Returns pointers to live catalog edges (read-only by convention). A vertex
// without outgoing edges yields an empty, non-nil slice.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	adj := g.adjacency[id]
	out := make([]*Edge, len(adj))
	copy(out, adj)

	return out, nil
}

// NeighborIDs returns the unique IDs reachable from id over one edge, sorted lex asc.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		if _, dup := seen[e.To]; dup {
			continue
		}
		seen[e.To] = struct{}{}
		ids = append(ids, e.To)
	}
	sort.Strings(ids)

	return ids, nil
}
