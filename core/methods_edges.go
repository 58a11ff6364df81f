// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/EdgesBetween/Edges/EdgeCount.
//       Also: validateAttribute() and nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by creation order (numeric part of Edge.ID).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock; reads under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of every edge identifier.
const edgeIDPrefix = 'e'

// AddEdge creates a directed edge from→to and appends it to the adjacency of from.
//
// Steps:
//  1. Validate IDs, loop policy, distance and safety score.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge constraint.
//  4. Generate the edge ID, store the edge, append it to adjacency[from].
//
// Errors:
//   - ErrEmptyVertexID: from or to is empty.
//   - ErrLoopNotAllowed: from == to without WithLoops.
//   - ErrInvalidWeight: distance or safetyScore is negative, NaN or ±Inf.
//   - ErrMultiEdgeNotAllowed: from→to already exists without WithMultiEdges.
//
// Complexity: O(1) amortized, O(deg(from)) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to string, distance, safetyScore float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := validateAttribute("distance", distance); err != nil {
		return "", fmt.Errorf("%w: edge %s→%s", err, from, to)
	}
	if err := validateAttribute("safety score", safetyScore); err != nil {
		return "", fmt.Errorf("%w: edge %s→%s", err, from, to)
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		for _, e := range g.adjacency[from] {
			if e.To == to {
				return "", fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
			}
		}
	}

	e := &Edge{
		ID:          nextEdgeID(g),
		From:        from,
		To:          to,
		Distance:    distance,
		SafetyScore: safetyScore,
	}
	g.edges[e.ID] = e
	g.adjacency[from] = append(g.adjacency[from], e)

	return e.ID, nil
}

// validateAttribute rejects values that would break the non-negative weight
// requirement of the shortest-path engine.
func validateAttribute(name string, v float64) error {
	switch {
	case math.IsNaN(v):
		return fmt.Errorf("%w: %s is NaN", ErrInvalidWeight, name)
	case math.IsInf(v, 0):
		return fmt.Errorf("%w: %s is infinite", ErrInvalidWeight, name)
	case v < 0:
		return fmt.Errorf("%w: %s %g is negative", ErrInvalidWeight, name, v)
	}

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// GetEdge returns the Edge with the given edgeID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEdgeNotFound, edgeID)
	}

	return e, nil
}

// EdgesBetween returns every edge from→to in insertion order (nil when none).
// Complexity: O(deg(from)).
func (g *Graph) EdgesBetween(from, to string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, e := range g.adjacency[from] {
		if e.To == to {
			out = append(out, e)
		}
	}

	return out
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID ("e1", "e2", …).
// Safe for concurrent callers; the counter is advanced atomically.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the numeric sequence from an edge ID produced by nextEdgeID.
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)
	return n
}
