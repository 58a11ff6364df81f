// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory road network used by the
// safepath engine: a directed graph whose edges carry a travel distance and a
// safety score.
//
// The Graph G = (V,E) keeps:
//
//   - a vertex catalog keyed by string ID (identity is the ID, never a pointer)
//   - an edge catalog keyed by monotonic edge IDs ("e1", "e2", …)
//   - per-source adjacency: the outgoing edges of each vertex in insertion order
//   - separate sync.RWMutex locks for vertices (muVert) and edges+adjacency
//     (muEdgeAdj), always acquired in that order
//
// Edge weight:
//
//	Weight() = Distance + SafetyScore
//
// Both attributes must be finite and non-negative. AddEdge rejects anything else
// with ErrInvalidWeight, so no graph built through this package can ever feed a
// negative weight to a shortest-path search.
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows several parallel edges between the same ordered pair.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                 // O(1), idempotent
//	HasVertex(id string) bool                  // O(1)
//	Vertex(id string) (*Vertex, error)         // O(1)
//	SetLabel(id, label string) error           // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, distance, safety float64) (edgeID string, err error) // O(1)†
//	HasEdge(from, to string) bool              // O(deg(from))
//	GetEdge(edgeID string) (*Edge, error)      // O(1)
//	EdgesBetween(from, to string) []*Edge      // O(deg(from))
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)      // O(d), insertion order
//	NeighborIDs(id string) ([]string, error)   // O(d log d), unique, sorted
//	Vertices() []string                        // O(V log V)
//	Edges() []*Edge                            // O(E log E)
//	VertexCount(), EdgeCount() int             // O(1)
//	Stats() GraphStats                         // O(V+E)
//
// † multi-edge check scans the source's adjacency when WithMultiEdges is off.
//
// Concurrency:
//
// Readers never block each other, so any number of shortest-path queries may
// traverse one Graph concurrently. Mutating the graph while a query runs is
// allowed by the locks but yields results for an unspecified snapshot.
package core
