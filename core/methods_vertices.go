// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertex/Vertices/VertexCount,
//       plus the display-label helpers.
// Determinism:
//   - Vertices() returns IDs sorted lex asc.
// Concurrency:
//   - Mutations under muVert write lock; reads under muVert read lock.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a new vertex with the given id.
//
// Adding an existing id is a no-op, so endpoints may be declared repeatedly
// while a network is assembled.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	return nil
}

// HasVertex reports whether a vertex with the given id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex with the given id.
// The Metadata map is copied shallowly; mutate labels through SetLabel.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	meta := make(map[string]interface{}, len(v.Metadata))
	for k, val := range v.Metadata {
		meta[k] = val
	}

	return &Vertex{ID: v.ID, Metadata: meta}, nil
}

// SetLabel attaches a human-readable name to an existing vertex.
func (g *Graph) SetLabel(id, label string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	v.Metadata[LabelKey] = label

	return nil
}

// Label returns the display name of id, falling back to the id itself when no
// label was set or the vertex is unknown.
func (g *Graph) Label(id string) string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if v, ok := g.vertices[id]; ok {
		if s, ok := v.Metadata[LabelKey].(string); ok && s != "" {
			return s
		}
	}

	return id
}

// Vertices returns all vertex IDs sorted lex asc.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
