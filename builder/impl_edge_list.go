// SPDX-License-Identifier: MIT
//
// impl_edge_list.go - explicit networks: EdgeList and Labels constructors.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/safepath/core"
)

const (
	methodEdgeList = "EdgeList"
	methodLabels   = "Labels"
)

// EdgeSpec describes one directed road segment.
type EdgeSpec struct {
	From        string
	To          string
	Distance    float64
	SafetyScore float64
}

// EdgeList returns a Constructor adding every spec in order.
// Attribute validation is delegated to core.AddEdge (core.ErrInvalidWeight).
func EdgeList(specs []EdgeSpec) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i, s := range specs {
			if s.From == "" || s.To == "" {
				return fmt.Errorf("%s: edge #%d %q→%q: %w", methodEdgeList, i, s.From, s.To, ErrBadEdgeSpec)
			}
			if _, err := g.AddEdge(s.From, s.To, s.Distance, s.SafetyScore); err != nil {
				return fmt.Errorf("%s: edge #%d: %w", methodEdgeList, i, err)
			}
		}
		return nil
	}
}

// Labels returns a Constructor attaching display names to existing vertices.
// Labels are applied in sorted ID order; an unknown ID fails with ErrConstructFailed.
func Labels(labels map[string]string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		ids := make([]string, 0, len(labels))
		for id := range labels {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			if !g.HasVertex(id) {
				return fmt.Errorf("%s: label for unknown vertex %q: %w", methodLabels, id, ErrConstructFailed)
			}
			if err := g.SetLabel(id, labels[id]); err != nil {
				return fmt.Errorf("%s: %w", methodLabels, err)
			}
		}
		return nil
	}
}
