// SPDX-License-Identifier: MIT
//
// impl_campus.go - the bundled campus network between The Mines Shopping Mall
// and Kolej 12.

package builder

import "github.com/katalvlaran/safepath/core"

// Vertex IDs of the campus network.
const (
	CampusMall = "Mall"
	CampusK12  = "K12"
)

// CampusEdges returns the ten directed segments of the campus network.
func CampusEdges() []EdgeSpec {
	return []EdgeSpec{
		{From: "Mall", To: "C1", Distance: 10, SafetyScore: 1.2},
		{From: "Mall", To: "C2", Distance: 20, SafetyScore: 5.5},
		{From: "C1", To: "C3", Distance: 15, SafetyScore: 2.3},
		{From: "C1", To: "C4", Distance: 30, SafetyScore: 1.1},
		{From: "C2", To: "C3", Distance: 5, SafetyScore: 7.0},
		{From: "C2", To: "C5", Distance: 25, SafetyScore: 4.2},
		{From: "C3", To: "K12", Distance: 10, SafetyScore: 1.0},
		{From: "C3", To: "C5", Distance: 10, SafetyScore: 2.5},
		{From: "C4", To: "K12", Distance: 20, SafetyScore: 1.3},
		{From: "C5", To: "K12", Distance: 15, SafetyScore: 2.0},
	}
}

// CampusLabels returns the street and landmark names of the campus vertices.
func CampusLabels() map[string]string {
	return map[string]string{
		"Mall": "The Mines Shopping Mall",
		"K12":  "Kolej 12",
		"C1":   "Jalan Sg Besi Indah",
		"C2":   "Jalan Anggrerik",
		"C3":   "Jalan Senja Residence",
		"C4":   "Jalan SILK",
		"C5":   "Jalan Cempaka",
	}
}

// Campus returns a Constructor adding the campus edges and labels.
func Campus() Constructor {
	edges, labels := EdgeList(CampusEdges()), Labels(CampusLabels())
	return func(g *core.Graph, cfg builderConfig) error {
		if err := edges(g, cfg); err != nil {
			return err
		}
		return labels(g, cfg)
	}
}
