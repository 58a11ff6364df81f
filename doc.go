// SPDX-License-Identifier: MIT

// Package safepath finds the safest route through a directed road network.
//
// Every road segment carries two non-negative attributes, a physical
// distance and a safety score where lower is safer. The combined edge cost is
// their sum, and a route is optimal when its total combined cost is minimal.
//
// The module is organised in layers:
//
//	core/      thread-safe directed multigraph with weighted, labelled vertices
//	frontier/  indexed min-priority queue with decrease-key
//	dijkstra/  single-source search producing distances and predecessors
//	route/     path reconstruction, single and batch queries
//	builder/   network constructors, including the bundled campus network
//	internal/  configuration, logging, metrics, report rendering and HTTP
//	cmd/       the safepath command line
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Campus())
//	rt, err := route.Find(ctx, g, builder.CampusMall, builder.CampusK12)
//	if err != nil {
//		// route.ErrUnreachable, dijkstra.ErrVertexNotFound, ...
//	}
//	_ = report.Text(os.Stdout, rt, g)
package safepath
