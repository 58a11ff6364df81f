// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's single-source shortest-path search over a
// core.Graph whose edge weight is Distance + SafetyScore.
//
// Overview:
//
//   - Vertices are settled in order of increasing cost from the source using the
//     indexed min-heap from package frontier, so an improved cost lowers the
//     vertex's existing heap entry instead of pushing a duplicate.
//   - All per-query state (costs, predecessors, settled markers) lives in the
//     returned Result. The graph is only read, so any number of searches may run
//     concurrently over one graph.
//   - Once a vertex is settled it is final: later relaxations never touch it.
//
// Key features:
//
//   - Functional options: Source (required), Destination (early exit once the
//     destination is settled), WithMaxDistance, WithInfEdgeThreshold, WithLogger.
//   - Cancellation: the context is checked at every frontier extraction.
//   - Stats: heap and relaxation counters for each run, exported as metrics by
//     the service layer.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V); each vertex is pushed and popped at most once.
//   - Space: O(V) for the query-scoped maps and the frontier.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     Source option missing or empty.
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  source or destination is not part of the graph.
//   - ErrNegativeWeight:  an edge with a negative or NaN weight was met during relaxation.
//   - ErrBadMaxDistance:  WithMaxDistance received a negative or NaN value (panics).
//   - ErrBadInfThreshold: WithInfEdgeThreshold received a non-positive value (panics).
//
// An unreachable destination is not an error at this level; Result.Reachable
// reports it and package route turns it into route.ErrUnreachable.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(ctx, g, dijkstra.Source("Mall"), dijkstra.Destination("K12"))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("cost=%.2f via %s\n", res.Cost("K12"), res.Prev["K12"])
package dijkstra
