// SPDX-License-Identifier: MIT

// Package route turns a dijkstra.Result into an ordered, fully attributed path
// and offers the one-call entry points used by the CLI and the HTTP service.
//
//	Reconstruct(g, res, destination) // predecessor walk → Route
//	Find(ctx, g, from, to, opts...)  // search + reconstruct
//	FindAll(ctx, g, queries, workers)// concurrent batch over one shared graph
//
// A Route lists its hops in travel order. Each hop carries the distance and
// safety score of the exact edge the search used, so parallel edges between
// the same pair are reported faithfully.
//
// Errors:
//
//   - ErrUnreachable:      no path from source to destination.
//   - ErrInconsistentPath: the predecessor chain is broken, cyclic, refers to a
//     missing edge, or its totals disagree with the search cost.
//   - dijkstra sentinels (ErrVertexNotFound, …) are passed through by Find.
package route
