// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"log/slog"
	"math"
	"time"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or destination is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was met during relaxation.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// Destination      – optional target; the search stops once it is settled.
// MaxDistance      – vertices whose cost would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
//
// Logger           – receives a Debug record per search. Default discards.
type Options struct {
	Source           string
	Destination      string
	MaxDistance      float64
	InfEdgeThreshold float64
	Logger           *slog.Logger
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be supplied.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Destination sets a target vertex. The search stops as soon as the target is
// settled. Vertices still queued at that point keep tentative costs in Dist;
// only those reported by Result.Settled are final.
func Destination(id string) Option {
	return func(o *Options) {
		o.Destination = id
	}
}

// WithMaxDistance sets a maximum cost threshold.
// Vertices whose cost would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// non-traversable. Panics with ErrBadInfThreshold on a non-positive or NaN value.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger routes search diagnostics to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options initialized with defaults for the given source.
//
// Defaults:
//   - Destination:      "" (explore everything reachable).
//   - MaxDistance:      +Inf.
//   - InfEdgeThreshold: +Inf.
//   - Logger:           discards all records.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Logger:           slog.New(slog.DiscardHandler),
	}
}

// Stats are the per-run counters of a search.
type Stats struct {
	Pops               int           // frontier extractions
	Pushes             int           // new frontier entries
	DecreaseKeys       int           // in-place priority decreases
	RelaxationAttempts int           // edges examined
	RelaxedEdges       int           // edges that improved a cost
	Settled            int           // vertices with a final cost
	EarlyExit          bool          // stopped at the destination
	Elapsed            time.Duration // wall time of the search loop
}

// Result is the query-scoped outcome of one search.
//
// Dist holds the best known cost of every discovered vertex; Prev and PrevEdge
// hold, for each discovered vertex other than the source, the predecessor
// vertex and the ID of the edge used to reach it.
type Result struct {
	Source      string
	Destination string
	Dist        map[string]float64
	Prev        map[string]string
	PrevEdge    map[string]string
	Stats       Stats

	settled map[string]struct{}
}

// Cost returns the best known cost of id, or +Inf if id was never reached.
// After an early exit the value is final only when Settled(id) holds.
func (r *Result) Cost(id string) float64 {
	if d, ok := r.Dist[id]; ok {
		return d
	}
	return math.Inf(1)
}

// Reachable reports whether a finite-cost path from the source to id was found.
func (r *Result) Reachable(id string) bool {
	return !math.IsInf(r.Cost(id), 1)
}

// Settled reports whether the cost of id is final.
func (r *Result) Settled(id string) bool {
	_, ok := r.settled[id]
	return ok
}

// Predecessor returns the vertex before id on its best path and the edge used.
// ok is false for the source and for vertices never reached.
func (r *Result) Predecessor(id string) (vertex, edgeID string, ok bool) {
	vertex, ok = r.Prev[id]
	if !ok {
		return "", "", false
	}
	return vertex, r.PrevEdge[id], true
}
