// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/safepath/core"
	"github.com/katalvlaran/safepath/frontier"
)

// Dijkstra computes least-cost paths from Options.Source over g.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. If set, g must contain Destination (ErrVertexNotFound).
//
// Algorithm:
//   - Stage 1: cost(source)=0, push source.
//   - Stage 2: loop: check ctx, pop min, skip settled, settle, stop at Destination,
//     relax every outgoing edge with cost(u)+w < cost(v).
//   - Stage 3: return the Result carrying the query-scoped maps.
//
// Errors from ctx are returned wrapped; partial results are discarded.
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Destination != "" && !g.HasVertex(cfg.Destination) {
		return nil, fmt.Errorf("%w: destination %q", ErrVertexNotFound, cfg.Destination)
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source:      cfg.Source,
			Destination: cfg.Destination,
			Dist:        make(map[string]float64, n),
			Prev:        make(map[string]string, n),
			PrevEdge:    make(map[string]string, n),
			settled:     make(map[string]struct{}, n),
		},
		pq: frontier.New(n),
	}

	start := time.Now()
	r.init()
	err := r.process(ctx)
	r.res.Stats.Elapsed = time.Since(start)
	r.res.Stats.Settled = len(r.res.settled)

	cfg.Logger.LogAttrs(ctx, levelFor(err), "dijkstra: search finished",
		slogAttrs(r.res, err)...)
	if err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	res     *Result
	pq      *frontier.Frontier
}

// init seeds the source with cost 0.
func (r *runner) init() {
	r.res.Dist[r.options.Source] = 0
	r.pq.Push(r.options.Source, 0)
	r.res.Stats.Pushes++
}

// process is the main loop. It terminates when the frontier is empty, when the
// destination is settled, or when ctx is done.
func (r *runner) process(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: search from %q aborted: %w", r.options.Source, err)
		}

		u, d, ok := r.pq.Pop()
		if !ok {
			return nil
		}
		r.res.Stats.Pops++

		if _, done := r.res.settled[u]; done {
			continue
		}
		if d > r.options.MaxDistance {
			return nil
		}
		r.res.settled[u] = struct{}{}

		if u == r.options.Destination {
			r.res.Stats.EarlyExit = true
			return nil
		}

		if err := r.relax(u, d); err != nil {
			return err
		}
	}
}

// relax examines each outgoing edge of the settled vertex u.
// Settled targets are skipped: their cost is final.
func (r *runner) relax(u string, du float64) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var (
		e    *core.Edge
		w    float64
		cand float64
	)
	for _, e = range edges {
		r.res.Stats.RelaxationAttempts++

		if _, done := r.res.settled[e.To]; done {
			continue
		}
		w = e.Weight()
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %s %s→%s weight=%g", ErrNegativeWeight, e.ID, e.From, e.To, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		cand = du + w
		if cand > r.options.MaxDistance {
			continue
		}
		if cur, seen := r.res.Dist[e.To]; seen && cand >= cur {
			continue
		}

		r.res.Dist[e.To] = cand
		r.res.Prev[e.To] = u
		r.res.PrevEdge[e.To] = e.ID
		r.res.Stats.RelaxedEdges++

		if r.pq.Contains(e.To) {
			if err = r.pq.DecreaseKey(e.To, cand); err != nil {
				return fmt.Errorf("dijkstra: frontier out of sync at %q: %w", e.To, err)
			}
			r.res.Stats.DecreaseKeys++
			continue
		}
		r.pq.Push(e.To, cand)
		r.res.Stats.Pushes++
	}

	return nil
}
