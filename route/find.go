// SPDX-License-Identifier: MIT

package route

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/safepath/core"
	"github.com/katalvlaran/safepath/dijkstra"
)

// Find computes the least-cost route from→to.
//
// Extra options are applied after Source and Destination; passing another
// Source or Destination overrides them and is not supported.
func Find(ctx context.Context, g *core.Graph, from, to string, opts ...dijkstra.Option) (*Route, error) {
	all := make([]dijkstra.Option, 0, len(opts)+2)
	all = append(all, dijkstra.Source(from), dijkstra.Destination(to))
	all = append(all, opts...)

	res, err := dijkstra.Dijkstra(ctx, g, all...)
	if err != nil {
		return nil, err
	}

	return Reconstruct(g, res, to)
}

// FindAll runs every query concurrently against g with at most workers
// searches in flight (workers <= 0 means one per query).
//
// Per-query failures such as ErrUnreachable are reported in the matching
// Outcome. Only cancellation of ctx aborts the whole batch, in which case the
// context error is returned.
func FindAll(ctx context.Context, g *core.Graph, queries []Query, workers int, opts ...dijkstra.Option) ([]Outcome, error) {
	out := make([]Outcome, len(queries))

	eg, egCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}

	for i, q := range queries {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			rt, err := Find(egCtx, g, q.From, q.To, opts...)
			out[i] = Outcome{Query: q, Route: rt, Err: err}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("route: batch aborted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("route: batch aborted: %w", err)
	}

	return out, nil
}
