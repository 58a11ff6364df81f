// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"errors"
	"log/slog"
)

// levelFor keeps routine searches at Debug and surfaces failures at Warn.
// Cancellation is the caller's decision and stays at Debug.
func levelFor(err error) slog.Level {
	switch {
	case err == nil:
		return slog.LevelDebug
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}

func slogAttrs(res *Result, err error) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("source", res.Source),
		slog.Int("pops", res.Stats.Pops),
		slog.Int("relaxed_edges", res.Stats.RelaxedEdges),
		slog.Int("settled", res.Stats.Settled),
		slog.Duration("elapsed", res.Stats.Elapsed),
	}
	if res.Destination != "" {
		attrs = append(attrs,
			slog.String("destination", res.Destination),
			slog.Bool("early_exit", res.Stats.EarlyExit))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	return attrs
}
