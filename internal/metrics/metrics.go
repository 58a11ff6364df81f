// SPDX-License-Identifier: MIT

// Package metrics exports Prometheus collectors for route queries.
//
// Every collector lives on a caller-supplied registry so tests and embedded
// uses never touch the global default registry.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/safepath/dijkstra"
	"github.com/katalvlaran/safepath/route"
)

// Query outcomes used as the "outcome" label.
const (
	OutcomeOK          = "ok"
	OutcomeUnreachable = "unreachable"
	OutcomeUnknownNode = "unknown_node"
	OutcomeCancelled   = "cancelled"
	OutcomeError       = "error"
)

// Collector groups the query metrics.
type Collector struct {
	registry *prometheus.Registry

	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	pops     prometheus.Histogram
	relaxed  prometheus.Histogram
	hops     prometheus.Histogram
}

// New registers the collectors on reg, or on a fresh registry when reg is nil.
func New(reg *prometheus.Registry) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Collector{
		registry: reg,
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "safepath_queries_total",
			Help: "Route queries by outcome",
		}, []string{"outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "safepath_query_duration_seconds",
			Help:    "Route query latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"outcome"}),
		pops: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "safepath_frontier_pops",
			Help:    "Frontier extractions per query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		relaxed: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "safepath_relaxed_edges",
			Help:    "Edges that improved a cost per query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		hops: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "safepath_route_hops",
			Help:    "Hops per returned route",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64, 128},
		}),
	}
}

// Classify maps a query error onto an outcome label.
func Classify(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, route.ErrUnreachable):
		return OutcomeUnreachable
	case errors.Is(err, dijkstra.ErrVertexNotFound), errors.Is(err, dijkstra.ErrEmptySource):
		return OutcomeUnknownNode
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	default:
		return OutcomeError
	}
}

// ObserveQuery records one query. rt may be nil for failed queries.
func (c *Collector) ObserveQuery(elapsed time.Duration, rt *route.Route, err error) {
	outcome := Classify(err)
	c.queries.WithLabelValues(outcome).Inc()
	c.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	if rt == nil {
		return
	}
	c.pops.Observe(float64(rt.Stats.Pops))
	c.relaxed.Observe(float64(rt.Stats.RelaxedEdges))
	c.hops.Observe(float64(len(rt.Hops)))
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
