// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/katalvlaran/safepath/core"
	"github.com/katalvlaran/safepath/dijkstra"
	"github.com/katalvlaran/safepath/internal/metrics"
	"github.com/katalvlaran/safepath/route"
)

// ServiceConfig tunes the Service.
type ServiceConfig struct {
	Timeout     time.Duration // per request; 0 disables
	Workers     int           // batch concurrency; 0 means one per query
	MaxBatch    int           // maximum queries per batch; 0 means unlimited
	MaxDistance float64       // default cost cap; 0 disables
}

// Service implements Servicer over one shared, read-only graph.
type Service struct {
	graph   *core.Graph
	metrics *metrics.Collector
	logger  *slog.Logger
	cfg     ServiceConfig
}

// NewService creates a Service. A nil collector disables metrics.
func NewService(g *core.Graph, m *metrics.Collector, logger *slog.Logger, cfg ServiceConfig) *Service {
	return &Service{graph: g, metrics: m, logger: logger, cfg: cfg}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, s.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

func (s *Service) searchOptions(maxDistance *float64) []dijkstra.Option {
	opts := []dijkstra.Option{dijkstra.WithLogger(s.logger)}
	switch {
	case maxDistance != nil:
		opts = append(opts, dijkstra.WithMaxDistance(*maxDistance))
	case s.cfg.MaxDistance > 0:
		opts = append(opts, dijkstra.WithMaxDistance(s.cfg.MaxDistance))
	}
	return opts
}

func (s *Service) observe(start time.Time, rt *route.Route, err error) {
	if s.metrics != nil {
		s.metrics.ObserveQuery(time.Since(start), rt, err)
	}
}

func (s *Service) labels(nodes []string) map[string]string {
	out := make(map[string]string, len(nodes))
	for _, id := range nodes {
		out[id] = s.graph.Label(id)
	}
	return out
}

// ComputeRoute runs one search.
func (s *Service) ComputeRoute(ctx context.Context, req RouteRequest) (ImplResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	rt, err := route.Find(ctx, s.graph, req.From, req.To, s.searchOptions(req.MaxDistance)...)
	s.observe(start, rt, err)
	if err != nil {
		return ImplResponse{}, err
	}

	return Response(http.StatusOK, RouteResponse{
		RequestID: RequestID(ctx),
		Route:     rt,
		Labels:    s.labels(rt.Nodes),
	}), nil
}

// ComputeBatch runs every query of req concurrently.
func (s *Service) ComputeBatch(ctx context.Context, req BatchRequest) (ImplResponse, error) {
	if s.cfg.MaxBatch > 0 && len(req.Queries) > s.cfg.MaxBatch {
		return ImplResponse{}, fmt.Errorf("%w: %d queries, limit %d", ErrBatchTooLarge, len(req.Queries), s.cfg.MaxBatch)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	outcomes, err := route.FindAll(ctx, s.graph, req.Queries, s.cfg.Workers, s.searchOptions(nil)...)
	if err != nil {
		s.observe(start, nil, err)
		return ImplResponse{}, err
	}

	resp := BatchResponse{RequestID: RequestID(ctx), Results: make([]BatchItem, len(outcomes))}
	for i, o := range outcomes {
		s.observe(start, o.Route, o.Err)
		item := BatchItem{From: o.Query.From, To: o.Query.To, Route: o.Route}
		if o.Err != nil {
			item.Error = o.Err.Error()
		}
		resp.Results[i] = item
	}

	return Response(http.StatusOK, resp), nil
}

// GetNodes lists all vertices with their labels.
func (s *Service) GetNodes(context.Context) (ImplResponse, error) {
	ids := s.graph.Vertices()
	nodes := make([]Node, len(ids))
	for i, id := range ids {
		nodes[i] = Node{ID: id, Label: s.graph.Label(id)}
	}
	return Response(http.StatusOK, NodesResponse{Nodes: nodes}), nil
}

// Health reports network size and whether parallel segments are allowed.
func (s *Service) Health(context.Context) (ImplResponse, error) {
	st := s.graph.Stats()
	return Response(http.StatusOK, HealthResponse{
		Status:     "ok",
		Vertices:   st.VertexCount,
		Edges:      st.EdgeCount,
		MultiEdges: s.graph.Multigraph(),
	}), nil
}
