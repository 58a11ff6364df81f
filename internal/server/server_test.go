// SPDX-License-Identifier: MIT

package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/safepath/builder"
	"github.com/katalvlaran/safepath/core"
	"github.com/katalvlaran/safepath/internal/config"
	"github.com/katalvlaran/safepath/internal/metrics"
	"github.com/katalvlaran/safepath/internal/server"
)

func newHandler(t *testing.T, cfg server.ServiceConfig) http.Handler {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Campus())
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	m := metrics.New(nil)
	svc := server.NewService(g, m, logger, cfg)
	ctrl := server.NewController(svc, server.DefaultErrorHandler(logger))
	return server.NewRouter(logger, m.Handler(), ctrl)
}

func do(t *testing.T, h http.Handler, method, path, body string, hdr ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestComputeRoute(t *testing.T) {
	h := newHandler(t, server.ServiceConfig{Timeout: time.Second})
	rec := do(t, h, http.MethodPost, "/routes", `{"from":"Mall","to":"K12"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	id := rec.Header().Get(server.HeaderRequestID)
	_, err := uuid.Parse(id)
	require.NoError(t, err, "generated request IDs are UUIDs")

	var resp server.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.RequestID)
	assert.Equal(t, []string{"Mall", "C1", "C3", "K12"}, resp.Route.Nodes)
	assert.InDelta(t, 35.0, resp.Route.TotalDistance, 1e-9)
	assert.InDelta(t, 4.5, resp.Route.TotalSafetyScore, 1e-9)
	assert.Equal(t, "Kolej 12", resp.Labels["K12"])
}

func TestComputeRoute_EchoesRequestID(t *testing.T) {
	h := newHandler(t, server.ServiceConfig{})
	rec := do(t, h, http.MethodPost, "/routes", `{"from":"Mall","to":"C1"}`, server.HeaderRequestID, "trace-123")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-123", rec.Header().Get(server.HeaderRequestID))
}

func TestComputeRoute_Errors(t *testing.T) {
	h := newHandler(t, server.ServiceConfig{})
	cases := []struct {
		name string
		body string
		code int
	}{
		{"unreachable", `{"from":"K12","to":"Mall"}`, http.StatusUnprocessableEntity},
		{"unknown node", `{"from":"Mall","to":"Atlantis"}`, http.StatusNotFound},
		{"capped", `{"from":"Mall","to":"K12","max_distance":30}`, http.StatusUnprocessableEntity},
		{"malformed", `{"from":`, http.StatusBadRequest},
		{"unknown field", `{"from":"Mall","to":"K12","via":"C2"}`, http.StatusBadRequest},
		{"missing to", `{"from":"Mall"}`, http.StatusBadRequest},
		{"negative cap", `{"from":"Mall","to":"K12","max_distance":-1}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/routes", tc.body)
			assert.Equal(t, tc.code, rec.Code, rec.Body.String())

			var resp server.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, rec.Header().Get(server.HeaderRequestID), resp.RequestID)
		})
	}
}

func TestComputeBatch(t *testing.T) {
	h := newHandler(t, server.ServiceConfig{Workers: 2, MaxBatch: 3})
	rec := do(t, h, http.MethodPost, "/routes/batch",
		`{"queries":[{"from":"Mall","to":"K12"},{"from":"K12","to":"Mall"}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp server.BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.InDelta(t, 39.5, resp.Results[0].Route.Cost, 1e-9)
	assert.Empty(t, resp.Results[0].Error)
	assert.Nil(t, resp.Results[1].Route)
	assert.Contains(t, resp.Results[1].Error, "unreachable")

	rec = do(t, h, http.MethodPost, "/routes/batch",
		`{"queries":[{"from":"A","to":"B"},{"from":"A","to":"B"},{"from":"A","to":"B"},{"from":"A","to":"B"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/routes/batch", `{"queries":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/routes/batch", `{"queries":[{"from":"Mall"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetNodesAndHealth(t *testing.T) {
	h := newHandler(t, server.ServiceConfig{})

	rec := do(t, h, http.MethodGet, "/nodes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var nodes server.NodesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nodes))
	require.Len(t, nodes.Nodes, 7)
	assert.Equal(t, server.Node{ID: "C1", Label: "Jalan Sg Besi Indah"}, nodes.Nodes[0])

	rec = do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var health server.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, server.HealthResponse{Status: "ok", Vertices: 7, Edges: 10}, health)

	rec = do(t, h, http.MethodGet, "/routes", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealth_ReportsMultiEdges(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithMultiEdges()}, nil, builder.EdgeList([]builder.EdgeSpec{
		{From: "A", To: "B", Distance: 1, SafetyScore: 2},
		{From: "A", To: "B", Distance: 2, SafetyScore: 0},
	}))
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	svc := server.NewService(g, nil, logger, server.ServiceConfig{})
	h := server.NewRouter(logger, nil, server.NewController(svc, server.DefaultErrorHandler(logger)))

	rec := do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var health server.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, server.HealthResponse{Status: "ok", Vertices: 2, Edges: 2, MultiEdges: true}, health)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newHandler(t, server.ServiceConfig{})
	do(t, h, http.MethodPost, "/routes", `{"from":"Mall","to":"K12"}`)
	do(t, h, http.MethodPost, "/routes", `{"from":"K12","to":"Mall"}`)

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `safepath_queries_total{outcome="ok"} 1`)
	assert.Contains(t, body, `safepath_queries_total{outcome="unreachable"} 1`)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusGatewayTimeout, server.StatusFor(context.DeadlineExceeded))
	assert.Equal(t, http.StatusInternalServerError, server.StatusFor(io.ErrUnexpectedEOF))
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := server.New(config.ServerConfig{Addr: "127.0.0.1:0"}, http.NotFoundHandler(), slog.New(slog.DiscardHandler))

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
