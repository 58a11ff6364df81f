// SPDX-License-Identifier: MIT
package metrics_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/safepath/dijkstra"
	"github.com/katalvlaran/safepath/internal/metrics"
	"github.com/katalvlaran/safepath/route"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, metrics.OutcomeOK, metrics.Classify(nil))
	assert.Equal(t, metrics.OutcomeUnreachable, metrics.Classify(fmt.Errorf("x: %w", route.ErrUnreachable)))
	assert.Equal(t, metrics.OutcomeUnknownNode, metrics.Classify(dijkstra.ErrVertexNotFound))
	assert.Equal(t, metrics.OutcomeCancelled, metrics.Classify(context.DeadlineExceeded))
	assert.Equal(t, metrics.OutcomeError, metrics.Classify(errors.New("boom")))
}

func counterValue(t *testing.T, c *metrics.Collector, name, outcome string) float64 {
	t.Helper()
	families, err := c.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelValue(m, "outcome") == outcome {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

func TestObserveQuery(t *testing.T) {
	c := metrics.New(nil)
	rt := &route.Route{Hops: make([]route.Hop, 3), Stats: dijkstra.Stats{Pops: 5, RelaxedEdges: 4}}

	c.ObserveQuery(time.Millisecond, rt, nil)
	c.ObserveQuery(time.Millisecond, rt, nil)
	c.ObserveQuery(time.Millisecond, nil, route.ErrUnreachable)

	assert.Equal(t, 2.0, counterValue(t, c, "safepath_queries_total", metrics.OutcomeOK))
	assert.Equal(t, 1.0, counterValue(t, c, "safepath_queries_total", metrics.OutcomeUnreachable))
}

func TestHandler(t *testing.T) {
	c := metrics.New(nil)
	c.ObserveQuery(time.Millisecond, nil, nil)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "safepath_queries_total")
}
