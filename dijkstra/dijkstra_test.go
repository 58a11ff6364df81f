// SPDX-License-Identifier: MIT
// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation order, relaxation on directed graphs, MaxDistance, InfEdgeThreshold,
// early exit, cancellation and query isolation.
package dijkstra_test

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/safepath/core"
	"github.com/katalvlaran/safepath/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// campus returns the ten-segment network used throughout the project.
func campus(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		from, to string
		d, s     float64
	}{
		{"Mall", "C1", 10, 1.2},
		{"Mall", "C2", 20, 5.5},
		{"C1", "C3", 15, 2.3},
		{"C1", "C4", 30, 1.1},
		{"C2", "C3", 5, 7.0},
		{"C2", "C5", 25, 4.2},
		{"C3", "K12", 10, 1.0},
		{"C3", "C5", 10, 2.5},
		{"C4", "K12", 20, 1.3},
		{"C5", "K12", 15, 2.0},
	} {
		_, err := g.AddEdge(e.from, e.to, e.d, e.s)
		require.NoError(t, err)
	}
	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	ctx := context.Background()
	g := campus(t)

	_, err := dijkstra.Dijkstra(ctx, g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	// ErrEmptySource has priority over ErrNilGraph.
	_, err = dijkstra.Dijkstra(ctx, nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Dijkstra(ctx, nil, dijkstra.Source("Mall"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Dijkstra(ctx, g, dijkstra.Source("Nowhere"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.Dijkstra(ctx, g, dijkstra.Source("Mall"), dijkstra.Destination("Nowhere"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
}

// ------------------------------------------------------------------------
// 2. Costs and predecessors
// ------------------------------------------------------------------------

func TestDijkstra_Campus(t *testing.T) {
	res, err := dijkstra.Dijkstra(context.Background(), campus(t), dijkstra.Source("Mall"))
	require.NoError(t, err)

	want := map[string]float64{
		"Mall": 0,
		"C1":   11.2,
		"C2":   25.5,
		"C3":   28.5,
		"C4":   42.3,
		"C5":   41.0,
		"K12":  39.5,
	}
	for id, cost := range want {
		assert.InDelta(t, cost, res.Cost(id), 1e-9, id)
		assert.True(t, res.Settled(id), id)
	}
	assert.Equal(t, "C3", res.Prev["K12"])
	assert.Equal(t, "C1", res.Prev["C3"])
	assert.Equal(t, "Mall", res.Prev["C1"])
	_, _, ok := res.Predecessor("Mall")
	assert.False(t, ok, "source has no predecessor")

	assert.Equal(t, 7, res.Stats.Settled)
	assert.Equal(t, 10, res.Stats.RelaxationAttempts)
	assert.False(t, res.Stats.EarlyExit)
}

func TestDijkstra_DecreaseKeyPath(t *testing.T) {
	// B is first discovered at 10 and improved to 2 through C while queued.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 10, 0)
	_, _ = g.AddEdge("A", "C", 1, 0)
	_, _ = g.AddEdge("C", "B", 1, 0)

	res, err := dijkstra.Dijkstra(context.Background(), g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Cost("B"))
	assert.Equal(t, "C", res.Prev["B"])
	assert.Equal(t, 1, res.Stats.DecreaseKeys)
	assert.Equal(t, 3, res.Stats.Pops, "each vertex popped once")
}

func TestDijkstra_Directed(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1, 0)
	require.NoError(t, g.AddVertex("Z"))

	res, err := dijkstra.Dijkstra(context.Background(), g, dijkstra.Source("B"))
	require.NoError(t, err)
	assert.False(t, res.Reachable("A"), "edges are one-way")
	assert.False(t, res.Reachable("Z"))
	assert.True(t, math.IsInf(res.Cost("Z"), 1))
}

func TestDijkstra_ParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 5, 5)
	cheap, _ := g.AddEdge("A", "B", 1, 1)
	_, _ = g.AddEdge("A", "B", 3, 0)

	res, err := dijkstra.Dijkstra(context.Background(), g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Cost("B"))
	assert.Equal(t, cheap, res.PrevEdge["B"])
}

func TestDijkstra_SelfLoopIgnored(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "A", 1, 0)
	_, _ = g.AddEdge("A", "B", 2, 0)

	res, err := dijkstra.Dijkstra(context.Background(), g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Cost("A"))
	assert.Equal(t, 2.0, res.Cost("B"))
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	res, err := dijkstra.Dijkstra(context.Background(), campus(t),
		dijkstra.Source("Mall"), dijkstra.WithMaxDistance(30))
	require.NoError(t, err)

	assert.True(t, res.Reachable("C3"))
	assert.False(t, res.Reachable("K12"))
	assert.False(t, res.Reachable("C4"))
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// Everything heavier than 12 is a wall: only Mall→C1 and C3→K12 remain below it,
	// and C3 is unreachable without C1→C3 (17.3).
	res, err := dijkstra.Dijkstra(context.Background(), campus(t),
		dijkstra.Source("Mall"), dijkstra.WithInfEdgeThreshold(12))
	require.NoError(t, err)

	assert.True(t, res.Reachable("C1"))
	assert.False(t, res.Reachable("C3"))
	assert.False(t, res.Reachable("K12"))
}

func TestDijkstra_DestinationEarlyExit(t *testing.T) {
	res, err := dijkstra.Dijkstra(context.Background(), campus(t),
		dijkstra.Source("Mall"), dijkstra.Destination("C1"))
	require.NoError(t, err)

	assert.True(t, res.Stats.EarlyExit)
	assert.InDelta(t, 11.2, res.Cost("C1"), 1e-9)
	assert.Equal(t, 2, res.Stats.Settled)
	assert.False(t, res.Settled("K12"))
}

// ------------------------------------------------------------------------
// 4. Cancellation and isolation
// ------------------------------------------------------------------------

func TestDijkstra_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dijkstra.Dijkstra(ctx, campus(t), dijkstra.Source("Mall"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDijkstra_RepeatedQueriesIdentical(t *testing.T) {
	g := campus(t)
	first, err := dijkstra.Dijkstra(context.Background(), g, dijkstra.Source("Mall"))
	require.NoError(t, err)
	second, err := dijkstra.Dijkstra(context.Background(), g, dijkstra.Source("Mall"))
	require.NoError(t, err)

	assert.Equal(t, first.Dist, second.Dist)
	assert.Equal(t, first.Prev, second.Prev)
	assert.Equal(t, first.PrevEdge, second.PrevEdge)
}

func TestDijkstra_ConcurrentQueries(t *testing.T) {
	g := campus(t)
	sources := g.Vertices()

	want := make(map[string]map[string]float64, len(sources))
	for _, s := range sources {
		res, err := dijkstra.Dijkstra(context.Background(), g, dijkstra.Source(s))
		require.NoError(t, err)
		want[s] = res.Dist
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8*len(sources))
	for i := 0; i < 8; i++ {
		for _, s := range sources {
			wg.Add(1)
			go func(src string) {
				defer wg.Done()
				res, err := dijkstra.Dijkstra(context.Background(), g, dijkstra.Source(src))
				if err != nil {
					errs <- err
					return
				}
				for id, d := range want[src] {
					if res.Dist[id] != d {
						errs <- fmt.Errorf("%s→%s: got %g want %g", src, id, res.Dist[id], d)
						return
					}
				}
			}(s)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
