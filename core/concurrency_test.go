// SPDX-License-Identifier: MIT
// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/safepath/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls all land in the
// source's adjacency with unique IDs.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make(chan error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			if _, err := g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id), 0); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)

	ids := make(map[string]struct{}, num)
	for _, e := range nbs {
		ids[e.ID] = struct{}{}
	}
	require.Len(t, ids, num, "edge IDs must be unique")
}

// TestConcurrentReaders runs readers against a concurrent writer; the race
// detector is the real assertion here.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddVertex("Base"))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, _ = g.AddEdge("Base", fmt.Sprintf("V%d", i%10), 1, 1)
		}
	}()
	for r := 0; r < 50; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = g.Neighbors("Base")
			_ = g.Vertices()
			_ = g.Stats()
			_ = g.Label("Base")
		}()
	}
	wg.Wait()
	require.Equal(t, 100, g.EdgeCount())
}
