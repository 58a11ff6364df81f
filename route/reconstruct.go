// SPDX-License-Identifier: MIT

package route

import (
	"fmt"
	"math"

	"github.com/katalvlaran/safepath/core"
	"github.com/katalvlaran/safepath/dijkstra"
)

// costTolerance bounds the relative float drift between the search cost and
// the separately summed distance and safety totals.
const costTolerance = 1e-9

// Reconstruct walks res.Prev from destination back to res.Source, reverses the
// chain and attributes every hop with the edge recorded in res.PrevEdge.
//
// Steps:
//  0. destination unknown to g → dijkstra.ErrVertexNotFound.
//  1. destination == source → empty route with zero totals.
//  2. search stopped early before settling destination → ErrNotSettled;
//     destination not reached → ErrUnreachable.
//  3. Walk predecessors; more steps than discovered vertices → ErrInconsistentPath.
//  4. Per hop, resolve the edge (by ID, else cheapest From→To); none → ErrInconsistentPath.
//  5. Check TotalDistance+TotalSafetyScore against res.Cost(destination).
//
// Complexity: O(L) for a path of L hops.
func Reconstruct(g *core.Graph, res *dijkstra.Result, destination string) (*Route, error) {
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}
	if res == nil {
		return nil, fmt.Errorf("%w: nil search result", ErrInconsistentPath)
	}

	if !g.HasVertex(destination) {
		return nil, fmt.Errorf("%w: destination %q", dijkstra.ErrVertexNotFound, destination)
	}

	rt := &Route{
		Source:      res.Source,
		Destination: destination,
		Stats:       res.Stats,
	}
	if destination == res.Source {
		rt.Nodes = []string{destination}
		rt.Hops = []Hop{}
		return rt, nil
	}
	if res.Stats.EarlyExit && !res.Settled(destination) {
		return nil, fmt.Errorf("%w: search from %q stopped at %q", ErrNotSettled, res.Source, res.Destination)
	}
	if !res.Reachable(destination) {
		return nil, fmt.Errorf("%w: %s→%s", ErrUnreachable, res.Source, destination)
	}

	// Collect vertices from destination back to source.
	limit := len(res.Dist)
	rev := []string{destination}
	for cur := destination; cur != res.Source; {
		prev, ok := res.Prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no predecessor", ErrInconsistentPath, cur)
		}
		rev = append(rev, prev)
		if len(rev) > limit {
			return nil, fmt.Errorf("%w: predecessor cycle at %q", ErrInconsistentPath, prev)
		}
		cur = prev
	}

	rt.Nodes = make([]string, len(rev))
	for i, id := range rev {
		rt.Nodes[len(rev)-1-i] = id
	}

	rt.Hops = make([]Hop, 0, len(rt.Nodes)-1)
	for i := 1; i < len(rt.Nodes); i++ {
		from, to := rt.Nodes[i-1], rt.Nodes[i]
		e, err := hopEdge(g, res.PrevEdge[to], from, to)
		if err != nil {
			return nil, err
		}
		rt.Hops = append(rt.Hops, Hop{
			From:        from,
			To:          to,
			EdgeID:      e.ID,
			Distance:    e.Distance,
			SafetyScore: e.SafetyScore,
		})
		rt.TotalDistance += e.Distance
		rt.TotalSafetyScore += e.SafetyScore
	}

	rt.Cost = res.Cost(destination)
	sum := rt.TotalDistance + rt.TotalSafetyScore
	if math.Abs(sum-rt.Cost) > costTolerance*math.Max(1, rt.Cost) {
		return nil, fmt.Errorf("%w: hop totals %g differ from search cost %g", ErrInconsistentPath, sum, rt.Cost)
	}

	return rt, nil
}

// hopEdge resolves the edge used for from→to. The recorded edge ID wins when it
// still matches the endpoints; otherwise the cheapest from→to edge is used.
func hopEdge(g *core.Graph, edgeID, from, to string) (*core.Edge, error) {
	if edgeID != "" {
		if e, err := g.GetEdge(edgeID); err == nil && e.From == from && e.To == to {
			return e, nil
		}
	}

	var best *core.Edge
	for _, e := range g.EdgesBetween(from, to) {
		if best == nil || e.Weight() < best.Weight() {
			best = e
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: no edge %s→%s", ErrInconsistentPath, from, to)
	}

	return best, nil
}
