// SPDX-License-Identifier: MIT

package route

import (
	"errors"

	"github.com/katalvlaran/safepath/dijkstra"
)

var (
	// ErrUnreachable indicates that the destination cannot be reached from the source.
	ErrUnreachable = errors.New("route: destination unreachable")

	// ErrInconsistentPath indicates that search state and graph disagree.
	ErrInconsistentPath = errors.New("route: inconsistent path data")

	// ErrNotSettled indicates that the search stopped at another destination
	// before the cost of the requested vertex became final.
	ErrNotSettled = errors.New("route: destination not settled")
)

// Hop is one traversed edge.
type Hop struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	EdgeID      string  `json:"edge_id"`
	Distance    float64 `json:"distance"`
	SafetyScore float64 `json:"safety_score"`
}

// Route is the reconstructed least-cost path.
//
// For Source == Destination, Nodes holds the single vertex and Hops is empty.
type Route struct {
	Source           string         `json:"source"`
	Destination      string         `json:"destination"`
	Nodes            []string       `json:"nodes"`
	Hops             []Hop          `json:"hops"`
	TotalDistance    float64        `json:"total_distance"`
	TotalSafetyScore float64        `json:"total_safety_score"`
	Cost             float64        `json:"cost"`
	Stats            dijkstra.Stats `json:"-"`
}

// Query is one source/destination pair of a batch.
type Query struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

// Outcome pairs a batch Query with its Route or error.
type Outcome struct {
	Query Query
	Route *Route
	Err   error
}
