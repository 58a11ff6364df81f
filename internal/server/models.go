// SPDX-License-Identifier: MIT

package server

import "github.com/katalvlaran/safepath/route"

// RouteRequest asks for the least-cost route between two vertices.
type RouteRequest struct {
	From        string   `json:"from" validate:"required"`
	To          string   `json:"to" validate:"required"`
	MaxDistance *float64 `json:"max_distance,omitempty" validate:"omitempty,gte=0"`
}

// BatchRequest asks for several independent routes.
type BatchRequest struct {
	Queries []route.Query `json:"queries" validate:"required,min=1,dive"`
}

// RouteResponse is the body of a successful route computation.
type RouteResponse struct {
	RequestID string            `json:"request_id"`
	Route     *route.Route      `json:"route"`
	Labels    map[string]string `json:"labels"`
}

// BatchItem is one entry of a BatchResponse; exactly one of Route and Error is set.
type BatchItem struct {
	From  string       `json:"from"`
	To    string       `json:"to"`
	Route *route.Route `json:"route,omitempty"`
	Error string       `json:"error,omitempty"`
}

// BatchResponse is the body of a batch computation.
type BatchResponse struct {
	RequestID string      `json:"request_id"`
	Results   []BatchItem `json:"results"`
}

// Node is one vertex of the network.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// NodesResponse lists the network's vertices.
type NodesResponse struct {
	Nodes []Node `json:"nodes"`
}

// HealthResponse reports liveness and network size.
type HealthResponse struct {
	Status     string `json:"status"`
	Vertices   int    `json:"vertices"`
	Edges      int    `json:"edges"`
	MultiEdges bool   `json:"multi_edges"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}
