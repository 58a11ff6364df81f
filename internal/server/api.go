// SPDX-License-Identifier: MIT

// Package server exposes route planning over HTTP.
//
// Layout follows the controller/service split: a Controller decodes and
// validates requests and writes responses, a Servicer does the work and
// returns an ImplResponse. Routes are registered on a gorilla/mux router.
package server

import (
	"context"
	"net/http"
)

// Route binds one HTTP method and path pattern to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Routes is the list of routes a Router serves.
type Routes []Route

// Router is implemented by controllers that contribute routes.
type Router interface {
	Routes() Routes
}

// Servicer is the route-planning API behind the controller.
type Servicer interface {
	ComputeRoute(context.Context, RouteRequest) (ImplResponse, error)
	ComputeBatch(context.Context, BatchRequest) (ImplResponse, error)
	GetNodes(context.Context) (ImplResponse, error)
	Health(context.Context) (ImplResponse, error)
}

// ImplResponse is a service result: status code and JSON body.
type ImplResponse struct {
	Code int
	Body interface{}
}

// Response builds an ImplResponse.
func Response(code int, body interface{}) ImplResponse {
	return ImplResponse{Code: code, Body: body}
}
