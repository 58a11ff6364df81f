// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Controller binds HTTP requests to a Servicer.
type Controller struct {
	service      Servicer
	validate     *validator.Validate
	errorHandler ErrorHandler
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithErrorHandler replaces the error handler.
func WithErrorHandler(h ErrorHandler) ControllerOption {
	return func(c *Controller) {
		c.errorHandler = h
	}
}

// NewController creates a Controller for s.
func NewController(s Servicer, eh ErrorHandler, opts ...ControllerOption) *Controller {
	c := &Controller{
		service:      s,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		errorHandler: eh,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Routes returns all routes served by the Controller.
func (c *Controller) Routes() Routes {
	return Routes{
		{"ComputeRoute", http.MethodPost, "/routes", c.ComputeRoute},
		{"ComputeBatch", http.MethodPost, "/routes/batch", c.ComputeBatch},
		{"GetNodes", http.MethodGet, "/nodes", c.GetNodes},
		{"Health", http.MethodGet, "/healthz", c.Health},
	}
}

// ComputeRoute - compute one route.
func (c *Controller) ComputeRoute(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	if !c.decode(w, r, &req) {
		return
	}
	result, err := c.service.ComputeRoute(r.Context(), req)
	c.respond(w, r, result, err)
}

// ComputeBatch - compute several routes concurrently.
func (c *Controller) ComputeBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !c.decode(w, r, &req) {
		return
	}
	result, err := c.service.ComputeBatch(r.Context(), req)
	c.respond(w, r, result, err)
}

// GetNodes - list vertices.
func (c *Controller) GetNodes(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetNodes(r.Context())
	c.respond(w, r, result, err)
}

// Health - liveness probe.
func (c *Controller) Health(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.Health(r.Context())
	c.respond(w, r, result, err)
}

// decode reads a JSON body into dst and validates it. It writes the error
// response itself and reports whether the handler may continue.
func (c *Controller) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	d := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	d.DisallowUnknownFields()
	if err := d.Decode(dst); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err})
		return false
	}
	if err := c.validate.Struct(dst); err != nil {
		c.errorHandler(w, r, &ValidationError{Err: err})
		return false
	}
	return true
}

func (c *Controller) respond(w http.ResponseWriter, r *http.Request, result ImplResponse, err error) {
	if err != nil {
		c.errorHandler(w, r, err)
		return
	}
	EncodeJSONResponse(w, result.Code, result.Body)
}
