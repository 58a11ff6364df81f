// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/katalvlaran/safepath/dijkstra"
	"github.com/katalvlaran/safepath/route"
)

// ErrBatchTooLarge is returned when a batch exceeds the configured limit.
var ErrBatchTooLarge = errors.New("server: batch too large")

// ParsingError wraps a request body that could not be decoded.
type ParsingError struct {
	Err error
}

func (e *ParsingError) Error() string { return "parsing error: " + e.Err.Error() }
func (e *ParsingError) Unwrap() error { return e.Err }

// ValidationError wraps a request that failed field validation.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return "validation error: " + e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// ErrorHandler writes an error response.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// StatusFor maps an error onto an HTTP status code.
func StatusFor(err error) int {
	var pe *ParsingError
	var ve *ValidationError
	switch {
	case errors.As(err, &pe), errors.As(err, &ve), errors.Is(err, ErrBatchTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, dijkstra.ErrVertexNotFound):
		return http.StatusNotFound
	case errors.Is(err, route.ErrUnreachable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return 499 // client closed request
	default:
		return http.StatusInternalServerError
	}
}

// DefaultErrorHandler writes ErrorResponse JSON with the status from StatusFor
// and logs server-side failures.
func DefaultErrorHandler(logger *slog.Logger) ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		code := StatusFor(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(r.Context(), "request failed",
				"request_id", RequestID(r.Context()), "path", r.URL.Path, "error", err)
		}
		EncodeJSONResponse(w, code, ErrorResponse{RequestID: RequestID(r.Context()), Error: err.Error()})
	}
}

// EncodeJSONResponse writes body as JSON with the given status.
func EncodeJSONResponse(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(code)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}
