// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/safepath/internal/config"
)

// shutdownGrace bounds graceful shutdown.
const shutdownGrace = 5 * time.Second

// NewRouter registers every route of routers plus /metrics (when metricsHandler
// is non-nil) on a new mux.Router with request-ID and logging middleware.
func NewRouter(logger *slog.Logger, metricsHandler http.Handler, routers ...Router) *mux.Router {
	r := mux.NewRouter().StrictSlash(true)
	r.Use(withRequestID, withLogging(logger))

	for _, api := range routers {
		for _, rt := range api.Routes() {
			r.Methods(rt.Method).Path(rt.Pattern).Name(rt.Name).Handler(rt.HandlerFunc)
		}
	}
	if metricsHandler != nil {
		r.Methods(http.MethodGet).Path("/metrics").Name("Metrics").Handler(metricsHandler)
	}

	return r
}

// Server wraps an http.Server with context-driven shutdown.
type Server struct {
	http   *http.Server
	logger *slog.Logger
}

// New creates a Server for handler using cfg.
func New(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:         cfg.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
	}
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.http.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen %s: %w", s.http.Addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
