// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/safepath/internal/metrics"
	"github.com/katalvlaran/safepath/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve route queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			g, err := a.graph()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			m := metrics.New(nil)
			svc := server.NewService(g, m, a.logger, server.ServiceConfig{
				Timeout:     a.cfg.Query.Timeout,
				Workers:     a.cfg.Query.Workers,
				MaxBatch:    a.cfg.Server.MaxBatch,
				MaxDistance: a.cfg.Query.MaxDistance,
			})
			router := server.NewRouter(a.logger, m.Handler(),
				server.NewController(svc, server.DefaultErrorHandler(a.logger)))

			return server.New(a.cfg.Server, router, a.logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides the configured one")
	return cmd
}
