// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/safepath/dijkstra"
	"github.com/katalvlaran/safepath/internal/report"
	"github.com/katalvlaran/safepath/route"
)

func newFindCmd(a *app) *cobra.Command {
	var (
		asJSON      bool
		maxDistance float64
	)

	cmd := &cobra.Command{
		Use:   "find [FROM TO]",
		Short: "Print the safest route between two vertices",
		Long: `find prints the least-cost route from FROM to TO. Without arguments the
configured source and destination are used.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("find: expected 0 or 2 arguments, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := a.cfg.Query.Source, a.cfg.Query.Destination
			if len(args) == 2 {
				from, to = args[0], args[1]
			}
			if maxDistance < 0 {
				return fmt.Errorf("find: --max-distance must be non-negative, got %g", maxDistance)
			}
			if maxDistance == 0 {
				maxDistance = a.cfg.Query.MaxDistance
			}

			g, err := a.graph()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if a.cfg.Query.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, a.cfg.Query.Timeout)
				defer cancel()
			}

			opts := []dijkstra.Option{dijkstra.WithLogger(a.logger)}
			if maxDistance > 0 {
				opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
			}
			rt, err := route.Find(ctx, g, from, to, opts...)
			if err != nil {
				return err
			}
			a.logger.Info("route found",
				"from", from, "to", to, "hops", len(rt.Hops), "cost", rt.Cost, "elapsed", rt.Stats.Elapsed)

			if asJSON {
				return report.JSON(cmd.OutOrStdout(), rt, g)
			}
			return report.Text(cmd.OutOrStdout(), rt, g)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the route as JSON")
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "ignore routes whose cost exceeds this value (0 uses the configured cap)")
	return cmd
}
