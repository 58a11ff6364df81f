// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/safepath/builder"
	"github.com/katalvlaran/safepath/core"
	"github.com/katalvlaran/safepath/internal/config"
	"github.com/katalvlaran/safepath/internal/logging"
)

// app carries global flags and the state loaded from them.
type app struct {
	configPath string
	envFiles   []string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "safepath",
		Short: "Find the safest route through a road network",
		Long: `safepath runs Dijkstra's algorithm over a directed road network where
every segment carries a distance and a safety score, and reports the route
with the lowest combined cost.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.load() },
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "path to a YAML configuration file")
	pf.StringSliceVar(&a.envFiles, "env-file", []string{".env"}, "dotenv files to load before reading SAFEPATH_* variables")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	rootCmd.AddCommand(newFindCmd(a), newNodesCmd(a), newServeCmd(a))
	return rootCmd
}

// load resolves configuration and builds the logger. Flags win over the
// environment, which wins over the config file.
func (a *app) load() error {
	cfg, err := config.Load(a.configPath, a.envFiles...)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	logger, err := logging.New(cfg.Log, a.stderr)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	return nil
}

// graph builds the configured network.
func (a *app) graph() (*core.Graph, error) {
	g, err := builder.BuildGraph(nil, nil, a.cfg.Constructors()...)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("network loaded", "vertices", g.VertexCount(), "edges", g.EdgeCount())
	return g, nil
}
