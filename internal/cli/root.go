// SPDX-License-Identifier: MIT

// Package cli implements the subwaypath command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subway/internal/config"
	"github.com/katalvlaran/subway/internal/logging"
	"github.com/katalvlaran/subway/loader"
	"github.com/katalvlaran/subway/path"
)

// dotenvFile is read from the working directory when present.
const dotenvFile = ".env"

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand once the root's
// PersistentPreRunE has run.
type app struct {
	networkFile string
	logLevel    string
	logFormat   string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "subwaypath",
		Short:        "Query shortest routes over a subway network file",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.networkFile, "network", "n", "", "Network YAML file (defaults to $"+config.EnvNetworkFile+")")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug|info|warn|error (defaults to $"+config.EnvLogLevel+")")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text|json (defaults to $"+config.EnvLogFormat+")")

	cmd.AddCommand(pathCmd(a))
	cmd.AddCommand(stationsCmd(a))
	cmd.AddCommand(reachableCmd(a))
	cmd.AddCommand(validateCmd(a))
	return cmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(dotenvFile)
	if err != nil {
		return err
	}
	if a.networkFile != "" {
		cfg.Network.File = a.networkFile
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}

	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), cfg.Logging)
	return nil
}

func (a *app) loadNetwork() (*loader.Network, error) {
	n, err := loader.Load(a.cfg.Network.File)
	if err != nil {
		return nil, err
	}

	a.log.Debug("network.loaded",
		slog.String("file", a.cfg.Network.File),
		slog.Int("stations", n.Stations.Len()),
		slog.Int("lines", len(n.Lines)),
	)
	return n, nil
}

func (a *app) finder() *path.Finder {
	return path.NewFinder(
		path.WithLogger(a.log),
		path.WithMaxDistance(a.cfg.Network.MaxDistance),
	)
}
