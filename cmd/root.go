// Package cmd implements the mimic-engine command line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mimic-data/mimic-engine/pkg/config"
	"github.com/mimic-data/mimic-engine/pkg/logging"
)

// Version is injected by main via SetVersion before Execute runs.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "mimic-engine [command]",
	Short: "Context-aware synthetic data generator",
	Long: `mimic-engine generates realistic synthetic datasets: schema-driven records,
time series, hierarchies, graphs, correlated series and full e-commerce
scenarios. Output goes to files, stdout, Postgres or an HTTP API.`,
	SilenceUsage: true,
}

// SetVersion records the build version before command execution.
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads configuration and builds the logger shared by all commands.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(Version)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, logger, nil
}
