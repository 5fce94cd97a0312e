// Package main provides the CLI entrypoint for aoc2023.
//
// aoc2023 runs the registered Advent of Code 2023 solvers:
//   - solve: compute the answer for one puzzle and part
//   - check: verify every solver against its known samples
//   - list: show the registered puzzles
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2023/internal/config"
	"aoc2023/internal/logging"
	"aoc2023/internal/puzzle"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd(puzzle.Default()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app is the state shared by all subcommands.
type app struct {
	registry *puzzle.Registry

	envFile   string
	logLevel  string
	logFormat string

	cfg    config.Config
	logger *zap.Logger
}

func rootCmd(registry *puzzle.Registry) *cobra.Command {
	a := &app{registry: registry, logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "aoc2023",
		Short: "Advent of Code 2023 solvers",
		Long: `Run the Advent of Code 2023 puzzle solvers.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  AOC_INPUT_DIR     Directory holding <id>.txt inputs (default: data)
  AOC_LOG_LEVEL     Log level: debug, info, warn, error (default: info)
  AOC_LOG_FORMAT    Log format: console, json (default: console)
  AOC_WORKERS       Concurrent workers per solve, 0 = GOMAXPROCS (default: 0)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level override: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format override: console, json")

	cmd.AddCommand(solveCmd(a))
	cmd.AddCommand(checkCmd(a))
	cmd.AddCommand(listCmd(a))
	cmd.AddCommand(versionCmd())

	return cmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	if a.logFormat != "" {
		cfg.LogFormat = config.LogFormat(a.logFormat)
	}

	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.FromConfig(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}
