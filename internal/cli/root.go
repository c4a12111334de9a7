/*
PURPOSE:
  Defines the root Cobra command for the euroeval-report CLI.
  Handles global flags, logger setup and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Logs go to stderr; stdout may carry a document ("-o -").

ARCHITECTURE INTEGRATION:
  - Called by: cmd/euroeval-report/main.go
  - Calls: Child commands (tables, best-lrs, summary, merge, pending,
    list-models, config)
  - Modifies: output.Logger (--debug, --log-format).

ERROR HANDLING:
  - Returns error to main.go for exit code handling.
  - Usage is not printed for runtime errors, only for flag errors.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands, Root is usually empty or helps.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/euroeval-report/main.go
  - internal/output/logger.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/daryltucker/euroeval-report/internal/config"
	"github.com/daryltucker/euroeval-report/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile   string
	debug     bool
	logFormat string

	rootCmd = &cobra.Command{
		Use:   "euroeval-report",
		Short: "Aggregate EuroEval benchmark results into publication tables",
		Long: `Reads EuroEval benchmark results (JSONL, one record per model and dataset)
and turns them into per-language LaTeX tables, or selects the best learning
rate from a hyperparameter search. Use 'tables --help' to get started.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogger,
	}
)

// Execute executes the root command. ctx is cancelled on interrupt.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	if logFormat != "text" && logFormat != "json" {
		return fmt.Errorf("unknown log format %q (want text or json)", logFormat)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	output.SetLogger(output.NewLogger(cmd.ErrOrStderr(), logFormat, level))
	return nil
}

// loadConfig loads the config file and applies the shared overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if len(monolingualOverride) > 0 {
		cfg.MonolingualModels = monolingualOverride
	}
	if failedMarkerOverride != "" {
		cfg.FailedMarker = failedMarkerOverride
	}
	return cfg, nil
}

var (
	monolingualOverride  []string
	failedMarkerOverride string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./euroeval_report.yaml or ./report.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log per-record decisions")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().StringSliceVar(&monolingualOverride, "monolingual", nil, "Comma-separated display names of monolingual models (replaces config)")
	rootCmd.PersistentFlags().StringVar(&failedMarkerOverride, "failed-marker", "", "Substring marking failed runs in model names")
}
