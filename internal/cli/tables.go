/*
PURPOSE:
  Defines the 'tables' subcommand.
  Renders the per-language result tables.

REQUIREMENTS:
  User-specified:
  - Produce tables.tex from the final results file.
  - Specific flags for overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config, then validate again.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.RunTables()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or engine run fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.RunTables.

USAGE:
  euroeval-report tables -i results.jsonl -o tables.tex

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/euroeval-report/internal/engine"
)

var (
	inputOverride  string
	outputOverride string
	formatOverride string
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Render per-language result tables",
	Long: `Renders one table per language from a EuroEval results file.

Rows are split into monolingual and multilingual models; the best average score
per dataset is highlighted separately for each category. Malformed lines and
runs whose model name contains the failed marker are skipped.

The output file is replaced atomically. Use -o - to write to stdout.`,
	Example: `  # Run with defaults (uses euroeval_report.yaml if present)
  euroeval-report tables

  # Read a compressed results file and write Markdown to stdout
  euroeval-report tables -i results.jsonl.zst --format markdown -o -

  # Treat an extra model as monolingual
  euroeval-report tables --monolingual bert-base-finnish-cased-v1,my-finnish-bert`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// 2. Overrides
		if inputOverride != "" {
			cfg.Input = inputOverride
		}
		if outputOverride != "" {
			cfg.Output = outputOverride
		}
		if formatOverride != "" {
			cfg.Format = formatOverride
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		// 3. Execution
		return engine.RunTables(cfg)
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)

	tablesCmd.Flags().StringVarP(&inputOverride, "input", "i", "", "Results file (JSONL, optionally .gz/.zst; - for stdin)")
	tablesCmd.Flags().StringVarP(&outputOverride, "output", "o", "", "Output file (- for stdout)")
	tablesCmd.Flags().StringVar(&formatOverride, "format", "", "Output format: latex, markdown or html")
}
