package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/euroeval-report/internal/engine"
)

var (
	searchInputOverride string
	bestLRsOutput       string
	bestLRsCSV          string
)

var bestLRsCmd = &cobra.Command{
	Use:   "best-lrs",
	Short: "Select the best learning rate per model and dataset",
	Long: `Reads hyperparameter search results, where each record holds one result per
learning rate, and keeps the learning rate with the highest mean of all F1
metrics. Writes one JSON object per line for the final training runs.`,
	Example: `  euroeval-report best-lrs -i euroeval_benchmark_results_hyperparameter_search.jsonl
  euroeval-report best-lrs --csv best_lrs.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if searchInputOverride != "" {
			cfg.HyperparameterInput = searchInputOverride
		}
		if bestLRsOutput != "" {
			cfg.BestLRsOutput = bestLRsOutput
		}
		return engine.RunBestLRs(cfg, bestLRsCSV)
	},
}

func init() {
	rootCmd.AddCommand(bestLRsCmd)

	bestLRsCmd.Flags().StringVarP(&searchInputOverride, "input", "i", "", "Hyperparameter search results file")
	bestLRsCmd.Flags().StringVarP(&bestLRsOutput, "output", "o", "", "Best learning rate file (JSONL, - for stdout)")
	bestLRsCmd.Flags().StringVar(&bestLRsCSV, "csv", "", "Also write the selection as CSV to this file")
}
