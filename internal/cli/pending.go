package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/euroeval-report/internal/engine"
	"github.com/daryltucker/euroeval-report/internal/output"
)

var (
	pendingBestLRs string
	pendingFinal   string
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List final training runs that have no result yet",
	Long: `Compares the best learning rate file against the final results and prints,
as JSONL, every (dataset, model) pair that still needs a run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if pendingBestLRs != "" {
			cfg.BestLRsOutput = pendingBestLRs
		}
		if pendingFinal != "" {
			cfg.FinalResults = pendingFinal
		}

		pending, err := engine.Pending(cfg.BestLRsOutput, cfg.FinalResults, cfg.FailedMarker)
		if err != nil {
			return err
		}

		w := output.NewJSONWriter(cmd.OutOrStdout())
		for _, p := range pending {
			if err := w.Write(p); err != nil {
				return err
			}
		}
		output.Logger.Info("Pending runs", "count", len(pending))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pendingCmd)

	pendingCmd.Flags().StringVar(&pendingBestLRs, "best-lrs", "", "Best learning rate file")
	pendingCmd.Flags().StringVar(&pendingFinal, "final", "", "Final results file")
}
