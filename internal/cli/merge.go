package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/euroeval-report/internal/engine"
)

var mergeOutput string

var mergeCmd = &cobra.Command{
	Use:   "merge FILE...",
	Short: "Concatenate result files, dropping unparsable lines",
	Long: `Merges result files produced by separate runs into one JSONL file.
Records keep their original bytes and the order of the arguments.`,
	Example: `  euroeval-report merge run-*/euroeval_benchmark_results_spesific_lrs.jsonl -o partial_res.jsonl`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return engine.Merge(cmd.Context(), args, mergeOutput)
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "partial_res.jsonl", "Merged output file (- for stdout)")
}
