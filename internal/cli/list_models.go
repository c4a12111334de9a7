/*
PURPOSE:
  Defines the 'list-models' subcommand.
  Helps check model naming and categories before rendering.

REQUIREMENTS:
  User-specified:
  - List models present in a results file.

  Implementation-discovered:
  - Useful validation step before full run: a monolingual model whose
    display name is misspelled in the config silently lands in the
    multilingual section.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.ListModels()

ERROR HANDLING:
  - Returns error if the results file cannot be opened.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  euroeval-report list-models -i results.jsonl

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/models.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/euroeval-report/internal/engine"
)

var listModelsInput string

var listModelsCmd = &cobra.Command{
	Use:   "list-models",
	Short: "List models in a results file with their category",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if listModelsInput != "" {
			cfg.Input = listModelsInput
		}

		models, err := engine.ListModels(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, m := range models {
			fmt.Fprintf(out, "- %s (%s, %d records)\n", m.Model, m.Category, m.Records)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listModelsCmd)
	listModelsCmd.Flags().StringVarP(&listModelsInput, "input", "i", "", "Results file")
}
