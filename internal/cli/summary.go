package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/daryltucker/euroeval-report/internal/engine"
)

var (
	summaryInput string
	summaryColor bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the best model per dataset",
	Long: `Prints, per language, the best monolingual and multilingual model for each
dataset with its mean score. Colours are used when stdout is a terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if summaryInput != "" {
			cfg.Input = summaryInput
		}

		out := cmd.OutOrStdout()
		styled := summaryColor
		if f, ok := out.(*os.File); ok && !cmd.Flags().Changed("color") {
			styled = term.IsTerminal(int(f.Fd()))
		}
		return engine.RunSummary(cfg, out, styled)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVarP(&summaryInput, "input", "i", "", "Results file")
	summaryCmd.Flags().BoolVar(&summaryColor, "color", false, "Force coloured output (default: auto)")
}
