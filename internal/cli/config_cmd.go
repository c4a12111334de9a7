package cli

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configAsYAML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after defaults, the config file and the global
overrides are applied. --yaml prints a file that can be used as --config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if configAsYAML {
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		}
		_, err = pp.Fprintln(out, cfg)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&configAsYAML, "yaml", false, "Print as YAML")
}
