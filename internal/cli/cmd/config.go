package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabgallery/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where the configuration lives and which keys it accepts.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON Schema",
	Long: `Print a JSON Schema describing config.toml. Editors that understand
JSON Schema can use it for completion and validation.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		schema, err := config.Schema()
		if err != nil {
			return fmt.Errorf("generate schema: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
}
