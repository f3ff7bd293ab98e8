package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/games/escape"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the built-in config YAML. Save it to ~/.escape/configs/escape.yaml
or ./configs/escape.yaml to override it, or pass any copy with --config.

Examples:
  escape config > my-escape.yaml
  escape play --config my-escape.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML(escape.ID))
		return err
	},
}
