package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.bricks/configs/breakout.yaml or pass it with --config after editing.

Example:
  bricks config > ~/.bricks/configs/breakout.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			fail("%v", err)
		}
	},
}
