package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Print the default game configuration as YAML.

Redirect the output to a file, tweak it, and pass it back with --config:

  duel config > my_config.yaml
  duel play --config my_config.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	os.Stdout.Write(config.GetDefaultYAML())
}
