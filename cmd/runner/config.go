package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the runner config",
	Long: `Print the built-in default config, or validate a config file.

The printed YAML is a complete starting point for a custom config.
Files are looked up in this order when --config is not given:
  ~/.runner/configs/runner.yaml
  ./configs/runner.yaml

Examples:
  runner config > ~/.runner/configs/runner.yaml
  runner config --check ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate the given config file and exit")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagCheck == "" {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := config.LoadRunner(flagCheck)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok (%d lanes, base speed %.0f)\n", flagCheck, cfg.Lanes, cfg.Obstacles.BaseSpeed)
}
