// runner is a lane-based endless runner for the terminal.
//
// Usage:
//
//	runner play              - Play locally
//	runner serve             - Start SSH server for remote play
//	runner config            - Print the default config
//	runner config --check f  - Validate a config file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Lane Runner - dodge obstacles in your terminal",
	Long: `Lane Runner is an endless runner played in the terminal.
Switch between lanes and jump over obstacles while the game speeds up.

Available commands:
  play     - Start a run
  serve    - Start SSH server for remote play
  config   - Print or check configuration

Examples:
  runner play
  runner play --difficulty hard
  runner serve --ssh :2222
  runner config --check ./configs/runner.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the runner config from the global flags.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.RunnerConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return config.RunnerConfig{}, err
	}
	return cfg, nil
}
