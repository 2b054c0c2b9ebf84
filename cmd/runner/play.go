package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
)

var (
	flagLogFile  string
	flagLogLevel string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run in the current terminal.

Controls:
  Left/A, Right/D    - Change lane
  Up/W/Space         - Jump
  Enter/R            - Restart (after game over)
  ?                  - Toggle help
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Slower obstacles, gentle speed ramp
  normal - Configured values
  hard   - Faster obstacles, steep speed ramp
  fixed  - No speed ramp

Examples:
  runner play
  runner play --difficulty easy
  runner play --seed 42 --log-file run.log
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write run telemetry to this file")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	runErr := tui.Run(cfg, rt, logger)

	// Close log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger returns a file logger, or a discarding one when path is empty.
// The terminal belongs to the game, so nothing is logged to stderr.
func openLogger(path, level string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           lvl,
	})
	return logger, func() { _ = f.Close() }, nil
}
