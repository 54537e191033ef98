// flagcatch-gui runs Flag Catcher in a desktop window.
//
// Usage:
//
//	flagcatch-gui [--spaced] [--seed N] [--config path] [--log-file path]
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flag-catcher/internal/config"
	"github.com/vovakirdan/flag-catcher/internal/games/flagcatch"
	"github.com/vovakirdan/flag-catcher/internal/platform/desktop"
	"github.com/vovakirdan/flag-catcher/internal/storage"
)

var (
	flagSeed    int64
	flagConfig  string
	flagSpaced  bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flagcatch-gui",
	Short: "Flag Catcher in a desktop window",
	Long: `Catch the drifting flags with your net before the minute runs out.

Controls:
  Arrows/WASD  - Move the net
  P/Space      - Pause and resume
  R/Enter      - Restart after game over
  Q/Esc        - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().BoolVar(&flagSpaced, "spaced", false, "Keep flags apart and away from the net when spawning")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: stderr)")
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flagcatch-gui",
	})

	game := flagcatch.New()
	if flagSpaced {
		game = flagcatch.NewSpaced()
	}

	store, err := storage.OpenMemory()
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer store.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return desktop.Run(game, store, desktop.Options{Config: cfg, Seed: seed, Logger: logger})
}
