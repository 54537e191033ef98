// flagcatch is Flag Catcher for the terminal: steer a net, catch the
// drifting flags before the minute runs out.
//
// Usage:
//
//	flagcatch list            - List game modes
//	flagcatch play [mode]     - Play a mode (default: flagcatch)
//	flagcatch menu            - Pick modes interactively and view this run's scores
//
// Global flags:
//
//	--fps <rate>        - Tick rate (default: display.tick_rate from config)
//	--seed <value>      - RNG seed for reproducible gameplay
//	--config <path>     - Custom config YAML
//	--log-file <path>   - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flag-catcher/internal/config"
	"github.com/vovakirdan/flag-catcher/internal/core"

	// Import game modes to register them
	_ "github.com/vovakirdan/flag-catcher/internal/games/flagcatch"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flagcatch",
	Short: "Flag Catcher - catch drifting flags in your terminal",
	Long: `Flag Catcher is a terminal arcade game. Move the net over the
drifting flags to catch them. Clear all six to reach the next level,
where faster flags and moving blocks wait. You have 60 seconds.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive mode picker with this run's scoreboard

Examples:
  flagcatch play
  flagcatch play flagcatch_spaced --seed 42
  flagcatch menu --log-file flagcatch.log`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = display.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
}

// setup loads the config and opens the logger. The returned close func
// releases the log file.
func setup() (config.Config, *log.Logger, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return config.Config{}, nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flagcatch",
	})
	return cfg, logger, closeFn, nil
}

// runtimeConfig sizes the game to the terminal and applies --fps and --seed.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = cfg.Display.TickRate
	rt.PausedTickRate = cfg.Display.PausedTickRate
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	return rt
}
