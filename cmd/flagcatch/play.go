package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flag-catcher/internal/platform/tui"
	"github.com/vovakirdan/flag-catcher/internal/registry"
	"github.com/vovakirdan/flag-catcher/internal/storage"
)

const defaultMode = "flagcatch"

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: flagcatch).

Controls:
  Arrows/WASD/hjkl  - Move the net
  P/Space           - Pause and resume
  R/Enter           - Restart after game over
  Ctrl+Y            - Copy the current frame to the clipboard
  Q/Esc/Ctrl+C      - Quit

Examples:
  flagcatch play
  flagcatch play flagcatch_spaced
  flagcatch play --seed 7 --config ./my-flagcatch.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultMode
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'flagcatch list')", gameID)
	}

	cfg, logger, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run log unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("play", "mode", gameID, "seed", flagSeed)
	if err := tui.Run(game, store, runtimeConfig(cfg), tui.Options{Config: cfg, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
