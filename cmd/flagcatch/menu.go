package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flag-catcher/internal/platform/tui"
	"github.com/vovakirdan/flag-catcher/internal/registry"
	"github.com/vovakirdan/flag-catcher/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick modes interactively",
	Long: `Start Flag Catcher in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a mode.
Tab opens the scoreboard of runs finished since the menu started.
After a game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  flagcatch menu
  flagcatch menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, logger, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	// One run log for the whole menu session
	store, err := storage.OpenMemory()
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer store.Close()

	rt := runtimeConfig(cfg)

	for {
		result, err := tui.RunMenu(store, rt)
		if err != nil {
			return err
		}
		rt.ScreenW, rt.ScreenH = result.Config.ScreenW, result.Config.ScreenH

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}

		logger.Info("play", "mode", result.GameID)
		if err := tui.Run(game, store, rt, tui.Options{Config: cfg, Logger: logger}); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
