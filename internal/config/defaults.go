package config

import (
	_ "embed"
)

//go:embed defaults/flagcatch.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Display: Display{
			TickRate:       60,
			PausedTickRate: 10,
			Stars:          50,
			ShowHint:       true,
		},
		Spawn: Spawn{
			Policy:          PolicyScatter,
			MinFlagSpacing:  60,
			PlayerClearance: 100,
			MaxAttempts:     100,
		},
		Controls: Controls{
			Left:      []string{"left", "a", "h"},
			Right:     []string{"right", "d", "l"},
			Up:        []string{"up", "w", "k"},
			Down:      []string{"down", "s", "j"},
			Pause:     []string{"p", " "},
			Restart:   []string{"r", "enter"},
			Quit:      []string{"q", "esc", "ctrl+c"},
			Copy:      []string{"ctrl+y"},
			HoldTicks: 8,
		},
	}
}
