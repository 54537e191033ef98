// Package config provides YAML-based settings for Flag Catcher: display
// rates, the flag spawn policy and key bindings.
package config

import (
	"errors"
	"fmt"
)

// Spawn policy names accepted in spawn.policy.
const (
	PolicyScatter = "scatter"
	PolicySpaced  = "spaced"
)

// Config contains all Flag Catcher settings.
type Config struct {
	Display  Display  `yaml:"display"`
	Spawn    Spawn    `yaml:"spawn"`
	Controls Controls `yaml:"controls"`
}

// Display defines frame pacing and cosmetic options.
type Display struct {
	TickRate       int  `yaml:"tick_rate"`        // Frames per second while playing
	PausedTickRate int  `yaml:"paused_tick_rate"` // Frames per second while paused
	Stars          int  `yaml:"stars"`
	ShowHint       bool `yaml:"show_hint"`
}

// Spawn defines how flag positions are chosen.
type Spawn struct {
	Policy          string  `yaml:"policy"`
	MinFlagSpacing  float64 `yaml:"min_flag_spacing"`
	PlayerClearance float64 `yaml:"player_clearance"`
	MaxAttempts     int     `yaml:"max_attempts"`
}

// Controls maps actions to key names. Names follow Bubble Tea's key
// strings ("left", "a", "ctrl+c", " " for space).
type Controls struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Pause   []string `yaml:"pause"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
	Copy    []string `yaml:"copy"`

	// HoldTicks keeps a movement key active for this many ticks after its
	// last press, bridging terminal key-repeat gaps.
	HoldTicks int `yaml:"hold_ticks"`
}

// Spaced reports whether the spaced spawn policy is selected.
func (s Spawn) Spaced() bool {
	return s.Policy == PolicySpaced
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("%w: display.tick_rate must be positive, got %d", ErrInvalid, c.Display.TickRate)
	}
	if c.Display.PausedTickRate <= 0 || c.Display.PausedTickRate > c.Display.TickRate {
		return fmt.Errorf("%w: display.paused_tick_rate must be in [1, %d], got %d",
			ErrInvalid, c.Display.TickRate, c.Display.PausedTickRate)
	}
	if c.Display.Stars < 0 {
		return fmt.Errorf("%w: display.stars must not be negative, got %d", ErrInvalid, c.Display.Stars)
	}

	switch c.Spawn.Policy {
	case PolicyScatter, PolicySpaced:
	default:
		return fmt.Errorf("%w: spawn.policy must be %q or %q, got %q", ErrInvalid, PolicyScatter, PolicySpaced, c.Spawn.Policy)
	}
	if c.Spawn.MinFlagSpacing < 0 || c.Spawn.PlayerClearance < 0 {
		return fmt.Errorf("%w: spawn distances must not be negative", ErrInvalid)
	}
	if c.Spawn.Spaced() && c.Spawn.MaxAttempts <= 0 {
		return fmt.Errorf("%w: spawn.max_attempts must be positive, got %d", ErrInvalid, c.Spawn.MaxAttempts)
	}

	if c.Controls.HoldTicks < 0 {
		return fmt.Errorf("%w: controls.hold_ticks must not be negative, got %d", ErrInvalid, c.Controls.HoldTicks)
	}
	bindings := map[string][]string{
		"left": c.Controls.Left, "right": c.Controls.Right,
		"up": c.Controls.Up, "down": c.Controls.Down,
		"pause": c.Controls.Pause, "restart": c.Controls.Restart,
		"quit": c.Controls.Quit,
	}
	for action, keys := range bindings {
		if len(keys) == 0 {
			return fmt.Errorf("%w: controls.%s has no keys", ErrInvalid, action)
		}
	}
	return nil
}
