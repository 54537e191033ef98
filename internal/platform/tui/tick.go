// Package tui runs Flag Catcher in the terminal with Bubble Tea.
// It handles the frame loop, input mapping, the menu and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flag-catcher/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameRate returns the tick rate for the current state; paused games idle
// at the slower rate.
func frameRate(cfg core.RuntimeConfig, state core.GameState) int {
	if state.Paused && cfg.PausedTickRate > 0 {
		return cfg.PausedTickRate
	}
	return cfg.TickRate
}
