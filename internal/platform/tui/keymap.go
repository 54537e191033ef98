package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flag-catcher/internal/config"
	"github.com/vovakirdan/flag-catcher/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions using the
// configured bindings.
type KeyMapper struct {
	bindings  map[string]core.Action
	holdTicks int
}

// NewKeyMapper creates a key mapper from the controls section of the config.
// ctrl+c always quits.
func NewKeyMapper(c config.Controls) *KeyMapper {
	km := &KeyMapper{
		bindings:  make(map[string]core.Action),
		holdTicks: c.HoldTicks,
	}
	bind := func(keys []string, a core.Action) {
		for _, k := range keys {
			km.bindings[k] = a
		}
	}
	bind(c.Left, core.ActionLeft)
	bind(c.Right, core.ActionRight)
	bind(c.Up, core.ActionUp)
	bind(c.Down, core.ActionDown)
	bind(c.Pause, core.ActionPause)
	bind(c.Restart, core.ActionRestart)
	bind(c.Copy, core.ActionCopy)
	bind(c.Quit, core.ActionQuit)
	km.bindings["ctrl+c"] = core.ActionQuit
	return km
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	a, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return a, a == core.ActionQuit
}

// HoldTicks returns how long a movement key stays active after a press.
func (km *KeyMapper) HoldTicks() int {
	return km.holdTicks
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// heldInput turns discrete terminal key presses into held movement.
// Terminals report a held key as a burst followed by repeats, with gaps
// longer than one frame; a movement stays active for hold ticks after its
// last press. Other actions fire on the next frame only.
type heldInput struct {
	hold      int
	remaining map[core.Action]int
	pending   core.InputFrame
}

var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

func newHeldInput(hold int) *heldInput {
	return &heldInput{
		hold:      max(hold, 1),
		remaining: make(map[core.Action]int),
		pending:   core.NewInputFrame(),
	}
}

// Press records a key press.
func (h *heldInput) Press(a core.Action) {
	if opp, ok := opposite[a]; ok {
		h.remaining[a] = h.hold
		delete(h.remaining, opp)
		return
	}
	h.pending.Set(a)
}

// Frame returns the input for the next Step and ages held movement.
func (h *heldInput) Frame() core.InputFrame {
	frame := h.pending.Clone()
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	h.pending.Clear()
	return frame
}

// Release drops all held movement.
func (h *heldInput) Release() {
	clear(h.remaining)
}
