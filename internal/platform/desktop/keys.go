package desktop

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flag-catcher/internal/config"
	"github.com/vovakirdan/flag-catcher/internal/core"
)

// keyNames maps config key names to ebiten keys. Names follow the Bubble Tea
// spelling so one controls section serves both front-ends.
var keyNames = map[string]ebiten.Key{
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	" ":         ebiten.KeySpace,
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"esc":       ebiten.KeyEscape,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
}

// chord is a key, optionally held together with Control.
type chord struct {
	key  ebiten.Key
	ctrl bool
}

// parseChord resolves a config key name such as "w", "esc" or "ctrl+c".
func parseChord(name string) (chord, bool) {
	ctrl := false
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		ctrl = true
		name = rest
	}
	k, ok := keyNames[name]
	if !ok {
		return chord{}, false
	}
	return chord{key: k, ctrl: ctrl}, true
}

// Keyboard reports key state for the current tick.
type Keyboard interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeyboard reads the real keyboard.
type ebitenKeyboard struct{}

func (ebitenKeyboard) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeyboard) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// KeyMap holds the chords bound to each action.
type KeyMap struct {
	held    map[core.Action][]chord // active while pressed
	pressed map[core.Action][]chord // fire once per press
}

// NewKeyMap builds a key map from the controls section of the config.
// Names with no desktop key are skipped. Movement is polled as held keys,
// everything else on the press edge.
func NewKeyMap(c config.Controls) *KeyMap {
	km := &KeyMap{
		held:    make(map[core.Action][]chord),
		pressed: make(map[core.Action][]chord),
	}
	bind := func(dst map[core.Action][]chord, names []string, a core.Action) {
		for _, n := range names {
			if ch, ok := parseChord(n); ok {
				dst[a] = append(dst[a], ch)
			}
		}
	}
	bind(km.held, c.Left, core.ActionLeft)
	bind(km.held, c.Right, core.ActionRight)
	bind(km.held, c.Up, core.ActionUp)
	bind(km.held, c.Down, core.ActionDown)
	bind(km.pressed, c.Pause, core.ActionPause)
	bind(km.pressed, c.Restart, core.ActionRestart)
	bind(km.pressed, c.Quit, core.ActionQuit)
	bind(km.pressed, []string{"ctrl+c"}, core.ActionQuit)
	return km
}

// Poll reads the keyboard into an input frame. quit is true when a quit
// chord went down this tick.
func (km *KeyMap) Poll(kb Keyboard) (frame core.InputFrame, quit bool) {
	frame = core.NewInputFrame()
	ctrl := kb.Pressed(ebiten.KeyControl)

	for a, chords := range km.held {
		for _, ch := range chords {
			if ch.ctrl == ctrl && kb.Pressed(ch.key) {
				frame.Set(a)
				break
			}
		}
	}
	for a, chords := range km.pressed {
		for _, ch := range chords {
			if ch.ctrl == ctrl && kb.JustPressed(ch.key) {
				frame.Set(a)
				break
			}
		}
	}

	return frame, frame.Has(core.ActionQuit)
}
