package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flag-catcher/internal/config"
	"github.com/vovakirdan/flag-catcher/internal/core"
)

// fakeKeyboard reports a fixed set of held and newly pressed keys.
type fakeKeyboard struct {
	down map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newFakeKeyboard() *fakeKeyboard {
	return &fakeKeyboard{down: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (k *fakeKeyboard) Pressed(key ebiten.Key) bool     { return k.down[key] || k.just[key] }
func (k *fakeKeyboard) JustPressed(key ebiten.Key) bool { return k.just[key] }

// hold marks keys as held; press marks them as going down this tick.
func (k *fakeKeyboard) hold(keys ...ebiten.Key) {
	for _, key := range keys {
		k.down[key] = true
	}
}

func (k *fakeKeyboard) press(keys ...ebiten.Key) {
	for _, key := range keys {
		k.just[key] = true
	}
}

func (k *fakeKeyboard) reset() {
	clear(k.down)
	clear(k.just)
}

func TestParseChord(t *testing.T) {
	tests := []struct {
		name string
		want chord
		ok   bool
	}{
		{"w", chord{key: ebiten.KeyW}, true},
		{"left", chord{key: ebiten.KeyArrowLeft}, true},
		{" ", chord{key: ebiten.KeySpace}, true},
		{"esc", chord{key: ebiten.KeyEscape}, true},
		{"ctrl+c", chord{key: ebiten.KeyC, ctrl: true}, true},
		{"f13", chord{}, false},
		{"ctrl+", chord{}, false},
	}
	for _, tt := range tests {
		got, ok := parseChord(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseChord(%q) = %+v, %v; want %+v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPollMovementIsHeld(t *testing.T) {
	km := NewKeyMap(config.DefaultConfig().Controls)
	kb := newFakeKeyboard()
	kb.hold(ebiten.KeyArrowLeft, ebiten.KeyW)

	for range 3 {
		f, quit := km.Poll(kb)
		if quit {
			t.Fatal("unexpected quit")
		}
		if !f.Has(core.ActionLeft) || !f.Has(core.ActionUp) {
			t.Fatalf("frame = %v, want left+up", f.Actions)
		}
	}
}

func TestPollPauseFiresOnPressOnly(t *testing.T) {
	km := NewKeyMap(config.DefaultConfig().Controls)
	kb := newFakeKeyboard()

	kb.press(ebiten.KeyP)
	if f, _ := km.Poll(kb); !f.Has(core.ActionPause) {
		t.Fatal("p press should pause")
	}

	kb.reset()
	kb.hold(ebiten.KeyP)
	if f, _ := km.Poll(kb); f.Has(core.ActionPause) {
		t.Error("holding p should not toggle again")
	}
}

func TestPollCtrlChords(t *testing.T) {
	km := NewKeyMap(config.DefaultConfig().Controls)
	kb := newFakeKeyboard()

	// ctrl+c quits, plain c does nothing
	kb.press(ebiten.KeyC)
	if _, quit := km.Poll(kb); quit {
		t.Error("plain c should not quit")
	}

	kb.hold(ebiten.KeyControl)
	if _, quit := km.Poll(kb); !quit {
		t.Error("ctrl+c should quit")
	}

	// Held ctrl masks plain bindings
	kb.reset()
	kb.hold(ebiten.KeyControl)
	kb.press(ebiten.KeyR)
	if f, _ := km.Poll(kb); f.Has(core.ActionRestart) {
		t.Error("ctrl+r should not restart")
	}
}

func TestPollQuitKeys(t *testing.T) {
	km := NewKeyMap(config.DefaultConfig().Controls)
	for _, key := range []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape} {
		kb := newFakeKeyboard()
		kb.press(key)
		if _, quit := km.Poll(kb); !quit {
			t.Errorf("%v should quit", key)
		}
	}
}

func TestNewKeyMapCustomControls(t *testing.T) {
	controls := config.DefaultConfig().Controls
	controls.Left = []string{"z"}
	km := NewKeyMap(controls)

	kb := newFakeKeyboard()
	kb.hold(ebiten.KeyArrowLeft)
	if f, _ := km.Poll(kb); f.Has(core.ActionLeft) {
		t.Error("arrow left is no longer bound")
	}

	kb.hold(ebiten.KeyZ)
	if f, _ := km.Poll(kb); !f.Has(core.ActionLeft) {
		t.Error("z should move left")
	}
}
