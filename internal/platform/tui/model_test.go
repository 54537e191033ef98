package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flag-catcher/internal/config"
	"github.com/vovakirdan/flag-catcher/internal/core"
	"github.com/vovakirdan/flag-catcher/internal/games/flagcatch"
	"github.com/vovakirdan/flag-catcher/internal/storage"
)

type harness struct {
	t     *testing.T
	model Model
	game  *flagcatch.Game
	store *storage.Store
	now   time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return newHarnessWithStore(t, store)
}

func newHarnessWithStore(t *testing.T, store *storage.Store) *harness {
	t.Helper()
	rt := core.DefaultConfig()
	rt.Seed = 1

	game := flagcatch.New()
	m := NewModel(game, store, rt, Options{Config: config.DefaultConfig()})
	m.Init()

	return &harness{t: t, model: m, game: game, store: store, now: m.lastTick}
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		h.t.Fatalf("Update returned %T", next)
	}
	h.model = m
	return cmd
}

func (h *harness) key(k tea.KeyMsg) tea.Cmd {
	return h.send(k)
}

func (h *harness) tick(dt time.Duration) {
	h.now = h.now.Add(dt)
	h.send(TickMsg(h.now))
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelMovesAndHolds(t *testing.T) {
	h := newHarness(t)
	session := h.game.Session()
	startX := session.Player().Pos.X

	h.key(tea.KeyMsg{Type: tea.KeyRight})
	h.tick(16 * time.Millisecond)
	if got := session.Player().Pos.X; got != startX+flagcatch.PlayerSpeed {
		t.Fatalf("x after one tick = %v, want %v", got, startX+flagcatch.PlayerSpeed)
	}

	// Movement continues for the hold window, then stops
	hold := config.DefaultConfig().Controls.HoldTicks
	for range hold + 5 {
		h.tick(16 * time.Millisecond)
	}
	want := startX + float64(hold)*flagcatch.PlayerSpeed
	if got := session.Player().Pos.X; got != want {
		t.Errorf("x after hold = %v, want %v", got, want)
	}
}

func TestModelPause(t *testing.T) {
	h := newHarness(t)

	h.key(runeKey("p"))
	h.tick(16 * time.Millisecond)
	if !h.model.State().Paused {
		t.Fatal("expected paused after p")
	}

	remaining := h.game.Session().RemainingMs()
	h.tick(10 * time.Second)
	if h.game.Session().RemainingMs() != remaining {
		t.Error("countdown advanced while paused")
	}

	h.key(tea.KeyMsg{Type: tea.KeySpace})
	h.tick(16 * time.Millisecond)
	if h.model.State().Paused {
		t.Error("space should resume")
	}
}

func TestModelLogsFinishedRunsOnce(t *testing.T) {
	h := newHarness(t)

	h.tick(61 * time.Second)
	if !h.model.State().GameOver {
		t.Fatal("expected game over")
	}
	h.tick(16 * time.Millisecond)

	n, err := h.store.RunCount("flagcatch")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("runs logged = %d, want 1", n)
	}

	h.key(runeKey("r"))
	h.tick(16 * time.Millisecond)
	if h.model.State().GameOver {
		t.Fatal("r should restart")
	}
	h.tick(61 * time.Second)

	n, _ = h.store.RunCount("flagcatch")
	if n != 2 {
		t.Errorf("runs logged = %d, want 2", n)
	}
}

func TestModelSeedsHighScoreFromRunLog(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	if _, err := store.SaveRun(storage.Run{GameID: "flagcatch", Score: 650, Level: 3}); err != nil {
		t.Fatal(err)
	}

	h := newHarnessWithStore(t, store)
	if got := h.game.Session().HighScore(); got != 650 {
		t.Errorf("high score = %d, want 650", got)
	}
}

func TestModelConfiguresGame(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Spawn.Policy = config.PolicySpaced

	game := flagcatch.New()
	m := NewModel(game, nil, core.DefaultConfig(), Options{Config: cfg})
	m.Init()

	if !game.Config().Spawn.Spaced() {
		t.Error("model should hand its settings to the game")
	}
}

func TestModelCopiesFrame(t *testing.T) {
	orig := clipboardWrite
	t.Cleanup(func() { clipboardWrite = orig })

	var copied string
	clipboardWrite = func(s string) error {
		copied = s
		return nil
	}

	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})
	h.key(tea.KeyMsg{Type: tea.KeyCtrlY})

	if !strings.Contains(copied, "Score: 0") {
		t.Errorf("clipboard = %q, want a rendered frame", copied)
	}
}

func TestModelCopyFailureIsNotFatal(t *testing.T) {
	orig := clipboardWrite
	t.Cleanup(func() { clipboardWrite = orig })
	clipboardWrite = func(string) error { return errors.New("no clipboard") }

	h := newHarness(t)
	h.key(tea.KeyMsg{Type: tea.KeyCtrlY})
	h.tick(16 * time.Millisecond)
	if h.model.State().GameOver {
		t.Error("copy failure should not affect the game")
	}
}

func TestModelQuit(t *testing.T) {
	h := newHarness(t)
	cmd := h.key(runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if h.model.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestFrameRate(t *testing.T) {
	rt := core.DefaultConfig()
	if got := frameRate(rt, core.GameState{}); got != 60 {
		t.Errorf("playing rate = %d, want 60", got)
	}
	if got := frameRate(rt, core.GameState{Paused: true}); got != 10 {
		t.Errorf("paused rate = %d, want 10", got)
	}
}
