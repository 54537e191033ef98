package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flag-catcher/internal/core"
	_ "github.com/vovakirdan/flag-catcher/internal/games/flagcatch"
	"github.com/vovakirdan/flag-catcher/internal/storage"
)

func TestMenuShowsSessionStats(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	for _, score := range []int{300, 650} {
		if _, err := store.SaveRun(storage.Run{GameID: "flagcatch", Score: score, Level: 2}); err != nil {
			t.Fatal(err)
		}
	}

	m := NewMenuModel(store, core.DefaultConfig())

	var found bool
	for _, item := range m.items {
		switch item.GameID {
		case "flagcatch":
			found = true
			if item.Best != 650 || item.Runs != 2 {
				t.Errorf("flagcatch item = %+v, want best 650 runs 2", item)
			}
		case "flagcatch_spaced":
			if item.Best != 0 || item.Runs != 0 {
				t.Errorf("spaced item = %+v, want no runs", item)
			}
		}
	}
	if !found {
		t.Fatal("flagcatch mode missing from menu")
	}

	if view := m.View(); !strings.Contains(view, "runs 2") {
		t.Errorf("menu view should show the run count:\n%s", view)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should exit the menu")
	}
	sel := next.(MenuModel).Selected()
	if sel == nil || sel.GameID != "flagcatch_spaced" {
		t.Errorf("selected = %+v, want flagcatch_spaced", sel)
	}
}
