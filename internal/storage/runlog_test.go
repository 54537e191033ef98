package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "flagcatch", Score: 300, Level: 2, Duration: time.Minute},
		{GameID: "flagcatch", Score: 150, Level: 1, Duration: time.Minute},
		{GameID: "flagcatch", Score: 900, Level: 4, Duration: 61 * time.Second},
		{GameID: "flagcatch_spaced", Score: 1200, Level: 5, Duration: time.Minute},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("flagcatch", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	wantScores := []int{900, 300, 150}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("run %d: score %d, want %d", i, top[i].Score, want)
		}
	}
	if top[0].Level != 4 || top[0].Duration != 61*time.Second {
		t.Errorf("best run = %+v, want level 4 and 61s", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	all, err := store.TopRuns("", 2)
	if err != nil {
		t.Fatalf("TopRuns(all) failed: %v", err)
	}
	if len(all) != 2 || all[0].GameID != "flagcatch_spaced" {
		t.Errorf("TopRuns(all) = %+v", all)
	}
}

func TestHighScoreAndCount(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore("flagcatch")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("empty log high score = %d, want 0", hs)
	}

	for _, score := range []int{50, 400, 250} {
		if _, err := store.SaveRun(Run{GameID: "flagcatch", Score: score, Level: 1}); err != nil {
			t.Fatal(err)
		}
	}

	hs, err = store.HighScore("flagcatch")
	if err != nil {
		t.Fatal(err)
	}
	if hs != 400 {
		t.Errorf("high score = %d, want 400", hs)
	}

	n, err := store.RunCount("flagcatch")
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("run count = %d, want 3", n)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveRun(Run{GameID: "flagcatch", Score: 100, Level: 1}); err != nil {
		t.Fatal(err)
	}
	n, err := b.RunCount("flagcatch")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("second store sees %d runs, want 0", n)
	}
}

func TestTopRunsTieOrder(t *testing.T) {
	store := openTestStore(t)
	first, _ := store.SaveRun(Run{GameID: "flagcatch", Score: 100, Level: 1})
	second, _ := store.SaveRun(Run{GameID: "flagcatch", Score: 100, Level: 2})

	top, err := store.TopRuns("flagcatch", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 || top[0].ID != first || top[1].ID != second {
		t.Errorf("tie order = %+v, want insertion order", top)
	}
}
