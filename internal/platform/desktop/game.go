// Package desktop runs Flag Catcher in a desktop window using Ebitengine.
package desktop

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/flag-catcher/internal/config"
	"github.com/vovakirdan/flag-catcher/internal/core"
	"github.com/vovakirdan/flag-catcher/internal/games/flagcatch"
	"github.com/vovakirdan/flag-catcher/internal/storage"
)

// Window layout: the field on top, the HUD strip below it.
const (
	ScreenWidth  = 700
	ScreenHeight = 800
	hudHeight    = ScreenHeight - int(flagcatch.FieldHeight)
)

// Options configure the desktop front-end.
type Options struct {
	Config config.Config
	Seed   int64
	Logger *log.Logger
}

// Game implements ebiten.Game around a Flag Catcher mode.
type Game struct {
	game    *flagcatch.Game
	store   *storage.Store
	keys    *KeyMap
	kb      Keyboard
	logger  *log.Logger
	runtime core.RuntimeConfig
	face    text.Face

	now    func() time.Time
	setTPS func(int)

	lastUpdate time.Time
	runStart   time.Time
	runSaved   bool
	tps        int
	frame      int // drawn frames, drives the net animation
}

// NewGame creates the ebiten game and starts a session.
func NewGame(game *flagcatch.Game, store *storage.Store, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rt := core.DefaultConfig()
	rt.ScreenW = ScreenWidth
	rt.ScreenH = ScreenHeight
	rt.Seed = opts.Seed
	if opts.Config.Display.TickRate > 0 {
		rt.TickRate = opts.Config.Display.TickRate
	}
	if opts.Config.Display.PausedTickRate > 0 {
		rt.PausedTickRate = opts.Config.Display.PausedTickRate
	}

	game.Configure(opts.Config)

	g := &Game{
		game:    game,
		store:   store,
		keys:    NewKeyMap(opts.Config.Controls),
		kb:      ebitenKeyboard{},
		logger:  logger,
		runtime: rt,
		face:    text.NewGoXFace(basicfont.Face7x13),
		now:     time.Now,
		setTPS:  ebiten.SetTPS,
	}
	g.start()
	return g
}

// start resets the game and seeds its high score from the run log.
func (g *Game) start() {
	g.game.Reset(g.runtime)
	if g.store != nil {
		best, err := g.store.HighScore(g.game.ID())
		if err != nil {
			g.logger.Warn("high score lookup failed", "err", err)
		} else {
			g.game.SeedHighScore(best)
		}
	}
	g.lastUpdate = g.now()
	g.runStart = g.lastUpdate
	g.runSaved = false
	g.tps = g.runtime.TickRate
	g.logger.Info("game started", "game", g.game.ID(), "seed", g.runtime.Seed)
}

// Update advances the session by the wall time since the previous call.
func (g *Game) Update() error {
	in, quit := g.keys.Poll(g.kb)
	if quit {
		g.logger.Info("quit", "score", g.game.State().Score)
		return ebiten.Termination
	}

	now := g.now()
	dt := now.Sub(g.lastUpdate)
	g.lastUpdate = now

	result := g.game.Step(in, dt)
	g.handleEvents(result.Events, now)

	if rate := g.rate(result.State); rate != g.tps {
		g.tps = rate
		g.setTPS(rate)
	}
	return nil
}

// rate is the tick rate for the given state.
func (g *Game) rate(state core.GameState) int {
	if state.Paused && g.runtime.PausedTickRate > 0 {
		return g.runtime.PausedTickRate
	}
	return g.runtime.TickRate
}

func (g *Game) handleEvents(events []core.Event, now time.Time) {
	for _, e := range events {
		g.logger.Debug("event", "kind", e.Kind, "value", e.Value)

		switch e.Kind {
		case core.EventGameOver:
			g.saveRun(now)
		case core.EventReset:
			g.runStart = now
			g.runSaved = false
		case core.EventLevelUp:
			g.logger.Info("level up", "level", e.Value)
		}
	}
}

func (g *Game) saveRun(now time.Time) {
	if g.runSaved || g.store == nil {
		return
	}
	g.runSaved = true

	st := g.game.State()
	run := storage.Run{
		GameID:   g.game.ID(),
		Score:    st.Score,
		Level:    st.Level,
		Duration: now.Sub(g.runStart),
	}
	if _, err := g.store.SaveRun(run); err != nil {
		g.logger.Warn("saving run failed", "err", err)
		return
	}
	g.logger.Info("run finished", "score", st.Score, "level", st.Level, "high", st.HighScore)
}

// Layout keeps a fixed logical resolution; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Run opens the window and blocks until the player quits.
func Run(game *flagcatch.Game, store *storage.Store, opts Options) error {
	g := NewGame(game, store, opts)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetTPS(g.tps)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
