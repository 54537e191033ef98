package tui

import (
	"io"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flag-catcher/internal/config"
	"github.com/vovakirdan/flag-catcher/internal/core"
	"github.com/vovakirdan/flag-catcher/internal/registry"
	"github.com/vovakirdan/flag-catcher/internal/storage"
)

// Options carries the settings and collaborators of a terminal session.
type Options struct {
	Config config.Config
	Logger *log.Logger // nil discards logs
}

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	runtime   core.RuntimeConfig
	keys      *KeyMapper
	input     *heldInput
	logger    *log.Logger
	gameState core.GameState
	lastTick  time.Time
	runStart  time.Time
	quitting  bool
	runSaved  bool // Whether the current run has been logged
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if c, ok := game.(registry.Configurable); ok {
		c.Configure(opts.Config)
	}

	keys := NewKeyMapper(opts.Config.Controls)
	now := time.Now()

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		runtime:  cfg,
		keys:     keys,
		input:    newHeldInput(keys.HoldTicks()),
		logger:   logger.With("game", game.ID()),
		lastTick: now,
		runStart: now,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime)
	m.seedHighScore()
	m.logger.Info("game started", "seed", m.runtime.Seed)

	return tickCmd(m.runtime.TickRate)
}

// seedHighScore carries this process's best run into the game.
func (m Model) seedHighScore() {
	seeder, ok := m.game.(registry.HighScoreSeeder)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("cannot read high score", "err", err)
		return
	}
	seeder.SeedHighScore(best)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "level", m.gameState.Level)
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionCopy:
		m.copyScreen()
	default:
		m.input.Press(action)
	}
	return m, nil
}

// handleTick steps the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := now.Sub(m.lastTick)
	m.lastTick = now

	in := m.input.Frame()
	if m.gameState.Paused || m.gameState.GameOver {
		m.input.Release()
	}

	result := m.game.Step(in, dt)
	m.gameState = result.State
	m.handleEvents(result.Events, now)

	return m, tickCmd(frameRate(m.runtime, m.gameState))
}

func (m *Model) handleEvents(events []core.Event, now time.Time) {
	for _, e := range events {
		switch e.Kind {
		case core.EventCapture:
			m.logger.Debug("capture", "points", e.Value, "score", m.gameState.Score)
		case core.EventGameOver:
			m.logger.Info("game over", "score", e.Value, "level", m.gameState.Level)
			m.saveRun(now)
		case core.EventReset:
			m.logger.Info("restart")
			m.runStart = now
			m.runSaved = false
		default:
			m.logger.Info(e.Kind.String(), "value", e.Value)
		}
	}
}

// saveRun logs the finished run once.
func (m *Model) saveRun(now time.Time) {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true

	_, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Level:    m.gameState.Level,
		Duration: now.Sub(m.runStart),
	})
	if err != nil {
		m.logger.Warn("cannot save run", "err", err)
	}
}

// copyScreen puts the current frame, without colors, on the clipboard.
func (m Model) copyScreen() {
	m.game.Render(m.screen)
	if err := clipboardWrite(m.screen.String()); err != nil {
		m.logger.Warn("clipboard copy failed", "err", err)
		return
	}
	m.logger.Info("frame copied to clipboard")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
