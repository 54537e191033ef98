// Package flagcatch implements Flag Catcher: steer a net around the field
// and catch every drifting flag before the clock runs out, dodging the
// moving blocks that appear from level 2 on.
package flagcatch

import (
	"time"

	"github.com/vovakirdan/flag-catcher/internal/config"
	"github.com/vovakirdan/flag-catcher/internal/core"
	"github.com/vovakirdan/flag-catcher/internal/registry"
)

// Mode selects the spawn policy of a registered game.
type Mode int

const (
	ModeStandard Mode = iota // Spawn policy from config
	ModeSpaced               // Always spaced spawns
)

// Game adapts a Session to the registry.Game interface.
type Game struct {
	mode    Mode
	session *Session
	cfg     config.Config
	runtime core.RuntimeConfig
}

// New creates a Flag Catcher game using the configured spawn policy.
func New() *Game {
	return &Game{mode: ModeStandard, cfg: config.DefaultConfig()}
}

// NewSpaced creates a Flag Catcher game that always spaces its flags.
func NewSpaced() *Game {
	return &Game{mode: ModeSpaced, cfg: config.DefaultConfig()}
}

// Configure sets the settings used by the next Reset. Games start with
// config.DefaultConfig.
func (g *Game) Configure(cfg config.Config) {
	g.cfg = cfg
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeSpaced {
		return "flagcatch_spaced"
	}
	return "flagcatch"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeSpaced {
		return "Flag Catcher (Spaced)"
	}
	return "Flag Catcher"
}

// Reset starts a new session. A high score reached by an earlier session of
// this Game carries over.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	cfg := g.cfg

	best := 0
	if g.session != nil {
		best = g.session.HighScore()
	}

	g.session = NewSession(SessionOptions{
		Seed:   runtime.Seed,
		Policy: PolicyFromConfig(cfg.Spawn, g.mode == ModeSpaced),
		Stars:  cfg.Display.Stars,
	})
	g.session.SeedHighScore(best)
}

// PolicyFromConfig builds the spawn policy; force selects spaced spawns
// regardless of spawn.policy. Unset spacing values keep the SpacedPolicy
// defaults.
func PolicyFromConfig(s config.Spawn, force bool) SpawnPolicy {
	if !force && !s.Spaced() {
		return ScatterPolicy()
	}
	p := SpacedPolicy()
	if s.MinFlagSpacing > 0 {
		p.MinFlagSpacing = s.MinFlagSpacing
	}
	if s.PlayerClearance > 0 {
		p.PlayerClearance = s.PlayerClearance
	}
	if s.MaxAttempts > 0 {
		p.MaxAttempts = s.MaxAttempts
	}
	return p
}

// Step advances the session by one frame.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	return g.session.Step(in, dt)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.GameState()
}

// SeedHighScore raises the session's high score.
func (g *Game) SeedHighScore(n int) {
	g.session.SeedHighScore(n)
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the settings in use.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Register Flag Catcher modes with the registry.
func init() {
	registry.Register("flagcatch", func() registry.Game {
		return New()
	})
	registry.Register("flagcatch_spaced", func() registry.Game {
		return NewSpaced()
	})
}
