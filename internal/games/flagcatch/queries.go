package flagcatch

import "github.com/vovakirdan/flag-catcher/internal/core"

// Read-only views used by the renderers. None of these mutate the session.

// FlagView is a drawable uncaptured flag.
type FlagView struct {
	Pos     core.Vec2
	Color   core.Color
	Special bool
	Wave    float64
}

// ParticleView is a drawable capture spark.
type ParticleView struct {
	Pos   core.Vec2
	Size  float64
	Color core.Color
}

// StarView is a star at its scrolled position.
type StarView struct {
	Pos        core.Vec2
	Size       int
	Brightness uint8
}

// BackgroundView is the background as it should be painted this frame.
type BackgroundView struct {
	Color         core.RGB
	Blend         float64
	Transitioning bool
	Stars         []StarView
}

// Field returns the playing field dimensions.
func (s *Session) Field() Field {
	return s.field
}

// State returns the current mode.
func (s *Session) State() State {
	return s.state
}

// Player returns the net.
func (s *Session) Player() Player {
	return s.player
}

// Flags returns the uncaptured flags.
func (s *Session) Flags() []FlagView {
	out := make([]FlagView, 0, len(s.flags))
	for _, f := range s.flags {
		if f.Captured() {
			continue
		}
		out = append(out, FlagView{Pos: f.Pos, Color: f.Color, Special: f.Special, Wave: f.Wave})
	}
	return out
}

// Obstacles returns the obstacle rectangles.
func (s *Session) Obstacles() []core.RectF {
	out := make([]core.RectF, len(s.obstacles))
	for i, o := range s.obstacles {
		out[i] = o.Rect()
	}
	return out
}

// Particles returns every live particle of every running effect.
func (s *Session) Particles() []ParticleView {
	var out []ParticleView
	for _, e := range s.effects {
		for _, p := range e.Particles() {
			out = append(out, ParticleView{Pos: p.Pos, Size: p.Size, Color: e.Color})
		}
	}
	return out
}

// Background returns the current background color and stars.
func (s *Session) Background() BackgroundView {
	stars := s.background.Stars()
	view := BackgroundView{
		Color:         s.background.Color(),
		Blend:         s.background.Blend(),
		Transitioning: s.background.Transitioning(),
		Stars:         make([]StarView, len(stars)),
	}
	for i, st := range stars {
		view.Stars[i] = StarView{
			Pos:        core.Vec2{X: s.background.StarX(st), Y: st.Y},
			Size:       st.Size,
			Brightness: st.Brightness,
		}
	}
	return view
}

func (s *Session) Score() int     { return s.score }
func (s *Session) Level() int     { return s.level }
func (s *Session) HighScore() int { return s.highScore }
func (s *Session) GameOver() bool { return s.state == StateGameOver }
func (s *Session) Paused() bool   { return s.state == StatePaused }

// RemainingMs returns the countdown as of the last playing frame.
func (s *Session) RemainingMs() int64 {
	return s.remainingMs
}

// FlagsRemaining counts uncaptured flags.
func (s *Session) FlagsRemaining() int {
	n := 0
	for _, f := range s.flags {
		if !f.Captured() {
			n++
		}
	}
	return n
}

// PowerUpRemainingMs returns the boost time left, 0 when not powered.
// The value is frozen while paused.
func (s *Session) PowerUpRemainingMs() int64 {
	if s.state == StatePaused {
		return s.powerUp.Remaining(s.pausedAt)
	}
	return s.powerUp.Remaining(s.now)
}

// ShowHint reports whether the controls hint belongs on screen.
func (s *Session) ShowHint() bool {
	return s.state != StateGameOver && s.level == 1 && s.remainingMs > HintThreshold
}
