package flagcatch

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flag-catcher/internal/core"
)

// Playing field and player parameters, in field units and milliseconds.
const (
	FieldWidth  = 700.0
	FieldHeight = 600.0

	PlayerRadius = 25.0
	PlayerSpeed  = 5.0
	PoweredSpeed = 8.0

	GameDuration    int64 = 60000
	PowerUpDuration int64 = 5000
	PowerUpChance         = 0.5

	// HintThreshold is the remaining time above which the level 1 hint shows.
	HintThreshold int64 = 55000
)

// Field is the rectangle the player, flags and obstacles live in.
type Field struct {
	W, H float64
}

// DefaultField returns the standard 700x600 field.
func DefaultField() Field {
	return Field{W: FieldWidth, H: FieldHeight}
}

// Center returns the middle of the field, where the player starts.
func (f Field) Center() core.Vec2 {
	return core.Vec2{X: f.W / 2, Y: f.H / 2}
}

// State is the session's top-level mode.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Player is the net.
type Player struct {
	Pos     core.Vec2
	Radius  float64
	Speed   float64
	Powered bool
}

// SessionOptions configure a new session.
type SessionOptions struct {
	Seed   int64
	Field  Field // Zero value means DefaultField
	Policy SpawnPolicy
	Stars  int
}

// Session owns the whole game state and advances it one frame per Step.
type Session struct {
	field   Field
	stars   int
	rng     *rand.Rand
	spawner *Spawner

	player     Player
	powerUp    PowerUp
	flags      []*Flag
	obstacles  []*Obstacle
	effects    []*CaptureEffect
	background *Background

	state     State
	score     int
	level     int
	highScore int
	tickCount int

	// Session clock in milliseconds; advanced by every Step.
	now         int64
	start       int64
	pausedAt    int64
	remainingMs int64

	events []core.Event
}

// NewSession creates a session ready to play level 1.
func NewSession(opts SessionOptions) *Session {
	field := opts.Field
	if field.W <= 0 || field.H <= 0 {
		field = DefaultField()
	}
	rng := rand.New(rand.NewSource(opts.Seed)) //#nosec G404 -- deterministic gameplay RNG

	s := &Session{
		field:   field,
		stars:   max(opts.Stars, 0),
		rng:     rng,
		spawner: NewSpawner(rng, field, opts.Policy),
	}
	s.Reset()
	return s
}

// Reset starts a fresh run. The high score is kept.
func (s *Session) Reset() {
	s.player = Player{
		Pos:    s.field.Center(),
		Radius: PlayerRadius,
		Speed:  PlayerSpeed,
	}
	s.powerUp = PowerUp{Duration: PowerUpDuration}

	s.level = 1
	s.score = 0
	s.tickCount = 0
	s.flags = s.spawner.CreateFlags(s.level)
	s.obstacles = s.spawner.CreateObstacles(s.level)
	s.effects = nil
	s.background = NewBackground(s.rng, s.level, s.field, s.stars)

	s.start = s.now
	s.remainingMs = GameDuration
	s.state = StatePlaying
}

// Step advances the session by one frame. dt is the wall time since the
// previous Step and drives the countdown and power-up timers; entity motion
// is per frame.
func (s *Session) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	s.events = nil
	if dt > 0 {
		s.now += dt.Milliseconds()
	}

	switch s.state {
	case StateGameOver:
		if in.Has(core.ActionRestart) {
			s.Reset()
			s.emit(core.EventReset, 0)
		} else {
			s.background.Update()
		}
		return s.result()
	case StatePaused:
		if in.Has(core.ActionPause) {
			s.resume()
		}
		if s.state == StatePaused {
			return s.result()
		}
	case StatePlaying:
		if in.Has(core.ActionPause) {
			s.pause()
			return s.result()
		}
	}

	s.tickCount++
	s.background.Update()
	s.movePlayer(in)

	for _, o := range s.obstacles {
		o.Move(s.field)
	}

	if s.updateCountdown() {
		return s.result()
	}

	if s.powerUp.Expired(s.now) {
		s.powerUp.Deactivate()
		s.player.Speed = PlayerSpeed
		s.player.Powered = false
		s.emit(core.EventPowerDown, 0)
	}

	s.updateFlags()
	s.updateEffects()

	if s.FlagsRemaining() == 0 {
		s.levelUp()
	}

	return s.result()
}

func (s *Session) pause() {
	s.remainingMs = s.countdown()
	s.pausedAt = s.now
	s.state = StatePaused
	s.emit(core.EventPause, 0)
}

// resume shifts the start reference and the boost timer so the paused
// interval does not count.
func (s *Session) resume() {
	paused := s.now - s.pausedAt
	s.start += paused
	if s.powerUp.Active {
		s.powerUp.ActivatedAt += paused
	}
	s.state = StatePlaying
	s.emit(core.EventResume, 0)
}

// movePlayer applies each axis intent independently, clamps to the field and
// reverts the whole move when it would overlap an obstacle.
func (s *Session) movePlayer(in core.InputFrame) {
	p := s.player.Pos
	if in.Has(core.ActionLeft) {
		p.X -= s.player.Speed
	}
	if in.Has(core.ActionRight) {
		p.X += s.player.Speed
	}
	if in.Has(core.ActionUp) {
		p.Y -= s.player.Speed
	}
	if in.Has(core.ActionDown) {
		p.Y += s.player.Speed
	}

	r := s.player.Radius
	p.X = core.ClampF(p.X, r, s.field.W-r)
	p.Y = core.ClampF(p.Y, r, s.field.H-r)

	for _, o := range s.obstacles {
		if o.CheckCollision(p, r) {
			return
		}
	}
	s.player.Pos = p
}

func (s *Session) countdown() int64 {
	left := GameDuration - (s.now - s.start)
	if left < 0 {
		return 0
	}
	return left
}

// updateCountdown refreshes the remaining time and ends the run at zero.
// Returns true when the run ended this frame.
func (s *Session) updateCountdown() bool {
	s.remainingMs = s.countdown()
	if s.remainingMs > 0 {
		return false
	}

	s.state = StateGameOver
	s.emit(core.EventGameOver, s.score)
	if s.score > s.highScore {
		s.highScore = s.score
		s.emit(core.EventHighScore, s.highScore)
	}
	return true
}

func (s *Session) updateFlags() {
	for _, f := range s.flags {
		f.Move(s.field)
		if !f.CheckCapture(s.player.Pos, s.player.Radius) {
			continue
		}

		s.score += f.Points
		s.emit(core.EventCapture, f.Points)
		s.effects = append(s.effects, NewCaptureEffect(s.rng, f.Pos, f.Color))

		if f.Special && s.rng.Float64() < PowerUpChance {
			s.activatePowerUp()
		}
	}
}

func (s *Session) activatePowerUp() {
	s.powerUp.Activate(s.now)
	s.player.Speed = PoweredSpeed
	s.player.Powered = true
	s.emit(core.EventPowerUp, int(PowerUpDuration))
}

func (s *Session) updateEffects() {
	alive := s.effects[:0]
	for _, e := range s.effects {
		e.Update()
		if !e.IsFinished() {
			alive = append(alive, e)
		}
	}
	s.effects = alive
}

func (s *Session) levelUp() {
	s.level++
	s.flags = s.spawner.CreateFlags(s.level)
	s.obstacles = s.spawner.CreateObstacles(s.level)
	s.background.StartTransition(s.level)
	s.emit(core.EventLevelUp, s.level)
}

func (s *Session) emit(kind core.EventKind, value int) {
	s.events = append(s.events, core.Event{Kind: kind, Value: value})
}

func (s *Session) result() core.StepResult {
	return core.StepResult{State: s.GameState(), Events: s.events}
}

// SeedHighScore raises the high score to n; it never lowers it.
func (s *Session) SeedHighScore(n int) {
	if n > s.highScore {
		s.highScore = n
	}
}

// GameState summarizes the session for the platform layer.
func (s *Session) GameState() core.GameState {
	return core.GameState{
		Score:     s.score,
		Level:     s.level,
		HighScore: s.highScore,
		GameOver:  s.state == StateGameOver,
		Paused:    s.state == StatePaused,
	}
}
