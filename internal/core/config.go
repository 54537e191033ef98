package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW        int   // Screen width in characters
	ScreenH        int   // Screen height in characters
	TickRate       int   // Simulation ticks per second (default 60)
	PausedTickRate int   // Tick rate while paused (default 10)
	Seed           int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:        80,
		ScreenH:        24,
		TickRate:       60,
		PausedTickRate: 10,
		Seed:           0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	Level     int  // Current level (1-based)
	HighScore int  // Best score within this process
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventCapture   EventKind = iota // A flag was captured; Value = points
	EventPowerUp                    // Power-up activated
	EventPowerDown                  // Power-up expired
	EventLevelUp                    // Level advanced; Value = new level
	EventGameOver                   // Countdown reached zero; Value = final score
	EventHighScore                  // High score raised; Value = new high score
	EventPause
	EventResume
	EventReset
)

// String returns a short name for logging.
func (k EventKind) String() string {
	switch k {
	case EventCapture:
		return "capture"
	case EventPowerUp:
		return "power_up"
	case EventPowerDown:
		return "power_down"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventHighScore:
		return "high_score"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by Game.Step.
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
