// Package registry holds the game mode factories. Modes register themselves
// in init() so front-ends can list and launch them by ID.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/flag-catcher/internal/config"
	"github.com/vovakirdan/flag-catcher/internal/core"
)

// Game is what a front-end drives. Implementations hold no terminal or
// window state; the platform maps input, paces frames and draws.
type Game interface {
	// ID returns the mode identifier used by the CLI and the run log.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a new run.
	Reset(cfg core.RuntimeConfig)

	// Step advances one frame. dt is the wall time since the previous Step.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current frame into dst. dst is pre-cleared.
	Render(dst *core.Screen)

	// State returns score, level and mode flags.
	State() core.GameState
}

// HighScoreSeeder is implemented by games that can carry a best score from
// an earlier run of the same process.
type HighScoreSeeder interface {
	SeedHighScore(n int)
}

// Configurable is implemented by games that take the loaded settings.
// Front-ends call Configure before the first Reset.
type Configurable interface {
	Configure(cfg config.Config)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// ErrUnknownGame is returned by Create for unregistered IDs.
var ErrUnknownGame = errors.New("registry: unknown game")

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
