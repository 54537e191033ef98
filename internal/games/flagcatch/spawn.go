package flagcatch

import (
	"math/rand"

	"github.com/vovakirdan/flag-catcher/internal/core"
)

// Spawn parameters.
const (
	FlagsPerLevel   = 6
	FlagSpawnMargin = 30
	FlagBaseSpeed   = 1.5
	NormalPoints    = 50
	SpecialPoints   = 100
	SpecialChance   = 0.2
	SpecialSpeed    = 1.5
	LevelSpeedStep  = 0.2

	MaxObstacles        = 5
	ObstacleMinSize     = 30
	ObstacleMaxSize     = 60
	ObstacleSpawnMargin = 50
)

// FlagColors are assigned to flags in order, cycling.
var FlagColors = []core.Color{
	core.ColorYellow,
	core.ColorBrightGreen,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorOrange,
}

// SpawnPolicy controls how flag positions are validated.
type SpawnPolicy struct {
	// Spaced enables the spacing checks below.
	Spaced bool
	// MinFlagSpacing is the minimum distance between flags of one batch.
	MinFlagSpacing float64
	// PlayerClearance is the minimum distance from the player start.
	PlayerClearance float64
	// MaxAttempts bounds re-rolls per flag; the last roll is kept.
	MaxAttempts int
}

// ScatterPolicy places flags anywhere inside the spawn margins.
func ScatterPolicy() SpawnPolicy {
	return SpawnPolicy{}
}

// SpacedPolicy keeps flags apart from each other and from the player start.
func SpacedPolicy() SpawnPolicy {
	return SpawnPolicy{
		Spaced:          true,
		MinFlagSpacing:  60,
		PlayerClearance: 100,
		MaxAttempts:     100,
	}
}

// Spawner builds the flag and obstacle sets for a level.
type Spawner struct {
	rng    *rand.Rand
	field  Field
	policy SpawnPolicy
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, field Field, policy SpawnPolicy) *Spawner {
	return &Spawner{rng: rng, field: field, policy: policy}
}

// CreateFlags returns a fresh batch of flags for the level.
func (s *Spawner) CreateFlags(level int) []*Flag {
	flags := make([]*Flag, 0, FlagsPerLevel)
	for i := 0; i < FlagsPerLevel; i++ {
		pos := s.flagPosition(flags)

		points := NormalPoints
		mult := 1 + float64(level-1)*LevelSpeedStep
		if level > 1 && s.rng.Float64() < SpecialChance {
			points = SpecialPoints
			mult = SpecialSpeed
		}

		flags = append(flags, &Flag{
			Pos:       pos,
			Vel:       core.Vec2{X: s.uniform(-FlagBaseSpeed, FlagBaseSpeed) * mult, Y: s.uniform(-FlagBaseSpeed, FlagBaseSpeed) * mult},
			Color:     FlagColors[i%len(FlagColors)],
			Points:    points,
			Special:   points > NormalPoints,
			WaveSpeed: s.uniform(0.05, 0.1),
		})
	}
	return flags
}

// flagPosition rolls a position, re-rolling under the spaced policy.
func (s *Spawner) flagPosition(placed []*Flag) core.Vec2 {
	pos := s.rollFlagPosition()
	if !s.policy.Spaced {
		return pos
	}

	start := s.field.Center()
	for attempt := 1; attempt < s.policy.MaxAttempts; attempt++ {
		if s.spacedEnough(pos, start, placed) {
			return pos
		}
		pos = s.rollFlagPosition()
	}
	return pos
}

func (s *Spawner) spacedEnough(pos, start core.Vec2, placed []*Flag) bool {
	if core.Distance(pos, start) < s.policy.PlayerClearance {
		return false
	}
	for _, f := range placed {
		if core.Distance(pos, f.Pos) < s.policy.MinFlagSpacing {
			return false
		}
	}
	return true
}

func (s *Spawner) rollFlagPosition() core.Vec2 {
	return core.Vec2{
		X: float64(s.randint(FlagSpawnMargin, int(s.field.W)-FlagSpawnMargin)),
		Y: float64(s.randint(FlagSpawnMargin, int(s.field.H)-FlagSpawnMargin)),
	}
}

// CreateObstacles returns the obstacles for the level; none before level 2.
func (s *Spawner) CreateObstacles(level int) []*Obstacle {
	if level < 2 {
		return []*Obstacle{}
	}

	count := core.Min(level, MaxObstacles)
	speed := 0.5 + float64(level)*LevelSpeedStep
	obstacles := make([]*Obstacle, 0, count)
	for i := 0; i < count; i++ {
		w := s.randint(ObstacleMinSize, ObstacleMaxSize)
		h := s.randint(ObstacleMinSize, ObstacleMaxSize)
		x := s.randint(ObstacleSpawnMargin, int(s.field.W)-w-ObstacleSpawnMargin)
		y := s.randint(ObstacleSpawnMargin, int(s.field.H)-h-ObstacleSpawnMargin)

		obstacles = append(obstacles, &Obstacle{
			Pos:  core.Vec2{X: float64(x), Y: float64(y)},
			Size: core.Vec2{X: float64(w), Y: float64(h)},
			Vel:  core.Vec2{X: s.uniform(-1, 1) * speed, Y: s.uniform(-1, 1) * speed},
		})
	}
	return obstacles
}

// randint returns an integer in [lo, hi] inclusive.
func (s *Spawner) randint(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
