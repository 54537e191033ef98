package flagcatch

import "math"

// Snapshot contains the session state in primitive types for determinism
// checks. Float fields are stored as their IEEE-754 bits.
type Snapshot struct {
	Tick        uint64
	State       string
	Score       int
	Level       int
	HighScore   int
	RemainingMs int64
	PlayerX     uint64
	PlayerY     uint64
	Powered     bool

	// Each flag is 5 values: X, Y, VX, VY, Captured
	FlagData []uint64

	// Each obstacle is 4 values: X, Y, VX, VY
	ObstacleData []uint64

	EffectCount int
	Background  uint32 // Packed RGB of the current color
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	flagData := make([]uint64, 0, len(s.flags)*5)
	for _, f := range s.flags {
		captured := uint64(0)
		if f.Captured() {
			captured = 1
		}
		flagData = append(flagData,
			math.Float64bits(f.Pos.X), math.Float64bits(f.Pos.Y),
			math.Float64bits(f.Vel.X), math.Float64bits(f.Vel.Y),
			captured)
	}

	obstacleData := make([]uint64, 0, len(s.obstacles)*4)
	for _, o := range s.obstacles {
		obstacleData = append(obstacleData,
			math.Float64bits(o.Pos.X), math.Float64bits(o.Pos.Y),
			math.Float64bits(o.Vel.X), math.Float64bits(o.Vel.Y))
	}

	bg := s.background.Color()

	return Snapshot{
		Tick:         uint64(s.tickCount), //#nosec G115 -- tick count is always positive
		State:        s.state.String(),
		Score:        s.score,
		Level:        s.level,
		HighScore:    s.highScore,
		RemainingMs:  s.remainingMs,
		PlayerX:      math.Float64bits(s.player.Pos.X),
		PlayerY:      math.Float64bits(s.player.Pos.Y),
		Powered:      s.player.Powered,
		FlagData:     flagData,
		ObstacleData: obstacleData,
		EffectCount:  len(s.effects),
		Background:   uint32(bg.R)<<16 | uint32(bg.G)<<8 | uint32(bg.B),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RemainingMs) //#nosec G115 -- hash computation
	h = h*31 + snap.PlayerX
	h = h*31 + snap.PlayerY
	if snap.Powered {
		h = h*31 + 1
	}

	for _, v := range snap.FlagData {
		h = h*31 + v
	}
	for _, v := range snap.ObstacleData {
		h = h*31 + v
	}

	h = h*31 + uint64(snap.EffectCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Background)

	return h
}
