package flagcatch

import (
	"math"
	"math/rand"
	"testing"
)

func newTestSpawner(seed int64, policy SpawnPolicy) *Spawner {
	return NewSpawner(rand.New(rand.NewSource(seed)), DefaultField(), policy)
}

func TestCreateFlagsLevelOne(t *testing.T) {
	s := newTestSpawner(42, ScatterPolicy())
	field := DefaultField()

	flags := s.CreateFlags(1)
	if len(flags) != FlagsPerLevel {
		t.Fatalf("flags = %d, want %d", len(flags), FlagsPerLevel)
	}

	for i, f := range flags {
		if f.Special || f.Points != NormalPoints {
			t.Errorf("flag %d: level 1 flags must be normal, got %+v", i, f)
		}
		if f.Pos.X < FlagSpawnMargin || f.Pos.X > field.W-FlagSpawnMargin ||
			f.Pos.Y < FlagSpawnMargin || f.Pos.Y > field.H-FlagSpawnMargin {
			t.Errorf("flag %d at %+v outside spawn margins", i, f.Pos)
		}
		if math.Abs(f.Vel.X) > FlagBaseSpeed || math.Abs(f.Vel.Y) > FlagBaseSpeed {
			t.Errorf("flag %d velocity %+v exceeds base speed", i, f.Vel)
		}
		if f.Color != FlagColors[i%len(FlagColors)] {
			t.Errorf("flag %d color = %v, want %v", i, f.Color, FlagColors[i%len(FlagColors)])
		}
		if f.Captured() {
			t.Errorf("flag %d spawned captured", i)
		}
	}
}

func TestCreateFlagsSpeedScaling(t *testing.T) {
	s := newTestSpawner(5, ScatterPolicy())

	level := 4
	normalMax := FlagBaseSpeed * (1 + float64(level-1)*LevelSpeedStep)
	specialMax := FlagBaseSpeed * SpecialSpeed

	specials := 0
	for range 50 {
		for _, f := range s.CreateFlags(level) {
			limit := normalMax
			if f.Special {
				specials++
				limit = specialMax
				if f.Points != SpecialPoints {
					t.Errorf("special flag worth %d, want %d", f.Points, SpecialPoints)
				}
			}
			if math.Abs(f.Vel.X) > limit+1e-9 || math.Abs(f.Vel.Y) > limit+1e-9 {
				t.Errorf("velocity %+v exceeds %v", f.Vel, limit)
			}
		}
	}

	// 300 flags at 20%: expect roughly 60
	if specials < 30 || specials > 100 {
		t.Errorf("special flags = %d of 300, want about 60", specials)
	}
}

func TestCreateObstacles(t *testing.T) {
	field := DefaultField()
	tests := []struct {
		level int
		want  int
	}{
		{1, 0},
		{2, 2},
		{3, 3},
		{5, 5},
		{9, 5},
	}

	for _, tt := range tests {
		s := newTestSpawner(int64(tt.level), ScatterPolicy())
		obstacles := s.CreateObstacles(tt.level)
		if len(obstacles) != tt.want {
			t.Errorf("level %d: %d obstacles, want %d", tt.level, len(obstacles), tt.want)
		}

		speed := 0.5 + float64(tt.level)*LevelSpeedStep
		for _, o := range obstacles {
			if o.Size.X < ObstacleMinSize || o.Size.X > ObstacleMaxSize ||
				o.Size.Y < ObstacleMinSize || o.Size.Y > ObstacleMaxSize {
				t.Errorf("level %d: size %+v out of range", tt.level, o.Size)
			}
			r := o.Rect()
			if r.X < ObstacleSpawnMargin || r.Right() > field.W-ObstacleSpawnMargin ||
				r.Y < ObstacleSpawnMargin || r.Bottom() > field.H-ObstacleSpawnMargin {
				t.Errorf("level %d: rect %+v outside margins", tt.level, r)
			}
			if math.Abs(o.Vel.X) > speed || math.Abs(o.Vel.Y) > speed {
				t.Errorf("level %d: velocity %+v exceeds %v", tt.level, o.Vel, speed)
			}
		}
	}
}

func TestSpacedPolicy(t *testing.T) {
	field := DefaultField()
	policy := SpacedPolicy()

	for seed := int64(1); seed <= 20; seed++ {
		s := newTestSpawner(seed, policy)
		flags := s.CreateFlags(1)

		for i, a := range flags {
			if d := distance(a.Pos.X, a.Pos.Y, field.Center().X, field.Center().Y); d < policy.PlayerClearance {
				t.Errorf("seed %d: flag %d only %v from start", seed, i, d)
			}
			for j := i + 1; j < len(flags); j++ {
				b := flags[j]
				if d := distance(a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y); d < policy.MinFlagSpacing {
					t.Errorf("seed %d: flags %d and %d only %v apart", seed, i, j, d)
				}
			}
		}
	}
}

func TestSpacedPolicyTerminates(t *testing.T) {
	// Spacing larger than the field can satisfy still yields a full batch.
	policy := SpawnPolicy{Spaced: true, MinFlagSpacing: 5000, PlayerClearance: 5000, MaxAttempts: 3}
	s := newTestSpawner(1, policy)
	if got := len(s.CreateFlags(1)); got != FlagsPerLevel {
		t.Errorf("flags = %d, want %d", got, FlagsPerLevel)
	}
}

func TestSpawnDeterminism(t *testing.T) {
	a := newTestSpawner(99, ScatterPolicy()).CreateFlags(3)
	b := newTestSpawner(99, ScatterPolicy()).CreateFlags(3)
	for i := range a {
		if a[i].Pos != b[i].Pos || a[i].Vel != b[i].Vel || a[i].Points != b[i].Points {
			t.Fatalf("flag %d differs between identical seeds", i)
		}
	}
}

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}
