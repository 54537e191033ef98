package flagcatch

import "github.com/vovakirdan/flag-catcher/internal/core"

// Flag bounce margins measured from the field edges.
const (
	FlagMarginX      = 20.0
	FlagMarginTop    = 40.0
	FlagMarginBottom = 10.0

	// FlagHitbox models the pole width; it is independent of the drawn size.
	FlagHitbox = 10.0
)

// Flag is a capturable target drifting around the field.
type Flag struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Color   core.Color
	Points  int
	Special bool

	// Cosmetic waving
	Wave      float64
	WaveSpeed float64

	captured bool
}

// Captured reports whether the flag has been taken.
func (f *Flag) Captured() bool {
	return f.captured
}

// Move advances the flag by its velocity and bounces it off the margin box.
// Captured flags never move.
func (f *Flag) Move(field Field) {
	if f.captured {
		return
	}

	f.Wave += f.WaveSpeed
	f.Pos = f.Pos.Add(f.Vel)

	f.Vel.X = reflect(f.Pos.X, f.Vel.X, FlagMarginX, field.W-FlagMarginX)
	f.Vel.Y = reflect(f.Pos.Y, f.Vel.Y, FlagMarginTop, field.H-FlagMarginBottom)
}

// CheckCapture marks the flag captured when the net overlaps its hitbox.
// Returns true only on the tick the capture happens.
func (f *Flag) CheckCapture(pos core.Vec2, radius float64) bool {
	if f.captured {
		return false
	}
	if core.Distance(pos, f.Pos) < radius+FlagHitbox {
		f.captured = true
		return true
	}
	return false
}

// reflect points v back inside [min, max] when pos has left that range.
func reflect(pos, v, min, max float64) float64 {
	switch {
	case pos < min && v < 0:
		return -v
	case pos > max && v > 0:
		return -v
	}
	return v
}
