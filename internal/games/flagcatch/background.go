package flagcatch

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/flag-catcher/internal/core"
)

// Background animation parameters.
const (
	TransitionStep = 0.02 // Progress per tick
	ParallaxStep   = 0.5  // Offset per tick
	DefaultStars   = 50
)

// BackgroundPalette holds one dark color per level, reused cyclically.
var BackgroundPalette = []core.RGB{
	{R: 0, G: 0, B: 30},  // Dark blue
	{R: 30, G: 0, B: 30}, // Dark purple
	{R: 30, G: 30, B: 0}, // Dark yellow
	{R: 0, G: 30, B: 0},  // Dark green
	{R: 30, G: 0, B: 0},  // Dark red
}

// LevelColor returns the background color for a level (1-based).
func LevelColor(level int) core.RGB {
	n := len(BackgroundPalette)
	idx := ((level-1)%n + n) % n
	return BackgroundPalette[idx]
}

// Star is a decorative parallax point.
type Star struct {
	X, Y       float64
	Size       int
	Brightness uint8
	Speed      float64
}

// Background owns the level color, its transitions and the star field.
type Background struct {
	field   Field
	color   core.RGB
	target  core.RGB
	blend   float64
	active  bool
	offsetX float64
	stars   []Star
}

// NewBackground creates a background for the given level.
func NewBackground(rng *rand.Rand, level int, field Field, stars int) *Background {
	b := &Background{
		field: field,
		color: LevelColor(level),
		stars: make([]Star, stars),
	}
	for i := range b.stars {
		b.stars[i] = Star{
			X:          float64(rng.Intn(int(field.W) + 1)),
			Y:          float64(rng.Intn(int(field.H) + 1)),
			Size:       1 + rng.Intn(3),
			Brightness: uint8(100 + rng.Intn(156)),
			Speed:      0.2 + rng.Float64()*0.8,
		}
	}
	return b
}

// Update advances parallax and any running color transition.
func (b *Background) Update() {
	b.offsetX = math.Mod(b.offsetX+ParallaxStep, b.field.W)

	if !b.active {
		return
	}
	b.blend += TransitionStep
	if b.blend >= 1 {
		b.color = b.target
		b.blend = 0
		b.active = false
	}
}

// StartTransition begins blending toward the color of nextLevel.
func (b *Background) StartTransition(nextLevel int) {
	b.target = LevelColor(nextLevel)
	b.blend = 0
	b.active = true
}

// Transitioning reports whether a blend is in progress.
func (b *Background) Transitioning() bool {
	return b.active
}

// Blend returns the transition progress in [0, 1].
func (b *Background) Blend() float64 {
	return b.blend
}

// Color returns the color to paint this frame.
func (b *Background) Color() core.RGB {
	if !b.active {
		return b.color
	}
	return core.LerpRGB(b.color, b.target, b.blend)
}

// Stars returns a copy of the star field.
func (b *Background) Stars() []Star {
	out := make([]Star, len(b.stars))
	copy(out, b.stars)
	return out
}

// StarX returns the on-screen x of a star after parallax scrolling.
func (b *Background) StarX(s Star) float64 {
	x := math.Mod(s.X-b.offsetX*s.Speed, b.field.W)
	if x < 0 {
		x += b.field.W
	}
	return x
}
