package flagcatch

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/flag-catcher/internal/core"
)

// Capture burst parameters.
const (
	EffectParticles = 10
	EffectLifetime  = 30   // Ticks
	ParticleShrink  = 0.95 // Size multiplier per tick
)

// Particle is one spark of a capture burst.
type Particle struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Size float64
}

// CaptureEffect is the particle burst left behind by a capture.
type CaptureEffect struct {
	Origin    core.Vec2
	Color     core.Color
	Lifetime  int
	particles []Particle
}

// NewCaptureEffect creates a burst of particles flying out of origin.
func NewCaptureEffect(rng *rand.Rand, origin core.Vec2, color core.Color) *CaptureEffect {
	e := &CaptureEffect{
		Origin:    origin,
		Color:     color,
		Lifetime:  EffectLifetime,
		particles: make([]Particle, EffectParticles),
	}
	for i := range e.particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := 1 + rng.Float64()*2
		e.particles[i] = Particle{
			Pos:  origin,
			Vel:  core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Size: float64(2 + rng.Intn(4)),
		}
	}
	return e
}

// Update ages the effect by one tick.
func (e *CaptureEffect) Update() {
	e.Lifetime--
	for i := range e.particles {
		p := &e.particles[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Size *= ParticleShrink
	}
}

// IsFinished reports whether the effect has run out of time.
func (e *CaptureEffect) IsFinished() bool {
	return e.Lifetime <= 0
}

// Particles returns a copy of the particle set.
func (e *CaptureEffect) Particles() []Particle {
	out := make([]Particle, len(e.particles))
	copy(out, e.particles)
	return out
}
