package flagcatch

import "github.com/vovakirdan/flag-catcher/internal/core"

// Obstacle is a moving block that stops the net.
type Obstacle struct {
	Pos  core.Vec2 // Top-left corner
	Size core.Vec2 // Width, height
	Vel  core.Vec2
}

// Rect returns the obstacle's bounding box.
func (o *Obstacle) Rect() core.RectF {
	return core.RectF{X: o.Pos.X, Y: o.Pos.Y, W: o.Size.X, H: o.Size.Y}
}

// Move advances the obstacle and bounces it elastically off the field walls.
func (o *Obstacle) Move(field Field) {
	o.Pos = o.Pos.Add(o.Vel)

	o.Vel.X = reflect(o.Pos.X, o.Vel.X, 0, field.W-o.Size.X)
	o.Vel.Y = reflect(o.Pos.Y, o.Vel.Y, 0, field.H-o.Size.Y)
}

// CheckCollision reports whether a circle touches the obstacle.
func (o *Obstacle) CheckCollision(pos core.Vec2, radius float64) bool {
	return core.CircleRectDistance(pos, o.Rect()) < radius
}
