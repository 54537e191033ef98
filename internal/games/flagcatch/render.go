package flagcatch

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/flag-catcher/internal/core"
)

// Visual characters for the terminal renderer
const (
	PoleChar      = '│'
	BannerChar    = '▶'
	BannerAltChar = '▷'
	SpecialChar   = '★'
	ObstacleChar  = '▓'
	RingChar      = 'o'
	MeshChar      = '+'
	HandleChar    = '\\'
	SparkChar     = '*'
	DimSparkChar  = '·'
	StarChar      = '.'
	BrightStar    = '+'
)

// HUD layout
const (
	hudRows    = 2
	minScreenW = 40
	minScreenH = 16
)

// HintText is shown during the first seconds of level 1.
const HintText = "Arrow keys to move, P to pause"

// viewport maps field coordinates onto the cells inside the border box.
type viewport struct {
	x0, y0 int // Top-left inner cell
	w, h   int // Inner size in cells
	field  Field
}

func newViewport(dst *core.Screen, field Field) viewport {
	return viewport{
		x0:    1,
		y0:    1,
		w:     dst.Width() - 2,
		h:     dst.Height() - hudRows - 2,
		field: field,
	}
}

func (v viewport) cell(p core.Vec2) (int, int) {
	x := v.x0 + int(p.X/v.field.W*float64(v.w))
	y := v.y0 + int(p.Y/v.field.H*float64(v.h))
	return core.Clamp(x, v.x0, v.x0+v.w-1), core.Clamp(y, v.y0, v.y0+v.h-1)
}

func (v viewport) scaleX(d float64) float64 { return d / v.field.W * float64(v.w) }
func (v viewport) scaleY(d float64) float64 { return d / v.field.H * float64(v.h) }

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	s := g.session
	vp := newViewport(dst, s.Field())
	bg := s.Background()
	dst.SetBackground(bg.Color)

	dst.DrawBoxColored(core.NewRect(0, 0, dst.Width(), dst.Height()-hudRows), core.ColorGray)

	renderStars(dst, vp, bg.Stars)
	renderObstacles(dst, vp, s.Obstacles())
	renderFlags(dst, vp, s.Flags())
	renderParticles(dst, vp, s.Particles())
	renderNet(dst, vp, s.Player())

	g.renderHUD(dst)
	g.renderOverlay(dst, vp)
}

func renderStars(dst *core.Screen, vp viewport, stars []StarView) {
	for _, st := range stars {
		x, y := vp.cell(st.Pos)
		ch, c := StarChar, core.ColorGray
		if st.Brightness > 200 {
			ch, c = BrightStar, core.ColorWhite
		}
		dst.SetColored(x, y, ch, c)
	}
}

func renderObstacles(dst *core.Screen, vp viewport, rects []core.RectF) {
	for _, r := range rects {
		x0, y0 := vp.cell(core.Vec2{X: r.X, Y: r.Y})
		x1, y1 := vp.cell(core.Vec2{X: r.Right(), Y: r.Bottom()})
		dst.DrawRectColored(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), ObstacleChar, core.ColorGray)
	}
}

func renderFlags(dst *core.Screen, vp viewport, flags []FlagView) {
	for _, f := range flags {
		x, y := vp.cell(f.Pos)
		dst.SetColored(x, y, PoleChar, core.ColorBrown)

		banner := BannerChar
		if math.Sin(f.Wave) < 0 {
			banner = BannerAltChar
		}
		if f.Special {
			banner = SpecialChar
		}
		if y > vp.y0 {
			y--
		}
		dst.SetColored(x+1, y, banner, f.Color)
	}
}

func renderParticles(dst *core.Screen, vp viewport, particles []ParticleView) {
	for _, p := range particles {
		if p.Size < 1 {
			continue
		}
		x, y := vp.cell(p.Pos)
		ch := SparkChar
		if p.Size < 2.5 {
			ch = DimSparkChar
		}
		dst.SetColored(x, y, ch, p.Color)
	}
}

// renderNet draws the ring as an ellipse scaled to the cell aspect, the mesh
// at its center and a short handle toward the lower right.
func renderNet(dst *core.Screen, vp viewport, p Player) {
	c := core.ColorWhite
	if p.Powered {
		c = core.ColorGold
	}

	cx, cy := vp.cell(p.Pos)
	rx := math.Max(vp.scaleX(p.Radius), 1)
	ry := math.Max(vp.scaleY(p.Radius), 1)

	const segments = 24
	for i := range segments {
		a := float64(i) / segments * 2 * math.Pi
		x := cx + int(math.Round(math.Cos(a)*rx))
		y := cy + int(math.Round(math.Sin(a)*ry))
		dst.SetColored(x, y, RingChar, c)
	}
	dst.SetColored(cx, cy, MeshChar, c)

	hx := cx + int(math.Round(rx*0.8)) + 1
	hy := cy + int(math.Round(ry*0.8)) + 1
	dst.SetColored(hx, hy, HandleChar, core.ColorBrown)
	dst.SetColored(hx+1, hy+1, HandleChar, core.ColorBrown)
}

// renderHUD draws score, flags left, time and level, then the power-up bar.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	row := dst.Height() - hudRows

	dst.DrawTextColored(1, row, fmt.Sprintf("Score: %d", s.Score()), core.ColorWhite)
	dst.DrawTextCenteredColored(row, fmt.Sprintf("Flags: %d", s.FlagsRemaining()), core.ColorWhite)

	right := fmt.Sprintf("Time: %d  Level: %d", s.RemainingMs()/1000, s.Level())
	dst.DrawTextColored(dst.Width()-len(right)-1, row, right, core.ColorWhite)

	if left := s.PowerUpRemainingMs(); left > 0 {
		dst.DrawTextColored(1, row+1, "POWER "+powerBar(left, PowerUpDuration, 20), core.ColorGold)
	}

	best := fmt.Sprintf("Best: %d", s.HighScore())
	dst.DrawTextColored(dst.Width()-len(best)-1, row+1, best, core.ColorGray)
}

// powerBar renders remaining/total as a fixed-width bar.
func powerBar(remaining, total int64, width int) string {
	filled := 0
	if total > 0 {
		filled = int(remaining * int64(width) / total)
	}
	filled = core.Clamp(filled, 0, width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// renderOverlay draws the hint, pause box or game-over box.
func (g *Game) renderOverlay(dst *core.Screen, vp viewport) {
	s := g.session

	if g.cfg.Display.ShowHint && s.ShowHint() {
		dst.DrawTextCenteredColored(vp.y0, HintText, core.ColorWhite)
	}

	switch {
	case s.Paused():
		drawMessageBox(dst, vp, core.ColorYellow,
			"PAUSED",
			"Press P to resume",
		)
	case s.GameOver():
		drawMessageBox(dst, vp, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Final Score: %d", s.Score()),
			fmt.Sprintf("High Score: %d", s.HighScore()),
			fmt.Sprintf("Level Reached: %d", s.Level()),
			"",
			"Press 'R' to play again",
		)
	}
}

// drawMessageBox draws a bordered, centered box around lines.
func drawMessageBox(dst *core.Screen, vp viewport, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	x := vp.x0 + (vp.w-boxW)/2
	y := vp.y0 + (vp.h-boxH)/2

	dst.DrawRectColored(core.NewRect(x, y, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBoxColored(core.NewRect(x, y, boxW, boxH), c)
	for i, l := range lines {
		dst.DrawTextColored(x+(boxW-len([]rune(l)))/2, y+1+i, l, c)
	}
}
