package desktop

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flag-catcher/internal/core"
	"github.com/vovakirdan/flag-catcher/internal/games/flagcatch"
)

// Net drawing parameters.
const (
	handleLength  = 40
	meshSpokes    = 12
	netAnimStep   = 0.2
	flagPole      = 30
	textScale     = 2
	largeTextSize = 4
)

var (
	colWhite    = rgba(core.ColorWhite.RGB())
	colGold     = rgba(core.ColorGold.RGB())
	colBrown    = rgba(core.ColorBrown.RGB())
	colGray     = rgba(core.ColorGray.RGB())
	colMesh     = rgba(core.ColorLightBlue.RGB())
	colMeshGold = color.RGBA{R: 200, G: 200, B: 100, A: 255}
	colHint     = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	colHUD      = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colShade    = color.RGBA{A: 160}
	colRed      = rgba(core.ColorRed.RGB())
	colGreen    = rgba(core.ColorGreen.RGB())
)

func rgba(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Draw paints the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.frame++
	s := g.game.Session()

	bg := s.Background()
	vector.FillRect(screen, 0, 0, ScreenWidth, float32(flagcatch.FieldHeight), rgba(bg.Color), false)
	for _, st := range bg.Stars {
		b := st.Brightness
		vector.FillCircle(screen, float32(st.Pos.X), float32(st.Pos.Y), float32(st.Size), color.RGBA{R: b, G: b, B: b, A: 255}, true)
	}

	for _, r := range s.Obstacles() {
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colGray, false)
	}
	for _, f := range s.Flags() {
		drawFlag(screen, f)
	}
	for _, p := range s.Particles() {
		vector.FillCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size), rgba(p.Color.RGB()), true)
	}
	drawNet(screen, s.Player(), float64(g.frame)*netAnimStep)

	g.drawHUD(screen)
	g.drawOverlay(screen)
}

// drawFlag draws the pole and a waving triangular banner. The banner is
// filled with a fan of lines from the pole to its tip.
func drawFlag(dst *ebiten.Image, f flagcatch.FlagView) {
	x, y := float32(f.Pos.X), float32(f.Pos.Y)
	vector.StrokeLine(dst, x, y, x, y-flagPole, 3, colBrown, true)

	wave := float32(math.Sin(f.Wave) * 3)
	tipX, tipY := x+20+wave, y-20
	c := rgba(f.Color.RGB())
	for dy := float32(10); dy <= flagPole; dy++ {
		vector.StrokeLine(dst, x, y-dy, tipX, tipY, 1, c, true)
	}

	if f.Special {
		vector.FillCircle(dst, x+10, y-20, 5, colGold, true)
	}
}

// drawNet draws the handle, the rim and an animated mesh.
func drawNet(dst *ebiten.Image, p flagcatch.Player, anim float64) {
	x, y, r := float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius)

	vector.StrokeLine(dst, x, y, x, y+handleLength, 5, colBrown, true)

	rim, mesh := colWhite, colMesh
	if p.Powered {
		rim, mesh = colGold, colMeshGold
	}
	vector.StrokeCircle(dst, x, y, r, 3, rim, true)

	wave := float32(math.Sin(anim) * 3)
	for i := range meshSpokes {
		a := float64(i) * 2 * math.Pi / meshSpokes
		ex := x + (r-5)*float32(math.Cos(a))
		ey := y + (r-5)*float32(math.Sin(a)) + wave
		vector.StrokeLine(dst, x, y, ex, ey, 1, mesh, true)
	}
	vector.StrokeCircle(dst, x, y+wave/2, r*0.7, 1, mesh, true)
}

// drawText draws s with its top-left corner at x, y.
func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, g.face, op)
}

// drawTextCentered centers s horizontally on the window.
func (g *Game) drawTextCentered(dst *ebiten.Image, s string, y float64, scale float64, c color.Color) {
	w := text.Advance(s, g.face) * scale
	g.drawText(dst, s, (ScreenWidth-w)/2, y, scale, c)
}

func (g *Game) drawHUD(dst *ebiten.Image) {
	s := g.game.Session()
	top := float32(flagcatch.FieldHeight)
	vector.FillRect(dst, 0, top, ScreenWidth, float32(hudHeight), colHUD, false)
	vector.StrokeLine(dst, 0, top, ScreenWidth, top, 2, colGray, false)

	row := float64(top) + float64(hudHeight)/2 - 13
	g.drawText(dst, fmt.Sprintf("Score: %d", s.Score()), 50, row, textScale, colWhite)
	g.drawTextCentered(dst, fmt.Sprintf("Flags: %d", s.FlagsRemaining()), row, textScale, colWhite)
	g.drawText(dst, fmt.Sprintf("Time: %ds", s.RemainingMs()/1000), ScreenWidth-170, row, textScale, colWhite)

	g.drawText(dst, fmt.Sprintf("Best: %d", s.HighScore()), 50, row+40, textScale, colGold)

	if left := s.PowerUpRemainingMs(); left > 0 {
		const barW, barH = 200, 14
		bx, by := float32(ScreenWidth/2-barW/2), float32(row+44)
		fill := float32(barW) * float32(left) / float32(flagcatch.PowerUpDuration)
		vector.FillRect(dst, bx, by, fill, barH, colGold, false)
		vector.StrokeRect(dst, bx, by, barW, barH, 1, colWhite, false)
	}

	g.drawTextCentered(dst, fmt.Sprintf("Level: %d", s.Level()), 10, textScale, colGreen)
}

func (g *Game) drawOverlay(dst *ebiten.Image) {
	s := g.game.Session()
	mid := flagcatch.FieldHeight / 2

	if g.game.Config().Display.ShowHint && s.ShowHint() {
		g.drawTextCentered(dst, flagcatch.HintText, flagcatch.FieldHeight-30, textScale, colHint)
	}

	switch {
	case s.Paused():
		vector.FillRect(dst, 0, 0, ScreenWidth, float32(flagcatch.FieldHeight), colShade, false)
		g.drawTextCentered(dst, "PAUSED", mid-50, largeTextSize, colWhite)
		g.drawTextCentered(dst, "Press P to resume", mid+20, textScale, colWhite)

	case s.GameOver():
		vector.FillRect(dst, 0, 0, ScreenWidth, float32(flagcatch.FieldHeight), colShade, false)
		g.drawTextCentered(dst, "GAME OVER", mid-100, largeTextSize, colRed)
		g.drawTextCentered(dst, fmt.Sprintf("Final Score: %d", s.Score()), mid-20, textScale, colWhite)
		g.drawTextCentered(dst, fmt.Sprintf("High Score: %d", s.HighScore()), mid+20, textScale, colGold)
		g.drawTextCentered(dst, fmt.Sprintf("Level Reached: %d", s.Level()), mid+60, textScale, colGreen)
		g.drawTextCentered(dst, "Press 'R' to play again", mid+100, textScale, colWhite)
	}
}
