package core

import (
	"fmt"
	"math"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorGold
	ColorLightBlue
)

// RGB is a 24-bit color used for backgrounds and the desktop renderer.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color in #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// LerpRGB interpolates each channel linearly from a to b.
// t is clamped to [0, 1]; channels are truncated like integer pixel math.
func LerpRGB(a, b RGB, t float64) RGB {
	t = ClampF(t, 0, 1)
	return RGB{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a)*(1-t) + float64(b)*t
	return uint8(math.Floor(v + 1e-9))
}

// rgbTable maps palette colors to their true-color values.
var rgbTable = map[Color]RGB{
	ColorDefault:       {255, 255, 255},
	ColorRed:           {255, 0, 0},
	ColorGreen:         {0, 128, 0},
	ColorYellow:        {255, 255, 0},
	ColorBlue:          {0, 0, 255},
	ColorMagenta:       {255, 0, 255},
	ColorCyan:          {0, 255, 255},
	ColorWhite:         {255, 255, 255},
	ColorBrightRed:     {255, 85, 85},
	ColorBrightGreen:   {0, 255, 0},
	ColorBrightYellow:  {255, 255, 85},
	ColorBrightBlue:    {85, 85, 255},
	ColorBrightMagenta: {255, 85, 255},
	ColorBrightCyan:    {85, 255, 255},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 165, 0},
	ColorGray:          {100, 100, 100},
	ColorBrown:         {139, 69, 19},
	ColorGold:          {255, 215, 0},
	ColorLightBlue:     {173, 216, 230},
}

// RGB returns the true-color value of a palette color.
func (c Color) RGB() RGB {
	if v, ok := rgbTable[c]; ok {
		return v
	}
	return rgbTable[ColorDefault]
}
