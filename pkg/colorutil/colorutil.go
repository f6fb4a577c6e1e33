// Package colorutil provides shared color utilities for the charting engine.
package colorutil

import (
	"image/color"
	"math"
)

// Common chart colors.
var (
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	GridGray   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	AxisGray   = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	Highlight  = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Background = color.RGBA{R: 250, G: 250, B: 250, A: 255}
)

// HSLToRGB converts HSL (H in degrees 0-360, S and L in 0-1) to an RGBA color.
func HSLToRGB(h, s, l float64) color.RGBA {
	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(h, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}

// SeriesColor returns a stable, visually distinct color for the i-th series.
// Hues step around the wheel by the golden angle so neighboring series stay
// distinguishable regardless of how many there are.
func SeriesColor(i int) color.RGBA {
	const goldenAngle = 137.508
	hue := math.Mod(float64(i)*goldenAngle, 360)
	return HSLToRGB(hue, 0.65, 0.45)
}
