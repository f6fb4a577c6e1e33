package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHSLToRGBPrimaries(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 0, A: 255}, HSLToRGB(0, 1, 0.5))
	assert.Equal(t, color.RGBA{R: 0, G: 255, B: 0, A: 255}, HSLToRGB(120, 1, 0.5))
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 255, A: 255}, HSLToRGB(240, 1, 0.5))

	// Zero saturation collapses to gray regardless of hue.
	gray := HSLToRGB(200, 0, 0.5)
	assert.Equal(t, gray.R, gray.G)
	assert.Equal(t, gray.G, gray.B)
}

func TestSeriesColorDistinctAndOpaque(t *testing.T) {
	seen := make(map[color.RGBA]bool)
	for i := 0; i < 8; i++ {
		c := SeriesColor(i)
		assert.Equal(t, uint8(255), c.A)
		assert.False(t, seen[c], "series %d repeats an earlier color", i)
		seen[c] = true
	}
}

func TestSeriesColorDeterministic(t *testing.T) {
	assert.Equal(t, SeriesColor(3), SeriesColor(3))
}
