package chartview

import (
	"image"
	"image/color"

	"chart-grid/pkg/geometry"
)

// drawRubberBand draws the in-progress selection rectangle as a dashed
// outline over the rendered chart.
func (cv *ChartView) drawRubberBand(img *image.RGBA) {
	rect := geometry.RectFromCorners(cv.toPixel(cv.selectStart), cv.toPixel(cv.selectEnd))
	col := color.RGBA{R: 30, G: 100, B: 200, A: 255}

	x1 := int(rect.X)
	y1 := int(rect.Y)
	x2 := int(rect.X + rect.Width)
	y2 := int(rect.Y + rect.Height)

	for x := x1; x <= x2; x++ {
		dashedSet(img, x, y1, col)
		dashedSet(img, x, y2, col)
	}
	for y := y1; y <= y2; y++ {
		dashedSet(img, x1, y, col)
		dashedSet(img, x2, y, col)
	}
}

// dashedSet writes a pixel on a 4-pixel dash cycle, bounds-checked.
func dashedSet(img *image.RGBA, x, y int, col color.RGBA) {
	if (x+y)%4 >= 2 {
		return
	}
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, col)
	}
}
