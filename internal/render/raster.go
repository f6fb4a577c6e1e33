// Package render rasterizes charts into RGBA images. The output feeds both
// the interactive Fyne widget and the headless snapshot tool.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"chart-grid/internal/chart"
	"chart-grid/internal/projection"
	"chart-grid/pkg/colorutil"
	"chart-grid/pkg/geometry"
)

// Options controls a raster pass.
type Options struct {
	Width, Height int
	// Margin reserves space around the plot area for tick labels.
	Margin int
	// PointRadius is the marker radius in output pixels.
	PointRadius int
	Background  color.RGBA
}

// DefaultOptions returns the options used by the interactive widget.
func DefaultOptions(w, h int) Options {
	return Options{
		Width:       w,
		Height:      h,
		Margin:      40,
		PointRadius: 3,
		Background:  colorutil.Background,
	}
}

// Render draws the chart into a fresh RGBA image. The chart's viewport
// pixels are mapped onto the output plot area through a fitted affine, so a
// snapshot can be rendered at a different resolution than the interactive
// view without re-projecting the data.
func Render(c *chart.Chart, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: opts.Background}, image.Point{}, draw.Src)

	plotArea := geometry.NewRect(
		float64(opts.Margin), float64(opts.Margin),
		float64(opts.Width-2*opts.Margin), float64(opts.Height-2*opts.Margin),
	)

	group := c.Projection()
	vp := group.Viewport()
	if vp.Width == 0 || vp.Height == 0 {
		group.SetViewport(plotArea)
		vp = plotArea
	}

	xform := geometry.Identity()
	if vp != plotArea {
		if fitted, err := geometry.AffineFromRects(vp, plotArea, false); err == nil {
			xform = fitted
		}
	}

	switch group.Kind() {
	case projection.Polar:
		drawPolarFrame(img, c, plotArea, xform)
	case projection.Cartesian:
		drawCartesianFrame(img, c, plotArea, xform)
	}

	drawPoints(img, c, plotArea, xform, opts.PointRadius)
	return img
}

// drawCartesianFrame draws the plot border, grid lines, tick marks, and tick
// labels for a Cartesian chart.
func drawCartesianFrame(img *image.RGBA, c *chart.Chart, plotArea geometry.Rect, xform geometry.AffineTransform) {
	group := c.Projection()
	xAxis := group.Axis(projection.AxisX)
	yAxis := group.Axis(projection.AxisY)

	left := int(plotArea.X)
	right := int(plotArea.X + plotArea.Width)
	top := int(plotArea.Y)
	bottom := int(plotArea.Y + plotArea.Height)

	drawHLine(img, left, right, bottom, colorutil.AxisGray)
	drawVLine(img, left, top, bottom, colorutil.AxisGray)

	xb := xAxis.Bounds()
	yb := yAxis.Bounds()

	for _, tk := range xAxis.Ticks().Major {
		p := xform.Apply(group.Project(geometry.Point2D{X: tk.Value, Y: yb.Min}))
		px := int(p.X)
		if px < left || px > right {
			continue
		}
		drawVLine(img, px, top, bottom, colorutil.GridGray)
		drawVLine(img, px, bottom, bottom+4, colorutil.AxisGray)
		drawStringCentered(img, tk.Label, px, bottom+14, colorutil.Black)
	}
	for _, v := range xAxis.Ticks().Minor {
		p := xform.Apply(group.Project(geometry.Point2D{X: v, Y: yb.Min}))
		px := int(p.X)
		if px >= left && px <= right {
			drawVLine(img, px, bottom, bottom+2, colorutil.AxisGray)
		}
	}

	for _, tk := range yAxis.Ticks().Major {
		p := xform.Apply(group.Project(geometry.Point2D{X: xb.Min, Y: tk.Value}))
		py := int(p.Y)
		if py < top || py > bottom {
			continue
		}
		drawHLine(img, left, right, py, colorutil.GridGray)
		drawHLine(img, left-4, left, py, colorutil.AxisGray)
		drawStringRightAligned(img, tk.Label, left-6, py+4, colorutil.Black)
	}
	for _, v := range yAxis.Ticks().Minor {
		p := xform.Apply(group.Project(geometry.Point2D{X: xb.Min, Y: v}))
		py := int(p.Y)
		if py >= top && py <= bottom {
			drawHLine(img, left-2, left, py, colorutil.AxisGray)
		}
	}
}

// drawPolarFrame draws radial rings at the radial axis' major ticks and
// angle labels around the outermost ring.
func drawPolarFrame(img *image.RGBA, c *chart.Chart, plotArea geometry.Rect, xform geometry.AffineTransform) {
	group := c.Projection()
	radial := group.Axis(projection.AxisRadial)
	angular := group.Axis(projection.AxisAngular)

	rMax := radial.Bounds().Max
	for _, tk := range radial.Ticks().Major {
		drawRing(img, group, xform, tk.Value, colorutil.GridGray)
		p := xform.Apply(group.Project(geometry.Point2D{X: tk.Value, Y: 0}))
		drawStringCentered(img, tk.Label, int(p.X)+10, int(p.Y), colorutil.AxisGray)
	}

	for _, tk := range angular.Ticks().Major {
		theta := math.Mod(tk.Value, 360)
		p := xform.Apply(group.Project(geometry.Point2D{X: rMax, Y: theta}))
		center := xform.Apply(group.Center())
		drawLine(img, int(center.X), int(center.Y), int(p.X), int(p.Y), colorutil.GridGray)
		drawStringCentered(img, tk.Label, int(p.X), int(p.Y)-4, colorutil.Black)
	}
}

// drawRing approximates the circle of constant radius value with short
// segments through the projection, so panned centers stay correct.
func drawRing(img *image.RGBA, group *projection.Group, xform geometry.AffineTransform, radius float64, col color.RGBA) {
	const segments = 90
	prev := xform.Apply(group.Project(geometry.Point2D{X: radius, Y: 0}))
	for i := 1; i <= segments; i++ {
		theta := float64(i) * 360 / segments
		next := xform.Apply(group.Project(geometry.Point2D{X: radius, Y: theta}))
		drawLine(img, int(prev.X), int(prev.Y), int(next.X), int(next.Y), col)
		prev = next
	}
}

// drawPoints plots every series row, with selected rows drawn on top in the
// highlight color.
func drawPoints(img *image.RGBA, c *chart.Chart, plotArea geometry.Rect, xform geometry.AffineTransform, radius int) {
	group := c.Projection()
	highlighted := c.Highlighted()

	type deferred struct {
		p geometry.Point2D
	}
	var selected []deferred

	for si, s := range c.Series() {
		col := colorutil.SeriesColor(si)
		for i := 0; i < s.Len(); i++ {
			p := xform.Apply(group.Project(geometry.Point2D{X: s.X[i], Y: s.Y[i]}))
			if !plotArea.Contains(p) {
				continue
			}
			if _, ok := highlighted[s.PointID(i)]; ok {
				selected = append(selected, deferred{p: p})
				continue
			}
			fillCircle(img, int(p.X), int(p.Y), radius, col)
		}
	}
	for _, d := range selected {
		fillCircle(img, int(d.p.X), int(d.p.Y), radius+2, colorutil.Highlight)
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, col)
	}
}

func drawHLine(img *image.RGBA, x1, x2, y int, col color.RGBA) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		setPixel(img, x, y, col)
	}
}

func drawVLine(img *image.RGBA, x, y1, y2 int, col color.RGBA) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		setPixel(img, x, y, col)
	}
}

// drawLine draws a line using Bresenham's algorithm.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		setPixel(img, x1, y1, col)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r int, col color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				setPixel(img, cx+dx, cy+dy, col)
			}
		}
	}
}

// drawString draws text with its baseline origin at (x, y).
func drawString(img *image.RGBA, s string, x, y int, col color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func stringWidth(s string) int {
	d := font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(s).Ceil()
}

func drawStringCentered(img *image.RGBA, s string, cx, y int, col color.RGBA) {
	drawString(img, s, cx-stringWidth(s)/2, y, col)
}

func drawStringRightAligned(img *image.RGBA, s string, right, y int, col color.RGBA) {
	drawString(img, s, right-stringWidth(s), y, col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
