// Package chartview provides an interactive Fyne widget for one chart, with
// drag-pan, wheel zoom, rubber-band selection, and tap hit-testing.
package chartview

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"chart-grid/internal/chart"
	"chart-grid/internal/render"
	"chart-grid/pkg/geometry"
)

const (
	zoomStep     = 1.25
	hitRadiusPx  = 8.0
	plotMarginPx = 40
)

// Tool represents the current interaction tool.
type Tool int

const (
	ToolPan Tool = iota
	ToolSelect
)

// ChartView displays one chart and routes pointer gestures into its
// projection and selection state.
type ChartView struct {
	widget.BaseWidget

	chart  *chart.Chart
	raster *fynecanvas.Raster

	tool Tool

	// Drag state
	dragging bool

	// Rubber-band selection state
	selecting   bool
	selectStart fyne.Position
	selectEnd   fyne.Position

	// Ratio between raster pixels and Fyne units, captured on each draw.
	pixelScaleX float64
	pixelScaleY float64

	// Status callback (hit-test readouts, selection counts)
	onStatus func(msg string)
}

// New creates a chart view bound to a chart. The chart's OnChange hook is
// claimed to refresh the view when sibling charts drive the selection.
func New(c *chart.Chart) *ChartView {
	cv := &ChartView{
		chart:       c,
		pixelScaleX: 1,
		pixelScaleY: 1,
	}
	cv.raster = fynecanvas.NewRaster(cv.draw)
	cv.raster.ScaleMode = fynecanvas.ImageScalePixels
	cv.raster.SetMinSize(fyne.NewSize(300, 240))
	c.OnChange(func() {
		cv.Refresh()
	})
	cv.ExtendBaseWidget(cv)
	return cv
}

// Chart returns the underlying chart.
func (cv *ChartView) Chart() *chart.Chart { return cv.chart }

// SetTool switches between pan and rubber-band selection.
func (cv *ChartView) SetTool(tool Tool) {
	cv.tool = tool
	cv.selecting = false
}

// OnStatus registers a callback for one-line status messages.
func (cv *ChartView) OnStatus(fn func(msg string)) { cv.onStatus = fn }

func (cv *ChartView) status(format string, args ...interface{}) {
	if cv.onStatus != nil {
		cv.onStatus(fmt.Sprintf(format, args...))
	}
}

// CreateRenderer implements fyne.Widget.
func (cv *ChartView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(cv.raster)
}

// draw renders the chart at the raster's pixel size, then overlays the
// rubber band while a selection drag is in progress.
func (cv *ChartView) draw(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	size := cv.Size()
	if size.Width > 0 && size.Height > 0 {
		cv.pixelScaleX = float64(w) / float64(size.Width)
		cv.pixelScaleY = float64(h) / float64(size.Height)
	}

	opts := render.DefaultOptions(w, h)
	opts.Margin = plotMarginPx

	plotArea := geometry.NewRect(
		float64(opts.Margin), float64(opts.Margin),
		float64(w-2*opts.Margin), float64(h-2*opts.Margin),
	)
	if cv.chart.Projection().Viewport() != plotArea {
		cv.chart.SetViewport(plotArea)
	}

	img := render.Render(cv.chart, opts)
	if cv.selecting {
		cv.drawRubberBand(img)
	}
	return img
}

// toPixel converts an event position to raster pixel coordinates.
func (cv *ChartView) toPixel(pos fyne.Position) geometry.Point2D {
	return geometry.Point2D{
		X: float64(pos.X) * cv.pixelScaleX,
		Y: float64(pos.Y) * cv.pixelScaleY,
	}
}

// Dragged pans the view, or grows the rubber band in selection mode.
func (cv *ChartView) Dragged(ev *fyne.DragEvent) {
	if cv.tool == ToolSelect {
		if !cv.selecting {
			cv.selecting = true
			cv.selectStart = fyne.Position{
				X: ev.Position.X - ev.Dragged.DX,
				Y: ev.Position.Y - ev.Dragged.DY,
			}
		}
		cv.selectEnd = ev.Position
		cv.Refresh()
		return
	}

	group := cv.chart.Projection()
	if !cv.dragging {
		cv.dragging = true
		group.BeginPan()
	}
	group.Translate(geometry.Point2D{
		X: float64(ev.Dragged.DX) * cv.pixelScaleX,
		Y: float64(ev.Dragged.DY) * cv.pixelScaleY,
	})
	cv.chart.Invalidate()
	cv.Refresh()
}

// DragEnd resolves the gesture: a pan returns the projection to idle, a
// rubber-band drag commits the selection.
func (cv *ChartView) DragEnd() {
	group := cv.chart.Projection()

	if cv.selecting {
		cv.selecting = false
		rect := geometry.RectFromCorners(cv.toPixel(cv.selectStart), cv.toPixel(cv.selectEnd))
		ids := cv.chart.SelectRect(rect)
		cv.status("selected %d points", len(ids))
		cv.Refresh()
		return
	}

	cv.dragging = false
	group.End()
}

// Scrolled zooms about the view center. Each wheel notch is a complete
// scale gesture.
func (cv *ChartView) Scrolled(ev *fyne.ScrollEvent) {
	factor := zoomStep
	if ev.Scrolled.DY < 0 {
		factor = 1 / zoomStep
	}

	group := cv.chart.Projection()
	group.BeginScale()
	group.Scale(factor, factor)
	group.End()

	cv.chart.Invalidate()
	cv.Refresh()
}

// Tapped hit-tests the nearest point and selects it.
func (cv *ChartView) Tapped(ev *fyne.PointEvent) {
	px := cv.toPixel(ev.Position)
	id, ok := cv.chart.HitTest(px, hitRadiusPx)
	if !ok {
		cv.status("no point within %.0fpx", hitRadiusPx)
		return
	}

	cv.chart.SelectPoint(id)
	data := cv.chart.Projection().PixelToData(px)
	cv.status("%s at (%.3g, %.3g)", id, data.X, data.Y)
	cv.Refresh()
}

// TappedSecondary clears the shared selection across all charts.
func (cv *ChartView) TappedSecondary(_ *fyne.PointEvent) {
	cv.chart.SelectRect(geometry.Rect{})
	cv.status("selection cleared")
	cv.Refresh()
}
