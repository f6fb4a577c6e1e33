package projection

import (
	"fmt"

	"chart-grid/pkg/geometry"
)

// projectCartesian maps (x, y) data to pixels. Screen y grows downward while
// data y grows upward, so the y stretch is flipped against the viewport
// height. This flip is independent of any per-axis inversion flag.
func (g *Group) projectCartesian(data geometry.Point2D) geometry.Point2D {
	vp := g.viewport
	x := g.axes[AxisX]
	y := g.axes[AxisY]

	px := vp.X + x.DataToPixel(data.X, vp.Width) + g.pan.X
	py := vp.Y + vp.Height - y.DataToPixel(data.Y, vp.Height) + g.pan.Y
	return geometry.Point2D{X: px, Y: py}
}

// pixelToDataCartesian is the exact inverse of projectCartesian.
func (g *Group) pixelToDataCartesian(pixel geometry.Point2D) geometry.Point2D {
	vp := g.viewport
	x := g.axes[AxisX]
	y := g.axes[AxisY]

	localX := pixel.X - g.pan.X - vp.X
	localY := vp.Height - (pixel.Y - g.pan.Y - vp.Y)
	return geometry.Point2D{
		X: x.PixelToData(localX, vp.Width),
		Y: y.PixelToData(localY, vp.Height),
	}
}

// scaleCartesian zooms each axis independently by stretching its bounds about
// the data point currently under the viewport center, so that point stays
// fixed on screen.
func (g *Group) scaleCartesian(factorX, factorY float64) {
	center := g.viewport.Center()
	focal := g.pixelToDataCartesian(center)

	g.stretchAxis(AxisX, focal.X, factorX)
	g.stretchAxis(AxisY, focal.Y, factorY)
}

// stretchAxis narrows (factor > 1) or widens (factor < 1) an axis' bounds
// about the focal data value. The stretch happens in the mapping's normalized
// space, which keeps it correct for logarithmic axes too.
func (g *Group) stretchAxis(id string, focal, factor float64) {
	if factor == 1 || factor <= 0 {
		return
	}
	ax := g.axes[id]
	m := ax.Mapping()
	if m.Bounds.IsDegenerate() {
		return
	}

	t := m.Forward(focal)
	lo := t - t/factor
	hi := t + (1-t)/factor

	newBounds := geometry.NewBounds(m.Inverse(lo), m.Inverse(hi))
	if err := ax.Fix(newBounds); err != nil {
		// Log axes can reject a widened range crossing zero; keep the view.
		return
	}
}

// ZoomToRect pins the axis bounds to the data region visible inside a pixel
// rectangle, implementing zoom-to-selection. Polar groups do not support it.
func (g *Group) ZoomToRect(pixelRect geometry.Rect) error {
	if g.kind != Cartesian {
		return fmt.Errorf("zoom-to-rect needs a cartesian projection: %w", ErrAxesInit)
	}

	a := g.pixelToDataCartesian(pixelRect.TopLeft())
	b := g.pixelToDataCartesian(pixelRect.BottomRight())

	if err := g.axes[AxisX].Fix(geometry.NewBounds(a.X, b.X)); err != nil {
		return err
	}
	if err := g.axes[AxisY].Fix(geometry.NewBounds(a.Y, b.Y)); err != nil {
		return err
	}
	g.pan = geometry.Point2D{}
	return nil
}
