package projection

import (
	"math"

	"chart-grid/pkg/geometry"
)

// Polar angle convention: 0 degrees points up and angles grow clockwise (the
// astronomy convention). projectPolar and pixelToDataPolar must stay exact
// mirror images of each other.

// Center returns the polar center in pixel coordinates: the viewport center
// shifted by the accumulated translation.
func (g *Group) Center() geometry.Point2D {
	return g.viewport.Center().Add(g.pan)
}

// maxRadiusPx returns the pixel length the radial axis stretches over: half
// the smaller viewport dimension, scaled by the current zoom.
func (g *Group) maxRadiusPx() float64 {
	return math.Min(g.viewport.Width, g.viewport.Height) / 2 * g.radiusScale
}

// projectPolar maps (r, thetaDegrees) data to pixels. A radius at the radial
// minimum lands exactly on the center regardless of theta.
func (g *Group) projectPolar(data geometry.Point2D) geometry.Point2D {
	radial := g.axes[AxisRadial]
	radiusPx := radial.DataToPixel(data.X, g.maxRadiusPx())

	rad := data.Y * math.Pi / 180
	center := g.Center()
	return geometry.Point2D{
		X: center.X + radiusPx*math.Sin(rad),
		Y: center.Y - radiusPx*math.Cos(rad),
	}
}

// pixelToDataPolar is the exact inverse of projectPolar. Theta is normalized
// to [0, 360).
func (g *Group) pixelToDataPolar(pixel geometry.Point2D) geometry.Point2D {
	radial := g.axes[AxisRadial]
	center := g.Center()

	d := pixel.Sub(center)
	radiusPx := math.Hypot(d.X, d.Y)

	theta := math.Atan2(d.X, -d.Y) * 180 / math.Pi
	if theta < 0 {
		theta += 360
	}

	return geometry.Point2D{
		X: radial.PixelToData(radiusPx, g.maxRadiusPx()),
		Y: theta,
	}
}
