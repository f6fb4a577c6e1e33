// Package projection composes 1D axes into 2D transforms between data space
// and pixel space, for Cartesian and polar charts, and carries the pan/zoom
// view state mutated by pointer gestures.
package projection

import (
	"errors"
	"fmt"
	"math"

	"chart-grid/internal/axis"
	"chart-grid/pkg/geometry"
)

// ErrAxesInit reports a projection built with the wrong axis kinds or count.
// This is a programming error by the caller and fails construction.
var ErrAxesInit = errors.New("invalid axes configuration")

// Kind identifies the projection variant. The set is closed; every switch
// over Kind handles all variants.
type Kind int

const (
	Cartesian Kind = iota
	Polar
)

// Axis identifiers within a group.
const (
	AxisX       = "x"
	AxisY       = "y"
	AxisRadial  = "r"
	AxisAngular = "theta"
)

// State is the interaction state of the projection. The UI layer drives
// transitions: drag-start enters Panning, gesture end returns to Idle.
type State int

const (
	Idle State = iota
	Panning
	Scaling
)

// Group composes a projection's axes with its mutable view state. A group
// owns its axes; they do not outlive it and are never shared across charts.
type Group struct {
	kind Kind
	axes map[string]*axis.Axis

	// viewport is the pixel rectangle the projection fills.
	viewport geometry.Rect

	// pan is a display-only pixel offset (Cartesian). For polar groups the
	// same field shifts the center relative to the viewport center.
	pan geometry.Point2D

	// radiusScale scales the polar radius in pixel space. Always 1 for
	// Cartesian groups.
	radiusScale float64

	state State
}

// NewCartesian creates a Cartesian group over an x and a y axis.
func NewCartesian(x, y *axis.Axis) (*Group, error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("cartesian projection needs x and y axes: %w", ErrAxesInit)
	}
	return &Group{
		kind:        Cartesian,
		axes:        map[string]*axis.Axis{AxisX: x, AxisY: y},
		radiusScale: 1,
	}, nil
}

// NewPolar creates a polar group over a radial and an angular axis.
func NewPolar(radial, angular *axis.Axis) (*Group, error) {
	if radial == nil || angular == nil {
		return nil, fmt.Errorf("polar projection needs radial and angular axes: %w", ErrAxesInit)
	}
	return &Group{
		kind:        Polar,
		axes:        map[string]*axis.Axis{AxisRadial: radial, AxisAngular: angular},
		radiusScale: 1,
	}, nil
}

// Kind returns the projection variant.
func (g *Group) Kind() Kind { return g.kind }

// Axis returns the axis registered under id, or nil.
func (g *Group) Axis(id string) *axis.Axis { return g.axes[id] }

// Viewport returns the pixel rectangle the projection fills.
func (g *Group) Viewport() geometry.Rect { return g.viewport }

// SetViewport sets the pixel rectangle the projection fills.
func (g *Group) SetViewport(r geometry.Rect) { g.viewport = r }

// Pan returns the current display offset in pixels.
func (g *Group) Pan() geometry.Point2D { return g.pan }

// State returns the current interaction state.
func (g *Group) State() State { return g.state }

// BeginPan enters the Panning state at the start of a drag gesture.
func (g *Group) BeginPan() { g.state = Panning }

// BeginScale enters the Scaling state at the start of a pinch or wheel
// gesture sequence.
func (g *Group) BeginScale() { g.state = Scaling }

// End resolves any in-progress gesture back to Idle.
func (g *Group) End() { g.state = Idle }

// Project converts a data point to its pixel position.
// Cartesian data is (x, y); polar data is (r, thetaDegrees).
func (g *Group) Project(data geometry.Point2D) geometry.Point2D {
	switch g.kind {
	case Cartesian:
		return g.projectCartesian(data)
	case Polar:
		return g.projectPolar(data)
	default:
		panic(fmt.Sprintf("unhandled projection kind %d", g.kind))
	}
}

// PixelToData converts a pixel position back to data coordinates. It is the
// exact inverse of Project for both projection kinds.
func (g *Group) PixelToData(pixel geometry.Point2D) geometry.Point2D {
	switch g.kind {
	case Cartesian:
		return g.pixelToDataCartesian(pixel)
	case Polar:
		return g.pixelToDataPolar(pixel)
	default:
		panic(fmt.Sprintf("unhandled projection kind %d", g.kind))
	}
}

// Translate shifts the view by a pixel delta. For Cartesian groups this is a
// display-only pan offset; the axis bounds are untouched. For polar groups it
// moves the center.
func (g *Group) Translate(delta geometry.Point2D) {
	g.pan = g.pan.Add(delta)
}

// ResetView drops all accumulated pan/zoom state: the pan offset and radius
// scale return to their defaults and every axis reverts to its data extent.
func (g *Group) ResetView() {
	g.pan = geometry.Point2D{}
	g.radiusScale = 1
	g.state = Idle
	for _, ax := range g.axes {
		ax.Release()
	}
}

// Scale zooms the view. Factors above 1 zoom in. Cartesian axes scale
// independently; polar groups merge the two factors into one uniform radius
// factor, since the radius has a single scale. The view-center focal point
// stays fixed on screen.
func (g *Group) Scale(factorX, factorY float64) {
	switch g.kind {
	case Cartesian:
		g.scaleCartesian(factorX, factorY)
	case Polar:
		// Geometric mean keeps a symmetric pinch symmetric. The pan
		// scales with the radius so the data point under the viewport
		// center stays fixed on screen.
		f := math.Sqrt(factorX * factorY)
		g.radiusScale *= f
		g.pan = g.pan.Scale(f)
	default:
		panic(fmt.Sprintf("unhandled projection kind %d", g.kind))
	}
}
