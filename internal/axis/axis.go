// Package axis models a single chart dimension: its bounds, mapping,
// inversion flag, and the tick set derived from them.
package axis

import (
	"fmt"

	"chart-grid/internal/scale"
	"chart-grid/pkg/geometry"
)

// Axis owns one dimension's bounds and mapping and lazily derives its ticks.
// An axis starts empty and auto-fits to data as series are added, unless the
// caller pins its bounds explicitly. Axes are owned by a single axes group
// and are not safe for concurrent use.
type Axis struct {
	id string

	// fixed is set when the caller (or an interactive zoom) pinned the
	// bounds; auto-fit stops updating bounds while it is set.
	fixed  bool
	bounds geometry.Bounds[float64]

	// dataBounds is the union of every series range seen so far.
	dataBounds geometry.Bounds[float64]
	hasData    bool

	mapping  scale.Mapping
	inverted bool

	minTicks, maxTicks int

	ticks      scale.Ticks
	ticksValid bool
}

// NewLinear creates an empty linear axis.
func NewLinear(id string) *Axis {
	return &Axis{id: id, mapping: scale.NewLinear(geometry.Bounds[float64]{})}
}

// NewLog creates an empty base-10 logarithmic axis. Bounds stay unset until
// data arrives; adding non-positive data fails at that point.
func NewLog(id string) *Axis {
	return &Axis{id: id, mapping: scale.Mapping{Kind: scale.Logarithmic, Base: 10}}
}

// ID returns the axis identifier.
func (a *Axis) ID() string { return a.id }

// Bounds returns the current effective bounds.
func (a *Axis) Bounds() geometry.Bounds[float64] { return a.bounds }

// DataBounds returns the union of all series ranges added so far.
func (a *Axis) DataBounds() geometry.Bounds[float64] { return a.dataBounds }

// Mapping returns the axis mapping over its current bounds.
func (a *Axis) Mapping() scale.Mapping { return a.mapping }

// Inverted reports whether the axis direction is flipped.
func (a *Axis) Inverted() bool { return a.inverted }

// SetInverted flips the axis direction and invalidates the tick cache.
func (a *Axis) SetInverted(inverted bool) {
	if a.inverted == inverted {
		return
	}
	a.inverted = inverted
	a.ticksValid = false
}

// SetTickCounts sets the [min, max] window for the number of major ticks.
// Zeros select the generator defaults.
func (a *Axis) SetTickCounts(minCount, maxCount int) {
	if a.minTicks == minCount && a.maxTicks == maxCount {
		return
	}
	a.minTicks = minCount
	a.maxTicks = maxCount
	a.ticksValid = false
}

// AddSeries unions a series' value range into the axis data bounds. Unless
// the bounds are pinned, the axis adopts the widened range and marks its
// ticks stale. A logarithmic axis rejects non-positive ranges.
func (a *Axis) AddSeries(fieldBounds geometry.Bounds[float64]) error {
	if a.mapping.Kind == scale.Logarithmic && fieldBounds.Min <= 0 {
		return fmt.Errorf("axis %q: series range [%g, %g]: %w",
			a.id, fieldBounds.Min, fieldBounds.Max, scale.ErrDomain)
	}

	if a.hasData {
		a.dataBounds = a.dataBounds.Union(fieldBounds)
	} else {
		a.dataBounds = fieldBounds
		a.hasData = true
	}

	if !a.fixed {
		return a.applyBounds(a.dataBounds)
	}
	return nil
}

// Fix pins the axis bounds, stopping auto-fit. Interactive zoom uses this
// path too: a zoomed view overrides the data extent until released.
func (a *Axis) Fix(b geometry.Bounds[float64]) error {
	if err := a.applyBounds(b); err != nil {
		return err
	}
	a.fixed = true
	return nil
}

// Fixed reports whether the bounds are pinned.
func (a *Axis) Fixed() bool { return a.fixed }

// Release unpins the bounds; the axis reverts to the accumulated data extent.
func (a *Axis) Release() {
	a.fixed = false
	if a.hasData {
		// Data bounds were valid when added, so this cannot fail.
		_ = a.applyBounds(a.dataBounds)
	}
}

// applyBounds swaps in new bounds and invalidates the tick cache.
func (a *Axis) applyBounds(b geometry.Bounds[float64]) error {
	m, err := a.mapping.WithBounds(b)
	if err != nil {
		return fmt.Errorf("axis %q: %w", a.id, err)
	}
	a.mapping = m
	a.bounds = b
	a.ticksValid = false
	return nil
}

// Ticks returns the derived tick set, recomputing it if bounds, mapping,
// inversion, or tick counts changed since the last call.
func (a *Axis) Ticks() scale.Ticks {
	if !a.ticksValid {
		a.ticks = scale.Generate(a.mapping, a.minTicks, a.maxTicks, a.inverted)
		a.ticksValid = true
	}
	return a.ticks
}

// DataToPixel converts a data value to a pixel offset along an axis of the
// given length, honoring inversion by flipping the stretch direction.
func (a *Axis) DataToPixel(v, lengthPx float64) float64 {
	t := a.mapping.Forward(v)
	if a.inverted {
		t = 1 - t
	}
	return t * lengthPx
}

// PixelToData converts a pixel offset along an axis of the given length back
// to a data value. It is the exact inverse of DataToPixel. A zero-length
// axis resolves to the middle of the bounds.
func (a *Axis) PixelToData(px, lengthPx float64) float64 {
	t := 0.5
	if lengthPx != 0 {
		t = px / lengthPx
	}
	if a.inverted {
		t = 1 - t
	}
	return a.mapping.Inverse(t)
}
