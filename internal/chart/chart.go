package chart

import (
	"fmt"

	"chart-grid/internal/projection"
	"chart-grid/internal/selection"
	"chart-grid/internal/spatial"
	"chart-grid/pkg/geometry"
)

// Chart owns one projection, the series plotted through it, and the spatial
// index over their projected positions. Charts sharing a selection
// controller stay in sync; everything else a chart owns is exclusive to it.
type Chart struct {
	id     string
	group  *projection.Group
	series []*Series
	sel    *selection.Controller

	tree      *spatial.QuadTree[string]
	treeValid bool

	// highlighted replicates the shared selection for rendering.
	highlighted map[string]struct{}
	onChange    func()
}

// New creates a chart over a projection group and subscribes it to the
// shared selection controller.
func New(id string, group *projection.Group, sel *selection.Controller) *Chart {
	c := &Chart{
		id:          id,
		group:       group,
		sel:         sel,
		highlighted: make(map[string]struct{}),
	}
	sel.Subscribe(id, func(origin string, ids map[string]struct{}) {
		c.highlighted = ids
		if c.onChange != nil {
			c.onChange()
		}
	})
	return c
}

// ID returns the chart identifier.
func (c *Chart) ID() string { return c.id }

// Projection returns the chart's axes group.
func (c *Chart) Projection() *projection.Group { return c.group }

// Series returns the plotted series.
func (c *Chart) Series() []*Series { return c.series }

// OnChange registers a hook invoked whenever the chart's highlighted subset
// changes, locally or from a sibling chart. The UI uses it to re-render.
func (c *Chart) OnChange(fn func()) { c.onChange = fn }

// Highlighted returns the ids currently highlighted on this chart.
func (c *Chart) Highlighted() map[string]struct{} { return c.highlighted }

// AddSeries plots a series: its column ranges are fed to the projection's
// axes (radial/angular for polar groups, x/y otherwise) and the spatial
// index is marked stale.
func (c *Chart) AddSeries(s *Series) error {
	xb, err := s.XBounds()
	if err != nil {
		return err
	}
	yb, err := s.YBounds()
	if err != nil {
		return err
	}

	var first, second string
	switch c.group.Kind() {
	case projection.Polar:
		first, second = projection.AxisRadial, projection.AxisAngular
	case projection.Cartesian:
		first, second = projection.AxisX, projection.AxisY
	default:
		return fmt.Errorf("chart %q: unhandled projection kind %d", c.id, c.group.Kind())
	}

	if err := c.group.Axis(first).AddSeries(xb); err != nil {
		return err
	}
	if err := c.group.Axis(second).AddSeries(yb); err != nil {
		return err
	}

	c.series = append(c.series, s)
	c.Invalidate()
	return nil
}

// SetViewport resizes the pixel region the chart projects into.
func (c *Chart) SetViewport(r geometry.Rect) {
	c.group.SetViewport(r)
	c.Invalidate()
}

// Invalidate marks the spatial index stale. The next query rebuilds it.
// Pan and zoom change projected positions, so interaction paths call this
// after mutating the view.
func (c *Chart) Invalidate() { c.treeValid = false }

// Index returns the spatial index over the projected points, rebuilding it
// if data or viewport changed since the last query.
func (c *Chart) Index() *spatial.QuadTree[string] {
	if !c.treeValid || c.tree == nil {
		c.rebuild()
	}
	return c.tree
}

// rebuild projects every row of every series and indexes the results.
// Points projected outside the viewport are skipped by the tree itself.
func (c *Chart) rebuild() {
	c.tree = spatial.New[string](c.group.Viewport(), 0, 0)
	for _, s := range c.series {
		for i := 0; i < s.Len(); i++ {
			px := c.group.Project(geometry.Point2D{X: s.X[i], Y: s.Y[i]})
			c.tree.Insert(s.PointID(i), px)
		}
	}
	c.treeValid = true
}

// HitTest resolves a tap at a pixel position to the nearest point id within
// radius pixels.
func (c *Chart) HitTest(pixel geometry.Point2D, radius float64) (string, bool) {
	el, ok := c.Index().QueryNearest(pixel, radius)
	if !ok {
		return "", false
	}
	return el.Item, true
}

// SelectRect selects every point inside a pixel rectangle, publishes the new
// selection with this chart as origin, and returns the selected ids. An
// empty rectangle hit publishes an empty selection, deselecting everywhere.
func (c *Chart) SelectRect(pixelRect geometry.Rect) []string {
	els := c.Index().QueryRect(pixelRect)
	ids := make([]string, 0, len(els))
	for _, el := range els {
		ids = append(ids, el.Item)
	}
	c.applyLocal(ids)
	c.sel.UpdateSelection(c.id, ids)
	return ids
}

// SelectPoint selects a single point id, e.g. from a tap hit-test.
func (c *Chart) SelectPoint(id string) {
	c.applyLocal([]string{id})
	c.sel.UpdateSelection(c.id, []string{id})
}

// applyLocal mirrors a locally-originated selection into the highlight set,
// since the controller will not echo it back to us.
func (c *Chart) applyLocal(ids []string) {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	c.highlighted = set
	if c.onChange != nil {
		c.onChange()
	}
}

// Close unsubscribes the chart from the shared selection controller.
func (c *Chart) Close() {
	c.sel.Unsubscribe(c.id)
}
