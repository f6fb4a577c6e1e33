// Package chart ties the engine together for one chart instance: series
// data in, axis fitting, projection to pixels, spatial indexing, and shared
// selection out.
package chart

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"chart-grid/pkg/geometry"
)

// Series is one named column pair of a chart. For Cartesian charts X and Y
// carry the coordinates; for polar charts X is the radius and Y the angle in
// degrees. Rows are addressed by PointID for selection.
type Series struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
}

// NewSeries creates a series from two equal-length columns.
func NewSeries(id, name string, x, y []float64) (*Series, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("series %q: column length mismatch: %d vs %d", id, len(x), len(y))
	}
	return &Series{ID: id, Name: name, X: x, Y: y}, nil
}

// Len returns the number of rows.
func (s *Series) Len() int { return len(s.X) }

// PointID returns the opaque selection id of row i.
func (s *Series) PointID(i int) string {
	return fmt.Sprintf("%s:%d", s.ID, i)
}

// XBounds returns the range of the X column.
func (s *Series) XBounds() (geometry.Bounds[float64], error) {
	return columnBounds(s.ID, "x", s.X)
}

// YBounds returns the range of the Y column.
func (s *Series) YBounds() (geometry.Bounds[float64], error) {
	return columnBounds(s.ID, "y", s.Y)
}

func columnBounds(id, col string, values []float64) (geometry.Bounds[float64], error) {
	if len(values) == 0 {
		return geometry.Bounds[float64]{}, fmt.Errorf("series %q column %s: %w", id, col, geometry.ErrEmptyInput)
	}
	return geometry.Bounds[float64]{Min: floats.Min(values), Max: floats.Max(values)}, nil
}

// Summary holds per-column descriptive statistics, shown in the UI status
// line.
type Summary struct {
	MeanX, StdDevX float64
	MeanY, StdDevY float64
}

// Summarize computes the series' summary statistics.
func (s *Series) Summarize() Summary {
	if s.Len() == 0 {
		return Summary{}
	}
	return Summary{
		MeanX:   stat.Mean(s.X, nil),
		StdDevX: stat.StdDev(s.X, nil),
		MeanY:   stat.Mean(s.Y, nil),
		StdDevY: stat.StdDev(s.Y, nil),
	}
}
