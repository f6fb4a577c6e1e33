package axis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chart-grid/internal/scale"
	"chart-grid/pkg/geometry"
)

func TestAutoFitToSeries(t *testing.T) {
	ax := NewLinear("x")
	require.NoError(t, ax.AddSeries(geometry.NewBounds(0.0, 10.0)))
	assert.Equal(t, geometry.NewBounds(0.0, 10.0), ax.Bounds())

	// A second series widens both the data bounds and the effective bounds.
	require.NoError(t, ax.AddSeries(geometry.NewBounds(-5.0, 3.0)))
	assert.Equal(t, geometry.NewBounds(-5.0, 10.0), ax.Bounds())
	assert.Equal(t, geometry.NewBounds(-5.0, 10.0), ax.DataBounds())
}

func TestFixedBoundsIgnoreNewSeries(t *testing.T) {
	ax := NewLinear("x")
	require.NoError(t, ax.AddSeries(geometry.NewBounds(0.0, 10.0)))
	require.NoError(t, ax.Fix(geometry.NewBounds(2.0, 4.0)))
	assert.True(t, ax.Fixed())

	require.NoError(t, ax.AddSeries(geometry.NewBounds(0.0, 100.0)))
	assert.Equal(t, geometry.NewBounds(2.0, 4.0), ax.Bounds(), "pinned bounds hold")
	assert.Equal(t, geometry.NewBounds(0.0, 100.0), ax.DataBounds(), "data extent still accumulates")

	ax.Release()
	assert.False(t, ax.Fixed())
	assert.Equal(t, geometry.NewBounds(0.0, 100.0), ax.Bounds())
}

func TestLogAxisRejectsNonPositiveSeries(t *testing.T) {
	ax := NewLog("r")
	err := ax.AddSeries(geometry.NewBounds(0.0, 10.0))
	require.Error(t, err)
	assert.ErrorIs(t, err, scale.ErrDomain)

	require.NoError(t, ax.AddSeries(geometry.NewBounds(1.0, 100.0)))
	assert.Equal(t, geometry.NewBounds(1.0, 100.0), ax.Bounds())
}

func TestDataToPixel(t *testing.T) {
	ax := NewLinear("x")
	require.NoError(t, ax.AddSeries(geometry.NewBounds(0.0, 10.0)))

	assert.InDelta(t, 0.0, ax.DataToPixel(0, 100), 1e-9)
	assert.InDelta(t, 50.0, ax.DataToPixel(5, 100), 1e-9)
	assert.InDelta(t, 100.0, ax.DataToPixel(10, 100), 1e-9)
}

func TestDataToPixelInverted(t *testing.T) {
	ax := NewLinear("x")
	require.NoError(t, ax.AddSeries(geometry.NewBounds(0.0, 10.0)))
	ax.SetInverted(true)
	assert.True(t, ax.Inverted())

	assert.InDelta(t, 100.0, ax.DataToPixel(0, 100), 1e-9)
	assert.InDelta(t, 0.0, ax.DataToPixel(10, 100), 1e-9)
}

func TestPixelRoundTrip(t *testing.T) {
	for _, inverted := range []bool{false, true} {
		ax := NewLinear("x")
		require.NoError(t, ax.AddSeries(geometry.NewBounds(-4.0, 21.0)))
		ax.SetInverted(inverted)

		for _, v := range []float64{-4, 0, 3.7, 21} {
			px := ax.DataToPixel(v, 640)
			assert.InDelta(t, v, ax.PixelToData(px, 640), 1e-9, "inverted=%v", inverted)
		}
	}
}

func TestPixelToDataZeroLength(t *testing.T) {
	ax := NewLinear("x")
	require.NoError(t, ax.AddSeries(geometry.NewBounds(0.0, 10.0)))

	// A collapsed viewport resolves to the middle of the bounds.
	assert.InDelta(t, 5.0, ax.PixelToData(37, 0), 1e-9)
}

func TestTicksCacheInvalidation(t *testing.T) {
	ax := NewLinear("x")
	require.NoError(t, ax.AddSeries(geometry.NewBounds(0.0, 100.0)))

	first := ax.Ticks()
	require.NotEmpty(t, first.Major)
	assert.Equal(t, first, ax.Ticks(), "repeated calls reuse the cache")

	require.NoError(t, ax.Fix(geometry.NewBounds(0.0, 1.0)))
	second := ax.Ticks()
	assert.NotEqual(t, first, second, "bounds change recomputes ticks")

	ax.SetTickCounts(2, 3)
	third := ax.Ticks()
	assert.LessOrEqual(t, len(third.Major), 3)
}

func TestTicksInvertedOrder(t *testing.T) {
	ax := NewLinear("x")
	require.NoError(t, ax.AddSeries(geometry.NewBounds(0.0, 100.0)))
	ax.SetInverted(true)

	major := ax.Ticks().Major
	require.NotEmpty(t, major)
	for i := 1; i < len(major); i++ {
		assert.Less(t, major[i].Value, major[i-1].Value)
	}
}
