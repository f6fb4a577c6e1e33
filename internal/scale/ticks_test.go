package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chart-grid/pkg/geometry"
)

func majorValues(ts Ticks) []float64 {
	out := make([]float64, len(ts.Major))
	for i, tk := range ts.Major {
		out[i] = tk.Value
	}
	return out
}

func majorLabels(ts Ticks) []string {
	out := make([]string, len(ts.Major))
	for i, tk := range ts.Major {
		out[i] = tk.Label
	}
	return out
}

func TestLinearTicksNiceSteps(t *testing.T) {
	ts := Generate(NewLinear(geometry.NewBounds(0.0, 100.0)), 0, 0, false)

	assert.Equal(t, []float64{0, 20, 40, 60, 80, 100}, majorValues(ts))
	assert.Equal(t, []string{"0", "20", "40", "60", "80", "100"}, majorLabels(ts))
	assert.Equal(t, []float64{10, 30, 50, 70, 90}, ts.Minor)
}

func TestLinearTicksFractionalLabels(t *testing.T) {
	ts := Generate(NewLinear(geometry.NewBounds(0.0, 1.0)), 0, 0, false)

	assert.InDeltaSlice(t, []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0}, majorValues(ts), 1e-12)
	// No trailing-zero noise: 1.0 renders as "1".
	assert.Equal(t, []string{"0", "0.2", "0.4", "0.6", "0.8", "1"}, majorLabels(ts))
}

func TestLinearTicksFrameData(t *testing.T) {
	b := geometry.NewBounds(-50.0, 50.0)
	ts := Generate(NewLinear(b), 0, 0, false)

	vals := majorValues(ts)
	require.NotEmpty(t, vals)
	assert.LessOrEqual(t, vals[0], b.Min, "first tick frames the minimum")
	assert.GreaterOrEqual(t, vals[len(vals)-1], b.Max, "last tick frames the maximum")
	assert.Contains(t, vals, 0.0)
	assert.NotContains(t, majorLabels(ts), "-0")
}

func TestLinearTicksCountWindow(t *testing.T) {
	for _, b := range []geometry.Bounds[float64]{
		geometry.NewBounds(0.0, 7.0),
		geometry.NewBounds(0.13, 0.87),
		geometry.NewBounds(-1234.0, 5678.0),
		geometry.NewBounds(1e-6, 3e-6),
	} {
		ts := Generate(NewLinear(b), 4, 10, false)
		n := len(ts.Major)
		assert.GreaterOrEqual(t, n, 4, "bounds %+v", b)
		assert.LessOrEqual(t, n, 10, "bounds %+v", b)
	}
}

func TestDegenerateBoundsSingleTick(t *testing.T) {
	b := geometry.NewBounds(30.0, 30.0)

	lin := Generate(NewLinear(b), 7, 15, false)
	require.Len(t, lin.Major, 1)
	assert.Equal(t, 30.0, lin.Major[0].Value)
	assert.Equal(t, "30", lin.Major[0].Label)

	lg, err := NewLog(b)
	require.NoError(t, err)
	logTs := Generate(lg, 7, 15, false)
	require.Len(t, logTs.Major, 1)
	assert.Equal(t, 30.0, logTs.Major[0].Value)
}

func TestLogTicksDecades(t *testing.T) {
	m, err := NewLog(geometry.NewBounds(1.0, 10000.0))
	require.NoError(t, err)
	ts := Generate(m, 0, 0, false)

	assert.InDeltaSlice(t, []float64{1, 10, 100, 1000, 10000}, majorValues(ts), 1e-9)
	assert.Equal(t, []string{"1", "10", "100", "1000", "10000"}, majorLabels(ts))

	// Sub-decade minors at 2..9 within every spanned decade.
	assert.Len(t, ts.Minor, 4*8)
	assert.Contains(t, ts.Minor, 2.0)
	for _, v := range ts.Minor {
		assert.Greater(t, v, 1.0)
		assert.Less(t, v, 10000.0)
	}
}

func TestLogTicksSubDecadeFallsBackToLinear(t *testing.T) {
	// Less than a decade of dynamic range: decade powers alone would sit
	// entirely outside [30,90], so the generator subdivides linearly.
	m, err := NewLog(geometry.NewBounds(30.0, 90.0))
	require.NoError(t, err)
	ts := Generate(m, 4, 10, false)

	assert.Equal(t, []float64{20, 40, 60, 80, 100}, majorValues(ts))
	assert.Equal(t, Generate(NewLinear(geometry.NewBounds(30.0, 90.0)), 4, 10, false), ts)

	m, err = NewLog(geometry.NewBounds(2.0, 8.0))
	require.NoError(t, err)
	ts = Generate(m, 4, 10, false)

	vals := majorValues(ts)
	assert.Equal(t, []float64{2, 4, 6, 8}, vals)
	assert.GreaterOrEqual(t, len(vals), 4)
}

func TestLogTicksStrideThinning(t *testing.T) {
	m, err := NewLog(geometry.NewBounds(1.0, 1e12))
	require.NoError(t, err)
	ts := Generate(m, 4, 10, false)

	assert.LessOrEqual(t, len(ts.Major), 10)
	assert.Empty(t, ts.Minor, "thinned decades carry no minors")
}

func TestInvertedTicksReverseOrder(t *testing.T) {
	m := NewLinear(geometry.NewBounds(0.0, 100.0))
	fwd := Generate(m, 0, 0, false)
	rev := Generate(m, 0, 0, true)

	require.Equal(t, len(fwd.Major), len(rev.Major))
	for i := range fwd.Major {
		assert.Equal(t, fwd.Major[i], rev.Major[len(rev.Major)-1-i])
	}
}

func TestTicksDeterministic(t *testing.T) {
	m := NewLinear(geometry.NewBounds(0.37, 91.2))
	assert.Equal(t, Generate(m, 0, 0, false), Generate(m, 0, 0, false))
}

func TestSwappedCountWindow(t *testing.T) {
	m := NewLinear(geometry.NewBounds(0.0, 100.0))
	assert.Equal(t, Generate(m, 4, 10, false), Generate(m, 10, 4, false))
}
