package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffineFromPointsRecoversTransform(t *testing.T) {
	want := AffineTransform{A: 2, B: 0.5, TX: 3, C: -1, D: 1.5, TY: 7}

	src := []Point2D{{0, 0}, {1, 0}, {0, 1}, {2, 3}, {-4, 5}}
	dst := make([]Point2D, len(src))
	for i, p := range src {
		dst[i] = want.Apply(p)
	}

	got, err := AffineFromPoints(src, dst)
	require.NoError(t, err)

	assert.InDelta(t, want.A, got.A, 1e-8)
	assert.InDelta(t, want.B, got.B, 1e-8)
	assert.InDelta(t, want.TX, got.TX, 1e-8)
	assert.InDelta(t, want.C, got.C, 1e-8)
	assert.InDelta(t, want.D, got.D, 1e-8)
	assert.InDelta(t, want.TY, got.TY, 1e-8)
}

func TestAffineFromPointsErrors(t *testing.T) {
	two := []Point2D{{0, 0}, {1, 1}}
	_, err := AffineFromPoints(two, two)
	assert.Error(t, err, "needs at least 3 correspondences")

	_, err = AffineFromPoints([]Point2D{{0, 0}, {1, 0}, {0, 1}}, two)
	assert.Error(t, err, "mismatched point counts")
}

func TestAffineFromRects(t *testing.T) {
	src := NewRect(0, 0, 10, 10)
	dst := NewRect(100, 100, 50, 50)

	xf, err := AffineFromRects(src, dst, false)
	require.NoError(t, err)

	tl := xf.Apply(NewPoint2D(0, 0))
	assert.InDelta(t, 100.0, tl.X, 1e-8)
	assert.InDelta(t, 100.0, tl.Y, 1e-8)

	br := xf.Apply(NewPoint2D(10, 10))
	assert.InDelta(t, 150.0, br.X, 1e-8)
	assert.InDelta(t, 150.0, br.Y, 1e-8)
}

func TestAffineFromRectsFlipY(t *testing.T) {
	src := NewRect(0, 0, 10, 10)
	dst := NewRect(100, 100, 50, 50)

	xf, err := AffineFromRects(src, dst, true)
	require.NoError(t, err)

	// Top of src lands on the bottom of dst and vice versa.
	top := xf.Apply(NewPoint2D(0, 0))
	assert.InDelta(t, 150.0, top.Y, 1e-8)

	bottom := xf.Apply(NewPoint2D(0, 10))
	assert.InDelta(t, 100.0, bottom.Y, 1e-8)
}

func TestAffineFromRectsDegenerateSource(t *testing.T) {
	_, err := AffineFromRects(NewRect(0, 0, 0, 10), NewRect(0, 0, 10, 10), false)
	assert.Error(t, err)
}
