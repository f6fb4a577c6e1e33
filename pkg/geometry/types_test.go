package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointArithmetic(t *testing.T) {
	a := NewPoint2D(1, 2)
	b := NewPoint2D(4, 6)

	assert.Equal(t, NewPoint2D(5, 8), a.Add(b))
	assert.Equal(t, NewPoint2D(3, 4), b.Sub(a))
	assert.Equal(t, NewPoint2D(2, 4), a.Scale(2))
	assert.InDelta(t, 5.0, a.Distance(b), 1e-12)
	assert.InDelta(t, 25.0, a.DistanceSq(b), 1e-12)
}

func TestRectFromCorners(t *testing.T) {
	want := NewRect(1, 2, 3, 4)

	assert.Equal(t, want, RectFromCorners(NewPoint2D(1, 2), NewPoint2D(4, 6)))
	// Corner order is irrelevant.
	assert.Equal(t, want, RectFromCorners(NewPoint2D(4, 6), NewPoint2D(1, 2)))
	assert.Equal(t, want, RectFromCorners(NewPoint2D(4, 2), NewPoint2D(1, 6)))
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	assert.True(t, r.Contains(NewPoint2D(5, 5)))
	assert.True(t, r.Contains(NewPoint2D(0, 0)), "boundary is inclusive")
	assert.True(t, r.Contains(NewPoint2D(10, 10)))
	assert.False(t, r.Contains(NewPoint2D(10.001, 5)))
	assert.False(t, r.Contains(NewPoint2D(5, -0.001)))
}

func TestRectIntersects(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	assert.True(t, r.Intersects(NewRect(5, 5, 10, 10)))
	assert.True(t, r.Intersects(NewRect(10, 10, 5, 5)), "shared corner counts")
	assert.False(t, r.Intersects(NewRect(11, 0, 5, 5)))
}

func TestRectIntersect(t *testing.T) {
	got, ok := NewRect(0, 0, 10, 10).Intersect(NewRect(5, 5, 10, 10))
	require.True(t, ok)
	assert.Equal(t, NewRect(5, 5, 5, 5), got)

	_, ok = NewRect(0, 0, 2, 2).Intersect(NewRect(5, 5, 2, 2))
	assert.False(t, ok)
}

func TestRectUnionInsetCenter(t *testing.T) {
	u := NewRect(0, 0, 4, 4).Union(NewRect(2, 2, 4, 4))
	assert.Equal(t, NewRect(0, 0, 6, 6), u)

	assert.Equal(t, NewRect(1, 1, 8, 8), NewRect(0, 0, 10, 10).Inset(1))
	assert.Equal(t, NewPoint2D(5, 5), NewRect(0, 0, 10, 10).Center())
}

func TestAffineBasics(t *testing.T) {
	p := NewPoint2D(3, 4)

	assert.Equal(t, p, Identity().Apply(p))
	assert.Equal(t, NewPoint2D(4, 6), Translation(1, 2).Apply(p))
	assert.Equal(t, NewPoint2D(6, 8), Scaling(2, 2).Apply(p))
}

func TestAffineCompose(t *testing.T) {
	// t.Compose(other) applies other first.
	c := Translation(1, 2).Compose(Scaling(2, 2))
	assert.Equal(t, NewPoint2D(7, 10), c.Apply(NewPoint2D(3, 4)))
}

func TestAffineInverseRoundTrip(t *testing.T) {
	xf := AffineTransform{A: 2, B: 1, TX: 4, C: 0.5, D: 3, TY: -2}
	inv, ok := xf.Inverse()
	require.True(t, ok)

	for _, p := range []Point2D{{0, 0}, {1, 1}, {-3, 7}, {100, -42.5}} {
		back := inv.Apply(xf.Apply(p))
		assert.InDelta(t, p.X, back.X, 1e-9)
		assert.InDelta(t, p.Y, back.Y, 1e-9)
	}
}

func TestAffineInverseSingular(t *testing.T) {
	_, ok := Scaling(0, 1).Inverse()
	assert.False(t, ok)
}

func TestBoundingBox(t *testing.T) {
	pts := []Point2D{{1, 5}, {-2, 3}, {4, -1}}
	assert.Equal(t, NewRect(-2, -1, 6, 6), BoundingBox(pts))
	assert.Equal(t, Rect{}, BoundingBox(nil))
}
