package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AffineFromPoints computes the least-squares affine transform mapping each
// src point onto the corresponding dst point. At least 3 point pairs are
// required.
func AffineFromPoints(src, dst []Point2D) (AffineTransform, error) {
	if len(src) != len(dst) {
		return AffineTransform{}, fmt.Errorf("point count mismatch: %d vs %d", len(src), len(dst))
	}
	n := len(src)
	if n < 3 {
		return AffineTransform{}, fmt.Errorf("need at least 3 points, got %d", n)
	}

	// Overdetermined system: two rows per correspondence.
	a := mat.NewDense(n*2, 6, nil)
	b := mat.NewVecDense(n*2, nil)

	for i := 0; i < n; i++ {
		x, y := src[i].X, src[i].Y

		a.Set(i*2, 0, x)
		a.Set(i*2, 1, y)
		a.Set(i*2, 2, 1)
		b.SetVec(i*2, dst[i].X)

		a.Set(i*2+1, 3, x)
		a.Set(i*2+1, 4, y)
		a.Set(i*2+1, 5, 1)
		b.SetVec(i*2+1, dst[i].Y)
	}

	var qr mat.QR
	qr.Factorize(a)

	var params mat.VecDense
	if err := qr.SolveVecTo(&params, false, b); err != nil {
		return AffineTransform{}, fmt.Errorf("affine fit: %w", err)
	}

	return AffineTransform{
		A:  params.AtVec(0),
		B:  params.AtVec(1),
		TX: params.AtVec(2),
		C:  params.AtVec(3),
		D:  params.AtVec(4),
		TY: params.AtVec(5),
	}, nil
}

// AffineFromRects computes the axis-aligned affine transform taking the
// corners of src onto the corners of dst. When flipY is set, the top edge of
// src maps to the bottom edge of dst, which is the usual arrangement when src
// is a data-space rect and dst a pixel-space viewport whose y axis grows
// downward.
func AffineFromRects(src, dst Rect, flipY bool) (AffineTransform, error) {
	if src.Width == 0 || src.Height == 0 {
		return AffineTransform{}, fmt.Errorf("source rect is degenerate: %+v", src)
	}

	dstTop := dst.Y
	dstBottom := dst.Y + dst.Height
	if flipY {
		dstTop, dstBottom = dstBottom, dstTop
	}

	srcPts := []Point2D{
		{X: src.X, Y: src.Y},
		{X: src.X + src.Width, Y: src.Y},
		{X: src.X, Y: src.Y + src.Height},
		{X: src.X + src.Width, Y: src.Y + src.Height},
	}
	dstPts := []Point2D{
		{X: dst.X, Y: dstTop},
		{X: dst.X + dst.Width, Y: dstTop},
		{X: dst.X, Y: dstBottom},
		{X: dst.X + dst.Width, Y: dstBottom},
	}
	return AffineFromPoints(srcPts, dstPts)
}
