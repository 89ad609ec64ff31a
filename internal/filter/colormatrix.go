package filter

import (
	"fmt"
	"image/color"
)

// ColorMatrix is a 4x5 color transformation matrix:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column provides bias values. Samples are in the 0-255 range
// during the transform; clamping happens when planes are merged.
type ColorMatrix [20]float32

// RecolorMatrix replaces the color channels with c and scales alpha by c's
// alpha. With opaque black it zeroes RGB and passes alpha through.
func RecolorMatrix(c color.NRGBA) ColorMatrix {
	return ColorMatrix{
		0, 0, 0, 0, float32(c.R),
		0, 0, 0, 0, float32(c.G),
		0, 0, 0, 0, float32(c.B),
		0, 0, 0, float32(c.A) / 255, 0,
	}
}

// Apply transforms four RGBA planes in place.
func (m ColorMatrix) Apply(planes []Plane) error {
	if len(planes) != 4 {
		return fmt.Errorf("%w: color matrix needs 4 planes, have %d", ErrDimensionMismatch, len(planes))
	}
	n := len(planes[0].Pix)
	for _, pl := range planes[1:] {
		if len(pl.Pix) != n {
			return fmt.Errorf("%w: planes hold %d and %d samples", ErrDimensionMismatch, n, len(pl.Pix))
		}
	}

	r, g, b, a := planes[0].Pix, planes[1].Pix, planes[2].Pix, planes[3].Pix
	for i := 0; i < n; i++ {
		sr, sg, sb, sa := r[i], g[i], b[i], a[i]
		r[i] = m[0]*sr + m[1]*sg + m[2]*sb + m[3]*sa + m[4]
		g[i] = m[5]*sr + m[6]*sg + m[7]*sb + m[8]*sa + m[9]
		b[i] = m[10]*sr + m[11]*sg + m[12]*sb + m[13]*sa + m[14]
		a[i] = m[15]*sr + m[16]*sg + m[17]*sb + m[18]*sa + m[19]
	}
	return nil
}
