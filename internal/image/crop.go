package image

import (
	"fmt"
	stdimage "image"

	"github.com/disintegration/imaging"
)

// Crop returns the rectangle of m starting at (x, y) with the given size as a
// new pool-backed RGBA image. The rectangle must lie inside m.
func Crop(p *Pool, m *Image, x, y, width, height int) (*Image, error) {
	r := stdimage.Rect(x, y, x+width, y+height)
	if width <= 0 || height <= 0 || !r.In(stdimage.Rect(0, 0, m.width, m.height)) {
		return nil, fmt.Errorf("%w: crop %v of %dx%d", ErrInvalidDimensions, r, m.width, m.height)
	}
	return FromNRGBA(p, imaging.Crop(m.Std(), r))
}
