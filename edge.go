package overlay

import (
	"github.com/gogpu/overlay/internal/filter"
	"github.com/gogpu/overlay/internal/image"
)

// captionSigma is the smoothing used to find caption boundaries. It is large
// so that only the hard edge between caption band and frame survives.
const captionSigma = 5

// Sobel returns the Sobel gradient magnitude of an 8-bit raw buffer of
// width × height pixels with the given channel count. Every channel,
// alpha included, is filtered independently.
func Sobel(data []byte, width, height, channels int) (*Buffer, error) {
	r, err := begin("sobel")
	if err != nil {
		return nil, err
	}
	defer r.end()

	src, err := r.raw(data, width, height, channels)
	if err != nil {
		return nil, err
	}
	out, err := filter.Sobel(r.pool, src)
	if err != nil {
		return nil, r.fail(KindFilter, err)
	}
	return newBuffer(out), nil
}

// Canny runs Canny edge detection on an 8-bit raw buffer. Edge pixels are
// 255 and all others 0, per channel.
func Canny(data []byte, width, height, channels int, opts ...EdgeOption) (*Buffer, error) {
	r, err := begin("canny")
	if err != nil {
		return nil, err
	}
	defer r.end()

	o := filter.DefaultCannyOptions()
	for _, opt := range opts {
		opt(&o)
	}

	src, err := r.raw(data, width, height, channels)
	if err != nil {
		return nil, err
	}
	out, err := filter.Canny(r.pool, src, o)
	if err != nil {
		return nil, r.fail(KindFilter, err)
	}
	Logger().Debug("overlay: canny", "width", width, "height", height, "sigma", o.Sigma)
	return newBuffer(out), nil
}

// FindCaptionBoundary returns the number of rows taken by a caption band at
// the top of a width × height RGBA frame: the first row, counted from 1,
// where the red channel of column 3 carries an edge. It returns 0 when no
// edge is found.
func FindCaptionBoundary(data []byte, width, height int) (int, error) {
	r, err := begin("find-caption-boundary")
	if err != nil {
		return 0, err
	}
	defer r.end()

	src, err := r.raw(data, width, height, 4)
	if err != nil {
		return 0, err
	}
	return r.boundary(src)
}

// boundaryColumn is the column probed for the caption edge, clear of
// antialiased frame borders.
const boundaryColumn = 3

func (r *request) boundary(src *image.Image) (int, error) {
	if src.Width() <= boundaryColumn {
		return 0, nil
	}
	opts := filter.DefaultCannyOptions()
	opts.Sigma = captionSigma
	edges, err := filter.Canny(r.pool, src, opts)
	if err != nil {
		return 0, r.fail(KindFilter, err)
	}
	defer edges.Release()

	for y := 0; y < edges.Height(); y++ {
		if edges.Sample(boundaryColumn, y, 0) > 0 {
			return y + 1, nil
		}
	}
	return 0, nil
}
