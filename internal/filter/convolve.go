package filter

import (
	"errors"
	"fmt"

	"github.com/gogpu/overlay/internal/image"
)

// ErrDimensionMismatch is returned when a plane or kernel does not match the
// dimensions it is used with.
var ErrDimensionMismatch = errors.New("filter: dimension mismatch")

// Plane is one channel of an image as float32 samples in the image's range.
type Plane struct {
	Pix    []float32
	Width  int
	Height int
}

// NewPlane allocates a zeroed plane.
func NewPlane(width, height int) Plane {
	return Plane{Pix: make([]float32, width*height), Width: width, Height: height}
}

func (p Plane) check() error {
	if p.Width <= 0 || p.Height <= 0 || len(p.Pix) != p.Width*p.Height {
		return fmt.Errorf("%w: plane %dx%d holds %d samples", ErrDimensionMismatch, p.Width, p.Height, len(p.Pix))
	}
	return nil
}

// Split returns one plane per channel of m.
func Split(m *image.Image) []Plane {
	w, h, ch := m.Width(), m.Height(), m.Channels()
	planes := make([]Plane, ch)
	for c := range planes {
		planes[c] = NewPlane(w, h)
	}

	if m.Format() == image.FormatUchar {
		data := m.Data()
		for i := 0; i < w*h; i++ {
			for c := 0; c < ch; c++ {
				planes[c].Pix[i] = float32(data[i*ch+c])
			}
		}
		return planes
	}

	for i := 0; i < w*h; i++ {
		for c := 0; c < ch; c++ {
			planes[c].Pix[i] = float32(m.At(i*ch + c))
		}
	}
	return planes
}

// Merge interleaves planes into a new pool image of the given sample format,
// rounding and clamping every sample.
func Merge(p *image.Pool, planes []Plane, format image.SampleFormat) (*image.Image, error) {
	if len(planes) == 0 {
		return nil, fmt.Errorf("%w: no planes", ErrDimensionMismatch)
	}
	w, h := planes[0].Width, planes[0].Height
	for _, pl := range planes {
		if err := pl.check(); err != nil {
			return nil, err
		}
		if pl.Width != w || pl.Height != h {
			return nil, fmt.Errorf("%w: plane %dx%d, want %dx%d", ErrDimensionMismatch, pl.Width, pl.Height, w, h)
		}
	}

	ch := len(planes)
	m, err := p.Get(w, h, ch, format)
	if err != nil {
		return nil, err
	}

	if format == image.FormatUchar {
		data := m.Data()
		for i := 0; i < w*h; i++ {
			for c := 0; c < ch; c++ {
				data[i*ch+c] = clampUint8(planes[c].Pix[i])
			}
		}
		return m, nil
	}

	for i := 0; i < w*h; i++ {
		for c := 0; c < ch; c++ {
			m.SetAt(i*ch+c, float64(planes[c].Pix[i]))
		}
	}
	return m, nil
}

// Convolve applies k to src and returns a new plane. Samples outside the
// plane repeat the nearest edge sample.
func Convolve(src Plane, k Kernel) (Plane, error) {
	if err := src.check(); err != nil {
		return Plane{}, err
	}
	if k.Separable {
		if len(k.Coeffs) != k.Size() {
			return Plane{}, fmt.Errorf("%w: separable kernel radius %d has %d coefficients",
				ErrDimensionMismatch, k.Radius, len(k.Coeffs))
		}
		temp := NewPlane(src.Width, src.Height)
		convolveHorizontal(src, temp, k.Coeffs)
		dst := NewPlane(src.Width, src.Height)
		convolveVertical(temp, dst, k.Coeffs)
		return dst, nil
	}

	if len(k.Coeffs) != k.Size()*k.Size() {
		return Plane{}, fmt.Errorf("%w: kernel radius %d has %d coefficients",
			ErrDimensionMismatch, k.Radius, len(k.Coeffs))
	}
	dst := NewPlane(src.Width, src.Height)
	convolve2D(src, dst, k)
	return dst, nil
}

// convolveHorizontal applies a 1D kernel along rows.
func convolveHorizontal(src, dst Plane, kernel []float32) {
	half := len(kernel) / 2
	w := src.Width

	for y := 0; y < src.Height; y++ {
		row := src.Pix[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			var sum float32
			for k, weight := range kernel {
				kx := clampInt(x+k-half, 0, w-1)
				sum += row[kx] * weight
			}
			dst.Pix[y*w+x] = sum
		}
	}
}

// convolveVertical applies a 1D kernel along columns.
func convolveVertical(src, dst Plane, kernel []float32) {
	half := len(kernel) / 2
	w, h := src.Width, src.Height

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, h-1)
				sum += src.Pix[ky*w+x] * weight
			}
			dst.Pix[y*w+x] = sum
		}
	}
}

func convolve2D(src, dst Plane, k Kernel) {
	size := k.Size()
	w, h := src.Width, src.Height

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			for ky := 0; ky < size; ky++ {
				sy := clampInt(y+ky-k.Radius, 0, h-1)
				for kx := 0; kx < size; kx++ {
					sx := clampInt(x+kx-k.Radius, 0, w-1)
					sum += src.Pix[sy*w+sx] * k.Coeffs[ky*size+kx]
				}
			}
			dst.Pix[y*w+x] = sum
		}
	}
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
