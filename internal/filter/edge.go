package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/overlay/internal/image"
)

// ErrThreshold is returned for Canny thresholds outside 0 <= Low <= High <= 1.
var ErrThreshold = errors.New("filter: invalid canny thresholds")

const (
	// cannyMinAmplitude bounds the smoothing kernel used by Canny.
	cannyMinAmplitude = 0.2

	// cannyMinPeak is the smallest strongest-gradient treated as an edge.
	// Flat bands produce float rounding noise below half a sample step.
	cannyMinPeak = 0.5
)

// CannyOptions configures Canny.
type CannyOptions struct {
	// Sigma is the standard deviation of the smoothing Gaussian.
	Sigma float64

	// Low and High are hysteresis thresholds as fractions of the strongest
	// gradient in each band. Pixels above High seed edges; pixels above Low
	// join an edge when connected to a seed.
	Low, High float64

	// Cast converts the input to 8-bit before filtering, so the output is
	// 8-bit regardless of the input depth.
	Cast bool
}

// DefaultCannyOptions returns sigma 1.4, thresholds 0.1/0.3, cast to 8-bit.
func DefaultCannyOptions() CannyOptions {
	return CannyOptions{Sigma: 1.4, Low: 0.1, High: 0.3, Cast: true}
}

// Sobel returns the gradient magnitude sqrt(gx²+gy²) of every band,
// quantized back to the input sample format with clamping.
func Sobel(p *image.Pool, src *image.Image) (*image.Image, error) {
	planes := Split(src)
	for c, pl := range planes {
		mag, _, err := gradients(pl)
		if err != nil {
			return nil, err
		}
		planes[c] = mag
	}
	return Merge(p, planes, src.Format())
}

// Canny runs Canny edge detection on every band independently: Gaussian
// smoothing, Sobel gradients, non-maximum suppression and hysteresis
// thresholding. Edge pixels are set to the maximum sample value, all others
// to zero.
func Canny(p *image.Pool, src *image.Image, opts CannyOptions) (*image.Image, error) {
	if opts.Low < 0 || opts.High > 1 || opts.Low > opts.High {
		return nil, fmt.Errorf("%w: low %v, high %v", ErrThreshold, opts.Low, opts.High)
	}

	format := src.Format()
	planes := Split(src)
	if opts.Cast && format != image.FormatUchar {
		scale := float32(255 / format.Max())
		for _, pl := range planes {
			for i := range pl.Pix {
				pl.Pix[i] *= scale
			}
		}
		format = image.FormatUchar
	}

	smooth := GaussMat(opts.Sigma, cannyMinAmplitude)
	on := float32(format.Max())
	for c, pl := range planes {
		blurred, err := Convolve(pl, smooth)
		if err != nil {
			return nil, err
		}
		edges, err := cannyPlane(blurred, opts.Low, opts.High)
		if err != nil {
			return nil, err
		}
		for i, v := range edges.Pix {
			edges.Pix[i] = v * on
		}
		planes[c] = edges
	}
	return Merge(p, planes, format)
}

// gradients returns the Sobel magnitude and direction sector of src.
func gradients(src Plane) (Plane, []uint8, error) {
	gx, err := Convolve(src, SobelX())
	if err != nil {
		return Plane{}, nil, err
	}
	gy, err := Convolve(src, SobelY())
	if err != nil {
		return Plane{}, nil, err
	}

	mag := NewPlane(src.Width, src.Height)
	sectors := make([]uint8, len(src.Pix))
	for i := range mag.Pix {
		x, y := float64(gx.Pix[i]), float64(gy.Pix[i])
		mag.Pix[i] = float32(math.Sqrt(x*x + y*y))
		sectors[i] = sector(x, y)
	}
	return mag, sectors, nil
}

// sector quantizes a gradient direction to 0, 45, 90 or 135 degrees,
// returned as 0..3. The y axis points down.
func sector(gx, gy float64) uint8 {
	deg := math.Atan2(gy, gx) * 180 / math.Pi
	if deg < 0 {
		deg += 180
	}
	switch {
	case deg < 22.5 || deg >= 157.5:
		return 0
	case deg < 67.5:
		return 1
	case deg < 112.5:
		return 2
	default:
		return 3
	}
}

// neighbour offsets across the edge, per sector.
var sectorOffsets = [4][2][2]int{
	{{-1, 0}, {1, 0}},
	{{-1, -1}, {1, 1}},
	{{0, -1}, {0, 1}},
	{{1, -1}, {-1, 1}},
}

// cannyPlane returns a plane of 0/1 edge flags.
func cannyPlane(src Plane, low, high float64) (Plane, error) {
	mag, sectors, err := gradients(src)
	if err != nil {
		return Plane{}, err
	}
	w, h := mag.Width, mag.Height

	var peak float32
	for _, v := range mag.Pix {
		if v > peak {
			peak = v
		}
	}
	out := NewPlane(w, h)
	if peak < cannyMinPeak {
		return out, nil
	}

	// Non-maximum suppression.
	thin := NewPlane(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			v := mag.Pix[i]
			if v == 0 {
				continue
			}
			off := sectorOffsets[sectors[i]]
			n1 := mag.Pix[clampInt(y+off[0][1], 0, h-1)*w+clampInt(x+off[0][0], 0, w-1)]
			n2 := mag.Pix[clampInt(y+off[1][1], 0, h-1)*w+clampInt(x+off[1][0], 0, w-1)]
			if v >= n1 && v >= n2 {
				thin.Pix[i] = v
			}
		}
	}

	// Hysteresis: flood fill from strong pixels through weak ones.
	strong := float32(high) * peak
	weak := float32(low) * peak
	var stack []int
	for i, v := range thin.Pix {
		if v > strong {
			out.Pix[i] = 1
			stack = append(stack, i)
		}
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				j := ny*w + nx
				if out.Pix[j] == 0 && thin.Pix[j] > weak {
					out.Pix[j] = 1
					stack = append(stack, j)
				}
			}
		}
	}
	return out, nil
}
