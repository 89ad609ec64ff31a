package filter

import (
	"fmt"
	"image/color"

	"github.com/gogpu/overlay/internal/blend"
	"github.com/gogpu/overlay/internal/geometry"
	"github.com/gogpu/overlay/internal/image"
)

// Default halo parameters.
const (
	DefaultHaloMinAmplitude = 0.1
	DefaultHaloGain         = 8
)

// HaloOptions configures Halo.
type HaloOptions struct {
	// Radius is the halo radius in pixels. The Gaussian sigma is Radius/2.
	Radius float64

	// MinAmplitude bounds the Gaussian window (see GaussMat).
	MinAmplitude float64

	// Gain multiplies the blurred response so the halo reads as a solid
	// outline near the glyphs.
	Gain float32

	// Color is the halo color.
	Color color.NRGBA
}

// DefaultHaloOptions returns an opaque black halo of the given radius.
func DefaultHaloOptions(radius float64) HaloOptions {
	return HaloOptions{
		Radius:       radius,
		MinAmplitude: DefaultHaloMinAmplitude,
		Gain:         DefaultHaloGain,
		Color:        color.NRGBA{A: 255},
	}
}

// HaloKernel returns the gain-scaled Gaussian used by Halo.
func HaloKernel(opts HaloOptions) Kernel {
	return GaussMat(opts.Radius/2, opts.MinAmplitude).Scale(opts.Gain)
}

// Halo draws a soft outline behind the opaque parts of src.
//
// The algorithm:
//  1. Pad src with transparent margins (see geometry.HaloMargins)
//  2. Blur the padded alpha with the gain-scaled Gaussian
//  3. Recolor: RGB becomes the halo color, alpha the blurred alpha
//  4. Composite the padded source over the halo
//
// The result is larger than src by the margins. src must be 8-bit; sources
// without alpha are promoted.
func Halo(p *image.Pool, src *image.Image, opts HaloOptions) (*image.Image, error) {
	if src.Format() != image.FormatUchar {
		return nil, fmt.Errorf("%w: halo needs 8-bit samples, have %s", image.ErrInvalidFormat, src.Format())
	}
	if !src.HasAlpha() || src.Channels() != 4 {
		rgba, err := toRGBA(p, src)
		if err != nil {
			return nil, err
		}
		defer rgba.Release()
		src = rgba
	}

	m := geometry.HaloMargins(opts.Radius)
	padded, err := geometry.Embed(p, src, m.Left, m.Top, src.Width()+m.Width, src.Height()+m.Height)
	if err != nil {
		return nil, err
	}
	defer padded.Release()

	planes := Split(padded)

	// Only alpha survives the recolor, so only alpha is blurred.
	blurred, err := Convolve(planes[3], HaloKernel(opts))
	if err != nil {
		return nil, err
	}
	planes[3] = blurred

	if err := RecolorMatrix(opts.Color).Apply(planes); err != nil {
		return nil, err
	}

	halo, err := Merge(p, planes, image.FormatUchar)
	if err != nil {
		return nil, err
	}
	defer halo.Release()

	return blend.Composite2(p, halo, padded, blend.ModeOver)
}

// toRGBA promotes gray, gray+alpha and RGB images to RGBA.
func toRGBA(p *image.Pool, src *image.Image) (*image.Image, error) {
	if !src.HasAlpha() {
		withAlpha, err := src.AddAlpha(p)
		if err != nil {
			return nil, err
		}
		if withAlpha.Channels() == 4 {
			return withAlpha, nil
		}
		defer withAlpha.Release()
		src = withAlpha
	}

	// Gray+alpha: replicate the gray band.
	planes := Split(src)
	return Merge(p, []Plane{planes[0], planes[0], planes[0], planes[1]}, image.FormatUchar)
}
