package blend

import (
	"errors"
	"fmt"

	"github.com/gogpu/overlay/internal/image"
)

// Compositing errors.
var (
	// ErrTooFewLayers is returned when fewer than two layers are composited.
	ErrTooFewLayers = errors.New("blend: need at least two layers")

	// ErrSizeMismatch is returned when layers differ in dimensions.
	ErrSizeMismatch = errors.New("blend: layer dimensions differ")

	// ErrMissingAlpha is returned when a layer is not 4-channel RGBA.
	ErrMissingAlpha = errors.New("blend: layer has no alpha channel")

	// ErrSampleFormat is returned when a layer is not 8-bit.
	ErrSampleFormat = errors.New("blend: layer is not 8-bit")
)

// Layer is one entry of a compositing stack.
//
// The slice index of a layer in a stack is its z-order: index 0 is the
// bottom. Mode says how the layer joins everything beneath it; the bottom
// layer's Mode is ignored.
type Layer struct {
	Image *image.Image
	Mode  Mode
}

// Composite flattens layers into a new pool-backed image.
//
// Layers are blended pairwise from bottom to top: each layer is the source
// and the accumulated stack is the destination. ModeOver puts the layer in
// front of the stack; ModeDestOver puts it behind, so opaque content already
// on the stack wins. Every layer must be 4-channel 8-bit with identical size;
// promote 3-channel images with AddAlpha first.
func Composite(p *image.Pool, layers []Layer) (*image.Image, error) {
	if len(layers) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewLayers, len(layers))
	}
	base := layers[0].Image
	for i, l := range layers {
		if err := checkLayer(i, l.Image, base); err != nil {
			return nil, err
		}
	}

	out, err := p.Get(base.Width(), base.Height(), 4, image.FormatUchar)
	if err != nil {
		return nil, err
	}
	acc := out.Data()

	src := base.Data()
	for i := 0; i < len(acc); i += 4 {
		acc[i], acc[i+1], acc[i+2], acc[i+3] = premultiply(src[i], src[i+1], src[i+2], src[i+3])
	}

	for _, l := range layers[1:] {
		compositeInto(acc, l.Image.Data(), FuncFor(l.Mode))
	}

	for i := 0; i < len(acc); i += 4 {
		acc[i], acc[i+1], acc[i+2], acc[i+3] = unpremultiply(acc[i], acc[i+1], acc[i+2], acc[i+3])
	}
	return out, nil
}

// Composite2 is Composite for a base and a single layer on top of it.
func Composite2(p *image.Pool, base, top *image.Image, mode Mode) (*image.Image, error) {
	return Composite(p, []Layer{{Image: base}, {Image: top, Mode: mode}})
}

// compositeInto blends an unpremultiplied RGBA source into the premultiplied
// accumulator.
func compositeInto(acc, src []byte, fn Func) {
	for i := 0; i < len(acc); i += 4 {
		sr, sg, sb, sa := premultiply(src[i], src[i+1], src[i+2], src[i+3])
		acc[i], acc[i+1], acc[i+2], acc[i+3] = fn(sr, sg, sb, sa, acc[i], acc[i+1], acc[i+2], acc[i+3])
	}
}

func checkLayer(i int, m, base *image.Image) error {
	if m == nil {
		return fmt.Errorf("%w: layer %d is nil", ErrMissingAlpha, i)
	}
	if m.Channels() != 4 {
		return fmt.Errorf("%w: layer %d has %d channels", ErrMissingAlpha, i, m.Channels())
	}
	if m.Format() != image.FormatUchar {
		return fmt.Errorf("%w: layer %d is %s", ErrSampleFormat, i, m.Format())
	}
	if !m.SameSize(base) {
		return fmt.Errorf("%w: layer %d is %dx%d, base is %dx%d",
			ErrSizeMismatch, i, m.Width(), m.Height(), base.Width(), base.Height())
	}
	return nil
}
