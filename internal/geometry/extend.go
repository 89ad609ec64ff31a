package geometry

import (
	"errors"
	"fmt"

	"github.com/gogpu/overlay/internal/image"
)

// ErrTargetTooSmall is returned when an extension target is smaller than the
// source in either axis. Extension never crops.
var ErrTargetTooSmall = errors.New("geometry: target smaller than source")

// Gravity is the anchor used when placing an image on a larger canvas.
type Gravity uint8

const (
	Centre Gravity = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// String returns the compass name of the gravity.
func (g Gravity) String() string {
	switch g {
	case Centre:
		return "centre"
	case North:
		return "north"
	case NorthEast:
		return "north-east"
	case East:
		return "east"
	case SouthEast:
		return "south-east"
	case South:
		return "south"
	case SouthWest:
		return "south-west"
	case West:
		return "west"
	case NorthWest:
		return "north-west"
	default:
		return "unknown"
	}
}

// Offset returns where a sw×sh image lands inside a tw×th canvas.
func (g Gravity) Offset(sw, sh, tw, th int) (x, y int) {
	dx, dy := tw-sw, th-sh
	switch g {
	case North:
		return dx / 2, 0
	case NorthEast:
		return dx, 0
	case East:
		return dx, dy / 2
	case SouthEast:
		return dx, dy
	case South:
		return dx / 2, dy
	case SouthWest:
		return 0, dy
	case West:
		return 0, dy / 2
	case NorthWest:
		return 0, 0
	default:
		return dx / 2, dy / 2
	}
}

// Fill is the policy for pixels outside the placed image.
type Fill uint8

const (
	// FillTransparent leaves every sample zero.
	FillTransparent Fill = iota
	// FillWhite paints opaque white.
	FillWhite
	// FillBlack paints opaque black.
	FillBlack
)

// String returns the fill name.
func (f Fill) String() string {
	switch f {
	case FillTransparent:
		return "transparent"
	case FillWhite:
		return "white"
	case FillBlack:
		return "black"
	default:
		return "unknown"
	}
}

// Spec describes a target canvas.
type Spec struct {
	Width   int
	Height  int
	Gravity Gravity
	Fill    Fill
}

// Extend places src on a canvas of exactly spec.Width × spec.Height.
//
// The output always has an alpha channel: sources without one are promoted
// first. The source is never cropped; a target smaller than the source in
// either axis fails with ErrTargetTooSmall.
func Extend(p *image.Pool, src *image.Image, spec Spec) (*image.Image, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("%w: target %dx%d", image.ErrInvalidDimensions, spec.Width, spec.Height)
	}
	if spec.Width < src.Width() || spec.Height < src.Height() {
		return nil, fmt.Errorf("%w: source %dx%d, target %dx%d",
			ErrTargetTooSmall, src.Width(), src.Height(), spec.Width, spec.Height)
	}

	if !src.HasAlpha() {
		promoted, err := src.AddAlpha(p)
		if err != nil {
			return nil, err
		}
		defer promoted.Release()
		src = promoted
	}

	x, y := spec.Gravity.Offset(src.Width(), src.Height(), spec.Width, spec.Height)
	return place(p, src, x, y, spec.Width, spec.Height, spec.Fill)
}

// Embed places src at (x, y) on a transparent canvas of width × height,
// keeping its channel layout. Parts of src outside the canvas are clipped.
func Embed(p *image.Pool, src *image.Image, x, y, width, height int) (*image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", image.ErrInvalidDimensions, width, height)
	}
	return place(p, src, x, y, width, height, FillTransparent)
}

// Canvas returns a width × height RGBA canvas painted with fill.
func Canvas(p *image.Pool, width, height int, fill Fill) (*image.Image, error) {
	dst, err := p.Get(width, height, 4, image.FormatUchar)
	if err != nil {
		return nil, err
	}
	if fill != FillTransparent {
		paint(dst, fill)
	}
	return dst, nil
}

func place(p *image.Pool, src *image.Image, x, y, width, height int, fill Fill) (*image.Image, error) {
	dst, err := p.Get(width, height, src.Channels(), src.Format())
	if err != nil {
		return nil, err
	}
	if fill != FillTransparent {
		paint(dst, fill)
	}

	bpp := src.Channels() * src.Format().BytesPerSample()
	srcData, dstData := src.Data(), dst.Data()

	// Clip the source rectangle to the canvas.
	sx0, sy0 := max(0, -x), max(0, -y)
	sx1, sy1 := min(src.Width(), width-x), min(src.Height(), height-y)
	if sx0 >= sx1 || sy0 >= sy1 {
		return dst, nil
	}
	n := (sx1 - sx0) * bpp
	for sy := sy0; sy < sy1; sy++ {
		s := (sy*src.Width() + sx0) * bpp
		d := ((sy+y)*width + sx0 + x) * bpp
		copy(dstData[d:d+n], srcData[s:s+n])
	}
	return dst, nil
}

// paint fills every pixel of m with the fill colour. Alpha, when present,
// is opaque.
func paint(m *image.Image, fill Fill) {
	ch := m.Channels()
	var v float64
	if fill == FillWhite {
		v = m.Format().Max()
	}
	for c := 0; c < ch; c++ {
		sample := v
		if m.HasAlpha() && c == ch-1 {
			sample = m.Format().Max()
		}
		m.SetAt(c, sample)
	}

	// Replicate the first pixel across the buffer by doubling.
	data := m.Data()
	bpp := ch * m.Format().BytesPerSample()
	for filled := bpp; filled < len(data); filled *= 2 {
		copy(data[filled:], data[:filled])
	}
}
