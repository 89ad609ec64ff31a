package image

import (
	"bytes"
	"errors"
	"fmt"
	stdimage "image"
	"image/color"

	"github.com/disintegration/imaging"

	// Decoders for formats imaging does not register itself.
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrDecode is returned when an encoded buffer cannot be decoded.
	ErrDecode = errors.New("image: decode failed")

	// ErrEncode is returned when an image cannot be serialized.
	ErrEncode = errors.New("image: encode failed")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Decode decodes an encoded buffer (PNG, JPEG, GIF, BMP, TIFF, WebP) into a
// pool-backed 4-channel 8-bit image. EXIF orientation is applied. The pool's
// pixel limit is checked against the header before pixels are decoded.
func Decode(p *Pool, data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrEmptyData)
	}

	cfg, _, err := stdimage.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if p.limit > 0 && cfg.Width*cfg.Height > p.limit {
		return nil, fmt.Errorf("%w: %w: %dx%d", ErrDecode, ErrTooLarge, cfg.Width, cfg.Height)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return FromNRGBA(p, imaging.Clone(img))
}

// Encode serializes m to the named format. The name may carry a leading dot
// (".png") as file extensions do.
func Encode(m *Image, format string) ([]byte, error) {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrEncode, format, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, m.Std(), f, imaging.JPEGQuality(95)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// Transcode decodes data and re-encodes it to format.
func Transcode(p *Pool, data []byte, format string) ([]byte, error) {
	m, err := Decode(p, data)
	if err != nil {
		return nil, err
	}
	defer m.Release()
	return Encode(m, format)
}

// Std converts the image to a standard library image.
// 8-bit images become *image.Gray or *image.NRGBA, 16-bit images
// become *image.Gray16 or *image.NRGBA64.
func (m *Image) Std() stdimage.Image {
	rect := stdimage.Rect(0, 0, m.width, m.height)

	if m.format == FormatUchar {
		switch m.channels {
		case 1:
			gray := stdimage.NewGray(rect)
			copy(gray.Pix, m.data)
			return gray
		case 4:
			nrgba := stdimage.NewNRGBA(rect)
			copy(nrgba.Pix, m.data)
			return nrgba
		}
		nrgba := stdimage.NewNRGBA(rect)
		for y := range m.height {
			for x := range m.width {
				nrgba.SetNRGBA(x, y, m.nrgbaAt(x, y))
			}
		}
		return nrgba
	}

	if m.channels == 1 {
		gray := stdimage.NewGray16(rect)
		for y := range m.height {
			for x := range m.width {
				gray.SetGray16(x, y, color.Gray16{Y: uint16(m.Sample(x, y, 0))})
			}
		}
		return gray
	}
	nrgba := stdimage.NewNRGBA64(rect)
	for y := range m.height {
		for x := range m.width {
			r, g, b, a := m.rgbaSamples(x, y)
			nrgba.SetNRGBA64(x, y, color.NRGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)})
		}
	}
	return nrgba
}

func (m *Image) nrgbaAt(x, y int) color.NRGBA {
	r, g, b, a := m.rgbaSamples(x, y)
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// rgbaSamples expands a pixel of any channel layout to four samples.
func (m *Image) rgbaSamples(x, y int) (r, g, b, a float64) {
	a = m.format.Max()
	switch m.channels {
	case 1:
		r = m.Sample(x, y, 0)
		return r, r, r, a
	case 2:
		r = m.Sample(x, y, 0)
		return r, r, r, m.Sample(x, y, 1)
	case 3:
		return m.Sample(x, y, 0), m.Sample(x, y, 1), m.Sample(x, y, 2), a
	default:
		return m.Sample(x, y, 0), m.Sample(x, y, 1), m.Sample(x, y, 2), m.Sample(x, y, 3)
	}
}
