package image

import (
	"errors"
	"fmt"
	stdimage "image"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the sample format or channel count is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrDataSize is returned when a raw buffer does not hold exactly
	// width*height*channels samples.
	ErrDataSize = errors.New("image: buffer size does not match dimensions")

	// ErrTooLarge is returned when an input exceeds the configured pixel limit.
	ErrTooLarge = errors.New("image: too many pixels")

	// ErrReleased is returned when a released image is used.
	ErrReleased = errors.New("image: use of released image")
)

// Image is an owned, contiguous pixel buffer.
//
// Samples are stored interleaved, row-major, with no row padding:
// len(Data()) == Width*Height*Channels*BytesPerSample. Images with 2 or 4
// channels carry alpha in the last channel. Colour samples are stored
// unpremultiplied.
//
// An Image belongs to exactly one request. Release returns its buffer to the
// pool it came from; releasing twice is a no-op.
type Image struct {
	data     []byte
	width    int
	height   int
	channels int
	format   SampleFormat

	pool     *Pool
	released bool
}

// New creates a zeroed image that is not backed by a pool.
func New(width, height, channels int, format SampleFormat) (*Image, error) {
	if err := validate(width, height, channels, format); err != nil {
		return nil, err
	}
	return &Image{
		data:     make([]byte, byteLen(width, height, channels, format)),
		width:    width,
		height:   height,
		channels: channels,
		format:   format,
	}, nil
}

// FromRaw wraps an existing buffer without copying. The buffer must hold
// exactly width*height*channels samples of the given format.
func FromRaw(data []byte, width, height, channels int, format SampleFormat) (*Image, error) {
	if err := validate(width, height, channels, format); err != nil {
		return nil, err
	}
	if want := byteLen(width, height, channels, format); len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%dx%d %s",
			ErrDataSize, len(data), want, width, height, channels, format)
	}
	return &Image{
		data:     data,
		width:    width,
		height:   height,
		channels: channels,
		format:   format,
	}, nil
}

// FromNRGBA copies an NRGBA image into a new pool-backed RGBA Image.
func FromNRGBA(p *Pool, src *stdimage.NRGBA) (*Image, error) {
	b := src.Bounds()
	dst, err := p.Get(b.Dx(), b.Dy(), 4, FormatUchar)
	if err != nil {
		return nil, err
	}
	rowBytes := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(dst.data[y*rowBytes:(y+1)*rowBytes], src.Pix[off:off+rowBytes])
	}
	return dst, nil
}

func validate(width, height, channels int, format SampleFormat) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !format.IsValid() || !validChannels(channels) {
		return fmt.Errorf("%w: %d channels, format %d", ErrInvalidFormat, channels, format)
	}
	return nil
}

func byteLen(width, height, channels int, format SampleFormat) int {
	return width * height * channels * format.BytesPerSample()
}

// Width returns the image width in pixels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the image height in pixels.
func (m *Image) Height() int {
	return m.height
}

// Channels returns the number of interleaved channels.
func (m *Image) Channels() int {
	return m.channels
}

// Format returns the sample format.
func (m *Image) Format() SampleFormat {
	return m.format
}

// HasAlpha reports whether the last channel is alpha.
func (m *Image) HasAlpha() bool {
	return channelsHaveAlpha(m.channels)
}

// Data returns the raw sample buffer.
func (m *Image) Data() []byte {
	return m.data
}

// Len returns the buffer length in bytes.
func (m *Image) Len() int {
	return len(m.data)
}

// SameSize reports whether m and o have identical pixel dimensions.
func (m *Image) SameSize(o *Image) bool {
	return m.width == o.width && m.height == o.height
}

// Released reports whether Release has been called.
func (m *Image) Released() bool {
	return m.released
}

// Sample returns channel c of pixel (x, y) as a float in the format's range.
func (m *Image) Sample(x, y, c int) float64 {
	return m.format.getSample(m.data, (y*m.width+x)*m.channels+c)
}

// SetSample stores v into channel c of pixel (x, y), rounding and clamping.
func (m *Image) SetSample(x, y, c int, v float64) {
	m.format.setSample(m.data, (y*m.width+x)*m.channels+c, v)
}

// At returns sample i of the interleaved buffer, counted in samples.
func (m *Image) At(i int) float64 {
	return m.format.getSample(m.data, i)
}

// SetAt stores v into sample i of the interleaved buffer, rounding and clamping.
func (m *Image) SetAt(i int, v float64) {
	m.format.setSample(m.data, i, v)
}

// Release returns the buffer to its pool. Images that are not pool-backed
// just drop their buffer. Calling Release more than once has no effect.
func (m *Image) Release() {
	if m == nil || m.released {
		return
	}
	m.released = true
	if m.pool != nil {
		m.pool.put(m)
	}
	m.data = nil
}

// Detach hands the buffer to the caller. The image is marked released and
// no longer counted by its pool; the returned slice is owned by the caller.
func (m *Image) Detach() []byte {
	if m.released {
		return nil
	}
	data := m.data
	m.released = true
	m.data = nil
	if m.pool != nil {
		m.pool.forget()
	}
	return data
}

// Clone creates a pool-backed deep copy of the image.
func (m *Image) Clone(p *Pool) (*Image, error) {
	dst, err := p.Get(m.width, m.height, m.channels, m.format)
	if err != nil {
		return nil, err
	}
	copy(dst.data, m.data)
	return dst, nil
}

// AddAlpha returns a copy with an alpha channel appended. Colour samples are
// copied unchanged and alpha is set to the format maximum. Images that
// already carry alpha are cloned.
func (m *Image) AddAlpha(p *Pool) (*Image, error) {
	if m.HasAlpha() {
		return m.Clone(p)
	}
	dst, err := p.Get(m.width, m.height, m.channels+1, m.format)
	if err != nil {
		return nil, err
	}

	bps := m.format.BytesPerSample()
	srcPix := m.channels * bps
	dstPix := dst.channels * bps
	opaque := make([]byte, bps)
	m.format.setSample(opaque, 0, m.format.Max())

	for i := 0; i < m.width*m.height; i++ {
		s := m.data[i*srcPix : (i+1)*srcPix]
		d := dst.data[i*dstPix : (i+1)*dstPix]
		copy(d, s)
		copy(d[srcPix:], opaque)
	}
	return dst, nil
}

// NRGBA returns an image.NRGBA view sharing this image's buffer.
// It requires 4 channels of 8-bit samples.
func (m *Image) NRGBA() (*stdimage.NRGBA, error) {
	if m.channels != 4 || m.format != FormatUchar {
		return nil, fmt.Errorf("%w: NRGBA view needs 4 uchar channels, have %d %s",
			ErrInvalidFormat, m.channels, m.format)
	}
	return &stdimage.NRGBA{
		Pix:    m.data,
		Stride: m.width * 4,
		Rect:   stdimage.Rect(0, 0, m.width, m.height),
	}, nil
}
