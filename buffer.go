package overlay

import (
	"github.com/gogpu/overlay/internal/image"
)

// Buffer is a caller-owned result: raw interleaved 8-bit samples, row-major
// with no padding. RGBA results have 4 channels.
type Buffer struct {
	data     []byte
	width    int
	height   int
	channels int
}

// newBuffer takes ownership of m's samples. m is released.
func newBuffer(m *image.Image) *Buffer {
	b := &Buffer{width: m.Width(), height: m.Height(), channels: m.Channels()}
	b.data = m.Detach()
	return b
}

// Bytes returns the samples. The slice is valid until Release.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the length of the sample buffer in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Width returns the width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Channels returns the number of interleaved channels.
func (b *Buffer) Channels() int {
	return b.channels
}

// Release drops the samples. It is safe to call more than once.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	b.data = nil
}

// Encode serializes the buffer to an image format named by extension
// (".png", "jpg", "gif", "bmp", "tiff").
func (b *Buffer) Encode(format string) ([]byte, error) {
	const op = "encode"
	m, err := image.FromRaw(b.data, b.width, b.height, b.channels, image.FormatUchar)
	if err != nil {
		return nil, wrapError(op, KindEncode, err)
	}
	out, err := image.Encode(m, format)
	if err != nil {
		return nil, wrapError(op, KindEncode, err)
	}
	return out, nil
}
