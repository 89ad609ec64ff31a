// Package image provides the pixel buffer model shared by every stage of
// the overlay pipeline.
package image

import "encoding/binary"

// SampleFormat is the storage type of a single channel sample.
type SampleFormat uint8

const (
	// FormatUchar stores 8-bit unsigned samples.
	FormatUchar SampleFormat = iota

	// FormatUshort stores 16-bit unsigned samples, little endian.
	FormatUshort

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a sample format.
type FormatInfo struct {
	// BytesPerSample is the storage size of one channel sample.
	BytesPerSample int

	// Max is the largest representable sample value.
	Max float64

	// Name is the engine name of the format.
	Name string
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatUchar: {
		BytesPerSample: 1,
		Max:            255,
		Name:           "uchar",
	},
	FormatUshort: {
		BytesPerSample: 2,
		Max:            65535,
		Name:           "ushort",
	},
}

// Info returns the FormatInfo for this format.
// Returns the zero FormatInfo for unknown formats.
func (f SampleFormat) Info() FormatInfo {
	if !f.IsValid() {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid reports whether the format is a known sample format.
func (f SampleFormat) IsValid() bool {
	return f < formatCount
}

// BytesPerSample returns the storage size of one sample.
func (f SampleFormat) BytesPerSample() int {
	return f.Info().BytesPerSample
}

// Max returns the maximum sample value, which is also the opaque alpha value.
func (f SampleFormat) Max() float64 {
	return f.Info().Max
}

// String returns the engine name of the format.
func (f SampleFormat) String() string {
	if !f.IsValid() {
		return "unknown"
	}
	return formatInfoTable[f].Name
}

// getSample reads sample i (in samples, not bytes) from data.
func (f SampleFormat) getSample(data []byte, i int) float64 {
	if f == FormatUshort {
		return float64(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return float64(data[i])
}

// setSample writes v to sample i, rounding and clamping to the format range.
func (f SampleFormat) setSample(data []byte, i int, v float64) {
	m := f.Max()
	switch {
	case v <= 0:
		v = 0
	case v >= m:
		v = m
	default:
		v += 0.5
	}
	if f == FormatUshort {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(v))
		return
	}
	data[i] = uint8(v)
}

// channelsHaveAlpha reports whether the last channel of a pixel is alpha.
func channelsHaveAlpha(channels int) bool {
	return channels == 2 || channels == 4
}

// validChannels reports whether channels is a supported band count.
func validChannels(channels int) bool {
	return channels >= 1 && channels <= 4
}
