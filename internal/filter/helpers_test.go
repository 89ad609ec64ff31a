package filter

import (
	"testing"

	"github.com/gogpu/overlay/internal/image"
)

// Test helper functions shared across filter tests.

// filledImage creates an 8-bit image with every sample set to v.
func filledImage(t *testing.T, w, h, channels int, v byte) *image.Image {
	t.Helper()
	m, err := image.New(w, h, channels, image.FormatUchar)
	if err != nil {
		t.Fatalf("image.New() error = %v", err)
	}
	for i := range m.Data() {
		m.Data()[i] = v
	}
	return m
}

// stepImage creates a one-channel image that is lo left of column edge and hi
// from it on.
func stepImage(t *testing.T, w, h, edge int, lo, hi byte) *image.Image {
	t.Helper()
	m := filledImage(t, w, h, 1, lo)
	for y := 0; y < h; y++ {
		for x := edge; x < w; x++ {
			m.Data()[y*w+x] = hi
		}
	}
	return m
}

// absf32 returns the absolute value of a float32.
func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
