package text

import (
	"testing"

	"github.com/gogpu/overlay/internal/image"
)

// newTestRegistry returns a registry holding the Go fonts.
func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	if err := reg.RegisterGoFonts(); err != nil {
		t.Fatalf("RegisterGoFonts() error = %v", err)
	}
	return reg
}

// syntheticGlyphs lays out runes at a fixed advance, one glyph per rune.
func syntheticGlyphs(runes []rune, advance float64) []glyph {
	glyphs := make([]glyph, len(runes))
	for i := range runes {
		glyphs[i] = glyph{x: float64(i) * advance, advance: advance, cluster: i}
	}
	return glyphs
}

// alphaStats counts fully opaque and fully transparent pixels of an RGBA image.
func alphaStats(m *image.Image) (opaque, transparent int) {
	data := m.Data()
	for i := 3; i < len(data); i += 4 {
		switch data[i] {
		case 255:
			opaque++
		case 0:
			transparent++
		}
	}
	return opaque, transparent
}
