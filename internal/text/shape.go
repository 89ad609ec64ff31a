package text

import (
	"bytes"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
)

// parseShapingFont parses data with go-text/typesetting.
// ParseTTF returns a *Face which embeds the thread-safe *Font.
func parseShapingFont(data []byte) (*font.Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return face.Font, nil
}

// glyph is a shaped glyph positioned relative to the start of its paragraph.
type glyph struct {
	font    *Font
	id      sfnt.GlyphIndex
	x, y    float64 // pen position plus shaping offsets
	advance float64
	cluster int // index of the first rune of the glyph's cluster
}

// shaper shapes paragraphs with per-rune font fallback. It is used by one
// goroutine at a time.
type shaper struct {
	fonts []*Font
	buf   sfnt.Buffer
	hb    shaping.HarfbuzzShaper
	faces map[*Font]*font.Face
}

func newShaper(fonts []*Font) *shaper {
	return &shaper{fonts: fonts, faces: make(map[*Font]*font.Face)}
}

// face returns the go-text face for f. font.Face is not safe for concurrent
// use, so every shaper gets its own.
func (s *shaper) face(f *Font) *font.Face {
	if fc, ok := s.faces[f]; ok {
		return fc
	}
	fc := font.NewFace(f.shaping)
	s.faces[f] = fc
	return fc
}

// pick returns the first font covering r, or the primary font.
func (s *shaper) pick(r rune) *Font {
	for _, f := range s.fonts {
		if f.Has(&s.buf, r) {
			return f
		}
	}
	return s.fonts[0]
}

// shape converts a paragraph into glyphs. Consecutive runes resolved to the
// same font form one shaping run; whitespace stays with the preceding run.
func (s *shaper) shape(runes []rune, size float64) []glyph {
	if len(runes) == 0 {
		return nil
	}

	var glyphs []glyph
	var pen float64
	start := 0
	current := s.pick(runes[0])
	for i := 1; i < len(runes); i++ {
		if unicode.IsSpace(runes[i]) {
			continue
		}
		next := s.pick(runes[i])
		if next == current {
			continue
		}
		glyphs, pen = s.shapeRun(glyphs, runes, start, i, current, size, pen)
		start, current = i, next
	}
	glyphs, _ = s.shapeRun(glyphs, runes, start, len(runes), current, size, pen)
	return glyphs
}

func (s *shaper) shapeRun(glyphs []glyph, runes []rune, start, end int, f *Font, size, pen float64) ([]glyph, float64) {
	input := shaping.Input{
		Text:      runes,
		RunStart:  start,
		RunEnd:    end,
		Direction: di.DirectionLTR,
		Face:      s.face(f),
		Size:      toFixed(size),
		Script:    detectScript(runes[start:end]),
		Language:  language.NewLanguage("en"),
	}
	out := s.hb.Shape(input)

	for _, g := range out.Glyphs {
		adv := fromFixed(g.Advance)
		glyphs = append(glyphs, glyph{
			font:    f,
			id:      sfnt.GlyphIndex(g.GlyphID),
			x:       pen + fromFixed(g.XOffset),
			y:       -fromFixed(g.YOffset),
			advance: adv,
			cluster: g.TextIndex(),
		})
		pen += adv
	}
	return glyphs, pen
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
