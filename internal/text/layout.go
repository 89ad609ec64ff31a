package text

import (
	"math"
	"strings"
	"unicode"
)

// Alignment specifies horizontal alignment of lines within the text block.
type Alignment int

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers lines horizontally.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// line is a laid out line. Glyph X positions start at 0 for the first glyph.
type line struct {
	glyphs []glyph
	width  float64 // advance width without trailing spaces
	x      float64 // alignment offset within the block
}

// block is the result of laying out a text at one size.
type block struct {
	lines      []line
	size       float64
	width      float64 // widest line
	ascent     float64
	lineHeight float64
}

// height returns the total height of all lines.
func (b *block) height() float64 {
	return float64(len(b.lines)) * b.lineHeight
}

// fits reports whether the block fits in a w×h box. Zero disables an axis.
func (b *block) fits(w, h int) bool {
	if w > 0 && b.width > float64(w) {
		return false
	}
	if h > 0 && b.height() > float64(h) {
		return false
	}
	return true
}

// layoutOptions configures layoutText.
type layoutOptions struct {
	size        float64
	maxWidth    float64 // 0 disables wrapping
	wrap        WrapMode
	align       Alignment
	lineSpacing float64
}

// layoutText shapes and wraps text into lines. The primary font supplies the
// vertical metrics.
func (s *shaper) layoutText(text string, opts layoutOptions) (*block, error) {
	if opts.lineSpacing <= 0 {
		opts.lineSpacing = 1
	}
	m, err := s.fonts[0].Metrics(&s.buf, opts.size)
	if err != nil {
		return nil, err
	}

	b := &block{
		size:       opts.size,
		ascent:     fromFixed(m.Ascent),
		lineHeight: fromFixed(m.Height) * opts.lineSpacing,
	}
	for _, para := range splitParagraphs(text) {
		runes := []rune(para)
		glyphs := s.shape(runes, opts.size)
		b.lines = append(b.lines, wrapLines(runes, glyphs, opts.maxWidth, opts.wrap)...)
	}

	for _, l := range b.lines {
		b.width = math.Max(b.width, l.width)
	}
	for i := range b.lines {
		b.lines[i].x = alignOffset(opts.align, b.width, b.lines[i].width)
	}
	return b, nil
}

// splitParagraphs splits text by hard line breaks.
func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// wrapLines breaks a shaped paragraph into lines no wider than maxWidth.
//
// Lines break at the last break opportunity that fits. Without one,
// WrapWordChar and WrapChar break at the overflowing cluster, while WrapWord
// lets the word overflow. Spaces never cause a break and are dropped at line
// starts.
func wrapLines(runes []rune, glyphs []glyph, maxWidth float64, mode WrapMode) []line {
	if len(glyphs) == 0 {
		return []line{{}}
	}
	if maxWidth <= 0 || mode == WrapNone {
		return []line{newLine(runes, glyphs)}
	}

	breaks := breakOpportunities(runes, mode)
	isSpace := func(g glyph) bool {
		return g.cluster < len(runes) && unicode.IsSpace(runes[g.cluster])
	}
	boundary := func(i int) bool {
		return glyphs[i].cluster != glyphs[i-1].cluster
	}

	var lines []line
	start, lastBreak := 0, -1
	for i := 0; i < len(glyphs); i++ {
		g := glyphs[i]
		if i > start && boundary(i) && g.cluster < len(breaks) && breaks[g.cluster] {
			lastBreak = i
		}
		if isSpace(g) || i == start {
			continue
		}
		if g.x-glyphs[start].x+g.advance <= maxWidth {
			continue
		}

		breakAt := -1
		switch {
		case lastBreak > start:
			breakAt = lastBreak
		case mode != WrapWord && boundary(i):
			breakAt = i
		}
		if breakAt < 0 {
			continue
		}

		lines = append(lines, newLine(runes, glyphs[start:breakAt]))
		start = breakAt
		for start < len(glyphs) && isSpace(glyphs[start]) {
			start++
		}
		lastBreak = -1
		i = start - 1
	}
	if start < len(glyphs) {
		lines = append(lines, newLine(runes, glyphs[start:]))
	}
	if len(lines) == 0 {
		lines = append(lines, line{})
	}
	return lines
}

// newLine rebases glyphs to start at X 0 and measures the line without its
// trailing spaces.
func newLine(runes []rune, glyphs []glyph) line {
	if len(glyphs) == 0 {
		return line{}
	}
	l := line{glyphs: make([]glyph, len(glyphs))}
	origin := glyphs[0].x
	for i, g := range glyphs {
		g.x -= origin
		l.glyphs[i] = g
	}
	for i := len(l.glyphs) - 1; i >= 0; i-- {
		g := l.glyphs[i]
		if g.cluster < len(runes) && unicode.IsSpace(runes[g.cluster]) {
			continue
		}
		l.width = g.x + g.advance
		break
	}
	return l
}

func alignOffset(a Alignment, blockWidth, lineWidth float64) float64 {
	switch a {
	case AlignCenter:
		return (blockWidth - lineWidth) / 2
	case AlignRight:
		return blockWidth - lineWidth
	default:
		return 0
	}
}
