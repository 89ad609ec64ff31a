package text

import (
	"math"
	"testing"
)

func TestAlignmentString(t *testing.T) {
	tests := []struct {
		a    Alignment
		want string
	}{
		{AlignLeft, "Left"},
		{AlignCenter, "Center"},
		{AlignRight, "Right"},
		{Alignment(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Alignment(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestWrapLines(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxWidth  float64
		mode      WrapMode
		wantWidth []float64
	}{
		{"fits", "aaa bbb", 100, WrapWordChar, []float64{70}},
		{"word break", "aaa bbb", 35, WrapWord, []float64{30, 30}},
		{"trailing space ignored", "aaa bbb", 30, WrapWord, []float64{30, 30}},
		{"long word overflows", "abcdefgh", 35, WrapWord, []float64{80}},
		{"long word split", "abcdefgh", 35, WrapWordChar, []float64{30, 30, 20}},
		{"char mode", "abcdefgh", 35, WrapChar, []float64{30, 30, 20}},
		{"word before char fallback", "ab cdefgh", 35, WrapWordChar, []float64{20, 30, 30}},
		{"none", "aaa bbb", 35, WrapNone, []float64{70}},
		{"no width", "aaa bbb", 0, WrapWord, []float64{70}},
		{"glyph wider than box", "a", 5, WrapChar, []float64{10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runes := []rune(tt.text)
			lines := wrapLines(runes, syntheticGlyphs(runes, 10), tt.maxWidth, tt.mode)
			if len(lines) != len(tt.wantWidth) {
				t.Fatalf("len(lines) = %d, want %d", len(lines), len(tt.wantWidth))
			}
			for i, l := range lines {
				if l.width != tt.wantWidth[i] {
					t.Errorf("lines[%d].width = %v, want %v", i, l.width, tt.wantWidth[i])
				}
				if len(l.glyphs) > 0 && l.glyphs[0].x != 0 {
					t.Errorf("lines[%d] starts at x = %v, want 0", i, l.glyphs[0].x)
				}
			}
		})
	}
}

func TestWrapLinesEmpty(t *testing.T) {
	lines := wrapLines(nil, nil, 100, WrapWordChar)
	if len(lines) != 1 || len(lines[0].glyphs) != 0 {
		t.Errorf("wrapLines(empty) = %+v, want one empty line", lines)
	}
}

func TestAlignOffset(t *testing.T) {
	tests := []struct {
		a    Alignment
		want float64
	}{
		{AlignLeft, 0},
		{AlignCenter, 20},
		{AlignRight, 40},
	}
	for _, tt := range tests {
		if got := alignOffset(tt.a, 100, 60); got != tt.want {
			t.Errorf("alignOffset(%s, 100, 60) = %v, want %v", tt.a, got, tt.want)
		}
	}
}

func TestShape(t *testing.T) {
	reg := newTestRegistry(t)
	fonts, err := reg.Resolve([]string{"Go"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	s := newShaper(fonts)

	glyphs := s.shape([]rune("Hello"), 20)
	if len(glyphs) == 0 {
		t.Fatal("shape() returned no glyphs")
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].x < glyphs[i-1].x {
			t.Errorf("glyph %d x = %v, before glyph %d x = %v", i, glyphs[i].x, i-1, glyphs[i-1].x)
		}
		if glyphs[i].cluster < glyphs[i-1].cluster {
			t.Errorf("glyph %d cluster = %d, before glyph %d cluster = %d",
				i, glyphs[i].cluster, i-1, glyphs[i-1].cluster)
		}
	}
	for _, g := range glyphs {
		if g.font != fonts[0] {
			t.Errorf("glyph font = %s, want Go", g.font.Name())
		}
		if g.id == 0 {
			t.Error("shape() produced .notdef for a covered rune")
		}
	}

	if got := s.shape(nil, 20); got != nil {
		t.Errorf("shape(nil) = %v, want nil", got)
	}
}

func TestShaperPickFallsBackToPrimary(t *testing.T) {
	reg := newTestRegistry(t)
	fonts, _ := reg.Resolve([]string{"Go Bold", "Go"})
	s := newShaper(fonts)

	if got := s.pick('A'); got != fonts[0] {
		t.Errorf("pick('A') = %s, want Go Bold", got.Name())
	}
	if got := s.pick('😀'); got != fonts[0] {
		t.Errorf("pick(uncovered) = %s, want primary Go Bold", got.Name())
	}
}

func TestLayoutText(t *testing.T) {
	reg := newTestRegistry(t)
	fonts, _ := reg.Resolve([]string{"Go"})
	s := newShaper(fonts)

	b, err := s.layoutText("Hello\nWide world", layoutOptions{size: 20, align: AlignCenter})
	if err != nil {
		t.Fatalf("layoutText() error = %v", err)
	}
	if len(b.lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(b.lines))
	}
	if b.lineHeight <= 0 || b.ascent <= 0 {
		t.Fatalf("lineHeight = %v, ascent = %v, want positive", b.lineHeight, b.ascent)
	}
	if got, want := b.height(), 2*b.lineHeight; got != want {
		t.Errorf("height() = %v, want %v", got, want)
	}
	if b.width != math.Max(b.lines[0].width, b.lines[1].width) {
		t.Errorf("width = %v, want widest line", b.width)
	}
	for i, l := range b.lines {
		if want := (b.width - l.width) / 2; l.x != want {
			t.Errorf("lines[%d].x = %v, want %v", i, l.x, want)
		}
	}

	spaced, err := s.layoutText("Hello", layoutOptions{size: 20, lineSpacing: 2})
	if err != nil {
		t.Fatalf("layoutText() error = %v", err)
	}
	if spaced.lineHeight != 2*b.lineHeight {
		t.Errorf("lineHeight with spacing 2 = %v, want %v", spaced.lineHeight, 2*b.lineHeight)
	}
}

func TestLayoutTextWraps(t *testing.T) {
	reg := newTestRegistry(t)
	fonts, _ := reg.Resolve([]string{"Go"})
	s := newShaper(fonts)

	b, err := s.layoutText("the quick brown fox jumps over the lazy dog",
		layoutOptions{size: 20, maxWidth: 120, wrap: WrapWordChar})
	if err != nil {
		t.Fatalf("layoutText() error = %v", err)
	}
	if len(b.lines) < 3 {
		t.Errorf("len(lines) = %d, want at least 3", len(b.lines))
	}
	if b.width > 120 {
		t.Errorf("width = %v, want <= 120", b.width)
	}
	if !b.fits(120, 0) {
		t.Error("fits(120, 0) = false, want true")
	}
	if b.fits(120, int(b.lineHeight)) {
		t.Error("fits with one line of height = true, want false")
	}
}
