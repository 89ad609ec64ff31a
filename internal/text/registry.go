package text

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	gotext "github.com/go-text/typesetting/font"
)

// Font is a registered font family.
//
// The outline font and the shaping font are parsed from the same data. Both
// are read-only and safe for concurrent use; per-call state lives in
// sfnt.Buffer and font.Face values owned by the caller.
type Font struct {
	name    string
	outline *opentype.Font
	shaping *gotext.Font
}

// Name returns the family name the font was registered under.
func (f *Font) Name() string {
	return f.name
}

// Has reports whether the font maps r to a glyph.
func (f *Font) Has(buf *sfnt.Buffer, r rune) bool {
	idx, err := f.outline.GlyphIndex(buf, r)
	return err == nil && idx != 0
}

// Metrics returns the font's vertical metrics at size px per em.
func (f *Font) Metrics(buf *sfnt.Buffer, size float64) (font.Metrics, error) {
	return f.outline.Metrics(buf, toFixed(size), font.HintingNone)
}

// Registry maps family names to parsed fonts.
//
// Registration is not synchronized: register everything during startup,
// then share the Registry read-only.
type Registry struct {
	fonts map[string]*Font
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fonts: make(map[string]*Font)}
}

// Register parses data and stores it under name. Names are matched case
// insensitively; registering a name again replaces the earlier font.
func (r *Registry) Register(name string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFontData, name)
	}
	outline, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("text: failed to parse font %s: %w", name, err)
	}
	shaping, err := parseShapingFont(data)
	if err != nil {
		return fmt.Errorf("text: failed to parse font %s for shaping: %w", name, err)
	}
	r.fonts[key(name)] = &Font{name: name, outline: outline, shaping: shaping}
	return nil
}

// GoFonts lists the families registered by RegisterGoFonts.
var GoFonts = map[string][]byte{
	"Go":             goregular.TTF,
	"Go Bold":        gobold.TTF,
	"Go Italic":      goitalic.TTF,
	"Go Bold Italic": gobolditalic.TTF,
	"Go Medium":      gomedium.TTF,
	"Go Mono":        gomono.TTF,
	"Go Mono Bold":   gomonobold.TTF,
	"Go Smallcaps":   gosmallcaps.TTF,
}

// RegisterGoFonts registers the Go font family.
func (r *Registry) RegisterGoFonts() error {
	for name, data := range GoFonts {
		if err := r.Register(name, data); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the font registered under name.
func (r *Registry) Lookup(name string) (*Font, bool) {
	f, ok := r.fonts[key(name)]
	return f, ok
}

// Families returns the registered family names, sorted.
func (r *Registry) Families() []string {
	names := make([]string, 0, len(r.fonts))
	for _, f := range r.fonts {
		names = append(names, f.name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the registered fonts among families, in order. Unknown
// families are skipped; if none is known it fails with ErrNoFont.
func (r *Registry) Resolve(families []string) ([]*Font, error) {
	fonts := make([]*Font, 0, len(families))
	for _, name := range families {
		if f, ok := r.Lookup(name); ok {
			fonts = append(fonts, f)
		}
	}
	if len(fonts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFont, strings.Join(families, ", "))
	}
	return fonts, nil
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// toFixed converts a pixel size to fixed.Int26_6.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fromFixed converts a fixed.Int26_6 value to float64.
func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
