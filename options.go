package overlay

import (
	"image/color"

	"github.com/gogpu/overlay/internal/filter"
)

// Recipe names a text recipe whose font fallback list can be configured.
type Recipe string

// Text recipes.
const (
	RecipeCaption  Recipe = "caption"
	RecipeMeme     Recipe = "meme"
	RecipeMotivate Recipe = "motivate"
	RecipeLocket   Recipe = "locket"
)

// Font family names used by the default fallback lists. Families that are
// not registered are skipped, so the Go fonts always end each list.
const (
	FamilyEmoji   = "Twemoji Color Emoji"
	FamilyCaption = "FuturaExtraBlackCondensed"
	FamilyMeme    = "Impact"
	FamilySerif   = "Times"
)

// Option configures Init.
//
// Example:
//
//	err := overlay.Init(
//	    overlay.WithFont("Impact", impactTTF),
//	    overlay.WithMaxPixels(40_000_000),
//	)
type Option func(*config)

type fontData struct {
	family string
	data   []byte
}

// config holds the engine configuration frozen by Init.
type config struct {
	fonts       []fontData
	recipeFonts map[Recipe][]string
	maxPixels   int
	haloColor   color.NRGBA
}

// defaultConfig returns the default engine configuration.
func defaultConfig() config {
	return config{
		recipeFonts: map[Recipe][]string{
			RecipeCaption:  {FamilyCaption, FamilyEmoji, "Go Bold"},
			RecipeMeme:     {FamilyMeme, FamilyEmoji, "Go Bold"},
			RecipeMotivate: {FamilySerif, FamilyEmoji, "Go"},
			RecipeLocket:   {FamilySerif, FamilyEmoji, "Go"},
		},
		haloColor: color.NRGBA{A: 255},
	}
}

// WithFont registers font data (TrueType or OpenType) under family.
// Registering a built-in family name replaces the built-in font.
func WithFont(family string, data []byte) Option {
	return func(c *config) {
		c.fonts = append(c.fonts, fontData{family: family, data: data})
	}
}

// WithRecipeFonts replaces the font fallback list of a recipe.
func WithRecipeFonts(r Recipe, families ...string) Option {
	return func(c *config) {
		c.recipeFonts[r] = families
	}
}

// WithMaxPixels bounds the pixel count of decoded and raw inputs and of
// every intermediate image. 0 disables the limit.
func WithMaxPixels(n int) Option {
	return func(c *config) {
		c.maxPixels = n
	}
}

// WithHaloColor sets the meme halo colour. The default is opaque black.
func WithHaloColor(c color.Color) Option {
	return func(cfg *config) {
		cfg.haloColor = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
}

// EdgeOption configures Canny.
type EdgeOption func(*filter.CannyOptions)

// WithSigma sets the smoothing sigma. The default is 1.4.
func WithSigma(sigma float64) EdgeOption {
	return func(o *filter.CannyOptions) {
		o.Sigma = sigma
	}
}

// WithThresholds sets the hysteresis thresholds as fractions of the
// strongest gradient. The defaults are 0.1 and 0.3.
func WithThresholds(low, high float64) EdgeOption {
	return func(o *filter.CannyOptions) {
		o.Low, o.High = low, high
	}
}

// WithCast controls whether 16-bit input is cast to 8-bit first.
// The default is true.
func WithCast(cast bool) EdgeOption {
	return func(o *filter.CannyOptions) {
		o.Cast = cast
	}
}
