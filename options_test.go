package overlay

import (
	"image/color"
	"strings"
	"testing"

	"github.com/gogpu/overlay/internal/filter"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	for _, r := range []Recipe{RecipeCaption, RecipeMeme, RecipeMotivate, RecipeLocket} {
		families := cfg.recipeFonts[r]
		if len(families) == 0 {
			t.Errorf("recipe %s has no fonts", r)
			continue
		}
		if last := families[len(families)-1]; !strings.HasPrefix(last, "Go") {
			t.Errorf("recipe %s ends with %q, want a built-in Go font", r, last)
		}
	}
	if cfg.haloColor != (color.NRGBA{A: 255}) {
		t.Errorf("haloColor = %v, want opaque black", cfg.haloColor)
	}
	if cfg.maxPixels != 0 {
		t.Errorf("maxPixels = %d, want 0", cfg.maxPixels)
	}
}

func TestWithHaloColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want color.NRGBA
	}{
		{"nrgba", color.NRGBA{R: 10, G: 20, B: 30, A: 255}, color.NRGBA{R: 10, G: 20, B: 30, A: 255}},
		{"white", color.White, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"premultiplied half red", color.RGBA{R: 128, A: 128}, color.NRGBA{R: 255, A: 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			WithHaloColor(tt.in)(&cfg)
			if cfg.haloColor != tt.want {
				t.Errorf("haloColor = %v, want %v", cfg.haloColor, tt.want)
			}
		})
	}
}

func TestEdgeOptions(t *testing.T) {
	o := filter.DefaultCannyOptions()
	for _, opt := range []EdgeOption{WithSigma(3), WithThresholds(0.2, 0.6), WithCast(false)} {
		opt(&o)
	}
	want := filter.CannyOptions{Sigma: 3, Low: 0.2, High: 0.6, Cast: false}
	if o != want {
		t.Errorf("options = %+v, want %+v", o, want)
	}
}
