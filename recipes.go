package overlay

import (
	"fmt"
	"image/color"

	"github.com/gogpu/overlay/internal/blend"
	"github.com/gogpu/overlay/internal/filter"
	"github.com/gogpu/overlay/internal/geometry"
	"github.com/gogpu/overlay/internal/image"
	"github.com/gogpu/overlay/internal/text"
)

// CaptionHeader renders caption as black text centred on a white header band
// for a frame width px wide. The band is as tall as the wrapped text plus
// width/6 of padding; Buffer.Height reports it.
func CaptionHeader(width int, caption string) (*Buffer, error) {
	r, err := begin("caption")
	if err != nil {
		return nil, err
	}
	defer r.end()

	if width <= 0 {
		return nil, r.fail(KindParameter, fmt.Errorf("%w: width %d", ErrInvalidParameter, width))
	}

	txt, err := r.eng.raster.Rasterize(r.pool, r.eng.captionSpec(width, caption))
	if err != nil {
		return nil, r.fail(KindRaster, err)
	}
	defer txt.Release()

	height := geometry.CaptionHeight(width, txt.Height())
	Logger().Debug("overlay: caption", "width", width, "textHeight", txt.Height(), "height", height)
	return r.flatten(txt, width, height, geometry.FillWhite)
}

func (e *engine) captionSpec(width int, caption string) text.Spec {
	return text.Spec{
		Text:       caption,
		Font:       e.font(RecipeCaption, max(geometry.CaptionFontSize(width), 1)),
		Wrap:       text.WrapWord,
		Align:      text.AlignCenter,
		Width:      geometry.TextBoxWidth(width),
		Foreground: color.Black,
	}
}

// MemeText renders text auto-fitted into a width × height canvas: white,
// centred, with a soft halo in the configured colour (black by default).
// Uncovered pixels are transparent, so the result can be laid over a frame.
func MemeText(width, height int, s string) (*Buffer, error) {
	r, err := begin("meme")
	if err != nil {
		return nil, err
	}
	defer r.end()

	if width <= 0 || height <= 0 {
		return nil, r.fail(KindParameter, fmt.Errorf("%w: canvas %dx%d", ErrInvalidParameter, width, height))
	}
	radius := geometry.HaloRadius(width)
	margins := geometry.HaloMargins(radius)
	boxHeight := height - margins.Height
	if boxHeight <= 0 {
		return nil, r.fail(KindGeometry, fmt.Errorf("%w: height %d leaves no room for a halo of radius %g",
			ErrInvalidParameter, height, radius))
	}

	txt, err := r.eng.raster.Rasterize(r.pool, r.eng.memeSpec(width, boxHeight, s))
	if err != nil {
		return nil, r.fail(KindRaster, err)
	}
	defer txt.Release()

	opts := filter.DefaultHaloOptions(radius)
	opts.Color = r.eng.cfg.haloColor
	halo, err := filter.Halo(r.pool, txt, opts)
	if err != nil {
		return nil, r.fail(KindFilter, err)
	}
	defer halo.Release()

	out, err := geometry.Extend(r.pool, halo, geometry.Spec{
		Width:   geometry.AtLeast(width, halo.Width()),
		Height:  geometry.AtLeast(height, halo.Height()),
		Gravity: geometry.Centre,
		Fill:    geometry.FillTransparent,
	})
	if err != nil {
		return nil, r.fail(KindGeometry, err)
	}
	Logger().Debug("overlay: meme", "width", width, "height", height,
		"text", fmt.Sprintf("%dx%d", txt.Width(), txt.Height()), "radius", radius)
	return newBuffer(out), nil
}

func (e *engine) memeSpec(width, boxHeight int, s string) text.Spec {
	return text.Spec{
		Text:       s,
		Font:       e.font(RecipeMeme, 0),
		Wrap:       text.WrapWordChar,
		Align:      text.AlignCenter,
		Width:      geometry.TextBoxWidth(width),
		Height:     boxHeight,
		Foreground: color.White,
	}
}

// MotivateText renders white text at size px on a black box width px wide.
// With pad the box gains width/10 of extra height.
func MotivateText(width int, s string, size int, pad bool) (*Buffer, error) {
	return motivate("motivate", width, s, color.White, size, pad)
}

// MotivateBlank renders an empty black box as tall as one line of text at
// size px, for frames without top text.
func MotivateBlank(width, size int, pad bool) (*Buffer, error) {
	// "|" spans the full line height; drawn black it disappears.
	return motivate("motivate-blank", width, "|", color.Black, size, pad)
}

func motivate(op string, width int, s string, fg color.Color, size int, pad bool) (*Buffer, error) {
	r, err := begin(op)
	if err != nil {
		return nil, err
	}
	defer r.end()

	if width <= 0 || size <= 0 {
		return nil, r.fail(KindParameter, fmt.Errorf("%w: width %d, text size %d", ErrInvalidParameter, width, size))
	}

	txt, err := r.eng.raster.Rasterize(r.pool, text.Spec{
		Text:       s,
		Font:       r.eng.font(RecipeMotivate, float64(size)),
		Wrap:       text.WrapWord,
		Align:      text.AlignCenter,
		Width:      width,
		Foreground: fg,
		Background: color.Black,
	})
	if err != nil {
		return nil, r.fail(KindRaster, err)
	}
	defer txt.Release()

	height := geometry.MotivateHeight(width, txt.Height(), pad)
	Logger().Debug("overlay: motivate", "width", width, "size", size, "height", height, "pad", pad)
	return r.flatten(txt, width, height, geometry.FillBlack)
}

// LocketText renders black text on a white width × height canvas, auto-fitted
// into a centred box of half the canvas in each axis.
func LocketText(width, height int, s string) (*Buffer, error) {
	r, err := begin("locket")
	if err != nil {
		return nil, err
	}
	defer r.end()

	boxWidth, boxHeight := geometry.LocketBox(width, height)
	if boxWidth <= 0 || boxHeight <= 0 {
		return nil, r.fail(KindParameter, fmt.Errorf("%w: canvas %dx%d", ErrInvalidParameter, width, height))
	}

	txt, err := r.eng.raster.Rasterize(r.pool, text.Spec{
		Text:       s,
		Font:       r.eng.font(RecipeLocket, 0),
		Wrap:       text.WrapWord,
		Align:      text.AlignCenter,
		Width:      boxWidth,
		Height:     boxHeight,
		Foreground: color.Black,
	})
	if err != nil {
		return nil, r.fail(KindRaster, err)
	}
	defer txt.Release()

	Logger().Debug("overlay: locket", "width", width, "height", height,
		"text", fmt.Sprintf("%dx%d", txt.Width(), txt.Height()))
	return r.flatten(txt, width, height, geometry.FillWhite)
}

// font returns the recipe's font spec at size (0 auto-fits).
func (e *engine) font(recipe Recipe, size float64) text.FontSpec {
	return text.FontSpec{Families: e.cfg.recipeFonts[recipe], Size: size}
}

// flatten centres src on a width × height canvas, never shrinking, and
// puts a solid fill layer behind it.
func (r *request) flatten(src *image.Image, width, height int, fill geometry.Fill) (*Buffer, error) {
	width = geometry.AtLeast(width, src.Width())
	height = geometry.AtLeast(height, src.Height())

	extended, err := geometry.Extend(r.pool, src, geometry.Spec{
		Width:   width,
		Height:  height,
		Gravity: geometry.Centre,
		Fill:    fill,
	})
	if err != nil {
		return nil, r.fail(KindGeometry, err)
	}
	defer extended.Release()

	background, err := geometry.Canvas(r.pool, width, height, fill)
	if err != nil {
		return nil, r.fail(KindGeometry, err)
	}
	defer background.Release()

	out, err := blend.Composite(r.pool, []blend.Layer{
		{Image: extended},
		{Image: background, Mode: blend.ModeDestOver},
	})
	if err != nil {
		return nil, r.fail(KindComposite, err)
	}
	return newBuffer(out), nil
}
