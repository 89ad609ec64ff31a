// Package geometry derives canvas sizes from layout ratios and places images
// on larger canvases.
package geometry

// Layout ratios used by the text recipes. They are defaults carried over from
// the reference output, not hard limits.
const (
	// CaptionFontRatio divides the canvas width to get the caption font size.
	CaptionFontRatio = 10

	// TextBoxRatio is the share of the canvas width given to wrapped text.
	TextBoxRatio = 0.92

	// CaptionPadRatio divides the width to get the extra caption height.
	CaptionPadRatio = 6

	// MotivatePadRatio divides the width to get the optional motivational padding.
	MotivatePadRatio = 10

	// MemeFontRatio divides the width to get the nominal meme font size.
	MemeFontRatio = 9

	// HaloRadiusRatio divides the meme font size to get the halo radius.
	HaloRadiusRatio = 18

	// LocketBoxRatio divides both canvas axes to get the locket text box.
	LocketBoxRatio = 2
)

// CaptionFontSize returns the caption font size for a canvas width.
func CaptionFontSize(width int) float64 {
	return float64(width / CaptionFontRatio)
}

// TextBoxWidth returns the wrapping width for text on a canvas of width px.
func TextBoxWidth(width int) int {
	return int(float64(width) * TextBoxRatio)
}

// CaptionHeight returns the caption header height: the rendered text plus
// bottom padding.
func CaptionHeight(width, textHeight int) int {
	return textHeight + width/CaptionPadRatio
}

// MotivateHeight returns the motivational text box height.
func MotivateHeight(width, textHeight int, pad bool) int {
	if pad {
		return textHeight + width/MotivatePadRatio
	}
	return textHeight
}

// MemeFontSize returns the nominal meme font size. Meme text is auto-fitted;
// this only drives the halo radius.
func MemeFontSize(width int) int {
	return width / MemeFontRatio
}

// HaloRadius returns the halo radius for a meme canvas of the given width.
// The radius does not depend on the canvas height.
func HaloRadius(width int) float64 {
	return float64(MemeFontSize(width)) / HaloRadiusRatio
}

// Margins describes transparent padding around an image.
type Margins struct {
	Left, Top     int
	Width, Height int // total extra width and height
}

// HaloMargins returns the padding that keeps a halo of radius r from being
// clipped: r on the left, 2r on top, 2r extra width and 4r extra height.
func HaloMargins(r float64) Margins {
	if r <= 0 {
		return Margins{}
	}
	return Margins{
		Left:   int(r),
		Top:    int(r * 2),
		Width:  int(r * 2),
		Height: int(r * 4),
	}
}

// LocketBox returns the text box for a locket canvas.
func LocketBox(width, height int) (int, int) {
	return width / LocketBoxRatio, height / LocketBoxRatio
}

// AtLeast returns target, or source when source is larger. Recipes use it so
// extension never shrinks.
func AtLeast(target, source int) int {
	if source > target {
		return source
	}
	return target
}
