package text

import (
	"fmt"
	stdimage "image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/overlay/internal/image"
)

// DefaultSize is the font size used when neither a size nor a box height
// is given.
const DefaultSize = 12

// FontSpec selects fonts by family name in fallback order. A Size of 0
// requests auto-fit into the box.
type FontSpec struct {
	Families []string
	Size     float64
}

// Spec describes a block of text to rasterize.
type Spec struct {
	Text  string
	Font  FontSpec
	Wrap  WrapMode
	Align Alignment

	// Width is the wrapping width in pixels. 0 disables wrapping.
	Width int

	// Height bounds the block when the font size is auto-fit.
	Height int

	// LineSpacing multiplies the font's line height. 0 means 1.
	LineSpacing float64

	// Foreground defaults to black, Background to transparent.
	Foreground color.Color
	Background color.Color
}

// Rasterizer turns text specs into RGBA images using a font registry.
// It is safe for concurrent use once the registry is no longer modified.
type Rasterizer struct {
	reg *Registry
}

// NewRasterizer creates a rasterizer over reg.
func NewRasterizer(reg *Registry) *Rasterizer {
	return &Rasterizer{reg: reg}
}

// Measure lays out spec and returns the size Rasterize would produce.
func (r *Rasterizer) Measure(spec Spec) (width, height int, err error) {
	_, b, err := r.layout(spec)
	if err != nil {
		return 0, 0, err
	}
	w, h := b.bounds()
	return w, h, nil
}

// Rasterize renders spec into a new pool-backed 4-channel 8-bit image.
//
// The image is as wide as the widest line and as tall as all lines. Lines are
// aligned within that width; callers place the block on their canvas.
func (r *Rasterizer) Rasterize(p *image.Pool, spec Spec) (*image.Image, error) {
	s, b, err := r.layout(spec)
	if err != nil {
		return nil, err
	}
	w, h := b.bounds()

	out, err := p.Get(w, h, 4, image.FormatUchar)
	if err != nil {
		return nil, err
	}
	dst, err := out.NRGBA()
	if err != nil {
		out.Release()
		return nil, err
	}
	if spec.Background != nil {
		draw.Draw(dst, dst.Bounds(), stdimage.NewUniform(spec.Background), stdimage.Point{}, draw.Src)
	}

	mask := s.mask(b, w, h)
	fg := spec.Foreground
	if fg == nil {
		fg = color.Black
	}
	draw.DrawMask(dst, dst.Bounds(), stdimage.NewUniform(fg), stdimage.Point{}, mask, stdimage.Point{}, draw.Over)
	return out, nil
}

func (spec *Spec) size() float64 {
	if spec.Font.Size > 0 {
		return spec.Font.Size
	}
	return DefaultSize
}

// layout validates spec, resolves its fonts and lays the text out, auto-fitting
// the size when asked to.
func (r *Rasterizer) layout(spec Spec) (*shaper, *block, error) {
	spec.Text = norm.NFC.String(spec.Text)
	if strings.TrimSpace(spec.Text) == "" {
		return nil, nil, ErrEmptyText
	}
	if spec.Font.Size < 0 || spec.Width < 0 || spec.Height < 0 || spec.LineSpacing < 0 {
		return nil, nil, fmt.Errorf("%w: size %g, box %dx%d, spacing %g",
			ErrInvalidSize, spec.Font.Size, spec.Width, spec.Height, spec.LineSpacing)
	}
	fonts, err := r.reg.Resolve(spec.Font.Families)
	if err != nil {
		return nil, nil, err
	}

	s := newShaper(fonts)
	opts := layoutOptions{
		size:        spec.size(),
		maxWidth:    float64(spec.Width),
		wrap:        spec.Wrap,
		align:       spec.Align,
		lineSpacing: spec.LineSpacing,
	}
	if spec.Font.Size == 0 && spec.Height > 0 {
		return s.fit(spec.Text, opts, spec.Width, spec.Height)
	}
	b, err := s.layoutText(spec.Text, opts)
	return s, b, err
}

// fit finds the largest integer size whose layout fits a w×h box. Size 1 is
// used when nothing fits.
func (s *shaper) fit(text string, opts layoutOptions, w, h int) (*shaper, *block, error) {
	opts.size = 1
	best, err := s.layoutText(text, opts)
	if err != nil {
		return nil, nil, err
	}
	lo, hi := 2, h
	for lo <= hi {
		mid := lo + (hi-lo)/2
		opts.size = float64(mid)
		b, err := s.layoutText(text, opts)
		if err != nil {
			return nil, nil, err
		}
		if b.fits(w, h) {
			best, lo = b, mid+1
		} else {
			hi = mid - 1
		}
	}
	return s, best, nil
}

// bounds returns the pixel size of the block, at least 1×1.
func (b *block) bounds() (int, int) {
	w := max(int(math.Ceil(b.width)), 1)
	h := max(int(math.Ceil(b.height())), 1)
	return w, h
}

// mask rasterizes every glyph outline of b into one coverage mask.
func (s *shaper) mask(b *block, w, h int) *stdimage.Alpha {
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	ppem := toFixed(b.size)

	for i, l := range b.lines {
		baseline := b.ascent + float64(i)*b.lineHeight
		for _, g := range l.glyphs {
			segs, err := g.font.outline.LoadGlyph(&s.buf, g.id, ppem, nil)
			if err != nil {
				// Bitmap-only glyphs have no outline.
				continue
			}
			addSegments(z, segs, l.x+g.x, baseline+g.y)
		}
	}

	mask := stdimage.NewAlpha(stdimage.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), stdimage.Opaque, stdimage.Point{})
	return mask
}

// addSegments appends one glyph's contours to z at origin (ox, oy).
func addSegments(z *vector.Rasterizer, segs sfnt.Segments, ox, oy float64) {
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(ox + fromFixed(p.X)), float32(oy + fromFixed(p.Y))
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			x, y := pt(seg.Args[0])
			z.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			z.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		z.ClosePath()
	}
}
