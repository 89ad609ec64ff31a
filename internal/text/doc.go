// Package text rasterizes wrapped, aligned text into RGBA images.
//
// The pipeline follows a separation of concerns:
//
//   - Registry: fonts parsed once at startup, read-only afterwards
//   - FontSpec: an ordered family list plus a size, resolved per request
//   - Shaping: HarfBuzz shaping via go-text/typesetting, one run per
//     fallback font
//   - Layout: greedy line breaking under a WrapMode, then Alignment
//   - Rasterize: glyph outlines from golang.org/x/image/font/sfnt filled by
//     golang.org/x/image/vector into a coverage mask
//
// # Example usage
//
//	reg := text.NewRegistry()
//	if err := reg.RegisterGoFonts(); err != nil {
//	    log.Fatal(err)
//	}
//	r := text.NewRasterizer(reg)
//	img, err := r.Rasterize(pool, text.Spec{
//	    Text:  "Hello",
//	    Font:  text.FontSpec{Families: []string{"Go Bold"}, Size: 48},
//	    Width: 400,
//	    Align: text.AlignCenter,
//	})
//
// A Registry is safe for concurrent use once registration has finished. A
// Rasterizer keeps no per-call state.
package text
