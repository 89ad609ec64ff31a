// Package overlay renders typographic overlays onto raster canvases and runs
// edge detection filters.
//
// # Overview
//
// Every operation is a recipe over a small image pipeline: canvas geometry
// derived from text metrics, text rasterization, Gaussian halos, canvas
// extension and Porter-Duff layer compositing. Results come back as raw
// RGBA buffers ready for a downstream encoder.
//
// # Quick Start
//
//	import "github.com/gogpu/overlay"
//
//	// One-time setup: registers fonts and freezes configuration.
//	if err := overlay.Init(); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Meme text for a 900x300 frame, white with a black halo.
//	buf, err := overlay.MemeText(900, 300, "WHEN THE BUILD IS GREEN")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer buf.Release()
//
//	png, err := buf.Encode(".png")
//
// # Recipes
//
//   - CaptionHeader: black text on a white header band
//   - MemeText: auto-fitted white text with a soft black halo
//   - MotivateText, MotivateBlank: text on a black motivational box
//   - LocketText: black text centred on a white locket canvas
//   - Gravity, Transcode, Uncaption: whole-image helpers
//   - Sobel, Canny, FindCaptionBoundary: edge filters over raw buffers
//
// # Errors
//
// Failures are returned as *Error values carrying a Kind, so callers can
// tell bad input (KindDecode, KindParameter) from pipeline faults. Use
// IsKind or errors.As.
//
// # Concurrency
//
// Init must complete before any recipe runs; recipes never initialize
// lazily. After Init the engine is read-only and recipes may run
// concurrently, each on its own request-scoped image pool.
package overlay

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
