package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFont is returned when none of the requested families is registered.
	ErrNoFont = errors.New("text: no usable font")

	// ErrEmptyText is returned when there is nothing to rasterize.
	ErrEmptyText = errors.New("text: empty text")

	// ErrInvalidSize is returned for negative sizes or box constraints.
	ErrInvalidSize = errors.New("text: invalid size")
)
