package overlay

import (
	"errors"
	"fmt"

	"github.com/gogpu/overlay/internal/filter"
	"github.com/gogpu/overlay/internal/text"
)

// Kind classifies an Error by the pipeline stage that failed.
type Kind uint8

const (
	// KindDecode: input bytes could not be decoded, or a raw buffer does not
	// match its dimensions.
	KindDecode Kind = iota + 1
	// KindRaster: text could not be rasterized.
	KindRaster
	// KindGeometry: a canvas could not be derived or extended.
	KindGeometry
	// KindFilter: a convolution or edge stage failed.
	KindFilter
	// KindComposite: layers could not be composited.
	KindComposite
	// KindEncode: an image could not be serialized.
	KindEncode
	// KindInit: the engine is not initialized or failed to initialize.
	KindInit
	// KindParameter: the request itself is invalid.
	KindParameter
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindRaster:
		return "raster"
	case KindGeometry:
		return "geometry"
	case KindFilter:
		return "filter"
	case KindComposite:
		return "composite"
	case KindEncode:
		return "encode"
	case KindInit:
		return "init"
	case KindParameter:
		return "parameter"
	default:
		return "unknown"
	}
}

// Sentinel errors for the root package.
var (
	// ErrNotInitialized is returned by every operation called before Init.
	ErrNotInitialized = errors.New("overlay: not initialized")

	// ErrInvalidParameter is returned for malformed request parameters.
	ErrInvalidParameter = errors.New("overlay: invalid parameter")

	// ErrNoBoundary is returned by Uncaption when no caption edge is found.
	ErrNoBoundary = errors.New("overlay: no caption boundary found")
)

// Error is the error type returned by all overlay operations.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("overlay: %s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// wrapError attaches op and a kind to err. The kind is the failing stage,
// unless err is a request-level failure that is classified the same way
// wherever it surfaces. Errors that are already *Error pass through.
func wrapError(op string, stage Kind, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: classify(err, stage), Op: op, Err: err}
}

func classify(err error, stage Kind) Kind {
	switch {
	case errors.Is(err, ErrNotInitialized):
		return KindInit
	case errors.Is(err, ErrInvalidParameter),
		errors.Is(err, ErrNoBoundary),
		errors.Is(err, text.ErrEmptyText),
		errors.Is(err, text.ErrInvalidSize),
		errors.Is(err, filter.ErrThreshold):
		return KindParameter
	}
	return stage
}
