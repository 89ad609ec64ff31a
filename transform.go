package overlay

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/overlay/internal/geometry"
	"github.com/gogpu/overlay/internal/image"
)

// Gravity decodes an encoded image and centres it on a white canvas of
// width × height. The canvas never shrinks below the image. The result is
// raw RGBA.
func Gravity(data []byte, width, height int) (*Buffer, error) {
	r, err := begin("gravity")
	if err != nil {
		return nil, err
	}
	defer r.end()

	src, err := image.Decode(r.pool, data)
	if err != nil {
		return nil, r.fail(KindDecode, err)
	}
	defer src.Release()

	out, err := geometry.Extend(r.pool, src, geometry.Spec{
		Width:   geometry.AtLeast(width, src.Width()),
		Height:  geometry.AtLeast(height, src.Height()),
		Gravity: geometry.Centre,
		Fill:    geometry.FillWhite,
	})
	if err != nil {
		return nil, r.fail(KindGeometry, err)
	}
	return newBuffer(out), nil
}

// Transcode decodes an encoded image and re-encodes it to the format named
// by extension (".png", "jpg", "gif", "bmp", "tiff").
func Transcode(data []byte, format string) ([]byte, error) {
	r, err := begin("transcode")
	if err != nil {
		return nil, err
	}
	defer r.end()

	out, err := image.Transcode(r.pool, data, format)
	if err != nil {
		stage := KindEncode
		if errors.Is(err, image.ErrDecode) {
			stage = KindDecode
		}
		return nil, r.fail(stage, err)
	}
	return out, nil
}

// Uncaption decodes an encoded image and removes the caption band at its
// top. amount is a row count ("40") or a share of the height ("20%"); when
// empty the band is found with FindCaptionBoundary's edge probe.
func Uncaption(data []byte, amount string) (*Buffer, error) {
	r, err := begin("uncaption")
	if err != nil {
		return nil, err
	}
	defer r.end()

	src, err := image.Decode(r.pool, data)
	if err != nil {
		return nil, r.fail(KindDecode, err)
	}
	defer src.Release()

	var rows int
	if amount != "" {
		if rows, err = ParseCaptionAmount(src.Height(), amount); err != nil {
			return nil, err
		}
	} else {
		if rows, err = r.boundary(src); err != nil {
			return nil, err
		}
		if err := checkCaptionRows(rows, src.Height()); err != nil {
			return nil, r.fail(KindParameter, err)
		}
	}

	out, err := image.Crop(r.pool, src, 0, rows, src.Width(), src.Height()-rows)
	if err != nil {
		return nil, r.fail(KindGeometry, err)
	}
	Logger().Debug("overlay: uncaption", "rows", rows, "height", src.Height())
	return newBuffer(out), nil
}

// ParseCaptionAmount converts a caption amount into a row count for an image
// of the given height. amount is either a row count ("40"), clamped to the
// height, or a percentage of the height ("20%"). The result must remove at
// least one row and leave at least one.
//
// ParseCaptionAmount does not need Init.
func ParseCaptionAmount(height int, amount string) (int, error) {
	const op = "parse-caption-amount"
	amount = strings.TrimSpace(amount)

	var rows int
	if pct, ok := strings.CutSuffix(amount, "%"); ok {
		n, err := strconv.ParseFloat(pct, 64)
		if err != nil || n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, wrapError(op, KindParameter, fmt.Errorf("%w: amount %q is not a percentage", ErrInvalidParameter, amount))
		}
		rows = int(float64(height) * n / 100)
	} else {
		n, err := strconv.Atoi(amount)
		if err != nil || n < 0 {
			return 0, wrapError(op, KindParameter, fmt.Errorf("%w: amount %q is not a row count or percentage", ErrInvalidParameter, amount))
		}
		rows = min(n, height)
	}

	if err := checkCaptionRows(rows, height); err != nil {
		return 0, wrapError(op, KindParameter, err)
	}
	return rows, nil
}

func checkCaptionRows(rows, height int) error {
	switch {
	case rows <= 0:
		return ErrNoBoundary
	case rows >= height:
		return fmt.Errorf("%w: cannot remove %d of %d rows", ErrInvalidParameter, rows, height)
	}
	return nil
}
