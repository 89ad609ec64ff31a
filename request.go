package overlay

import (
	"time"

	"github.com/gogpu/overlay/internal/image"
)

// request is the scope of one operation. Every intermediate image comes from
// its pool and is released before the request ends.
type request struct {
	op    string
	eng   *engine
	pool  *image.Pool
	start time.Time
}

// begin starts a request. It fails when the engine is not initialized.
func begin(op string) (*request, error) {
	e, err := loadEngine(op)
	if err != nil {
		return nil, err
	}
	p := image.NewPool(0)
	p.SetLimit(e.cfg.maxPixels)
	return &request{op: op, eng: e, pool: p, start: time.Now()}, nil
}

// end checks that no intermediate image outlived the request.
func (r *request) end() {
	if live := r.pool.Live(); live > 0 {
		Logger().Warn("overlay: residual images at request end", "op", r.op, "live", live)
	}
	Logger().Debug("overlay: request done", "op", r.op, "elapsed", time.Since(r.start))
}

// fail wraps err with the request's op and the failing stage.
func (r *request) fail(stage Kind, err error) error {
	return wrapError(r.op, stage, err)
}

// raw wraps a caller buffer as an 8-bit image, enforcing the pixel limit.
func (r *request) raw(data []byte, width, height, channels int) (*image.Image, error) {
	if limit := r.eng.cfg.maxPixels; limit > 0 && width*height > limit {
		return nil, r.fail(KindDecode, image.ErrTooLarge)
	}
	m, err := image.FromRaw(data, width, height, channels, image.FormatUchar)
	if err != nil {
		return nil, r.fail(KindDecode, err)
	}
	return m, nil
}
