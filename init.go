package overlay

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/overlay/internal/text"
)

// engine is the process-wide state built by Init. It is read-only afterwards.
type engine struct {
	cfg    config
	fonts  *text.Registry
	raster *text.Rasterizer
}

var (
	initMu  sync.Mutex
	current atomic.Pointer[engine]
)

// Init performs the one-time setup: it registers the built-in Go fonts and
// any fonts passed with WithFont, and freezes the configuration.
//
// Init is idempotent. Once it has succeeded, later calls return nil and
// ignore their options. A failed Init leaves the engine uninitialized, so it
// may be retried.
func Init(opts ...Option) error {
	initMu.Lock()
	defer initMu.Unlock()

	if current.Load() != nil {
		if len(opts) > 0 {
			Logger().Debug("overlay: already initialized, options ignored", "options", len(opts))
		}
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxPixels < 0 {
		return wrapError("init", KindInit, fmt.Errorf("%w: max pixels %d", ErrInvalidParameter, cfg.maxPixels))
	}

	reg := text.NewRegistry()
	if err := reg.RegisterGoFonts(); err != nil {
		return &Error{Kind: KindInit, Op: "init", Err: err}
	}
	for _, f := range cfg.fonts {
		if err := reg.Register(f.family, f.data); err != nil {
			return &Error{Kind: KindInit, Op: "init", Err: err}
		}
	}

	current.Store(&engine{
		cfg:    cfg,
		fonts:  reg,
		raster: text.NewRasterizer(reg),
	})
	Logger().Info("overlay: initialized",
		"families", reg.Families(),
		"maxPixels", cfg.maxPixels)
	return nil
}

// Initialized reports whether Init has completed.
func Initialized() bool {
	return current.Load() != nil
}

// Families returns the registered font family names, or nil before Init.
func Families() []string {
	e := current.Load()
	if e == nil {
		return nil
	}
	return e.fonts.Families()
}

// loadEngine returns the engine or a KindInit error. It never initializes.
func loadEngine(op string) (*engine, error) {
	e := current.Load()
	if e == nil {
		return nil, &Error{Kind: KindInit, Op: op, Err: ErrNotInitialized}
	}
	return e, nil
}
