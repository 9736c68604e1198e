package search

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/dshills/unisearch/internal/icu/binding"
	"github.com/dshills/unisearch/internal/icu/config"
	"github.com/dshills/unisearch/internal/icu/loader"
	"github.com/dshills/unisearch/internal/logging"
)

// ErrCollationUnsupported is returned by Compare when the Collated option
// is requested and the active backend cannot honor it.
var ErrCollationUnsupported = errors.New("search: locale collation not supported by active backend")

// Engine answers Find and Compare through whichever backend construction
// established. It is immutable after New returns and safe for concurrent
// use; see the package documentation for the Close contract.
type Engine struct {
	// table is the bound native entry points; nil selects the fallback.
	// These are the only two states an Engine can be in.
	table *binding.Table
	log   *logging.Logger
}

// New builds an engine from an already-resolved configuration. It never
// fails: any trouble locating or binding the native library selects the
// fallback backend. Construction must not run concurrently with itself;
// Default provides the once-gated path.
func New(cfg *config.Config, log *logging.Logger) *Engine {
	if log == nil {
		log = logging.Nop
	}
	e := &Engine{log: log.WithComponent("search")}

	loc := loader.NewLocator(log)
	common, ok := loc.Open(cfg.Common.Candidates())
	if !ok {
		e.log.Debug("common library unavailable; using fallback backend")
		return e
	}
	i18n, ok := loc.Open(cfg.I18n.Candidates())
	if !ok {
		_ = common.Close()
		e.log.Debug("i18n library unavailable; using fallback backend")
		return e
	}

	table, err := binding.New(common, i18n, cfg.PrefixedExports, cfg.Version, cfg.AutoDetect, log)
	if err != nil {
		e.log.Debug("binding failed (%v); using fallback backend", err)
		return e
	}

	e.table = table
	e.log.Info("native backend: %s + %s (version %d)", common.Name(), i18n.Name(), table.Version())
	return e
}

var (
	defaultEngine *Engine
	defaultErr    error
	defaultOnce   sync.Once
)

// Default returns the process-wide engine, constructing it on first call.
// Concurrent first use runs exactly one initialization; every caller
// observes the same completed engine. The only possible error is a
// malformed configuration override, which is startup-fatal by design.
func Default() (*Engine, error) {
	defaultOnce.Do(func() {
		cfg, err := config.Resolve(configPath())
		if err != nil {
			defaultErr = err
			return
		}
		defaultEngine = New(cfg, logging.Default())
	})
	return defaultEngine, defaultErr
}

// configPath locates the editor's config file: UNISEARCH_CONFIG when set,
// else the conventional per-user location. Empty (no file) is fine.
func configPath() string {
	if p := os.Getenv("UNISEARCH_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "unisearch", "config.toml")
}

// Native reports whether the native backend is active.
func (e *Engine) Native() bool { return e.table != nil }

// Version returns the native library's effective version suffix, 0 when
// the exports are unversioned or the fallback is active.
func (e *Engine) Version() int {
	if e.table == nil {
		return 0
	}
	return e.table.Version()
}

// Supports reports whether the active backend honors the given option.
// The fallback honors everything except collation.
func (e *Engine) Supports(opt Option) bool {
	if e.table != nil {
		return true
	}
	return opt != OptionCollation
}

// Find locates the first occurrence of needle in haystack under opts.
// The second return is false when there is no match; an error reports a
// native call failure for this one operation and leaves the backend valid.
// An empty needle never matches.
func (e *Engine) Find(haystack, needle string, opts Options) (Match, bool, error) {
	if needle == "" || haystack == "" {
		return Match{}, false, nil
	}
	if e.table != nil {
		return e.nativeFind(haystack, needle, opts)
	}
	return fallbackFind(haystack, needle, opts)
}

// Compare orders a against b under opts, returning -1, 0, or 1. Without
// the Collated option both backends compare at code-point level; with it,
// the native backend collates per the locale and the fallback returns
// ErrCollationUnsupported.
func (e *Engine) Compare(a, b string, opts Options) (int, error) {
	if !opts.Collated {
		return codepointCompare(a, b, opts.IgnoreCase), nil
	}
	if e.table != nil {
		return e.nativeCompare(a, b, opts)
	}
	return 0, ErrCollationUnsupported
}

// Close releases the native library, if one was bound. It belongs to
// process teardown; no Find or Compare may follow it. The underlying
// handles guard their own release, so owners along the construction path
// cannot double-free.
func (e *Engine) Close() error {
	if e.table == nil {
		return nil
	}
	return e.table.Close()
}
