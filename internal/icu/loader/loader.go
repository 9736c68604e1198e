// Package loader locates and loads the optional native Unicode libraries.
//
// Loading is best-effort by design: candidates are tried once each, in
// order, and exhausting the list is a normal outcome that leaves the
// library unavailable. Nothing here is an error the editor's user should
// ever see.
package loader

import (
	"strings"
	"sync"

	"github.com/dshills/unisearch/internal/logging"
)

// Handle is an owned reference to a loaded dynamic module. Ownership moves
// from the locator through the binding table into the facade; Close is safe
// to call exactly once from wherever the handle ends up.
type Handle struct {
	name string
	h    uintptr

	closeOnce sync.Once
	closeErr  error
}

// Name returns the identifier the module was loaded under.
func (h *Handle) Name() string { return h.name }

// Lookup resolves an exported symbol to its address. A missing symbol is
// reported through the error; the handle stays valid.
func (h *Handle) Lookup(symbol string) (uintptr, error) {
	return dlsym(h.h, symbol)
}

// Close releases the module. Repeated calls are no-ops returning the first
// result, so the single-release invariant holds no matter which owner's
// teardown runs it.
func (h *Handle) Close() error {
	h.closeOnce.Do(func() {
		h.closeErr = dlclose(h.h)
	})
	return h.closeErr
}

// Locator loads libraries at most once per candidate list per process and
// caches the outcome, handle or unavailable.
type Locator struct {
	mu    sync.Mutex
	cache map[string]*Handle // key: joined candidate list; nil value: unavailable
	log   *logging.Logger
}

// NewLocator creates a locator logging through log.
func NewLocator(log *logging.Logger) *Locator {
	if log == nil {
		log = logging.Nop
	}
	return &Locator{
		cache: make(map[string]*Handle),
		log:   log.WithComponent("icu.loader"),
	}
}

// Open tries the candidates in order and returns the first module that
// loads. The second return is false when the list is exhausted; that marks
// the library unavailable for the rest of the process — the outcome, either
// way, is cached and no candidate is ever retried.
func (l *Locator) Open(candidates []string) (*Handle, bool) {
	key := strings.Join(candidates, "\x00")

	l.mu.Lock()
	defer l.mu.Unlock()

	if h, ok := l.cache[key]; ok {
		return h, h != nil
	}

	for _, name := range candidates {
		raw, err := dlopen(name)
		if err != nil {
			l.log.Debug("candidate %s: %v", name, err)
			continue
		}
		h := &Handle{name: name, h: raw}
		l.cache[key] = h
		l.log.Debug("loaded %s", name)
		return h, true
	}

	l.cache[key] = nil
	l.log.Debug("no candidate loaded from %d tried; library unavailable", len(candidates))
	return nil, false
}
