// Package binding resolves the full set of native entry points the search
// facade needs and exposes them as strongly-typed callables.
//
// Construction is all-or-nothing: if any required entry point cannot be
// resolved under the configured naming convention and effective version,
// the whole table is discarded, the module handles are closed, and the
// caller falls back to the built-in backend. A partially-bound table is
// never observable.
package binding

import (
	"errors"
	"fmt"

	"github.com/ebitengine/purego"

	"github.com/dshills/unisearch/internal/icu/symbol"
	"github.com/dshills/unisearch/internal/logging"
)

// Module is a loaded native library as the binder sees it. It is the
// surface of loader.(*Handle); tests substitute fakes.
type Module interface {
	Name() string
	Lookup(symbol string) (uintptr, error)
	Close() error
}

// ErrIncomplete reports that some required entry point did not resolve.
// It always means fallback, never a user-visible failure.
var ErrIncomplete = errors.New("binding: incomplete symbol table")

// Table is the immutable set of resolved entry points. It owns the module
// handles it was built from; Close releases them exactly once.
//
// The function fields follow the native C signatures. Strings cross the
// boundary as NUL-terminated char*; text buffers are UTF-16 with explicit
// lengths; status is the native error code, >0 meaning failure.
type Table struct {
	common, i18n Module
	version      int

	ErrorName           func(code int32) string
	CollatorOpen        func(locale string, status *int32) uintptr
	CollatorClose       func(col uintptr)
	CollatorSetStrength func(col uintptr, strength int32)
	CollatorCompare     func(col uintptr, a *uint16, alen int32, b *uint16, blen int32) int32
	BreakOpen           func(kind int32, locale string, text *uint16, textLen int32, status *int32) uintptr
	BreakClose          func(it uintptr)
	SearchOpen          func(pattern *uint16, patLen int32, text *uint16, textLen int32, locale string, breakIter uintptr, status *int32) uintptr
	SearchClose         func(s uintptr)
	SearchFirst         func(s uintptr, status *int32) int32
	SearchMatchedLength func(s uintptr) int32
	SearchGetCollator   func(s uintptr) uintptr
}

// Version returns the effective version suffix the table was bound under,
// 0 when the exports were unversioned.
func (t *Table) Version() int { return t.version }

// Close releases both module handles. The loader's Handle guards against
// double release, so Close is safe from whichever teardown path runs it.
func (t *Table) Close() error {
	err := t.common.Close()
	if e := t.i18n.Close(); err == nil {
		err = e
	}
	return err
}

// New resolves every required entry point against the common and i18n
// modules and returns the completed table, taking ownership of both
// handles. On any resolution failure the handles are closed and
// ErrIncomplete is returned; the caller's only move is fallback.
//
// The effective version is established once, against the baseline symbol
// on the common module: an explicit version is used as-is; otherwise the
// unversioned spelling is probed first and the bounded auto-detect runs
// only if that probe fails and autoDetect is set. The i18n module is
// assumed to carry the same version as the common one — they ship as a
// set, and a mismatch simply fails the table into fallback.
func New(common, i18n Module, prefixed bool, version int, autoDetect bool, log *logging.Logger) (*Table, error) {
	if log == nil {
		log = logging.Nop
	}
	log = log.WithComponent("icu.binding")

	effective, err := effectiveVersion(common, prefixed, version, autoDetect, log)
	if err != nil {
		discard(common, i18n)
		return nil, err
	}

	t := &Table{common: common, i18n: i18n, version: effective}
	if err := t.resolveAll(prefixed, effective, log); err != nil {
		discard(common, i18n)
		return nil, err
	}

	log.Debug("bound %d entry points (version %d) from %s + %s",
		len(symbol.All), effective, common.Name(), i18n.Name())
	return t, nil
}

// effectiveVersion pins the version suffix used for every lookup.
func effectiveVersion(common Module, prefixed bool, version int, autoDetect bool, log *logging.Logger) (int, error) {
	if version != 0 {
		return version, nil
	}

	baseline := symbol.Spell(symbol.ErrorName, prefixed, 0)
	if _, err := common.Lookup(baseline); err == nil {
		return 0, nil
	}

	if !autoDetect {
		return 0, fmt.Errorf("%w: baseline %s missing and auto-detect disabled", ErrIncomplete, baseline)
	}

	var det symbol.Detected
	v, ok := det.Detect(common.Lookup, prefixed, log)
	if !ok {
		return 0, fmt.Errorf("%w: baseline %s missing at any probed version", ErrIncomplete, baseline)
	}
	return v, nil
}

// resolveAll binds every logical name or fails wholesale.
func (t *Table) resolveAll(prefixed bool, version int, log *logging.Logger) error {
	targets := map[symbol.Name]any{
		symbol.ErrorName:           &t.ErrorName,
		symbol.CollatorOpen:        &t.CollatorOpen,
		symbol.CollatorClose:       &t.CollatorClose,
		symbol.CollatorSetStrength: &t.CollatorSetStrength,
		symbol.CollatorCompare:     &t.CollatorCompare,
		symbol.BreakOpen:           &t.BreakOpen,
		symbol.BreakClose:          &t.BreakClose,
		symbol.SearchOpen:          &t.SearchOpen,
		symbol.SearchClose:         &t.SearchClose,
		symbol.SearchFirst:         &t.SearchFirst,
		symbol.SearchMatchedLength: &t.SearchMatchedLength,
		symbol.SearchGetCollator:   &t.SearchGetCollator,
	}

	for _, n := range symbol.All {
		mod := t.common
		if n.Lib() == symbol.I18n {
			mod = t.i18n
		}

		addr, spelling, err := resolve(mod, n, prefixed, version)
		if err != nil {
			log.Debug("%s: %v", mod.Name(), err)
			return err
		}
		if err := register(targets[n], addr); err != nil {
			return fmt.Errorf("%w: %s (%s): %v", ErrIncomplete, n, spelling, err)
		}
	}
	return nil
}

// resolve probes a logical name's candidate spellings in order.
func resolve(mod Module, n symbol.Name, prefixed bool, version int) (uintptr, string, error) {
	var lastErr error
	for _, spelling := range symbol.Candidates(n, prefixed, version) {
		addr, err := mod.Lookup(spelling)
		if err == nil {
			return addr, spelling, nil
		}
		lastErr = err
	}
	return 0, "", fmt.Errorf("%w: %s at version %d: %v", ErrIncomplete, n, version, lastErr)
}

// register binds a resolved address to a typed function pointer.
// purego panics on signature problems; that becomes an ordinary error
// so a bad host library demotes to fallback instead of crashing.
func register(fptr any, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("register: %v", r)
		}
	}()
	purego.RegisterFunc(fptr, addr)
	return nil
}

// discard closes both handles after a failed construction.
func discard(common, i18n Module) {
	_ = common.Close()
	_ = i18n.Close()
}
