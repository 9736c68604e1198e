package search

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dshills/unisearch/internal/icu/binding"
)

// Native enumeration values, fixed by the library's C API.
const (
	ubrkWord      int32 = 1  // UBRK_WORD
	ucolSecondary int32 = 1  // UCOL_SECONDARY: letter case not significant
	usearchDone   int32 = -1 // USEARCH_DONE
)

// u16ptr returns a pointer to the first code unit, nil for empty input.
func u16ptr(s []uint16) *uint16 {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

// nativeFind runs the locale-aware string search. All native objects are
// created and closed within the call, so concurrent Finds never share
// mutable native state.
func (e *Engine) nativeFind(haystack, needle string, opts Options) (Match, bool, error) {
	t := e.table
	hay := utf16.Encode([]rune(haystack))
	pat := utf16.Encode([]rune(needle))
	locale := opts.locale()

	var status int32
	var brk uintptr
	if opts.WholeWord {
		brk = t.BreakOpen(ubrkWord, locale, u16ptr(hay), int32(len(hay)), &status)
		if binding.Failed(status) {
			return Match{}, false, t.CallErr("find", status)
		}
		defer t.BreakClose(brk)
	}

	// The search owns the break iterator only for the duration of the
	// call; a zero iterator means unrestricted matching.
	s := t.SearchOpen(u16ptr(pat), int32(len(pat)), u16ptr(hay), int32(len(hay)), locale, brk, &status)
	if binding.Failed(status) {
		return Match{}, false, t.CallErr("find", status)
	}
	defer t.SearchClose(s)

	if opts.IgnoreCase {
		// Secondary strength makes case differences insignificant under
		// the search's own collator. Safe to adjust before the first
		// iteration; the table is not touched.
		t.CollatorSetStrength(t.SearchGetCollator(s), ucolSecondary)
	}

	pos := t.SearchFirst(s, &status)
	if binding.Failed(status) {
		return Match{}, false, t.CallErr("find", status)
	}
	if pos == usearchDone {
		return Match{}, false, nil
	}

	matched := int(t.SearchMatchedLength(s))
	start := byteOffset(haystack, int(pos))
	end := byteOffset(haystack, int(pos)+matched)
	return Match{Start: start, End: end}, true, nil
}

// nativeCompare collates under a per-call collator.
func (e *Engine) nativeCompare(a, b string, opts Options) (int, error) {
	t := e.table

	var status int32
	col := t.CollatorOpen(opts.locale(), &status)
	if binding.Failed(status) {
		return 0, t.CallErr("compare", status)
	}
	defer t.CollatorClose(col)

	if opts.IgnoreCase {
		t.CollatorSetStrength(col, ucolSecondary)
	}

	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))
	res := t.CollatorCompare(col, u16ptr(a16), int32(len(a16)), u16ptr(b16), int32(len(b16)))

	// UCollationResult is already -1/0/1.
	return int(res), nil
}

// byteOffset converts a UTF-16 code-unit index into a byte offset of s.
func byteOffset(s string, units int) int {
	off := 0
	for off < len(s) && units > 0 {
		r, size := utf8.DecodeRuneInString(s[off:])
		if r >= 0x10000 {
			units -= 2 // surrogate pair
		} else {
			units -= 1
		}
		off += size
	}
	return off
}
