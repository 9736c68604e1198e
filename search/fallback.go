package search

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// The built-in backend: code-point search and comparison with ASCII-only
// case folding. It answers correctly within that reduced feature set and
// is always available.

// fallbackFind scans haystack at rune granularity. ASCII folding preserves
// byte length, so a match always spans exactly len(needle) bytes.
func fallbackFind(haystack, needle string, opts Options) (Match, bool, error) {
	for i := 0; i+len(needle) <= len(haystack); {
		if matchesAt(haystack, i, needle, opts.IgnoreCase) {
			end := i + len(needle)
			if !opts.WholeWord || wordBounded(haystack, i, end) {
				return Match{Start: i, End: end}, true, nil
			}
		}
		_, size := utf8.DecodeRuneInString(haystack[i:])
		i += size
	}
	return Match{}, false, nil
}

// matchesAt reports whether needle occurs at byte offset i of haystack.
func matchesAt(haystack string, i int, needle string, ignoreCase bool) bool {
	for j := 0; j < len(needle); j++ {
		a := haystack[i+j]
		b := needle[j]
		if a != b && (!ignoreCase || foldASCII(a) != foldASCII(b)) {
			return false
		}
	}
	return true
}

// foldASCII lowercases one ASCII byte; everything else passes through.
func foldASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// wordBounded reports whether both start and end fall on Unicode word
// boundaries of s.
func wordBounded(s string, start, end int) bool {
	startOK := start == 0
	endOK := end == len(s)

	state := -1
	off := 0
	rest := s
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		off += len(word)
		if off == start {
			startOK = true
		}
		if off == end {
			endOK = true
		}
		if off > start && off > end {
			break
		}
	}
	return startOK && endOK
}

// codepointCompare orders two strings by code point, optionally folding
// ASCII case. Shared by the fallback and by non-collated native compares.
func codepointCompare(a, b string, ignoreCase bool) int {
	for len(a) > 0 && len(b) > 0 {
		ra, sa := utf8.DecodeRuneInString(a)
		rb, sb := utf8.DecodeRuneInString(b)
		if ignoreCase {
			ra = foldASCIIRune(ra)
			rb = foldASCIIRune(rb)
		}
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
		a, b = a[sa:], b[sb:]
	}
	switch {
	case len(a) > 0:
		return 1
	case len(b) > 0:
		return -1
	}
	return 0
}

// foldASCIIRune lowercases A-Z only.
func foldASCIIRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
