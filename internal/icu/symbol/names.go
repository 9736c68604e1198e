// Package symbol maps the layer's logical function names to the exported
// spellings a given native build uses, and auto-detects an unknown
// version-suffix scheme by bounded probing.
package symbol

import "strconv"

// Name identifies one logical entry point the layer needs, independent of
// how any particular build spells its export.
type Name int

const (
	// ErrorName renders a native status code as a readable name. It is
	// also the baseline symbol for version auto-detection: present in
	// every supported build of the common library.
	ErrorName Name = iota
	// CollatorOpen creates a locale-aware collator.
	CollatorOpen
	// CollatorClose releases a collator.
	CollatorClose
	// CollatorSetStrength adjusts comparison strength (case sensitivity).
	CollatorSetStrength
	// CollatorCompare compares two UTF-16 strings under a collator.
	CollatorCompare
	// BreakOpen creates a text boundary iterator.
	BreakOpen
	// BreakClose releases a boundary iterator.
	BreakClose
	// SearchOpen creates a locale-aware string search.
	SearchOpen
	// SearchClose releases a string search.
	SearchClose
	// SearchFirst positions the search at the first match.
	SearchFirst
	// SearchMatchedLength reports the matched length at the current position.
	SearchMatchedLength
	// SearchGetCollator exposes the collator owned by a search.
	SearchGetCollator

	nameCount
)

// Library identifies which native module exports a logical name.
type Library int

const (
	// Common is the Unicode-common library (icuuc).
	Common Library = iota
	// I18n is the Unicode-i18n library (icui18n).
	I18n
)

// canonical export spellings, indexed by Name.
var exports = [nameCount]string{
	ErrorName:           "u_errorName",
	CollatorOpen:        "ucol_open",
	CollatorClose:       "ucol_close",
	CollatorSetStrength: "ucol_setStrength",
	CollatorCompare:     "ucol_strcoll",
	BreakOpen:           "ubrk_open",
	BreakClose:          "ubrk_close",
	SearchOpen:          "usearch_open",
	SearchClose:         "usearch_close",
	SearchFirst:         "usearch_first",
	SearchMatchedLength: "usearch_getMatchedLength",
	SearchGetCollator:   "usearch_getCollator",
}

// libraries maps each Name to the module that exports it.
var libraries = [nameCount]Library{
	ErrorName:           Common,
	CollatorOpen:        I18n,
	CollatorClose:       I18n,
	CollatorSetStrength: I18n,
	CollatorCompare:     I18n,
	BreakOpen:           Common,
	BreakClose:          Common,
	SearchOpen:          I18n,
	SearchClose:         I18n,
	SearchFirst:         I18n,
	SearchMatchedLength: I18n,
	SearchGetCollator:   I18n,
}

// All lists every logical name the binding table must resolve.
var All = func() []Name {
	names := make([]Name, nameCount)
	for i := range names {
		names[i] = Name(i)
	}
	return names
}()

// Export returns the canonical, unprefixed, unversioned spelling.
func (n Name) Export() string { return exports[n] }

// Lib returns the module expected to export n.
func (n Name) Lib() Library { return libraries[n] }

// String returns the canonical spelling, for logs and errors.
func (n Name) String() string { return exports[n] }

// exportPrefix is prepended under the mangled-with-prefix convention.
const exportPrefix = "_"

// Candidates returns the exported spellings to probe for n under the given
// convention, in probe order. The version suffix attaches to the unprefixed
// base; the prefix then applies to the whole spelling, so the two rules
// combine independently: u_errorName, _u_errorName, u_errorName_76,
// _u_errorName_76. A version of 0 means unversioned.
func Candidates(n Name, prefixed bool, version int) []string {
	return []string{Spell(n, prefixed, version)}
}

// Spell builds one concrete exported spelling.
func Spell(n Name, prefixed bool, version int) string {
	s := exports[n]
	if version > 0 {
		s += "_" + strconv.Itoa(version)
	}
	if prefixed {
		s = exportPrefix + s
	}
	return s
}
