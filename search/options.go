package search

import "golang.org/x/text/language"

// Options selects how Find and Compare treat text. The zero value means
// case-sensitive, any-position, non-collated.
type Options struct {
	// IgnoreCase matches and compares without regard to letter case.
	// Find on the native backend and Collated compares fold per the
	// locale; everywhere else folding is ASCII-only, since non-collated
	// compares are code-point level on both backends.
	IgnoreCase bool

	// WholeWord restricts Find to matches aligned on word boundaries.
	WholeWord bool

	// Collated orders Compare by locale-aware collation. Only the native
	// backend honors it; the fallback rejects it with
	// ErrCollationUnsupported.
	Collated bool

	// Locale selects the locale for collation and word breaking.
	// The zero tag selects the locale-neutral root rules.
	Locale language.Tag
}

// locale renders the tag for the native library. The empty string selects
// the root rules; the host's default locale would need a NULL argument,
// which a Go string cannot express across the call boundary.
func (o Options) locale() string {
	if o.Locale == language.Und {
		return ""
	}
	return o.Locale.String()
}

// Option identifies one capability of the option set, for querying what
// the active backend honors.
type Option int

const (
	// OptionIgnoreCase is case-insensitive matching.
	OptionIgnoreCase Option = iota
	// OptionWholeWord is whole-word (segment-aligned) matching.
	OptionWholeWord
	// OptionCollation is locale-aware collation ordering.
	OptionCollation
)

// String returns a short name for the option.
func (o Option) String() string {
	switch o {
	case OptionIgnoreCase:
		return "ignore-case"
	case OptionWholeWord:
		return "whole-word"
	case OptionCollation:
		return "collation"
	default:
		return "unknown"
	}
}

// Match is a located occurrence, as byte offsets into the haystack:
// haystack[Start:End] is the matched text. With the native backend the
// matched span can differ in length from the needle (canonical
// equivalence), so both offsets matter.
type Match struct {
	Start int
	End   int
}
