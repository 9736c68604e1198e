// Command unisearch is a diagnostic front end for the editor's search
// capability: it reports which backend is active and runs a single find
// or compare from the command line.
//
// Usage:
//
//	unisearch [flags] HAYSTACK NEEDLE
//	unisearch [flags] -compare A B
//	unisearch -backend
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"golang.org/x/text/language"

	"github.com/dshills/unisearch/search"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		compare     = flag.Bool("compare", false, "compare the two arguments instead of searching")
		backendOnly = flag.Bool("backend", false, "print the active backend and exit")
		ignoreCase  = flag.Bool("i", false, "ignore letter case")
		wholeWord   = flag.Bool("w", false, "match whole words only")
		collated    = flag.Bool("c", false, "use locale-aware collation (compare only)")
		locale      = flag.String("locale", "", "locale tag, e.g. de or fr-FR")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("unisearch %s (%s)\n", version, commit)
		return 0
	}

	engine, err := search.Default()
	if err != nil {
		// Only malformed configuration gets here; a missing library is
		// handled by the fallback and never reaches the operator.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer engine.Close()

	if *backendOnly {
		printBackend(engine)
		return 0
	}

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: unisearch [flags] HAYSTACK NEEDLE")
		flag.PrintDefaults()
		return 2
	}

	opts := search.Options{
		IgnoreCase: *ignoreCase,
		WholeWord:  *wholeWord,
		Collated:   *collated,
	}
	if *locale != "" {
		tag, err := language.Parse(*locale)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad locale %q: %v\n", *locale, err)
			return 2
		}
		opts.Locale = tag
	}

	if *compare {
		return runCompare(engine, flag.Arg(0), flag.Arg(1), opts)
	}
	return runFind(engine, flag.Arg(0), flag.Arg(1), opts)
}

func runFind(engine *search.Engine, haystack, needle string, opts search.Options) int {
	m, ok, err := engine.Find(haystack, needle, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if !ok {
		fmt.Println("no match")
		return 1
	}
	fmt.Printf("match at [%d,%d): %q\n", m.Start, m.End, haystack[m.Start:m.End])
	return 0
}

func runCompare(engine *search.Engine, a, b string, opts search.Options) int {
	n, err := engine.Compare(a, b, opts)
	if err != nil {
		if errors.Is(err, search.ErrCollationUnsupported) {
			fmt.Fprintln(os.Stderr, "Error: collation requires the native backend; run with -backend to inspect")
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	switch {
	case n < 0:
		fmt.Printf("%q < %q\n", a, b)
	case n > 0:
		fmt.Printf("%q > %q\n", a, b)
	default:
		fmt.Printf("%q == %q\n", a, b)
	}
	return 0
}

func printBackend(engine *search.Engine) {
	if !engine.Native() {
		fmt.Println("backend: fallback (code-point search, ASCII case folding, no collation)")
		return
	}
	if v := engine.Version(); v != 0 {
		fmt.Printf("backend: native (version %d)\n", v)
	} else {
		fmt.Println("backend: native (unversioned exports)")
	}
}
