// Package search is the editor's Search & Replace text capability.
//
// It exposes exactly two operations, Find and Compare, and hides which
// backend answers them. When a suitable native Unicode library is present
// on the host, the engine binds it and provides locale-aware collation and
// true word-boundary matching. When it is not — a load failure, an
// unrecognized version scheme, a missing entry point — the engine falls
// back to a built-in implementation with a documented reduced feature set.
// The fallback is never an error; an editor on a minimal host simply
// searches at code-point level.
//
// # Backends
//
// The backend is established exactly once per process, on first use of
// Default (or explicitly via New), and never changes afterward. A caller
// observing a native engine may assume every operation is callable; a
// resolution failure during construction lands the whole process in the
// fallback before the first call. Use Supports to ask which options the
// active backend honors.
//
// Reduced fallback semantics, fixed and deterministic:
//
//   - IgnoreCase folds ASCII letters only.
//   - WholeWord uses Unicode word segmentation (honored in both backends).
//   - Collated is ignored by Find (results are code-point exact, still
//     correct) and rejected by Compare with ErrCollationUnsupported (a
//     made-up ordering would be a wrong answer, not a degraded one).
//
// # Concurrency
//
// Construction is once-gated; concurrent first use performs a single
// initialization. After that, Find and Compare are safe for concurrent use:
// they read the immutable binding table and create any per-call native
// objects privately. This assumes the host library's entry points are
// themselves safe for concurrent invocation, which this layer documents but
// does not verify. Close releases the native library exactly once, at
// process teardown; no call may follow it, and there is no rebinding.
//
// # Testing
//
// The default test suite passes on hosts with no native library installed;
// every native-path test runs against fakes. Setting UNISEARCH_TEST_WITH_ICU=1
// additionally exercises a real installed library. That asymmetry is
// deliberate: the layer's whole point is working without the dependency.
package search
