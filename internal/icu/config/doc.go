// Package config resolves the configuration of the native Unicode layer.
//
// Configuration is built exactly once, at startup, from three sources in
// increasing precedence: per-platform defaults, an optional TOML file
// section, and UNISEARCH_-prefixed environment variables. The result is an
// immutable Config value; nothing in this subsystem mutates it afterward.
//
// A malformed override (a non-boolean where a boolean is expected, a
// non-numeric version) is a fatal configuration error reported to the
// operator. It is the only loud failure in the subsystem: it indicates a
// packaging or operator mistake, not a missing optional dependency.
//
// Recognized environment variables:
//
//	UNISEARCH_ICUUC_LIB             explicit module name/path for the common library
//	UNISEARCH_ICUI18N_LIB           explicit module name/path for the i18n library
//	UNISEARCH_ICU_PREFIXED_EXPORTS  select the underscore-prefixed export spelling
//	UNISEARCH_ICU_VERSION           explicit renaming version; disables auto-detection
//	UNISEARCH_ICU_AUTODETECT        enable version auto-detection
//
// The TOML section mirrors the same settings under [unicode]:
//
//	[unicode]
//	icuuc = "libicuuc.so.76"
//	icui18n = "libicui18n.so.76"
//	prefixed_exports = false
//	version = 76
//	autodetect = true
//
// Platform defaults are fixed constants, declared in the defaults_*.go
// files: darwin defaults to the combined libicucore.dylib with prefixed
// exports, generic unix defaults to libicuuc.so/libicui18n.so with version
// auto-detection enabled, and windows defaults to icuuc.dll/icuin.dll with
// the unversioned icu.dll as a second candidate.
package config
