package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names recognized by this layer.
const (
	EnvCommonLib       = "UNISEARCH_ICUUC_LIB"
	EnvI18nLib         = "UNISEARCH_ICUI18N_LIB"
	EnvPrefixedExports = "UNISEARCH_ICU_PREFIXED_EXPORTS"
	EnvVersion         = "UNISEARCH_ICU_VERSION"
	EnvAutoDetect      = "UNISEARCH_ICU_AUTODETECT"
)

// lookupEnv is the production environment source.
func lookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// fromEnv collects overrides from the environment through lookup.
// Note: an empty string value counts as set; it clears a file-level
// library override back to the platform default.
func fromEnv(lookup func(string) (string, bool)) (overrides, error) {
	var ov overrides

	if v, ok := lookup(EnvCommonLib); ok {
		ov.commonLib = &v
	}
	if v, ok := lookup(EnvI18nLib); ok {
		ov.i18nLib = &v
	}
	if v, ok := lookup(EnvPrefixedExports); ok {
		b, err := parseBool(EnvPrefixedExports, v)
		if err != nil {
			return overrides{}, err
		}
		ov.prefixedExports = &b
	}
	if v, ok := lookup(EnvVersion); ok {
		n, err := parseVersion(EnvVersion, v)
		if err != nil {
			return overrides{}, err
		}
		ov.version = &n
	}
	if v, ok := lookup(EnvAutoDetect); ok {
		b, err := parseBool(EnvAutoDetect, v)
		if err != nil {
			return overrides{}, err
		}
		ov.autoDetect = &b
	}

	return ov, nil
}

// parseBool accepts the usual spellings; anything else is a fatal
// configuration error, never a silent default.
func parseBool(key, s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, &Error{Key: key, Value: s, Want: "boolean"}
}

// parseVersion requires a positive integer.
func parseVersion(key, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, &Error{Key: key, Value: s, Want: "positive integer"}
	}
	return n, nil
}
