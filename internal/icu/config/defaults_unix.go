//go:build !windows && !darwin

package config

// Generic UNIX defaults. Distribution builds of the libraries rename their
// exports with a version suffix, so auto-detection defaults on; exports are
// plain C symbols, so the prefixed spelling defaults off.
const (
	defaultPrefixedExports = false
	defaultAutoDetect      = true
)

func defaultCommonNames() []string {
	return []string{"libicuuc.so"}
}

func defaultI18nNames() []string {
	return []string{"libicui18n.so"}
}
