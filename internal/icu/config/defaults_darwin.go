//go:build darwin

package config

// macOS ships a single combined library, libicucore.dylib, serving both the
// common and i18n roles. Its exports carry no version suffix but use the
// underscore-prefixed spelling, so that convention defaults on and
// auto-detection defaults off.
const (
	defaultPrefixedExports = true
	defaultAutoDetect      = false
)

func defaultCommonNames() []string {
	return []string{"libicucore.dylib", "libicuuc.dylib"}
}

func defaultI18nNames() []string {
	return []string{"libicucore.dylib", "libicui18n.dylib"}
}
