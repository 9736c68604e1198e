//go:build windows

package config

// Windows exports are unversioned and unprefixed, so both conventions
// default off. Older systems ship the combined icu.dll instead of the
// icuuc.dll/icuin.dll pair; it is the second candidate for both roles.
const (
	defaultPrefixedExports = false
	defaultAutoDetect      = false
)

func defaultCommonNames() []string {
	return []string{"icuuc.dll", "icu.dll"}
}

func defaultI18nNames() []string {
	return []string{"icuin.dll", "icu.dll"}
}
