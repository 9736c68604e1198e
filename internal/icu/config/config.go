package config

// Library holds the resolved configuration for one logical native library.
// Values are fixed once Resolve returns; the locator and binder only read.
type Library struct {
	// Override is an explicit module name or path. When set, it is the
	// only load candidate; platform defaults are never attempted.
	Override string

	// defaults is the platform-conventional candidate list used when
	// Override is empty.
	defaults []string
}

// Candidates returns the ordered list of module identifiers to try loading.
// An explicit override short-circuits the platform defaults entirely.
func (l Library) Candidates() []string {
	if l.Override != "" {
		return []string{l.Override}
	}
	out := make([]string, len(l.defaults))
	copy(out, l.defaults)
	return out
}

// Config is the immutable configuration of the native Unicode layer,
// built once at startup.
type Config struct {
	// Common is the Unicode-common library (u_*, ubrk_* entry points).
	Common Library
	// I18n is the Unicode-i18n library (ucol_*, usearch_* entry points).
	I18n Library

	// PrefixedExports selects the underscore-prefixed export spelling.
	PrefixedExports bool

	// Version is the explicit renaming version, 0 when unset. A non-zero
	// value disables auto-detection regardless of AutoDetect input.
	Version int

	// AutoDetect enables the bounded version probe when no explicit
	// version is configured.
	AutoDetect bool
}

// overrides carries the optional values collected from one source.
// Nil fields mean "not set by this source".
type overrides struct {
	commonLib       *string
	i18nLib         *string
	prefixedExports *bool
	version         *int
	autoDetect      *bool
}

// merge applies o on top of c. Later sources win field by field.
func (o overrides) merge(c *Config) {
	if o.commonLib != nil {
		c.Common.Override = *o.commonLib
	}
	if o.i18nLib != nil {
		c.I18n.Override = *o.i18nLib
	}
	if o.prefixedExports != nil {
		c.PrefixedExports = *o.prefixedExports
	}
	if o.version != nil {
		c.Version = *o.version
	}
	if o.autoDetect != nil {
		c.AutoDetect = *o.autoDetect
	}
}

// Resolve builds the Config from platform defaults, the optional TOML file
// at path (missing file is not an error), and the process environment.
// Precedence: environment over file over defaults. A malformed value in
// either source returns a *Error; callers treat that as startup-fatal.
func Resolve(path string) (*Config, error) {
	fileOv, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	envOv, err := fromEnv(lookupEnv)
	if err != nil {
		return nil, err
	}
	return build(fileOv, envOv), nil
}

// build assembles the final Config from ordered override sets, lowest
// precedence first, and normalizes the version/auto-detect interaction.
func build(sources ...overrides) *Config {
	cfg := &Config{
		Common: Library{defaults: defaultCommonNames()},
		I18n:   Library{defaults: defaultI18nNames()},

		PrefixedExports: defaultPrefixedExports,
		AutoDetect:      defaultAutoDetect,
	}
	for _, src := range sources {
		src.merge(cfg)
	}

	// An explicit version pins the export spelling; probing for a
	// different one could only disagree with the operator.
	if cfg.Version != 0 {
		cfg.AutoDetect = false
	}
	return cfg
}
