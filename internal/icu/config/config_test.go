package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }
func intptr(n int) *int       { return &n }

func TestBuildDefaults(t *testing.T) {
	cfg := build()

	if cfg.Common.Override != "" || cfg.I18n.Override != "" {
		t.Errorf("default config has overrides: %q, %q", cfg.Common.Override, cfg.I18n.Override)
	}
	if cfg.Version != 0 {
		t.Errorf("default version = %d, want 0", cfg.Version)
	}

	switch runtime.GOOS {
	case "windows":
		if cfg.PrefixedExports || cfg.AutoDetect {
			t.Errorf("windows defaults: prefixed=%v autodetect=%v, want false/false", cfg.PrefixedExports, cfg.AutoDetect)
		}
	case "darwin":
		if !cfg.PrefixedExports || cfg.AutoDetect {
			t.Errorf("darwin defaults: prefixed=%v autodetect=%v, want true/false", cfg.PrefixedExports, cfg.AutoDetect)
		}
	default:
		if cfg.PrefixedExports || !cfg.AutoDetect {
			t.Errorf("unix defaults: prefixed=%v autodetect=%v, want false/true", cfg.PrefixedExports, cfg.AutoDetect)
		}
	}

	if len(cfg.Common.Candidates()) == 0 || len(cfg.I18n.Candidates()) == 0 {
		t.Error("default candidate lists must not be empty")
	}
}

func TestCandidatesOverrideShortCircuitsDefaults(t *testing.T) {
	cfg := build(overrides{commonLib: strptr("/opt/icu/libicuuc.so.76")})

	got := cfg.Common.Candidates()
	if len(got) != 1 || got[0] != "/opt/icu/libicuuc.so.76" {
		t.Errorf("Candidates() = %v, want exactly the override", got)
	}

	// The other library keeps its platform defaults.
	if len(cfg.I18n.Candidates()) == 0 || cfg.I18n.Candidates()[0] == "/opt/icu/libicuuc.so.76" {
		t.Errorf("i18n candidates affected by common override: %v", cfg.I18n.Candidates())
	}
}

func TestExplicitVersionDisablesAutoDetect(t *testing.T) {
	cfg := build(overrides{version: intptr(76), autoDetect: boolptr(true)})

	if cfg.Version != 76 {
		t.Fatalf("Version = %d, want 76", cfg.Version)
	}
	if cfg.AutoDetect {
		t.Error("AutoDetect = true, want false when an explicit version is set")
	}
}

func TestBuildPrecedence(t *testing.T) {
	file := overrides{
		commonLib:       strptr("from-file"),
		prefixedExports: boolptr(true),
	}
	env := overrides{
		commonLib: strptr("from-env"),
	}

	cfg := build(file, env)

	if cfg.Common.Override != "from-env" {
		t.Errorf("Common.Override = %q, want env to win over file", cfg.Common.Override)
	}
	if !cfg.PrefixedExports {
		t.Error("PrefixedExports = false, want file value to survive when env is silent")
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		EnvCommonLib:       "libcustom.so",
		EnvPrefixedExports: "yes",
		EnvVersion:         "76",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	ov, err := fromEnv(lookup)
	if err != nil {
		t.Fatalf("fromEnv failed: %v", err)
	}
	if ov.commonLib == nil || *ov.commonLib != "libcustom.so" {
		t.Errorf("commonLib = %v, want libcustom.so", ov.commonLib)
	}
	if ov.prefixedExports == nil || !*ov.prefixedExports {
		t.Errorf("prefixedExports = %v, want true", ov.prefixedExports)
	}
	if ov.version == nil || *ov.version != 76 {
		t.Errorf("version = %v, want 76", ov.version)
	}
	if ov.i18nLib != nil || ov.autoDetect != nil {
		t.Error("unset variables must stay nil")
	}
}

func TestFromEnvMalformed(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"non-boolean flag", EnvPrefixedExports, "maybe"},
		{"non-numeric version", EnvVersion, "seventy-six"},
		{"zero version", EnvVersion, "0"},
		{"negative version", EnvVersion, "-3"},
		{"non-boolean autodetect", EnvAutoDetect, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(key string) (string, bool) {
				if key == tt.key {
					return tt.val, true
				}
				return "", false
			}

			_, err := fromEnv(lookup)
			if err == nil {
				t.Fatalf("fromEnv(%s=%q) succeeded, want fatal config error", tt.key, tt.val)
			}
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("error %v does not match ErrInvalidValue", err)
			}
			var cfgErr *Error
			if !errors.As(err, &cfgErr) || cfgErr.Key != tt.key {
				t.Errorf("error %v does not carry key %s", err, tt.key)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	data := []byte(`
[unicode]
icuuc = "libicuuc.so.76"
version = 76
autodetect = true
`)

	ov, err := parseFile("test.toml", data)
	if err != nil {
		t.Fatalf("parseFile failed: %v", err)
	}
	if ov.commonLib == nil || *ov.commonLib != "libicuuc.so.76" {
		t.Errorf("commonLib = %v, want libicuuc.so.76", ov.commonLib)
	}
	if ov.version == nil || *ov.version != 76 {
		t.Errorf("version = %v, want 76", ov.version)
	}
	if ov.prefixedExports != nil {
		t.Error("absent prefixed_exports must stay nil")
	}
}

func TestParseFileMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"wrong type", "[unicode]\nversion = \"seventy-six\"\n"},
		{"zero version", "[unicode]\nversion = 0\n"},
		{"broken syntax", "[unicode\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFile("test.toml", []byte(tt.data)); err == nil {
				t.Fatal("parseFile succeeded, want error")
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	ov, err := loadFile(filepath.Join(t.TempDir(), "no-such-file.toml"))
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if ov != (overrides{}) {
		t.Errorf("missing file produced overrides: %+v", ov)
	}
}

func TestResolveEnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.toml")
	data := []byte("[unicode]\nicuuc = \"from-file.so\"\nprefixed_exports = true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvCommonLib, "from-env.so")

	cfg, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Common.Override != "from-env.so" {
		t.Errorf("Common.Override = %q, want from-env.so", cfg.Common.Override)
	}
	if !cfg.PrefixedExports {
		t.Error("PrefixedExports = false, want file value preserved")
	}
}
