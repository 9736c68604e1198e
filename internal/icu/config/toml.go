package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// fileSection mirrors the [unicode] table of the editor's config file.
// Pointer fields distinguish "absent" from zero values.
type fileSection struct {
	CommonLib       *string `toml:"icuuc"`
	I18nLib         *string `toml:"icui18n"`
	PrefixedExports *bool   `toml:"prefixed_exports"`
	Version         *int    `toml:"version"`
	AutoDetect      *bool   `toml:"autodetect"`
}

type fileRoot struct {
	Unicode fileSection `toml:"unicode"`
}

// loadFile reads overrides from the TOML file at path. A missing file or
// an empty path is not an error; the layer is optional and so is its
// config. A file that exists but does not parse, or carries wrong-typed
// values, is fatal.
func loadFile(path string) (overrides, error) {
	if path == "" {
		return overrides{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return overrides{}, nil
		}
		return overrides{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return parseFile(path, data)
}

// parseFile decodes data and converts it to an override set.
func parseFile(path string, data []byte) (overrides, error) {
	var root fileRoot
	if err := toml.Unmarshal(data, &root); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return overrides{}, fmt.Errorf("config: parse error in %s at line %d, column %d: %w", path, row, col, err)
		}
		return overrides{}, fmt.Errorf("config: parse error in %s: %w", path, err)
	}

	sec := root.Unicode
	ov := overrides{
		commonLib:       sec.CommonLib,
		i18nLib:         sec.I18nLib,
		prefixedExports: sec.PrefixedExports,
		autoDetect:      sec.AutoDetect,
	}
	if sec.Version != nil {
		if *sec.Version <= 0 {
			return overrides{}, &Error{Key: "unicode.version", Value: strconv.Itoa(*sec.Version), Want: "positive integer"}
		}
		ov.version = sec.Version
	}
	return ov, nil
}
