package config

import (
	"errors"
	"fmt"
)

// ErrInvalidValue indicates a malformed override value.
var ErrInvalidValue = errors.New("invalid configuration value")

// Error describes a malformed configuration override. It is fatal at
// startup: the operator set a value this layer cannot interpret.
type Error struct {
	// Key is the environment variable or TOML key that was malformed.
	Key string
	// Value is the raw value as supplied.
	Value string
	// Want names the expected type ("boolean", "integer").
	Want string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("config: %s=%q: expected %s", e.Key, e.Value, e.Want)
}

// Is implements error matching against ErrInvalidValue.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidValue
}
