package binding

import "fmt"

// CallError reports a failure status from a resolved native entry point.
// It is scoped to the one operation that failed: the established backend
// stays valid and no re-detection happens.
type CallError struct {
	// Op is the facade operation that was running ("find", "compare").
	Op string
	// Code is the native status code.
	Code int32
	// Name is the native rendering of Code, e.g. U_ILLEGAL_ARGUMENT_ERROR.
	Name string
}

// Error implements the error interface.
func (e *CallError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: native call failed: %s (%d)", e.Op, e.Name, e.Code)
	}
	return fmt.Sprintf("%s: native call failed: status %d", e.Op, e.Code)
}

// Failed reports whether a native status code indicates failure.
// Zero is success; negative codes are warnings, also not failures.
func Failed(status int32) bool { return status > 0 }

// CallErr builds a CallError for op, rendering the code through the bound
// error-name entry point.
func (t *Table) CallErr(op string, code int32) *CallError {
	return &CallError{Op: op, Code: code, Name: t.ErrorName(code)}
}
