//go:build windows

package loader

import (
	"strings"

	"golang.org/x/sys/windows"
)

// dlopen loads a DLL. Bare names are restricted to the system directory so
// a DLL planted next to the editor binary cannot satisfy the probe;
// explicit override paths load from where the operator pointed.
func dlopen(name string) (uintptr, error) {
	var flags uintptr = windows.LOAD_LIBRARY_SEARCH_SYSTEM32
	if strings.ContainsAny(name, `\/`) {
		flags = windows.LOAD_WITH_ALTERED_SEARCH_PATH
	}
	h, err := windows.LoadLibraryEx(name, 0, flags)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func dlsym(handle uintptr, symbol string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), symbol)
}

func dlclose(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(handle))
}
