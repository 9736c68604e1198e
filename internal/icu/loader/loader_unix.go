//go:build !windows

package loader

import "github.com/ebitengine/purego"

// dlopen loads a shared object by soname or path. RTLD_LOCAL keeps the
// library's symbols out of the global namespace; everything this layer
// needs is resolved through the returned handle.
func dlopen(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_LOCAL)
}

func dlsym(handle uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(handle, symbol)
}

func dlclose(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return purego.Dlclose(handle)
}
