//go:build !(((darwin || freebsd || linux) && !android) || windows)

package xgboost

// dlopen returns ErrUnsupportedPlatform on systems without a purego loader.
func dlopen(string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func dlsym(uintptr, string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func dlclose(uintptr) error {
	return ErrUnsupportedPlatform
}

func registerFunc(any, uintptr) {
	panic("xgboost: registerFunc called on an unsupported platform")
}
