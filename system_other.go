//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package xgboost

import "runtime"

// systemName returns the GOOS value on systems without uname.
func systemName() string {
	return runtime.GOOS
}
