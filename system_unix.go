//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package xgboost

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// systemName returns the operating system name reported by uname, e.g. "Linux" or "OS400".
func systemName() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOOS
	}
	return unix.ByteSliceToString(uts.Sysname[:])
}
