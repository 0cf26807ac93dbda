package xgboost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformFor(t *testing.T) {
	tests := map[string]Platform{
		"windows": PlatformWindows,
		"linux":   PlatformPOSIX,
		"android": PlatformPOSIX,
		"freebsd": PlatformPOSIX,
		"js":      PlatformPOSIX,
		"wasip1":  PlatformPOSIX,
		"darwin":  PlatformDarwin,
		"ios":     PlatformDarwin,
		"aix":     PlatformUnknown,
		"plan9":   PlatformUnknown,
	}
	for goos, expected := range tests {
		assert.Equal(t, expected, platformFor(goos), goos)
	}
}

func TestPlatform_Filename(t *testing.T) {
	assert.Equal(t, "xgboost.dll", PlatformWindows.Filename())
	assert.Equal(t, "libxgboost.so", PlatformPOSIX.Filename())
	assert.Equal(t, "libxgboost.dylib", PlatformDarwin.Filename())
	assert.Equal(t, "cygxgboost.dll", PlatformCygwin.Filename())
	assert.Empty(t, PlatformUnknown.Filename())
}

func TestLibraryFilename_SystemOverride(t *testing.T) {
	for _, p := range []Platform{PlatformUnknown, PlatformWindows, PlatformPOSIX, PlatformDarwin, PlatformCygwin} {
		assert.Equal(t, "libxgboost.so", libraryFilename(p, "OS400"), p.String())
		assert.Equal(t, p.Filename(), libraryFilename(p, "Linux"), p.String())
	}
}

func TestSystemName(t *testing.T) {
	assert.NotEmpty(t, systemName())
}
