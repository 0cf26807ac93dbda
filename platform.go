package xgboost

import "runtime"

// Platform identifies a family of operating systems that share a naming convention for the XGBoost
// shared library.
type Platform int

// Supported platform families.
const (
	PlatformUnknown Platform = iota
	PlatformWindows
	PlatformPOSIX
	PlatformDarwin
	PlatformCygwin
)

// platformFilenames maps each platform family to the file name of the shared library.
var platformFilenames = map[Platform]string{
	PlatformWindows: "xgboost.dll",
	PlatformPOSIX:   "libxgboost.so",
	PlatformDarwin:  "libxgboost.dylib",
	PlatformCygwin:  "cygxgboost.dll",
}

// systemFilenames maps system names, as reported by uname, to a library file name which takes
// precedence over the platform family.
var systemFilenames = map[string]string{
	"OS400": "libxgboost.so",
}

// Filename returns the shared library file name for the platform. An empty string is returned for
// PlatformUnknown.
func (p Platform) Filename() string {
	return platformFilenames[p]
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "windows"
	case PlatformPOSIX:
		return "posix"
	case PlatformDarwin:
		return "darwin"
	case PlatformCygwin:
		return "cygwin"
	default:
		return "unknown"
	}
}

// CurrentPlatform returns the platform family of the running program.
func CurrentPlatform() Platform {
	return platformFor(runtime.GOOS)
}

// platformFor maps a GOOS value to its platform family.
func platformFor(goos string) Platform {
	switch goos {
	case "windows":
		return PlatformWindows
	case "linux", "android", "freebsd", "js", "wasip1":
		return PlatformPOSIX
	case "darwin", "ios":
		return PlatformDarwin
	default:
		return PlatformUnknown
	}
}

// libraryFilename returns the library file name for the platform and system name. The system
// name lookup wins over the platform family.
func libraryFilename(p Platform, system string) string {
	if name, ok := systemFilenames[system]; ok {
		return name
	}
	return p.Filename()
}
