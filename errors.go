package xgboost

import (
	"errors"
	"strings"
)

// InstallDocURL is the documentation page referenced when the library cannot be found.
const InstallDocURL = "https://xgboost.readthedocs.io/en/stable/install.html"

var (
	// ErrLibraryNotFound is returned when the XGBoost shared library cannot be found.
	ErrLibraryNotFound = errors.New("library not found")
	// ErrLoadFailed is returned when none of the located libraries could be loaded.
	ErrLoadFailed = errors.New("load failed")
	// ErrUnsupportedPlatform is returned when shared libraries cannot be loaded on the running platform.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// LibraryNotFoundError describes a search which did not find any library. It matches
// ErrLibraryNotFound with errors.Is.
type LibraryNotFoundError struct {
	// Candidates lists every path that was tried, in search order.
	Candidates []string
	// PackageDir is the resolved directory of the running program.
	PackageDir string
	// BasePrefix is the installation prefix used for the fallback candidates.
	BasePrefix string
}

func (e *LibraryNotFoundError) Error() string {
	var b strings.Builder
	b.WriteString("cannot find XGBoost library in the candidate path; list of candidates:")
	for _, c := range e.Candidates {
		b.WriteString("\n- ")
		b.WriteString(c)
	}
	b.WriteString("\nXGBoost package path: ")
	b.WriteString(e.PackageDir)
	b.WriteString("\nbase prefix: ")
	b.WriteString(e.BasePrefix)
	b.WriteString("\nsee: ")
	b.WriteString(InstallDocURL)
	b.WriteString(" for installing XGBoost")
	return b.String()
}

// Is reports whether target is ErrLibraryNotFound.
func (e *LibraryNotFoundError) Is(target error) bool {
	return target == ErrLibraryNotFound
}
