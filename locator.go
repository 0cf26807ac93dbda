// Package xgboost locates and loads the XGBoost shared library.
//
// The library is searched for relative to the running program, in the installation prefix and in
// the directory named by XGBOOST_LIBRARY_PATH. Setting XGBOOST_BUILD_DOC turns a failed search into
// an empty result, for tooling which only generates documentation.
package xgboost

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
)

// Environment variables consulted by the Locator.
const (
	EnvLibraryPath = "XGBOOST_LIBRARY_PATH"
	EnvBuildDoc    = "XGBOOST_BUILD_DOC"
)

// windowsPrefixDirs are the directories below the base prefix where package managers install DLLs
// on Windows.
var windowsPrefixDirs = []string{
	"",
	"bin",
	"Library",
	filepath.Join("Library", "bin"),
	filepath.Join("Library", "lib"),
	filepath.Join("Library", "mingw-w64"),
	filepath.Join("Library", "mingw-w64", "bin"),
	filepath.Join("Library", "mingw-w64", "lib"),
}

// Locator searches for the XGBoost shared library. A Locator holds no state between searches and
// is safe for concurrent use.
type Locator struct {
	opts options
}

// NewLocator returns a Locator configured with opts. Options which are not supplied fall back to
// the process environment, os.Stat and the running platform.
func NewLocator(opts ...Option) *Locator {
	o := options{
		env:      EnvFunc(os.LookupEnv),
		stat:     os.Stat,
		platform: CurrentPlatform(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Locator{opts: o}
}

// FindLibPath searches for the XGBoost shared library using the process environment. See
// Locator.Locate.
func FindLibPath() ([]string, error) {
	return NewLocator().Locate()
}

// Locate returns every candidate library path which exists as a regular file, in search order:
//
//   - <package dir>/lib
//   - <package dir>/../../lib
//   - <base prefix>/lib
//   - $XGBOOST_LIBRARY_PATH/lib, when set
//   - the conda directories below the base prefix, on Windows
//
// If no candidate exists a *LibraryNotFoundError is returned, unless documentation-build mode is
// enabled, in which case the result is empty and the error nil.
func (l *Locator) Locate() ([]string, error) {
	packageDir := l.packageDir()
	basePrefix := l.opts.basePrefix
	if basePrefix == "" {
		basePrefix = filepath.Dir(packageDir)
	}

	candidates := l.candidates(packageDir, basePrefix)

	found := make([]string, 0, len(candidates))
	for _, path := range candidates {
		if l.isRegularFile(path) {
			found = append(found, path)
		}
	}

	if len(found) > 0 {
		l.opts.logger.Debug("found xgboost library", zap.Strings("paths", found))
		return found, nil
	}
	if l.docBuild() {
		l.opts.logger.Debug("no xgboost library found; documentation build", zap.Strings("candidates", candidates))
		return found, nil
	}
	return nil, &LibraryNotFoundError{
		Candidates: candidates,
		PackageDir: packageDir,
		BasePrefix: basePrefix,
	}
}

// candidates returns the candidate library paths in search order.
func (l *Locator) candidates(packageDir, basePrefix string) []string {
	dirs := []string{
		filepath.Join(packageDir, "lib"),
		filepath.Join(packageDir, "..", "..", "lib"),
		filepath.Join(basePrefix, "lib"),
	}

	if custom, ok := l.opts.env.LookupEnv(EnvLibraryPath); ok {
		dirs = append(dirs, filepath.Join(custom, "lib"))
	}

	if l.opts.platform == PlatformWindows {
		for _, dir := range windowsPrefixDirs {
			dirs = append(dirs, filepath.Join(basePrefix, dir))
		}
	}

	system := l.opts.system
	if system == "" {
		system = systemName()
	}
	name := libraryFilename(l.opts.platform, system)
	if name == "" {
		return dirs
	}

	paths := make([]string, len(dirs))
	for i, dir := range dirs {
		paths[i] = filepath.Join(dir, name)
	}
	return paths
}

// packageDir returns the absolute directory the search is relative to.
func (l *Locator) packageDir() string {
	dir := l.opts.packageDir
	if dir == "" {
		dir = executableDir()
	}

	if expanded, err := homedir.Expand(dir); err == nil {
		dir = expanded
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// executableDir returns the directory of the running executable with symlinks resolved, or the
// working directory if it cannot be determined.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// isRegularFile returns true if the given path exists and is a regular file. Errors other than
// the path not existing are treated the same way.
func (l *Locator) isRegularFile(path string) bool {
	info, err := l.opts.stat(path)
	if err != nil {
		l.opts.logger.Debug("skipping candidate", zap.String("path", path), zap.Error(err))
		return false
	}
	if !info.Mode().IsRegular() {
		l.opts.logger.Debug("skipping candidate", zap.String("path", path), zap.Stringer("mode", info.Mode()))
		return false
	}
	return true
}

// docBuild reports whether documentation-build mode is enabled. Any non-empty value of
// XGBOOST_BUILD_DOC enables it.
func (l *Locator) docBuild() bool {
	if l.opts.docBuild {
		return true
	}
	v, _ := l.opts.env.LookupEnv(EnvBuildDoc)
	return v != ""
}
