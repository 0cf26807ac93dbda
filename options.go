package xgboost

import (
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// Env looks up environment variables.
type Env interface {
	LookupEnv(key string) (string, bool)
}

// EnvFunc adapts a function to the Env interface.
type EnvFunc func(key string) (string, bool)

// LookupEnv calls f(key).
func (f EnvFunc) LookupEnv(key string) (string, bool) { return f(key) }

// EnvMap is an Env backed by a map. It is mostly useful for tests.
type EnvMap map[string]string

// LookupEnv returns the value stored under key.
func (m EnvMap) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// StatFunc returns file metadata for a path, following symlinks.
type StatFunc func(name string) (fs.FileInfo, error)

type options struct {
	packageDir string
	basePrefix string
	env        Env
	stat       StatFunc
	platform   Platform
	system     string
	docBuild   bool
	logger     *zap.Logger
}

// Option configures a Locator.
type Option func(*options)

// WithPackageDir sets the directory the library is searched relative to. By default the directory
// of the running executable is used.
func WithPackageDir(dir string) Option {
	return func(o *options) {
		o.packageDir = dir
	}
}

// WithBasePrefix sets the installation prefix used for the fallback candidates. By default it is
// the parent of the package directory.
func WithBasePrefix(prefix string) Option {
	return func(o *options) {
		o.basePrefix = prefix
	}
}

// WithEnv sets the environment consulted for XGBOOST_LIBRARY_PATH and XGBOOST_BUILD_DOC.
//
// If nil is passed, the process environment is used.
func WithEnv(env Env) Option {
	return func(o *options) {
		if env == nil {
			env = EnvFunc(os.LookupEnv)
		}
		o.env = env
	}
}

// WithStat sets the function used to query file metadata.
//
// If nil is passed, os.Stat is used.
func WithStat(stat StatFunc) Option {
	return func(o *options) {
		if stat == nil {
			stat = os.Stat
		}
		o.stat = stat
	}
}

// WithPlatform overrides the platform family of the running program.
func WithPlatform(p Platform) Option {
	return func(o *options) {
		o.platform = p
	}
}

// WithSystem overrides the system name reported by uname.
func WithSystem(name string) Option {
	return func(o *options) {
		o.system = name
	}
}

// WithDocBuild makes a search which finds nothing succeed with an empty result, as if
// XGBOOST_BUILD_DOC were set.
func WithDocBuild(enabled bool) Option {
	return func(o *options) {
		o.docBuild = enabled
	}
}

// WithLogger sets the logger. Search and load progress is logged at debug level.
//
// If nil is passed, logging is disabled.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = zap.NewNop()
		}
		o.logger = logger
	}
}
