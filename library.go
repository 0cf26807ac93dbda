package xgboost

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Library is a handle to a loaded XGBoost shared library.
type Library struct {
	handle uintptr
	path   string

	xgboostVersion  func(major, minor, patch *int32)
	xgbGetLastError func() string

	closeOnce sync.Once
	closeErr  error
}

// Open locates the XGBoost shared library with the supplied options and loads the first candidate
// which the dynamic loader accepts.
func Open(opts ...Option) (*Library, error) {
	paths, err := NewLocator(opts...).Locate()
	if err != nil {
		return nil, err
	}
	return Load(paths, opts...)
}

// Load loads the first of paths which the dynamic loader accepts and which exports the XGBoost C
// API. Paths are tried in order. If none can be loaded the returned error wraps ErrLoadFailed and
// the error of every attempt.
func Load(paths []string, opts ...Option) (*Library, error) {
	if len(paths) == 0 {
		return nil, ErrLibraryNotFound
	}

	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	var errs []error
	for _, path := range paths {
		lib, err := loadLibrary(path)
		if err != nil {
			if errors.Is(err, ErrUnsupportedPlatform) {
				return nil, err
			}
			o.logger.Warn("failed to load xgboost library", zap.String("path", path), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		o.logger.Debug("loaded xgboost library", zap.String("path", path))
		return lib, nil
	}

	return nil, fmt.Errorf("%w: %w", ErrLoadFailed, errors.Join(errs...))
}

// loadLibrary opens the library at path and binds the C API functions.
func loadLibrary(path string) (*Library, error) {
	handle, err := dlopen(path)
	if err != nil {
		return nil, fmt.Errorf("dlopen: %w", err)
	}

	lib := &Library{handle: handle, path: path}
	if err := lib.bind(); err != nil {
		_ = dlclose(handle)
		return nil, err
	}
	return lib, nil
}

// bind registers the C API functions used by Library.
func (l *Library) bind() error {
	version, err := dlsym(l.handle, "XGBoostVersion")
	if err != nil {
		return fmt.Errorf("XGBoostVersion: %w", err)
	}
	lastError, err := dlsym(l.handle, "XGBGetLastError")
	if err != nil {
		return fmt.Errorf("XGBGetLastError: %w", err)
	}

	registerFunc(&l.xgboostVersion, version)
	registerFunc(&l.xgbGetLastError, lastError)
	return nil
}

// Path returns the file the library was loaded from.
func (l *Library) Path() string {
	return l.path
}

// Version returns the version of the loaded library.
func (l *Library) Version() (major, minor, patch int) {
	var ma, mi, pa int32
	l.xgboostVersion(&ma, &mi, &pa)
	return int(ma), int(mi), int(pa)
}

// LastError returns the message of the last error raised by the library on the calling thread.
func (l *Library) LastError() string {
	return l.xgbGetLastError()
}

// Close unloads the library. Functions of the library must not be called after Close. Calling
// Close more than once returns the result of the first call.
func (l *Library) Close() error {
	l.closeOnce.Do(func() {
		l.closeErr = dlclose(l.handle)
	})
	return l.closeErr
}
