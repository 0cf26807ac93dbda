package xgboost

// Lib attempts to find the XGBoost shared library on the system and returns the highest priority
// path. If the library cannot be found, an error matching ErrLibraryNotFound is returned, also when
// XGBOOST_BUILD_DOC is set.
func Lib(opts ...Option) (string, error) {
	paths, err := NewLocator(opts...).Locate()
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", ErrLibraryNotFound
	}
	return paths[0], nil
}
