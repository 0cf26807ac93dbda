package xgboost_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adamkeys/xgboost"
)

func TestLibraryNotFoundError_Error(t *testing.T) {
	err := &xgboost.LibraryNotFoundError{
		Candidates: []string{"/a/lib/libxgboost.so", "/b/lib/libxgboost.so"},
		PackageDir: "/a",
		BasePrefix: "/usr",
	}

	const exp = "cannot find XGBoost library in the candidate path; list of candidates:\n" +
		"- /a/lib/libxgboost.so\n" +
		"- /b/lib/libxgboost.so\n" +
		"XGBoost package path: /a\n" +
		"base prefix: /usr\n" +
		"see: https://xgboost.readthedocs.io/en/stable/install.html for installing XGBoost"
	assert.Equal(t, exp, err.Error())
}

func TestLibraryNotFoundError_Is(t *testing.T) {
	err := fmt.Errorf("open: %w", &xgboost.LibraryNotFoundError{})
	assert.True(t, errors.Is(err, xgboost.ErrLibraryNotFound))
	assert.False(t, errors.Is(err, xgboost.ErrLoadFailed))
}
