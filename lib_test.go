package xgboost_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adamkeys/xgboost"
)

func TestLib_LibraryPath(t *testing.T) {
	if xgboost.CurrentPlatform() == xgboost.PlatformUnknown {
		t.Skip("no library file name for this platform")
	}
	dir := t.TempDir()
	exp := filepath.Join(dir, "lib", xgboost.CurrentPlatform().Filename())
	if err := os.MkdirAll(filepath.Dir(exp), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(exp, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(xgboost.EnvLibraryPath, dir)

	path, err := xgboost.Lib(xgboost.WithPackageDir(t.TempDir()), xgboost.WithBasePrefix(t.TempDir()))
	if err != nil {
		t.Fatalf("lib: %v", err)
	}

	if path != exp {
		t.Errorf("unexpected path: %q; got: %q", exp, path)
	}
}

func TestLib_DocBuildNotFound(t *testing.T) {
	env := xgboost.EnvMap{xgboost.EnvBuildDoc: "1"}

	_, err := xgboost.Lib(
		xgboost.WithEnv(env),
		xgboost.WithPackageDir(t.TempDir()),
		xgboost.WithBasePrefix(t.TempDir()),
	)
	if !errors.Is(err, xgboost.ErrLibraryNotFound) {
		t.Errorf("expected ErrLibraryNotFound; got: %v", err)
	}
}
