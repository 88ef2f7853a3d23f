package models

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GetFixturePath returns the absolute path of a file under the repository's testdata directory.
func GetFixturePath(t testing.TB, name string) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to resolve fixture directory")
	}
	path := filepath.Join(filepath.Dir(file), "..", "..", "testdata", name)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("fixture %s: %v", name, err)
	}
	return path
}
