package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteLRC writes the given records joined by newlines to dir/name and
// returns the full path.
func WriteLRC(t testing.TB, dir, name string, records ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	WriteFile(t, path, strings.Join(records, "\n")+"\n")
	return path
}

// SampleLRC is a short tagged document with three lines at 1s, 2s, and 5s.
var SampleLRC = strings.Join([]string{
	"[ar:Test Artist]",
	"[ti:Test Song]",
	"[00:01.00]first",
	"[00:02.00]second",
	"[00:05.00]third",
}, "\n")
