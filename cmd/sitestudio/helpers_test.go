package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// setupHome points HOME and the data dir at a temp directory so commands
// never touch the real preference store.
func setupHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SITESTUDIO_DATA_DIR", filepath.Join(home, ".sitestudio"))
	t.Setenv("SITESTUDIO_TEMPLATES_DIR", "")
	t.Setenv("SITESTUDIO_CSS_PREFIX", "")
	return home
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
