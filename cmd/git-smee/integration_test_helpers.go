//go:build integration

package main

import (
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// skipWithoutSh skips tests whose hook commands are written for sh.
func skipWithoutSh(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("hook commands are written for sh")
	}
}

// setupTestRepo runs git init in a fresh directory and returns its path
// with symlinks resolved (macOS has /var -> /private/var).
func setupTestRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	repo, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	if out, err := exec.Command("git", "init", "-q", repo).CombinedOutput(); err != nil {
		t.Fatalf("git init: %v\n%s", err, out)
	}
	return repo
}
