package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotRepo is returned when no enclosing repository is found.
var ErrNotRepo = errors.New("not a git repository (or any of the parent directories)")

// FindRoot walks up from start and returns the first directory that has a
// .git entry. The result is absolute.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}
	for {
		if isGitRepo(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s: %w", start, ErrNotRepo)
		}
		dir = parent
	}
}

// isGitRepo checks if a path is a git repository (has .git dir or file)
func isGitRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	if err != nil {
		return false
	}
	// .git is a file in linked worktrees and submodules
	return info.IsDir() || info.Mode().IsRegular()
}

// HooksDir returns the absolute directory git runs hooks from for the
// repository at root. It honours core.hooksPath.
func HooksDir(ctx context.Context, root string) (string, error) {
	out, err := outputGit(ctx, root, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", fmt.Errorf("failed to locate hooks directory: %w", err)
	}
	dir := filepath.FromSlash(strings.TrimSpace(string(out)))
	if dir == "" {
		return "", fmt.Errorf("failed to locate hooks directory: git returned an empty path")
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return filepath.Clean(dir), nil
}
