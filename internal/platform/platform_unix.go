//go:build !windows

package platform

import (
	"fmt"
	"os"
	"os/exec"
)

func defaultShell() Shell {
	return Shell{Path: "sh", Args: []string{"-c"}}
}

func (s Shell) command(line string, args []string) *exec.Cmd {
	argv := make([]string, 0, len(s.Args)+2+len(args))
	argv = append(argv, s.Args...)
	argv = append(argv, line, ArgZero)
	argv = append(argv, args...)
	return exec.Command(s.Path, argv...)
}

// MakeExecutable adds the execute bits to path for everyone who can read it.
func MakeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	mode := info.Mode().Perm() | 0o111
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}

// IsExecutable reports whether path has any execute bit set.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().Perm()&0o111 != 0
}
