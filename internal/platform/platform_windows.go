//go:build windows

package platform

import (
	"os"
	"os/exec"
	"strings"
	"syscall"
)

func defaultShell() Shell {
	comspec := os.Getenv("ComSpec")
	if comspec == "" {
		comspec = "cmd.exe"
	}
	return Shell{Path: comspec, Args: []string{"/d", "/s", "/c"}}
}

// command builds the raw command line itself: cmd.exe does not follow the
// argv quoting rules exec would apply, and /s strips exactly one pair of
// outer quotes.
func (s Shell) command(line string, args []string) *exec.Cmd {
	var b strings.Builder
	b.WriteString(line)
	for _, a := range args {
		b.WriteByte(' ')
		b.WriteString(syscall.EscapeArg(a))
	}

	c := exec.Command(s.Path)
	c.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: syscall.EscapeArg(s.Path) + " " + strings.Join(s.Args, " ") + ` "` + b.String() + `"`,
	}
	return c
}

// MakeExecutable is a no-op: git for Windows runs hooks through its own sh
// regardless of file mode.
func MakeExecutable(path string) error {
	_, err := os.Stat(path)
	return err
}

// IsExecutable reports whether path exists.
func IsExecutable(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
