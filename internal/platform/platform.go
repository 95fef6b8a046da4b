// Package platform spawns configured command lines through the host's
// shell and handles the OS-specific parts of hook files.
//
// On POSIX systems a command runs as `sh -c <command> git-smee <args...>`,
// so arguments git passed to the hook are "$1", "$2", ... inside the
// command. On Windows it runs through cmd.exe with the arguments appended
// to the command line. Standard streams and the environment are inherited
// unchanged.
package platform

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/git-smee/git-smee/internal/log"
	"github.com/git-smee/git-smee/internal/redact"
)

// ArgZero is $0 for commands run through the POSIX shell.
const ArgZero = "git-smee"

// Shell is the interpreter a command line is handed to.
type Shell struct {
	Path string   // executable
	Args []string // arguments placed before the command line
}

// Current returns the shell for the host OS.
func Current() Shell {
	return defaultShell()
}

// String renders the shell invocation for messages, e.g. "sh -c".
func (s Shell) String() string {
	return strings.TrimSpace(s.Path + " " + strings.Join(s.Args, " "))
}

// ExitStatus is how a command ended.
type ExitStatus struct {
	Code     int
	Signaled bool
	Signal   int
}

// Success reports a zero exit code.
func (s ExitStatus) Success() bool {
	return !s.Signaled && s.Code == 0
}

// Runner runs one command line with forwarded positional arguments.
// A non-nil error means the command could not be started at all; a
// command that ran and failed is reported through ExitStatus only.
type Runner interface {
	Run(ctx context.Context, command string, args []string) (ExitStatus, error)
}

// ShellRunner is the Runner used for real hook runs.
// Nil streams are inherited from the current process.
type ShellRunner struct {
	Shell  Shell
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellRunner returns a runner for the host shell with inherited streams.
func NewShellRunner() *ShellRunner {
	return &ShellRunner{Shell: Current()}
}

// Run starts the command and waits for it. ctx provides the logger; it does
// not cancel a command that is already running.
func (r *ShellRunner) Run(ctx context.Context, command string, args []string) (ExitStatus, error) {
	c := r.Shell.command(command, args)
	c.Dir = r.Dir
	c.Stdin = orReader(r.Stdin, os.Stdin)
	c.Stdout = orWriter(r.Stdout, os.Stdout)
	c.Stderr = orWriter(r.Stderr, os.Stderr)

	done := log.FromContext(ctx).Command(r.Dir, r.Shell.String(), redact.Command(command))
	start := time.Now()
	err := c.Run()
	done(time.Since(start))

	if err == nil {
		return ExitStatus{}, nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return statusFrom(ee), nil
	}
	return ExitStatus{}, err
}

func statusFrom(ee *exec.ExitError) ExitStatus {
	if ws, ok := ee.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return ExitStatus{Code: -1, Signaled: true, Signal: int(ws.Signal())}
	}
	return ExitStatus{Code: ee.ExitCode()}
}

func orReader(r, def io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return def
}

func orWriter(w, def io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return def
}
