package hooks

import (
	"fmt"

	"github.com/git-smee/git-smee/internal/config"
)

// ErrorKind separates a broken hook definition (the command could not be
// started) from a command that ran and reported failure.
type ErrorKind int

const (
	KindSpawn ErrorKind = iota
	KindExitStatus
	KindSignal
)

// Exit codes used when a command has no exit code of its own.
const (
	ExitSpawnFailure = 127
	exitSignalBase   = 128
)

// ExecutionError describes the command that decided a hook's outcome.
// Command is already redacted.
type ExecutionError struct {
	Kind     ErrorKind
	Hook     config.HookName
	Command  string
	Order    int
	Parallel bool
	Code     int
	Signal   int
	Shell    string
	Err      error
}

func (e *ExecutionError) Error() string {
	which := fmt.Sprintf("hook %q: command #%d %q", e.Hook, e.Order+1, e.Command)
	switch e.Kind {
	case KindSpawn:
		return fmt.Sprintf("hook %q: could not start command #%d %q via %s: %v", e.Hook, e.Order+1, e.Command, e.Shell, e.Err)
	case KindSignal:
		return fmt.Sprintf("%s was terminated by signal %d", which, e.Signal)
	default:
		return fmt.Sprintf("%s exited with code %d", which, e.Code)
	}
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// ExitCode is the code the hook process should exit with: the command's
// own code, 128+signal for a killed command, 127 if it never started.
func (e *ExecutionError) ExitCode() int {
	switch e.Kind {
	case KindSpawn:
		return ExitSpawnFailure
	case KindSignal:
		return exitSignalBase + e.Signal
	default:
		return e.Code
	}
}
