// Package exitcode maps errors to the process exit status git sees.
//
// A failing hook command's own exit code is passed through untouched, since
// that is how hooks gate git operations. Every error that stops git-smee
// before a command could decide the outcome exits with [Config].
package exitcode

import (
	"context"
	"errors"

	"github.com/git-smee/git-smee/internal/hooks"
)

const (
	OK = 0
	// Config is used for configuration, path, install and usage errors
	// (EX_CONFIG from sysexits.h).
	Config = 78
	// Interrupted is used when git-smee itself was interrupted.
	Interrupted = 130
)

// From returns the exit code and the message to print for err.
// The message is empty for nil.
func From(err error) (int, string) {
	if err == nil {
		return OK, ""
	}

	var ee *hooks.ExecutionError
	if errors.As(err, &ee) {
		return ee.ExitCode(), err.Error()
	}
	if errors.Is(err, context.Canceled) {
		return Interrupted, "interrupted"
	}
	return Config, err.Error()
}
