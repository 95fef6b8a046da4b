// Package cmd provides helpers for executing external commands with proper error handling.
//
// It wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, and logs each invocation through the context logger when
// verbose mode is on.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, repoDir, "git", "status"); err != nil {
//	    // err contains stderr output if available
//	    return fmt.Errorf("git failed: %w", err)
//	}
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "rev-parse", "--git-path", "hooks")
//
// These helpers are for git-smee's own plumbing (talking to git). Commands
// configured by the user run through [github.com/git-smee/git-smee/internal/platform]
// instead, with inherited standard streams.
package cmd
