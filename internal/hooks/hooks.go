package hooks

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/git-smee/git-smee/internal/config"
	"github.com/git-smee/git-smee/internal/log"
	"github.com/git-smee/git-smee/internal/platform"
	"github.com/git-smee/git-smee/internal/redact"
)

// Executor runs hook definitions through a platform.Runner.
type Executor struct {
	runner platform.Runner
	shell  string
}

// New creates an Executor. shell is only used in error messages.
func New(runner platform.Runner, shell string) *Executor {
	return &Executor{runner: runner, shell: shell}
}

// NewDefault creates an Executor for the host shell with inherited streams.
func NewDefault() *Executor {
	r := platform.NewShellRunner()
	return New(r, r.Shell.String())
}

// Run executes hook and blocks until it is done. args are the positional
// arguments git passed to the hook and are forwarded to every command.
//
// Sequential entries run one at a time in declared order; the first failure
// ends the run and nothing else is started. Then all parallel entries start
// at once and every one of them is waited for, failed siblings or not.
// The returned *ExecutionError is the failed sequential command or, among
// failed parallel commands, the one declared first.
func (x *Executor) Run(ctx context.Context, hook config.Hook, args []string) error {
	l := log.FromContext(ctx)
	plan := NewPlan(hook)
	l.Debug("running hook", "hook", hook.Name, "entries", plan.Len(), "parallel", len(plan.Parallel), "args", len(args))

	for _, e := range plan.Sequential {
		if err := x.runEntry(ctx, hook.Name, e, args); err != nil {
			return err
		}
	}

	if len(plan.Parallel) == 0 {
		return nil
	}

	// One slot per worker; workers never return an error so the group
	// always waits for all of them.
	failures := make([]*ExecutionError, len(plan.Parallel))
	var g errgroup.Group
	for i, e := range plan.Parallel {
		g.Go(func() error {
			if err := x.runEntry(ctx, hook.Name, e, args); err != nil {
				failures[i] = err
			}
			return nil
		})
	}
	_ = g.Wait()

	var first *ExecutionError
	for _, f := range failures {
		if f == nil {
			continue
		}
		if first == nil {
			first = f
			continue
		}
		l.Warn("%v", f)
	}
	if first != nil {
		return first
	}
	return nil
}

func (x *Executor) runEntry(ctx context.Context, hook config.HookName, e config.Entry, args []string) *ExecutionError {
	status, err := x.runner.Run(ctx, e.Command, args)
	base := ExecutionError{
		Hook:     hook,
		Command:  redact.Command(e.Command),
		Order:    e.Order,
		Parallel: e.Parallel,
		Shell:    x.shell,
	}
	switch {
	case err != nil:
		base.Kind, base.Err = KindSpawn, err
	case status.Success():
		return nil
	case status.Signaled:
		base.Kind, base.Signal = KindSignal, status.Signal
	default:
		base.Kind, base.Code = KindExitStatus, status.Code
	}
	return &base
}

// RunConfigured looks up name in cfg and runs it. A hook that is valid but
// not declared is not an error: a wrapper left over from an older
// configuration must not block git. It reports whether anything ran.
func (x *Executor) RunConfigured(ctx context.Context, cfg *config.Config, name config.HookName, args []string) (bool, error) {
	hook, ok := cfg.Hook(name)
	if !ok || len(hook.Entries) == 0 {
		log.FromContext(ctx).Warn("hook %q is not configured in %s; run \"git smee install\" to refresh installed hooks", name, cfg.Path)
		return false, nil
	}
	return true, x.Run(ctx, hook, args)
}
