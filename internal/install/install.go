package install

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/git-smee/git-smee/internal/config"
	"github.com/git-smee/git-smee/internal/log"
	"github.com/git-smee/git-smee/internal/platform"
	"github.com/git-smee/git-smee/internal/storage"
)

// Outcome is what happened to one hook location.
type Outcome int

const (
	Created Outcome = iota
	Updated
	Unchanged
	Conflict
	Replaced
	Removed
	Kept
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Unchanged:
		return "unchanged"
	case Conflict:
		return "conflict"
	case Replaced:
		return "replaced"
	case Removed:
		return "removed"
	default:
		return "kept"
	}
}

// Result is the outcome for one hook.
type Result struct {
	Hook    config.HookName
	Path    string
	Outcome Outcome
}

// Report lists results in hook order.
type Report struct {
	Dir     string
	Results []Result
}

// Count returns how many results have outcome o.
func (r Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Install writes a wrapper into dir for every hook cfg declares.
//
// A managed wrapper is refreshed in place; one whose content already matches
// is not rewritten. A foreign file is left alone and reported as a conflict
// unless force is set. Conflicts do not stop the other hooks from being
// installed, but they make Install return a KindConflict error alongside the
// report.
func Install(ctx context.Context, cfg *config.Config, dir string, force bool) (Report, error) {
	l := log.FromContext(ctx)
	report := Report{Dir: dir}

	if cfg.CommandCount() == 0 {
		return report, &InstallError{Kind: KindNoHooks, Path: string(cfg.Path)}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return report, fsError(dir, err)
	}

	var conflicts []config.HookName
	for _, name := range cfg.Names() {
		hook, _ := cfg.Hook(name)
		if len(hook.Entries) == 0 {
			continue
		}
		path := filepath.Join(dir, name.String())
		outcome, err := installOne(path, Script(cfg.Path, name), force)
		if err != nil {
			return report, err
		}
		l.Debug("hook installed", "hook", name, "path", path, "outcome", outcome)
		report.Results = append(report.Results, Result{Hook: name, Path: path, Outcome: outcome})
		if outcome == Conflict {
			conflicts = append(conflicts, name)
		}
	}

	if len(conflicts) > 0 {
		return report, &InstallError{Kind: KindConflict, Path: dir, Hooks: conflicts}
	}
	return report, nil
}

func installOne(path string, script []byte, force bool) (Outcome, error) {
	existing, owner, err := read(path)
	if err != nil {
		return 0, err
	}

	var outcome Outcome
	switch owner {
	case Absent:
		outcome = Created
	case Managed:
		if bytes.Equal(existing, script) {
			// Content is current; only repair a lost execute bit.
			if !platform.IsExecutable(path) {
				if err := platform.MakeExecutable(path); err != nil {
					return 0, fsError(path, err)
				}
			}
			return Unchanged, nil
		}
		outcome = Updated
	case Foreign:
		if !force {
			return Conflict, nil
		}
		outcome = Replaced
	}

	if err := storage.WriteFileAtomic(path, script, 0o755); err != nil {
		return 0, fsError(path, err)
	}
	return outcome, nil
}

// read returns the content at path and who owns it.
func read(path string) ([]byte, Ownership, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, Absent, nil
	}
	if err != nil {
		return nil, Absent, fsError(path, err)
	}
	return content, Classify(content), nil
}

// Uninstall removes every managed wrapper from dir. Foreign hooks, and
// hooks that cannot be read, are kept and reported. Hooks that do not exist
// are not reported.
func Uninstall(ctx context.Context, dir string) (Report, error) {
	l := log.FromContext(ctx)
	report := Report{Dir: dir}

	for _, name := range config.AllHooks {
		path := filepath.Join(dir, name.String())
		_, owner, err := read(path)
		if err != nil {
			l.Warn("keeping %s: %v", path, err)
			report.Results = append(report.Results, Result{Hook: name, Path: path, Outcome: Kept})
			continue
		}
		switch owner {
		case Absent:
			continue
		case Managed:
			if err := os.Remove(path); err != nil {
				return report, fsError(path, err)
			}
			l.Debug("hook removed", "hook", name, "path", path)
			report.Results = append(report.Results, Result{Hook: name, Path: path, Outcome: Removed})
		case Foreign:
			report.Results = append(report.Results, Result{Hook: name, Path: path, Outcome: Kept})
		}
	}
	return report, nil
}
