package install

import (
	"bytes"
	"path/filepath"

	"github.com/git-smee/git-smee/internal/config"
	"github.com/git-smee/git-smee/internal/platform"
)

// State describes one hook location compared with the configuration.
type State int

const (
	// Installed: configured, managed and current.
	Installed State = iota
	// Stale: configured and managed but the wrapper differs from what
	// install would write now, or it lost its execute bit.
	Stale
	// Missing: configured but nothing is installed.
	Missing
	// Blocked: configured but a foreign hook occupies the location.
	Blocked
	// Orphaned: a managed wrapper for a hook the configuration does not declare.
	Orphaned
)

func (s State) String() string {
	switch s {
	case Installed:
		return "installed"
	case Stale:
		return "stale"
	case Missing:
		return "missing"
	case Blocked:
		return "foreign"
	default:
		return "orphaned"
	}
}

// HookStatus is the state of one hook.
type HookStatus struct {
	Hook       config.HookName
	Path       string
	State      State
	Configured bool
	Commands   int
}

// Status inspects dir for every hook cfg declares and for managed wrappers
// of undeclared hooks. Results are in canonical hook order. Foreign hooks
// for undeclared names are none of git-smee's business and are skipped.
func Status(cfg *config.Config, dir string) ([]HookStatus, error) {
	var out []HookStatus
	for _, name := range config.AllHooks {
		hook, configured := cfg.Hook(name)
		configured = configured && len(hook.Entries) > 0
		path := filepath.Join(dir, name.String())

		content, owner, err := read(path)
		if err != nil {
			return nil, err
		}

		st := HookStatus{Hook: name, Path: path, Configured: configured, Commands: len(hook.Entries)}
		switch {
		case !configured && owner == Managed:
			st.State = Orphaned
		case !configured:
			continue
		case owner == Absent:
			st.State = Missing
		case owner == Foreign:
			st.State = Blocked
		case !bytes.Equal(content, Script(cfg.Path, name)) || !platform.IsExecutable(path):
			st.State = Stale
		default:
			st.State = Installed
		}
		out = append(out, st)
	}
	return out, nil
}
