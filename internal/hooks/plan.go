package hooks

import "github.com/git-smee/git-smee/internal/config"

// Plan is a hook's entries split into the two execution phases.
// Each phase keeps the declared order; Entry.Order still refers to the
// position in the configuration file.
type Plan struct {
	Hook       config.HookName
	Sequential []config.Entry
	Parallel   []config.Entry
}

// NewPlan partitions hook by the parallel flag.
func NewPlan(hook config.Hook) Plan {
	p := Plan{Hook: hook.Name}
	for _, e := range hook.Entries {
		if e.Parallel {
			p.Parallel = append(p.Parallel, e)
		} else {
			p.Sequential = append(p.Sequential, e)
		}
	}
	return p
}

// Len returns the number of entries in both phases.
func (p Plan) Len() int {
	return len(p.Sequential) + len(p.Parallel)
}
