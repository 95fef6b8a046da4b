package config

import (
	"fmt"
	"strings"
)

// entryFields are the keys allowed inside a hook entry.
var entryFields = []string{"command", "parallel_execution_allowed"}

// Validate checks the invariants a loaded configuration must hold:
// at least one command overall, no declared hook without entries and
// no entry with a blank command. Errors name the hook and the 1-based
// entry so they can be found in the file.
func (c *Config) Validate() error {
	if c.CommandCount() == 0 {
		return &ConfigError{Kind: KindNoHooks, Path: string(c.Path)}
	}
	for _, name := range c.Names() {
		hook := c.Hooks[name]
		if len(hook.Entries) == 0 {
			return &ConfigError{Kind: KindEmptyHook, Path: string(c.Path), Hook: string(name)}
		}
		for i, e := range hook.Entries {
			if strings.TrimSpace(e.Command) == "" {
				return &ConfigError{Kind: KindEmptyCommand, Path: string(c.Path), Hook: string(name), Entry: i + 1}
			}
		}
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
