package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/git-smee/git-smee/internal/storage"
)

// Entry is one configured command of a hook.
type Entry struct {
	Command  string
	Parallel bool // may run concurrently with the other parallel entries
	Order    int  // zero-based position in the hook's declared list
}

// Hook is the ordered list of entries declared for one hook name.
type Hook struct {
	Name    HookName
	Entries []Entry
}

// Config maps declared hook names to their definitions.
// Only hooks present in the file appear in Hooks.
type Config struct {
	Path    ResolvedPath
	Hooks   map[HookName]Hook
	Ignored []string // top-level keys that are neither hooks nor confusable with one
}

// Names returns the declared hook names in githooks(5) order.
func (c *Config) Names() []HookName {
	names := make([]HookName, 0, len(c.Hooks))
	for name := range c.Hooks {
		names = append(names, name)
	}
	SortHooks(names)
	return names
}

// Hook returns the definition for name, if declared.
func (c *Config) Hook(name HookName) (Hook, bool) {
	h, ok := c.Hooks[name]
	return h, ok
}

// CommandCount returns the number of entries across all hooks.
func (c *Config) CommandCount() int {
	n := 0
	for _, h := range c.Hooks {
		n += len(h.Entries)
	}
	return n
}

// rawEntry is the on-disk shape of a hook entry.
type rawEntry struct {
	Command  string `toml:"command"`
	Parallel bool   `toml:"parallel_execution_allowed"`
}

// Load reads and validates the configuration at path.
// Any problem is fatal: there is no partial configuration.
func Load(path ResolvedPath) (*Config, error) {
	p := string(path)

	if !strings.EqualFold(filepath.Ext(p), ".toml") {
		return nil, &ConfigError{Kind: KindExtension, Path: p}
	}

	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigError{Kind: KindMissingFile, Path: p, Err: err}
		}
		return nil, &ConfigError{Kind: KindRead, Path: p, Err: err}
	}
	if info.IsDir() {
		return nil, &ConfigError{Kind: KindMissingFile, Path: p}
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return nil, &ConfigError{Kind: KindRead, Path: p, Err: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) {
			ce.Path = p
		}
		return nil, err
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes configuration text. It checks the document's shape
// (known hook names, list-of-tables values, known entry fields) but not
// the semantic rules in Validate.
func Parse(data []byte) (*Config, error) {
	var raw map[string]toml.Primitive
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, &ConfigError{Kind: KindParse, Err: err}
	}

	cfg := &Config{Hooks: make(map[HookName]Hook)}

	for _, key := range topLevelKeys(md) {
		name, ok := ParseHookName(key)
		if !ok {
			if confusableWithHook(md, key) {
				return nil, &ConfigError{Kind: KindUnknownHook, Hook: key, Suggestion: SuggestHook(key)}
			}
			cfg.Ignored = append(cfg.Ignored, key)
			continue
		}

		var entries []rawEntry
		if err := md.PrimitiveDecode(raw[key], &entries); err != nil {
			return nil, &ConfigError{Kind: KindShape, Hook: key, Err: err}
		}

		hook := Hook{Name: name, Entries: make([]Entry, 0, len(entries))}
		for i, e := range entries {
			hook.Entries = append(hook.Entries, Entry{Command: e.Command, Parallel: e.Parallel, Order: i})
		}
		cfg.Hooks[name] = hook
	}

	for _, key := range md.Undecoded() {
		if len(key) < 2 {
			continue
		}
		if _, ok := ParseHookName(key[0]); ok {
			return nil, &ConfigError{Kind: KindUnknownField, Hook: key[0], Field: key[len(key)-1]}
		}
	}

	return cfg, nil
}

// topLevelKeys returns the document's top-level keys in file order.
func topLevelKeys(md toml.MetaData) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, k := range md.Keys() {
		if len(k) == 0 || seen[k[0]] {
			continue
		}
		seen[k[0]] = true
		keys = append(keys, k[0])
	}
	return keys
}

// confusableWithHook reports whether an unrecognised top-level key could be
// a mistyped hook: anything shaped like a hook (a table or list) is, and so
// is a scalar whose name only differs from a hook by case or underscores.
func confusableWithHook(md toml.MetaData, key string) bool {
	switch md.Type(key) {
	case "Hash", "ArrayHash", "Array":
		return true
	}
	_, ok := ParseHookName(normalizeHookKey(key))
	return ok
}

// Init writes the default configuration to path.
// Without force an existing file is left untouched and an error returned.
func Init(path ResolvedPath, force bool) error {
	p := string(path)
	if !strings.EqualFold(filepath.Ext(p), ".toml") {
		return &ConfigError{Kind: KindExtension, Path: p}
	}
	if !force {
		if _, err := os.Stat(p); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", p)
		}
	}
	if err := storage.WriteFileAtomic(p, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write configuration: %w", err)
	}
	return nil
}

const defaultConfig = `# git-smee configuration
#
# Each hook is a list of commands. Commands run through sh on Linux/macOS
# and cmd.exe on Windows; arguments git passes to the hook are available
# as positional parameters ("$1", "$@").
#
# Commands without parallel_execution_allowed run first, one after the
# other, in the order written. The first failure stops the hook and its
# exit code is returned to git. Commands with
# parallel_execution_allowed = true then all start together; every one of
# them runs to completion and the hook fails if any of them failed.
#
# Run "git smee install" after editing hook names to refresh .git/hooks.

[[pre-commit]]
command = "echo 'Default pre-commit hook'"

# [[pre-commit]]
# command = "go vet ./..."
# parallel_execution_allowed = true
#
# [[commit-msg]]
# command = "grep -qE '^(feat|fix|chore|docs)' \"$1\""
#
# [[pre-push]]
# command = "go test ./..."
`
