package config

import (
	"errors"
	"fmt"
)

// ErrNoHooks is matched (errors.Is) by every error that reports a
// configuration without a single hook command.
var ErrNoHooks = errors.New("no hooks present")

// ConfigErrorKind classifies a ConfigError.
type ConfigErrorKind int

const (
	KindMissingFile ConfigErrorKind = iota
	KindExtension
	KindRead
	KindParse
	KindShape
	KindUnknownHook
	KindUnknownField
	KindEmptyHook
	KindEmptyCommand
	KindNoHooks
)

// ConfigError reports an invalid or unreadable configuration file.
// Its message is meant for people; Kind is for code.
type ConfigError struct {
	Kind       ConfigErrorKind
	Path       string
	Hook       string
	Entry      int // 1-based entry number within Hook, 0 if not applicable
	Field      string
	Suggestion HookName
	Err        error
}

func (e *ConfigError) Error() string {
	var msg string
	switch e.Kind {
	case KindMissingFile:
		msg = "configuration file not found"
	case KindExtension:
		msg = "configuration file must have a .toml extension"
	case KindRead:
		msg = fmt.Sprintf("failed to read configuration file: %v", e.Err)
	case KindParse:
		msg = fmt.Sprintf("failed to parse configuration file: %v", e.Err)
	case KindShape:
		msg = fmt.Sprintf("hook %q must be a list of tables like [[%s]] with a command key", e.Hook, e.Hook)
	case KindUnknownHook:
		msg = fmt.Sprintf("unknown hook %q", e.Hook)
		if e.Suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
		}
	case KindUnknownField:
		msg = fmt.Sprintf("hook %q: unknown field %q (allowed: %s)", e.Hook, e.Field, formatOptions(entryFields))
	case KindEmptyHook:
		msg = fmt.Sprintf("hook %q has no entries", e.Hook)
	case KindEmptyCommand:
		msg = fmt.Sprintf("hook %q entry #%d: command must not be empty", e.Hook, e.Entry)
	case KindNoHooks:
		msg = "no hooks present: declare at least one hook command, for example\n\n  [[pre-commit]]\n  command = \"go test ./...\""
	default:
		msg = "invalid configuration"
	}
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	if e.Kind == KindNoHooks {
		return ErrNoHooks
	}
	return e.Err
}

// PathErrorKind classifies a PathError.
type PathErrorKind int

const (
	KindNoSource PathErrorKind = iota
	KindHomeDir
	KindMissingParent
	KindAbs
)

// PathError reports a configuration location that cannot be resolved.
type PathError struct {
	Kind   PathErrorKind
	Source Source
	Path   string
	Err    error
}

func (e *PathError) Error() string {
	switch e.Kind {
	case KindNoSource:
		return "no configuration path: not inside a git repository and neither --config nor " + EnvVar + " is set"
	case KindHomeDir:
		return fmt.Sprintf("cannot expand ~ in %s (from %s): home directory unknown: %v", e.Path, e.Source, e.Err)
	case KindMissingParent:
		return fmt.Sprintf("configuration path %s (from %s): parent directory does not exist", e.Path, e.Source)
	default:
		return fmt.Sprintf("configuration path %s (from %s): %v", e.Path, e.Source, e.Err)
	}
}

func (e *PathError) Unwrap() error {
	return e.Err
}
