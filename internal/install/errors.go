package install

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/git-smee/git-smee/internal/config"
)

// ErrorKind classifies why installation failed.
type ErrorKind int

const (
	KindNoHooks ErrorKind = iota
	KindPermission
	KindUnwritable
	KindConflict
)

// InstallError is returned by Install and Uninstall.
type InstallError struct {
	Kind ErrorKind
	// Path is the hooks directory or the hook file that could not be written.
	Path string
	// Hooks lists the hooks left untouched for KindConflict.
	Hooks []config.HookName
	Err   error
}

func (e *InstallError) Error() string {
	switch e.Kind {
	case KindNoHooks:
		return fmt.Sprintf("%s: no hooks present, nothing to install", e.Path)
	case KindPermission:
		return fmt.Sprintf("permission denied writing %s", e.Path)
	case KindConflict:
		names := make([]string, len(e.Hooks))
		for i, h := range e.Hooks {
			names[i] = h.String()
		}
		return fmt.Sprintf("existing hooks not managed by git-smee were left untouched: %s (use --force to replace them)",
			strings.Join(names, ", "))
	default:
		return fmt.Sprintf("cannot write hooks to %s: %v", e.Path, e.Err)
	}
}

func (e *InstallError) Unwrap() error {
	if e.Kind == KindNoHooks {
		return config.ErrNoHooks
	}
	return e.Err
}

// fsError wraps a filesystem failure at path.
func fsError(path string, err error) *InstallError {
	kind := KindUnwritable
	if errors.Is(err, fs.ErrPermission) {
		kind = KindPermission
	}
	return &InstallError{Kind: kind, Path: path, Err: err}
}
