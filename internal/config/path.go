package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is the configuration file looked up at the repository root.
const DefaultFileName = ".git-smee.toml"

// EnvVar names the environment variable that overrides the default location.
const EnvVar = "GIT_SMEE_CONFIG"

// ResolvedPath is an absolute, ~-expanded path to a configuration file.
// It is the only form written into wrapper scripts or used for reads.
type ResolvedPath string

func (p ResolvedPath) String() string {
	return string(p)
}

// Source tells which input a ResolvedPath was chosen from.
type Source string

const (
	SourceExplicit Source = "--config"
	SourceEnv      Source = EnvVar
	SourceDefault  Source = "repository default"
)

// PathInputs are the candidate locations, highest precedence first.
// Empty strings mean "not given".
type PathInputs struct {
	Explicit string // --config flag
	Env      string // value of GIT_SMEE_CONFIG
	RepoRoot string // repository root for the default .git-smee.toml
}

// Resolver computes the configuration location.
// The zero value uses os.UserHomeDir for ~ expansion.
type Resolver struct {
	HomeDir func() (string, error)
}

// ResolvePath resolves in with a zero Resolver.
func ResolvePath(in PathInputs) (ResolvedPath, Source, error) {
	return Resolver{}.Resolve(in)
}

// Resolve picks exactly one of the inputs (explicit > env > default, no
// merging). A blank input counts as not given; any other value is used as
// written. It expands a leading ~, makes it absolute and checks that its
// parent directory exists. The file itself may be missing; that is
// reported when it is loaded.
func (r Resolver) Resolve(in PathInputs) (ResolvedPath, Source, error) {
	var raw string
	var src Source
	switch {
	case strings.TrimSpace(in.Explicit) != "":
		raw, src = in.Explicit, SourceExplicit
	case strings.TrimSpace(in.Env) != "":
		raw, src = in.Env, SourceEnv
	case in.RepoRoot != "":
		raw, src = filepath.Join(in.RepoRoot, DefaultFileName), SourceDefault
	default:
		return "", "", &PathError{Kind: KindNoSource}
	}

	expanded, err := r.expandHome(raw)
	if err != nil {
		return "", src, &PathError{Kind: KindHomeDir, Source: src, Path: raw, Err: err}
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", src, &PathError{Kind: KindAbs, Source: src, Path: expanded, Err: err}
	}

	info, err := os.Stat(filepath.Dir(abs))
	if err != nil || !info.IsDir() {
		return "", src, &PathError{Kind: KindMissingParent, Source: src, Path: abs, Err: err}
	}

	return ResolvedPath(abs), src, nil
}

// expandHome expands a leading "~" or "~/" (or "~\" on Windows) to the
// user's home directory. "~user" forms are left alone.
func (r Resolver) expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	homeDir := r.HomeDir
	if homeDir == nil {
		homeDir = os.UserHomeDir
	}
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	if home == "" {
		return "", os.ErrNotExist
	}
	return filepath.Join(home, path[1:]), nil
}
