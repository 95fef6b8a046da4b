package main

import (
	"context"
	"os"

	"github.com/git-smee/git-smee/internal/config"
	"github.com/git-smee/git-smee/internal/git"
	"github.com/git-smee/git-smee/internal/log"
)

// repoRoot returns the repository enclosing the working directory.
func repoRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return git.FindRoot(wd)
}

// resolveConfig picks the configuration path from --config, GIT_SMEE_CONFIG
// or the repository root, in that order.
func resolveConfig(ctx context.Context) (config.ResolvedPath, error) {
	// Outside a repository only the explicit inputs can apply.
	root, _ := repoRoot()

	path, src, err := config.ResolvePath(config.PathInputs{
		Explicit: flagsFrom(ctx).config,
		Env:      os.Getenv(config.EnvVar),
		RepoRoot: root,
	})
	if err != nil {
		return "", err
	}
	log.FromContext(ctx).Debug("configuration", "path", path, "source", src)
	return path, nil
}

// loadConfig resolves and loads the configuration.
func loadConfig(ctx context.Context) (*config.Config, error) {
	path, err := resolveConfig(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if len(cfg.Ignored) > 0 {
		log.FromContext(ctx).Debug("ignored top-level keys", "keys", cfg.Ignored)
	}
	return cfg, nil
}

// hooksDir returns the directory git runs hooks from for the current repository.
func hooksDir(ctx context.Context) (string, error) {
	root, err := repoRoot()
	if err != nil {
		return "", err
	}
	dir, err := git.HooksDir(ctx, root)
	if err != nil {
		return "", err
	}
	log.FromContext(ctx).Debug("hooks directory", "path", dir)
	return dir, nil
}
