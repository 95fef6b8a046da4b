// Package config loads and validates the git-smee configuration and
// resolves where it lives.
//
// # Location
//
// Exactly one source is used, highest priority first, never merged:
//
//   - the --config flag
//   - the GIT_SMEE_CONFIG environment variable
//   - .git-smee.toml at the repository root
//
// A leading ~ is expanded to the home directory and the result made
// absolute before anything reads it or writes it into a hook script.
//
// # Format
//
// The file is TOML. Each top-level key is a git hook name holding a list
// of tables:
//
//	[[pre-commit]]
//	command = "gofmt -l ."
//
//	[[pre-commit]]
//	command = "go vet ./..."
//	parallel_execution_allowed = true
//
// Hook names are checked against the fixed githooks(5) set. A table or
// list under an unknown name is rejected with a suggestion ("did you mean
// \"pre-commit\"?") rather than ignored; unrelated scalar keys are
// tolerated. Entries accept only command and parallel_execution_allowed.
//
// # Validation
//
// A configuration without any command is rejected with [ErrNoHooks]; so are
// declared hooks with no entries and entries whose command is blank.
package config
