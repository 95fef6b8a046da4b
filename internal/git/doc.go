// Package git locates the repository and its hooks directory.
//
// Repository discovery walks the filesystem looking for a .git directory or
// file, so it works without git installed. The hooks directory is asked from
// the git CLI via [os/exec.Command] so that core.hooksPath, linked worktrees
// and submodules resolve the way git itself resolves them.
//
//   - [FindRoot]: Walk up from a directory to the working tree root
//   - [HooksDir]: Directory git reads hooks from
//   - [CheckGit]: Verify git is in PATH
package git
