// Package hooks executes the commands configured for a git hook.
//
// A hook's entries are split into two phases (see [Plan]):
//
//   - Sequential: entries without parallel_execution_allowed, run one after
//     the other in the order written. The first failure stops the hook.
//   - Parallel: the remaining entries, all started together once the
//     sequential phase succeeded. None is cancelled when a sibling fails.
//
// Every command receives the hook's positional arguments (for example the
// commit message file of commit-msg). The result is a single error whose
// [ExecutionError.ExitCode] is what the wrapper script hands back to git.
//
// There is no timeout: a command that never exits keeps the hook waiting.
package hooks
