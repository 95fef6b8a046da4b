package main

import (
	"github.com/spf13/cobra"

	"github.com/git-smee/git-smee/internal/config"
	"github.com/git-smee/git-smee/internal/hooks"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "run <hook> [-- <args>...]",
		Short:   "Run the commands configured for a hook",
		GroupID: GroupHooks,
		Args:    cobra.MinimumNArgs(1),
		Long: `Run the commands configured for a hook. Installed wrappers call this;
arguments after -- are the ones git passed to the hook and are handed to
every command as positional parameters.

The exit code is that of the first failing command, so git sees the same
result as if the command had been the hook itself.`,
		Example: `  git smee run pre-commit
  git smee run commit-msg -- .git/COMMIT_EDITMSG`,
		ValidArgsFunction: completeHookArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			name, ok := config.ParseHookName(args[0])
			if !ok {
				return &config.ConfigError{Kind: config.KindUnknownHook, Hook: args[0], Suggestion: config.SuggestHook(args[0])}
			}

			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}

			_, err = hooks.NewDefault().RunConfigured(ctx, cfg, name, args[1:])
			return err
		},
	}
}

// completeHookArg completes the hook name argument of run.
func completeHookArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	names := make([]string, len(config.AllHooks))
	for i, h := range config.AllHooks {
		names[i] = h.String()
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
