package main

import (
	"github.com/spf13/cobra"

	"github.com/git-smee/git-smee/internal/install"
	"github.com/git-smee/git-smee/internal/output"
	"github.com/git-smee/git-smee/internal/ui/static"
)

func newInstallCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "install",
		Short:   "Install hook wrappers for every configured hook",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Long: `Write a wrapper script into the repository's hooks directory for every
hook declared in the configuration.

Wrappers written by git-smee are refreshed in place. Existing hooks that
were not written by git-smee are left untouched and reported as conflicts;
--force replaces them.`,
		Example: `  git smee install
  git smee install --force
  git smee install -c ~/dotfiles/hooks.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			dir, err := hooksDir(ctx)
			if err != nil {
				return err
			}

			report, err := install.Install(ctx, cfg, dir, force)
			if len(report.Results) > 0 {
				output.FromContext(ctx).Print(static.RenderReport(report, "installed"))
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace existing hooks not managed by git-smee")

	return cmd
}
