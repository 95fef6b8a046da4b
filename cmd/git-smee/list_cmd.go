package main

import (
	"github.com/spf13/cobra"

	"github.com/git-smee/git-smee/internal/install"
	"github.com/git-smee/git-smee/internal/output"
	"github.com/git-smee/git-smee/internal/ui/static"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "status"},
		Short:   "Show configured hooks and their install state",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Long: `Show every configured hook and whether its wrapper is installed.

States:
  installed  wrapper present and current
  stale      wrapper present but outdated; run "git smee install"
  missing    hook configured but not installed
  foreign    another hook occupies the location; "git smee install --force" replaces it
  orphaned   wrapper installed for a hook that is no longer configured`,
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

			statuses, err := install.Status(cfg, dir)
			if err != nil {
				return err
			}

			out := output.FromContext(ctx)
			out.Printf("%s\n\n", cfg.Path)
			out.Print(static.RenderStatus(statuses))
			return nil
		},
	}
}
