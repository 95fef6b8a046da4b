package main

import (
	"github.com/spf13/cobra"

	"github.com/git-smee/git-smee/internal/install"
	"github.com/git-smee/git-smee/internal/log"
	"github.com/git-smee/git-smee/internal/output"
	"github.com/git-smee/git-smee/internal/ui/static"
)

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "uninstall",
		Short:   "Remove hook wrappers written by git-smee",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Long: `Remove every hook wrapper git-smee installed, whether or not the hook is
still configured. Hooks not written by git-smee are kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			dir, err := hooksDir(ctx)
			if err != nil {
				return err
			}

			report, err := install.Uninstall(ctx, dir)
			if err != nil {
				return err
			}
			if len(report.Results) == 0 {
				log.FromContext(ctx).Println("no hooks installed in", dir)
				return nil
			}
			output.FromContext(ctx).Print(static.RenderReport(report, "removed"))
			return nil
		},
	}
}
