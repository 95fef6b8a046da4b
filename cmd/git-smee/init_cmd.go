package main

import (
	"github.com/spf13/cobra"

	"github.com/git-smee/git-smee/internal/config"
	"github.com/git-smee/git-smee/internal/log"
	"github.com/git-smee/git-smee/internal/output"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Create a default configuration file",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Write a commented default configuration with a single pre-commit
command to the configuration path (by default .git-smee.toml at the
repository root). An existing file is only replaced with --force.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			path, err := resolveConfig(ctx)
			if err != nil {
				return err
			}
			if err := config.Init(path, force); err != nil {
				return err
			}

			output.FromContext(ctx).Println(path)
			log.FromContext(ctx).Println("edit it, then run \"git smee install\"")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")

	return cmd
}
