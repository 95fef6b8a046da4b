package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/git-smee/git-smee/internal/exitcode"
	"github.com/git-smee/git-smee/internal/git"
	"github.com/git-smee/git-smee/internal/log"
	"github.com/git-smee/git-smee/internal/output"
)

// Command group IDs for organizing help output
const (
	GroupHooks  = "hooks"
	GroupConfig = "config"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	config  string
	verbose bool
	quiet   bool
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "git-smee",
		Short: "Git hooks from a declarative configuration file",
		Long: `git-smee installs git hooks that run the commands listed in a
.git-smee.toml file at the repository root.

Commands of a hook run one after the other in the order written. Commands
marked parallel_execution_allowed run together once the others succeeded.
The hook fails with the exit code of the first failing command.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}
			if flags.verbose && flags.quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}
			ctx := log.WithLogger(cmd.Context(), log.New(stderr, flags.verbose, flags.quiet))
			cmd.SetContext(withFlags(ctx, flags))

			// run is started by git and must not depend on anything but
			// the configuration file.
			if cmd.Name() == "run" || cmd.Name() == "init" {
				return nil
			}
			return git.CheckGit()
		},
	}

	root.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file (default: $"+"GIT_SMEE_CONFIG or <repo>/.git-smee.toml)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show commands being executed")
	root.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress all log output")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.Version = versionString()
	root.SetVersionTemplate("{{.Version}}\n")
	root.SetErr(stderr)

	root.AddGroup(
		&cobra.Group{ID: GroupHooks, Title: "Hook Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	root.AddCommand(newInstallCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newUninstallCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newInitCmd())

	return root
}

// Execute runs the command line and exits with the resulting code.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// execute runs args and returns the process exit code. Errors are printed
// to stderr.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)

	ctx = output.WithPrinter(ctx, output.Styled(stdout, os.Environ()))
	err := root.ExecuteContext(ctx)

	code, msg := exitcode.From(err)
	if msg != "" {
		fmt.Fprintf(stderr, "git-smee: %s\n", msg)
	}
	return code
}

type flagsKey struct{}

func withFlags(ctx context.Context, f *globalFlags) context.Context {
	return context.WithValue(ctx, flagsKey{}, f)
}

func flagsFrom(ctx context.Context) *globalFlags {
	if f, ok := ctx.Value(flagsKey{}).(*globalFlags); ok {
		return f
	}
	return &globalFlags{}
}
