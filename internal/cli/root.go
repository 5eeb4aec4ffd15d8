// Package cli provides the Cobra-based entry point for claude-notify.
// The root command displays one notification for a Claude Code hook; the
// version, hooks and selftest subcommands are helpers around it.
package cli

import (
	"context"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	clierrors "github.com/ariel-frischer/claude-notify/internal/errors"
	"github.com/ariel-frischer/claude-notify/internal/event"
	"github.com/ariel-frischer/claude-notify/internal/notify"
	"github.com/ariel-frischer/claude-notify/internal/stdin"
)

// environment holds the process resources commands touch, so tests can
// substitute them.
type environment struct {
	stdin        *os.File
	probe        stdin.Probe
	newDisplayer func(strategy notify.Strategy, logger zerolog.Logger) notify.Displayer
	executable   func() (string, error)
	lookPath     func(file string) (string, error)
}

func defaultEnvironment() *environment {
	return &environment{
		stdin:        os.Stdin,
		probe:        stdin.Default(),
		newDisplayer: notify.New,
		executable:   os.Executable,
		lookPath:     exec.LookPath,
	}
}

func newRootCmd(env *environment) *cobra.Command {
	opts := &notifyOptions{}

	cmd := &cobra.Command{
		Use:   "claude-notify <hook_type>",
		Short: "Desktop notifications for Claude Code hooks",
		Long: `Desktop notifications for Claude Code hooks

Shows a native toast, or a borderless image popup, when Claude Code asks for
permission, goes idle or stops. An optional JSON hook payload on stdin may
supply the message; --message overrides it.

Hook types: ` + strings.Join(event.Names(), ", "),
		Example: `  # Native toast with the default message
  claude-notify stop

  # Message from the hook payload, shown for 5 seconds
  echo '{"message":"hi"}' | claude-notify idle_prompt --timeout 5

  # Image popup, dismissed on click
  claude-notify permission_prompt --strategy popup

  # Print the settings.json hooks snippet
  claude-notify hooks`,
		Args:          validateHookType,
		ValidArgs:     event.Names(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotify(cmd, env, opts, event.Type(args[0]))
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), c.UseLine())
	})

	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to an optional JSON config file")

	cmd.Flags().IntVarP(&opts.timeout, "timeout", "t", 0, "Display duration in seconds (default 10 for toast, 60 for popup)")
	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "Message text, overrides the hook payload")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "Display strategy: toast or popup (default toast)")
	cmd.Flags().StringVar(&opts.assetsDir, "assets-dir", "", "Directory holding the icons and popup images (default <executable dir>/images)")
	cmd.Flags().StringVar(&opts.appName, "app-name", "", `Application name reported to the OS (default "Claude Code")`)
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the resolved notification as JSON instead of displaying it")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newHooksCmd(env))
	cmd.AddCommand(newSelftestCmd(env))
	cmd.AddCommand(newDoctorCmd(env))

	return cmd
}

// validateHookType requires exactly one argument from the closed set
func validateHookType(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return clierrors.NewArgumentErrorWithUsage("too many arguments: "+strings.Join(args[1:], " "),
			"claude-notify <hook_type> [--timeout seconds] [--message text]")
	}
	got := ""
	if len(args) == 1 {
		got = args[0]
	}
	_, err := event.Parse(got)
	return err
}

// Execute runs claude-notify with the process arguments and returns its exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, newRootCmd(defaultEnvironment()), os.Args[1:], nil, nil)
}

// run executes cmd and prints any error to stderr.
// nil writers keep the command defaults.
func run(ctx context.Context, cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	cmd.SetArgs(args)
	if stdout != nil {
		cmd.SetOut(stdout)
	}
	if stderr != nil {
		cmd.SetErr(stderr)
	}

	if err := cmd.ExecuteContext(ctx); err != nil {
		clierrors.FprintError(cmd.ErrOrStderr(), err)
		return ExitCode(err)
	}
	return ExitSuccess
}
