package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	clierrors "github.com/ariel-frischer/claude-notify/internal/errors"
	"github.com/ariel-frischer/claude-notify/internal/progress"
	"github.com/ariel-frischer/claude-notify/internal/selftest"
)

type selftestOptions struct {
	dryRun   bool
	strategy string
	binary   string
}

func newSelftestCmd(env *environment) *cobra.Command {
	opts := &selftestOptions{}

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run every hook type once against canned inputs",
		Long: `Run every hook type once against canned inputs.

Re-executes this binary five times with the payloads Claude Code sends and
reports stdout, stderr and the exit code of each run. Use --dry-run to check
resolution without showing anything on screen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelftest(cmd, env, opts, newSelftestRunner)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Forward --dry-run to every case")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "Forward --strategy to every case")
	cmd.Flags().StringVar(&opts.binary, "binary", "", "Binary to run (default: this executable)")

	return cmd
}

func newSelftestRunner(binary string, extraArgs []string) selftest.Runner {
	return selftest.ExecRunner{Binary: binary, ExtraArgs: extraArgs}
}

func runSelftest(cmd *cobra.Command, env *environment, opts *selftestOptions,
	newRunner func(binary string, extraArgs []string) selftest.Runner,
) error {
	binary := opts.binary
	if binary == "" {
		exe, err := env.executable()
		if err != nil {
			return clierrors.WrapWithMessage(err, clierrors.Runtime,
				"could not determine the claude-notify executable path", "pass --binary explicitly")
		}
		binary = exe
	}

	var extra []string
	if opts.dryRun {
		extra = append(extra, "--dry-run")
	}
	if opts.strategy != "" {
		extra = append(extra, "--strategy", opts.strategy)
	}

	out := cmd.OutOrStdout()
	caps := progress.TerminalCapabilities{}
	if f, ok := cmd.ErrOrStderr().(*os.File); ok {
		caps = progress.DetectTerminalCapabilities(f)
	}
	display := progress.NewDisplay(caps, out, cmd.ErrOrStderr())

	fmt.Fprintln(out, "Claude Code Notification Test Suite")
	fmt.Fprintln(out)

	cases := selftest.Cases()
	results := selftest.New(newRunner(binary, extra), display, out).Run(cmd.Context(), cases)

	failed := selftest.Failed(results)
	if failed > 0 {
		return clierrors.NewRuntimeError(fmt.Sprintf("%d of %d self-test cases failed", failed, len(cases)))
	}
	fmt.Fprintf(out, "All %d cases passed\n", len(cases))
	return nil
}
