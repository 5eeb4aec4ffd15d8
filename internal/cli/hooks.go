package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notify/internal/claude"
	clierrors "github.com/ariel-frischer/claude-notify/internal/errors"
	"github.com/ariel-frischer/claude-notify/internal/notify"
)

type hooksOptions struct {
	write    string
	check    string
	binary   string
	strategy string
}

func newHooksCmd(env *environment) *cobra.Command {
	opts := &hooksOptions{}

	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Print or install the Claude Code hooks that run claude-notify",
		Long: `Print or install the Claude Code hooks that run claude-notify.

Without flags the settings.json hooks snippet is printed to stdout. With
--write the hooks are merged into <dir>/.claude/settings.local.json; other
keys in that file are left untouched and existing hooks are not duplicated.`,
		Example: `  # Print the snippet
  claude-notify hooks

  # Install into the current project, using the popup
  claude-notify hooks --write . --strategy popup

  # Check whether a project already has the hooks
  claude-notify hooks --check .`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHooks(cmd, env, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.write, "write", "w", "", "Merge the hooks into <dir>/.claude/settings.local.json")
	cmd.Flags().StringVar(&opts.check, "check", "", "Report whether <dir>/.claude/settings.local.json has the hooks")
	cmd.Flags().StringVar(&opts.binary, "binary", "", "Command the hooks run (default: this executable)")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "Pass --strategy to every hook (toast or popup)")
	cmd.MarkFlagsMutuallyExclusive("write", "check")

	return cmd
}

func runHooks(cmd *cobra.Command, env *environment, opts *hooksOptions) error {
	hooks, err := opts.hooks(env)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch {
	case opts.check != "":
		settings, err := claude.Load(opts.check)
		if err != nil {
			return clierrors.Wrap(err, clierrors.Configuration)
		}
		status := settings.Check(hooks)
		fmt.Fprintf(out, "%s: %s\n", settings.FilePath(), status)
		if status != claude.StatusConfigured {
			return clierrors.NewConfigError(fmt.Sprintf("hooks not installed in %s", settings.FilePath()),
				fmt.Sprintf("run: claude-notify hooks --write %s", opts.check))
		}
		return nil

	case opts.write != "":
		settings, err := claude.Load(opts.write)
		if err != nil {
			return clierrors.Wrap(err, clierrors.Configuration)
		}
		added := settings.AddHooks(hooks)
		if len(added) == 0 {
			fmt.Fprintf(out, "Hooks already installed in %s\n", settings.FilePath())
			return nil
		}
		if err := settings.Save(); err != nil {
			return clierrors.Wrap(err, clierrors.Runtime)
		}
		for _, h := range added {
			fmt.Fprintf(out, "Added %s hook: %s\n", hookLabel(h), h.Command)
		}
		fmt.Fprintf(out, "Updated %s\n", settings.FilePath())
		return nil

	default:
		data, err := json.MarshalIndent(claude.Snippet(hooks), "", "  ")
		if err != nil {
			return clierrors.Wrap(err, clierrors.Runtime)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
}

// hooks builds the hook list for the configured binary and flags
func (o *hooksOptions) hooks(env *environment) ([]claude.Hook, error) {
	binary := o.binary
	if binary == "" {
		exe, err := env.executable()
		if err != nil {
			return nil, clierrors.WrapWithMessage(err, clierrors.Runtime,
				"could not determine the claude-notify executable path", "pass --binary explicitly")
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		binary = exe
	}

	var extra []string
	if o.strategy != "" {
		if _, err := notify.ParseStrategy(o.strategy); err != nil {
			return nil, err
		}
		extra = append(extra, "--strategy", o.strategy)
	}
	return claude.NotifierHooks(binary, extra...), nil
}

func hookLabel(h claude.Hook) string {
	if h.Matcher == "" {
		return h.Event
	}
	return h.Event + "/" + h.Matcher
}
