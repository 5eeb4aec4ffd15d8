package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notify/internal/config"
	clierrors "github.com/ariel-frischer/claude-notify/internal/errors"
	"github.com/ariel-frischer/claude-notify/internal/event"
	"github.com/ariel-frischer/claude-notify/internal/hookinput"
	"github.com/ariel-frischer/claude-notify/internal/logging"
	"github.com/ariel-frischer/claude-notify/internal/notify"
)

// notifyOptions are the root command flags
type notifyOptions struct {
	timeout    int
	message    string
	strategy   string
	assetsDir  string
	appName    string
	configPath string
	debug      bool
	dryRun     bool
}

// overrides returns the flags the user set explicitly, keyed like the config file
func (o *notifyOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	flags := cmd.Flags()
	out := make(map[string]interface{})
	if flags.Changed("strategy") {
		out["strategy"] = o.strategy
	}
	if flags.Changed("timeout") {
		out["timeout"] = o.timeout
	}
	if flags.Changed("app-name") {
		out["app_name"] = o.appName
	}
	if flags.Changed("assets-dir") {
		out["assets_dir"] = o.assetsDir
	}
	if flags.Changed("debug") {
		out["debug"] = o.debug
	}
	return out
}

// runNotify resolves and displays one notification
func runNotify(cmd *cobra.Command, env *environment, opts *notifyOptions, hookType event.Type) error {
	if opts.timeout < 0 {
		return clierrors.InvalidTimeout(opts.timeout)
	}
	if cmd.Flags().Changed("strategy") {
		if _, err := notify.ParseStrategy(opts.strategy); err != nil {
			return err
		}
	}

	cfg, err := config.Load(opts.configPath, opts.overrides(cmd))
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Debug)

	strategy, err := notify.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	hook, err := hookinput.ReadAvailable(env.stdin, env.probe)
	if err != nil {
		// Malformed input never changes the exit code
		logger.Warn().Msg(err.Error())
	}
	if !hook.Empty() {
		logger.Debug().Str("hook", hook.String()).Msg("hook input")
	}

	displayer := env.newDisplayer(strategy, logger)
	if opts.dryRun {
		displayer = notify.NewDryRun(cmd.OutOrStdout())
	}

	_, err = notify.NewHandlerWithDisplayer(displayer, logger).Notify(cmd.Context(), notify.ResolveOptions{
		Event:           hookType,
		MessageOverride: opts.message,
		Timeout:         cfg.Timeout,
		Hook:            hook,
		Strategy:        strategy,
		AssetsDir:       cfg.AssetsDir,
		AppName:         cfg.AppName,
		Text:            cfg.Text(hookType),
	})
	return err
}
