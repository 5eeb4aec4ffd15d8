package notify

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/ariel-frischer/claude-notify/internal/config"
	clierrors "github.com/ariel-frischer/claude-notify/internal/errors"
	"github.com/ariel-frischer/claude-notify/internal/event"
	"github.com/ariel-frischer/claude-notify/internal/hookinput"
)

// Strategy selects how a Request is displayed
type Strategy string

const (
	// StrategyToast hands the request to the OS notification subsystem
	StrategyToast Strategy = "toast"
	// StrategyPopup draws a custom borderless window
	StrategyPopup Strategy = "popup"
)

// ParseStrategy checks if the given string is a valid strategy
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyToast, StrategyPopup:
		return Strategy(s), nil
	default:
		return "", clierrors.InvalidStrategy(s)
	}
}

// DefaultTimeout returns the display duration used when none is given
func (s Strategy) DefaultTimeout() time.Duration {
	if s == StrategyPopup {
		return config.DefaultPopupTimeout * time.Second
	}
	return config.DefaultToastTimeout * time.Second
}

// Request is one fully resolved notification
type Request struct {
	Event    event.Type    `json:"event"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	AppName  string        `json:"app_name"`
	Timeout  time.Duration `json:"timeout"`
	IconPath string        `json:"icon_path,omitempty"`
}

// ResolveOptions are the inputs to Resolve
type ResolveOptions struct {
	Event           event.Type
	MessageOverride string
	// Timeout in seconds; 0 selects the strategy default
	Timeout   int
	Hook      hookinput.Input
	Strategy  Strategy
	AssetsDir string
	AppName   string
	// Text optionally replaces the table title and default message
	Text config.EventText
}

// Resolve builds the Request for one invocation
func Resolve(opts ResolveOptions) (Request, error) {
	defaults, ok := event.Lookup(opts.Event)
	if !ok {
		return Request{}, clierrors.MissingConfigEntry(string(opts.Event))
	}
	if opts.Timeout < 0 {
		return Request{}, clierrors.InvalidTimeout(opts.Timeout)
	}

	strategy := opts.Strategy
	if strategy == "" {
		strategy = StrategyToast
	}

	title := firstNonBlank(opts.Text.Title, defaults.Title)
	tableMessage := firstNonBlank(opts.Text.Message, defaults.Message)

	timeout := strategy.DefaultTimeout()
	if opts.Timeout > 0 {
		timeout = time.Duration(opts.Timeout) * time.Second
	}

	asset := defaults.ToastIcon
	if strategy == StrategyPopup {
		asset = defaults.PopupImage
	}
	iconPath := ""
	if asset != "" {
		iconPath = filepath.Join(opts.AssetsDir, asset)
	}

	appName := opts.AppName
	if appName == "" {
		appName = config.DefaultAppName
	}

	return Request{
		Event:    opts.Event,
		Title:    title,
		Message:  firstNonBlank(opts.MessageOverride, opts.Hook.Message, tableMessage),
		AppName:  appName,
		Timeout:  timeout,
		IconPath: iconPath,
	}, nil
}

// firstNonBlank returns the first value that is not empty or whitespace
func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
