package notify

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"

	clierrors "github.com/ariel-frischer/claude-notify/internal/errors"
)

// Displayer shows one resolved Request.
// Display blocks until the notification has been handed off (toast) or
// dismissed (popup).
type Displayer interface {
	Display(ctx context.Context, req Request) error
}

// New returns the Displayer for strategy
func New(strategy Strategy, logger zerolog.Logger) Displayer {
	switch strategy {
	case StrategyPopup:
		return &popupDisplayer{logger: logger}
	default:
		return &toastDisplayer{logger: logger, send: sendToast}
	}
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

// toastFunc hands a request and its resolved icon ("" for none) to the OS
type toastFunc func(ctx context.Context, req Request, icon string, logger zerolog.Logger) error

// toastDisplayer implements Displayer with the OS notification subsystem
type toastDisplayer struct {
	logger zerolog.Logger
	send   toastFunc
}

// Display sends the toast. A missing icon is dropped, not reported as a failure.
func (d *toastDisplayer) Display(ctx context.Context, req Request) error {
	icon := resolveIcon(req.IconPath)
	if req.IconPath != "" && icon == "" {
		d.logger.Debug().Str("icon", req.IconPath).Msg("icon not found, sending without icon")
	}

	if err := d.send(ctx, req, icon, d.logger); err != nil {
		return clierrors.DisplayFailed(string(StrategyToast), err)
	}
	return nil
}

// resolveIcon returns the absolute icon path, or "" when it does not name a file
func resolveIcon(path string) string {
	if path == "" {
		return ""
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// dryRunDisplayer writes the request as JSON instead of displaying it
type dryRunDisplayer struct {
	w io.Writer
}

// NewDryRun returns a Displayer that prints each request to w
func NewDryRun(w io.Writer) Displayer {
	return &dryRunDisplayer{w: w}
}

func (d *dryRunDisplayer) Display(_ context.Context, req Request) error {
	enc := json.NewEncoder(d.w)
	enc.SetIndent("", "  ")
	return enc.Encode(dryRunRequest{
		Event:          string(req.Event),
		Title:          req.Title,
		Message:        req.Message,
		AppName:        req.AppName,
		TimeoutSeconds: int(req.Timeout.Seconds()),
		IconPath:       req.IconPath,
	})
}

// dryRunRequest is the JSON shape printed by --dry-run
type dryRunRequest struct {
	Event          string `json:"event"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	AppName        string `json:"app_name"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	IconPath       string `json:"icon_path,omitempty"`
}
