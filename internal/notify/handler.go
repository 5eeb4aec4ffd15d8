package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Handler resolves and displays one notification.
// It wraps a Displayer so the CLI and tests share the same flow.
type Handler struct {
	displayer Displayer
	logger    zerolog.Logger
}

// NewHandler creates a handler for the given strategy
func NewHandler(strategy Strategy, logger zerolog.Logger) *Handler {
	return &Handler{
		displayer: New(strategy, logger),
		logger:    logger,
	}
}

// NewHandlerWithDisplayer creates a handler with a custom displayer (for testing and --dry-run).
func NewHandlerWithDisplayer(displayer Displayer, logger zerolog.Logger) *Handler {
	return &Handler{
		displayer: displayer,
		logger:    logger,
	}
}

// Notify resolves opts and displays the result.
// The resolved request is returned even when display fails.
func (h *Handler) Notify(ctx context.Context, opts ResolveOptions) (Request, error) {
	req, err := Resolve(opts)
	if err != nil {
		return Request{}, err
	}

	h.logger.Debug().
		Str("event", string(req.Event)).
		Str("title", req.Title).
		Dur("timeout", req.Timeout).
		Str("icon", req.IconPath).
		Msg("resolved notification")

	start := time.Now()
	if err := h.displayer.Display(ctx, req); err != nil {
		return req, err
	}
	h.logger.Debug().Str("took", formatDuration(time.Since(start))).Msg("notification displayed")
	return req, nil
}

// formatDuration formats a duration for the debug log
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
