package notify

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	clierrors "github.com/ariel-frischer/claude-notify/internal/errors"
	"github.com/ariel-frischer/claude-notify/internal/popup"
)

// popupDisplayer implements Displayer with a custom sprite window.
// The image is the whole visual, so unlike the toast a missing image fails.
type popupDisplayer struct {
	logger zerolog.Logger
}

func (d *popupDisplayer) Display(ctx context.Context, req Request) error {
	info, err := os.Stat(req.IconPath)
	if req.IconPath == "" || err != nil || info.IsDir() {
		return clierrors.IconNotFound(req.IconPath)
	}

	d.logger.Debug().Str("image", req.IconPath).Dur("timeout", req.Timeout).Msg("opening popup")
	err = popup.Show(ctx, popup.Options{
		Title:     req.Title,
		Message:   req.Message,
		ImagePath: req.IconPath,
		Timeout:   req.Timeout,
	})
	if err != nil {
		return clierrors.DisplayFailed(string(StrategyPopup), err)
	}
	return nil
}
