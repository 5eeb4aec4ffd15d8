//go:build !linux

package notify

import (
	"context"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

// sendToast uses beeep: osascript / UserNotifications on macOS, toast
// notifications on Windows. The OS decides how long the toast stays up.
func sendToast(_ context.Context, req Request, icon string, logger zerolog.Logger) error {
	logger.Debug().Str("platform", Platform()).Dur("timeout", req.Timeout).Msg("timeout is controlled by the OS on this platform")
	beeep.AppName = req.AppName
	return beeep.Notify(req.Title, req.Message, icon)
}
