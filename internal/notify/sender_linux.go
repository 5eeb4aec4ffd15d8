//go:build linux

package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
)

const (
	notificationsService = "org.freedesktop.Notifications"
	notificationsPath    = "/org/freedesktop/Notifications"
	notifyMethod         = notificationsService + ".Notify"
)

// sendToast calls the freedesktop notification service directly so the
// timeout and app name reach the server. beeep is the fallback when the
// session bus is unreachable.
func sendToast(ctx context.Context, req Request, icon string, logger zerolog.Logger) error {
	busErr := sendDBus(ctx, req, icon)
	if busErr == nil {
		return nil
	}
	logger.Debug().Err(busErr).Msg("d-bus notification failed, falling back to beeep")

	beeep.AppName = req.AppName
	if err := beeep.Notify(req.Title, req.Message, icon); err != nil {
		return errors.Join(busErr, err)
	}
	return nil
}

func sendDBus(ctx context.Context, req Request, icon string) error {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("connecting to session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(notificationsService, notificationsPath)
	call := obj.CallWithContext(ctx, notifyMethod, 0,
		req.AppName,                       // app_name
		uint32(0),                         // replaces_id
		icon,                              // app_icon
		req.Title,                         // summary
		req.Message,                       // body
		[]string{},                        // actions
		map[string]dbus.Variant{},         // hints
		int32(req.Timeout.Milliseconds()), // expire_timeout
	)
	return call.Err
}
