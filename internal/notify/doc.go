// Package notify turns a hook type plus optional overrides into one visible
// notification.
//
// Resolution is pure: Resolve applies the message precedence
// (--message flag > hook input message > table default), picks the title and
// asset from the event table and fills in the strategy's default timeout.
// Display is delegated to a Displayer chosen by Strategy:
//
//   - toast: the OS notification subsystem. On Linux this is the
//     freedesktop D-Bus service, falling back to beeep; elsewhere beeep.
//     A missing icon is dropped silently.
//   - popup: a borderless always-on-top window drawn with ebiten showing the
//     event image and the message. A missing image is an error.
//
// # Usage
//
//	req, err := notify.Resolve(notify.ResolveOptions{
//		Event:    event.Stop,
//		Strategy: notify.StrategyToast,
//		AppName:  "Claude Code",
//	})
//	if err != nil {
//		return err
//	}
//	return notify.New(notify.StrategyToast, logger).Display(ctx, req)
package notify
