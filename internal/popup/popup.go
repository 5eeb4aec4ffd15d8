// Package popup shows a transient borderless sprite window: the event image
// as background with the message centered in a translucent panel over its
// lower part.
//
// The window is always on top, sits a fixed offset from the bottom-right
// corner of the primary monitor and closes on a left click, when the timeout
// elapses or when the context is done, whichever comes first.
//
// Builds tagged nopopup replace the ebiten window with a stub so a cgo-free
// toast-only binary can be produced.
package popup

import (
	"context"
	"errors"
	"time"
)

// Layout constants in device-independent pixels
const (
	MaxWidth      = 360
	MaxHeight     = 360
	OffsetRight   = 24
	OffsetBottom  = 64
	PanelPadding  = 12
	FontSize      = 16
	LineSpacing   = 22
	minPanelRatio = 0.3
)

// ErrUnavailable is returned by builds without popup support
var ErrUnavailable = errors.New("popup support not compiled into this binary (built with nopopup)")

// Options describe one popup
type Options struct {
	Title     string
	Message   string
	ImagePath string
	Timeout   time.Duration
}

// Show opens the popup and blocks until it is dismissed.
// The image must exist and decode; there is no image-less fallback.
func Show(ctx context.Context, opts Options) error {
	if opts.Timeout <= 0 {
		return errors.New("popup timeout must be positive")
	}
	img, err := LoadImage(opts.ImagePath)
	if err != nil {
		return err
	}
	return run(ctx, opts, img)
}
