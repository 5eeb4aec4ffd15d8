//go:build nopopup

package popup

import (
	"context"
	"image"
)

// Available reports whether this build can open popup windows
const Available = false

func run(_ context.Context, _ Options, _ image.Image) error {
	return ErrUnavailable
}
