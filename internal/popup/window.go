//go:build !nopopup

package popup

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Available reports whether this build can open popup windows
const Available = true

var panelColor = color.NRGBA{R: 0, G: 0, B: 0, A: 170}

// window is the ebiten.Game backing one popup
type window struct {
	ctx      context.Context
	deadline time.Time

	background *ebiten.Image
	scale      float64
	width      int
	height     int

	face  *text.GoTextFace
	lines []string
}

func run(ctx context.Context, opts Options, img image.Image) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	face := &text.GoTextFace{Source: src, Size: FontSize}

	bounds := img.Bounds()
	w, h, scale := fitSize(bounds.Dx(), bounds.Dy(), MaxWidth, MaxHeight)

	measure := func(s string) float64 {
		lw, _ := text.Measure(s, face, LineSpacing)
		return lw
	}

	win := &window{
		ctx:        ctx,
		deadline:   time.Now().Add(opts.Timeout),
		background: ebiten.NewImageFromImage(img),
		scale:      scale,
		width:      w,
		height:     h,
		face:       face,
		lines:      wrapText(opts.Message, float64(w-2*PanelPadding), measure),
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(w, h)
	if sw, sh := ebiten.Monitor().Size(); sw > 0 && sh > 0 {
		ebiten.SetWindowPosition(windowPosition(sw, sh, w, h))
	}

	// RunGame owns the only window; it is torn down on every return path.
	if err := ebiten.RunGame(win); err != nil {
		return fmt.Errorf("popup window: %w", err)
	}
	return nil
}

// Update ends the game loop on a left click, the deadline or ctx cancellation.
func (win *window) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ebiten.Termination
	}
	if !time.Now().Before(win.deadline) {
		return ebiten.Termination
	}
	select {
	case <-win.ctx.Done():
		return ebiten.Termination
	default:
	}
	return nil
}

func (win *window) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(win.scale, win.scale)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(win.background, op)

	top, height := panelRect(win.height, len(win.lines))
	vector.DrawFilledRect(screen, 0, float32(top), float32(win.width), float32(height), panelColor, false)

	textHeight := float64(len(win.lines) * LineSpacing)
	y := top + (height-textHeight)/2
	for _, line := range win.lines {
		dop := &text.DrawOptions{}
		dop.GeoM.Translate(float64(win.width)/2, y)
		dop.PrimaryAlign = text.AlignCenter
		dop.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, win.face, dop)
		y += LineSpacing
	}
}

func (win *window) Layout(_, _ int) (int, int) {
	return win.width, win.height
}
