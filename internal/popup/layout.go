package popup

import "strings"

// fitSize scales w x h down (never up) to fit inside maxW x maxH
func fitSize(w, h, maxW, maxH int) (int, int, float64) {
	if w <= 0 || h <= 0 {
		return maxW, maxH, 1
	}
	scale := 1.0
	if sx := float64(maxW) / float64(w); sx < scale {
		scale = sx
	}
	if sy := float64(maxH) / float64(h); sy < scale {
		scale = sy
	}
	sw := int(float64(w) * scale)
	sh := int(float64(h) * scale)
	if sw < 1 {
		sw = 1
	}
	if sh < 1 {
		sh = 1
	}
	return sw, sh, scale
}

// windowPosition places a w x h window OffsetRight/OffsetBottom away from the
// bottom-right corner of a screenW x screenH monitor, clamped on-screen.
func windowPosition(screenW, screenH, w, h int) (int, int) {
	x := screenW - w - OffsetRight
	y := screenH - h - OffsetBottom
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// wrapText breaks s into lines no wider than maxWidth according to measure.
// Explicit newlines are kept. A single word wider than maxWidth gets its own line.
func wrapText(s string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// panelRect returns the overlay panel's top edge and height for a window of
// height h holding n text lines.
func panelRect(h, n int) (top, height float64) {
	height = float64(n*LineSpacing + 2*PanelPadding)
	if minH := float64(h) * minPanelRatio; height < minH {
		height = minH
	}
	if height > float64(h) {
		height = float64(h)
	}
	return float64(h) - height, height
}
