// stacked.go — Multi-line stacked text, each line centered independently.
package layout

import (
	"image"
	"image/color"
	"strings"
)

// StackedOptions tunes the stacked renderer. Zero values take defaults.
type StackedOptions struct {
	Shadow      bool
	ShadowStyle ShadowOptions
	LineSpacing float64 // multiplier between lines, default 1.3
	MaxFontSize int
}

// Stacked renders text split on explicit newlines as a vertically centered
// block, each line centered horizontally by its own width. No automatic
// word wrap happens; lines are exactly what the caller supplies. Blank-only
// input degenerates to a single line of the trimmed text.
func Stacked(dst *image.RGBA, text string, load FontLoader, fg color.Color, safe image.Rectangle, opts StackedOptions) error {
	maxW, maxH := safe.Dx(), safe.Dy()

	lines := SplitLines(text)
	face, _, metrics, err := FitLines(load, lines, maxW, maxH, opts.LineSpacing, FitOptions{MaxSize: opts.MaxFontSize})
	if err != nil {
		return err
	}
	if len(metrics) == 0 {
		return nil
	}

	last := metrics[len(metrics)-1]
	totalH := last.Y + last.Height
	blockY := safe.Min.Y + (maxH-totalH)/2

	for _, lm := range metrics {
		x := safe.Min.X + (maxW-lm.Width)/2
		y := blockY + lm.Y
		if opts.Shadow {
			DrawStringWithShadow(dst, face, lm.Text, x, y, fg, shadowStyle(opts.ShadowStyle))
		} else {
			drawString(dst, face, lm.Text, x, y, fg)
		}
	}
	return nil
}

// SplitLines breaks text on newlines, trimming each line and dropping
// blanks. All-blank input yields one line holding the trimmed original, so
// a layout never sees zero lines.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		lines = []string{strings.TrimSpace(text)}
	}
	return lines
}
