// centered.go — Auto-sized single-block centered text.
package layout

import (
	"image"
	"image/color"
)

// CenteredOptions tunes the centered renderer. Zero values take defaults.
type CenteredOptions struct {
	Shadow      bool
	ShadowStyle ShadowOptions // zero value means DefaultShadow
	MaxFontSize int
}

// Centered renders text as one block centered horizontally and vertically
// within safe, auto-sized to the largest fitting font. Embedded newlines
// stay part of the block and are measured with it. Geometric edge cases
// (oversized text, tiny safe zones) degrade to best-effort placement; only
// loader failures return an error.
func Centered(dst *image.RGBA, text string, load FontLoader, fg color.Color, safe image.Rectangle, opts CenteredOptions) error {
	maxW, maxH := safe.Dx(), safe.Dy()

	face, _, err := FitSize(load, text, maxW, maxH, FitOptions{MaxSize: opts.MaxFontSize})
	if err != nil {
		return err
	}

	b := measureBlock(face, text)
	x := safe.Min.X + (maxW-b.Width)/2
	y := safe.Min.Y + (maxH-b.Height)/2

	if opts.Shadow {
		drawBlockWithShadow(dst, face, b, x, y, fg, shadowStyle(opts.ShadowStyle))
		return nil
	}
	drawBlock(dst, face, b, x, y, fg)
	return nil
}

// shadowStyle substitutes the default shadow for an unset style.
func shadowStyle(s ShadowOptions) ShadowOptions {
	if s == (ShadowOptions{}) {
		return DefaultShadow()
	}
	return s
}
