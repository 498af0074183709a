// Package layout places auto-sized text within a product safe zone.
//
// Three strategies are provided: Centered (one block), Stacked (per-line
// centering), and Arced (per-character placement along a circular arc).
// All of them mutate a caller-supplied RGBA canvas in place and obtain
// fonts through a size-indexed loader callback, so the package itself
// performs no I/O.
package layout

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FontLoader returns a font face at the requested pixel size. Loader
// failures (unknown font, unreadable file) propagate out of the layout
// renderers unchanged.
type FontLoader func(size int) (font.Face, error)

// Metrics describes the ink bounding box of a single line of text.
// OriginX/OriginY give the box's top-left relative to the baseline origin;
// fonts with ink above the baseline report a negative OriginY, and some
// report a non-zero OriginX. Draw positions must subtract the origin or
// the glyphs land shifted from where the box was centered.
type Metrics struct {
	Width   int
	Height  int
	OriginX int
	OriginY int
}

// Measure returns the ink metrics of one line at the given face.
func Measure(face font.Face, text string) Metrics {
	bounds, _ := font.BoundString(face, text)
	return Metrics{
		Width:   (bounds.Max.X - bounds.Min.X).Ceil(),
		Height:  (bounds.Max.Y - bounds.Min.Y).Ceil(),
		OriginX: bounds.Min.X.Floor(),
		OriginY: bounds.Min.Y.Floor(),
	}
}

// drawString draws one line so its ink box's top-left lands at (x, y).
func drawString(dst draw.Image, face font.Face, text string, x, y int, c color.Color) {
	m := Measure(face, text)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x-m.OriginX, y-m.OriginY),
	}
	d.DrawString(text)
}

// blockGap is the fixed pixel gap between embedded-newline lines when a
// text is measured and drawn as a single block.
const blockGap = 4

// blockMetrics describes a text block: one or more lines separated by
// explicit newlines, stacked left-aligned with a fixed gap.
type blockMetrics struct {
	Width  int
	Height int
	lines  []string
	each   []Metrics
}

// measureBlock measures text as one bounding box. Embedded newlines split
// the text into left-aligned stacked lines; the block's box is their union.
func measureBlock(face font.Face, text string) blockMetrics {
	lines := strings.Split(text, "\n")
	b := blockMetrics{lines: lines, each: make([]Metrics, len(lines))}
	for i, line := range lines {
		m := Measure(face, line)
		b.each[i] = m
		if m.Width > b.Width {
			b.Width = m.Width
		}
		b.Height += m.Height
		if i < len(lines)-1 {
			b.Height += blockGap
		}
	}
	return b
}

// drawBlock draws a measured block with its top-left ink corner at (x, y).
func drawBlock(dst draw.Image, face font.Face, b blockMetrics, x, y int, c color.Color) {
	for i, line := range b.lines {
		drawString(dst, face, line, x, y, c)
		y += b.each[i].Height + blockGap
	}
}
