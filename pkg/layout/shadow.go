// shadow.go — Drop shadow compositing for text.
package layout

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
)

// ShadowOptions controls the drop shadow: a blurred, offset duplicate of
// the text drawn beneath the primary glyphs.
type ShadowOptions struct {
	Color   color.RGBA
	OffsetX int
	OffsetY int
	Blur    float64
}

// DefaultShadow returns the stock soft shadow used by all generators.
func DefaultShadow() ShadowOptions {
	return ShadowOptions{
		Color:   color.RGBA{A: 160},
		OffsetX: 8,
		OffsetY: 8,
		Blur:    6,
	}
}

// DrawStringWithShadow draws one line with its ink top-left at (x, y),
// preceded by a blurred offset copy in the shadow color.
func DrawStringWithShadow(dst *image.RGBA, face font.Face, text string, x, y int, fg color.Color, opts ShadowOptions) {
	compositeShadow(dst, opts, func(layer draw.Image) {
		drawString(layer, face, text, x+opts.OffsetX, y+opts.OffsetY, opts.Color)
	})
	drawString(dst, face, text, x, y, fg)
}

// drawBlockWithShadow draws a measured block with one shared shadow pass,
// so multi-line blocks blur once instead of per line.
func drawBlockWithShadow(dst *image.RGBA, face font.Face, b blockMetrics, x, y int, fg color.Color, opts ShadowOptions) {
	compositeShadow(dst, opts, func(layer draw.Image) {
		drawBlock(layer, face, b, x+opts.OffsetX, y+opts.OffsetY, opts.Color)
	})
	drawBlock(dst, face, b, x, y, fg)
}

// compositeShadow renders shadow content onto a transparent layer, blurs
// it, and composites the result over dst.
func compositeShadow(dst *image.RGBA, opts ShadowOptions, render func(draw.Image)) {
	layer := image.NewRGBA(dst.Bounds())
	render(layer)

	var blurred image.Image = layer
	if opts.Blur > 0 {
		blurred = imaging.Blur(layer, opts.Blur)
	}
	draw.Draw(dst, dst.Bounds(), blurred, image.Point{}, draw.Over)
}
