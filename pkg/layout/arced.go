// arced.go — Curved text: each character placed along a circular arc.
package layout

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
)

const (
	// DefaultArcDegrees is the arc span when none is given: a half circle.
	DefaultArcDegrees = 180
	// DefaultArcOffset is the arc's center angle in degrees; -90 puts the
	// arc's midpoint at the top of the circle.
	DefaultArcOffset = -90

	// arcRadiusRatio scales the arc radius from the safe zone's smaller
	// dimension, keeping curved text inside the zone at any aspect ratio.
	arcRadiusRatio = 0.38

	// glyphPad is the transparent border around each glyph tile so
	// rotation never clips ink.
	glyphPad = 5
)

// ArcedOptions tunes the arced renderer. Construct with
// DefaultArcedOptions and override fields as needed.
type ArcedOptions struct {
	Degrees     float64 // arc span in degrees
	Offset      float64 // arc center angle in degrees
	FontSize    int     // 0 selects the size heuristic
	Shadow      bool
	ShadowStyle ShadowOptions
}

// DefaultArcedOptions returns the stock half-circle arc, centered at the
// top of the circle.
func DefaultArcedOptions() ArcedOptions {
	return ArcedOptions{Degrees: DefaultArcDegrees, Offset: DefaultArcOffset}
}

// GlyphPlacement is one character's computed position on the arc.
type GlyphPlacement struct {
	Rune     rune
	AngleDeg float64 // placement angle on the circle, degrees
	SliceDeg float64 // angular slice consumed by this character
	X, Y     float64 // arc position of the character's center
}

// Arced renders each character of text individually along a circular arc
// centered in safe. The arc span is distributed across characters
// proportionally to their measured widths, so wide glyphs take wider
// angular slices and visual spacing stays even. Each character is drawn to
// a padded transparent tile, rotated so its baseline is tangent to the
// arc, and composited at its arc position. All-whitespace text has zero
// measured width and renders nothing.
//
// The font size is not fit-searched: per-glyph rotation makes exact
// bounding-box fitting impractical, so an unset FontSize falls back to
// max(40, min(w,h)/8).
func Arced(dst *image.RGBA, text string, load FontLoader, fg color.Color, safe image.Rectangle, opts ArcedOptions) error {
	// An arc has no line structure; newlines become word breaks.
	text = strings.ReplaceAll(text, "\n", " ")

	maxW, maxH := safe.Dx(), safe.Dy()
	cx := float64(safe.Min.X) + float64(maxW)/2
	cy := float64(safe.Min.Y) + float64(maxH)/2
	radius := arcRadiusRatio * float64(min(maxW, maxH))

	size := opts.FontSize
	if size <= 0 {
		size = max(DefaultMinFontSize, min(maxW, maxH)/8)
	}
	face, err := load(size)
	if err != nil {
		return err
	}

	degrees := opts.Degrees
	if degrees <= 0 {
		degrees = DefaultArcDegrees
	}

	placements := arcPlacements(face, text, cx, cy, radius, degrees, opts.Offset)
	if len(placements) == 0 {
		return nil
	}

	if opts.Shadow {
		style := shadowStyle(opts.ShadowStyle)
		for _, p := range placements {
			shadowed := p
			shadowed.X += float64(style.OffsetX)
			shadowed.Y += float64(style.OffsetY)
			pasteGlyph(dst, face, shadowed, style.Color, style.Blur)
		}
	}
	for _, p := range placements {
		pasteGlyph(dst, face, p, fg, 0)
	}
	return nil
}

// arcPlacements distributes the arc span across characters by width
// fraction and returns each character's placement. The walk is strictly
// left to right; each character sits at the middle of its own slice.
// Returns nil when the total measured width is zero.
func arcPlacements(face font.Face, text string, cx, cy, radius, arcDeg, offsetDeg float64) []GlyphPlacement {
	runes := []rune(text)
	widths := make([]int, len(runes))
	ink := 0
	for i, r := range runes {
		widths[i] = Measure(face, string(r)).Width
		ink += widths[i]
	}
	if ink == 0 {
		return nil
	}

	// Spaces have no ink but still occupy arc length; use their advance
	// so word gaps survive.
	total := 0
	for i, r := range runes {
		if widths[i] == 0 {
			widths[i] = font.MeasureString(face, string(r)).Ceil()
		}
		total += widths[i]
	}

	arcRad := arcDeg * math.Pi / 180
	start := offsetDeg*math.Pi/180 - arcRad/2

	placements := make([]GlyphPlacement, len(runes))
	consumed := 0.0
	for i, r := range runes {
		frac := float64(widths[i]) / float64(total)
		slice := frac * arcRad
		angle := start + consumed + slice/2
		placements[i] = GlyphPlacement{
			Rune:     r,
			AngleDeg: angle * 180 / math.Pi,
			SliceDeg: frac * arcDeg,
			X:        cx + radius*math.Cos(angle),
			Y:        cy + radius*math.Sin(angle),
		}
		consumed += slice
	}
	return placements
}

// pasteGlyph renders one character to a padded transparent tile, rotates
// the tile so the glyph faces outward from the arc, optionally blurs it
// (shadow pass), and composites it centered at the placement position.
func pasteGlyph(dst *image.RGBA, face font.Face, p GlyphPlacement, c color.Color, blur float64) {
	s := string(p.Rune)
	m := Measure(face, s)

	tile := image.NewRGBA(image.Rect(0, 0, m.Width+2*glyphPad, m.Height+2*glyphPad))
	drawString(tile, face, s, glyphPad, glyphPad, c)

	// Rotate so the baseline is tangent to the arc, glyph top outward.
	rotated := imaging.Rotate(tile, -(p.AngleDeg + 90), color.Transparent)
	if blur > 0 {
		rotated = imaging.Blur(rotated, blur)
	}

	w := rotated.Bounds().Dx()
	h := rotated.Bounds().Dy()
	x0 := int(p.X - float64(w)/2)
	y0 := int(p.Y - float64(h)/2)
	draw.Draw(dst, image.Rect(x0, y0, x0+w, y0+h), rotated, rotated.Bounds().Min, draw.Over)
}
