// Package effects provides the drawing primitives design generators
// composite onto canvases: geometric shapes and gradient fills, both built
// on fogleman/gg drawing contexts.
package effects

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Circle draws a filled circle centered at (cx, cy).
func Circle(dc *gg.Context, cx, cy, radius float64, fill color.Color) {
	dc.SetColor(fill)
	dc.DrawCircle(cx, cy, radius)
	dc.Fill()
}

// CircleOutline draws an unfilled circle with the given stroke width.
func CircleOutline(dc *gg.Context, cx, cy, radius float64, outline color.Color, width float64) {
	dc.SetColor(outline)
	dc.SetLineWidth(width)
	dc.DrawCircle(cx, cy, radius)
	dc.Stroke()
}

// Triangle draws a filled equilateral triangle centered at (cx, cy),
// pointing up at rotation 0. Rotation is in degrees.
func Triangle(dc *gg.Context, cx, cy, size float64, rotation float64, fill color.Color) {
	dc.SetColor(fill)
	dc.DrawRegularPolygon(3, cx, cy, size, gg.Radians(rotation))
	dc.Fill()
}

// Diamond draws a filled diamond (rotated square) centered at (cx, cy).
func Diamond(dc *gg.Context, cx, cy, size float64, fill color.Color) {
	dc.SetColor(fill)
	dc.MoveTo(cx, cy-size)
	dc.LineTo(cx+size, cy)
	dc.LineTo(cx, cy+size)
	dc.LineTo(cx-size, cy)
	dc.ClosePath()
	dc.Fill()
}

// Hexagon draws a filled flat-top hexagon centered at (cx, cy).
func Hexagon(dc *gg.Context, cx, cy, size float64, fill color.Color) {
	dc.SetColor(fill)
	for i := 0; i < 6; i++ {
		angle := gg.Radians(60*float64(i) - 30)
		x := cx + size*math.Cos(angle)
		y := cy + size*math.Sin(angle)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.Fill()
}

// Star draws a filled star centered at (cx, cy). An innerRadius of 0
// defaults to half the outer radius; the first point faces up.
func Star(dc *gg.Context, cx, cy, outerRadius, innerRadius float64, points int, fill color.Color) {
	if points < 2 {
		points = 5
	}
	if innerRadius <= 0 {
		innerRadius = outerRadius / 2
	}

	dc.SetColor(fill)
	step := 360.0 / float64(points*2)
	for i := 0; i < points*2; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		angle := gg.Radians(-90 + float64(i)*step)
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.Fill()
}
