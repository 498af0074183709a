// gradient.go — Linear and radial gradient backgrounds.
package effects

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/podforge/podforge/pkg/design"
)

// GradientDirection selects the axis of a linear gradient.
type GradientDirection string

const (
	GradientVertical   GradientDirection = "vertical"
	GradientHorizontal GradientDirection = "horizontal"
	GradientDiagonal   GradientDirection = "diagonal"
)

// gradientStops is the number of intermediate color stops inserted between
// the endpoints. Stops are blended in Lab space so mid-gradient colors stay
// perceptually even instead of washing through gray.
const gradientStops = 8

// LinearGradient renders a w×h linear gradient between two hex colors.
func LinearGradient(w, h int, startHex, endHex string, dir GradientDirection) (*image.RGBA, error) {
	c1, err := design.ParseHex(startHex)
	if err != nil {
		return nil, fmt.Errorf("gradient start: %w", err)
	}
	c2, err := design.ParseHex(endHex)
	if err != nil {
		return nil, fmt.Errorf("gradient end: %w", err)
	}

	var x1, y1 float64
	switch dir {
	case GradientHorizontal:
		x1 = float64(w)
	case GradientDiagonal:
		x1, y1 = float64(w), float64(h)
	default: // vertical
		y1 = float64(h)
	}

	grad := gg.NewLinearGradient(0, 0, x1, y1)
	addLabStops(grad, c1, c2)
	return fillGradient(w, h, grad), nil
}

// RadialGradient renders a w×h gradient from a center color out to an edge
// color at the corners.
func RadialGradient(w, h int, centerHex, edgeHex string) (*image.RGBA, error) {
	c1, err := design.ParseHex(centerHex)
	if err != nil {
		return nil, fmt.Errorf("gradient center: %w", err)
	}
	c2, err := design.ParseHex(edgeHex)
	if err != nil {
		return nil, fmt.Errorf("gradient edge: %w", err)
	}

	cx, cy := float64(w)/2, float64(h)/2
	radius := math.Hypot(cx, cy)
	grad := gg.NewRadialGradient(cx, cy, 0, cx, cy, radius)
	addLabStops(grad, c1, c2)
	return fillGradient(w, h, grad), nil
}

// addLabStops populates a gradient with Lab-blended intermediate stops.
// Alpha is interpolated linearly alongside.
func addLabStops(grad gg.Gradient, c1, c2 color.RGBA) {
	f1 := colorful.Color{R: float64(c1.R) / 255, G: float64(c1.G) / 255, B: float64(c1.B) / 255}
	f2 := colorful.Color{R: float64(c2.R) / 255, G: float64(c2.G) / 255, B: float64(c2.B) / 255}

	for i := 0; i <= gradientStops; i++ {
		t := float64(i) / gradientStops
		blended := f1.BlendLab(f2, t).Clamped()
		alpha := float64(c1.A) + (float64(c2.A)-float64(c1.A))*t
		grad.AddColorStop(t, color.NRGBA{
			R: uint8(blended.R*255 + 0.5),
			G: uint8(blended.G*255 + 0.5),
			B: uint8(blended.B*255 + 0.5),
			A: uint8(alpha + 0.5),
		})
	}
}

// fillGradient paints a gradient across a fresh RGBA image.
func fillGradient(w, h int, grad gg.Gradient) *image.RGBA {
	dc := gg.NewContext(w, h)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
	return dc.Image().(*image.RGBA)
}
