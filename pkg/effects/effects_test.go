package effects

import (
	"image/color"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearGradientEndpoints(t *testing.T) {
	img, err := LinearGradient(100, 100, "#FF0000", "#0000FF", GradientVertical)
	require.NoError(t, err)

	top := img.RGBAAt(50, 0)
	bottom := img.RGBAAt(50, 99)
	assert.Greater(t, top.R, uint8(200), "top edge should be near the start color")
	assert.Greater(t, bottom.B, uint8(200), "bottom edge should be near the end color")
}

func TestLinearGradientHorizontal(t *testing.T) {
	img, err := LinearGradient(100, 100, "#000000", "#FFFFFF", GradientHorizontal)
	require.NoError(t, err)

	left := img.RGBAAt(0, 50)
	right := img.RGBAAt(99, 50)
	assert.Less(t, left.R, uint8(50))
	assert.Greater(t, right.R, uint8(200))
}

func TestRadialGradientCenter(t *testing.T) {
	img, err := RadialGradient(100, 100, "#FFFFFF", "#000000")
	require.NoError(t, err)

	center := img.RGBAAt(50, 50)
	corner := img.RGBAAt(0, 0)
	assert.Greater(t, center.R, uint8(200))
	assert.Less(t, corner.R, uint8(80))
}

func TestGradientBadHex(t *testing.T) {
	_, err := LinearGradient(10, 10, "#nope", "#000000", GradientVertical)
	assert.Error(t, err)
	_, err = RadialGradient(10, 10, "#FFFFFF", "zzz")
	assert.Error(t, err)
}

func TestShapesLeaveInk(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}

	draws := map[string]func(dc *gg.Context){
		"circle":   func(dc *gg.Context) { Circle(dc, 50, 50, 20, red) },
		"outline":  func(dc *gg.Context) { CircleOutline(dc, 50, 50, 20, red, 3) },
		"triangle": func(dc *gg.Context) { Triangle(dc, 50, 50, 20, 45, red) },
		"diamond":  func(dc *gg.Context) { Diamond(dc, 50, 50, 20, red) },
		"hexagon":  func(dc *gg.Context) { Hexagon(dc, 50, 50, 20, red) },
		"star":     func(dc *gg.Context) { Star(dc, 50, 50, 20, 0, 5, red) },
	}

	for name, fn := range draws {
		dc := gg.NewContext(100, 100)
		fn(dc)

		inked := false
		img := dc.Image()
		for y := 0; y < 100 && !inked; y++ {
			for x := 0; x < 100; x++ {
				if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
					inked = true
					break
				}
			}
		}
		assert.True(t, inked, "%s should draw pixels", name)
	}
}
