package layout

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawStringWithShadowExtendsDownRight(t *testing.T) {
	load := testLoader(t)
	face, err := load(60)
	require.NoError(t, err)

	plain := image.NewRGBA(image.Rect(0, 0, 400, 200))
	drawString(plain, face, "SHADOW", 50, 50, color.RGBA{R: 255, A: 255})
	plainInk, ok := inkBounds(plain)
	require.True(t, ok)

	shadowed := image.NewRGBA(image.Rect(0, 0, 400, 200))
	DrawStringWithShadow(shadowed, face, "SHADOW", 50, 50, color.RGBA{R: 255, A: 255}, DefaultShadow())
	shadowInk, ok := inkBounds(shadowed)
	require.True(t, ok)

	// The offset blurred copy pushes the ink box down and to the right.
	assert.Greater(t, shadowInk.Max.X, plainInk.Max.X)
	assert.Greater(t, shadowInk.Max.Y, plainInk.Max.Y)
	assert.LessOrEqual(t, shadowInk.Min.X, plainInk.Min.X, "primary glyphs stay in place")
}

func TestMeasureOriginOffsetCorrection(t *testing.T) {
	load := testLoader(t)
	face, err := load(80)
	require.NoError(t, err)

	// Drawing at an ink position must land the ink box there, regardless
	// of the bounding-box origin the font reports.
	canvas := image.NewRGBA(image.Rect(0, 0, 500, 300))
	drawString(canvas, face, "Origin", 40, 60, color.RGBA{A: 255})

	ink, ok := inkBounds(canvas)
	require.True(t, ok)
	assert.InDelta(t, 40, ink.Min.X, 2)
	assert.InDelta(t, 60, ink.Min.Y, 2)
}
