package layout

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcAngularCoverage(t *testing.T) {
	load := testLoader(t)
	face, err := load(60)
	require.NoError(t, err)

	for _, text := range []string{"ARC TEXT", "W", "iiii", "MIXED width Text"} {
		placements := arcPlacements(face, text, 500, 500, 380, 180, -90)
		require.NotEmpty(t, placements, text)

		sum := 0.0
		for _, p := range placements {
			sum += p.SliceDeg
		}
		assert.InDelta(t, 180, sum, 1e-9, "slices must cover the arc span for %q", text)
	}
}

func TestArcPlacementsOrderedWithinWindow(t *testing.T) {
	load := testLoader(t)
	face, err := load(60)
	require.NoError(t, err)

	placements := arcPlacements(face, "ARC TEXT", 500, 500, 380, 180, -90)
	require.Len(t, placements, len("ARC TEXT"))

	for i, p := range placements {
		assert.Greater(t, p.AngleDeg, -180.0, "glyph %d below window start", i)
		assert.Less(t, p.AngleDeg, 0.0, "glyph %d beyond window end", i)
		if i > 0 {
			assert.Greater(t, p.AngleDeg, placements[i-1].AngleDeg,
				"angles must increase in reading order")
		}
	}
}

func TestArcWideGlyphsGetWiderSlices(t *testing.T) {
	load := testLoader(t)
	face, err := load(60)
	require.NoError(t, err)

	placements := arcPlacements(face, "iW", 500, 500, 380, 180, -90)
	require.Len(t, placements, 2)
	assert.Less(t, placements[0].SliceDeg, placements[1].SliceDeg,
		"W is wider than i and must consume a larger slice")
}

func TestArcedWhitespaceIsNoOp(t *testing.T) {
	load := testLoader(t)
	safe := image.Rect(0, 0, 1000, 1000)

	canvas := image.NewRGBA(image.Rect(0, 0, 1000, 1000))
	before := make([]byte, len(canvas.Pix))
	copy(before, canvas.Pix)

	err := Arced(canvas, "   ", load, color.RGBA{A: 255}, safe, DefaultArcedOptions())
	require.NoError(t, err)
	assert.True(t, bytes.Equal(before, canvas.Pix), "whitespace text must leave the canvas untouched")
}

func TestArcedRendersInsideSafeZone(t *testing.T) {
	load := testLoader(t)
	safe := image.Rect(100, 100, 1100, 1100)

	canvas := image.NewRGBA(image.Rect(0, 0, 1200, 1200))
	err := Arced(canvas, "ARC TEXT", load, color.RGBA{R: 255, A: 255}, safe, DefaultArcedOptions())
	require.NoError(t, err)

	ink, ok := inkBounds(canvas)
	require.True(t, ok, "arced text should have been drawn")
	assert.True(t, ink.In(safe.Inset(-4)), "arc ink %v should stay near the safe zone %v", ink, safe)
}

func TestArcedExplicitFontSize(t *testing.T) {
	load := testLoader(t)
	safe := image.Rect(0, 0, 1000, 1000)

	opts := DefaultArcedOptions()
	opts.FontSize = 48
	canvas := image.NewRGBA(image.Rect(0, 0, 1000, 1000))
	require.NoError(t, Arced(canvas, "BADGE", load, color.RGBA{A: 255}, safe, opts))

	_, ok := inkBounds(canvas)
	assert.True(t, ok)
}

func TestArcedShadowAddsInk(t *testing.T) {
	load := testLoader(t)
	safe := image.Rect(0, 0, 1000, 1000)

	plain := image.NewRGBA(image.Rect(0, 0, 1000, 1000))
	require.NoError(t, Arced(plain, "ARC", load, color.RGBA{R: 255, A: 255}, safe, DefaultArcedOptions()))

	opts := DefaultArcedOptions()
	opts.Shadow = true
	shadowed := image.NewRGBA(image.Rect(0, 0, 1000, 1000))
	require.NoError(t, Arced(shadowed, "ARC", load, color.RGBA{R: 255, A: 255}, safe, opts))

	assert.Greater(t, inkCount(shadowed), inkCount(plain))
}
