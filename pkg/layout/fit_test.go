package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitSizeMatchesLinearScan(t *testing.T) {
	load := testLoader(t)

	cases := []struct {
		name string
		text string
		maxW int
		maxH int
	}{
		{"short word", "HELLO", 800, 800},
		{"long phrase", "THE QUICK BROWN FOX JUMPS", 1200, 400},
		{"single char", "W", 500, 500},
		{"narrow box", "WIDE TEXT HERE", 300, 2000},
		{"flat box", "ABC", 2000, 120},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			face, size, err := FitSize(load, tc.text, tc.maxW, tc.maxH, FitOptions{})
			require.NoError(t, err)
			require.NotNil(t, face)

			// Linear scan for the true largest fitting size.
			best := DefaultMinFontSize
			found := false
			for s := DefaultMinFontSize; s <= DefaultMaxFontSize; s++ {
				f, err := load(s)
				require.NoError(t, err)
				b := measureBlock(f, tc.text)
				if b.Width <= tc.maxW && b.Height <= tc.maxH {
					best = s
					found = true
				}
			}

			assert.Equal(t, best, size)
			if found {
				b := measureBlock(face, tc.text)
				assert.LessOrEqual(t, b.Width, tc.maxW)
				assert.LessOrEqual(t, b.Height, tc.maxH)
			}
		})
	}
}

func TestFitSizeBestEffortFloor(t *testing.T) {
	load := testLoader(t)

	// Nothing fits a 10x10 box; the minimum size comes back anyway.
	face, size, err := FitSize(load, "X", 10, 10, FitOptions{})
	require.NoError(t, err)
	require.NotNil(t, face)
	assert.Equal(t, DefaultMinFontSize, size)
}

func TestFitSizeRespectsCustomBounds(t *testing.T) {
	load := testLoader(t)

	_, size, err := FitSize(load, "HELLO", 5000, 5000, FitOptions{MinSize: 50, MaxSize: 120})
	require.NoError(t, err)
	assert.Equal(t, 120, size, "huge box should saturate at the ceiling")
}

func TestFitLinesEveryLineFits(t *testing.T) {
	load := testLoader(t)
	lines := []string{"LINE ONE", "LINE TWO IS LONGER", "THREE"}

	face, size, metrics, err := FitLines(load, lines, 800, 800, 0, FitOptions{})
	require.NoError(t, err)
	require.NotNil(t, face)
	require.Len(t, metrics, 3)
	assert.GreaterOrEqual(t, size, DefaultMinFontSize)

	total := 0
	for i, lm := range metrics {
		assert.Equal(t, lines[i], lm.Text)
		assert.Zero(t, lm.X)
		assert.LessOrEqual(t, lm.Width, 800)
		assert.Equal(t, total, lm.Y)
		if i < len(lines)-1 {
			total += int(float64(lm.Height) * DefaultLineSpacing)
		} else {
			total += lm.Height
		}
	}
	assert.LessOrEqual(t, total, 800)
}

func TestFitLinesBestEffortMetrics(t *testing.T) {
	load := testLoader(t)

	// The box is far too small, but metrics at the minimum size must
	// still come back so callers can draw the overflowing best effort.
	_, size, metrics, err := FitLines(load, []string{"OVERFLOWING LINE"}, 20, 20, 0, FitOptions{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMinFontSize, size)
	require.Len(t, metrics, 1)
	assert.Greater(t, metrics[0].Width, 20)
}
