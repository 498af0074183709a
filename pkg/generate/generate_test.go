package generate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/podforge/podforge/pkg/design"
	"github.com/podforge/podforge/pkg/fonts"
)

// testProduct keeps rendering fast in tests.
var testProduct = design.ProductSpec{
	Name: "test", Width: 400, Height: 400, Transparent: true, MarginPct: 0.05,
}

// testFonts returns a manager that serves the embedded font for any stem.
func testFonts() *fonts.Manager {
	m := fonts.NewManager("testdata")
	m.SetReadFile(func(string) ([]byte, error) { return goregular.TTF, nil })
	return m
}

func TestTextGeneratorRendersAllLayouts(t *testing.T) {
	for _, lay := range []design.Layout{design.LayoutCentered, design.LayoutStacked, design.LayoutArced} {
		gen := &TextGenerator{
			Text:     "HELLO\nWORLD",
			FontName: "goregular",
			ColorArg: "white-on-black",
			Layout:   lay,
			Shadow:   true,
			Fonts:    testFonts(),
		}
		img, err := gen.Generate(testProduct)
		require.NoError(t, err, lay.String())
		assert.Equal(t, 400, img.Bounds().Dx())
	}
}

func TestTextGeneratorUnknownFont(t *testing.T) {
	gen := &TextGenerator{Text: "X", FontName: "nosuchfont", Fonts: fonts.NewManager(t.TempDir())}
	_, err := gen.Generate(testProduct)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nosuchfont")
}

func TestPatternGeneratorDeterministicWithSeed(t *testing.T) {
	for _, style := range PatternStyles {
		gen := &PatternGenerator{Style: style, Palette: "neon", Seed: 42}
		a, err := gen.Generate(testProduct)
		require.NoError(t, err, style)
		b, err := gen.Generate(testProduct)
		require.NoError(t, err, style)
		assert.Equal(t, a.Pix, b.Pix, "style %s must be reproducible for a fixed seed", style)
	}
}

func TestPatternGeneratorUnknownStyle(t *testing.T) {
	gen := &PatternGenerator{Style: "plaid"}
	_, err := gen.Generate(testProduct)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plaid")
}

func TestNicheGeneratorUsesThemeStyle(t *testing.T) {
	theme, err := LoadTheme("", "motivational")
	require.NoError(t, err)

	gen := &NicheGenerator{Theme: theme, Text: "CUSTOM TEXT", Fonts: testFonts()}
	img, err := gen.Generate(testProduct)
	require.NoError(t, err)
	assert.NotNil(t, img)

	// Random phrase selection is reproducible per seed.
	g1 := &NicheGenerator{Theme: theme, Seed: 7, Fonts: testFonts()}
	g2 := &NicheGenerator{Theme: theme, Seed: 7, Fonts: testFonts()}
	a, err := g1.Generate(testProduct)
	require.NoError(t, err)
	b, err := g2.Generate(testProduct)
	require.NoError(t, err)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestRunnerRejectsUnknownProduct(t *testing.T) {
	r := Runner{Products: []string{"mug"}}
	gen := &PatternGenerator{Seed: 1}
	_, err := r.GenerateAll(gen)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mug")
	assert.Contains(t, err.Error(), "tshirt")
}

func TestRunnerGenerateAndSave(t *testing.T) {
	dir := t.TempDir()
	r := Runner{Products: []string{"sticker"}, OutputDir: dir}
	gen := &PatternGenerator{Seed: 3}

	saved, err := r.GenerateAndSave(gen, "unit")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, filepath.Join(dir, "sticker", "unit.png"), saved[0])
	assert.FileExists(t, saved[0])
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "dream_big", Slug("DREAM BIG", 40))
	assert.Equal(t, "line_one_line", Slug("Line One\nLine!", 13))
	assert.Equal(t, "a_bc123", Slug("a b-c?1+2=3", 0))
}
