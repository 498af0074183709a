// text.go — Text/quote design generator.
package generate

import (
	"fmt"
	"image"

	"github.com/podforge/podforge/pkg/design"
	"github.com/podforge/podforge/pkg/fonts"
	"github.com/podforge/podforge/pkg/layout"
	"github.com/podforge/podforge/pkg/logging"
)

// DefaultFont is the font used when a generator gets none.
const DefaultFont = "anton"

// TextGenerator renders quotes, slogans, and phrases.
type TextGenerator struct {
	Text     string
	FontName string // shortname or stem, default "anton"
	ColorArg string // shortcut name or raw hex
	Palette  string
	Layout   design.Layout
	Shadow   bool
	Fonts    *fonts.Manager
}

// Generate renders the text design onto a fresh product canvas.
func (g *TextGenerator) Generate(product design.ProductSpec) (*image.RGBA, error) {
	fontName := g.FontName
	if fontName == "" {
		fontName = DefaultFont
	}
	return renderTextDesign(product, g.Text, fontName, g.ColorArg, g.Palette, g.Layout, g.Shadow, g.Fonts)
}

// renderTextDesign is the shared text rendering path for the text and
// niche generators: resolve colors, build the canvas, then dispatch to the
// selected layout.
func renderTextDesign(product design.ProductSpec, text, fontName, colorArg, paletteArg string, lay design.Layout, shadow bool, fm *fonts.Manager) (*image.RGBA, error) {
	fgHex, bgHex := design.ResolveColors(colorArg, paletteArg, product.Transparent)
	fg, err := design.ParseHex(fgHex)
	if err != nil {
		return nil, fmt.Errorf("foreground color: %w", err)
	}

	canvas, err := design.NewCanvas(product, bgHex)
	if err != nil {
		return nil, err
	}

	load := layout.FontLoader(fm.Loader(fontName))
	safe := product.SafeZone()
	logging.Logger().Debug("rendering text design",
		"product", product.Name, "layout", lay.String(), "font", fontName)

	switch lay {
	case design.LayoutCentered:
		err = layout.Centered(canvas, text, load, fg, safe, layout.CenteredOptions{Shadow: shadow})
	case design.LayoutStacked:
		err = layout.Stacked(canvas, text, load, fg, safe, layout.StackedOptions{Shadow: shadow})
	case design.LayoutArced:
		opts := layout.DefaultArcedOptions()
		opts.Shadow = shadow
		err = layout.Arced(canvas, text, load, fg, safe, opts)
	default:
		err = fmt.Errorf("unknown layout %v", lay)
	}
	if err != nil {
		return nil, err
	}
	return canvas, nil
}
