// Package generate orchestrates design generation: it runs the layout
// engine per product, composites patterns and niche themes, and saves the
// resulting PNGs with metadata sidecars.
package generate

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/podforge/podforge/pkg/design"
	"github.com/podforge/podforge/pkg/logging"
)

// Generator produces one design image for a product spec.
type Generator interface {
	Generate(product design.ProductSpec) (*image.RGBA, error)
}

// Runner drives a generator across a list of products and saves results.
type Runner struct {
	Products  []string // product names, defaults to design.DefaultProducts
	OutputDir string   // defaults to "output"
}

func (r Runner) products() []string {
	if len(r.Products) == 0 {
		return design.DefaultProducts
	}
	return r.Products
}

func (r Runner) outputDir() string {
	if r.OutputDir == "" {
		return "output"
	}
	return r.OutputDir
}

// GenerateAll generates a design for every configured product.
func (r Runner) GenerateAll(g Generator) (map[string]*image.RGBA, error) {
	results := make(map[string]*image.RGBA, len(r.products()))
	for _, name := range r.products() {
		spec, ok := design.Products[name]
		if !ok {
			return nil, fmt.Errorf("unknown product %q: available: %s",
				name, strings.Join(design.ProductNames(), ", "))
		}
		img, err := g.Generate(spec)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", name, err)
		}
		results[name] = img
	}
	return results, nil
}

// GenerateAndSave generates and saves a design per product as
// <outputDir>/<product>/<filename>.png. Returns the saved paths.
func (r Runner) GenerateAndSave(g Generator, filename string) ([]string, error) {
	var saved []string
	for _, name := range r.products() {
		spec, ok := design.Products[name]
		if !ok {
			return nil, fmt.Errorf("unknown product %q: available: %s",
				name, strings.Join(design.ProductNames(), ", "))
		}
		img, err := g.Generate(spec)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", name, err)
		}
		if !spec.Transparent {
			// Opaque products must not ship alpha, even when a color
			// shortcut resolved to a transparent background.
			img = design.Flatten(img, color.RGBA{})
		}
		path, err := design.SaveDesign(img, r.outputDir(), name, filename)
		if err != nil {
			return nil, err
		}
		logging.Logger().Debug("design saved", "product", name, "path", path)
		saved = append(saved, path)
	}
	return saved, nil
}

// Slug derives a filesystem-safe filename fragment from design text.
func Slug(text string, maxLen int) string {
	if maxLen > 0 && len(text) > maxLen {
		text = text[:maxLen]
	}
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, " ", "_")
	text = strings.ReplaceAll(text, "\n", "_")

	var b strings.Builder
	for _, r := range text {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
