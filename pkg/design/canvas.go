// canvas.go — Canvas creation and PNG saving.
package design

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// NewCanvas creates a blank RGBA canvas for the given product. An empty
// bgHex produces a fully transparent canvas; otherwise the canvas is
// flood-filled with the parsed color. Products that don't support
// transparency get the background forced opaque.
func NewCanvas(product ProductSpec, bgHex string) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, product.Width, product.Height))
	if bgHex == "" {
		return img, nil
	}

	fill, err := ParseHex(bgHex)
	if err != nil {
		return nil, fmt.Errorf("canvas background: %w", err)
	}
	if !product.Transparent {
		fill.A = 255
	}

	draw.Draw(img, img.Bounds(), &image.Uniform{fill}, image.Point{}, draw.Src)
	return img, nil
}

// Flatten composites img over an opaque background of the given color.
// Used for products whose canvas does not support transparency.
func Flatten(img *image.RGBA, bg color.RGBA) *image.RGBA {
	bg.A = 255
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)
	return out
}

// SaveDesign writes a design to <outputDir>/<product>/<name>.png, creating
// directories as needed. Returns the written path.
func SaveDesign(img image.Image, outputDir, product, name string) (string, error) {
	dir := filepath.Join(outputDir, product)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, name+".png")
	if err := WritePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// WritePNG encodes img to a PNG file at the given path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
