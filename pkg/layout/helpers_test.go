package layout

import (
	"image"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// testFont is the embedded Go Regular font, parsed once for all tests.
var testFont *opentype.Font

func init() {
	var err error
	testFont, err = opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// testLoader returns a FontLoader over the embedded test font.
func testLoader(t *testing.T) FontLoader {
	t.Helper()
	return func(size int) (font.Face, error) {
		return opentype.NewFace(testFont, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
}

// inkBounds scans img for pixels with any alpha and returns their bounding
// box, with ok=false for a fully transparent image.
func inkBounds(img *image.RGBA) (image.Rectangle, bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A > 0 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// inkCount counts pixels with any alpha.
func inkCount(img *image.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A > 0 {
				n++
			}
		}
	}
	return n
}
