// pattern.go — Geometric/abstract pattern generator.
package generate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math/rand"
	"strings"
	"time"

	"github.com/fogleman/gg"

	"github.com/podforge/podforge/pkg/design"
	"github.com/podforge/podforge/pkg/effects"
)

// PatternStyles lists the accepted pattern styles in CLI order.
var PatternStyles = []string{"geometric", "circles", "triangles", "grid", "tessellation", "gradient"}

// PatternGenerator scatters or tiles shapes from a palette across the
// safe zone.
type PatternGenerator struct {
	Style    string // one of PatternStyles, default "geometric"
	Palette  string // default "neon"
	ColorArg string // background shortcut override
	Seed     int64  // 0 seeds from the clock
}

// Generate renders the pattern onto a fresh product canvas.
func (g *PatternGenerator) Generate(product design.ProductSpec) (*image.RGBA, error) {
	paletteName := g.Palette
	if paletteName == "" {
		paletteName = "neon"
	}
	colors, err := design.Palette(paletteName)
	if err != nil {
		return nil, err
	}

	seed := g.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	_, bgHex := design.ResolveColors(g.ColorArg, paletteName, product.Transparent)
	canvas, err := design.NewCanvas(product, bgHex)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContextForRGBA(canvas)
	safe := product.SafeZone()

	style := g.Style
	if style == "" {
		style = "geometric"
	}
	switch style {
	case "geometric":
		g.geometric(dc, safe, colors, rng)
	case "circles":
		g.circles(dc, safe, colors, rng)
	case "triangles":
		g.triangles(dc, safe, colors, rng)
	case "grid":
		g.grid(dc, safe, colors, rng)
	case "tessellation":
		g.tessellation(dc, safe, colors, rng)
	case "gradient":
		if err := g.gradient(canvas, dc, safe, colors, rng); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown pattern style %q: available: %s",
			style, strings.Join(PatternStyles, ", "))
	}

	return canvas, nil
}

// pick parses a random palette color; palettes are static so parse errors
// cannot occur past Palette validation.
func pick(colors []string, rng *rand.Rand) color.RGBA {
	c, _ := design.ParseHex(colors[rng.Intn(len(colors))])
	return c
}

func randIn(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// geometric scatters a random mix of all shape primitives.
func (g *PatternGenerator) geometric(dc *gg.Context, safe image.Rectangle, colors []string, rng *rand.Rand) {
	count := randIn(rng, 20, 40)
	for i := 0; i < count; i++ {
		x := float64(randIn(rng, safe.Min.X, safe.Max.X))
		y := float64(randIn(rng, safe.Min.Y, safe.Max.Y))
		size := float64(randIn(rng, 40, 200))
		c := pick(colors, rng)

		switch rng.Intn(5) {
		case 0:
			effects.Circle(dc, x, y, size, c)
		case 1:
			effects.Triangle(dc, x, y, size, 0, c)
		case 2:
			effects.Diamond(dc, x, y, size, c)
		case 3:
			effects.Hexagon(dc, x, y, size, c)
		default:
			effects.Star(dc, x, y, size, 0, 5, c)
		}
	}
}

// circles mixes filled and outlined circles.
func (g *PatternGenerator) circles(dc *gg.Context, safe image.Rectangle, colors []string, rng *rand.Rand) {
	count := randIn(rng, 25, 50)
	for i := 0; i < count; i++ {
		x := float64(randIn(rng, safe.Min.X, safe.Max.X))
		y := float64(randIn(rng, safe.Min.Y, safe.Max.Y))
		r := float64(randIn(rng, 20, 250))
		c := pick(colors, rng)

		if rng.Float64() > 0.5 {
			effects.Circle(dc, x, y, r, c)
		} else {
			c.A = 200
			effects.CircleOutline(dc, x, y, r, c, float64(randIn(rng, 3, 10)))
		}
	}
}

// triangles scatters rotated triangles.
func (g *PatternGenerator) triangles(dc *gg.Context, safe image.Rectangle, colors []string, rng *rand.Rand) {
	count := randIn(rng, 20, 40)
	for i := 0; i < count; i++ {
		x := float64(randIn(rng, safe.Min.X, safe.Max.X))
		y := float64(randIn(rng, safe.Min.Y, safe.Max.Y))
		size := float64(randIn(rng, 40, 200))
		rotation := rng.Float64() * 360
		effects.Triangle(dc, x, y, size, rotation, pick(colors, rng))
	}
}

// grid tiles one shape kind on a regular grid.
func (g *PatternGenerator) grid(dc *gg.Context, safe image.Rectangle, colors []string, rng *rand.Rand) {
	cells := []int{120, 160, 200}
	cell := cells[rng.Intn(len(cells))]
	kind := rng.Intn(3)

	for x := safe.Min.X; x < safe.Max.X; x += cell {
		for y := safe.Min.Y; y < safe.Max.Y; y += cell {
			c := pick(colors, rng)
			s := float64(cell / 3)
			cx := float64(x + cell/2)
			cy := float64(y + cell/2)
			switch kind {
			case 0:
				effects.Circle(dc, cx, cy, s, c)
			case 1:
				effects.Diamond(dc, cx, cy, s, c)
			default:
				effects.Hexagon(dc, cx, cy, s, c)
			}
		}
	}
}

// tessellation fills the safe zone with offset hexagon rows.
func (g *PatternGenerator) tessellation(dc *gg.Context, safe image.Rectangle, colors []string, rng *rand.Rand) {
	sizes := []int{60, 80, 100}
	hexSize := sizes[rng.Intn(len(sizes))]
	rowH := int(float64(hexSize) * 1.732) // sqrt(3)

	row := 0
	for y := safe.Min.Y; y < safe.Max.Y+hexSize; y += rowH / 2 {
		xOffset := 0
		if row%2 == 1 {
			xOffset = hexSize * 3 / 2
		}
		for x := safe.Min.X + xOffset; x < safe.Max.X+hexSize; x += hexSize * 3 {
			effects.Hexagon(dc, float64(x), float64(y), float64(hexSize-4), pick(colors, rng))
		}
		row++
	}
}

// gradient lays a radial gradient between two palette colors under a light
// scatter of circles.
func (g *PatternGenerator) gradient(canvas *image.RGBA, dc *gg.Context, safe image.Rectangle, colors []string, rng *rand.Rand) error {
	center := colors[rng.Intn(len(colors))]
	edge := colors[rng.Intn(len(colors))]

	bg, err := effects.RadialGradient(canvas.Bounds().Dx(), canvas.Bounds().Dy(), center, edge)
	if err != nil {
		return err
	}
	draw.Draw(canvas, canvas.Bounds(), bg, image.Point{}, draw.Over)

	count := randIn(rng, 10, 20)
	for i := 0; i < count; i++ {
		x := float64(randIn(rng, safe.Min.X, safe.Max.X))
		y := float64(randIn(rng, safe.Min.Y, safe.Max.Y))
		r := float64(randIn(rng, 30, 150))
		c := pick(colors, rng)
		c.A = uint8(randIn(rng, 60, 160))
		effects.Circle(dc, x, y, r, c)
	}
	return nil
}
