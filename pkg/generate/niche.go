// niche.go — Themed template-based design generator.
package generate

import (
	"image"
	"math/rand"
	"time"

	"github.com/podforge/podforge/pkg/design"
	"github.com/podforge/podforge/pkg/fonts"
)

// NicheGenerator renders designs from a loaded theme: custom text when
// given, otherwise a random phrase from the theme's pool.
type NicheGenerator struct {
	Theme *Theme
	Text  string // custom text; empty picks a random phrase
	Seed  int64  // 0 seeds from the clock
	Fonts *fonts.Manager
}

// Generate renders one themed design onto a fresh product canvas.
func (g *NicheGenerator) Generate(product design.ProductSpec) (*image.RGBA, error) {
	text := g.Text
	if text == "" {
		seed := g.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		text = g.Theme.Phrases[rng.Intn(len(g.Theme.Phrases))]
	}

	style := g.Theme.Style
	lay, err := design.ParseLayout(style.Layout)
	if err != nil {
		return nil, err
	}

	return renderTextDesign(product, text, style.Font, style.Colors, "", lay, style.ShadowEnabled(), g.Fonts)
}
