// Package design provides product geometry, color resolution, and canvas
// handling for print-on-demand design generation.
//
// A ProductSpec describes one printable product (t-shirt, sticker, poster)
// and derives the safe zone all layouts must stay inside.
package design

import (
	"image"
	"sort"
)

// ProductSpec describes one product's canvas. Immutable once constructed.
type ProductSpec struct {
	Name        string
	Width       int     // pixels
	Height      int     // pixels
	Transparent bool    // canvas supports transparency
	MarginPct   float64 // safe-zone inset on each side, fraction of the dimension
}

// SafeZone returns the printable sub-rectangle, inset by MarginPct on each
// side. Margins are computed per axis so tall products keep proportional
// insets.
func (p ProductSpec) SafeZone() image.Rectangle {
	mx := int(float64(p.Width) * p.MarginPct)
	my := int(float64(p.Height) * p.MarginPct)
	return image.Rect(mx, my, p.Width-mx, p.Height-my)
}

// SafeWidth returns the safe zone's width in pixels.
func (p ProductSpec) SafeWidth() int { return p.SafeZone().Dx() }

// SafeHeight returns the safe zone's height in pixels.
func (p ProductSpec) SafeHeight() int { return p.SafeZone().Dy() }

// DefaultMargin is the safe-zone inset applied to all stock products.
const DefaultMargin = 0.05

// Products maps product names to their canvas specs.
var Products = map[string]ProductSpec{
	"tshirt":  {Name: "tshirt", Width: 2875, Height: 3900, Transparent: true, MarginPct: DefaultMargin},
	"sticker": {Name: "sticker", Width: 2800, Height: 2800, Transparent: true, MarginPct: DefaultMargin},
	"poster":  {Name: "poster", Width: 3840, Height: 3840, Transparent: false, MarginPct: DefaultMargin},
}

// DefaultProducts is used when a caller supplies no product list.
var DefaultProducts = []string{"tshirt"}

// ProductNames returns the sorted names of all registered products.
func ProductNames() []string {
	names := make([]string, 0, len(Products))
	for name := range Products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
