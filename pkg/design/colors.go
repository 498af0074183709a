// colors.go — Named color shortcuts, palettes, and hex parsing.
package design

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
)

// ParseHex parses "#rrggbb" or "#rrggbbaa" into a color.RGBA.
// A missing alpha channel defaults to fully opaque.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: expected 6 or 8 hex digits", s)
	}

	var ch [4]uint8
	ch[3] = 255
	for i := 0; i*2 < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid channel in hex color %q: %w", s, err)
		}
		ch[i] = uint8(v)
	}

	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// MustParseHex is ParseHex for compile-time constants; panics on bad input.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Shortcuts maps named color combos to (foreground, background) hex pairs.
// An empty background means transparent.
var Shortcuts = map[string][2]string{
	"white-on-black":       {"#FFFFFF", "#000000"},
	"black-on-white":       {"#000000", "#FFFFFF"},
	"neon-on-dark":         {"#39FF14", "#1A1A2E"},
	"gold-on-black":        {"#FFD700", "#000000"},
	"pink-on-dark":         {"#FF69B4", "#2D1B3D"},
	"cyan-on-dark":         {"#00FFFF", "#0D1B2A"},
	"white-on-transparent": {"#FFFFFF", ""},
	"black-on-transparent": {"#000000", ""},
	"red-on-black":         {"#FF3333", "#000000"},
	"sunset":               {"#FF6B35", "#1A0A2E"},
}

// Palettes maps palette names to lists of foreground-friendly colors.
var Palettes = map[string][]string{
	"warm":   {"#FF6B35", "#F7931E", "#FFD700", "#FF3333", "#FF69B4"},
	"cool":   {"#00BFFF", "#00FFFF", "#7B68EE", "#4169E1", "#48D1CC"},
	"neon":   {"#39FF14", "#FF073A", "#00FFFF", "#FF61F6", "#FFE600"},
	"pastel": {"#FFB3BA", "#BAFFC9", "#BAE1FF", "#FFFFBA", "#E8BAFF"},
	"earth":  {"#8B4513", "#D2691E", "#DEB887", "#556B2F", "#BC8F8F"},
}

// ResolveColors turns CLI-level color arguments into a (foreground,
// background) hex pair. Precedence: shortcut name, raw hex, palette, then
// the white-on-black default. An empty background means transparent; when
// transparentBG is set the background is always empty.
func ResolveColors(colorArg, paletteArg string, transparentBG bool) (fg, bg string) {
	if colorArg != "" {
		key := strings.ReplaceAll(strings.ToLower(colorArg), " ", "-")
		if pair, ok := Shortcuts[key]; ok {
			fg, bg = pair[0], pair[1]
			if transparentBG {
				bg = ""
			}
			return fg, bg
		}
		if strings.HasPrefix(colorArg, "#") {
			if transparentBG {
				return colorArg, ""
			}
			return colorArg, "#000000"
		}
	}

	if paletteArg != "" {
		if pal, ok := Palettes[strings.ToLower(paletteArg)]; ok {
			if transparentBG {
				return pal[0], ""
			}
			return pal[0], "#1A1A2E"
		}
	}

	if transparentBG {
		return "#FFFFFF", ""
	}
	return "#FFFFFF", "#000000"
}

// Palette returns a named palette's color list.
func Palette(name string) ([]string, error) {
	pal, ok := Palettes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q: available: %s", name, strings.Join(PaletteNames(), ", "))
	}
	return pal, nil
}

// PaletteNames returns the sorted names of all palettes.
func PaletteNames() []string {
	names := make([]string, 0, len(Palettes))
	for name := range Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ShortcutNames returns the sorted names of all color shortcuts.
func ShortcutNames() []string {
	names := make([]string, 0, len(Shortcuts))
	for name := range Shortcuts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
