// themes.go — Niche theme loading: JSON configs bundling phrases and style.
package generate

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed themes/*.json
var builtinThemes embed.FS

// Theme is a niche design template: a phrase pool plus a house style.
type Theme struct {
	Name        string     `json:"-"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Phrases     []string   `json:"phrases"`
	Tags        []string   `json:"tags"`
	Style       ThemeStyle `json:"style"`
}

// ThemeStyle is the rendering style a theme applies to its phrases.
type ThemeStyle struct {
	Font   string `json:"font"`
	Colors string `json:"colors"`
	Layout string `json:"layout"`
	Shadow *bool  `json:"shadow"` // nil means enabled
}

// ShadowEnabled reports the style's shadow flag, defaulting to true.
func (s ThemeStyle) ShadowEnabled() bool {
	return s.Shadow == nil || *s.Shadow
}

// LoadTheme loads a theme by name. A file <dir>/<name>.json takes
// precedence; otherwise the built-in themes are consulted. Unknown names
// error with the available alternatives.
func LoadTheme(dir, name string) (*Theme, error) {
	var data []byte
	var err error

	if dir != "" {
		data, err = os.ReadFile(filepath.Join(dir, name+".json"))
	}
	if dir == "" || err != nil {
		data, err = builtinThemes.ReadFile("themes/" + name + ".json")
	}
	if err != nil {
		return nil, fmt.Errorf("theme %q not found: available: %s",
			name, strings.Join(ListThemes(dir), ", "))
	}

	var theme Theme
	if err := json.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parse theme %q: %w", name, err)
	}
	theme.Name = name
	applyThemeDefaults(&theme)
	return &theme, nil
}

// ListThemes returns the sorted names of built-in themes plus any JSON
// files in dir.
func ListThemes(dir string) []string {
	seen := make(map[string]struct{})

	if entries, err := builtinThemes.ReadDir("themes"); err == nil {
		for _, e := range entries {
			seen[strings.TrimSuffix(e.Name(), ".json")] = struct{}{}
		}
	}
	if dir != "" {
		if matches, err := filepath.Glob(filepath.Join(dir, "*.json")); err == nil {
			for _, m := range matches {
				seen[strings.TrimSuffix(filepath.Base(m), ".json")] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// applyThemeDefaults fills unset style fields with the house defaults.
func applyThemeDefaults(t *Theme) {
	if len(t.Phrases) == 0 {
		t.Phrases = []string{"Design"}
	}
	if t.Style.Font == "" {
		t.Style.Font = DefaultFont
	}
	if t.Style.Colors == "" {
		t.Style.Colors = "white-on-black"
	}
	if t.Style.Layout == "" {
		t.Style.Layout = "centered"
	}
}
