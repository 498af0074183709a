// batch.go — Batch generation from a JSON config.
package generate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/podforge/podforge/pkg/design"
	"github.com/podforge/podforge/pkg/fonts"
	"github.com/podforge/podforge/pkg/logging"
)

// BatchConfig is the top-level structure of a batch config file.
type BatchConfig struct {
	Designs []BatchEntry `json:"designs"`
}

// BatchEntry describes one design in a batch. Fields apply per type;
// unknown types are skipped with a warning.
type BatchEntry struct {
	Type     string   `json:"type"`     // "text" (default), "pattern", "niche"
	Products []string `json:"products"` // default ["tshirt"]
	Filename string   `json:"filename"` // default batch_NNN
	Text     string   `json:"text"`
	Font     string   `json:"font"`
	Colors   string   `json:"colors"`
	Palette  string   `json:"palette"`
	Layout   string   `json:"layout"`
	Shadow   *bool    `json:"shadow"` // nil means enabled
	Style    string   `json:"style"`  // pattern style
	Seed     int64    `json:"seed"`
	Theme    string   `json:"theme"` // niche theme name
	Tags     []string `json:"tags"`
}

// BatchOptions configures a batch run.
type BatchOptions struct {
	OutputDir string
	ThemeDir  string
	Fonts     *fonts.Manager
}

// RunBatch reads a batch config and generates every design it lists.
// A single design's failure is logged and skipped; the rest of the batch
// continues. Returns the paths of all saved images and metadata files.
func RunBatch(configPath string, opts BatchOptions) ([]string, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read batch config: %w", err)
	}

	var config BatchConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse batch config: %w", err)
	}

	var allPaths []string
	for i, entry := range config.Designs {
		filename := entry.Filename
		if filename == "" {
			filename = fmt.Sprintf("batch_%03d", i)
		}

		fmt.Printf("  [%d/%d] Generating %s: %s\n", i+1, len(config.Designs), entryType(entry), filename)

		saved, err := runBatchEntry(entry, filename, opts)
		if err != nil {
			logging.Logger().Warn("batch entry failed", "index", i, "filename", filename, "error", err)
			fmt.Printf("    [skip] %v\n", err)
			continue
		}
		allPaths = append(allPaths, saved...)
	}

	return allPaths, nil
}

// runBatchEntry builds and runs one entry's generator, then saves its
// metadata sidecars.
func runBatchEntry(entry BatchEntry, filename string, opts BatchOptions) ([]string, error) {
	runner := Runner{Products: entry.Products, OutputDir: opts.OutputDir}
	shadow := entry.Shadow == nil || *entry.Shadow

	var gen Generator
	meta := MetadataInput{Text: entry.Text, DesignType: entryType(entry), ExtraTags: entry.Tags}

	switch entryType(entry) {
	case "text":
		lay, err := design.ParseLayout(entry.Layout)
		if err != nil {
			return nil, err
		}
		gen = &TextGenerator{
			Text:     entry.Text,
			FontName: entry.Font,
			ColorArg: entry.Colors,
			Palette:  entry.Palette,
			Layout:   lay,
			Shadow:   shadow,
			Fonts:    opts.Fonts,
		}
	case "pattern":
		gen = &PatternGenerator{
			Style:    entry.Style,
			Palette:  entry.Palette,
			ColorArg: entry.Colors,
			Seed:     entry.Seed,
		}
		meta.Style = entry.Style
	case "niche":
		theme, err := LoadTheme(opts.ThemeDir, themeName(entry))
		if err != nil {
			return nil, err
		}
		gen = &NicheGenerator{Theme: theme, Text: entry.Text, Seed: entry.Seed, Fonts: opts.Fonts}
		meta.Theme = theme.Name
		if meta.Text == "" {
			meta.Text = theme.Name
		}
		meta.ExtraTags = append(meta.ExtraTags, theme.Tags...)
	default:
		return nil, fmt.Errorf("unknown design type %q", entry.Type)
	}

	saved, err := runner.GenerateAndSave(gen, filename)
	if err != nil {
		return nil, err
	}

	md := GenerateMetadata(meta)
	paths := saved
	for _, p := range saved {
		metaPath, err := SaveMetadata(md, p)
		if err != nil {
			return nil, err
		}
		paths = append(paths, metaPath)
	}
	return paths, nil
}

func entryType(e BatchEntry) string {
	if e.Type == "" {
		return "text"
	}
	return e.Type
}

func themeName(e BatchEntry) string {
	if e.Theme == "" {
		return "motivational"
	}
	return e.Theme
}
