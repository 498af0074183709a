// metadata.go — Upload metadata: title, description, and tags per design.
package generate

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// maxTags caps the tag list; marketplaces ignore anything beyond this.
const maxTags = 15

// Metadata is the upload sidecar saved next to each design.
type Metadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// MetadataInput collects what's known about a design at metadata time.
type MetadataInput struct {
	Text       string
	DesignType string // "text", "pattern", "niche"
	Theme      string
	Style      string
	ExtraTags  []string
}

var wordRe = regexp.MustCompile(`[a-zA-Z]+`)

// GenerateMetadata builds a title, description, and up to 15 tags from the
// design's text and type.
func GenerateMetadata(in MetadataInput) Metadata {
	clean := strings.ReplaceAll(strings.TrimSpace(in.Text), "\n", " ")
	return Metadata{
		Title:       metaTitle(clean, in.DesignType, in.Theme),
		Description: metaDescription(clean, in.DesignType, in.Theme, in.Style),
		Tags:        metaTags(clean, in),
	}
}

// SaveMetadata writes the metadata as a JSON sidecar next to imagePath,
// swapping the extension for .json. Returns the written path.
func SaveMetadata(meta Metadata, imagePath string) (string, error) {
	path := strings.TrimSuffix(imagePath, ".png") + ".json"

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}
	return path, nil
}

func metaTitle(text, designType, theme string) string {
	short := strings.TrimSpace(truncateWords(text, 60))
	if designType == "pattern" {
		return "Abstract Pattern Design"
	}
	if theme != "" {
		return fmt.Sprintf("%s - %s Design", short, titleCase(theme))
	}
	return fmt.Sprintf("%s - Typography Design", short)
}

func metaDescription(text, designType, theme, style string) string {
	var parts []string
	switch designType {
	case "pattern":
		if style == "" {
			style = "geometric"
		}
		parts = append(parts, fmt.Sprintf("Abstract %s pattern design.", style))
	case "niche":
		if theme != "" {
			parts = append(parts, fmt.Sprintf("%q — %s themed design.", text, theme))
		}
	default:
		parts = append(parts, fmt.Sprintf("%q typography design.", text))
	}

	parts = append(parts,
		"Available on t-shirts, stickers, posters, and more.",
		"High-quality print-on-demand artwork.")
	return strings.Join(parts, " ")
}

func metaTags(text string, in MetadataInput) []string {
	tags := make(map[string]struct{})
	add := func(ts ...string) {
		for _, t := range ts {
			tags[strings.ToLower(t)] = struct{}{}
		}
	}

	// Meaningful words from the design text.
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if len(w) >= 3 {
			add(w)
		}
	}

	switch in.DesignType {
	case "text":
		add("typography", "quote", "text-design", "lettering")
	case "pattern":
		add("pattern", "abstract", "geometric")
		if in.Style != "" {
			add(in.Style)
		}
	case "niche":
		add("themed", "niche")
	}

	if in.Theme != "" {
		add(in.Theme)
	}
	add("print-on-demand", "design")
	add(in.ExtraTags...)

	out := make([]string, 0, len(tags))
	for t := range tags {
		out = append(out, t)
	}
	sort.Strings(out)
	if len(out) > maxTags {
		out = out[:maxTags]
	}
	return out
}

// truncateWords cuts text at maxLen, backing up to the last word boundary.
func truncateWords(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	cut := text[:maxLen]
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
