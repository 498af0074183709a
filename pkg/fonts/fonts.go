// Package fonts provides font loading with shortname resolution, category
// lookup, and a (font, size) keyed face cache.
//
// Fonts are TrueType files in a fonts directory, addressed by shortname
// ("anton") or filename stem ("Anton-Regular"). The embedded Go Regular
// font is always available under "goregular" so rendering and tests work
// without any font assets on disk.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Registry maps shortnames to filename stems.
var Registry = map[string]string{
	"russo":            "RussoOne-Regular",
	"russoone":         "RussoOne-Regular",
	"anton":            "Anton-Regular",
	"bebas":            "BebasNeue-Regular",
	"bebasneue":        "BebasNeue-Regular",
	"pacifico":         "Pacifico-Regular",
	"caveat":           "Caveat-VariableFont_wght",
	"shadows":          "ShadowsIntoLight-Regular",
	"shadowsintolight": "ShadowsIntoLight-Regular",
	"patrickhand":      "PatrickHand-Regular",
	"patrick":          "PatrickHand-Regular",
}

// Categories groups filename stems by visual style.
var Categories = map[string][]string{
	"bold":   {"RussoOne-Regular", "Anton-Regular", "BebasNeue-Regular"},
	"script": {"Pacifico-Regular", "Caveat-VariableFont_wght", "ShadowsIntoLight-Regular"},
	"clean":  {"PatrickHand-Regular"},
}

// embeddedStem is the stem the embedded fallback font answers to.
const embeddedStem = "goregular"

type faceKey struct {
	stem string
	size int
}

// Manager loads and caches fonts. Faces are cached by (stem, size) so the
// same request never re-reads or re-parses the font file. Safe for
// concurrent use.
type Manager struct {
	dir string

	// readFile is swappable in tests to count or stub file loads.
	readFile func(string) ([]byte, error)

	mu     sync.RWMutex
	parsed map[string]*opentype.Font
	faces  map[faceKey]font.Face
}

// NewManager creates a font manager rooted at the given fonts directory.
func NewManager(dir string) *Manager {
	return &Manager{
		dir:      dir,
		readFile: os.ReadFile,
		parsed:   make(map[string]*opentype.Font),
		faces:    make(map[faceKey]font.Face),
	}
}

// SetReadFile replaces the file reader. Intended for tests.
func (m *Manager) SetReadFile(fn func(string) ([]byte, error)) {
	m.mu.Lock()
	m.readFile = fn
	m.mu.Unlock()
}

// Get loads a font by shortname or filename stem at the given pixel size.
func (m *Manager) Get(name string, size int) (font.Face, error) {
	stem, err := m.resolve(name)
	if err != nil {
		return nil, err
	}
	return m.load(stem, size)
}

// GetByCategory loads the index-th font of a category (wrapping).
func (m *Manager) GetByCategory(category string, size, index int) (font.Face, error) {
	stems, ok := Categories[category]
	if !ok || len(stems) == 0 {
		return nil, fmt.Errorf("unknown font category %q: available: %s",
			category, strings.Join(CategoryNames(), ", "))
	}
	return m.load(stems[index%len(stems)], size)
}

// Loader returns a size-only loader for the named font, the callback shape
// the layout renderers consume. Name resolution errors surface on the
// first call.
func (m *Manager) Loader(name string) func(size int) (font.Face, error) {
	return func(size int) (font.Face, error) {
		return m.Get(name, size)
	}
}

// ListAvailable returns shortnames whose font files exist on disk, plus the
// embedded fallback.
func (m *Manager) ListAvailable() []string {
	seen := map[string]struct{}{embeddedStem: {}}
	for shortname, stem := range Registry {
		if _, err := os.Stat(filepath.Join(m.dir, stem+".ttf")); err == nil {
			seen[shortname] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoryNames returns the sorted category names.
func CategoryNames() []string {
	names := make([]string, 0, len(Categories))
	for name := range Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolve maps a user-supplied name to a filename stem.
func (m *Manager) resolve(name string) (string, error) {
	key := strings.ToLower(name)
	for _, cut := range []string{" ", "-", "_"} {
		key = strings.ReplaceAll(key, cut, "")
	}
	if key == embeddedStem || key == "go" {
		return embeddedStem, nil
	}
	if stem, ok := Registry[key]; ok {
		return stem, nil
	}
	// Accept a literal stem if the file exists.
	if _, err := os.Stat(filepath.Join(m.dir, name+".ttf")); err == nil {
		return name, nil
	}
	return "", fmt.Errorf("unknown font %q: available: %s",
		name, strings.Join(m.ListAvailable(), ", "))
}

// load returns the cached face for (stem, size), creating it if needed.
func (m *Manager) load(stem string, size int) (font.Face, error) {
	key := faceKey{stem: stem, size: size}

	m.mu.RLock()
	face, ok := m.faces[key]
	m.mu.RUnlock()
	if ok {
		return face, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if face, ok := m.faces[key]; ok {
		return face, nil
	}

	parsed, err := m.parseLocked(stem)
	if err != nil {
		return nil, err
	}

	face, err = opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face %s@%d: %w", stem, size, err)
	}

	m.faces[key] = face
	return face, nil
}

// parseLocked returns the parsed font for a stem, reading the file on first
// use. Caller holds the write lock.
func (m *Manager) parseLocked(stem string) (*opentype.Font, error) {
	if parsed, ok := m.parsed[stem]; ok {
		return parsed, nil
	}

	var data []byte
	if stem == embeddedStem {
		data = goregular.TTF
	} else {
		path := filepath.Join(m.dir, stem+".ttf")
		var err error
		data, err = m.readFile(path)
		if err != nil {
			return nil, fmt.Errorf("font file not found: %s: %w", path, err)
		}
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", stem, err)
	}

	m.parsed[stem] = parsed
	return parsed, nil
}
