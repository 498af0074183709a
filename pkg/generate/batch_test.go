package generate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBatchConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestRunBatchGeneratesImagesAndMetadata(t *testing.T) {
	config := writeBatchConfig(t, `{
	  "designs": [
	    {"type": "pattern", "style": "circles", "seed": 9, "products": ["sticker"], "filename": "pat"},
	    {"type": "text", "text": "HI", "font": "goregular", "products": ["sticker"], "filename": "txt"}
	  ]
	}`)

	out := t.TempDir()
	paths, err := RunBatch(config, BatchOptions{OutputDir: out, Fonts: testFonts()})
	require.NoError(t, err)

	var pngs, jsons int
	for _, p := range paths {
		switch {
		case strings.HasSuffix(p, ".png"):
			pngs++
			assert.FileExists(t, p)
		case strings.HasSuffix(p, ".json"):
			jsons++
			assert.FileExists(t, p)
		}
	}
	assert.Equal(t, 2, pngs)
	assert.Equal(t, 2, jsons)
}

func TestRunBatchSkipsFailingEntries(t *testing.T) {
	config := writeBatchConfig(t, `{
	  "designs": [
	    {"type": "warp", "filename": "bad"},
	    {"type": "pattern", "seed": 1, "products": ["sticker"], "filename": "good"}
	  ]
	}`)

	out := t.TempDir()
	paths, err := RunBatch(config, BatchOptions{OutputDir: out, Fonts: testFonts()})
	require.NoError(t, err, "a failing entry must not abort the batch")

	require.Len(t, paths, 2, "one image plus one metadata file")
	assert.Contains(t, paths[0], "good")
}

func TestRunBatchMissingConfig(t *testing.T) {
	_, err := RunBatch(filepath.Join(t.TempDir(), "nope.json"), BatchOptions{})
	assert.Error(t, err)
}

func TestRunBatchDefaultFilenames(t *testing.T) {
	config := writeBatchConfig(t, `{
	  "designs": [{"type": "pattern", "seed": 5, "products": ["sticker"]}]
	}`)

	out := t.TempDir()
	paths, err := RunBatch(config, BatchOptions{OutputDir: out, Fonts: testFonts()})
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	assert.Contains(t, paths[0], "batch_000")
}
