package jsonstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todopat/internal/model"
)

func TestLoadMissingFile(t *testing.T) {
	f := New[[]model.Item](filepath.Join(t.TempDir(), "does-not-exist.json"))

	items, err := f.Load()
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte("{this is not json"), 0o644))

	f := New[[]model.Item](path)
	_, err := f.Load()

	var corrupt *CorruptError
	assert.ErrorAs(t, err, &corrupt)
	assert.Equal(t, path, corrupt.Path)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	f := New[[]model.Item](path)

	items := []model.Item{
		{Text: "Buy milk"},
		{Text: "جلسه هفتگی تیم توسعه", Completed: true},
	}
	require.NoError(t, f.Save(items))

	loaded, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, items, loaded)
	assert.Equal(t, "جلسه هفتگی تیم توسعه", loaded[1].Text)
}

// Saving what was just loaded must reproduce the file byte for byte.
func TestSaveIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	f := New[[]model.Item](path)

	require.NoError(t, f.Save([]model.Item{
		{Text: "first"},
		{Text: "جلسه هفتگی تیم توسعه"},
	}))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := f.Load()
	require.NoError(t, err)
	require.NoError(t, f.Save(loaded))

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSaveDoesNotEscapeHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	f := New[[]model.Item](path)

	require.NoError(t, f.Save([]model.Item{{Text: "a < b && b > c"}}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "a < b && b > c")
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	f := New[map[string]string](filepath.Join(dir, "patterns.json"))

	require.NoError(t, f.Save(map[string]string{"mtg": "Meeting with team"}))
	require.NoError(t, f.Save(map[string]string{"mtg": "Meeting with team", "call": "Phone call with"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "patterns.json", entries[0].Name())
}

func TestMapKeysAreSortedOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	f := New[map[string]string](path)

	require.NoError(t, f.Save(map[string]string{"zz": "last", "aa": "first"}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Less(t, strings.Index(string(b), "aa"), strings.Index(string(b), "zz"))
}
