package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPolarity(t *testing.T) {
	dir := t.TempDir()
	positive := writeFile(t, dir, "positive.txt", "; comment header\n\nlove\nWonderful\n")
	negative := writeFile(t, dir, "negative.txt", "hate\nterrible\n")

	lex, err := LoadPolarity("bing", positive, negative)
	require.NoError(t, err)

	assert.Equal(t, "bing", lex.Name)
	assert.Equal(t, 4, lex.Len())

	v, ok := lex.Lookup("love")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	v, ok = lex.Lookup("wonderful")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	v, ok = lex.Lookup("terrible")
	require.True(t, ok)
	assert.Equal(t, -1.0, v)

	_, ok = lex.Lookup("comment")
	assert.False(t, ok)
}

func TestLoadScored(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "afinn.txt", "abandon\t-2\nwin\t4\nmalformed line\nsome-word\tnot-a-number\n")

	lex, err := LoadScored("afinn", path)
	require.NoError(t, err)

	assert.Equal(t, 2, lex.Len())

	v, ok := lex.Lookup("abandon")
	require.True(t, ok)
	assert.Equal(t, -2.0, v)

	v, ok = lex.Lookup("win")
	require.True(t, ok)
	assert.Equal(t, 4.0, v)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadScored("afinn", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)

	_, err = LoadPolarity("bing", filepath.Join(t.TempDir(), "nope.txt"), filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestFromMapLowercases(t *testing.T) {
	lex := FromMap("test", map[string]float64{"LOVE": 1})

	v, ok := lex.Lookup("love")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	_, ok = lex.Lookup("LOVE")
	assert.False(t, ok)
}
