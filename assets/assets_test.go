package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFontDefault(t *testing.T) {
	data, err := LoadFont("")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, DefaultFontTTF, data)
}

func TestLoadFontFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.ttf")
	require.NoError(t, os.WriteFile(path, DefaultFontTTF, 0644))

	data, err := LoadFont(path)
	require.NoError(t, err)
	assert.Len(t, data, len(DefaultFontTTF))
}

func TestLoadFontErrors(t *testing.T) {
	_, err := LoadFont(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.ttf")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err = LoadFont(empty)
	assert.ErrorContains(t, err, "is empty")
}
