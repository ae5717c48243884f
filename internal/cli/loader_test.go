package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_EmptyDirSelectsSeed(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, 6, c.Len())
}

func TestLoadCatalog_FromCUEDirectory(t *testing.T) {
	c, err := LoadCatalog(filepath.Join("testdata", "catalog"))
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())

	keyboard, ok := c.ByID(10)
	require.True(t, ok)
	assert.Equal(t, "Mechanical Keyboard", keyboard.Name)
	assert.True(t, keyboard.InStock)

	webcam, ok := c.ByID(11)
	require.True(t, ok)
	assert.False(t, webcam.InStock)

	stand, ok := c.ByID(12)
	require.True(t, ok)
	require.Len(t, stand.Comments, 1)
	assert.Equal(t, "Casey", stand.Comments[0].Author)

	assert.Equal(t, 199.0, c.MaxPrice())
}

func TestLoadCatalog_MissingDirectory(t *testing.T) {
	_, err := LoadCatalog(filepath.Join("testdata", "no-such-dir"))
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoadCatalog_NoCUEFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("not cue"), 0o644))

	_, err := LoadCatalog(dir)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNoFiles, loadErr.Code)
}

func TestLoadCatalog_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.cue")
	require.NoError(t, os.WriteFile(path, []byte("product: {}"), 0o644))

	_, err := LoadCatalog(path)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}
