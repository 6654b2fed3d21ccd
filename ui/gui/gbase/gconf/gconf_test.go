package gconf

import (
	"os"
	"path/filepath"
	"testing"

	"clickchess/ui/gui/gbase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.json")
	c, err := NewGUIConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "light", c.Theme)
	assert.Equal(t, "en", c.Lang)
	assert.Equal(t, gbase.WindowW, c.WindowW)
	assert.Empty(t, c.StartFEN)
	assert.Equal(t, path, c.Path())
}

func TestCorrectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"theme": "purple",
		"language": "de",
		"window_w": 10,
		"window_h": 10,
		"flipped": true,
		"start_fen": "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	}`), 0644))

	c, err := NewGUIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "light", c.Theme)
	assert.Equal(t, "en", c.Lang)
	assert.Equal(t, gbase.WindowW, c.WindowW)
	assert.Equal(t, gbase.WindowH, c.WindowH)
	assert.True(t, c.Flipped)
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1", c.StartFEN)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	c, err := NewGUIConfig(path)
	require.NoError(t, err)

	c.Theme = "dark"
	c.Flipped = true
	require.NoError(t, c.Save())

	again, err := NewGUIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", again.Theme)
	assert.True(t, again.Flipped)
}

func TestBrokenJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err := NewGUIConfig(path)
	assert.ErrorContains(t, err, "error decode config")
}
