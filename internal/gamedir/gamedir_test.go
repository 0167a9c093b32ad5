package gamedir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBaseDir(t *testing.T) {
	t.Setenv("PAKFB_BASEDIR", "")
	assert.Equal(t, filepath.Join(".", "id1"), ResolveBaseDir(""))

	t.Setenv("PAKFB_BASEDIR", "/games/quake/rogue")
	assert.Equal(t, "/games/quake/rogue", ResolveBaseDir(""))
	assert.Equal(t, "hipnotic", ResolveBaseDir("hipnotic"))
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	assert.ErrorIs(t, Validate(dir), ErrNoArchives)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "PAK0.PAK"), []byte("PACK"), 0o644))
	assert.NoError(t, Validate(dir))

	assert.Error(t, Validate(filepath.Join(dir, "missing")))
	assert.Error(t, Validate(filepath.Join(dir, "PAK0.PAK")))
}

func TestEntryPath(t *testing.T) {
	root := t.TempDir()

	got, err := EntryPath(root, "gfx/palette.lmp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "gfx", "palette.lmp"), got)

	for _, bad := range []string{"../etc/passwd", "/abs", "..", ""} {
		_, err := EntryPath(root, bad)
		assert.Error(t, err, bad)
	}

	got, err = EntryPath(root, "..hidden")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "..hidden"), got)
}

func TestCreateOutputDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")
	require.NoError(t, CreateOutputDir(root, []string{"gfx/palette.lmp", "maps/e1m1.bsp", "end.txt"}, 0))

	for _, dir := range []string{"gfx", "maps"} {
		info, err := os.Stat(filepath.Join(root, dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	assert.Error(t, CreateOutputDir(root, []string{"../escape"}, 0))
}

func TestMarker(t *testing.T) {
	root := t.TempDir()
	_, ok := ReadMarker(root)
	assert.False(t, ok)

	require.NoError(t, MarkComplete(root, []string{"pak0.pak"}, 3, "raw"))
	marker, ok := ReadMarker(root)
	require.True(t, ok)
	assert.Equal(t, []string{"pak0.pak"}, marker.Archives)
	assert.Equal(t, 3, marker.Entries)
	assert.Equal(t, "raw", marker.Chain)

	require.NoError(t, os.WriteFile(filepath.Join(root, MarkerName), []byte("{"), 0o644))
	_, ok = ReadMarker(root)
	assert.False(t, ok)
}
