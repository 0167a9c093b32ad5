package pak

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/provide-io/pakfb/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFirstMountedWins(t *testing.T) {
	c := NewCatalogWithLogger(testLogger(t))
	defer c.Close()

	require.NoError(t, c.MountSource("a.pak", bytes.NewReader(buildArchive(t, "x", "from-a", "only-a", "A"))))
	require.NoError(t, c.MountSource("b.pak", bytes.NewReader(buildArchive(t, "x", "from-b", "only-b", "B"))))

	got, err := c.Resolve("x")
	require.NoError(t, err)
	assert.Equal(t, "from-a", string(got))

	got, err = c.Resolve("only-b")
	require.NoError(t, err)
	assert.Equal(t, "B", string(got))

	_, err = c.Resolve("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	a, _, ok := c.Locate("x")
	require.True(t, ok)
	assert.Equal(t, "a.pak", a.Name())
}

func TestReadFromNamedArchive(t *testing.T) {
	c := NewCatalog()
	defer c.Close()
	require.NoError(t, c.MountSource("a.pak", bytes.NewReader(buildArchive(t, "x", "from-a"))))
	require.NoError(t, c.MountSource("b.pak", bytes.NewReader(buildArchive(t, "x", "from-b"))))

	got, err := c.ReadFrom("b.pak", "x")
	require.NoError(t, err)
	assert.Equal(t, "from-b", string(got))

	_, err = c.ReadFrom("c.pak", "x")
	assert.ErrorIs(t, err, ErrUnknownArchive)
}

func TestListFlagsShadowedEntries(t *testing.T) {
	c := NewCatalog()
	defer c.Close()
	require.NoError(t, c.MountSource("pak1.pak", bytes.NewReader(buildArchive(t, "gfx/palette.lmp", "new"))))
	require.NoError(t, c.MountSource("pak0.pak", bytes.NewReader(buildArchive(t, "gfx/palette.lmp", "old", "maps/start.bsp", "s"))))

	list := c.List()
	require.Len(t, list, 3)
	assert.Equal(t, CatalogEntry{Archive: "pak1.pak", Entry: list[0].Entry, Shadowed: false}, list[0])
	assert.True(t, list[1].Shadowed)
	assert.Equal(t, "pak0.pak", list[1].Archive)
	assert.False(t, list[2].Shadowed)
}

func writeArchive(t *testing.T, path string, files ...string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, buildArchive(t, files...), 0o600))
}

func TestMountDirectoryHigherNumbersTakePrecedence(t *testing.T) {
	dir := t.TempDir()
	writeArchive(t, filepath.Join(dir, "pak0.pak"), "gfx/palette.lmp", "base", "maps/e1m1.bsp", "e1m1")
	writeArchive(t, filepath.Join(dir, "pak1.pak"), "gfx/palette.lmp", "registered")
	// pak3 is unreachable because pak2 is missing.
	writeArchive(t, filepath.Join(dir, "pak3.pak"), "gfx/palette.lmp", "orphan")

	c := NewCatalogWithLogger(testLogger(t))
	defer c.Close()
	require.NoError(t, c.MountDirectory(dir))

	archives := c.Archives()
	require.Len(t, archives, 2)
	assert.Equal(t, "pak1.pak", archives[0].Name())
	assert.Equal(t, "pak0.pak", archives[1].Name())

	got, err := c.Resolve("gfx/palette.lmp")
	require.NoError(t, err)
	assert.Equal(t, "registered", string(got))

	got, err = c.Resolve("maps/e1m1.bsp")
	require.NoError(t, err)
	assert.Equal(t, "e1m1", string(got))
}

func TestMountDirectoryUpperCaseNames(t *testing.T) {
	dir := t.TempDir()
	writeArchive(t, filepath.Join(dir, "PAK0.PAK"), "a", "1")

	c := NewCatalog()
	defer c.Close()
	require.NoError(t, c.MountDirectory(dir))
	require.Len(t, c.Archives(), 1)
}

func TestMountDirectoryEmpty(t *testing.T) {
	c := NewCatalog()
	err := c.MountDirectory(t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMountMissingFile(t *testing.T) {
	c := NewCatalog()
	err := c.Mount(filepath.Join(t.TempDir(), "nope.pak"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMountSourceFailureReleasesHandle(t *testing.T) {
	c := NewCatalog()
	err := c.MountSource("junk.pak", bytes.NewReader([]byte("not an archive at all")))
	require.ErrorIs(t, err, ErrInvalidMagic)
	assert.Empty(t, c.Archives())
	assert.Equal(t, 0, c.storage.Len())
}

func TestMountDirectoryFailureRollsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pak0.pak"), append([]byte("WAD2"), make([]byte, 8)...), 0o600))
	writeArchive(t, filepath.Join(dir, "pak1.pak"), "maps/e1m1.bsp", "patched")

	c := NewCatalogWithLogger(testLogger(t))
	defer c.Close()
	require.NoError(t, c.MountSource("mod.pak", bytes.NewReader(buildArchive(t, "progs.dat", "mod"))))

	err := c.MountDirectory(dir)
	require.ErrorIs(t, err, ErrInvalidMagic)

	archives := c.Archives()
	require.Len(t, archives, 1, "pak1 mounted by the failed call is removed")
	assert.Equal(t, "mod.pak", archives[0].Name())
	assert.Equal(t, 1, c.storage.Len())

	_, err = c.Resolve("maps/e1m1.bsp")
	assert.ErrorIs(t, err, ErrNotFound)
	got, err := c.Resolve("progs.dat")
	require.NoError(t, err)
	assert.Equal(t, "mod", string(got))
}

func TestReadsAfterCloseFail(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.MountSource("pak0.pak", bytes.NewReader(buildArchive(t, "a", "1"))))
	a := c.Archives()[0]
	require.NoError(t, c.Close())

	_, err := a.ReadFile("a")
	assert.ErrorIs(t, err, storage.ErrBadHandle)
}
