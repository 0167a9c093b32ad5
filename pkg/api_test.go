package pkg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/pakfb/pkg/lmp"
	"github.com/provide-io/pakfb/pkg/pak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   t.Name(),
		Level:  hclog.Trace,
		Output: hclog.DefaultOutput,
	})
}

func greyPalette() []byte {
	pal := make([]byte, lmp.PaletteSize)
	for i := 0; i < lmp.PaletteColors; i++ {
		pal[i*3], pal[i*3+1], pal[i*3+2] = uint8(i), uint8(i), uint8(i)
	}
	return pal
}

func writePak(t *testing.T, path string, files map[string][]byte) {
	t.Helper()
	b := pak.NewBuilder()
	for name, data := range files {
		require.NoError(t, b.Add(name, data))
	}
	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
}

// failingSource serves an archive until broken is set, then fails every read.
type failingSource struct {
	*bytes.Reader
	broken bool
}

func (f *failingSource) Read(p []byte) (int, error) {
	if f.broken {
		return 0, errors.New("device went away")
	}
	return f.Reader.Read(p)
}

func TestOpenCatalogAndFramebuffer(t *testing.T) {
	dir := t.TempDir()
	writePak(t, filepath.Join(dir, "pak0.pak"), map[string][]byte{lmp.PaletteName: greyPalette()})

	cat, err := OpenCatalog(dir, testLogger(t))
	require.NoError(t, err)
	defer cat.Close()

	fb, err := NewFramebuffer(4, 2, cat)
	require.NoError(t, err)
	fb.Fill(200)
	fb.SwapBuffers()
	assert.Equal(t, []byte{200, 200, 200, 0}, fb.ColorBuffer()[:4])

	require.NoError(t, VerifyCatalogWithLogger(cat, testLogger(t)))
}

func TestOpenCatalogEmptyDirectory(t *testing.T) {
	_, err := OpenCatalog(t.TempDir(), nil)
	assert.ErrorIs(t, err, pak.ErrNotFound)
}

func TestOpenArchivesOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "mod.pak")
	second := filepath.Join(dir, "base.pak")
	writePak(t, first, map[string][]byte{"progs.dat": []byte("mod")})
	writePak(t, second, map[string][]byte{"progs.dat": []byte("base")})

	cat, err := OpenArchives([]string{first, second}, nil)
	require.NoError(t, err)
	defer cat.Close()

	data, err := cat.Resolve("progs.dat")
	require.NoError(t, err)
	assert.Equal(t, "mod", string(data))

	_, err = OpenArchives([]string{first, filepath.Join(dir, "nope.pak")}, nil)
	assert.Error(t, err)
}

func TestVerifyCatalogReportsFailures(t *testing.T) {
	b := pak.NewBuilder()
	require.NoError(t, b.Add("maps/e1m1.bsp", []byte("map")))
	data, err := b.Bytes()
	require.NoError(t, err)

	src := &failingSource{Reader: bytes.NewReader(data)}
	cat := pak.NewCatalogWithLogger(testLogger(t))
	defer cat.Close()
	require.NoError(t, cat.MountSource("pak0.pak", src))
	src.broken = true

	// One unreadable entry plus the missing palette.
	err = VerifyCatalogWithLogger(cat, testLogger(t))
	assert.ErrorIs(t, err, ErrVerificationFailed)
	assert.Contains(t, err.Error(), "2 problem(s)")
}

func TestOpenCatalogRejectsOutOfRangeEntry(t *testing.T) {
	dir := t.TempDir()
	h := pak.Header{Magic: pak.Magic, DirectoryOffset: pak.HeaderSize, DirectoryLength: pak.EntrySize}
	data := h.Pack()
	rec := make([]byte, pak.EntrySize)
	copy(rec, "maps/missing.bsp")
	binary.LittleEndian.PutUint32(rec[56:], 500)
	binary.LittleEndian.PutUint32(rec[60:], 10)
	data = append(data, rec...)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pak0.pak"), data, 0o600))

	_, err := OpenCatalog(dir, nil)
	assert.ErrorIs(t, err, pak.ErrOutOfBounds)
}

func TestVerifyCatalogNothingMounted(t *testing.T) {
	assert.ErrorIs(t, VerifyCatalogWithLogger(pak.NewCatalog(), nil), ErrNoArchivesMounted)
}
