package lmp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referencePalette builds a palette with the standard game's anchors: index 0
// black, the first ramp climbing to near-white at index 15.
func referencePalette() []byte {
	data := make([]byte, PaletteSize)
	for i := 0; i < 16; i++ {
		v := byte(i * 235 / 15)
		data[i*3], data[i*3+1], data[i*3+2] = v, v, v
	}
	// A pure red entry makes the channel order observable.
	data[79*3] = 0xff
	return data
}

type mapResolver map[string][]byte

func (m mapResolver) Resolve(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, errors.New("not found: " + name)
	}
	return data, nil
}

func TestDecodePalette(t *testing.T) {
	p, err := DecodePalette(referencePalette())
	require.NoError(t, err)

	assert.Equal(t, RGB(0, 0, 0), p.Get(0))
	assert.Equal(t, RGB(235, 235, 235), p.Get(15))
	assert.Equal(t, RGB(0xff, 0, 0), p.Get(79), "bytes are stored R,G,B")
	assert.Equal(t, referencePalette(), p.Bytes())

	cp := p.ColorPalette()
	require.Len(t, cp, PaletteColors)
	r, g, b, a := cp[79].RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
}

func TestDecodePaletteSize(t *testing.T) {
	for _, n := range []int{0, PaletteSize - 1, PaletteSize + 1} {
		_, err := DecodePalette(make([]byte, n))
		assert.ErrorIs(t, err, ErrPaletteSize, "size %d", n)
		assert.ErrorIs(t, err, ErrFormat, "size %d", n)
	}
}

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette(mapResolver{PaletteName: referencePalette()})
	require.NoError(t, err)
	assert.Equal(t, RGB(235, 235, 235), p.Get(15))

	_, err = LoadPalette(mapResolver{})
	assert.Error(t, err)
}

func TestDecodeImage(t *testing.T) {
	data := []byte{2, 0, 0, 0, 2, 0, 0, 0, 1, 2, 3, 4}

	for i := 0; i < 2; i++ {
		img, err := DecodeImage(data)
		require.NoError(t, err)
		assert.Equal(t, 2, img.Width())
		assert.Equal(t, 2, img.Height())
		assert.Equal(t, uint8(1), img.Get(0, 0))
		assert.Equal(t, uint8(2), img.Get(1, 0))
		assert.Equal(t, uint8(3), img.Get(0, 1))
		assert.Equal(t, uint8(4), img.Get(1, 1))
	}
}

func TestDecodeImageNonSquareIsRowMajor(t *testing.T) {
	// 3 wide, 2 high
	data := []byte{3, 0, 0, 0, 2, 0, 0, 0, 10, 11, 12, 20, 21, 22}
	img, err := DecodeImage(data)
	require.NoError(t, err)
	assert.Equal(t, uint8(12), img.Get(2, 0))
	assert.Equal(t, uint8(20), img.Get(0, 1))
	assert.Equal(t, "10 11 12 \n20 21 22 \n", img.String())
}

func TestDecodeImageErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrImageHeader},
		{"short header", []byte{2, 0, 0, 0}, ErrImageHeader},
		{"too few pixels", []byte{2, 0, 0, 0, 2, 0, 0, 0, 1, 2, 3}, ErrImageSize},
		{"too many pixels", []byte{1, 0, 0, 0, 1, 0, 0, 0, 1, 2}, ErrImageSize},
		{"huge dimensions", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, ErrImageSize},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeImage(tc.data)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestImagePaletted(t *testing.T) {
	p, err := DecodePalette(referencePalette())
	require.NoError(t, err)
	img, err := DecodeImage([]byte{3, 0, 0, 0, 2, 0, 0, 0, 0, 15, 79, 79, 15, 0})
	require.NoError(t, err)

	out := img.Paletted(p)
	assert.Equal(t, 3, out.Bounds().Dx())
	assert.Equal(t, 2, out.Bounds().Dy())
	assert.Equal(t, uint8(79), out.ColorIndexAt(2, 0))
	assert.Equal(t, uint8(79), out.ColorIndexAt(0, 1))
	assert.True(t, bytes.Equal(img.Pixels(), out.Pix))
}

func TestLoadImage(t *testing.T) {
	r := mapResolver{"gfx/pause.lmp": {1, 0, 0, 0, 1, 0, 0, 0, 7}}
	img, err := LoadImage(r, "gfx/pause.lmp")
	require.NoError(t, err)
	assert.Equal(t, uint8(7), img.Get(0, 0))

	r["gfx/bad.lmp"] = []byte{1}
	_, err = LoadImage(r, "gfx/bad.lmp")
	assert.ErrorIs(t, err, ErrImageHeader)
}
