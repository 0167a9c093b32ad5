package lmp

import (
	"encoding/binary"
	"fmt"
	"image"
	"strings"
)

// ImageHeaderSize is the width and height prefix of a bitmap lump.
const ImageHeaderSize = 8

var (
	ErrImageHeader = fmt.Errorf("%w: bitmap shorter than its %d byte header", ErrFormat, ImageHeaderSize)
	ErrImageSize   = fmt.Errorf("%w: bitmap pixel count does not match width*height", ErrFormat)
)

// Image is an indexed bitmap stored row-major: pixel (x, y) lives at
// y*width+x. The pixel slice aliases the decoded lump.
type Image struct {
	width  uint32
	height uint32
	pixels []byte
}

// DecodeImage reads a bitmap lump: uint32 width, uint32 height (little
// endian), then exactly width*height palette indices.
func DecodeImage(data []byte) (*Image, error) {
	if len(data) < ImageHeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrImageHeader, len(data))
	}

	w := binary.LittleEndian.Uint32(data[0:4])
	h := binary.LittleEndian.Uint32(data[4:8])
	pixels := data[ImageHeaderSize:]

	if uint64(w)*uint64(h) != uint64(len(pixels)) {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrImageSize, w, h, uint64(w)*uint64(h), len(pixels))
	}

	return &Image{width: w, height: h, pixels: pixels}, nil
}

// LoadImage resolves name and decodes it as a bitmap.
func LoadImage(r Resolver, name string) (*Image, error) {
	data, err := r.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	img, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

func (img *Image) offset(x, y int) int {
	return y*int(img.width) + x
}

// Get returns the palette index at (x, y). Coordinates are not checked.
func (img *Image) Get(x, y int) uint8 {
	return img.pixels[img.offset(x, y)]
}

func (img *Image) Width() int  { return int(img.width) }
func (img *Image) Height() int { return int(img.height) }

// Pixels returns the raw index bytes.
func (img *Image) Pixels() []byte {
	return img.pixels
}

// Paletted converts the bitmap to an image.Paletted using p.
func (img *Image) Paletted(p *Palette) *image.Paletted {
	out := image.NewPaletted(image.Rect(0, 0, img.Width(), img.Height()), p.ColorPalette())
	for y := 0; y < img.Height(); y++ {
		copy(out.Pix[y*out.Stride:], img.pixels[img.offset(0, y):img.offset(0, y+1)])
	}
	return out
}

// String dumps the indices one row per line.
func (img *Image) String() string {
	var sb strings.Builder
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			fmt.Fprintf(&sb, "%d ", img.Get(x, y))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
