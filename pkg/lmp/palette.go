// Package lmp decodes the raw lump formats used for 2-D game graphics: the
// 256 colour palette and small indexed bitmaps.
package lmp

import (
	"errors"
	"fmt"
	"image/color"
)

const (
	// PaletteName is the resource the palette is loaded from.
	PaletteName = "gfx/palette.lmp"

	PaletteColors = 256
	PaletteSize   = PaletteColors * 3
)

var (
	ErrFormat      = errors.New("invalid lump format")
	ErrPaletteSize = fmt.Errorf("%w: palette must be exactly %d bytes", ErrFormat, PaletteSize)
)

// Resolver fetches a named resource. *pak.Catalog satisfies it.
type Resolver interface {
	Resolve(name string) ([]byte, error)
}

// Color is one palette entry. The fourth byte pads entries to 4 bytes and is
// always zero.
type Color struct {
	R, G, B  uint8
	reserved uint8
}

// RGB builds a Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Palette maps 8-bit indices to colours. It is immutable after decoding.
type Palette struct {
	colors [PaletteColors]Color
}

// DecodePalette reads 256 (R,G,B) triples in index order.
func DecodePalette(data []byte) (*Palette, error) {
	if len(data) != PaletteSize {
		return nil, fmt.Errorf("%w: got %d", ErrPaletteSize, len(data))
	}

	p := &Palette{}
	for i := range p.colors {
		p.colors[i] = RGB(data[i*3], data[i*3+1], data[i*3+2])
	}
	return p, nil
}

// LoadPalette resolves PaletteName and decodes it.
func LoadPalette(r Resolver) (*Palette, error) {
	data, err := r.Resolve(PaletteName)
	if err != nil {
		return nil, fmt.Errorf("loading palette: %w", err)
	}
	return DecodePalette(data)
}

// Get returns the colour for index i.
func (p *Palette) Get(i uint8) Color {
	return p.colors[i]
}

// Bytes re-encodes the palette in its on-disk form.
func (p *Palette) Bytes() []byte {
	buf := make([]byte, 0, PaletteSize)
	for _, c := range p.colors {
		buf = append(buf, c.R, c.G, c.B)
	}
	return buf
}

// ColorPalette converts the table for use with image.Paletted.
func (p *Palette) ColorPalette() color.Palette {
	out := make(color.Palette, PaletteColors)
	for i, c := range p.colors {
		out[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	return out
}
