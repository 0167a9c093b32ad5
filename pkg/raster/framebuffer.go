// Package raster implements the software framebuffer: an indexed pixel plane,
// the primitives that draw into it, and the palette translation that produces
// the true-colour presentation plane.
//
// Pixel writes are not clipped. Callers keep coordinates inside the plane;
// an out of range write panics or lands on the wrong pixel.
package raster

import (
	"fmt"
	"math"

	"github.com/provide-io/pakfb/pkg/lmp"
)

// BytesPerPixel in the presentation plane: R, G, B, reserved.
const BytesPerPixel = 4

// Framebuffer owns the indexed plane, the presentation plane and the palette.
type Framebuffer struct {
	width   int
	height  int
	pixels  []uint8 // width*height palette indices, row-major
	colors  []byte  // width*height*4, written only by SwapBuffers
	palette *lmp.Palette
}

// New creates a framebuffer and loads its palette through r.
func New(width, height int, r lmp.Resolver) (*Framebuffer, error) {
	p, err := lmp.LoadPalette(r)
	if err != nil {
		return nil, err
	}
	return NewWithPalette(width, height, p)
}

// NewWithPalette creates a framebuffer around an already decoded palette.
func NewWithPalette(width, height int, p *lmp.Palette) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	if p == nil {
		return nil, fmt.Errorf("framebuffer needs a palette")
	}
	return &Framebuffer{
		width:   width,
		height:  height,
		pixels:  make([]uint8, width*height),
		colors:  make([]byte, width*height*BytesPerPixel),
		palette: p,
	}, nil
}

func (fb *Framebuffer) Width() int            { return fb.width }
func (fb *Framebuffer) Height() int           { return fb.height }
func (fb *Framebuffer) Palette() *lmp.Palette { return fb.palette }

// Pixels returns the indexed plane.
func (fb *Framebuffer) Pixels() []uint8 { return fb.pixels }

// ColorBuffer returns the presentation plane as of the last SwapBuffers.
func (fb *Framebuffer) ColorBuffer() []byte { return fb.colors }

// Set writes a palette index. No bounds checking.
func (fb *Framebuffer) Set(x, y int, index uint8) {
	fb.pixels[y*fb.width+x] = index
}

// Get reads a palette index. No bounds checking.
func (fb *Framebuffer) Get(x, y int) uint8 {
	return fb.pixels[y*fb.width+x]
}

// Fill overwrites the whole indexed plane.
func (fb *Framebuffer) Fill(index uint8) {
	for i := range fb.pixels {
		fb.pixels[i] = index
	}
}

// SwapBuffers translates every index through the palette into the
// presentation plane as R, G, B, 0.
func (fb *Framebuffer) SwapBuffers() {
	for i, px := range fb.pixels {
		c := fb.palette.Get(px)
		o := i * BytesPerPixel
		fb.colors[o] = c.R
		fb.colors[o+1] = c.G
		fb.colors[o+2] = c.B
		fb.colors[o+3] = 0
	}
}

// Line draws an integer Bresenham line from (x0,y0) to (x1,y1), both
// endpoints included. All eight octants are handled; the earlier
// implementation only drew shallow lines with x1 > x0 and y1 >= y0, and for
// those inputs this produces a standard Bresenham line.
func (fb *Framebuffer) Line(x0, y0, x1, y1 int, index uint8) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		fb.Set(x0, y0, index)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// LineDDA draws a line by stepping x and accumulating the slope in floating
// point. Only shallow lines with x1 > x0 are drawn; the end column is
// excluded.
func (fb *Framebuffer) LineDDA(x0, y0, x1, y1 int, index uint8) {
	if x1 <= x0 {
		return
	}
	m := float64(y1-y0) / float64(x1-x0)
	y := float64(y0)
	for x := x0; x < x1; x++ {
		fb.Set(x, int(math.Round(y)), index)
		y += m
	}
}

// Rect fills from (x,y) through (x+width, y+height) inclusive, so width+1
// columns and height+1 rows are painted.
func (fb *Framebuffer) Rect(x, y, width, height int, index uint8) {
	for row := y; row <= y+height; row++ {
		for col := x; col <= x+width; col++ {
			fb.Set(col, row, index)
		}
	}
}

// Triangle fills every integer point inside v0, v1, v2. The bounding box is
// clamped to the plane and each point is accepted when its barycentric
// coordinates s, t relative to edges v1-v0 and v2-v0 satisfy s >= 0, t >= 0,
// s+t <= 1. Zero-area triangles paint nothing.
func (fb *Framebuffer) Triangle(v0, v1, v2 Vec2, index uint8) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	den := e1.Cross(e2)
	if den == 0 {
		return
	}

	minX := clamp(int(math.Ceil(min(v0.X, v1.X, v2.X))), 0, fb.width-1)
	maxX := clamp(int(math.Floor(max(v0.X, v1.X, v2.X))), 0, fb.width-1)
	minY := clamp(int(math.Ceil(min(v0.Y, v1.Y, v2.Y))), 0, fb.height-1)
	maxY := clamp(int(math.Floor(max(v0.Y, v1.Y, v2.Y))), 0, fb.height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			q := V(float64(x), float64(y)).Sub(v0)
			s := q.Cross(e2) / den
			t := e1.Cross(q) / den
			if s >= 0 && t >= 0 && s+t <= 1 {
				fb.Set(x, y, index)
			}
		}
	}
}

// Bezier plots n+1 samples of c, each rounded to the nearest pixel.
func (fb *Framebuffer) Bezier(c Curve, n int, index uint8) {
	for _, p := range c.Approximate(n) {
		x, y := p.Round()
		fb.Set(x, y, index)
	}
}

// DrawBitmap copies img with its top-left corner at (x, y). No blending, no
// clipping.
func (fb *Framebuffer) DrawBitmap(x, y int, img *lmp.Image) {
	for j := 0; j < img.Height(); j++ {
		for i := 0; i < img.Width(); i++ {
			fb.Set(x+i, y+j, img.Get(i, j))
		}
	}
}

// Gradient fills each column with an index interpolated from start toward
// end across the width. end must be greater than start; otherwise the plane
// is filled with start.
func (fb *Framebuffer) Gradient(start, end uint8) {
	if end <= start {
		fb.Fill(start)
		return
	}
	span := float64(end - start)
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			p := float64(x) / float64(fb.width)
			fb.Set(x, y, start+uint8(p*span))
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
