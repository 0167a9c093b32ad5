// Package display connects the framebuffer's presentation plane to something
// that shows it, and carries input events from that surface back to the run
// loop.
package display

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// Surface accepts finished frames of width*height*4 bytes (R, G, B, reserved).
type Surface interface {
	UpdateFrame(buf []byte) error
	Size() (width, height int)
}

// FrameError describes a frame the surface could not accept.
type FrameError struct {
	Got, Want int
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("display: frame is %d bytes, surface needs %d", e.Got, e.Want)
}

// CheckFrame verifies buf fits a width x height surface.
func CheckFrame(buf []byte, width, height int) error {
	if want := width * height * 4; len(buf) != want {
		return &FrameError{Got: len(buf), Want: want}
	}
	return nil
}

// Headless keeps the most recent frame in memory. Like the framebuffer it is
// driven from a single goroutine.
type Headless struct {
	width, height int
	frame         []byte
	frameCount    uint64
}

// NewHeadless creates an off-screen surface.
func NewHeadless(width, height int) *Headless {
	return &Headless{
		width:  width,
		height: height,
		frame:  make([]byte, width*height*4),
	}
}

func (h *Headless) Size() (int, int) { return h.width, h.height }

// UpdateFrame copies buf as the current frame.
func (h *Headless) UpdateFrame(buf []byte) error {
	if err := CheckFrame(buf, h.width, h.height); err != nil {
		return err
	}
	copy(h.frame, buf)
	h.frameCount++
	return nil
}

// FrameCount reports how many frames were accepted.
func (h *Headless) FrameCount() uint64 {
	return h.frameCount
}

// Snapshot returns the current frame as an opaque image.
func (h *Headless) Snapshot() *image.RGBA {
	return FrameImage(h.frame, h.width, h.height)
}

// FrameImage wraps a copy of buf as an RGBA image with alpha forced to 255;
// the reserved byte of the presentation plane is zero.
func FrameImage(buf []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, buf)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
