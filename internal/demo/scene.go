// Package demo draws the test scene shared by the window host and the
// headless render command.
package demo

import (
	"math"

	"github.com/provide-io/pakfb/pkg/lmp"
	"github.com/provide-io/pakfb/pkg/raster"
)

// Palette indices used by the scene.
const (
	Background uint8 = 24
	LineColor  uint8 = 0
	RectColor  uint8 = 79
	TriColor   uint8 = 192
	CurveColor uint8 = 251
)

// MinSize is the smallest framebuffer edge the scene will draw into.
const MinSize = 32

// Scene is the demo picture. Bitmap, when set and small enough, is blitted
// in the top left corner.
type Scene struct {
	Bitmap *lmp.Image
}

// Draw renders frame tick into fb and swaps it. Every coordinate is derived
// from the framebuffer size so nothing is written out of range.
func (s *Scene) Draw(fb *raster.Framebuffer, tick uint64) {
	w, h := fb.Width(), fb.Height()
	if w < MinSize || h < MinSize {
		fb.Fill(Background)
		fb.SwapBuffers()
		return
	}

	fb.Fill(Background)

	// The diagonal from (20,20) towards (500,500), shortened to fit.
	end := min(500, w-1, h-1)
	fb.Line(20, 20, end, end, LineColor)

	phase := float64(tick%360) * math.Pi / 180

	rw, rh := w/5, h/6
	rx := w/2 + int(float64(w/2-rw-1)*0.5*(1+math.Sin(phase)))
	rx = max(0, min(rx, w-1-rw))
	fb.Rect(rx, h/10, rw, rh, RectColor)

	fb.Triangle(
		raster.V(float64(w)*0.1, float64(h)*0.9),
		raster.V(float64(w)*0.3, float64(h)*0.55),
		raster.V(float64(w)*0.45, float64(h)*0.95),
		TriColor,
	)

	sway := (0.5 + 0.4*math.Cos(phase)) * float64(h-1)
	curve := raster.NewCurve(
		raster.V(float64(w)*0.55, float64(h)*0.9),
		raster.V(float64(w)*0.75, sway),
		raster.V(float64(w)*0.95, float64(h)*0.9),
	)
	fb.Bezier(curve, 64, CurveColor)

	if img := s.Bitmap; img != nil && img.Width()+8 <= w && img.Height()+8 <= h {
		fb.DrawBitmap(8, 8, img)
	}

	fb.SwapBuffers()
}
