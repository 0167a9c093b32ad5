package demo

import (
	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/pakfb/pkg/display"
	"github.com/provide-io/pakfb/pkg/raster"
)

// Host runs the per-frame loop body: handle events, draw, swap, present.
type Host struct {
	fb     *raster.Framebuffer
	scene  *Scene
	tick   uint64
	logger hclog.Logger
}

// NewHost creates a host drawing scene into fb.
func NewHost(fb *raster.Framebuffer, scene *Scene, logger hclog.Logger) *Host {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if scene == nil {
		scene = &Scene{}
	}
	return &Host{fb: fb, scene: scene, logger: logger}
}

// Frame processes events and presents one frame to surface. A quit event or
// the Escape key returns display.ErrQuit before anything is drawn.
func (h *Host) Frame(surface display.Surface, events []display.Event) error {
	for _, ev := range events {
		switch {
		case ev.Kind == display.EventQuit:
			h.logger.Debug("window closed")
			return display.ErrQuit
		case ev.Kind == display.EventKeyDown && ev.Key == "Escape":
			h.logger.Debug("escape pressed")
			return display.ErrQuit
		case ev.Kind == display.EventKeyDown:
			h.logger.Trace("key down", "key", ev.Key)
		}
	}

	h.scene.Draw(h.fb, h.tick)
	h.tick++
	return surface.UpdateFrame(h.fb.ColorBuffer())
}

// Ticks reports how many frames were drawn.
func (h *Host) Ticks() uint64 {
	return h.tick
}
