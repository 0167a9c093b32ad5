// Package ebitenwin shows the presentation plane in a desktop window using
// ebiten and turns window input into display events.
package ebitenwin

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/pakfb/pkg/display"
	"golang.org/x/image/font/basicfont"
)

// ErrQuit ends Run without reporting an error.
var ErrQuit = display.ErrQuit

// FrameFunc is called once per tick with the events gathered since the last
// tick. It draws, swaps, and hands the frame to the window via UpdateFrame.
type FrameFunc func(w *Window, events []display.Event) error

// Config controls the window.
type Config struct {
	Title  string
	Width  int
	Height int
	Scale  int
	// ShowStatus draws the status line over the frame.
	ShowStatus bool
}

// Window is an ebiten.Game backed by a single RGBA frame.
type Window struct {
	cfg    Config
	frame  []byte
	image  *ebiten.Image
	queue  *display.Queue
	onTick FrameFunc
	status string
	frames uint64
	logger hclog.Logger
}

// New creates a window. Nothing is shown until Run.
func New(cfg Config, onTick FrameFunc, logger hclog.Logger) *Window {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	if cfg.Title == "" {
		cfg.Title = "pakfb"
	}
	return &Window{
		cfg:    cfg,
		frame:  make([]byte, cfg.Width*cfg.Height*4),
		queue:  display.NewQueue(64),
		onTick: onTick,
		logger: logger,
	}
}

// Size implements display.Surface.
func (w *Window) Size() (int, int) {
	return w.cfg.Width, w.cfg.Height
}

// UpdateFrame implements display.Surface. The reserved byte becomes alpha 255.
func (w *Window) UpdateFrame(buf []byte) error {
	if err := display.CheckFrame(buf, w.cfg.Width, w.cfg.Height); err != nil {
		return err
	}
	copy(w.frame, buf)
	for i := 3; i < len(w.frame); i += 4 {
		w.frame[i] = 0xff
	}
	return nil
}

// SetStatus replaces the status line.
func (w *Window) SetStatus(s string) {
	w.status = s
}

// FrameCount reports how many frames have been drawn.
func (w *Window) FrameCount() uint64 {
	return w.frames
}

// Run opens the window and blocks until the frame callback returns ErrQuit,
// another error, or the window is closed.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.cfg.Width*w.cfg.Scale, w.cfg.Height*w.cfg.Scale)
	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(true)

	w.logger.Debug("opening window", "width", w.cfg.Width, "height", w.cfg.Height, "scale", w.cfg.Scale)

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) || errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

func (w *Window) pollInput() {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		w.queue.Push(display.Event{Kind: display.EventKeyDown, Key: k.String()})
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		w.queue.Push(display.Event{Kind: display.EventKeyUp, Key: k.String()})
	}
	if ebiten.IsWindowBeingClosed() {
		w.queue.Push(display.Event{Kind: display.EventQuit})
	}
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	w.pollInput()
	if w.onTick == nil {
		return nil
	}
	if err := w.onTick(w, w.queue.Drain()); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.image == nil {
		w.image = ebiten.NewImage(w.cfg.Width, w.cfg.Height)
	}
	w.image.WritePixels(w.frame)
	screen.DrawImage(w.image, nil)

	if w.cfg.ShowStatus && w.status != "" {
		text.Draw(screen, w.status, basicfont.Face7x13, 4, w.cfg.Height-4, color.White)
	}
	w.frames++
}

// Layout implements ebiten.Game.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.cfg.Width, w.cfg.Height
}
