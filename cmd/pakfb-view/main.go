package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/provide-io/pakfb/internal/demo"
	"github.com/provide-io/pakfb/internal/gamedir"
	"github.com/provide-io/pakfb/pkg"
	"github.com/provide-io/pakfb/pkg/display"
	"github.com/provide-io/pakfb/pkg/display/ebitenwin"
	"github.com/provide-io/pakfb/pkg/lmp"
	"github.com/provide-io/pakfb/pkg/logging"
	"github.com/provide-io/pakfb/pkg/utils/params"
)

// Exit codes
const (
	exitOK     = 0
	exitConfig = 2
	exitData   = 3
	exitWindow = 4
	exitPanic  = 101
)

func main() {
	// Set up panic recovery to return specific exit code
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
			debug.PrintStack()
			os.Exit(exitPanic)
		}
	}()

	os.Exit(run())
}

func run() int {
	opts, err := params.FromEnvironment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse %s: %v\n", params.EnvArgs, err)
		return exitConfig
	}

	level, _ := opts.CheckParam("-loglevel")
	logger := logging.NewLogger("pakfb-view", logging.ResolveLogLevel(level), nil)

	basedir, _ := opts.CheckParam("-basedir")
	dir := gamedir.ResolveBaseDir(basedir)
	if err := gamedir.Validate(dir); err != nil {
		logger.Error("Invalid game directory", "error", err)
		return exitConfig
	}

	cat, err := pkg.OpenCatalog(dir, logger)
	if err != nil {
		logger.Error("Failed to open catalog", "dir", dir, "error", err)
		return exitData
	}
	defer cat.Close()

	width := opts.IntOr("-width", 800)
	height := opts.IntOr("-height", 600)
	fb, err := pkg.NewFramebuffer(width, height, cat)
	if err != nil {
		logger.Error("Failed to create framebuffer", "error", err)
		return exitData
	}

	scene := &demo.Scene{}
	if name, ok := opts.CheckParam("-bitmap"); ok {
		if scene.Bitmap, err = lmp.LoadImage(cat, name); err != nil {
			logger.Warn("Bitmap not loaded", "name", name, "error", err)
		}
	}

	host := demo.NewHost(fb, scene, logger)
	win := ebitenwin.New(ebitenwin.Config{
		Title:      "pakfb",
		Width:      width,
		Height:     height,
		Scale:      opts.IntOr("-scale", 1),
		ShowStatus: !opts.IsSet("-nostatus"),
	}, func(w *ebitenwin.Window, events []display.Event) error {
		w.SetStatus(fmt.Sprintf("%s  frame %d", dir, host.Ticks()))
		return host.Frame(w, events)
	}, logger)

	logger.Info("Starting view", "dir", dir, "width", width, "height", height)
	if err := win.Run(); err != nil {
		logger.Error("Window failed", "error", err)
		return exitWindow
	}
	logger.Info("Window closed", "frames", host.Ticks())
	return exitOK
}
