// Package main is the bare SDL viewer: captured cursor, FPS in the title,
// ESC quits and SPACE held draws wireframe.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/notreal/internal/app"
	"github.com/Faultbox/notreal/internal/config"
	"github.com/Faultbox/notreal/internal/engine/input"
	"github.com/Faultbox/notreal/internal/engine/input/sdlinput"
	"github.com/Faultbox/notreal/internal/engine/window"
	"github.com/Faultbox/notreal/internal/logger"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("=== Notreal Viewer (SDL) ===")

	win, err := window.New(window.FromGraphics(cfg.Graphics))
	if err != nil {
		logger.Error("failed to create window", zap.Error(err))
		os.Exit(1)
	}
	defer win.Close()

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	events := make([]input.Event, 0, 64)
	for !a.QuitRequested() {
		events = sdlinput.Poll(events[:0])

		// No overlay: the camera always owns the devices
		a.Frame(events, input.Capture{})

		w, h := win.DrawableSize()
		gl.Viewport(0, 0, w, h)
		a.Render(w, h)

		if title, changed := a.Title(); changed {
			win.SetTitle(title)
		}

		win.SwapBuffers()
	}

	logger.Info("viewer closed normally")
}
