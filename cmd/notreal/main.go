// Package main is the free-look viewer with the ImGui debug overlay.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/notreal/internal/app"
	"github.com/Faultbox/notreal/internal/config"
	"github.com/Faultbox/notreal/internal/engine/framebuffer"
	"github.com/Faultbox/notreal/internal/engine/input/imguiinput"
	"github.com/Faultbox/notreal/internal/engine/ui"
	"github.com/Faultbox/notreal/internal/logger"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("=== Notreal Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	backend, err := ui.NewBackend(cfg.Graphics)
	if err != nil {
		logger.Error("failed to create ui backend", zap.Error(err))
		os.Exit(1)
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}

	fbw, fbh := backend.FramebufferSize()
	fb, err := framebuffer.New(fbw, fbh)
	if err != nil {
		logger.Error("failed to create scene framebuffer", zap.Error(err))
		os.Exit(1)
	}

	shutdown := func() {
		fb.Destroy()
		a.Close()
		logger.Info("viewer closed normally")
		logger.Close()
	}

	source := imguiinput.New(cfg.Input.LookButton)
	overlay := ui.NewDebugOverlay(cfg.UI.ShowOverlay)

	backend.Run(func() {
		events, capture := source.Poll()
		a.Frame(events, capture)

		// The backend loop only ends on window close; the exit key leaves directly
		if a.QuitRequested() {
			shutdown()
			os.Exit(0)
		}
		if title, changed := a.Title(); changed {
			backend.SetWindowTitle(title)
		}

		// Scene goes to the offscreen target at drawable resolution
		if w, h := backend.FramebufferSize(); fb.Resize(w, h) {
			logger.Debug("scene framebuffer resized", zap.Int32("width", w), zap.Int32("height", h))
		}
		restore := fb.Bind()
		w, h := fb.Size()
		a.Render(w, h)
		restore()

		x, y, vw, vh := backend.Viewport()
		ui.DrawScene(fb.ColorTexture(), x, y, vw, vh)

		overlay.Render(&ui.OverlayState{
			Sample:     a.Sample(),
			Camera:     a.Camera(),
			Wireframe:  &a.Wireframe,
			LightParty: &a.LightParty,
			Looking:    source.Looking(),
			LookButton: cfg.Input.LookButton,
			OnReset:    a.ResetCamera,
		})
	})

	shutdown()
}
