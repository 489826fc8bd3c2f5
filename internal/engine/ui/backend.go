// Package ui provides the ImGui host window and the viewer's debug overlay.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/notreal/internal/config"
	"github.com/Faultbox/notreal/internal/logger"
)

// Backend wraps the ImGui SDL backend, which owns the window, the GL context
// and the event pump.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	log     *zap.Logger
}

// NewBackend creates the window and loads OpenGL entry points.
func NewBackend(g config.GraphicsConfig) (*Backend, error) {
	b := &Backend{log: logger.Named("ui")}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		// Window layout is not persisted between runs
		imgui.CurrentIO().SetIniFilename("")
	})

	c := g.ClearColor
	b.backend.SetBgColor(imgui.NewVec4(c.X, c.Y, c.Z, 1.0))

	// Window flags only apply to the next CreateWindow
	b.backend.SetWindowFlags(sdlbackend.SDLWindowFlagsFullscreenDesktop, flagValue(g.Fullscreen))
	b.backend.CreateWindow(g.Title, g.Width, g.Height)

	// The GL context is current once the window exists
	if err := b.backend.SetSwapInterval(swapInterval(g.VSync)); err != nil {
		b.log.Warn("failed to set swap interval", zap.Bool("vsync", g.VSync), zap.Error(err))
	}

	if g.FPSLimit > 0 {
		b.backend.SetTargetFPS(uint(g.FPSLimit))
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	b.log.Info("ui backend created",
		zap.String("title", g.Title),
		zap.Int("width", g.Width),
		zap.Int("height", g.Height),
		zap.Bool("fullscreen", g.Fullscreen),
		zap.Bool("vsync", g.VSync),
		zap.Int("fpsLimit", g.FPSLimit),
		zap.String("glVersion", gl.GoStr(gl.GetString(gl.VERSION))))

	return b, nil
}

// flagValue converts a switch to the 1/0 SetWindowFlags expects.
func flagValue(on bool) int {
	if on {
		return 1
	}
	return 0
}

// swapInterval maps the vsync setting to an SDL swap interval.
func swapInterval(vsync bool) sdlbackend.SDLWindowFlags {
	if vsync {
		return sdlbackend.SDLSwapIntervalVsync
	}
	return sdlbackend.SDLSwapIntervalImmediate
}

// Run starts the main loop; renderFunc is called once per frame inside an ImGui frame.
// It returns when the window is closed. The SDL backend cannot be stopped from
// inside renderFunc, so hosts that quit on a key exit the process themselves.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// FramebufferSize returns the drawable size in pixels.
// ImGui's display size is in points; the scale differs on HiDPI displays.
func (b *Backend) FramebufferSize() (int32, int32) {
	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	return int32(size.X * scale.X), int32(size.Y * scale.Y)
}

// Viewport returns the main viewport work area in points.
func (b *Backend) Viewport() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}
