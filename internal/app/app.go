// Package app holds the viewer's per-run state and the frame update shared by
// both hosts.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/notreal/internal/config"
	"github.com/Faultbox/notreal/internal/engine/camera"
	"github.com/Faultbox/notreal/internal/engine/debug"
	"github.com/Faultbox/notreal/internal/engine/input"
	"github.com/Faultbox/notreal/internal/engine/lighting"
	"github.com/Faultbox/notreal/internal/engine/scene"
	"github.com/Faultbox/notreal/internal/engine/timing"
	"github.com/Faultbox/notreal/internal/logger"
)

// App is the viewer's context: everything that lives for the whole run.
// All methods must be called from the render thread.
type App struct {
	cfg *config.Config
	log *zap.Logger

	camera     *camera.Camera
	controller *input.Controller
	renderer   *scene.Renderer

	clock     *timing.Clock
	stats     timing.FrameStats
	sample    timing.Sample
	newSample bool
	frameTime time.Duration

	light    lighting.PointLight
	material lighting.Material

	// Wireframe and LightParty are toggled from the overlay; the wireframe key
	// forces wireframe while held.
	Wireframe  bool
	LightParty bool

	screenshots       *debug.ScreenshotCapture
	screenshotPending bool
}

// New creates the app and its GL resources. An OpenGL context must be current.
func New(cfg *config.Config) (*App, error) {
	a, err := newApp(cfg)
	if err != nil {
		return nil, err
	}

	a.renderer, err = scene.NewRenderer(scene.DefaultObjects(a.material))
	if err != nil {
		return nil, fmt.Errorf("creating scene renderer: %w", err)
	}

	a.log.Info("viewer ready",
		zap.Float32s("camera", a.camera.Position[:]),
		zap.Float32("fov", a.camera.Zoom()),
		zap.Bool("lightParty", a.LightParty))

	return a, nil
}

// newApp builds everything that does not need OpenGL.
func newApp(cfg *config.Config) (*App, error) {
	shots, err := debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "notreal", cfg.Debug.ScreenshotFormat)
	if err != nil {
		return nil, fmt.Errorf("screenshots: %w", err)
	}

	a := &App{
		cfg:         cfg,
		log:         logger.Named("app"),
		clock:       timing.NewClock(),
		light:       lighting.NewPointLight(cfg.Scene.LightPosition.Vec(), mgl32.Vec3{1, 1, 1}),
		material:    lighting.SolidMaterial(cfg.Scene.ObjectColor.Vec()),
		Wireframe:   cfg.Scene.Wireframe,
		LightParty:  cfg.Scene.LightParty,
		screenshots: shots,
	}

	a.camera = newCamera(cfg.Camera)
	a.controller = input.NewController(a.camera)
	a.controller.ConstrainPitch = cfg.Camera.ConstrainPitch

	return a, nil
}

func newCamera(c config.CameraConfig) *camera.Camera {
	cam := camera.NewWithOrientation(c.Position.Vec(), mgl32.Vec3{0, 1, 0}, c.Yaw, c.Pitch)
	cam.MovementSpeed = c.MovementSpeed
	cam.MouseSensitivity = c.MouseSensitivity
	cam.ZoomSensitivity = c.ZoomSensitivity
	cam.SetZoom(c.Zoom)
	return cam
}

// Camera returns the active camera.
func (a *App) Camera() *camera.Camera {
	return a.camera
}

// Light returns the current light.
func (a *App) Light() lighting.PointLight {
	return a.light
}

// Frame advances one frame: measures the frame time, applies input and
// animates the light. capture is what the UI claimed this frame.
func (a *App) Frame(events []input.Event, capture input.Capture) {
	dt := a.clock.Tick()
	a.frameTime = time.Duration(dt * float64(time.Second))

	a.controller.Dispatch(events, float32(dt), capture)

	if a.controller.Pressed(input.KeyScreenshot) {
		a.screenshotPending = true
	}

	if w, h, changed := a.controller.Resized(); changed {
		a.log.Debug("window resized", zap.Int("width", w), zap.Int("height", h))
	}

	uptime := a.clock.Elapsed()
	if a.LightParty {
		a.light.Animate(uptime.Seconds())
	}

	if s, ok := a.stats.Frame(uptime, a.frameTime); ok {
		a.sample = s
		a.newSample = true
		a.log.Debug("frame stats",
			zap.Int("fps", s.FPS),
			zap.Int("avgFps", s.AverageFPS),
			zap.Duration("frameTime", s.FrameTime))
	}
}

// QuitRequested reports whether the window was closed or the exit key pressed.
func (a *App) QuitRequested() bool {
	return a.controller.QuitRequested()
}

// Sample returns the latest once-per-second frame statistics.
func (a *App) Sample() timing.Sample {
	return a.sample
}

// Title returns the window title and whether it changed since the last call.
func (a *App) Title() (string, bool) {
	changed := a.newSample
	a.newSample = false
	if a.sample.FPS == 0 && a.sample.Uptime == 0 {
		return a.cfg.Graphics.Title, changed
	}
	return a.sample.Title(a.cfg.Graphics.Title), changed
}

// WireframeActive reports whether this frame draws in wireframe.
func (a *App) WireframeActive() bool {
	return a.Wireframe || a.controller.Held(input.KeyWireframe)
}

// FrameData builds the renderer input for a width x height pixel target.
func (a *App) FrameData(width, height int32) scene.Frame {
	g := a.cfg.Graphics
	return scene.Frame{
		View:       a.camera.ViewMatrix(),
		Projection: scene.Projection(a.camera.Zoom(), width, height, g.NearPlane, g.FarPlane),
		ViewPos:    a.camera.Position,
		Light:      a.light,
		ClearColor: g.ClearColor.Vec(),
		Wireframe:  a.WireframeActive(),
	}
}

// Render draws the scene into the bound framebuffer, which must be width x height
// pixels, then writes a screenshot of it if one was requested.
func (a *App) Render(width, height int32) {
	a.renderer.Render(a.FrameData(width, height))

	if a.screenshotPending {
		a.screenshotPending = false
		a.captureScreenshot(width, height)
	}
}

func (a *App) captureScreenshot(width, height int32) {
	pixels := debug.ReadPixels(width, height)
	path, err := a.screenshots.CaptureFromPixels(pixels, int(width), int(height))
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// ResetCamera restores the configured camera. Key state is kept.
func (a *App) ResetCamera() {
	a.camera = newCamera(a.cfg.Camera)
	a.controller.SetCamera(a.camera)
	a.log.Debug("camera reset")
}

// Close releases GL resources.
func (a *App) Close() {
	if a.renderer != nil {
		a.renderer.Destroy()
		a.renderer = nil
	}
}
