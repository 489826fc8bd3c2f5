package app

import (
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/notreal/internal/config"
	"github.com/Faultbox/notreal/internal/engine/input"
	"github.com/Faultbox/notreal/internal/engine/scene"
	"github.com/Faultbox/notreal/internal/engine/timing"
)

const eps = 1e-4

func nearVec3(a, b mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		d := a[i] - b[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}

// fakeClock advances by step on every read.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (f *fakeClock) read() time.Time {
	t := f.now
	f.now = f.now.Add(f.step)
	return t
}

func newTestApp(t *testing.T, step time.Duration, modify func(*config.Config)) *App {
	t.Helper()

	cfg := config.Default()
	cfg.Debug.ScreenshotDir = t.TempDir()
	if modify != nil {
		modify(cfg)
	}

	a, err := newApp(cfg)
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	fc := &fakeClock{now: time.Unix(1000, 0), step: step}
	a.clock = timing.NewClockWithSource(fc.read)
	return a
}

func TestNewAppAppliesConfig(t *testing.T) {
	a := newTestApp(t, 0, func(c *config.Config) {
		c.Camera.Position = config.Vec3{X: 1, Y: 2, Z: 3}
		c.Camera.Yaw = 0
		c.Camera.Pitch = 120
		c.Camera.MovementSpeed = 4
		c.Camera.Zoom = 30
		c.Scene.LightParty = false
		c.Scene.Wireframe = true
	})

	cam := a.Camera()
	if cam.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Position = %v", cam.Position)
	}
	if cam.Pitch() != 89 {
		t.Errorf("Pitch() = %f, want clamped 89", cam.Pitch())
	}
	if cam.MovementSpeed != 4 || cam.Zoom() != 30 {
		t.Errorf("speed/zoom = %f/%f", cam.MovementSpeed, cam.Zoom())
	}
	if a.LightParty || !a.Wireframe {
		t.Errorf("toggles = party %v wireframe %v", a.LightParty, a.Wireframe)
	}
}

func TestNewAppRejectsScreenshotFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Debug.ScreenshotFormat = "tga"
	if _, err := newApp(cfg); err == nil {
		t.Error("expected error for unsupported screenshot format")
	}
}

func TestFrameMovesCamera(t *testing.T) {
	a := newTestApp(t, 500*time.Millisecond, nil)

	// First frame has zero delta
	a.Frame([]input.Event{input.KeyState(input.KeyForward, true)}, input.Capture{})
	if !nearVec3(a.Camera().Position, mgl32.Vec3{0, 0, 3}) {
		t.Fatalf("first frame moved camera to %v", a.Camera().Position)
	}

	// 0.5 s at 2.5 units/s along -Z
	a.Frame(nil, input.Capture{})
	if !nearVec3(a.Camera().Position, mgl32.Vec3{0, 0, 1.75}) {
		t.Errorf("Position = %v, want (0,0,1.75)", a.Camera().Position)
	}

	// Keyboard captured by the UI: no movement
	a.Frame(nil, input.Capture{Keyboard: true})
	if !nearVec3(a.Camera().Position, mgl32.Vec3{0, 0, 1.75}) {
		t.Errorf("captured frame moved camera to %v", a.Camera().Position)
	}
}

func TestFrameQuit(t *testing.T) {
	a := newTestApp(t, time.Millisecond, nil)

	a.Frame(nil, input.Capture{})
	if a.QuitRequested() {
		t.Fatal("quit before any event")
	}
	a.Frame([]input.Event{input.KeyState(input.KeyExit, true)}, input.Capture{})
	if !a.QuitRequested() {
		t.Error("exit key did not request quit")
	}
}

func TestScreenshotRequest(t *testing.T) {
	a := newTestApp(t, time.Millisecond, nil)

	a.Frame([]input.Event{input.KeyState(input.KeyScreenshot, true)}, input.Capture{})
	if !a.screenshotPending {
		t.Error("screenshot key did not queue a capture")
	}
}

func TestWireframe(t *testing.T) {
	a := newTestApp(t, time.Millisecond, nil)

	if a.WireframeActive() {
		t.Fatal("wireframe on by default")
	}
	a.Frame([]input.Event{input.KeyState(input.KeyWireframe, true)}, input.Capture{})
	if !a.WireframeActive() || !a.FrameData(800, 600).Wireframe {
		t.Error("held key did not enable wireframe")
	}
	a.Frame([]input.Event{input.KeyState(input.KeyWireframe, false)}, input.Capture{})
	if a.WireframeActive() {
		t.Error("wireframe stayed on after release")
	}

	a.Wireframe = true
	if !a.WireframeActive() {
		t.Error("toggle did not enable wireframe")
	}
}

func TestLightParty(t *testing.T) {
	tests := []struct {
		party   bool
		animate bool
	}{
		{true, true},
		{false, false},
	}

	for _, tt := range tests {
		a := newTestApp(t, 300*time.Millisecond, func(c *config.Config) { c.Scene.LightParty = tt.party })
		before := a.Light()

		a.Frame(nil, input.Capture{})
		a.Frame(nil, input.Capture{})

		after := a.Light()
		if changed := after.Diffuse != before.Diffuse; changed != tt.animate {
			t.Errorf("party=%v: diffuse changed=%v, want %v", tt.party, changed, tt.animate)
		}
		if after.Position != before.Position {
			t.Errorf("party=%v: light moved", tt.party)
		}
	}
}

func TestTitleAfterOneSecond(t *testing.T) {
	a := newTestApp(t, 100*time.Millisecond, nil)

	title, changed := a.Title()
	if changed || title != "Notreal Engine" {
		t.Fatalf("initial Title() = %q, %v", title, changed)
	}

	for i := 0; i < 11; i++ {
		a.Frame(nil, input.Capture{})
	}

	title, changed = a.Title()
	if !changed {
		t.Fatal("title not refreshed after one second")
	}
	if !strings.HasPrefix(title, "Notreal Engine | ") || !strings.Contains(title, "FPS/") {
		t.Errorf("Title() = %q", title)
	}
	if _, changed = a.Title(); changed {
		t.Error("title reported changed twice for one sample")
	}
}

func TestResetCamera(t *testing.T) {
	a := newTestApp(t, time.Second, nil)

	a.Frame(nil, input.Capture{})
	a.Frame([]input.Event{input.MouseMove(100, 50), input.KeyState(input.KeyRight, true)}, input.Capture{})
	if a.Camera().Yaw() == -90 {
		t.Fatal("mouse move had no effect")
	}

	old := a.Camera()
	a.ResetCamera()

	if a.Camera() == old {
		t.Fatal("ResetCamera kept the old camera")
	}
	if a.Camera().Yaw() != -90 || a.Camera().Position != (mgl32.Vec3{0, 0, 3}) {
		t.Errorf("reset camera = yaw %f pos %v", a.Camera().Yaw(), a.Camera().Position)
	}

	// The held key now drives the new camera
	a.Frame(nil, input.Capture{})
	if !nearVec3(a.Camera().Position, mgl32.Vec3{2.5, 0, 3}) {
		t.Errorf("Position = %v, want (2.5,0,3)", a.Camera().Position)
	}
}

func TestFrameData(t *testing.T) {
	a := newTestApp(t, time.Millisecond, nil)

	f := a.FrameData(1600, 900)
	if f.View != a.Camera().ViewMatrix() {
		t.Error("view matrix does not come from the camera")
	}
	want := scene.Projection(45, 1600, 900, 0.01, 100)
	if f.Projection != want {
		t.Error("projection does not match camera zoom and config planes")
	}
	if f.ViewPos != a.Camera().Position {
		t.Errorf("ViewPos = %v", f.ViewPos)
	}
	if f.ClearColor != (mgl32.Vec3{0.1, 0.1, 0.1}) {
		t.Errorf("ClearColor = %v", f.ClearColor)
	}
}
