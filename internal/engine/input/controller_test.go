package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/notreal/internal/engine/camera"
)

func near(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func nearVec3(a, b mgl32.Vec3) bool {
	return near(a[0], b[0]) && near(a[1], b[1]) && near(a[2], b[2])
}

func newTestController() *Controller {
	return NewController(camera.New(mgl32.Vec3{0, 0, 0}))
}

func TestDispatchHeldKeysMove(t *testing.T) {
	c := newTestController()

	c.Dispatch([]Event{KeyState(KeyForward, true)}, 1.0, Capture{})
	if !nearVec3(c.cam.Position, mgl32.Vec3{0, 0, -2.5}) {
		t.Fatalf("Position = %v, want (0,0,-2.5)", c.cam.Position)
	}

	// Still held next frame with no new events
	c.Dispatch(nil, 1.0, Capture{})
	if !nearVec3(c.cam.Position, mgl32.Vec3{0, 0, -5}) {
		t.Fatalf("Position = %v, want (0,0,-5)", c.cam.Position)
	}

	c.Dispatch([]Event{KeyState(KeyForward, false)}, 1.0, Capture{})
	if !nearVec3(c.cam.Position, mgl32.Vec3{0, 0, -5}) {
		t.Errorf("Position = %v, want no motion after release", c.cam.Position)
	}
}

func TestDispatchOpposingKeysCancel(t *testing.T) {
	c := newTestController()

	c.Dispatch([]Event{
		KeyState(KeyLeft, true),
		KeyState(KeyRight, true),
		KeyState(KeyForward, true),
		KeyState(KeyBackward, true),
	}, 0.5, Capture{})

	if !nearVec3(c.cam.Position, mgl32.Vec3{}) {
		t.Errorf("Position = %v, want origin", c.cam.Position)
	}
}

func TestDispatchMouseAndScroll(t *testing.T) {
	c := newTestController()

	c.Dispatch([]Event{MouseMove(100, 50), Scroll(1000)}, 1.0, Capture{})

	cam := c.cam
	if !near(cam.Yaw(), -80) || !near(cam.Pitch(), 5) {
		t.Errorf("angles = (%f, %f), want (-80, 5)", cam.Yaw(), cam.Pitch())
	}
	if cam.Zoom() != camera.MinZoom {
		t.Errorf("Zoom() = %f, want %f", cam.Zoom(), camera.MinZoom)
	}
}

func TestDispatchConstrainPitchFlag(t *testing.T) {
	c := newTestController()
	c.ConstrainPitch = false

	c.Dispatch([]Event{MouseMove(0, 1000)}, 0.016, Capture{})
	if !near(c.cam.Pitch(), 100) {
		t.Errorf("Pitch() = %f, want 100 when unconstrained", c.cam.Pitch())
	}
}

func TestDispatchMouseCaptured(t *testing.T) {
	c := newTestController()
	before := *c.cam

	c.Dispatch([]Event{MouseMove(300, 300), Scroll(5)}, 1.0, Capture{Mouse: true})

	cam := c.cam
	if cam.Yaw() != before.Yaw() || cam.Pitch() != before.Pitch() || cam.Zoom() != before.Zoom() {
		t.Errorf("captured mouse changed camera: yaw=%f pitch=%f zoom=%f", cam.Yaw(), cam.Pitch(), cam.Zoom())
	}
	if cam.Front() != before.Front() {
		t.Errorf("Front() = %v, want %v", cam.Front(), before.Front())
	}
}

func TestDispatchKeyboardCapturedKeepsState(t *testing.T) {
	c := newTestController()

	c.Dispatch([]Event{KeyState(KeyForward, true)}, 1.0, Capture{Keyboard: true})
	if !nearVec3(c.cam.Position, mgl32.Vec3{}) {
		t.Fatalf("Position = %v, want no motion while captured", c.cam.Position)
	}
	if !c.Held(KeyForward) {
		t.Fatal("key press lost while keyboard captured")
	}

	// Release arrives while captured; must not stick
	c.Dispatch([]Event{KeyState(KeyForward, false)}, 1.0, Capture{Keyboard: true})
	c.Dispatch(nil, 1.0, Capture{})
	if !nearVec3(c.cam.Position, mgl32.Vec3{}) {
		t.Errorf("Position = %v, key stuck after captured release", c.cam.Position)
	}
}

func TestDispatchQuit(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   bool
	}{
		{"none", nil, false},
		{"quit event", []Event{{Type: EventQuit}}, true},
		{"exit key", []Event{KeyState(KeyExit, true)}, true},
		{"exit release only", []Event{KeyState(KeyExit, false)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController()
			c.Dispatch(tt.events, 0.016, Capture{})
			if got := c.QuitRequested(); got != tt.want {
				t.Errorf("QuitRequested() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDispatchResize(t *testing.T) {
	c := newTestController()

	c.Dispatch([]Event{{Type: EventResize, Width: 1024, Height: 768}}, 0.016, Capture{})
	w, h, changed := c.Resized()
	if !changed || w != 1024 || h != 768 {
		t.Errorf("Resized() = (%d, %d, %v), want (1024, 768, true)", w, h, changed)
	}

	c.Dispatch(nil, 0.016, Capture{})
	if _, _, changed := c.Resized(); changed {
		t.Error("Resized() still reports change on the next frame")
	}
}

func TestKeyString(t *testing.T) {
	if KeyWireframe.String() != "wireframe" {
		t.Errorf("KeyWireframe = %q", KeyWireframe)
	}
	if Key(99).String() != "Key(99)" {
		t.Errorf("Key(99) = %q", Key(99))
	}
	if c := newTestController(); c.Held(Key(99)) {
		t.Error("Held(unknown) = true")
	}
}

func TestPressedIsEdgeTriggered(t *testing.T) {
	c := NewController(camera.New(mgl32.Vec3{}))

	frames := []struct {
		events []Event
		want   bool
	}{
		{[]Event{KeyState(KeyScreenshot, true)}, true},
		{[]Event{KeyState(KeyScreenshot, true)}, false}, // still held
		{nil, false},
		{[]Event{KeyState(KeyScreenshot, false)}, false},
		{[]Event{KeyState(KeyScreenshot, true), KeyState(KeyScreenshot, false)}, true}, // tap within a frame
	}

	for i, f := range frames {
		c.Dispatch(f.events, 0.016, Capture{})
		if got := c.Pressed(KeyScreenshot); got != f.want {
			t.Errorf("frame %d: Pressed() = %v, want %v", i, got, f.want)
		}
	}

	if c.Pressed(Key(-1)) || c.Pressed(keyCount) {
		t.Error("out of range keys reported pressed")
	}
}
