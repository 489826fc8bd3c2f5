// Package imguiinput reads Dear ImGui IO state into viewer input events.
//
// ImGui owns the window's event pump in the overlay host, so input is polled
// once per frame instead of delivered as callbacks.
package imguiinput

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/notreal/internal/config"
	"github.com/Faultbox/notreal/internal/engine/input"
)

// bindings maps ImGui keys to logical keys. Arrow keys mirror WASD.
var bindings = []struct {
	key  imgui.Key
	name input.Key
}{
	{imgui.KeyW, input.KeyForward},
	{imgui.KeyUpArrow, input.KeyForward},
	{imgui.KeyS, input.KeyBackward},
	{imgui.KeyDownArrow, input.KeyBackward},
	{imgui.KeyA, input.KeyLeft},
	{imgui.KeyLeftArrow, input.KeyLeft},
	{imgui.KeyD, input.KeyRight},
	{imgui.KeyRightArrow, input.KeyRight},
	{imgui.KeyEscape, input.KeyExit},
	{imgui.KeySpace, input.KeyWireframe},
	{imgui.KeyF12, input.KeyScreenshot},
}

// Snapshot is the subset of ImGui IO the viewer reacts to for one frame.
type Snapshot struct {
	Keys   [len(keyOrder)]bool
	MouseX float32
	MouseY float32

	// MouseOffWindow is set when ImGui has no cursor position, e.g. the
	// cursor left the window. MouseX and MouseY are meaningless then.
	MouseOffWindow bool

	LookDown     bool
	Wheel        float32
	WantMouse    bool
	WantKeyboard bool
}

// keyOrder fixes the index of each logical key in Snapshot.Keys.
var keyOrder = [...]input.Key{
	input.KeyForward,
	input.KeyBackward,
	input.KeyLeft,
	input.KeyRight,
	input.KeyExit,
	input.KeyWireframe,
	input.KeyScreenshot,
}

// Source turns successive snapshots into events.
type Source struct {
	lookButton string
	tracker    input.CursorTracker
	looking    bool
	buf        []input.Event
}

// New creates a source. lookButton is one of the config.Look* names.
func New(lookButton string) *Source {
	return &Source{lookButton: lookButton}
}

// Looking reports whether mouse-look was active in the last frame.
func (s *Source) Looking() bool {
	return s.looking
}

// Poll reads ImGui IO. Must be called between NewFrame and Render.
func (s *Source) Poll() ([]input.Event, input.Capture) {
	return s.Translate(s.snapshot())
}

func (s *Source) snapshot() Snapshot {
	io := imgui.CurrentIO()
	pos := imgui.MousePos()

	snap := Snapshot{
		MouseX:         pos.X,
		MouseY:         pos.Y,
		MouseOffWindow: !imgui.IsMousePosValid(),
		Wheel:          io.MouseWheel(),
		WantMouse:      io.WantCaptureMouse(),
		WantKeyboard:   io.WantCaptureKeyboard(),
	}

	for _, b := range bindings {
		if imgui.IsKeyDown(b.key) {
			snap.Keys[indexOf(b.name)] = true
		}
	}

	switch s.lookButton {
	case config.LookAlways:
		snap.LookDown = true
	case config.LookLeft:
		snap.LookDown = imgui.IsMouseDown(imgui.MouseButtonLeft)
	default:
		snap.LookDown = imgui.IsMouseDown(imgui.MouseButtonRight)
	}

	return snap
}

func indexOf(k input.Key) int {
	for i, o := range keyOrder {
		if o == k {
			return i
		}
	}
	return -1
}

// Translate converts a snapshot into events and the frame's capture flags.
//
// Key state is reported every frame. Mouse-look only starts on a frame where
// ImGui does not want the mouse, so dragging a slider never turns the camera.
// A button drag continues until the button is released; with LookAlways the
// look pauses on every frame the UI wants the mouse.
//
// A frame without a cursor position re-arms the tracker, so the cursor coming
// back into the window never produces a jump.
func (s *Source) Translate(snap Snapshot) ([]input.Event, input.Capture) {
	s.buf = s.buf[:0]

	for i, k := range keyOrder {
		s.buf = append(s.buf, input.KeyState(k, snap.Keys[i]))
	}

	capture := input.Capture{Mouse: snap.WantMouse, Keyboard: snap.WantKeyboard}

	wasLooking := s.looking
	switch {
	case !snap.LookDown:
		s.looking = false
	case s.lookButton == config.LookAlways, !s.looking:
		s.looking = !snap.WantMouse
	}
	if s.looking && !wasLooking {
		s.tracker.Reset()
	}

	if snap.MouseOffWindow {
		s.tracker.Reset()
	} else if s.looking {
		// A button drag belongs to the scene even if the cursor passes over a window
		capture.Mouse = false
		if dx, dy := s.tracker.Delta(snap.MouseX, snap.MouseY); dx != 0 || dy != 0 {
			s.buf = append(s.buf, input.MouseMove(dx, dy))
		}
	}

	if snap.Wheel != 0 {
		s.buf = append(s.buf, input.Scroll(snap.Wheel))
	}

	return s.buf, capture
}
