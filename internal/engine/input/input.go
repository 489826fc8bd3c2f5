// Package input turns window-system input into per-frame events and applies them
// to the camera.
//
// Hosts translate their native input (SDL events, ImGui IO) into Event values and
// hand one frame's worth to Controller.Dispatch. Everything here runs on the
// render thread; nothing is queued across frames.
package input

import "fmt"

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventKeyState
	EventMouseMove
	EventScroll
)

// Key is a logical key the viewer reacts to.
type Key int

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
	KeyExit
	KeyWireframe
	KeyScreenshot
	keyCount
)

var keyNames = [keyCount]string{"forward", "backward", "left", "right", "exit", "wireframe", "screenshot"}

// String returns the key name.
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// Event is a single processed input event.
type Event struct {
	Type EventType

	// Mouse move: cursor delta in pixels, DY positive when moving up.
	// Scroll: DY is the wheel delta.
	DX, DY float32

	// Key state
	Key  Key
	Down bool

	// Resize
	Width  int
	Height int
}

// MouseMove returns a mouse move event.
func MouseMove(dx, dy float32) Event {
	return Event{Type: EventMouseMove, DX: dx, DY: dy}
}

// Scroll returns a scroll event.
func Scroll(dy float32) Event {
	return Event{Type: EventScroll, DY: dy}
}

// KeyState returns a key state event.
func KeyState(k Key, down bool) Event {
	return Event{Type: EventKeyState, Key: k, Down: down}
}

// Capture reports which devices a UI layer claimed for the current frame.
type Capture struct {
	Mouse    bool
	Keyboard bool
}
