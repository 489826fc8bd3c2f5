package input

import (
	"github.com/Faultbox/notreal/internal/engine/camera"
)

// movement maps held keys to camera directions, in application order.
var movement = [...]struct {
	key Key
	dir camera.Direction
}{
	{KeyForward, camera.Forward},
	{KeyBackward, camera.Backward},
	{KeyLeft, camera.Left},
	{KeyRight, camera.Right},
}

// Controller applies input events to a camera.
type Controller struct {
	cam     *camera.Camera
	held    [keyCount]bool
	pressed [keyCount]bool

	// ConstrainPitch is forwarded to the camera on every mouse move.
	ConstrainPitch bool

	quit          bool
	width, height int
	resized       bool
}

// NewController creates a controller driving cam.
func NewController(cam *camera.Camera) *Controller {
	return &Controller{
		cam:            cam,
		ConstrainPitch: true,
	}
}

// SetCamera swaps the driven camera, keeping key state.
func (c *Controller) SetCamera(cam *camera.Camera) {
	c.cam = cam
}

// Dispatch applies one frame of events. deltaTime is in seconds.
//
// Key state is always recorded so releases are never lost, but a device
// claimed in capture is not allowed to move the camera this frame.
func (c *Controller) Dispatch(events []Event, deltaTime float32, capture Capture) {
	c.resized = false
	c.pressed = [keyCount]bool{}

	for _, e := range events {
		switch e.Type {
		case EventQuit:
			c.quit = true

		case EventResize:
			c.width, c.height = e.Width, e.Height
			c.resized = true

		case EventKeyState:
			if e.Key >= 0 && e.Key < keyCount {
				if e.Down && !c.held[e.Key] {
					c.pressed[e.Key] = true
				}
				c.held[e.Key] = e.Down
			}
			if e.Key == KeyExit && e.Down {
				c.quit = true
			}

		case EventMouseMove:
			if !capture.Mouse {
				c.cam.ProcessMouseMovementV(e.DX, e.DY, c.ConstrainPitch)
			}

		case EventScroll:
			if !capture.Mouse {
				c.cam.ProcessMouseScroll(e.DY, deltaTime)
			}
		}
	}

	if capture.Keyboard {
		return
	}
	for _, m := range movement {
		if c.held[m.key] {
			c.cam.ProcessKeyboard(m.dir, deltaTime)
		}
	}
}

// Held reports whether k is currently down.
func (c *Controller) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return c.held[k]
}

// Pressed reports whether k went down during the last Dispatch.
func (c *Controller) Pressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return c.pressed[k]
}

// QuitRequested reports whether a quit event or the exit key was seen.
func (c *Controller) QuitRequested() bool {
	return c.quit
}

// Resized returns the latest size and whether it changed during the last Dispatch.
func (c *Controller) Resized() (width, height int, changed bool) {
	return c.width, c.height, c.resized
}
