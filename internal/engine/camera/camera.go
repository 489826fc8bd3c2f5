// Package camera provides the free-look camera used by the viewer.
package camera

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Default settings.
const (
	DefaultYaw              float32 = -90.0
	DefaultPitch            float32 = 0.0
	DefaultMovementSpeed    float32 = 2.5
	DefaultMouseSensitivity float32 = 0.1
	DefaultZoom             float32 = 45.0
	DefaultZoomSensitivity  float32 = 60.0
)

// Limits applied silently on every update.
const (
	// PitchLimit keeps cross(front, worldUp) away from zero length.
	PitchLimit float32 = 89.0
	MinZoom    float32 = 1.0
	MaxZoom    float32 = 45.0
)

// Camera is a free-look (fly) camera driven by yaw and pitch in degrees.
//
// Front, Right and Up are derived from Yaw, Pitch and the world up vector and are
// recomputed only when the angles change. Handedness follows OpenGL: the view
// matrix is right-handed and the camera looks down -Z in view space.
//
// All methods expect finite inputs; NaN or infinite deltas are not checked.
// A Camera is not safe for concurrent use.
type Camera struct {
	// Position in world space
	Position mgl32.Vec3

	// Tuning
	MovementSpeed    float32 // Units per second
	MouseSensitivity float32 // Degrees per pixel
	ZoomSensitivity  float32 // Degrees per scroll unit per second

	// Orientation (use SetOrientation to change)
	yaw   float32
	pitch float32

	// Derived basis
	front   mgl32.Vec3
	up      mgl32.Vec3
	right   mgl32.Vec3
	worldUp mgl32.Vec3

	// Vertical field of view in degrees
	zoom float32
}

// New creates a camera at position looking down -Z with default settings.
func New(position mgl32.Vec3) *Camera {
	return NewWithOrientation(position, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch)
}

// NewWithOrientation creates a camera with an explicit world up vector and angles.
func NewWithOrientation(position, worldUp mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		Position:         position,
		MovementSpeed:    DefaultMovementSpeed,
		MouseSensitivity: DefaultMouseSensitivity,
		ZoomSensitivity:  DefaultZoomSensitivity,
		yaw:              yaw,
		pitch:            clampPitch(pitch),
		worldUp:          worldUp.Normalize(),
		zoom:             DefaultZoom,
	}
	c.updateVectors()
	return c
}

// Yaw returns the horizontal angle in degrees.
func (c *Camera) Yaw() float32 { return c.yaw }

// Pitch returns the vertical angle in degrees.
func (c *Camera) Pitch() float32 { return c.pitch }

// Front returns the unit view direction.
func (c *Camera) Front() mgl32.Vec3 { return c.front }

// Up returns the unit camera up vector.
func (c *Camera) Up() mgl32.Vec3 { return c.up }

// Right returns the unit camera right vector.
func (c *Camera) Right() mgl32.Vec3 { return c.right }

// Zoom returns the vertical field of view in degrees.
func (c *Camera) Zoom() float32 { return c.zoom }

// SetZoom sets the field of view, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(fov float32) {
	c.zoom = clamp(fov, MinZoom, MaxZoom)
}

// SetOrientation sets yaw and pitch (pitch clamped) and rebuilds the basis.
func (c *Camera) SetOrientation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = clampPitch(pitch)
	c.updateVectors()
}

// ViewMatrix returns the look-at matrix from Position towards Position+Front.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// ProcessKeyboard moves the camera along its basis.
// deltaTime is the wall-clock seconds since the previous frame.
// Panics on an unknown direction.
func (c *Camera) ProcessKeyboard(direction Direction, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime

	switch direction {
	case Forward:
		c.Position = c.Position.Add(c.front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.right.Mul(velocity))
	default:
		panic(fmt.Sprintf("camera: unknown direction %v", direction))
	}
}

// ProcessMouseMovement applies cursor offsets in pixels with the pitch constrained.
// yOffset must already be positive for upward motion.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32) {
	c.ProcessMouseMovementV(xOffset, yOffset, true)
}

// ProcessMouseMovementV applies cursor offsets, optionally clamping pitch to ±PitchLimit.
func (c *Camera) ProcessMouseMovementV(xOffset, yOffset float32, constrainPitch bool) {
	c.yaw += xOffset * c.MouseSensitivity
	c.pitch += yOffset * c.MouseSensitivity

	if constrainPitch {
		c.pitch = clampPitch(c.pitch)
	}

	c.updateVectors()
}

// ProcessMouseScroll narrows (positive yOffset) or widens the field of view.
// The change is scaled by deltaTime so zoom speed does not depend on frame rate.
func (c *Camera) ProcessMouseScroll(yOffset, deltaTime float32) {
	c.zoom = clamp(c.zoom-yOffset*c.ZoomSensitivity*deltaTime, MinZoom, MaxZoom)
}

// updateVectors rebuilds front, right and up from yaw and pitch.
func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func clampPitch(p float32) float32 {
	return clamp(p, -PitchLimit, PitchLimit)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
