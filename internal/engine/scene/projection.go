package scene

import "github.com/go-gl/mathgl/mgl32"

// Projection returns a right-handed perspective matrix for a vertical field of view
// in degrees. A zero or negative size (minimised window) is treated as 1 pixel.
func Projection(fovDeg float32, width, height int32, near, far float32) mgl32.Mat4 {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far)
}
