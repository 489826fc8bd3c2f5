// Package lighting provides the Phong light and material parameters uploaded to
// the lighting shader.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PointLight is a single Phong point light.
type PointLight struct {
	Position mgl32.Vec3 // World position
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// DefaultPointLight returns a white light above and to the right of the origin.
func DefaultPointLight() PointLight {
	return NewPointLight(mgl32.Vec3{1.0, 2.0, 0.0}, mgl32.Vec3{1, 1, 1})
}

// NewPointLight creates a light at position whose ambient and diffuse terms are
// derived from color the same way PartyColors does.
func NewPointLight(position, color mgl32.Vec3) PointLight {
	diffuse := color.Mul(0.5)
	return PointLight{
		Position: position,
		Ambient:  diffuse.Mul(0.2),
		Diffuse:  diffuse,
		Specular: mgl32.Vec3{1, 1, 1},
	}
}

// PartyColors returns ambient and diffuse terms for a light cycling through
// RGB over time t in seconds.
func PartyColors(t float64) (ambient, diffuse mgl32.Vec3) {
	color := mgl32.Vec3{
		float32(math.Sin(t * 2.0)),
		float32(math.Sin(t * 0.7)),
		float32(math.Sin(t * 1.3)),
	}
	diffuse = color.Mul(0.5)
	ambient = diffuse.Mul(0.2)
	return ambient, diffuse
}

// Animate replaces the ambient and diffuse terms with PartyColors(t).
func (l *PointLight) Animate(t float64) {
	l.Ambient, l.Diffuse = PartyColors(t)
}

// Color returns the light's base colour (diffuse undone from the 0.5 factor),
// clamped to [0, 1] for drawing the light marker.
func (l PointLight) Color() mgl32.Vec3 {
	var c mgl32.Vec3
	for i := range c {
		c[i] = mgl32.Clamp(l.Diffuse[i]*2, 0, 1)
	}
	return c
}
