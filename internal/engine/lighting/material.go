package lighting

import "github.com/go-gl/mathgl/mgl32"

// Material holds Phong reflectance terms.
type Material struct {
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// SolidMaterial returns a material of a single color with a soft highlight.
func SolidMaterial(color mgl32.Vec3) Material {
	return Material{
		Ambient:   color,
		Diffuse:   color,
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess: 32.0,
	}
}
