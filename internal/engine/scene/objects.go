package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/notreal/internal/engine/lighting"
)

// Object is one lit cube instance.
type Object struct {
	Name     string
	Model    mgl32.Mat4
	Material lighting.Material
}

// FloorModel returns the model matrix of the thin slab under the scene.
// The negative Y scale mirrors the slab, so its top face normal still points up after
// the normal matrix is applied.
func FloorModel() mgl32.Mat4 {
	return mgl32.Translate3D(0, -1, 0).Mul4(mgl32.Scale3D(5, -0.025, 5))
}

// LightModel returns the model matrix of the small cube drawn at the light.
func LightModel(position mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(position[0], position[1], position[2]).Mul4(mgl32.Scale3D(0.2, 0.2, 0.2))
}

// DefaultObjects returns the floor and a unit cube at the origin, both in material.
func DefaultObjects(material lighting.Material) []Object {
	return []Object{
		{Name: "floor", Model: FloorModel(), Material: material},
		{Name: "cube", Model: mgl32.Ident4(), Material: material},
	}
}
