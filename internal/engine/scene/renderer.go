// Package scene renders the lit demo scene: a floor slab, a cube and the light marker.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/notreal/internal/engine/lighting"
	"github.com/Faultbox/notreal/internal/engine/shader"
	"github.com/Faultbox/notreal/internal/engine/shader/shaders"
	"github.com/Faultbox/notreal/internal/logger"
)

// Frame is everything the renderer needs for one frame.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	ViewPos    mgl32.Vec3
	Light      lighting.PointLight
	ClearColor mgl32.Vec3
	Wireframe  bool
}

// Renderer draws Objects with the lighting program and the light marker with the
// light-cube program. Both share one vertex buffer.
type Renderer struct {
	Objects []Object

	lightingProg  *shader.Program
	lightCubeProg *shader.Program

	vbo      uint32
	cubeVAO  uint32
	lightVAO uint32

	log *zap.Logger
}

// NewRenderer compiles the programs and uploads the cube mesh.
// An OpenGL context must be current.
func NewRenderer(objects []Object) (*Renderer, error) {
	r := &Renderer{
		Objects: objects,
		log:     logger.Named("scene"),
	}

	var err error
	r.lightingProg, err = shader.NewProgram(shaders.LightingVertexShader, shaders.LightingFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("lighting shader: %w", err)
	}

	r.lightCubeProg, err = shader.NewProgram(shaders.LightCubeVertexShader, shaders.LightCubeFragmentShader)
	if err != nil {
		r.Destroy()
		return nil, fmt.Errorf("light cube shader: %w", err)
	}

	r.createBuffers()

	r.log.Debug("renderer ready",
		zap.Int("objects", len(objects)),
		zap.Int("vertices", CubeVertexCount))

	return r, nil
}

func (r *Renderer) createBuffers() {
	const stride = VertexStride * 4

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(CubeVertices)*4, gl.Ptr(CubeVertices), gl.STATIC_DRAW)

	// Lit cube: position + normal
	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.BindVertexArray(r.cubeVAO)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	// Light marker: position only, same buffer
	gl.GenVertexArrays(1, &r.lightVAO)
	gl.BindVertexArray(r.lightVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render clears the bound framebuffer and draws the scene into it.
func (r *Renderer) Render(f Frame) {
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(f.ClearColor[0], f.ClearColor[1], f.ClearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if f.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	r.lightingProg.Use()
	r.lightingProg.SetMat4("projection", f.Projection)
	r.lightingProg.SetMat4("view", f.View)
	r.lightingProg.SetVec3("viewPos", f.ViewPos)
	r.lightingProg.SetVec3("light.position", f.Light.Position)
	r.lightingProg.SetVec3("light.ambient", f.Light.Ambient)
	r.lightingProg.SetVec3("light.diffuse", f.Light.Diffuse)
	r.lightingProg.SetVec3("light.specular", f.Light.Specular)

	gl.BindVertexArray(r.cubeVAO)
	for _, obj := range r.Objects {
		r.lightingProg.SetMat4("model", obj.Model)
		r.lightingProg.SetVec3("material.ambient", obj.Material.Ambient)
		r.lightingProg.SetVec3("material.diffuse", obj.Material.Diffuse)
		r.lightingProg.SetVec3("material.specular", obj.Material.Specular)
		r.lightingProg.SetFloat("material.shininess", obj.Material.Shininess)
		gl.DrawArrays(gl.TRIANGLES, 0, CubeVertexCount)
	}

	r.lightCubeProg.Use()
	r.lightCubeProg.SetMat4("projection", f.Projection)
	r.lightCubeProg.SetMat4("view", f.View)
	r.lightCubeProg.SetMat4("model", LightModel(f.Light.Position))
	r.lightCubeProg.SetVec3("lightColor", f.Light.Color())

	gl.BindVertexArray(r.lightVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, CubeVertexCount)

	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Destroy releases all OpenGL resources.
func (r *Renderer) Destroy() {
	if r.lightVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lightVAO)
		r.lightVAO = 0
	}
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
		r.cubeVAO = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.lightCubeProg != nil {
		r.lightCubeProg.Delete()
	}
	if r.lightingProg != nil {
		r.lightingProg.Delete()
	}
}
