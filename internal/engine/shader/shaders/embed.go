// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LightingVertexShader transforms lit geometry and passes world-space normals.
//
//go:embed lighting.vert
var LightingVertexShader string

// LightingFragmentShader shades with a Phong point light and a material.
//
//go:embed lighting.frag
var LightingFragmentShader string

// LightCubeVertexShader is the vertex shader for the light marker.
//
//go:embed lightcube.vert
var LightCubeVertexShader string

// LightCubeFragmentShader draws the light marker in the light's colour.
//
//go:embed lightcube.frag
var LightCubeFragmentShader string
