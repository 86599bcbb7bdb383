// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TubeVertexShader is the vertex shader for the lit tube mesh.
//
//go:embed tube.vert
var TubeVertexShader string

// TubeFragmentShader is the fragment shader for the lit tube mesh.
//
//go:embed tube.frag
var TubeFragmentShader string

// ColorVertexShader is the vertex shader for per-vertex coloured debug geometry.
//
//go:embed color.vert
var ColorVertexShader string

// ColorFragmentShader is the fragment shader for per-vertex coloured debug geometry.
//
//go:embed color.frag
var ColorFragmentShader string
