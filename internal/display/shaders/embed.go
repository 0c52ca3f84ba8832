// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BlitVertexShader is the vertex shader for presenting a software frame.
//
//go:embed blit.vert
var BlitVertexShader string

// BlitFragmentShader is the fragment shader for presenting a software frame.
//
//go:embed blit.frag
var BlitFragmentShader string
