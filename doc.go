// Package vgpu implements the core of a software rasterizer: a
// fixed-function graphics pipeline emulating a desktop OpenGL 3.3-class
// device entirely in system memory. It covers primitive assembly,
// Sutherland-Hodgman clipping, perspective-correct triangle/line/point
// rasterization, depth/stencil testing, blending, and the tiled lock
// discipline that lets concurrent worker tasks share frame buffer
// attachments.
//
// Texture sampling, buffer-object memory management, shader compilation,
// and the full public command-validation surface are out of scope: the
// pipeline consumes already-resolved vertex and fragment shader
// callables and already-bound attachments.
package vgpu
