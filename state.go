package vgpu

import "github.com/virtgpu/vgpu/internal/pixel"

// CompareFunc is one of the eight depth/stencil comparison functions.
type CompareFunc int

const (
	NEVER CompareFunc = iota
	LESS
	EQUAL
	LEQUAL
	GREATER
	NOTEQUAL
	GEQUAL
	ALWAYS
)

// StencilOp is one of the eight stencil update operations.
type StencilOp int

const (
	KEEP StencilOp = iota
	ZERO
	REPLACE
	INCR
	DECR
	INVERT
	INCR_WRAP
	DECR_WRAP
)

// BlendFactor is one of the fifteen blend factor sources.
type BlendFactor int

const (
	FACTOR_ZERO BlendFactor = iota
	FACTOR_ONE
	SRC_COLOR
	ONE_MINUS_SRC_COLOR
	DST_COLOR
	ONE_MINUS_DST_COLOR
	SRC_ALPHA
	ONE_MINUS_SRC_ALPHA
	DST_ALPHA
	ONE_MINUS_DST_ALPHA
	CONSTANT_COLOR
	ONE_MINUS_CONSTANT_COLOR
	CONSTANT_ALPHA
	ONE_MINUS_CONSTANT_ALPHA
	SRC_ALPHA_SATURATE
)

// BlendEquation is one of the five blend combination operators.
type BlendEquation int

const (
	BLEND_ADD BlendEquation = iota
	BLEND_SUBTRACT
	BLEND_REVERSE_SUBTRACT
	BLEND_MIN
	BLEND_MAX
)

// Face selects a polygon side for face-indexed state (stencil, culling).
type Face int

const (
	FRONT Face = iota
	BACK
)

// Winding is the vertex order, CW or CCW, considered front-facing.
type Winding int

const (
	CW Winding = iota
	CCW
)

// PolygonMode controls whether a filled primitive rasterizes as points,
// line edges, or a solid fill.
type PolygonMode int

const (
	POLYGON_POINT PolygonMode = iota
	POLYGON_LINE
	POLYGON_FILL
)

// Topology is the primitive assembly grouping applied to a vertex stream.
type Topology int

const (
	POINTS Topology = iota
	LINES
	LINE_STRIP
	TRIANGLES
	TRIANGLE_STRIP
)

// IndexType is the element width of an indexed draw's element buffer.
type IndexType int

const (
	INDEX_U8 IndexType = iota
	INDEX_U16
	INDEX_U32
)

// ErrorState is the sticky error enum exposed through Pipeline.GetError.
type ErrorState int

const (
	NO_ERROR ErrorState = iota
	INVALID_ENUM
	INVALID_VALUE
	INVALID_OPERATION
	OUT_OF_MEMORY
)

// ClearMask selects which buffers Clear targets; bits combine with OR.
type ClearMask int

const (
	CLEAR_COLOR ClearMask = 1 << iota
	CLEAR_DEPTH
	CLEAR_STENCIL
)

// Rect is an integer pixel rectangle, half-open on [x+w, y+h).
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the integer pixel (x,y) lies in r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the rectangle common to r and o.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// StencilFaceState is the per-face stencil configuration.
type StencilFaceState struct {
	Func      CompareFunc
	Ref       uint8
	FuncMask  uint8
	WriteMask uint8
	SFail     StencilOp
	DPFail    StencilOp
	DPPass    StencilOp
}

// BlendFactorPair is the independent RGB/alpha source and destination
// factor selection for one draw buffer.
type BlendFactorPair struct {
	SrcRGB, DstRGB     BlendFactor
	SrcAlpha, DstAlpha BlendFactor
}

// BlendEquationPair is the independent RGB/alpha equation selection for
// one draw buffer.
type BlendEquationPair struct {
	RGB, Alpha BlendEquation
}

// DrawBufferState is the per-draw-buffer-slot blend toggle and color
// write mask (up to 16 slots, independently maskable).
type DrawBufferState struct {
	BlendEnable bool
	ColorMask   [4]bool
}

// PipelineState is the flat record holding every fixed-function toggle.
// It is written only by the main thread between draw calls and read-only
// from inside worker tasks during a draw.
type PipelineState struct {
	Viewport Rect

	ScissorEnable bool
	Scissor       Rect

	DepthRangeMin, DepthRangeMax float32

	ClearColor   [4]float32
	ClearDepth   float32
	ClearStencil uint8

	DepthTestEnable  bool
	DepthWriteEnable bool
	DepthFunc        CompareFunc

	StencilTestEnable bool
	Stencil           [2]StencilFaceState // indexed by Face

	BlendFactors   [16]BlendFactorPair
	BlendEquations [16]BlendEquationPair
	BlendConstant  [4]float32
	DrawBuffers    [16]DrawBufferState

	CullEnable bool
	CullFace   Face
	FrontFace  Winding

	PolygonMode PolygonMode

	PointOffsetEnable   bool
	LineOffsetEnable    bool
	PolygonOffsetEnable bool
	DepthFactor         float32
	DepthUnit           float32

	LineWidth float32

	Error ErrorState
}

// DefaultPipelineState returns the OpenGL 3.3 initial state values:
// viewport full, depth test off with write on and func LESS,
// scissor off, stencil off with ALWAYS/ref 0/masks all-on/ops KEEP, blend
// ONE/ZERO with equation ADD, cull off with BACK+CCW, polygon mode FILL,
// clear color transparent black, clear depth 1, clear stencil 0.
func DefaultPipelineState(width, height int) PipelineState {
	s := PipelineState{
		Viewport:      Rect{0, 0, width, height},
		DepthRangeMin: 0,
		DepthRangeMax: 1,
		ClearColor:    [4]float32{0, 0, 0, 0},
		ClearDepth:    1,
		ClearStencil:  0,

		DepthTestEnable:  false,
		DepthWriteEnable: true,
		DepthFunc:        LESS,

		CullEnable: false,
		CullFace:   BACK,
		FrontFace:  CCW,

		PolygonMode: POLYGON_FILL,
		DepthFactor: 0,
		DepthUnit:   0,
		LineWidth:   1,
	}

	defaultStencilFace := StencilFaceState{
		Func:      ALWAYS,
		Ref:       0,
		FuncMask:  0xFF,
		WriteMask: 0xFF,
		SFail:     KEEP,
		DPFail:    KEEP,
		DPPass:    KEEP,
	}
	s.Stencil[FRONT] = defaultStencilFace
	s.Stencil[BACK] = defaultStencilFace

	defaultFactors := BlendFactorPair{
		SrcRGB: FACTOR_ONE, DstRGB: FACTOR_ZERO,
		SrcAlpha: FACTOR_ONE, DstAlpha: FACTOR_ZERO,
	}
	defaultEquation := BlendEquationPair{RGB: BLEND_ADD, Alpha: BLEND_ADD}
	defaultDrawBuffer := DrawBufferState{ColorMask: [4]bool{true, true, true, true}}
	for i := range s.BlendFactors {
		s.BlendFactors[i] = defaultFactors
		s.BlendEquations[i] = defaultEquation
		s.DrawBuffers[i] = defaultDrawBuffer
	}

	return s
}

// DepthBits is the depth-bits constant used for polygon-offset bias,
// matching the packed depth-stencil format's 24-bit depth field.
const DepthBits = 24

// PixelFormat and ComponentType alias the internal/pixel vocabulary so
// callers at the public API boundary don't need a separate import.
type PixelFormat = pixel.Format
type ComponentType = pixel.ComponentType

const (
	RED             = pixel.RED
	RG              = pixel.RG
	RGB             = pixel.RGB
	RGBA            = pixel.RGBA
	BGR             = pixel.BGR
	BGRA            = pixel.BGRA
	DEPTH_COMPONENT = pixel.DEPTH_COMPONENT
	DEPTH_STENCIL   = pixel.DEPTH_STENCIL
)

const (
	U8  = pixel.U8
	S8  = pixel.S8
	U16 = pixel.U16
	S16 = pixel.S16
	U32 = pixel.U32
	S32 = pixel.S32
	F16 = pixel.F16
	F32 = pixel.F32
)
