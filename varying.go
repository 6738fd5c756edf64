package vgpu

import "github.com/virtgpu/vgpu/internal/linear"

// Varying is the post-vertex attribute record carried through clipping,
// projection, and interpolation. The layout is fixed: every vector field
// interpolates linearly in barycentric weights and perspective-correctly
// in screen space.
type Varying struct {
	ClipCoord     linear.V4
	NDC           linear.V3
	ViewportCoord linear.V3

	WorldPos linear.V3
	ViewPos  linear.V3
	Normal   linear.V3
	Tangent  linear.V4
	UV0      linear.V2
	UV1      linear.V2
	Color0   linear.Color
	Color1   linear.Color
}

// LerpVarying linearly interpolates every clip-space-and-earlier field of
// a and b at parameter t. NDC and ViewportCoord are not interpolated here
// — they are recomputed downstream by PerspectiveDivide and
// ViewportTransform once a surviving vertex is known.
func LerpVarying(a, b Varying, t float32) Varying {
	return Varying{
		ClipCoord: a.ClipCoord.Lerp(b.ClipCoord, t),
		WorldPos:  a.WorldPos.Lerp(b.WorldPos, t),
		ViewPos:   a.ViewPos.Lerp(b.ViewPos, t),
		Normal:    a.Normal.Lerp(b.Normal, t),
		Tangent:   a.Tangent.Lerp(b.Tangent, t),
		UV0:       a.UV0.Lerp(b.UV0, t),
		UV1:       a.UV1.Lerp(b.UV1, t),
		Color0:    a.Color0.Lerp(b.Color0, t),
		Color1:    a.Color1.Lerp(b.Color1, t),
	}
}

// InterpolateVarying3 blends three Varying records by barycentric weights
// that sum to 1, used by the triangle rasterizer once screen-space
// barycentrics have been converted to perspective-correct weights.
func InterpolateVarying3(a, b, c Varying, w [3]float32) Varying {
	return Varying{
		WorldPos: a.WorldPos.Scale(w[0]).Add(b.WorldPos.Scale(w[1])).Add(c.WorldPos.Scale(w[2])),
		ViewPos:  a.ViewPos.Scale(w[0]).Add(b.ViewPos.Scale(w[1])).Add(c.ViewPos.Scale(w[2])),
		Normal:   a.Normal.Scale(w[0]).Add(b.Normal.Scale(w[1])).Add(c.Normal.Scale(w[2])),
		Tangent:  a.Tangent.Scale(w[0]).Add(b.Tangent.Scale(w[1])).Add(c.Tangent.Scale(w[2])),
		UV0:      a.UV0.Scale(w[0]).Add(b.UV0.Scale(w[1])).Add(c.UV0.Scale(w[2])),
		UV1:      a.UV1.Scale(w[0]).Add(b.UV1.Scale(w[1])).Add(c.UV1.Scale(w[2])),
		Color0:   a.Color0.Scale(w[0]).Add(b.Color0.Scale(w[1])).Add(c.Color0.Scale(w[2])),
		Color1:   a.Color1.Scale(w[0]).Add(b.Color1.Scale(w[1])).Add(c.Color1.Scale(w[2])),
	}
}

// scaleAttribs returns v's interpolable attribute fields scaled by s,
// used by the rasterizers to carry A*(1/w) accumulators.
func scaleAttribs(v Varying, s float32) Varying {
	return Varying{
		WorldPos: v.WorldPos.Scale(s),
		ViewPos:  v.ViewPos.Scale(s),
		Normal:   v.Normal.Scale(s),
		Tangent:  v.Tangent.Scale(s),
		UV0:      v.UV0.Scale(s),
		UV1:      v.UV1.Scale(s),
		Color0:   v.Color0.Scale(s),
		Color1:   v.Color1.Scale(s),
	}
}

// addAttribs returns the component-wise sum of a and b's attribute fields.
func addAttribs(a, b Varying) Varying {
	return Varying{
		WorldPos: a.WorldPos.Add(b.WorldPos),
		ViewPos:  a.ViewPos.Add(b.ViewPos),
		Normal:   a.Normal.Add(b.Normal),
		Tangent:  a.Tangent.Add(b.Tangent),
		UV0:      a.UV0.Add(b.UV0),
		UV1:      a.UV1.Add(b.UV1),
		Color0:   a.Color0.Add(b.Color0),
		Color1:   a.Color1.Add(b.Color1),
	}
}

// subAttribs returns the component-wise difference a - b.
func subAttribs(a, b Varying) Varying {
	return addAttribs(a, scaleAttribs(b, -1))
}

// Fragment is the pre-merge record produced by the rasterizer: a
// candidate pixel plus every Varying attribute except the coordinate
// fields that only matter before rasterization.
type Fragment struct {
	ScreenCoord linear.V2
	Depth       float32
	DepthSlope  float32
	IsFront     bool

	WorldPos linear.V3
	ViewPos  linear.V3
	Normal   linear.V3
	Tangent  linear.V4
	UV0      linear.V2
	UV1      linear.V2
	Color0   linear.Color
	Color1   linear.Color
}

// FSOutputs carries a fragment shader's per-draw-buffer-slot results. A
// slot is considered unwritten unless the shader explicitly sets it,
// mirroring the original's bitset-tracked SlotProxy: writes to a slot the
// current draw doesn't target are simply never consumed by the merger.
type FSOutputs struct {
	written [16]bool
	colors  [16][4]float32
}

// Write records a color value for draw-buffer slot i.
func (o *FSOutputs) Write(slot int, color [4]float32) {
	o.written[slot] = true
	o.colors[slot] = color
}

// Color returns the color written to slot i and whether it was written.
func (o *FSOutputs) Color(slot int) ([4]float32, bool) {
	return o.colors[slot], o.written[slot]
}

// VertexShader produces a Varying for vertex index i. Implementations
// must not capture shared mutable state across concurrent invocations.
type VertexShader func(index uint32) Varying

// FragmentShader consumes a Fragment and writes zero or more draw-buffer
// outputs. Implementations must not capture shared mutable state across
// concurrent invocations.
type FragmentShader func(f Fragment, out *FSOutputs)
