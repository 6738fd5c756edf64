package vgpu

import (
	"github.com/chewxy/math32"
	"github.com/virtgpu/vgpu/internal/linear"
)

// RasterizePoint emits a single fragment at v's viewport position, sampled
// at the pixel center nearest v.ViewportCoord. Points
// have no facing and no depth slope; attributes carry through unchanged
// since there is nothing to interpolate.
func (p *Pipeline) RasterizePoint(v Varying, fs FragmentShader) {
	x := math32.Floor(v.ViewportCoord.X) + 0.5
	y := math32.Floor(v.ViewportCoord.Y) + 0.5

	frag := Fragment{
		ScreenCoord: linear.V2{X: x, Y: y},
		Depth:       v.ViewportCoord.Z,
		DepthSlope:  0,
		IsFront:     true,
		WorldPos:    v.WorldPos,
		ViewPos:     v.ViewPos,
		Normal:      v.Normal,
		Tangent:     v.Tangent,
		UV0:         v.UV0,
		UV1:         v.UV1,
		Color0:      v.Color0,
		Color1:      v.Color1,
	}
	p.mergeFragment(frag, PrimPoint, fs)
}
