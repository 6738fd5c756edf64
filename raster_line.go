package vgpu

import (
	"github.com/chewxy/math32"
	"github.com/virtgpu/vgpu/internal/linear"
)

// RasterizeLine walks a Bresenham line between v0 and v1's viewport
// positions, emitting one fragment per step. Perspective correctness is
// incremental: per-step deltas advance 1/w and every attribute's A*(1/w)
// accumulator whenever x or y steps, and each fragment reconstructs
// w = 1/inv_w before multiplying the attributes back out. A zero-length
// segment emits nothing. Lines have no facing; is_front is always true.
func (p *Pipeline) RasterizeLine(v0, v1 Varying, fs FragmentShader) {
	x0 := int(math32.Floor(v0.ViewportCoord.X))
	y0 := int(math32.Floor(v0.ViewportCoord.Y))
	x1 := int(math32.Floor(v1.ViewportCoord.X))
	y1 := int(math32.Floor(v1.ViewportCoord.Y))

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	if dx == 0 && dy == 0 {
		return
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	bErr := dx - dy

	fdx := float32(x1 - x0)
	fdy := float32(y1 - y0)
	dd := fdx*fdx + fdy*fdy
	gx := fdx / dd * float32(sx)
	gy := fdy / dd * float32(sy)

	invW0 := 1 / v0.ClipCoord.W
	invW1 := 1 / v1.ClipCoord.W
	invW := invW0
	invWDx := (invW1 - invW0) * gx
	invWDy := (invW1 - invW0) * gy

	zPw := v0.ViewportCoord.Z * invW0
	zSpan := v1.ViewportCoord.Z*invW1 - zPw
	zPwDx := zSpan * gx
	zPwDy := zSpan * gy

	pw := scaleAttribs(v0, invW0)
	span := subAttribs(scaleAttribs(v1, invW1), pw)
	pwDx := scaleAttribs(span, gx)
	pwDy := scaleAttribs(span, gy)

	x, y := x0, y0
	for {
		w := 1 / invW
		depth := zPw * w

		attrs := scaleAttribs(pw, w)
		attrs.Normal = attrs.Normal.Normalized()
		attrs.Tangent.W = v0.Tangent.W

		frag := Fragment{
			ScreenCoord: linear.V2{X: float32(x) + 0.5, Y: float32(y) + 0.5},
			Depth:       depth,
			DepthSlope:  0,
			IsFront:     true,
			WorldPos:    attrs.WorldPos,
			ViewPos:     attrs.ViewPos,
			Normal:      attrs.Normal,
			Tangent:     attrs.Tangent,
			UV0:         attrs.UV0,
			UV1:         attrs.UV1,
			Color0:      attrs.Color0,
			Color1:      attrs.Color1,
		}
		p.mergeFragment(frag, PrimLine, fs)

		if x == x1 && y == y1 {
			break
		}

		e2 := 2 * bErr
		if e2 > -dy {
			bErr -= dy
			x += sx
			invW += invWDx
			zPw += zPwDx
			pw = addAttribs(pw, pwDx)
		}
		if e2 < dx {
			bErr += dx
			y += sy
			invW += invWDy
			zPw += zPwDy
			pw = addAttribs(pw, pwDy)
		}
	}
}
