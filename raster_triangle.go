package vgpu

import (
	"github.com/chewxy/math32"
	"github.com/virtgpu/vgpu/internal/linear"
)

// edgeFunction evaluates the 2-D cross product (p-a) x (b-a) for screen
// point p = (px,py), used both as the triangle's signed area (a,b two
// vertices, p the third) and as a per-edge half-plane test (a,b the edge,
// p the sample point).
func edgeFunction(ax, ay, bx, by, px, py float32) float32 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

// isTopLeftEdge reports whether the directed edge a->b is a top or left
// edge of a counter-clockwise-wound (in this rasterizer's canonical,
// positive-area screen ordering) triangle, under the y-down viewport
// convention: a top edge runs leftward at constant y, a left edge runs
// downward.
func isTopLeftEdge(ax, ay, bx, by float32) bool {
	isTop := ay == by && bx < ax
	isLeft := by > ay
	return isTop || isLeft
}

// triangleEpsilon is the on-edge tolerance for the degenerate-area
// discard and the top-left fill-rule comparisons.
const triangleEpsilon float32 = 1e-6

// RasterizeTriangle fills the triangle v0,v1,v2 (in the order the
// assembler emitted them) using an edge-function scan with the top-left
// fill rule, perspective-correct attribute interpolation, and polygon
// offset's depth-slope term. Facing is decided from the
// NDC-space winding (unaffected by the viewport's y-flip) against
// FrontFace; a culled triangle emits nothing.
func (p *Pipeline) RasterizeTriangle(v0, v1, v2 Varying, fs FragmentShader) {
	ax, ay := v1.NDC.X-v0.NDC.X, v1.NDC.Y-v0.NDC.Y
	bx, by := v2.NDC.X-v0.NDC.X, v2.NDC.Y-v0.NDC.Y
	ndcArea := ax*by - ay*bx
	if linear.IsZeroApprox(ndcArea, triangleEpsilon) {
		return
	}
	isCCW := ndcArea > 0
	isFront := isCCW == (p.state.FrontFace == CCW)

	if p.state.CullEnable {
		if (isFront && p.state.CullFace == FRONT) || (!isFront && p.state.CullFace == BACK) {
			return
		}
	}

	p0, p1, p2 := v0.ViewportCoord, v1.ViewportCoord, v2.ViewportCoord
	sa := edgeFunction(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y)
	if linear.IsZeroApprox(sa, triangleEpsilon) {
		return
	}

	rv0, rv1, rv2 := v0, v1, v2
	rp0, rp1, rp2 := p0, p1, p2
	if sa < 0 {
		rv1, rv2 = rv2, rv1
		rp1, rp2 = rp2, rp1
		sa = -sa
	}

	top0 := isTopLeftEdge(rp1.X, rp1.Y, rp2.X, rp2.Y)
	top1 := isTopLeftEdge(rp2.X, rp2.Y, rp0.X, rp0.Y)
	top2 := isTopLeftEdge(rp0.X, rp0.Y, rp1.X, rp1.Y)

	minX := math32.Min(rp0.X, math32.Min(rp1.X, rp2.X))
	maxX := math32.Max(rp0.X, math32.Max(rp1.X, rp2.X))
	minY := math32.Min(rp0.Y, math32.Min(rp1.Y, rp2.Y))
	maxY := math32.Max(rp0.Y, math32.Max(rp1.Y, rp2.Y))

	vp := p.state.Viewport
	x0 := max(int(math32.Floor(minX)), vp.X)
	y0 := max(int(math32.Floor(minY)), vp.Y)
	x1 := min(int(math32.Ceil(maxX)), vp.X+vp.W)
	y1 := min(int(math32.Ceil(maxY)), vp.Y+vp.H)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	invW0 := 1 / rv0.ClipCoord.W
	invW1 := 1 / rv1.ClipCoord.W
	invW2 := 1 / rv2.ClipCoord.W

	dzdx := ((rp1.Z-rp0.Z)*(rp2.Y-rp0.Y) - (rp2.Z-rp0.Z)*(rp1.Y-rp0.Y)) / sa
	dzdy := ((rp2.Z-rp0.Z)*(rp1.X-rp0.X) - (rp1.Z-rp0.Z)*(rp2.X-rp0.X)) / sa
	depthSlope := math32.Max(math32.Abs(dzdx), math32.Abs(dzdy))

	// Edge functions are affine in the sample point, so the scan carries
	// running values: +dx per x step, row start +dy per y step.
	e0dx, e0dy := rp2.Y-rp1.Y, rp1.X-rp2.X
	e1dx, e1dy := rp0.Y-rp2.Y, rp2.X-rp0.X
	e2dx, e2dy := rp1.Y-rp0.Y, rp0.X-rp1.X

	startX := float32(x0) + 0.5
	startY := float32(y0) + 0.5
	e0Row := edgeFunction(rp1.X, rp1.Y, rp2.X, rp2.Y, startX, startY)
	e1Row := edgeFunction(rp2.X, rp2.Y, rp0.X, rp0.Y, startX, startY)
	e2Row := edgeFunction(rp0.X, rp0.Y, rp1.X, rp1.Y, startX, startY)

	for py := y0; py < y1; py++ {
		sy := float32(py) + 0.5
		e0, e1, e2 := e0Row, e1Row, e2Row
		for px := x0; px < x1; px++ {
			sx := float32(px) + 0.5

			if insideEdge(e0, top0) && insideEdge(e1, top1) && insideEdge(e2, top2) {
				bw := [3]float32{e0 / sa, e1 / sa, e2 / sa}
				pw := [3]float32{bw[0] * invW0, bw[1] * invW1, bw[2] * invW2}
				sum := pw[0] + pw[1] + pw[2]
				if !linear.IsZeroApprox(sum, triangleEpsilon) {
					pw[0] /= sum
					pw[1] /= sum
					pw[2] /= sum

					depth := pw[0]*rp0.Z + pw[1]*rp1.Z + pw[2]*rp2.Z

					attrs := InterpolateVarying3(rv0, rv1, rv2, pw)
					attrs.Normal = attrs.Normal.Normalized()
					attrs.Tangent.W = v0.Tangent.W

					frag := Fragment{
						ScreenCoord: linear.V2{X: sx, Y: sy},
						Depth:       depth,
						DepthSlope:  depthSlope,
						IsFront:     isFront,
						WorldPos:    attrs.WorldPos,
						ViewPos:     attrs.ViewPos,
						Normal:      attrs.Normal,
						Tangent:     attrs.Tangent,
						UV0:         attrs.UV0,
						UV1:         attrs.UV1,
						Color0:      attrs.Color0,
						Color1:      attrs.Color1,
					}
					p.mergeFragment(frag, PrimFill, fs)
				}
			}

			e0 += e0dx
			e1 += e1dx
			e2 += e2dx
		}
		e0Row += e0dy
		e1Row += e1dy
		e2Row += e2dy
	}
}

func insideEdge(e float32, topLeft bool) bool {
	if topLeft {
		return e >= -triangleEpsilon
	}
	return e > triangleEpsilon
}
