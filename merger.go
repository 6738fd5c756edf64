package vgpu

import (
	"github.com/chewxy/math32"
	"github.com/virtgpu/vgpu/internal/linear"
)

// PrimitiveKind selects which offset-enable toggle ApplyDepthOffset
// consults for the current rasterization mode.
type PrimitiveKind int

const (
	PrimPoint PrimitiveKind = iota
	PrimLine
	PrimFill
)

// ScissorTest reports whether the pixel at (x,y) passes the viewport and
// (if enabled) scissor rectangles. Both bounds are half-open on the upper
// edge.
func (p *Pipeline) ScissorTest(x, y float32) bool {
	px, py := int(math32.Floor(x)), int(math32.Floor(y))
	vp := p.state.Viewport
	if !vp.Contains(px, py) {
		return false
	}
	if !p.state.ScissorEnable {
		return true
	}
	return p.state.Scissor.Contains(px, py)
}

// ApplyDepthOffset applies the polygon/line/point offset bias to depth
// when the matching enable is set for kind:
// depth + depth_slope*depth_factor + r*depth_unit, r = 2^-DepthBits.
func (p *Pipeline) ApplyDepthOffset(depth, depthSlope float32, kind PrimitiveKind) float32 {
	enabled := false
	switch kind {
	case PrimFill:
		enabled = p.state.PolygonOffsetEnable
	case PrimLine:
		enabled = p.state.LineOffsetEnable
	case PrimPoint:
		enabled = p.state.PointOffsetEnable
	}
	if !enabled {
		return depth
	}
	r := float32(1) / float32(int32(1)<<DepthBits)
	bias := depthSlope*p.state.DepthFactor + r*p.state.DepthUnit
	return clampf(depth+bias, 0, 1)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func compare(fn CompareFunc, a, b float32) bool {
	switch fn {
	case NEVER:
		return false
	case LESS:
		return a < b
	case EQUAL:
		return a == b
	case LEQUAL:
		return a <= b
	case GREATER:
		return a > b
	case NOTEQUAL:
		return a != b
	case GEQUAL:
		return a >= b
	case ALWAYS:
		return true
	default:
		return false
	}
}

func compareU8(fn CompareFunc, a, b uint8) bool {
	switch fn {
	case NEVER:
		return false
	case LESS:
		return a < b
	case EQUAL:
		return a == b
	case LEQUAL:
		return a <= b
	case GREATER:
		return a > b
	case NOTEQUAL:
		return a != b
	case GEQUAL:
		return a >= b
	case ALWAYS:
		return true
	default:
		return false
	}
}

func applyStencilOp(op StencilOp, old, ref uint8) uint8 {
	switch op {
	case KEEP:
		return old
	case ZERO:
		return 0
	case REPLACE:
		return ref
	case INCR:
		if old < 255 {
			return old + 1
		}
		return 255
	case DECR:
		if old > 0 {
			return old - 1
		}
		return 0
	case INVERT:
		return ^old
	case INCR_WRAP:
		return old + 1
	case DECR_WRAP:
		return old - 1
	default:
		return old
	}
}

// TestDepthStencil runs the combined stencil-then-depth test at pixel
// (x,y) against the bound draw frame buffer's depth-stencil attachment
// under the depth tile lock, applies the selected stencil op and any
// depth write, and returns whether the fragment survives (stencil pass
// and depth pass). A missing depth-stencil attachment always passes.
func (p *Pipeline) TestDepthStencil(x, y, depth float32, isFront bool) bool {
	fb := p.boundDraw
	if fb == nil || fb.DepthStencil == nil {
		return true
	}
	attch := fb.DepthStencil

	px, py := int(math32.Floor(x)), int(math32.Floor(y))
	if px < 0 || py < 0 || px >= attch.Width || py >= attch.Height {
		return false
	}

	faceIdx := FRONT
	if !isFront {
		faceIdx = BACK
	}
	face := p.state.Stencil[faceIdx]

	isDepthStencil := attch.Format == DEPTH_STENCIL

	// The whole read-test-write sequence holds the depth tile lock once:
	// releasing between the read and the write-back would let a peer
	// worker interleave and break pixel-level serializability.
	lock := p.locks.DepthLock(px, py)
	lock.Lock()
	defer lock.Unlock()

	var oldDepth float32
	var stencil uint8
	if isDepthStencil {
		oldDepth, stencil = attch.ReadDepthStencil(px, py)
	} else {
		oldDepth = attch.ReadDepth(px, py)
	}

	stencilPass := true
	if isDepthStencil && p.state.StencilTestEnable {
		refM := face.Ref & face.FuncMask
		valM := stencil & face.FuncMask
		stencilPass = compareU8(face.Func, refM, valM)
	}

	depthPass := true
	if p.state.DepthTestEnable && stencilPass {
		depthPass = compare(p.state.DepthFunc, depth, oldDepth)
	} else if !stencilPass {
		depthPass = false
	}

	if isDepthStencil && p.state.StencilTestEnable {
		var op StencilOp
		switch {
		case !stencilPass:
			op = face.SFail
		case !depthPass:
			op = face.DPFail
		default:
			op = face.DPPass
		}
		if face.WriteMask != 0 {
			result := applyStencilOp(op, stencil, face.Ref)
			stencil = (stencil &^ face.WriteMask) | (result & face.WriteMask)
		}
	}

	writeDepth := oldDepth
	if p.state.DepthTestEnable && depthPass && p.state.DepthWriteEnable {
		writeDepth = depth
	}

	if isDepthStencil {
		attch.WriteDepthStencil(px, py, writeDepth, stencil)
	} else {
		attch.WriteDepth(px, py, writeDepth)
	}

	return stencilPass && depthPass
}

// mergeFragment runs the common scissor -> depth-offset -> depth/stencil
// -> fragment-shade -> color-write sequence shared by the point, line,
// and triangle rasterizers. The depth/stencil test runs before the
// fragment shader; only surviving fragments are shaded and written.
func (p *Pipeline) mergeFragment(frag Fragment, kind PrimitiveKind, fs FragmentShader) {
	if !p.ScissorTest(frag.ScreenCoord.X, frag.ScreenCoord.Y) {
		return
	}
	frag.Depth = p.ApplyDepthOffset(frag.Depth, frag.DepthSlope, kind)

	if !p.TestDepthStencil(frag.ScreenCoord.X, frag.ScreenCoord.Y, frag.Depth, frag.IsFront) {
		return
	}

	var out FSOutputs
	fs(frag, &out)

	for slot := 0; slot < MaxDrawBuffers; slot++ {
		c, ok := out.Color(slot)
		if !ok {
			continue
		}
		p.WriteColor(frag.ScreenCoord.X, frag.ScreenCoord.Y, linear.Color{R: c[0], G: c[1], B: c[2], A: c[3]}, slot)
	}
}
