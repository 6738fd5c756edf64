package vgpu

import (
	"github.com/chewxy/math32"
	"github.com/virtgpu/vgpu/internal/linear"
)

// blendFactorValue evaluates factor for channel c (0=R,1=G,2=B,3=A) given
// the fragment's src color, the pre-blend dst color, and the pipeline's
// blend constant, following the OpenGL 3.3 factor table.
func blendFactorValue(factor BlendFactor, src, dst, constant linear.Color, c int) float32 {
	switch factor {
	case FACTOR_ZERO:
		return 0
	case FACTOR_ONE:
		return 1
	case SRC_COLOR:
		return src.Channel(c)
	case ONE_MINUS_SRC_COLOR:
		return 1 - src.Channel(c)
	case DST_COLOR:
		return dst.Channel(c)
	case ONE_MINUS_DST_COLOR:
		return 1 - dst.Channel(c)
	case SRC_ALPHA:
		return src.A
	case ONE_MINUS_SRC_ALPHA:
		return 1 - src.A
	case DST_ALPHA:
		return dst.A
	case ONE_MINUS_DST_ALPHA:
		return 1 - dst.A
	case CONSTANT_COLOR:
		return constant.Channel(c)
	case ONE_MINUS_CONSTANT_COLOR:
		return 1 - constant.Channel(c)
	case CONSTANT_ALPHA:
		return constant.A
	case ONE_MINUS_CONSTANT_ALPHA:
		return 1 - constant.A
	case SRC_ALPHA_SATURATE:
		if c == 3 {
			return 1
		}
		return math32.Min(src.A, 1-dst.A)
	default:
		return 1
	}
}

// applyBlendEquation combines a src and dst term under eq. Results are
// not clamped; the attachment encoder truncates on write.
func applyBlendEquation(eq BlendEquation, srcTerm, dstTerm float32) float32 {
	switch eq {
	case BLEND_ADD:
		return srcTerm + dstTerm
	case BLEND_SUBTRACT:
		return srcTerm - dstTerm
	case BLEND_REVERSE_SUBTRACT:
		return dstTerm - srcTerm
	case BLEND_MIN:
		return math32.Min(srcTerm, dstTerm)
	case BLEND_MAX:
		return math32.Max(srcTerm, dstTerm)
	default:
		return srcTerm + dstTerm
	}
}

// blendColors computes the post-blend color for src over dst under the
// draw-buffer's independent RGB/alpha factor and equation selection.
func blendColors(src, dst, constant linear.Color, factors BlendFactorPair, eq BlendEquationPair) linear.Color {
	var out linear.Color
	for c := 0; c < 3; c++ {
		sf := blendFactorValue(factors.SrcRGB, src, dst, constant, c)
		df := blendFactorValue(factors.DstRGB, src, dst, constant, c)
		v := applyBlendEquation(eq.RGB, src.Channel(c)*sf, dst.Channel(c)*df)
		switch c {
		case 0:
			out.R = v
		case 1:
			out.G = v
		case 2:
			out.B = v
		}
	}
	sf := blendFactorValue(factors.SrcAlpha, src, dst, constant, 3)
	df := blendFactorValue(factors.DstAlpha, src, dst, constant, 3)
	out.A = applyBlendEquation(eq.Alpha, src.A*sf, dst.A*df)
	return out
}

// WriteColor blends (if enabled), color-masks, and stores color into the
// draw-buffer slot's target attachment at pixel (x,y), under that
// attachment's color tile lock. A slot mapped to no attachment (disabled
// draw-slot) is silently dropped.
func (p *Pipeline) WriteColor(x, y float32, color linear.Color, slot int) {
	fb := p.boundDraw
	if fb == nil {
		return
	}
	attachIdx := -1
	if slot >= 0 && slot < MaxDrawBuffers {
		attachIdx = fb.DrawSlot[slot]
	}
	if attachIdx == NoAttachment || attachIdx < 0 {
		return
	}
	attch := fb.ColorAttachments[attachIdx]
	if attch == nil {
		return
	}

	px, py := int(math32.Floor(x)), int(math32.Floor(y))
	if px < 0 || py < 0 || px >= attch.Width || py >= attch.Height {
		return
	}

	dbs := p.state.DrawBuffers[slot]

	// Blend reads the destination and writes the result under one lock
	// acquisition; the read-modify-write must be atomic per pixel.
	lock := p.locks.ColorLock(attachIdx, px, py)
	lock.Lock()
	defer lock.Unlock()

	dstRGBA := attch.ReadColor(px, py)
	dst := linear.Color{R: dstRGBA[0], G: dstRGBA[1], B: dstRGBA[2], A: dstRGBA[3]}

	final := color
	if dbs.BlendEnable {
		constant := linear.Color{
			R: p.state.BlendConstant[0], G: p.state.BlendConstant[1],
			B: p.state.BlendConstant[2], A: p.state.BlendConstant[3],
		}
		final = blendColors(color, dst, constant, p.state.BlendFactors[slot], p.state.BlendEquations[slot])
	}

	write := dst
	if dbs.ColorMask[0] {
		write.R = final.R
	}
	if dbs.ColorMask[1] {
		write.G = final.G
	}
	if dbs.ColorMask[2] {
		write.B = final.B
	}
	if dbs.ColorMask[3] {
		write.A = final.A
	}

	attch.WriteColor(px, py, [4]float32{write.R, write.G, write.B, write.A})
}
