package vgpu

// clearRect computes the pixel rectangle a clear targets: the viewport
// clamped first, then intersected with the scissor rectangle when
// enabled. Clearing never touches pixels outside this rect.
func (p *Pipeline) clearRect() Rect {
	r := p.state.Viewport
	if p.state.ScissorEnable {
		r = r.Intersect(p.state.Scissor)
	}
	return r
}

// ClearColor fills the attachment bound to draw-buffer slot with color
// across the clear rectangle, honoring the slot's color write mask.
func (p *Pipeline) ClearColor(slot int, color [4]float32) {
	fb := p.boundDraw
	if fb == nil {
		return
	}
	attch := fb.ColorAttachmentFor(slot)
	if attch == nil {
		return
	}
	r := p.clearRect().Intersect(attch.Bounds())
	mask := p.state.DrawBuffers[slot].ColorMask

	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if mask == [4]bool{true, true, true, true} {
				attch.WriteColor(x, y, color)
				continue
			}
			dst := attch.ReadColor(x, y)
			if mask[0] {
				dst[0] = color[0]
			}
			if mask[1] {
				dst[1] = color[1]
			}
			if mask[2] {
				dst[2] = color[2]
			}
			if mask[3] {
				dst[3] = color[3]
			}
			attch.WriteColor(x, y, dst)
		}
	}
}

// ClearDepth writes depth across the clear rectangle of the bound draw
// frame buffer's depth-stencil attachment, preserving its stencil channel
// when the attachment is DEPTH_STENCIL.
func (p *Pipeline) ClearDepth(depth float32) {
	attch := p.boundDepthStencil()
	if attch == nil {
		return
	}
	r := p.clearRect().Intersect(attch.Bounds())
	isDS := attch.Format == DEPTH_STENCIL

	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if isDS {
				_, stencil := attch.ReadDepthStencil(x, y)
				attch.WriteDepthStencil(x, y, depth, stencil)
			} else {
				attch.WriteDepth(x, y, depth)
			}
		}
	}
}

// ClearStencil writes stencil (masked by the front face's stencil write
// mask) across the clear rectangle, preserving depth. A
// DEPTH_COMPONENT-only attachment has no stencil channel and is left
// untouched.
func (p *Pipeline) ClearStencil(stencil uint8) {
	attch := p.boundDepthStencil()
	if attch == nil || attch.Format != DEPTH_STENCIL {
		return
	}
	mask := p.state.Stencil[FRONT].WriteMask
	r := p.clearRect().Intersect(attch.Bounds())

	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			depth, old := attch.ReadDepthStencil(x, y)
			next := (old &^ mask) | (stencil & mask)
			attch.WriteDepthStencil(x, y, depth, next)
		}
	}
}

// ClearDepthStencil clears both channels of a DEPTH_STENCIL attachment in
// a single pass, honoring the stencil write mask.
func (p *Pipeline) ClearDepthStencil(depth float32, stencil uint8) {
	attch := p.boundDepthStencil()
	if attch == nil {
		return
	}
	if attch.Format != DEPTH_STENCIL {
		p.ClearDepth(depth)
		return
	}
	mask := p.state.Stencil[FRONT].WriteMask
	r := p.clearRect().Intersect(attch.Bounds())

	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			_, old := attch.ReadDepthStencil(x, y)
			next := (old &^ mask) | (stencil & mask)
			attch.WriteDepthStencil(x, y, depth, next)
		}
	}
}

func (p *Pipeline) boundDepthStencil() *Attachment {
	fb := p.boundDraw
	if fb == nil {
		return nil
	}
	return fb.DepthStencil
}

// Clear dispatches to ClearColor (every enabled draw slot), ClearDepth,
// ClearStencil, or the combined depth-stencil pass according to which
// bits of mask are set, using the pipeline's current clear values.
func (p *Pipeline) Clear(mask ClearMask) {
	if mask&CLEAR_COLOR != 0 {
		if fb := p.boundDraw; fb != nil {
			for slot := 0; slot < MaxDrawBuffers; slot++ {
				if fb.DrawSlot[slot] != NoAttachment {
					p.ClearColor(slot, p.state.ClearColor)
				}
			}
		}
	}

	switch {
	case mask&CLEAR_DEPTH != 0 && mask&CLEAR_STENCIL != 0:
		p.ClearDepthStencil(p.state.ClearDepth, p.state.ClearStencil)
	case mask&CLEAR_DEPTH != 0:
		p.ClearDepth(p.state.ClearDepth)
	case mask&CLEAR_STENCIL != 0:
		p.ClearStencil(p.state.ClearStencil)
	}
}
