package vgpu

// MaxColorAttachments is the number of color attachment slots a frame
// buffer may hold.
const MaxColorAttachments = 32

// MaxDrawBuffers is the number of draw-buffer slots a frame buffer maps.
const MaxDrawBuffers = 16

// NoAttachment marks a draw/read slot as unbound.
const NoAttachment = -1

// FrameBuffer is a set of up to 32 color attachment slots plus one
// depth-stencil slot, with draw_slot[0..16] and read_slot mappings onto
// color attachment indices.
type FrameBuffer struct {
	ID int

	ColorAttachments [MaxColorAttachments]*Attachment
	DepthStencil     *Attachment

	// DrawSlot[i] is the color attachment index a fragment shader's
	// output slot i writes to, or NoAttachment if that slot is disabled.
	DrawSlot [MaxDrawBuffers]int

	// ReadSlot is the color attachment index read back by ReadPixels
	// (not used by the draw path itself).
	ReadSlot int
}

// NewDefaultFrameBuffer builds frame buffer id 0: the caller's external
// color buffer bound to slot 0 and draw-slot 0, plus an internally
// allocated packed depth-stencil attachment of the same dimensions. Every
// other draw slot starts unbound.
func NewDefaultFrameBuffer(color *Attachment, width, height int) *FrameBuffer {
	ds := NewAttachment(width, height, DEPTH_STENCIL, U8)
	fb := &FrameBuffer{
		ID:           0,
		DepthStencil: &ds,
		ReadSlot:     0,
	}
	fb.ColorAttachments[0] = color
	for i := range fb.DrawSlot {
		fb.DrawSlot[i] = NoAttachment
	}
	fb.DrawSlot[0] = 0
	return fb
}

// AttachColor binds attachment into color attachment index idx and maps
// draw-buffer slot drawSlot to it. Pass NoAttachment as drawSlot to bind
// the attachment without exposing it on any draw slot.
func (fb *FrameBuffer) AttachColor(idx int, attachment *Attachment, drawSlot int) {
	if idx < 0 || idx >= MaxColorAttachments {
		return
	}
	fb.ColorAttachments[idx] = attachment
	if drawSlot >= 0 && drawSlot < MaxDrawBuffers {
		fb.DrawSlot[drawSlot] = idx
	}
}

// AttachDepthStencil binds attachment as the frame buffer's depth-stencil
// slot, replacing any previously bound depth-stencil attachment.
func (fb *FrameBuffer) AttachDepthStencil(attachment *Attachment) {
	fb.DepthStencil = attachment
}

// ColorAttachmentFor resolves the attachment a draw-buffer slot targets,
// or nil if the slot is disabled or out of range.
func (fb *FrameBuffer) ColorAttachmentFor(drawSlot int) *Attachment {
	if drawSlot < 0 || drawSlot >= MaxDrawBuffers {
		return nil
	}
	idx := fb.DrawSlot[drawSlot]
	if idx == NoAttachment {
		return nil
	}
	return fb.ColorAttachments[idx]
}
