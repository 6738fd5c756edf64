package vgpu

import "github.com/virtgpu/vgpu/internal/pixel"

// ReadPixels copies the rectangle [x, x+w) x [y, y+h) of the bound read
// frame buffer's read-slot attachment into dst, converting every pixel
// to the requested color format and component type. Rows are written
// tightly packed in y-down order. A missing read attachment records
// INVALID_OPERATION; an out-of-bounds rectangle, a non-color format, or
// a too-small dst records INVALID_VALUE. dst is untouched on failure.
func (p *Pipeline) ReadPixels(x, y, w, h int, format PixelFormat, ctype ComponentType, dst []byte) error {
	fb := p.boundRead
	if fb == nil || fb.ReadSlot == NoAttachment {
		return p.newOpError(INVALID_OPERATION, "no read attachment bound")
	}
	attch := fb.ColorAttachments[fb.ReadSlot]
	if attch == nil {
		return p.newOpError(INVALID_OPERATION, "read slot maps to a detached attachment")
	}
	if !pixel.IsColorFormat(format) || pixel.TypeSize(ctype) == 0 {
		return p.newOpError(INVALID_VALUE, "invalid read-pixel format %v/%v", format, ctype)
	}
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > attch.Width || y+h > attch.Height {
		return p.newOpError(INVALID_VALUE, "read rectangle (%d,%d,%d,%d) outside %dx%d attachment",
			x, y, w, h, attch.Width, attch.Height)
	}
	stride := pixel.PixelSize(format, ctype)
	if need := w * h * stride; len(dst) < need {
		return p.newOpError(INVALID_VALUE, "destination too small: have %d bytes, need %d", len(dst), need)
	}

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			rgba := attch.ReadColor(x+col, y+row)
			off := (row*w + col) * stride
			pixel.EncodeColor(dst[off:], rgba, format, ctype)
		}
	}
	return nil
}
