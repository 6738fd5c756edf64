package vgpu

import (
	"image"
	"image/color"

	"github.com/virtgpu/vgpu/internal/linear"
	"github.com/virtgpu/vgpu/internal/pixel"
)

// Attachment is a typed 2-D image: a backing byte block (which may be
// externally provided, as for the default color attachment) addressed by
// width, height, pixel format, and component type. Stride is always
// width * PixelSize(Format, ComponentType); a DEPTH_STENCIL attachment's
// component type is ignored by the codec (it is always the packed
// stencil+24-bit-depth layout).
type Attachment struct {
	Width, Height int
	Format        PixelFormat
	ComponentType ComponentType
	Data          []byte
}

// NewAttachment allocates a zeroed attachment of the given format and
// type. External color buffers (the default attachment's slot 0) are
// constructed directly with a caller-provided Data slice instead.
func NewAttachment(width, height int, format PixelFormat, ctype ComponentType) Attachment {
	stride := pixel.PixelSize(format, ctype)
	return Attachment{
		Width:         width,
		Height:        height,
		Format:        format,
		ComponentType: ctype,
		Data:          make([]byte, width*height*stride),
	}
}

// Stride returns the byte size of one pixel in this attachment.
func (a *Attachment) Stride() int {
	return pixel.PixelSize(a.Format, a.ComponentType)
}

// PixelOffset returns the byte offset of pixel (x,y).
func (a *Attachment) PixelOffset(x, y int) int {
	return (y*a.Width + x) * a.Stride()
}

// At returns the byte slice for pixel (x,y), sized to one pixel.
func (a *Attachment) At(x, y int) []byte {
	off := a.PixelOffset(x, y)
	return a.Data[off : off+a.Stride()]
}

// Bounds returns the attachment's pixel rectangle.
func (a *Attachment) Bounds() Rect {
	return Rect{0, 0, a.Width, a.Height}
}

// ReadColor decodes pixel (x,y) as linear RGBA.
func (a *Attachment) ReadColor(x, y int) [4]float32 {
	return pixel.DecodeColor(a.At(x, y), a.Format, a.ComponentType)
}

// WriteColor encodes and stores a linear RGBA color at pixel (x,y).
func (a *Attachment) WriteColor(x, y int, rgba [4]float32) {
	pixel.EncodeColor(a.At(x, y), rgba, a.Format, a.ComponentType)
}

// ReadDepthStencil decodes pixel (x,y) of a DEPTH_STENCIL attachment.
func (a *Attachment) ReadDepthStencil(x, y int) (depth float32, stencil uint8) {
	return pixel.DecodeDepthStencil(a.At(x, y))
}

// WriteDepthStencil encodes and stores depth and stencil at pixel (x,y)
// of a DEPTH_STENCIL attachment.
func (a *Attachment) WriteDepthStencil(x, y int, depth float32, stencil uint8) {
	pixel.EncodeDepthStencil(a.At(x, y), depth, stencil)
}

// ReadDepth decodes the depth value of pixel (x,y). A DEPTH_COMPONENT
// attachment stores it as a single channel of the attachment's component
// type; a DEPTH_STENCIL attachment stores it in the packed 24-bit field.
func (a *Attachment) ReadDepth(x, y int) float32 {
	if a.Format == DEPTH_STENCIL {
		depth, _ := pixel.DecodeDepthStencil(a.At(x, y))
		return depth
	}
	return pixel.DecodeDepth(a.At(x, y), a.ComponentType)
}

// WriteDepth stores the depth value at pixel (x,y). On a DEPTH_STENCIL
// attachment the stencil byte is preserved.
func (a *Attachment) WriteDepth(x, y int, depth float32) {
	if a.Format == DEPTH_STENCIL {
		_, stencil := pixel.DecodeDepthStencil(a.At(x, y))
		pixel.EncodeDepthStencil(a.At(x, y), depth, stencil)
		return
	}
	pixel.EncodeDepth(a.At(x, y), depth, a.ComponentType)
}

// ImageView adapts a color Attachment to image.Image/draw.Image, so a
// rendered frame can feed png.Encode or a golden-image comparison
// directly.
// DEPTH_COMPONENT and DEPTH_STENCIL attachments are not valid color
// images and ImageView over one always reads back transparent black.
type ImageView struct {
	A *Attachment
}

// ColorModel implements image.Image.
func (v ImageView) ColorModel() color.Model { return color.NRGBA64Model }

// Bounds implements image.Image.
func (v ImageView) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.A.Width, v.A.Height)
}

// At implements image.Image.
func (v ImageView) At(x, y int) color.Color {
	if !pixel.IsColorFormat(v.A.Format) {
		return color.NRGBA64{A: 0}
	}
	rgba := v.A.ReadColor(x, y)
	return color.NRGBA64{
		R: uint16(linear.Clamp01(rgba[0]) * 0xffff),
		G: uint16(linear.Clamp01(rgba[1]) * 0xffff),
		B: uint16(linear.Clamp01(rgba[2]) * 0xffff),
		A: uint16(linear.Clamp01(rgba[3]) * 0xffff),
	}
}

// Set implements draw.Image.
func (v ImageView) Set(x, y int, c color.Color) {
	r, g, b, a := c.RGBA()
	v.A.WriteColor(x, y, [4]float32{
		float32(r) / 0xffff,
		float32(g) / 0xffff,
		float32(b) / 0xffff,
		float32(a) / 0xffff,
	})
}
