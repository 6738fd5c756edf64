package vgpu

import (
	"github.com/virtgpu/vgpu/internal/parallel"
	"github.com/virtgpu/vgpu/internal/pixel"
)

// Pipeline is the rendering pipeline singleton: the flat fixed-function
// state, the frame-buffer pool, and the process-lifetime worker pool and
// tile lock grid that every draw call shares. Its lifetime spans
// Initialize to process shutdown; state is written only by the calling
// thread between draw calls and read only from inside worker tasks
// during a draw.
type Pipeline struct {
	state PipelineState

	pool  *parallel.WorkerPool
	locks *parallel.TileLockGrid

	frameBuffers map[int]*FrameBuffer
	nextFBID     int
	boundDraw    *FrameBuffer
	boundRead    *FrameBuffer
}

// NewPipeline constructs a pipeline with a worker pool of the given size
// (DefaultWorkers when workers <= 0). The pool and lock grid are
// constructed once and live for the life of the pipeline; they are not
// torn down between frame buffers or draw calls.
func NewPipeline(workers int) *Pipeline {
	return &Pipeline{
		pool:         parallel.NewWorkerPool(workers),
		locks:        parallel.NewTileLockGrid(),
		frameBuffers: make(map[int]*FrameBuffer),
	}
}

// Initialize resets the pipeline to OpenGL 3.3 initial state and creates
// the default frame buffer (id 0) from the caller's external color
// buffer. color must be sized for width*height pixels
// of format/ctype; width and height must be in (0, 4096].
func (p *Pipeline) Initialize(color []byte, width, height int, format PixelFormat, ctype ComponentType) error {
	if color == nil {
		return p.newOpError(INVALID_VALUE, "color buffer is nil")
	}
	if width <= 0 || width > parallel.MaxAttachmentDim || height <= 0 || height > parallel.MaxAttachmentDim {
		return p.newOpError(INVALID_VALUE, "invalid attachment dimensions %dx%d", width, height)
	}
	switch format {
	case RED, RG, RGB, RGBA:
	default:
		return p.newOpError(INVALID_ENUM, "invalid default color format %v", format)
	}
	if pixel.TypeSize(ctype) == 0 {
		return p.newOpError(INVALID_ENUM, "invalid component type %v", ctype)
	}
	need := width * height * pixel.PixelSize(format, ctype)
	if len(color) < need {
		return p.newOpError(INVALID_VALUE, "color buffer too small: have %d bytes, need %d", len(color), need)
	}

	p.state = DefaultPipelineState(width, height)
	p.frameBuffers = make(map[int]*FrameBuffer)
	p.nextFBID = 1

	colorAttachment := Attachment{
		Width:         width,
		Height:        height,
		Format:        format,
		ComponentType: ctype,
		Data:          color,
	}
	fb := NewDefaultFrameBuffer(&colorAttachment, width, height)
	p.frameBuffers[0] = fb
	p.boundDraw = fb
	p.boundRead = fb

	Logger().Info("vgpu: pipeline initialized", "width", width, "height", height)
	return nil
}

// NewFrameBuffer allocates an empty frame buffer (every draw slot
// unbound, no depth-stencil attachment) and registers it under a new id.
// Attachments are attached to it by the caller through AttachColor /
// AttachDepthStencil; resource lifecycle (reference counting, deletion)
// is the façade's responsibility and is not modeled here.
func (p *Pipeline) NewFrameBuffer() *FrameBuffer {
	id := p.nextFBID
	p.nextFBID++
	fb := &FrameBuffer{ID: id, ReadSlot: NoAttachment}
	for i := range fb.DrawSlot {
		fb.DrawSlot[i] = NoAttachment
	}
	p.frameBuffers[id] = fb
	return fb
}

// BindDrawFrameBuffer binds fb as the target of subsequent draw and clear
// calls.
func (p *Pipeline) BindDrawFrameBuffer(fb *FrameBuffer) { p.boundDraw = fb }

// BindReadFrameBuffer binds fb as the target of subsequent read-pixel
// calls.
func (p *Pipeline) BindReadFrameBuffer(fb *FrameBuffer) { p.boundRead = fb }

// DrawFrameBuffer returns the currently bound draw frame buffer.
func (p *Pipeline) DrawFrameBuffer() *FrameBuffer { return p.boundDraw }

// State returns a copy of the current pipeline state.
func (p *Pipeline) State() PipelineState { return p.state }

// Close stops the pipeline's worker pool. A Pipeline that will never be
// used again should call this to let its goroutines exit; it is not
// required for correctness of any draw already completed.
func (p *Pipeline) Close() { p.pool.Close() }

// --- fixed-function state setters -------------------------------------

// SetViewport sets the viewport rectangle used by projection and
// scissor-against-viewport clamping.
func (p *Pipeline) SetViewport(x, y, w, h int) {
	if w < 0 || h < 0 {
		p.setError(INVALID_VALUE)
		return
	}
	p.state.Viewport = Rect{x, y, w, h}
}

// SetScissor sets the scissor rectangle and enable flag.
func (p *Pipeline) SetScissor(enable bool, x, y, w, h int) {
	p.state.ScissorEnable = enable
	p.state.Scissor = Rect{x, y, w, h}
}

// SetDepthRange sets the depth range mapped to by the viewport transform.
func (p *Pipeline) SetDepthRange(min, max float32) {
	p.state.DepthRangeMin = min
	p.state.DepthRangeMax = max
}

// SetDepthTest configures depth test enable, write enable, and compare
// function.
func (p *Pipeline) SetDepthTest(enable, write bool, fn CompareFunc) {
	p.state.DepthTestEnable = enable
	p.state.DepthWriteEnable = write
	p.state.DepthFunc = fn
}

// SetStencilTest enables or disables the stencil test.
func (p *Pipeline) SetStencilTest(enable bool) {
	p.state.StencilTestEnable = enable
}

// SetStencilFunc sets the compare function, reference value, and compare
// mask for face.
func (p *Pipeline) SetStencilFunc(face Face, fn CompareFunc, ref, mask uint8) {
	f := &p.state.Stencil[face]
	f.Func, f.Ref, f.FuncMask = fn, ref, mask
}

// SetStencilOp sets the stencil-fail, depth-fail, and depth-pass
// operations for face.
func (p *Pipeline) SetStencilOp(face Face, sfail, dpfail, dppass StencilOp) {
	f := &p.state.Stencil[face]
	f.SFail, f.DPFail, f.DPPass = sfail, dpfail, dppass
}

// SetStencilWriteMask sets the stencil write mask for face. Only the low
// 8 bits are meaningful.
func (p *Pipeline) SetStencilWriteMask(face Face, mask uint8) {
	p.state.Stencil[face].WriteMask = mask
}

// SetBlendFuncSeparate sets the independent RGB/alpha blend factors for
// draw-buffer slot.
func (p *Pipeline) SetBlendFuncSeparate(slot int, srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor) {
	p.state.BlendFactors[slot] = BlendFactorPair{srcRGB, dstRGB, srcAlpha, dstAlpha}
}

// SetBlendFunc sets the same source/dest factor for both RGB and alpha.
func (p *Pipeline) SetBlendFunc(slot int, src, dst BlendFactor) {
	p.SetBlendFuncSeparate(slot, src, dst, src, dst)
}

// SetBlendEquationSeparate sets the independent RGB/alpha combine
// operator for draw-buffer slot.
func (p *Pipeline) SetBlendEquationSeparate(slot int, rgb, alpha BlendEquation) {
	p.state.BlendEquations[slot] = BlendEquationPair{rgb, alpha}
}

// SetBlendEquation sets the same combine operator for both RGB and alpha.
func (p *Pipeline) SetBlendEquation(slot int, eq BlendEquation) {
	p.SetBlendEquationSeparate(slot, eq, eq)
}

// SetBlendConstant sets the constant blend color.
func (p *Pipeline) SetBlendConstant(rgba [4]float32) { p.state.BlendConstant = rgba }

// SetBlendEnable toggles blending for draw-buffer slot.
func (p *Pipeline) SetBlendEnable(slot int, enable bool) {
	p.state.DrawBuffers[slot].BlendEnable = enable
}

// SetColorMask sets the per-channel write mask for draw-buffer slot.
func (p *Pipeline) SetColorMask(slot int, r, g, b, a bool) {
	p.state.DrawBuffers[slot].ColorMask = [4]bool{r, g, b, a}
}

// SetCull configures face culling.
func (p *Pipeline) SetCull(enable bool, face Face, front Winding) {
	p.state.CullEnable, p.state.CullFace, p.state.FrontFace = enable, face, front
}

// SetPolygonMode sets whether filled primitives rasterize as points,
// line edges, or a solid fill.
func (p *Pipeline) SetPolygonMode(mode PolygonMode) { p.state.PolygonMode = mode }

// SetPolygonOffset configures the point/line/polygon offset enables and
// the depth_factor/depth_unit bias terms.
func (p *Pipeline) SetPolygonOffset(point, line, polygon bool, factor, unit float32) {
	p.state.PointOffsetEnable = point
	p.state.LineOffsetEnable = line
	p.state.PolygonOffsetEnable = polygon
	p.state.DepthFactor = factor
	p.state.DepthUnit = unit
}

// SetLineWidth sets the line rasterization width (not used by the
// Bresenham core path, which always produces a single-pixel run; kept
// for façade state round-tripping).
func (p *Pipeline) SetLineWidth(w float32) { p.state.LineWidth = w }

// SetClearValues sets the clear color, depth, and stencil values used by
// Clear. The per-buffer ClearColor/ClearDepth/ClearStencil calls take
// their values as arguments instead.
func (p *Pipeline) SetClearValues(color [4]float32, depth float32, stencil uint8) {
	p.state.ClearColor = color
	p.state.ClearDepth = depth
	p.state.ClearStencil = stencil
}
