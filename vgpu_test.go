package vgpu

import "testing"

func TestInitializeDefaultState(t *testing.T) {
	p := newTestPipeline(t, 32, 24)
	s := p.State()

	if s.Viewport != (Rect{0, 0, 32, 24}) {
		t.Errorf("Viewport = %v, want full-size rect", s.Viewport)
	}
	if s.DepthFunc != LESS {
		t.Errorf("DepthFunc = %v, want LESS", s.DepthFunc)
	}
	if !s.DepthWriteEnable {
		t.Error("DepthWriteEnable should default to true")
	}
	if s.DepthTestEnable {
		t.Error("DepthTestEnable should default to false")
	}
	if s.ScissorEnable {
		t.Error("ScissorEnable should default to false")
	}
	if s.StencilTestEnable {
		t.Error("StencilTestEnable should default to false")
	}
	if s.CullEnable {
		t.Error("CullEnable should default to false")
	}
	if s.CullFace != BACK {
		t.Errorf("CullFace = %v, want BACK", s.CullFace)
	}
	if s.FrontFace != CCW {
		t.Errorf("FrontFace = %v, want CCW", s.FrontFace)
	}
	if s.BlendFactors[0] != (BlendFactorPair{FACTOR_ONE, FACTOR_ZERO, FACTOR_ONE, FACTOR_ZERO}) {
		t.Errorf("BlendFactors[0] = %+v, want ONE/ZERO", s.BlendFactors[0])
	}
	if s.BlendEquations[0] != (BlendEquationPair{BLEND_ADD, BLEND_ADD}) {
		t.Errorf("BlendEquations[0] = %+v, want ADD/ADD", s.BlendEquations[0])
	}
	if s.DrawBuffers[0].ColorMask != [4]bool{true, true, true, true} {
		t.Errorf("DrawBuffers[0].ColorMask = %v, want all-on", s.DrawBuffers[0].ColorMask)
	}
	if s.ClearColor != [4]float32{0, 0, 0, 0} {
		t.Errorf("ClearColor = %v, want transparent black", s.ClearColor)
	}
	if s.ClearDepth != 1 {
		t.Errorf("ClearDepth = %v, want 1", s.ClearDepth)
	}
	if s.ClearStencil != 0 {
		t.Errorf("ClearStencil = %v, want 0", s.ClearStencil)
	}
}

func TestInitializeRejectsNilColorBuffer(t *testing.T) {
	p := NewPipeline(2)
	defer p.Close()
	if err := p.Initialize(nil, 4, 4, RGBA, U8); err == nil {
		t.Fatal("expected an error for a nil color buffer")
	}
}

func TestInitializeRejectsOversizedDimensions(t *testing.T) {
	p := NewPipeline(2)
	defer p.Close()
	color := make([]byte, 4)
	if err := p.Initialize(color, 5000, 4, RGBA, U8); err == nil {
		t.Fatal("expected an error for width > 4096")
	}
}

func TestInitializeRejectsUndersizedColorBuffer(t *testing.T) {
	p := NewPipeline(2)
	defer p.Close()
	color := make([]byte, 4) // needs 4*4*4 = 64 bytes for RGBA8
	if err := p.Initialize(color, 4, 4, RGBA, U8); err == nil {
		t.Fatal("expected an error for a too-small color buffer")
	}
}

func TestDefaultFrameBufferSlotZero(t *testing.T) {
	p := newTestPipeline(t, 4, 4)
	fb := p.DrawFrameBuffer()
	if fb.ID != 0 {
		t.Errorf("default frame buffer id = %d, want 0", fb.ID)
	}
	if fb.DrawSlot[0] != 0 {
		t.Errorf("draw slot 0 = %d, want 0 (mapped to color attachment 0)", fb.DrawSlot[0])
	}
	for i := 1; i < MaxDrawBuffers; i++ {
		if fb.DrawSlot[i] != NoAttachment {
			t.Errorf("draw slot %d = %d, want NoAttachment", i, fb.DrawSlot[i])
		}
	}
	if fb.DepthStencil == nil {
		t.Fatal("default frame buffer should have an internally allocated depth-stencil attachment")
	}
	if fb.DepthStencil.Format != DEPTH_STENCIL {
		t.Errorf("default depth-stencil format = %v, want DEPTH_STENCIL", fb.DepthStencil.Format)
	}
}
