package vgpu

import "testing"

func TestReadPixelsRGBA(t *testing.T) {
	p := newTestPipeline(t, 4, 4)
	p.boundDraw.ColorAttachments[0].WriteColor(1, 2, [4]float32{1, 0.5, 0, 1})

	dst := make([]byte, 2*2*4)
	if err := p.ReadPixels(0, 1, 2, 2, RGBA, U8, dst); err != nil {
		t.Fatalf("ReadPixels: %v", err)
	}

	// (1,2) lands at row 1, col 1 of the 2x2 read rectangle.
	off := (1*2 + 1) * 4
	if dst[off] != 255 || dst[off+3] != 255 {
		t.Errorf("pixel bytes = %v, want R=255 A=255", dst[off:off+4])
	}
	if g := dst[off+1]; g < 126 || g > 129 {
		t.Errorf("G byte = %d, want ~128", g)
	}
}

func TestReadPixelsBGRASwapsChannels(t *testing.T) {
	p := newTestPipeline(t, 2, 2)
	p.boundDraw.ColorAttachments[0].WriteColor(0, 0, [4]float32{1, 0, 0, 1})

	dst := make([]byte, 4)
	if err := p.ReadPixels(0, 0, 1, 1, BGRA, U8, dst); err != nil {
		t.Fatalf("ReadPixels: %v", err)
	}
	want := []byte{0, 0, 255, 255} // B G R A
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("BGRA bytes = %v, want %v", dst, want)
		}
	}
}

func TestReadPixelsOutOfBoundsSetsInvalidValue(t *testing.T) {
	p := newTestPipeline(t, 2, 2)
	dst := make([]byte, 64)
	if err := p.ReadPixels(0, 0, 4, 4, RGBA, U8, dst); err == nil {
		t.Fatal("expected an error for an out-of-bounds read rectangle")
	}
	if got := p.GetError(); got != INVALID_VALUE {
		t.Errorf("sticky error = %v, want INVALID_VALUE", got)
	}
}

func TestReadPixelsNoReadAttachment(t *testing.T) {
	p := newTestPipeline(t, 2, 2)
	fb := p.NewFrameBuffer()
	p.BindReadFrameBuffer(fb)

	dst := make([]byte, 4)
	if err := p.ReadPixels(0, 0, 1, 1, RGBA, U8, dst); err == nil {
		t.Fatal("expected an error with no read attachment bound")
	}
	if got := p.GetError(); got != INVALID_OPERATION {
		t.Errorf("sticky error = %v, want INVALID_OPERATION", got)
	}
}
