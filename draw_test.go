package vgpu

import (
	"testing"

	"github.com/virtgpu/vgpu/internal/linear"
)

// TestDrawArraysFullScreenTriangle draws one CCW triangle large enough to
// cover a small canvas entirely and checks that the fragment shader's color
// reached the attachment.
func TestDrawArraysFullScreenTriangle(t *testing.T) {
	p := newTestPipeline(t, 16, 16)

	// A clip-space quad's lower-left triangle, CCW, spanning past every
	// edge of the [-1,1] clip cube so it rasterizes to the full viewport.
	clip := [3]linear.V4{
		{X: -2, Y: -2, Z: 0, W: 1},
		{X: 6, Y: -2, Z: 0, W: 1},
		{X: -2, Y: 6, Z: 0, W: 1},
	}
	vs := func(index uint32) Varying {
		return Varying{ClipCoord: clip[index], Color0: linear.Color{R: 1, G: 0, B: 0, A: 1}}
	}
	fs := func(f Fragment, out *FSOutputs) {
		out.Write(0, [4]float32{f.Color0.R, f.Color0.G, f.Color0.B, f.Color0.A})
	}

	p.DrawArrays(TRIANGLES, 0, 3, vs, fs)

	attch := p.boundDraw.ColorAttachments[0]
	covered := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if c := attch.ReadColor(x, y); c[0] > 0.5 {
				covered++
			}
		}
	}
	if covered == 0 {
		t.Fatal("expected the oversized triangle to cover at least one pixel")
	}
}

func TestDrawElementsMissingBufferSetsStickyError(t *testing.T) {
	p := newTestPipeline(t, 4, 4)
	vs := func(index uint32) Varying { return Varying{} }
	fs := func(f Fragment, out *FSOutputs) {}

	err := p.DrawElements(TRIANGLES, nil, INDEX_U16, 0, 3, vs, fs)
	if err == nil {
		t.Fatal("expected an error for a nil element buffer")
	}
	if got := p.GetError(); got != INVALID_OPERATION {
		t.Errorf("sticky error = %v, want INVALID_OPERATION", got)
	}
	// GetError consumes the sticky state.
	if got := p.GetError(); got != NO_ERROR {
		t.Errorf("second GetError = %v, want NO_ERROR after consumption", got)
	}
}

func TestDrawElementsIndexedLookup(t *testing.T) {
	p := newTestPipeline(t, 16, 16)

	clip := []linear.V4{
		{X: -2, Y: -2, Z: 0, W: 1},
		{X: 3, Y: -2, Z: 0, W: 1},
		{X: -2, Y: 3, Z: 0, W: 1},
	}
	vs := func(index uint32) Varying {
		return Varying{ClipCoord: clip[index], Color0: linear.Color{R: 1, A: 1}}
	}
	fs := func(f Fragment, out *FSOutputs) {
		out.Write(0, [4]float32{f.Color0.R, f.Color0.G, f.Color0.B, f.Color0.A})
	}

	// Element buffer references the three clip-space vertices in order.
	elements := []byte{0, 1, 2}
	if err := p.DrawElements(TRIANGLES, elements, INDEX_U8, 0, 3, vs, fs); err != nil {
		t.Fatalf("DrawElements: %v", err)
	}

	attch := p.boundDraw.ColorAttachments[0]
	if c := attch.ReadColor(1, 1); c[0] < 0.5 {
		t.Errorf("pixel (1,1) = %v, expected covered by the indexed triangle", c)
	}
}

func TestDrawArraysZeroCountIsNoop(t *testing.T) {
	p := newTestPipeline(t, 4, 4)
	called := false
	vs := func(index uint32) Varying { called = true; return Varying{} }
	fs := func(f Fragment, out *FSOutputs) {}
	p.DrawArrays(TRIANGLES, 0, 0, vs, fs)
	if called {
		t.Error("vertex shader should not run for a zero-count draw")
	}
}
