package vgpu

import "testing"

func TestStickyErrorDoesNotOverwrite(t *testing.T) {
	p := newTestPipeline(t, 4, 4)
	p.setError(INVALID_ENUM)
	p.setError(INVALID_OPERATION) // should not overwrite the first error

	if got := p.GetError(); got != INVALID_ENUM {
		t.Errorf("GetError() = %v, want the first sticky error INVALID_ENUM", got)
	}
	if got := p.GetError(); got != NO_ERROR {
		t.Errorf("GetError() after consumption = %v, want NO_ERROR", got)
	}
}

func TestSetViewportNegativeSizeSetsInvalidValue(t *testing.T) {
	p := newTestPipeline(t, 4, 4)
	p.SetViewport(0, 0, -1, 4)
	if got := p.GetError(); got != INVALID_VALUE {
		t.Errorf("GetError() = %v, want INVALID_VALUE for a negative viewport width", got)
	}
}
