package pixel

import "testing"

func TestChannelRoundTripUnorm(t *testing.T) {
	tests := []struct {
		name string
		t    ComponentType
		v    float32
	}{
		{"u8 mid", U8, 0.5},
		{"u8 zero", U8, 0},
		{"u8 one", U8, 1},
		{"u16 mid", U16, 0.5},
		{"u32 mid", U32, 0.25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, 4)
			n := EncodeChannel(buf, tc.v, tc.t)
			got, n2 := DecodeChannel(buf, tc.t)
			if n != n2 {
				t.Fatalf("encode width %d != decode width %d", n, n2)
			}
			if diff := got - tc.v; diff < -0.01 || diff > 0.01 {
				t.Errorf("round trip %v -> %v, want within 0.01 of %v", tc.v, got, tc.v)
			}
		})
	}
}

func TestChannelRoundTripSnorm(t *testing.T) {
	tests := []struct {
		name string
		t    ComponentType
		v    float32
	}{
		{"s8 negative", S8, -0.5},
		{"s8 min", S8, -1},
		{"s8 max", S8, 1},
		{"s16 mid", S16, 0.33},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, 4)
			EncodeChannel(buf, tc.v, tc.t)
			got, _ := DecodeChannel(buf, tc.t)
			if diff := got - tc.v; diff < -0.01 || diff > 0.01 {
				t.Errorf("round trip %v -> %v, want within 0.01 of %v", tc.v, got, tc.v)
			}
		})
	}
}

func TestChannelRoundTripFloat(t *testing.T) {
	tests := []struct {
		name string
		t    ComponentType
		v    float32
	}{
		{"f32 exact", F32, 3.14159},
		{"f16 approx", F16, 2.5},
		{"f16 zero", F16, 0},
		{"f16 negative", F16, -1.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, 4)
			EncodeChannel(buf, tc.v, tc.t)
			got, _ := DecodeChannel(buf, tc.t)
			if tc.t == F32 {
				if got != tc.v {
					t.Errorf("f32 round trip %v -> %v, want exact", tc.v, got)
				}
				return
			}
			if diff := got - tc.v; diff < -0.01 || diff > 0.01 {
				t.Errorf("round trip %v -> %v, want within 0.01 of %v", tc.v, got, tc.v)
			}
		})
	}
}

func TestEncodeColorMissingChannelsDefault(t *testing.T) {
	buf := make([]byte, PixelSize(RED, U8))
	EncodeColor(buf, [4]float32{0.5, 0.9, 0.9, 0.9}, RED, U8)
	got := DecodeColor(buf, RED, U8)
	want := [4]float32{got[0], 0, 0, 1}
	if got != want {
		t.Errorf("DecodeColor(RED) = %v, want G/B=0 A=1 with R preserved", got)
	}
}

func TestBGRASwapsRedAndBlue(t *testing.T) {
	buf := make([]byte, PixelSize(BGRA, U8))
	EncodeColor(buf, [4]float32{1, 0.5, 0, 1}, BGRA, U8)
	if buf[0] != 0 || buf[2] != 255 {
		t.Errorf("BGRA bytes = %v, want blue first and red third", buf)
	}

	got := DecodeColor(buf, BGRA, U8)
	if got[0] != 1 || got[2] != 0 {
		t.Errorf("DecodeColor(BGRA) = %v, want R=1 B=0 restored", got)
	}
}

func TestDepthStencilRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	EncodeDepthStencil(buf, 0.75, 0xAB)
	depth, stencil := DecodeDepthStencil(buf)
	if stencil != 0xAB {
		t.Errorf("stencil = %#x, want 0xab", stencil)
	}
	if diff := depth - 0.75; diff < -0.0001 || diff > 0.0001 {
		t.Errorf("depth = %v, want ~0.75", depth)
	}
}

func TestDepthComponentRoundTrip(t *testing.T) {
	for _, ct := range []ComponentType{U16, U32, F32} {
		buf := make([]byte, TypeSize(ct))
		EncodeDepth(buf, 0.625, ct)
		got := DecodeDepth(buf, ct)
		if diff := got - 0.625; diff < -0.001 || diff > 0.001 {
			t.Errorf("type %v: depth round trip = %v, want ~0.625", ct, got)
		}
	}
}

func TestEncodeDepthClamps(t *testing.T) {
	buf := make([]byte, 4)
	EncodeDepth(buf, 1.5, F32)
	if got := DecodeDepth(buf, F32); got != 1 {
		t.Errorf("depth 1.5 encoded as %v, want clamped 1", got)
	}
}

func TestPixelSize(t *testing.T) {
	tests := []struct {
		f    Format
		t    ComponentType
		want int
	}{
		{RGBA, U8, 4},
		{RGB, F32, 12},
		{DEPTH_STENCIL, U32, 4},
		{DEPTH_COMPONENT, F32, 4},
	}
	for _, tc := range tests {
		if got := PixelSize(tc.f, tc.t); got != tc.want {
			t.Errorf("PixelSize(%v, %v) = %d, want %d", tc.f, tc.t, got, tc.want)
		}
	}
}
