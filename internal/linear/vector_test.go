package linear

import "testing"

func TestV3Lerp(t *testing.T) {
	tests := []struct {
		name string
		a, b V3
		t    float32
		want V3
	}{
		{"t=0 returns a", V3{1, 2, 3}, V3{5, 6, 7}, 0, V3{1, 2, 3}},
		{"t=1 returns b", V3{1, 2, 3}, V3{5, 6, 7}, 1, V3{5, 6, 7}},
		{"t=0.5 returns midpoint", V3{0, 0, 0}, V3{2, 4, 6}, 0.5, V3{1, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Lerp(tc.b, tc.t)
			if got != tc.want {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.t, got, tc.want)
			}
		})
	}
}

func TestV4ToCartesian(t *testing.T) {
	v := V4{X: 2, Y: 4, Z: 6, W: 2}
	got := v.ToCartesian()
	want := V3{1, 2, 3}
	if got != want {
		t.Errorf("ToCartesian() = %v, want %v", got, want)
	}
}

func TestV3Normalized(t *testing.T) {
	t.Run("zero vector returns zero", func(t *testing.T) {
		got := V3{}.Normalized()
		if got != (V3{}) {
			t.Errorf("Normalized() of zero vector = %v, want zero", got)
		}
	})
	t.Run("unit length after normalizing", func(t *testing.T) {
		v := V3{3, 0, 4}.Normalized()
		l := v.Len()
		if l < 0.999 || l > 1.001 {
			t.Errorf("Len() after Normalized() = %v, want ~1", l)
		}
	})
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}
	for _, tc := range tests {
		if got := Clamp01(tc.in); got != tc.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsZeroApprox(t *testing.T) {
	if !IsZeroApprox(1e-9, 1e-6) {
		t.Error("expected 1e-9 to be approximately zero within 1e-6")
	}
	if IsZeroApprox(1e-3, 1e-6) {
		t.Error("expected 1e-3 not to be approximately zero within 1e-6")
	}
}
