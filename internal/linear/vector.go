// Package linear implements the fixed-width vector math the rendering
// pipeline interpolates attributes with: 2/3/4-component float32 vectors,
// linear interpolation, and the homogeneous-to-Cartesian divide.
package linear

import "github.com/chewxy/math32"

// V2 is a 2-component vector of float32.
type V2 struct{ X, Y float32 }

// V3 is a 3-component vector of float32.
type V3 struct{ X, Y, Z float32 }

// V4 is a 4-component vector of float32, typically homogeneous clip
// coordinates or a tangent with handedness in W.
type V4 struct{ X, Y, Z, W float32 }

// Add returns a+b.
func (a V2) Add(b V2) V2 { return V2{a.X + b.X, a.Y + b.Y} }

// Sub returns a-b.
func (a V2) Sub(b V2) V2 { return V2{a.X - b.X, a.Y - b.Y} }

// Scale returns a scaled by s.
func (a V2) Scale(s float32) V2 { return V2{a.X * s, a.Y * s} }

// Cross returns the 2-D signed cross product (a.x*b.y - a.y*b.x).
func (a V2) Cross(b V2) float32 { return a.X*b.Y - a.Y*b.X }

// Lerp returns a + (b-a)*t.
func (a V2) Lerp(b V2, t float32) V2 {
	return V2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

func (a V3) Add(b V3) V3 { return V3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a V3) Sub(b V3) V3 { return V3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a V3) Scale(s float32) V3 {
	return V3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product of a and b.
func (a V3) Dot(b V3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Len returns the Euclidean length of a.
func (a V3) Len() float32 { return math32.Sqrt(a.Dot(a)) }

// Normalized returns a scaled to unit length. The zero vector is returned
// unchanged (division by a zero length is not guarded further upstream;
// callers reconstruct normals from a perspective-correct interpolation
// that is never exactly zero for a non-degenerate triangle).
func (a V3) Normalized() V3 {
	l := a.Len()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// Lerp returns a + (b-a)*t.
func (a V3) Lerp(b V3, t float32) V3 {
	return V3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

func (a V4) Add(b V4) V4 {
	return V4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}
func (a V4) Sub(b V4) V4 {
	return V4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}
func (a V4) Scale(s float32) V4 {
	return V4{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// Lerp returns a + (b-a)*t.
func (a V4) Lerp(b V4, t float32) V4 {
	return V4{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
		a.W + (b.W-a.W)*t,
	}
}

// XYZ drops the W component.
func (a V4) XYZ() V3 { return V3{a.X, a.Y, a.Z} }

// ToCartesian performs the perspective divide (x/w, y/w, z/w). When w is
// zero the result follows IEEE-754 (±Inf or NaN); the clipper's frustum
// planes reject clearly negative w, but it does not run the PROJECTION
// plane, so a vertex with w at or near zero can still reach this divide.
func (a V4) ToCartesian() V3 {
	inv := 1 / a.W
	return V3{a.X * inv, a.Y * inv, a.Z * inv}
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp clamps v to [lo,hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsZeroApprox reports whether v is within epsilon of zero.
func IsZeroApprox(v, epsilon float32) bool {
	return math32.Abs(v) <= epsilon
}
