package vgpu

import "github.com/chewxy/math32"

// ClipPlane identifies one of the clipper's half-space predicates.
type ClipPlane int

const (
	ClipLeft ClipPlane = iota
	ClipRight
	ClipBottom
	ClipTop
	ClipNear
	ClipFar
	ClipProjection
)

// clipPlaneOrder is the sequence ClipPolygon walks the Sutherland-Hodgman
// loop in. PROJECTION is left out, matching the grounding source: every
// vertex surviving NEAR/FAR already has a bounded w, and a w<=0 vertex
// that slips through degenerates into a ±Inf NDC that the bounding-box
// and edge-function tests downstream discard gracefully rather than
// needing a dedicated plane pass.
var clipPlaneOrder = [...]ClipPlane{ClipLeft, ClipRight, ClipBottom, ClipTop, ClipNear, ClipFar}

// clipEpsilon is the on-plane tolerance: a vertex with |f(clip)| <= this
// counts as inside.
const clipEpsilon float32 = 1e-6

// EvalFrustumPlane evaluates the half-space predicate for plane at clip.
// A return value >= -clipEpsilon means clip lies on the inside half-space.
func EvalFrustumPlane(clip [4]float32, plane ClipPlane) float32 {
	x, y, z, w := clip[0], clip[1], clip[2], clip[3]
	switch plane {
	case ClipLeft:
		return w + x
	case ClipRight:
		return w - x
	case ClipBottom:
		return w + y
	case ClipTop:
		return w - y
	case ClipNear:
		return w + z
	case ClipFar:
		return w - z
	case ClipProjection:
		return w
	default:
		return math32.NaN()
	}
}

func clipCoordArray(v Varying) [4]float32 {
	return [4]float32{v.ClipCoord.X, v.ClipCoord.Y, v.ClipCoord.Z, v.ClipCoord.W}
}

// IsInsidePlane reports whether v's clip coordinate satisfies plane's
// half-space, with the on-plane tolerance counted as inside.
func IsInsidePlane(v Varying, plane ClipPlane) bool {
	return EvalFrustumPlane(clipCoordArray(v), plane) >= -clipEpsilon
}

// ClipBarycentric returns the (1-t, t) interpolation weights for the
// intersection of the edge (a -> b) with plane, or (NaN, NaN) when the
// edge is parallel to the plane (both endpoints on-plane).
func ClipBarycentric(a, b Varying, plane ClipPlane) (w0, w1 float32) {
	e1 := EvalFrustumPlane(clipCoordArray(a), plane)
	e2 := EvalFrustumPlane(clipCoordArray(b), plane)
	denom := e1 - e2
	if math32.Abs(denom) <= clipEpsilon {
		return math32.NaN(), math32.NaN()
	}
	t := e1 / denom
	t = linearClamp01(t)
	return 1 - t, t
}

func linearClamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// ClipAgainstPlane runs one Sutherland-Hodgman pass of polygon against a
// single half-space, returning the (possibly empty, possibly larger)
// surviving polygon.
func ClipAgainstPlane(polygon []Varying, plane ClipPlane) []Varying {
	n := len(polygon)
	if n == 0 {
		return nil
	}
	out := make([]Varying, 0, n+2)
	for i := 0; i < n; i++ {
		prev := polygon[(i-1+n)%n]
		curr := polygon[i]

		prevIn := IsInsidePlane(prev, plane)
		currIn := IsInsidePlane(curr, plane)

		switch {
		case prevIn && currIn:
			out = append(out, curr)
		case prevIn && !currIn:
			if w0, w1 := ClipBarycentric(prev, curr, plane); !math32.IsNaN(w0) {
				out = append(out, LerpVarying(prev, curr, w1))
			}
		case !prevIn && currIn:
			if w0, w1 := ClipBarycentric(prev, curr, plane); !math32.IsNaN(w0) {
				out = append(out, LerpVarying(prev, curr, w1))
			}
			out = append(out, curr)
		default:
			// out to out: emit nothing.
		}
	}
	return out
}

// ClipLineSegment clips the segment a->b against the frustum planes using
// parametric interval clipping (narrowing [tMin,tMax] along the segment),
// the standard approach for a two-point primitive that Sutherland-Hodgman
// polygon clipping does not fit. Returns ok=false when the whole segment
// lies outside any one plane.
func ClipLineSegment(a, b Varying) (Varying, Varying, bool) {
	tMin, tMax := float32(0), float32(1)
	ca, cb := clipCoordArray(a), clipCoordArray(b)

	for _, plane := range clipPlaneOrder {
		e1 := EvalFrustumPlane(ca, plane)
		e2 := EvalFrustumPlane(cb, plane)

		if e1 < -clipEpsilon && e2 < -clipEpsilon {
			return Varying{}, Varying{}, false
		}

		denom := e1 - e2
		if math32.Abs(denom) <= clipEpsilon {
			if e1 < -clipEpsilon {
				return Varying{}, Varying{}, false
			}
			continue
		}

		t := e1 / denom
		switch {
		case e1 < 0 && e2 >= 0:
			if t > tMin {
				tMin = t
			}
		case e1 >= 0 && e2 < 0:
			if t < tMax {
				tMax = t
			}
		}
		if tMin > tMax {
			return Varying{}, Varying{}, false
		}
	}

	return LerpVarying(a, b, tMin), LerpVarying(a, b, tMax), true
}

// ClipPolygon runs the full Sutherland-Hodgman loop against the frustum
// planes in a fixed order. An input of size 1 short-circuits to a single
// point-inside test against every plane in clipPlaneOrder.
func ClipPolygon(polygon []Varying) []Varying {
	if len(polygon) == 1 {
		for _, p := range clipPlaneOrder {
			if !IsInsidePlane(polygon[0], p) {
				return nil
			}
		}
		return polygon
	}

	out := polygon
	for _, p := range clipPlaneOrder {
		out = ClipAgainstPlane(out, p)
		if len(out) == 0 {
			return nil
		}
	}
	return out
}
