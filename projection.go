package vgpu

// PerspectiveDivide computes v.NDC = (x/w, y/w, z/w) from v.ClipCoord. A
// w of zero follows IEEE-754 float division (+-Inf). ClipPolygon does not
// run the w>0 PROJECTION plane; its six frustum planes leave only
// vertices with w >= 0 (within the on-plane tolerance), so a w at or near
// zero can still arrive here.
func PerspectiveDivide(v *Varying) {
	v.NDC = v.ClipCoord.ToCartesian()
}

// ViewportTransform maps v.NDC into v.ViewportCoord using the pipeline's
// viewport rectangle and depth range (y-down screen
// convention).
func ViewportTransform(v *Varying, viewport Rect, depthMin, depthMax float32) {
	halfW := float32(viewport.W) * 0.5
	halfH := float32(viewport.H) * 0.5

	x := v.NDC.X*halfW + halfW + float32(viewport.X)
	y := -v.NDC.Y*halfH + halfH + float32(viewport.Y)
	z := (v.NDC.Z*(depthMax-depthMin) + (depthMax + depthMin)) * 0.5

	v.ViewportCoord.X = x
	v.ViewportCoord.Y = y
	v.ViewportCoord.Z = z
}
