package vgpu

import "errors"

// DrawArrays runs the full pipeline for a non-indexed draw: wave-1
// batched vertex shading over [first, first+count), primitive assembly
// under topology, then one wave-2 task per assembled primitive running
// clip, project, rasterize, and merge independently.
func (p *Pipeline) DrawArrays(topology Topology, first, count int, vs VertexShader, fs FragmentShader) {
	if count <= 0 {
		return
	}
	varyings := DispatchVertices(p, count, func(pos int) uint32 { return uint32(first + pos) }, vs)
	p.drawAssembled(varyings, topology, fs)
}

// DrawElements runs the full pipeline for an indexed draw: the vertex
// index for draw position i is looked up through elements before
// shading; assembly and per-primitive clip/raster/merge otherwise match
// DrawArrays. Returns the sticky-tagged error FetchIndices produces for a
// missing or too-small element buffer, also recorded on the pipeline's
// error state.
func (p *Pipeline) DrawElements(topology Topology, elements []byte, idxType IndexType, first, count int, vs VertexShader, fs FragmentShader) error {
	if count <= 0 {
		return nil
	}
	indices, err := FetchIndices(elements, idxType, first, count)
	if err != nil {
		var se stickyErr
		if errors.As(err, &se) {
			p.setError(se.state)
		} else {
			p.setError(INVALID_OPERATION)
		}
		return err
	}
	varyings := DispatchVertices(p, count, func(pos int) uint32 { return indices[pos] }, vs)
	p.drawAssembled(varyings, topology, fs)
	return nil
}

func (p *Pipeline) drawAssembled(varyings []Varying, topology Topology, fs FragmentShader) {
	prims := AssembleTopology(varyings, topology)
	if len(prims) == 0 {
		return
	}

	tasks := make([]func(), len(prims))
	for i := range prims {
		prim := prims[i]
		tasks[i] = func() { p.drawPrimitive(prim, fs) }
	}
	Logger().Debug("vgpu: draw dispatch", "primitives", len(prims))
	p.pool.RunWave(tasks)
}

// drawPrimitive clips one assembled primitive, projects its surviving
// vertices into viewport space, and rasterizes it according to its
// vertex count and the current polygon mode.
func (p *Pipeline) drawPrimitive(prim Primitive, fs FragmentShader) {
	switch prim.N {
	case 1:
		v := *prim.V[0]
		clipped := ClipPolygon([]Varying{v})
		if len(clipped) == 0 {
			return
		}
		PerspectiveDivide(&clipped[0])
		ViewportTransform(&clipped[0], p.state.Viewport, p.state.DepthRangeMin, p.state.DepthRangeMax)
		p.RasterizePoint(clipped[0], fs)

	case 2:
		a, b, ok := ClipLineSegment(*prim.V[0], *prim.V[1])
		if !ok {
			return
		}
		PerspectiveDivide(&a)
		ViewportTransform(&a, p.state.Viewport, p.state.DepthRangeMin, p.state.DepthRangeMax)
		PerspectiveDivide(&b)
		ViewportTransform(&b, p.state.Viewport, p.state.DepthRangeMin, p.state.DepthRangeMax)
		p.RasterizeLine(a, b, fs)

	default:
		polygon := make([]Varying, prim.N)
		for i := 0; i < prim.N; i++ {
			polygon[i] = *prim.V[i]
		}
		clipped := ClipPolygon(polygon)
		if len(clipped) < 3 {
			return
		}
		for i := range clipped {
			PerspectiveDivide(&clipped[i])
			ViewportTransform(&clipped[i], p.state.Viewport, p.state.DepthRangeMin, p.state.DepthRangeMax)
		}
		p.rasterizeClippedPolygon(clipped, fs)
	}
}

// rasterizeClippedPolygon dispatches a clipped, viewport-space polygon of
// 3 or more vertices to point, wireframe, or fan-triangulated fill
// rasterization according to PolygonMode.
func (p *Pipeline) rasterizeClippedPolygon(poly []Varying, fs FragmentShader) {
	switch p.state.PolygonMode {
	case POLYGON_POINT:
		for _, v := range poly {
			p.RasterizePoint(v, fs)
		}
	case POLYGON_LINE:
		n := len(poly)
		for i := 0; i < n; i++ {
			p.RasterizeLine(poly[i], poly[(i+1)%n], fs)
		}
	default:
		for i := 1; i+1 < len(poly); i++ {
			p.RasterizeTriangle(poly[0], poly[i], poly[i+1], fs)
		}
	}
}
