package vgpu

// vertexBatchSize is the number of consecutive draw positions each wave-1
// task owns.
const vertexBatchSize = 100

// DispatchVertices runs vs over count draw positions, resolving the
// vertex index for position i through indexAt (identity for DrawArrays,
// an element-buffer lookup for DrawElements), and returns a dense
// []Varying in draw-position order. Work is partitioned into batches of
// vertexBatchSize consecutive positions, each submitted to the pool as an
// independent task writing into its own disjoint output slice; the call
// blocks until every batch completes.
func DispatchVertices(p *Pipeline, count int, indexAt func(pos int) uint32, vs VertexShader) []Varying {
	if count == 0 {
		return nil
	}

	out := make([]Varying, count)
	var tasks []func()

	for start := 0; start < count; start += vertexBatchSize {
		end := start + vertexBatchSize
		if end > count {
			end = count
		}
		s, e := start, end
		tasks = append(tasks, func() {
			for i := s; i < e; i++ {
				out[i] = vs(indexAt(i))
			}
		})
	}

	Logger().Debug("vgpu: vertex dispatch", "count", count, "batches", len(tasks))
	p.pool.RunWave(tasks)
	return out
}
