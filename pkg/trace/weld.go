package trace

import "math"

// quantizedKey is a hashable grid cell for a position, so vertices that
// differ only by floating point noise land on the same key.
type quantizedKey struct {
	x, y, z int64
}

func quantizePosition(pos Vec3, tolerance float64) quantizedKey {
	if tolerance <= 0 {
		// Effectively exact matching.
		tolerance = 1e-12
	}
	scale := 1.0 / tolerance
	return quantizedKey{
		x: int64(math.Round(pos.X * scale)),
		y: int64(math.Round(pos.Y * scale)),
		z: int64(math.Round(pos.Z * scale)),
	}
}

// vertexPool welds vertices as they are added: a position within the
// merge tolerance of an earlier one reuses its index. Edge adjacency
// depends on this, see Mesh.
type vertexPool struct {
	mesh  *Mesh
	index map[quantizedKey]int
	tol   float64
}

func newVertexPool(m *Mesh, tolerance float64) *vertexPool {
	return &vertexPool{mesh: m, index: make(map[quantizedKey]int), tol: tolerance}
}

func (p *vertexPool) add(pos Vec3) int {
	key := quantizePosition(pos, p.tol)
	if idx, ok := p.index[key]; ok {
		return idx
	}
	idx := len(p.mesh.Vertices)
	p.mesh.Vertices = append(p.mesh.Vertices, pos)
	p.index[key] = idx
	return idx
}

// finishMesh runs the cleanup every loader applies. Welding can
// collapse sliver triangles into degenerate faces, and duplicate faces
// would make every edge under them non-manifold.
func finishMesh(m *Mesh) *Mesh {
	m.RemoveDegenerateFaces()
	m.DeduplicateFaces()
	m.CalculateBounds()
	return m
}
