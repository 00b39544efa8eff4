package trace

import "math"

// Edge is a mesh edge with its adjacent faces. Faces[1] is -1 for an
// open boundary edge.
type Edge struct {
	V     [2]int
	Faces [2]int
}

// edgeKey orders a vertex index pair so both windings of an edge map to
// the same key.
func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// Edges builds the edge adjacency of the mesh. Non-manifold edges with
// more than two adjacent faces keep the first two.
func (m *Mesh) Edges() []Edge {
	index := make(map[[2]int]int)
	edges := make([]Edge, 0, len(m.Faces)*3/2)

	for fi, f := range m.Faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			key := edgeKey(a, b)
			ei, ok := index[key]
			if !ok {
				index[key] = len(edges)
				edges = append(edges, Edge{V: key, Faces: [2]int{fi, -1}})
				continue
			}
			if edges[ei].Faces[1] == -1 {
				edges[ei].Faces[1] = fi
			}
		}
	}
	return edges
}

// IsBoundary reports whether the edge has only one adjacent face.
func (e Edge) IsBoundary() bool {
	return e.Faces[1] == -1
}

// FeatureEdges returns boundary edges plus creases: interior edges
// whose face normals deviate by at least threshold radians. Coplanar
// tessellation edges (face diagonals) never qualify.
func (m *Mesh) FeatureEdges(threshold float64) []Edge {
	cosThreshold := math.Cos(threshold)
	var out []Edge
	for _, e := range m.Edges() {
		if e.IsBoundary() {
			out = append(out, e)
			continue
		}
		n1 := m.FaceNormal(e.Faces[0]).Normalize()
		n2 := m.FaceNormal(e.Faces[1]).Normalize()
		if n1.Dot(n2) <= cosThreshold {
			out = append(out, e)
		}
	}
	return out
}
