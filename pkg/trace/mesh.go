package trace

import "math"

// Mesh is an indexed triangle mesh. Vertices shared between faces must
// use the same index, otherwise every edge looks like an open boundary;
// the loaders deduplicate on load to guarantee that.
type Mesh struct {
	Name     string
	Vertices []Vec3
	Faces    [][3]int

	// Bounding box, calculated on load.
	BoundsMin Vec3
	BoundsMax Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]Vec3, 0),
		Faces:    make([][3]int, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}
	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceNormal returns the unnormalized normal of face i.
func (m *Mesh) FaceNormal(i int) Vec3 {
	f := m.Faces[i]
	v0 := m.Vertices[f[0]]
	e1 := m.Vertices[f[1]].Sub(v0)
	e2 := m.Vertices[f[2]].Sub(v0)
	return e1.Cross(e2)
}

// FitUnit centers the mesh on the origin and scales it so the longest
// side of its bounding box spans 2 units.
func (m *Mesh) FitUnit() {
	m.CalculateBounds()
	size := m.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim <= 0 {
		return
	}
	center := m.Center()
	scale := 2.0 / maxDim
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Sub(center).Scale(scale)
	}
	m.CalculateBounds()
}

// faceKey creates a canonical key for a face by sorting vertex indices.
// Two faces with the same vertices (in any order) share the same key.
func faceKey(v0, v1, v2 int) [3]int {
	if v0 > v1 {
		v0, v1 = v1, v0
	}
	if v1 > v2 {
		v1, v2 = v2, v1
	}
	if v0 > v1 {
		v0, v1 = v1, v0
	}
	return [3]int{v0, v1, v2}
}

// RemoveDegenerateFaces removes faces with repeated vertices or
// near-zero area. Returns the number of faces removed.
func (m *Mesh) RemoveDegenerateFaces() int {
	if len(m.Faces) == 0 {
		return 0
	}

	const minArea = 1e-10
	kept := make([][3]int, 0, len(m.Faces))
	for i, f := range m.Faces {
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			continue
		}
		if m.FaceNormal(i).Len()*0.5 > minArea {
			kept = append(kept, f)
		}
	}

	removed := len(m.Faces) - len(kept)
	m.Faces = kept
	return removed
}

// DeduplicateFaces removes duplicate faces regardless of winding,
// keeping the first occurrence. Returns the number of faces removed.
func (m *Mesh) DeduplicateFaces() int {
	if len(m.Faces) == 0 {
		return 0
	}

	seen := make(map[[3]int]bool)
	kept := make([][3]int, 0, len(m.Faces))
	for _, f := range m.Faces {
		key := faceKey(f[0], f[1], f[2])
		if !seen[key] {
			seen[key] = true
			kept = append(kept, f)
		}
	}

	removed := len(m.Faces) - len(kept)
	m.Faces = kept
	return removed
}
