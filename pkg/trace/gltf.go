package trace

import (
	"encoding/binary"
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
)

// GLTFLoader loads glTF and GLB files. Only triangle geometry is
// extracted: materials, textures and animations are ignored.
type GLTFLoader struct {
	// MergeTolerance is the distance within which vertices weld into
	// one, including across primitives and nodes. Zero means exact
	// matching.
	MergeTolerance float64
}

// NewGLTFLoader creates a glTF loader with default settings.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{}
}

// LoadGLTF loads a glTF or GLB file with default settings.
func LoadGLTF(path string) (*Mesh, error) {
	return NewGLTFLoader().LoadFile(path)
}

// LoadFile loads a glTF or GLB file from disk, flattening the node
// hierarchy into a single mesh.
func (l *GLTFLoader) LoadFile(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))
	pool := newVertexPool(mesh, l.MergeTolerance)

	if len(doc.Scenes) > 0 {
		sceneIdx := 0
		if doc.Scene != nil {
			sceneIdx = int(*doc.Scene)
		}
		for _, nodeIdx := range doc.Scenes[sceneIdx].Nodes {
			if err := processNode(doc, int(nodeIdx), identity4(), pool); err != nil {
				return nil, err
			}
		}
	} else {
		for _, i := range rootNodes(doc) {
			if err := processNode(doc, i, identity4(), pool); err != nil {
				return nil, err
			}
		}
	}
	return finishMesh(mesh), nil
}

// rootNodes finds the nodes that are no node's child, for documents
// that define no scene.
func rootNodes(doc *gltf.Document) []int {
	isChild := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			isChild[int(c)] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !isChild[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// processNode accumulates the node transform, extracts the node's mesh
// and recurses into its children.
func processNode(doc *gltf.Document, nodeIdx int, parent mat4, pool *vertexPool) error {
	node := doc.Nodes[nodeIdx]

	local := identity4()
	if node.Translation != [3]float64{0, 0, 0} {
		local = local.mul(translate4(V3(node.Translation[0], node.Translation[1], node.Translation[2])))
	}
	if node.Rotation != [4]float64{0, 0, 0, 1} {
		local = local.mul(quat4(node.Rotation[0], node.Rotation[1], node.Rotation[2], node.Rotation[3]))
	}
	if node.Scale != [3]float64{1, 1, 1} && node.Scale != [3]float64{0, 0, 0} {
		local = local.mul(scale4(V3(node.Scale[0], node.Scale[1], node.Scale[2])))
	}
	// An explicit matrix wins over the TRS properties.
	if node.Matrix != [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1} {
		local = columnMajor4(node.Matrix)
	}

	world := parent.mul(local)

	if node.Mesh != nil {
		if err := extractMesh(doc, doc.Meshes[int(*node.Mesh)], world, pool); err != nil {
			return err
		}
	}
	for _, childIdx := range node.Children {
		if err := processNode(doc, int(childIdx), world, pool); err != nil {
			return err
		}
	}
	return nil
}

// extractMesh appends a glTF mesh's triangles, welding transformed
// positions through the pool so edges line up across primitives and
// nodes.
func extractMesh(doc *gltf.Document, m *gltf.Mesh, transform mat4, pool *vertexPool) error {
	mesh := pool.mesh
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		verts := make([]int, len(positions))
		for i, p := range positions {
			verts[i] = pool.add(transform.mulPoint(p))
		}

		if prim.Indices != nil {
			indices, err := readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for _, idx := range indices {
				if idx < 0 || idx >= len(verts) {
					return fmt.Errorf("index %d out of range (%d positions)", idx, len(verts))
				}
			}
			for i := 0; i+2 < len(indices); i += 3 {
				mesh.Faces = append(mesh.Faces, [3]int{
					verts[indices[i]], verts[indices[i+1]], verts[indices[i+2]],
				})
			}
		} else {
			for i := 0; i+2 < len(verts); i += 3 {
				mesh.Faces = append(mesh.Faces, [3]int{verts[i], verts[i+1], verts[i+2]})
			}
		}
	}
	return nil
}

// readVec3Accessor reads VEC3 float data from an accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}

	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}
	floats, ok := data.([][3]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected data type for VEC3")
	}

	result := make([]Vec3, len(floats))
	for i, f := range floats {
		result[i] = V3(float64(f[0]), float64(f[1]), float64(f[2]))
	}
	return result, nil
}

// readIndices reads index data from an accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]

	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}

	switch v := data.(type) {
	case []uint8:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	case []uint16:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	case []uint32:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("unexpected index type: %T", data)
	}
}

// readAccessorData reads raw data from an accessor. gltf.Open resolves
// embedded and external buffers into Data before we get here.
func readAccessorData(doc *gltf.Document, accessor *gltf.Accessor) (any, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	bufData := buffer.Data
	if len(bufData) == 0 {
		return nil, fmt.Errorf("buffer %d has no data", bufferView.Buffer)
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	count := accessor.Count

	switch accessor.Type {
	case gltf.AccessorVec3:
		if stride == 0 {
			stride = 12 // 3 floats
		}
		result := make([][3]float32, count)
		for i := range count {
			offset := start + i*stride
			for j := range 3 {
				result[i][j] = readFloat32LE(bufData[offset+j*4:])
			}
		}
		return result, nil

	case gltf.AccessorScalar:
		switch accessor.ComponentType {
		case gltf.ComponentUbyte:
			if stride == 0 {
				stride = 1
			}
			result := make([]uint8, count)
			for i := range count {
				result[i] = bufData[start+i*stride]
			}
			return result, nil
		case gltf.ComponentUshort:
			if stride == 0 {
				stride = 2
			}
			result := make([]uint16, count)
			for i := range count {
				result[i] = binary.LittleEndian.Uint16(bufData[start+i*stride:])
			}
			return result, nil
		case gltf.ComponentUint:
			if stride == 0 {
				stride = 4
			}
			result := make([]uint32, count)
			for i := range count {
				result[i] = binary.LittleEndian.Uint32(bufData[start+i*stride:])
			}
			return result, nil
		}
	}

	return nil, fmt.Errorf("unsupported accessor type: %v / %v", accessor.Type, accessor.ComponentType)
}
