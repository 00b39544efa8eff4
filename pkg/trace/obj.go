package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// OBJLoader loads Wavefront OBJ files. Only geometry is read: texture
// coordinates, normals and materials are skipped, since line extraction
// works from positions and winding alone.
type OBJLoader struct {
	// MergeTolerance is the distance within which vertices weld into
	// one. Zero means exact matching.
	MergeTolerance float64
}

// NewOBJLoader creates an OBJ loader with default settings.
func NewOBJLoader() *OBJLoader {
	return &OBJLoader{}
}

// LoadOBJ loads an OBJ file with default settings.
func LoadOBJ(path string) (*Mesh, error) {
	return NewOBJLoader().LoadFile(path)
}

// LoadFile loads an OBJ file from disk.
func (l *OBJLoader) LoadFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj file: %w", err)
	}
	defer f.Close()
	return l.Load(f, path)
}

// Load parses OBJ from a reader.
func (l *OBJLoader) Load(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	pool := newVertexPool(mesh, l.MergeTolerance)

	// OBJ indices refer to positions in file order, before welding.
	var positions []Vec3

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs x y z", lineNum)
			}
			var coords [3]float64
			for i := range 3 {
				c, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid vertex coordinate: %w", lineNum, err)
				}
				coords[i] = c
			}
			positions = append(positions, V3(coords[0], coords[1], coords[2]))
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNum)
			}
			var faceVerts []int
			for _, fv := range fields[1:] {
				idx, err := parseFaceVertex(fv)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				idx = resolveOBJIndex(idx, len(positions))
				if idx < 0 || idx >= len(positions) {
					return nil, fmt.Errorf("line %d: vertex index %d out of range", lineNum, idx+1)
				}
				faceVerts = append(faceVerts, pool.add(positions[idx]))
			}
			// Fan triangulation for polygons.
			for i := 2; i < len(faceVerts); i++ {
				mesh.Faces = append(mesh.Faces, [3]int{faceVerts[0], faceVerts[i-1], faceVerts[i]})
			}
		case "o", "g":
			if len(fields) > 1 {
				mesh.Name = fields[1]
			}
		default:
			// vt, vn, mtllib, usemtl, s and anything else.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	return finishMesh(mesh), nil
}

// parseFaceVertex reads the position index from a face vertex in any of
// the v, v/vt, v/vt/vn and v//vn forms.
func parseFaceVertex(s string) (int, error) {
	idxStr, _, _ := strings.Cut(s, "/")
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return 0, fmt.Errorf("invalid face vertex %q", s)
	}
	return idx, nil
}

// resolveOBJIndex converts a 1-indexed OBJ index, or a negative index
// counting back from the most recent position, to 0-indexed.
func resolveOBJIndex(idx, count int) int {
	if idx < 0 {
		return count + idx
	}
	return idx - 1
}
