package trace

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// STLLoader loads STL (stereolithography) files in both ASCII and
// binary formats. Stored facet normals are ignored: line extraction
// derives normals from the vertex winding.
type STLLoader struct {
	// MergeTolerance is the distance within which vertices weld into
	// one. Zero means exact matching.
	MergeTolerance float64
}

// NewSTLLoader creates an STL loader with default settings.
func NewSTLLoader() *STLLoader {
	return &STLLoader{}
}

// LoadSTL loads an STL file with default settings.
func LoadSTL(path string) (*Mesh, error) {
	return NewSTLLoader().LoadFile(path)
}

// LoadFile loads an STL file from disk.
func (l *STLLoader) LoadFile(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stl file: %w", err)
	}
	return l.LoadBytes(data, path)
}

// Load parses STL from a reader. The whole content is read into memory
// to detect the format.
func (l *STLLoader) Load(r io.Reader, name string) (*Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stl data: %w", err)
	}
	return l.LoadBytes(data, name)
}

// LoadBytes parses STL from a byte slice.
func (l *STLLoader) LoadBytes(data []byte, name string) (*Mesh, error) {
	if isBinarySTL(data) {
		return l.loadBinary(data, name)
	}
	return l.loadASCII(data, name)
}

// isBinarySTL detects the binary format: an 80 byte header followed by
// a 4 byte little-endian triangle count. ASCII files start with
// "solid", but so can a binary header, so the file size implied by the
// count breaks the tie.
func isBinarySTL(data []byte) bool {
	if len(data) < 84 {
		return false
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("solid")) {
		triCount := binary.LittleEndian.Uint32(data[80:84])
		return uint32(len(data)) == 84+triCount*50
	}
	return true
}

func (l *STLLoader) loadBinary(data []byte, name string) (*Mesh, error) {
	if len(data) < 84 {
		return nil, fmt.Errorf("binary stl too short: %d bytes", len(data))
	}
	triCount := binary.LittleEndian.Uint32(data[80:84])
	expectedSize := 84 + triCount*50
	if uint32(len(data)) < expectedSize {
		return nil, fmt.Errorf("binary stl truncated: expected %d bytes, got %d", expectedSize, len(data))
	}

	mesh := NewMesh(name)
	pool := newVertexPool(mesh, l.MergeTolerance)

	offset := 84
	for range triCount {
		// Skip the facet normal (3 floats).
		offset += 12

		var face [3]int
		for v := range 3 {
			pos := V3(
				float64(readFloat32LE(data[offset:])),
				float64(readFloat32LE(data[offset+4:])),
				float64(readFloat32LE(data[offset+8:])),
			)
			offset += 12
			face[v] = pool.add(pos)
		}
		// Skip the attribute byte count.
		offset += 2

		mesh.Faces = append(mesh.Faces, face)
	}
	return finishMesh(mesh), nil
}

// readFloat32LE reads a little-endian float32 from a byte slice.
func readFloat32LE(data []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data))
}

func (l *STLLoader) loadASCII(data []byte, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	pool := newVertexPool(mesh, l.MergeTolerance)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0

	var faceVerts []int
	inFacet := false
	inLoop := false

	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "solid":
			if len(fields) > 1 {
				mesh.Name = fields[1]
			}

		case "facet":
			inFacet = true
			faceVerts = nil

		case "outer":
			if len(fields) >= 2 && strings.ToLower(fields[1]) == "loop" {
				inLoop = true
			}

		case "vertex":
			if !inFacet || !inLoop {
				return nil, fmt.Errorf("line %d: vertex outside facet loop", lineNum)
			}
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs x y z", lineNum)
			}
			var coords [3]float64
			for i := range coords {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid vertex coordinate: %w", lineNum, err)
				}
				coords[i] = v
			}
			faceVerts = append(faceVerts, pool.add(V3(coords[0], coords[1], coords[2])))

		case "endloop":
			inLoop = false

		case "endfacet":
			// Facets are triangles, but fan out the occasional file
			// that stores more vertices per loop.
			for i := 2; i < len(faceVerts); i++ {
				mesh.Faces = append(mesh.Faces, [3]int{faceVerts[0], faceVerts[i-1], faceVerts[i]})
			}
			inFacet = false
			faceVerts = nil

		case "endsolid":
			// Done.

		default:
			// Ignore unknown keywords.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ascii stl: %w", err)
	}
	return finishMesh(mesh), nil
}
