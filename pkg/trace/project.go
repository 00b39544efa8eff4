package trace

import (
	"math"

	"github.com/taigrr/easel/pkg/geom"
	"github.com/taigrr/easel/pkg/math2d"
)

// Options control which mesh edges become lines.
type Options struct {
	// CreaseAngle is the smallest face normal deviation, in radians,
	// at which an interior edge counts as a crease. Zero keeps every
	// edge and yields the full wireframe.
	CreaseAngle float64
	// Silhouette adds contour edges: interior edges where the surface
	// turns away from the viewer.
	Silhouette bool
	// SimplifyTol merges chained edges whose intermediate points stay
	// within this projected distance of a straight line. Zero keeps
	// every edge as its own segment.
	SimplifyTol float64
}

// DefaultOptions returns the extraction settings the command line
// tools start from: 30 degree creases, silhouettes on, no
// simplification.
func DefaultOptions() Options {
	return Options{CreaseAngle: 30 * math.Pi / 180, Silhouette: true}
}

// Projection is flat line art extracted from a mesh.
type Projection struct {
	Segments []geom.Segment
	Bounds   geom.Box
}

// Project rotates the mesh by yaw around Y, then by pitch around X,
// and projects its feature edges orthographically onto the viewing
// plane. The viewer looks down -Z and the plane y axis points down to
// match document space. Edges are kept regardless of occlusion, giving
// x-ray style line art.
func Project(m *Mesh, yaw, pitch float64, opts Options) Projection {
	proj := Projection{Bounds: geom.EmptyBox()}
	if len(m.Faces) == 0 {
		return proj
	}

	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	rotate := func(v Vec3) Vec3 {
		x := cy*v.X + sy*v.Z
		z := cy*v.Z - sy*v.X
		y := cp*v.Y - sp*z
		z = sp*v.Y + cp*z
		return Vec3{x, y, z}
	}
	toPlane := func(v Vec3) math2d.Vec2 {
		r := rotate(v)
		return math2d.V2(r.X, -r.Y)
	}

	// Rotation is linear, so rotating the unnormalized face normal
	// gives the rotated face's normal. Only the sign of Z matters.
	facing := make([]bool, len(m.Faces))
	for i := range m.Faces {
		facing[i] = rotate(m.FaceNormal(i)).Z > 0
	}

	cosCrease := math.Cos(opts.CreaseAngle)
	var keep []Edge
	for _, e := range m.Edges() {
		switch {
		case e.IsBoundary():
			keep = append(keep, e)
		case opts.Silhouette && facing[e.Faces[0]] != facing[e.Faces[1]]:
			keep = append(keep, e)
		default:
			n1 := m.FaceNormal(e.Faces[0]).Normalize()
			n2 := m.FaceNormal(e.Faces[1]).Normalize()
			if n1.Dot(n2) <= cosCrease {
				keep = append(keep, e)
			}
		}
	}

	if opts.SimplifyTol <= 0 {
		proj.Segments = make([]geom.Segment, 0, len(keep))
		for _, e := range keep {
			s := geom.Segment{Start: toPlane(m.Vertices[e.V[0]]), End: toPlane(m.Vertices[e.V[1]])}
			proj.Segments = append(proj.Segments, s)
			proj.Bounds.ExpandByPoint(s.Start)
			proj.Bounds.ExpandByPoint(s.End)
		}
		return proj
	}

	for _, chain := range chainEdges(keep) {
		pts := make([]math2d.Vec2, len(chain))
		for i, vi := range chain {
			pts[i] = toPlane(m.Vertices[vi])
		}
		pts = geom.Simplify(pts, opts.SimplifyTol)
		for i := 1; i < len(pts); i++ {
			proj.Segments = append(proj.Segments, geom.Segment{Start: pts[i-1], End: pts[i]})
		}
		for _, p := range pts {
			proj.Bounds.ExpandByPoint(p)
		}
	}
	return proj
}

// chainEdges links edges sharing endpoints into polylines of vertex
// indices. Loaders deduplicate vertices, so index equality is exact
// and no positional matching is needed. Closed loops come back with
// the start vertex repeated at the end.
func chainEdges(edges []Edge) [][]int {
	buckets := make(map[int][]int)
	for i, e := range edges {
		buckets[e.V[0]] = append(buckets[e.V[0]], i)
		buckets[e.V[1]] = append(buckets[e.V[1]], i)
	}
	used := make([]bool, len(edges))

	walk := func(from int) []int {
		var out []int
		cur := from
		for {
			next := -1
			for _, ei := range buckets[cur] {
				if !used[ei] {
					next = ei
					break
				}
			}
			if next < 0 {
				return out
			}
			used[next] = true
			v := edges[next].V[0]
			if v == cur {
				v = edges[next].V[1]
			}
			out = append(out, v)
			cur = v
		}
	}

	var chains [][]int
	for i, e := range edges {
		if used[i] {
			continue
		}
		used[i] = true
		tail := walk(e.V[1])
		head := walk(e.V[0])
		chain := make([]int, 0, len(head)+len(tail)+2)
		for j := len(head) - 1; j >= 0; j-- {
			chain = append(chain, head[j])
		}
		chain = append(chain, e.V[0], e.V[1])
		chain = append(chain, tail...)
		chains = append(chains, chain)
	}
	return chains
}
