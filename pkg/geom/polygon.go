package geom

import (
	"math"

	"github.com/taigrr/easel/pkg/math2d"
)

// Polygon is a closed polygon defined by its vertex loop. The closing
// edge from the last vertex back to the first is implicit.
type Polygon struct {
	Vertices []math2d.Vec2
}

// NewPolygon creates a polygon with its own copy of the vertices.
func NewPolygon(vertices ...math2d.Vec2) Polygon {
	v := make([]math2d.Vec2, len(vertices))
	copy(v, vertices)
	return Polygon{v}
}

// Rectangle creates the axis-aligned rectangle with corner (x, y) and the
// given width and height. The vertex order gives it a positive signed area.
func Rectangle(x, y, w, h float64) Polygon {
	return Polygon{[]math2d.Vec2{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}}
}

// RegularPolygon creates an n-gon inscribed in the circle of the given
// radius, with the first vertex along +x from the center.
func RegularPolygon(center math2d.Vec2, radius float64, n int) Polygon {
	v := make([]math2d.Vec2, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		v = append(v, center.Add(math2d.V2(math.Cos(a)*radius, math.Sin(a)*radius)))
	}
	return Polygon{v}
}

// Clone returns a deep copy.
func (p Polygon) Clone() Polygon {
	return NewPolygon(p.Vertices...)
}

// SignedArea returns the shoelace area: positive for counter-clockwise
// winding in the mathematical sense (see the package comment), negative
// for clockwise.
func (p Polygon) SignedArea() float64 {
	var sum float64
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		sum += p.Vertices[i].Cross(p.Vertices[(i+1)%n])
	}
	return sum / 2
}

// Area returns the absolute area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Perimeter returns the total edge length, closing edge included.
func (p Polygon) Perimeter() float64 {
	var sum float64
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		sum += p.Vertices[i].Distance(p.Vertices[(i+1)%n])
	}
	return sum
}

// Centroid returns the area-weighted centroid. A polygon with nearly zero
// area (collinear or repeated vertices) has no well-defined area centroid
// and falls back to the plain vertex average.
func (p Polygon) Centroid() math2d.Vec2 {
	n := len(p.Vertices)
	if n == 0 {
		return math2d.Vec2{}
	}
	area := p.SignedArea()
	if math.Abs(area) < Epsilon {
		avg := math2d.Vec2{}
		for _, v := range p.Vertices {
			avg = avg.Add(v)
		}
		return avg.Scale(1 / float64(n))
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		a, b := p.Vertices[i], p.Vertices[(i+1)%n]
		cr := a.Cross(b)
		cx += (a.X + b.X) * cr
		cy += (a.Y + b.Y) * cr
	}
	f := 1 / (6 * area)
	return math2d.V2(cx*f, cy*f)
}

// IsConvex reports whether every turn goes the same way around the loop.
// Collinear runs (zero cross product) are tolerated. Polygons with fewer
// than four vertices are trivially convex.
func (p Polygon) IsConvex() bool {
	n := len(p.Vertices)
	if n < 4 {
		return true
	}
	sign := 0
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		c := p.Vertices[(i+2)%n]
		cr := b.Sub(a).Cross(c.Sub(b))
		if math.Abs(cr) < Epsilon {
			continue
		}
		s := 1
		if cr < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether the point is inside by the even-odd rule:
// a ray from the point must cross the boundary an odd number of times.
func (p Polygon) ContainsPoint(pt math2d.Vec2) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := p.Vertices[i], p.Vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

// Bounds returns the tight bounding box.
func (p Polygon) Bounds() Box {
	return BoxFromPoints(p.Vertices...)
}

// Edges returns each edge as a segment, closing edge last.
func (p Polygon) Edges() []Segment {
	n := len(p.Vertices)
	edges := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, Segment{p.Vertices[i], p.Vertices[(i+1)%n]})
	}
	return edges
}

// Transform returns the polygon mapped through m.
func (p Polygon) Transform(m math2d.Mat3) Polygon {
	return Polygon{m.TransformPoints(p.Vertices)}
}

// Reverse returns the polygon with opposite winding.
func (p Polygon) Reverse() Polygon {
	n := len(p.Vertices)
	v := make([]math2d.Vec2, n)
	for i := range v {
		v[i] = p.Vertices[n-1-i]
	}
	return Polygon{v}
}

// Offset returns the polygon displaced along its vertex normals with
// mitered corners: each vertex moves along the bisector of its two edge
// normals, scaled by 1/cos of the half angle so the offset edges stay
// parallel to the originals. A positive distance expands a positively
// wound polygon and shrinks a negatively wound one. There is no miter
// limit: the sharper the corner, the farther its vertex travels, without
// bound as the turn approaches 180°.
func (p Polygon) Offset(distance float64) Polygon {
	n := len(p.Vertices)
	if n < 3 {
		return p.Clone()
	}
	out := make([]math2d.Vec2, 0, n)
	for i := 0; i < n; i++ {
		prev := p.Vertices[(i+n-1)%n]
		cur := p.Vertices[i]
		next := p.Vertices[(i+1)%n]
		d1 := cur.Sub(prev).Normalize()
		d2 := next.Sub(cur).Normalize()
		// Outward normals for positive winding.
		n1 := math2d.V2(d1.Y, -d1.X)
		n2 := math2d.V2(d2.Y, -d2.X)
		bisector := n1.Add(n2).Normalize()
		out = append(out, cur.Add(bisector.Scale(distance/bisector.Dot(n1))))
	}
	return Polygon{out}
}

// Simplify returns the polygon with vertices that deviate less than
// tolerance removed, via Douglas-Peucker over the vertex loop. The first
// and last vertices always survive.
func (p Polygon) Simplify(tolerance float64) Polygon {
	return Polygon{Simplify(p.Vertices, tolerance)}
}

// Intersects reports whether two polygons touch: any pair of edges
// crosses, or one polygon contains the other entirely.
func (p Polygon) Intersects(o Polygon) bool {
	if len(p.Vertices) == 0 || len(o.Vertices) == 0 {
		return false
	}
	for _, e1 := range p.Edges() {
		for _, e2 := range o.Edges() {
			if _, ok := e1.Intersect(e2); ok {
				return true
			}
		}
	}
	// No edge crossings: disjoint, or one inside the other.
	return p.ContainsPoint(o.Vertices[0]) || o.ContainsPoint(p.Vertices[0])
}

// WindingNumber returns how many times the vertex loop winds around p,
// signed by direction. Nonzero means inside under the winding rule, which
// keeps self-overlapping regions filled where even-odd punches holes.
func WindingNumber(p math2d.Vec2, vertices []math2d.Vec2) int {
	wn := 0
	n := len(vertices)
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		if a.Y <= p.Y {
			if b.Y > p.Y && b.Sub(a).Cross(p.Sub(a)) > 0 {
				wn++
			}
		} else if b.Y <= p.Y && b.Sub(a).Cross(p.Sub(a)) < 0 {
			wn--
		}
	}
	return wn
}

// PolygonDistance returns the smallest gap between two polygon
// boundaries, or 0 when they intersect or one contains the other.
func PolygonDistance(a, b Polygon) float64 {
	if a.Intersects(b) {
		return 0
	}
	min := math.Inf(1)
	for _, v := range a.Vertices {
		for _, e := range b.Edges() {
			if d := e.DistanceToPoint(v); d < min {
				min = d
			}
		}
	}
	for _, v := range b.Vertices {
		for _, e := range a.Edges() {
			if d := e.DistanceToPoint(v); d < min {
				min = d
			}
		}
	}
	return min
}
