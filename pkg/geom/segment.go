package geom

import "github.com/taigrr/easel/pkg/math2d"

// Segment is a finite line segment between two points.
type Segment struct {
	Start, End math2d.Vec2
}

// Seg creates a new Segment.
func Seg(start, end math2d.Vec2) Segment {
	return Segment{start, end}
}

// Delta returns the vector from Start to End.
func (s Segment) Delta() math2d.Vec2 {
	return s.End.Sub(s.Start)
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Delta().Len()
}

// LengthSq returns the squared segment length.
func (s Segment) LengthSq() float64 {
	return s.Delta().LenSq()
}

// Midpoint returns the point halfway along the segment.
func (s Segment) Midpoint() math2d.Vec2 {
	return s.PointAt(0.5)
}

// Direction returns the unit vector from Start toward End, or the zero
// vector for a degenerate segment.
func (s Segment) Direction() math2d.Vec2 {
	return s.Delta().Normalize()
}

// Bounds returns the tight box around the segment.
func (s Segment) Bounds() Box {
	return BoxFromCorners(s.Start, s.End)
}

// PointAt returns the point at parameter t. The parameter is not clamped:
// values outside [0, 1] extrapolate beyond the endpoints.
func (s Segment) PointAt(t float64) math2d.Vec2 {
	return s.Start.Lerp(s.End, t)
}

// NearestPoint returns the closest point on the segment to p, the clamped
// parameter t in [0, 1] it sits at, and its distance to p.
func (s Segment) NearestPoint(p math2d.Vec2) (math2d.Vec2, float64, float64) {
	d := s.Delta()
	ll := d.LenSq()
	if ll == 0 {
		return s.Start, 0, s.Start.Distance(p)
	}
	t := p.Sub(s.Start).Dot(d) / ll
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	q := s.PointAt(t)
	return q, t, q.Distance(p)
}

// DistanceToPoint returns the distance from p to the segment.
func (s Segment) DistanceToPoint(p math2d.Vec2) float64 {
	_, _, d := s.NearestPoint(p)
	return d
}

// Intersect returns the crossing point of two segments. Parallel and
// collinear segments report no intersection, even when they overlap.
func (s Segment) Intersect(o Segment) (math2d.Vec2, bool) {
	return SegmentIntersection(s.Start, s.End, o.Start, o.End)
}

// Transform returns the segment mapped through m.
func (s Segment) Transform(m math2d.Mat3) Segment {
	return Segment{m.TransformPoint(s.Start), m.TransformPoint(s.End)}
}
