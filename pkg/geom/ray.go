package geom

import (
	"math"

	"github.com/taigrr/easel/pkg/math2d"
)

// Ray is a half-line: an origin and a unit direction.
type Ray struct {
	Origin, Dir math2d.Vec2
}

// NewRay creates a ray, normalizing the direction. A zero direction stays
// zero; such a ray degenerates to its origin point.
func NewRay(origin, dir math2d.Vec2) Ray {
	return Ray{origin, dir.Normalize()}
}

// PointAt returns origin + dir·t.
func (r Ray) PointAt(t float64) math2d.Vec2 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// IntersectBox returns the nearest box point along the ray, found with the
// slab method. An origin inside the box reports the origin itself.
func (r Ray) IntersectBox(b Box) (math2d.Vec2, bool) {
	tmin, tmax := 0.0, math.Inf(1)

	if math.Abs(r.Dir.X) < Epsilon {
		if r.Origin.X < b.MinX || r.Origin.X > b.MaxX {
			return math2d.Vec2{}, false
		}
	} else {
		t1 := (b.MinX - r.Origin.X) / r.Dir.X
		t2 := (b.MaxX - r.Origin.X) / r.Dir.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	if math.Abs(r.Dir.Y) < Epsilon {
		if r.Origin.Y < b.MinY || r.Origin.Y > b.MaxY {
			return math2d.Vec2{}, false
		}
	} else {
		t1 := (b.MinY - r.Origin.Y) / r.Dir.Y
		t2 := (b.MaxY - r.Origin.Y) / r.Dir.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	if tmin > tmax {
		return math2d.Vec2{}, false
	}
	return r.PointAt(tmin), true
}

// IntersectCircle returns the first circle point along the ray: the
// smallest non-negative root of the quadratic, so an origin inside the
// circle hits the boundary on the way out.
func (r Ray) IntersectCircle(c Circle) (math2d.Vec2, bool) {
	oc := r.Origin.Sub(c.Center)
	a := r.Dir.LenSq()
	if a < Epsilon {
		return math2d.Vec2{}, false
	}
	b := 2 * oc.Dot(r.Dir)
	cc := oc.LenSq() - c.Radius*c.Radius
	disc := b*b - 4*a*cc
	if disc < 0 {
		return math2d.Vec2{}, false
	}
	sq := math.Sqrt(disc)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 {
		return math2d.Vec2{}, false
	}
	return r.PointAt(t), true
}

// IntersectSegment returns where the ray crosses the segment: the solution
// of origin + t·dir == start + u·delta with t ≥ 0 and u in [0, 1].
// Parallel and collinear configurations report no intersection.
func (r Ray) IntersectSegment(s Segment) (math2d.Vec2, bool) {
	d := s.Delta()
	denom := r.Dir.Cross(d)
	if math.Abs(denom) < Epsilon {
		return math2d.Vec2{}, false
	}
	diff := s.Start.Sub(r.Origin)
	t := diff.Cross(d) / denom
	u := diff.Cross(r.Dir) / denom
	if t < 0 || u < 0 || u > 1 {
		return math2d.Vec2{}, false
	}
	return r.PointAt(t), true
}
