package geom

import (
	"math"

	"github.com/taigrr/easel/pkg/math2d"
)

// Circle is a circle given by center and radius.
type Circle struct {
	Center math2d.Vec2
	Radius float64
}

// NewCircle creates a new Circle.
func NewCircle(center math2d.Vec2, radius float64) Circle {
	return Circle{center, radius}
}

// Area returns πr².
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Circumference returns 2πr.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// Bounds returns the tight bounding box.
func (c Circle) Bounds() Box {
	return Box{
		c.Center.X - c.Radius, c.Center.Y - c.Radius,
		c.Center.X + c.Radius, c.Center.Y + c.Radius,
	}
}

// PointAt returns the boundary point at the given angle (radians).
func (c Circle) PointAt(angle float64) math2d.Vec2 {
	return c.Center.Add(math2d.V2(math.Cos(angle), math.Sin(angle)).Scale(c.Radius))
}

// ContainsPoint reports whether p lies inside the circle, boundary
// included, by squared-distance comparison.
func (c Circle) ContainsPoint(p math2d.Vec2) bool {
	return c.Center.DistanceSq(p) <= c.Radius*c.Radius
}

// IntersectCircle returns the points where two circle boundaries meet:
// none, one (tangent) or two, built on the radical line between the
// centers. Concentric circles report none.
func (c Circle) IntersectCircle(o Circle) []math2d.Vec2 {
	d := c.Center.Distance(o.Center)
	if d < Epsilon {
		return nil
	}
	if d > c.Radius+o.Radius || d < math.Abs(c.Radius-o.Radius) {
		return nil
	}
	// Distance from c.Center to the radical line along the center line.
	a := (c.Radius*c.Radius - o.Radius*o.Radius + d*d) / (2 * d)
	h2 := c.Radius*c.Radius - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	dir := o.Center.Sub(c.Center).Scale(1 / d)
	mid := c.Center.Add(dir.Scale(a))
	if h < Epsilon {
		return []math2d.Vec2{mid}
	}
	perp := dir.Perpendicular().Scale(h)
	return []math2d.Vec2{mid.Add(perp), mid.Sub(perp)}
}

// IntersectSegment returns the points where the segment crosses the
// circle boundary, keeping only the quadratic roots with parameter t in
// [0, 1].
func (c Circle) IntersectSegment(s Segment) []math2d.Vec2 {
	d := s.Delta()
	f := s.Start.Sub(c.Center)
	a := d.LenSq()
	if a < Epsilon {
		return nil
	}
	b := 2 * f.Dot(d)
	cc := f.LenSq() - c.Radius*c.Radius
	disc := b*b - 4*a*cc
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	var pts []math2d.Vec2
	t1 := (-b - sq) / (2 * a)
	if t1 >= 0 && t1 <= 1 {
		pts = append(pts, s.PointAt(t1))
	}
	t2 := (-b + sq) / (2 * a)
	if disc > 0 && t2 >= 0 && t2 <= 1 {
		pts = append(pts, s.PointAt(t2))
	}
	return pts
}

// ToPolygon approximates the circle with an n-gon sampled at even angles,
// starting at angle 0.
func (c Circle) ToPolygon(segments int) Polygon {
	v := make([]math2d.Vec2, 0, segments)
	for i := 0; i < segments; i++ {
		v = append(v, c.PointAt(2*math.Pi*float64(i)/float64(segments)))
	}
	return Polygon{v}
}
