package geom

import (
	"math"

	"github.com/taigrr/easel/pkg/math2d"
)

// Ellipse is an axis-pair ellipse: center, the two radii, and a rotation
// (radians) of the radius axes.
type Ellipse struct {
	Center   math2d.Vec2
	RX, RY   float64
	Rotation float64
}

// NewEllipse creates a new Ellipse with unrotated axes.
func NewEllipse(center math2d.Vec2, rx, ry float64) Ellipse {
	return Ellipse{Center: center, RX: rx, RY: ry}
}

// Area returns π·rx·ry.
func (e Ellipse) Area() float64 {
	return math.Pi * e.RX * e.RY
}

// PointAt returns the boundary point at the given parameter angle
// (radians), measured before the ellipse rotation is applied.
func (e Ellipse) PointAt(angle float64) math2d.Vec2 {
	p := math2d.V2(math.Cos(angle)*e.RX, math.Sin(angle)*e.RY)
	return e.Center.Add(p.Rotate(e.Rotation))
}

// ContainsPoint reports whether p lies inside the ellipse, boundary
// included: the point is moved into the ellipse frame and tested against
// the unit circle.
func (e Ellipse) ContainsPoint(p math2d.Vec2) bool {
	local := p.Sub(e.Center).Rotate(-e.Rotation)
	nx := local.X / e.RX
	ny := local.Y / e.RY
	return nx*nx+ny*ny <= 1
}

// Bounds returns the tight bounding box, accounting for rotation.
func (e Ellipse) Bounds() Box {
	cos, sin := math.Cos(e.Rotation), math.Sin(e.Rotation)
	ex := math.Sqrt(e.RX*e.RX*cos*cos + e.RY*e.RY*sin*sin)
	ey := math.Sqrt(e.RX*e.RX*sin*sin + e.RY*e.RY*cos*cos)
	return Box{e.Center.X - ex, e.Center.Y - ey, e.Center.X + ex, e.Center.Y + ey}
}

// ToPolygon approximates the ellipse with an n-gon sampled at even
// parameter angles.
func (e Ellipse) ToPolygon(segments int) Polygon {
	v := make([]math2d.Vec2, 0, segments)
	for i := 0; i < segments; i++ {
		v = append(v, e.PointAt(2*math.Pi*float64(i)/float64(segments)))
	}
	return Polygon{v}
}
