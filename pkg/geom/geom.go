// Package geom provides the 2D primitives easel draws with (boxes,
// segments, rays, polygons, circles and ellipses) and the classic
// algorithms over them: convex hulls, polygon offsetting, Douglas-Peucker
// simplification, winding numbers and intersection tests.
//
// Coordinates follow the screen convention: x grows to the right and y
// grows down. Signed areas come from the shoelace formula, so a positive
// area means counter-clockwise in the mathematical sense (which looks
// clockwise on screen).
//
// Nothing here panics on degenerate input. Parallel lines, zero-length
// directions and singular configurations resolve to ok=false results or
// documented fallback values.
package geom

import (
	"math"

	"github.com/taigrr/easel/pkg/math2d"
)

// Epsilon guards the near-parallel and near-degenerate branches of the
// intersection code.
const Epsilon = math2d.Epsilon

// LineIntersection returns the crossing point of the two infinite lines
// through a1-a2 and b1-b2. Parallel (or degenerate) lines report false.
func LineIntersection(a1, a2, b1, b2 math2d.Vec2) (math2d.Vec2, bool) {
	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)
	denom := d1.Cross(d2)
	if math.Abs(denom) < Epsilon {
		return math2d.Vec2{}, false
	}
	t := b1.Sub(a1).Cross(d2) / denom
	return a1.Add(d1.Scale(t)), true
}

// SegmentIntersection returns the crossing point of the segments a1-a2 and
// b1-b2. Both intersection parameters must land in [0, 1]. Parallel and
// collinear segments report false, even when they overlap.
func SegmentIntersection(a1, a2, b1, b2 math2d.Vec2) (math2d.Vec2, bool) {
	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)
	denom := d1.Cross(d2)
	if math.Abs(denom) < Epsilon {
		return math2d.Vec2{}, false
	}
	diff := b1.Sub(a1)
	t := diff.Cross(d2) / denom
	u := diff.Cross(d1) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return math2d.Vec2{}, false
	}
	return a1.Add(d1.Scale(t)), true
}

// PointSegmentDistance returns the distance from p to the segment ab.
func PointSegmentDistance(p, a, b math2d.Vec2) float64 {
	return Seg(a, b).DistanceToPoint(p)
}

// PointLineDistance returns the perpendicular distance from p to the
// infinite line through a and b. Coincident a and b degrade to the
// point distance.
func PointLineDistance(p, a, b math2d.Vec2) float64 {
	d := b.Sub(a)
	l := d.Len()
	if l == 0 {
		return p.Distance(a)
	}
	return math.Abs(d.Cross(p.Sub(a))) / l
}

// BoundsIntersect reports whether two boxes overlap or touch.
func BoundsIntersect(a, b Box) bool {
	return a.IntersectsBox(b)
}
