package scene

import (
	"github.com/taigrr/easel/pkg/geom"
	"github.com/taigrr/easel/pkg/math2d"
)

// Shape is anything a node can carry for bounds aggregation and hit
// testing. Containment is evaluated in the shape's local space; the node
// maps world points through its inverted world transform first.
//
// geom.Polygon, geom.Circle, geom.Ellipse and geom.Box satisfy Shape
// directly. Line below adapts a segment.
type Shape interface {
	Bounds() geom.Box
	ContainsPoint(p math2d.Vec2) bool
}

// Line adapts a segment to the Shape interface. A bare segment has zero
// area, so containment uses a tolerance band around it, typically half
// the stroke width.
type Line struct {
	Seg       geom.Segment
	Tolerance float64
}

// NewLine returns a line shape from start to end. Negative tolerances
// are clamped to zero.
func NewLine(start, end math2d.Vec2, tolerance float64) Line {
	if tolerance < 0 {
		tolerance = 0
	}
	return Line{Seg: geom.Seg(start, end), Tolerance: tolerance}
}

// Bounds returns the segment bounds grown by the tolerance band.
func (l Line) Bounds() geom.Box {
	return l.Seg.Bounds().Expand(l.Tolerance)
}

// ContainsPoint reports whether p lies within the tolerance band of the
// segment.
func (l Line) ContainsPoint(p math2d.Vec2) bool {
	return l.Seg.DistanceToPoint(p) <= l.Tolerance
}
