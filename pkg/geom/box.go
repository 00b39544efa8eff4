package geom

import (
	"math"

	"github.com/taigrr/easel/pkg/math2d"
)

// Box is an axis-aligned bounding box. The zero Box is the single point
// at the origin, not an empty box; use EmptyBox to start an accumulation.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewBox creates a box from explicit edges. Ordering is not enforced;
// see BoxFromCorners for unordered input.
func NewBox(minX, minY, maxX, maxY float64) Box {
	return Box{minX, minY, maxX, maxY}
}

// EmptyBox returns the inverted box (+Inf mins, -Inf maxes) that acts as
// the identity for union: expanding it by any point yields that point.
func EmptyBox() Box {
	return Box{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

// BoxFromCorners creates the box spanning two opposite corners, whatever
// their order.
func BoxFromCorners(a, b math2d.Vec2) Box {
	return Box{
		math.Min(a.X, b.X), math.Min(a.Y, b.Y),
		math.Max(a.X, b.X), math.Max(a.Y, b.Y),
	}
}

// BoxFromCenterSize creates a box of the given size centered on c.
func BoxFromCenterSize(c, size math2d.Vec2) Box {
	return Box{
		c.X - size.X/2, c.Y - size.Y/2,
		c.X + size.X/2, c.Y + size.Y/2,
	}
}

// BoxFromPoints returns the tightest box around the given points, or the
// empty box when there are none.
func BoxFromPoints(pts ...math2d.Vec2) Box {
	b := EmptyBox()
	for _, p := range pts {
		b.ExpandByPoint(p)
	}
	return b
}

// IsValid reports whether the box has non-negative extent on both axes.
func (b Box) IsValid() bool {
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// IsEmpty reports whether the box contains no points at all.
func (b Box) IsEmpty() bool {
	return !b.IsValid()
}

// Width returns the x extent.
func (b Box) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the y extent.
func (b Box) Height() float64 {
	return b.MaxY - b.MinY
}

// Size returns (width, height) as a vector.
func (b Box) Size() math2d.Vec2 {
	return math2d.V2(b.Width(), b.Height())
}

// Center returns the midpoint of the box.
func (b Box) Center() math2d.Vec2 {
	return math2d.V2((b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2)
}

// Area returns width times height.
func (b Box) Area() float64 {
	return b.Width() * b.Height()
}

// Corners returns the four corners in loop order starting at (MinX, MinY).
func (b Box) Corners() [4]math2d.Vec2 {
	return [4]math2d.Vec2{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MinX, Y: b.MaxY},
	}
}

// Bounds returns the box itself, letting boxes stand in wherever a
// bounded shape is expected.
func (b Box) Bounds() Box {
	return b
}

// ContainsPoint reports whether p lies inside the box, edges included.
func (b Box) ContainsPoint(p math2d.Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// ContainsBox reports whether o lies entirely inside b, edges included.
func (b Box) ContainsBox(o Box) bool {
	return o.MinX >= b.MinX && o.MaxX <= b.MaxX && o.MinY >= b.MinY && o.MaxY <= b.MaxY
}

// IntersectsBox reports whether the boxes overlap. Touching edges count
// as intersecting.
func (b Box) IntersectsBox(o Box) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX && b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// Intersection returns the overlapping region. Disjoint boxes report false.
func (b Box) Intersection(o Box) (Box, bool) {
	if !b.IntersectsBox(o) {
		return Box{}, false
	}
	return Box{
		math.Max(b.MinX, o.MinX), math.Max(b.MinY, o.MinY),
		math.Min(b.MaxX, o.MaxX), math.Min(b.MaxY, o.MaxY),
	}, true
}

// Union returns the smallest box covering both.
func (b Box) Union(o Box) Box {
	return Box{
		math.Min(b.MinX, o.MinX), math.Min(b.MinY, o.MinY),
		math.Max(b.MaxX, o.MaxX), math.Max(b.MaxY, o.MaxY),
	}
}

// Expand returns the box grown by pad on every side.
func (b Box) Expand(pad float64) Box {
	return Box{b.MinX - pad, b.MinY - pad, b.MaxX + pad, b.MaxY + pad}
}

// Contract returns the box shrunk by pad on every side. Shrinking past
// the center inverts the box.
func (b Box) Contract(pad float64) Box {
	return b.Expand(-pad)
}

// ClampPoint returns p limited to the box.
func (b Box) ClampPoint(p math2d.Vec2) math2d.Vec2 {
	return math2d.V2(
		math.Max(b.MinX, math.Min(b.MaxX, p.X)),
		math.Max(b.MinY, math.Min(b.MaxY, p.Y)),
	)
}

// DistanceToPoint returns the distance from p to the box, 0 inside.
func (b Box) DistanceToPoint(p math2d.Vec2) float64 {
	dx := math.Max(math.Max(b.MinX-p.X, 0), p.X-b.MaxX)
	dy := math.Max(math.Max(b.MinY-p.Y, 0), p.Y-b.MaxY)
	return math.Hypot(dx, dy)
}

// Transform returns the tightest axis-aligned box around the transformed
// corners of b.
func (b Box) Transform(m math2d.Mat3) Box {
	c := b.Corners()
	return BoxFromPoints(
		m.TransformPoint(c[0]),
		m.TransformPoint(c[1]),
		m.TransformPoint(c[2]),
		m.TransformPoint(c[3]),
	)
}

// ExpandByPoint grows the box in place to cover p and returns it.
func (b *Box) ExpandByPoint(p math2d.Vec2) *Box {
	b.MinX = math.Min(b.MinX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MaxY = math.Max(b.MaxY, p.Y)
	return b
}

// ExpandByBox grows the box in place to cover o and returns it.
func (b *Box) ExpandByBox(o Box) *Box {
	b.MinX = math.Min(b.MinX, o.MinX)
	b.MinY = math.Min(b.MinY, o.MinY)
	b.MaxX = math.Max(b.MaxX, o.MaxX)
	b.MaxY = math.Max(b.MaxY, o.MaxY)
	return b
}

// Reset returns the box in place to the empty state.
func (b *Box) Reset() *Box {
	*b = EmptyBox()
	return b
}
