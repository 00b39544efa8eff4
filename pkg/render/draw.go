package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/taigrr/easel/pkg/geom"
	"github.com/taigrr/easel/pkg/math2d"
)

// DrawSegment strokes a one-pixel line with Bresenham's algorithm,
// endpoints rounded to the nearest pixel.
func (c *Canvas) DrawSegment(s geom.Segment, col color.RGBA, alpha float64) {
	x0 := int(math.Round(s.Start.X))
	y0 := int(math.Round(s.Start.Y))
	x1 := int(math.Round(s.End.X))
	y1 := int(math.Round(s.End.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.BlendPixel(x0, y0, col, alpha)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawPolyline strokes consecutive points, optionally closing the loop.
func (c *Canvas) DrawPolyline(pts []math2d.Vec2, closed bool, col color.RGBA, alpha float64) {
	if len(pts) < 2 {
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		c.DrawSegment(geom.Seg(pts[i], pts[i+1]), col, alpha)
	}
	if closed {
		c.DrawSegment(geom.Seg(pts[len(pts)-1], pts[0]), col, alpha)
	}
}

// DrawPolygon strokes the polygon outline.
func (c *Canvas) DrawPolygon(p geom.Polygon, col color.RGBA, alpha float64) {
	c.DrawPolyline(p.Vertices, true, col, alpha)
}

// FillPolygon fills the polygon with even-odd scanline coverage,
// sampling pixel centers so the result agrees with
// geom.Polygon.ContainsPoint.
func (c *Canvas) FillPolygon(p geom.Polygon, col color.RGBA, alpha float64) {
	n := len(p.Vertices)
	if n < 3 {
		return
	}
	bounds := p.Bounds()
	yStart := int(math.Floor(bounds.MinY))
	yEnd := int(math.Ceil(bounds.MaxY))
	if yStart < 0 {
		yStart = 0
	}
	if yEnd >= c.Height {
		yEnd = c.Height - 1
	}

	crossings := make([]float64, 0, 8)
	for y := yStart; y <= yEnd; y++ {
		yc := float64(y) + 0.5
		crossings = crossings[:0]
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			a, b := p.Vertices[j], p.Vertices[i]
			if (a.Y <= yc) == (b.Y <= yc) {
				continue
			}
			t := (yc - a.Y) / (b.Y - a.Y)
			crossings = append(crossings, a.X+t*(b.X-a.X))
		}
		sort.Float64s(crossings)
		for k := 0; k+1 < len(crossings); k += 2 {
			x0 := int(math.Ceil(crossings[k] - 0.5))
			x1 := int(math.Ceil(crossings[k+1] - 0.5))
			if x0 < 0 {
				x0 = 0
			}
			if x1 > c.Width {
				x1 = c.Width
			}
			for x := x0; x < x1; x++ {
				c.BlendPixel(x, y, col, alpha)
			}
		}
	}
}

// FillBox fills an axis-aligned box.
func (c *Canvas) FillBox(b geom.Box, col color.RGBA, alpha float64) {
	if !b.IsValid() {
		return
	}
	c.FillPolygon(boxPolygon(b), col, alpha)
}

// DrawBox strokes an axis-aligned box outline.
func (c *Canvas) DrawBox(b geom.Box, col color.RGBA, alpha float64) {
	if !b.IsValid() {
		return
	}
	c.DrawPolygon(boxPolygon(b), col, alpha)
}

func boxPolygon(b geom.Box) geom.Polygon {
	corners := b.Corners()
	return geom.Polygon{Vertices: corners[:]}
}

// DrawCircle strokes a circle approximated by a polygon.
func (c *Canvas) DrawCircle(ci geom.Circle, segments int, col color.RGBA, alpha float64) {
	c.DrawPolygon(ci.ToPolygon(circleSegments(ci.Radius, segments)), col, alpha)
}

// FillCircle fills a circle approximated by a polygon.
func (c *Canvas) FillCircle(ci geom.Circle, segments int, col color.RGBA, alpha float64) {
	c.FillPolygon(ci.ToPolygon(circleSegments(ci.Radius, segments)), col, alpha)
}

// DrawEllipse strokes an ellipse approximated by a polygon.
func (c *Canvas) DrawEllipse(e geom.Ellipse, segments int, col color.RGBA, alpha float64) {
	c.DrawPolygon(e.ToPolygon(circleSegments(math.Max(e.RX, e.RY), segments)), col, alpha)
}

// FillEllipse fills an ellipse approximated by a polygon.
func (c *Canvas) FillEllipse(e geom.Ellipse, segments int, col color.RGBA, alpha float64) {
	c.FillPolygon(e.ToPolygon(circleSegments(math.Max(e.RX, e.RY), segments)), col, alpha)
}

// circleSegments picks a vertex count for a radius when the caller
// passed zero: enough that the chord error stays under half a pixel.
func circleSegments(radius float64, requested int) int {
	if requested > 2 {
		return requested
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-0.5/math.Max(radius, 1))))
	if n < 12 {
		n = 12
	}
	if n > 256 {
		n = 256
	}
	return n
}
