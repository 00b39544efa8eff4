package geom

import "github.com/taigrr/easel/pkg/math2d"

// Simplify reduces a polyline with the Douglas-Peucker algorithm: the
// chain is split recursively at the vertex farthest from the segment
// between its endpoints, and vertices that deviate by no more than
// tolerance are dropped. The first and last points always survive.
// The input is not modified.
func Simplify(points []math2d.Vec2, tolerance float64) []math2d.Vec2 {
	if len(points) < 3 {
		out := make([]math2d.Vec2, len(points))
		copy(out, points)
		return out
	}
	keep := make([]bool, len(points))
	keep[0], keep[len(points)-1] = true, true
	douglasPeucker(points, 0, len(points)-1, tolerance, keep)

	out := make([]math2d.Vec2, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

func douglasPeucker(points []math2d.Vec2, first, last int, tolerance float64, keep []bool) {
	if last <= first+1 {
		return
	}
	maxDist, maxIdx := 0.0, first
	for i := first + 1; i < last; i++ {
		d := PointSegmentDistance(points[i], points[first], points[last])
		if d > maxDist {
			maxDist, maxIdx = d, i
		}
	}
	if maxDist > tolerance {
		keep[maxIdx] = true
		douglasPeucker(points, first, maxIdx, tolerance, keep)
		douglasPeucker(points, maxIdx, last, tolerance, keep)
	}
}
