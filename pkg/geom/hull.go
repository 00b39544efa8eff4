package geom

import (
	"math"
	"sort"

	"github.com/taigrr/easel/pkg/math2d"
)

// ConvexHull returns the convex hull of the points in counter-clockwise
// (positive winding) order via a Graham scan. The input slice is
// REORDERED IN PLACE by the pivot swap and angular sort; pass a copy if
// the original order matters. Collinear boundary points are dropped.
// Fewer than three points come back as a copy, unchanged.
func ConvexHull(points []math2d.Vec2) []math2d.Vec2 {
	if len(points) < 3 {
		out := make([]math2d.Vec2, len(points))
		copy(out, points)
		return out
	}

	// Pivot: lowest y, ties broken by lowest x.
	pivot := 0
	for i, p := range points {
		if p.Y < points[pivot].Y || (p.Y == points[pivot].Y && p.X < points[pivot].X) {
			pivot = i
		}
	}
	points[0], points[pivot] = points[pivot], points[0]
	p0 := points[0]

	// Sort the rest by polar angle around the pivot, nearer first on ties.
	rest := points[1:]
	sort.Slice(rest, func(i, j int) bool {
		cr := rest[i].Sub(p0).Cross(rest[j].Sub(p0))
		if math.Abs(cr) < Epsilon {
			return rest[i].DistanceSq(p0) < rest[j].DistanceSq(p0)
		}
		return cr > 0
	})

	hull := make([]math2d.Vec2, 0, len(points))
	for _, p := range points {
		// Pop anything that no longer makes a strict left turn.
		for len(hull) >= 2 {
			a, b := hull[len(hull)-2], hull[len(hull)-1]
			if b.Sub(a).Cross(p.Sub(b)) > Epsilon {
				break
			}
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}
