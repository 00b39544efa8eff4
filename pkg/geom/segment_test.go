package geom

import (
	"math"
	"testing"

	"github.com/taigrr/easel/pkg/math2d"
)

func TestSegmentBasics(t *testing.T) {
	s := Seg(math2d.V2(1, 1), math2d.V2(4, 5))
	if got := s.Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := s.Midpoint(); got != math2d.V2(2.5, 3) {
		t.Errorf("Midpoint = %v, want (2.5, 3)", got)
	}
	if got := s.Direction(); !got.EqualsEps(math2d.V2(0.6, 0.8), 1e-12) {
		t.Errorf("Direction = %v, want (0.6, 0.8)", got)
	}
	if got := s.Bounds(); got != NewBox(1, 1, 4, 5) {
		t.Errorf("Bounds = %v, want (1, 1, 4, 5)", got)
	}
}

func TestSegmentPointAt(t *testing.T) {
	s := Seg(math2d.V2(0, 0), math2d.V2(10, 0))
	tests := []struct {
		name string
		t    float64
		want math2d.Vec2
	}{
		{"start", 0, math2d.V2(0, 0)},
		{"end", 1, math2d.V2(10, 0)},
		{"middle", 0.5, math2d.V2(5, 0)},
		// PointAt does not clamp; out-of-range t extrapolates.
		{"beyond end", 2, math2d.V2(20, 0)},
		{"before start", -0.5, math2d.V2(-5, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.PointAt(tt.t); !got.EqualsEps(tt.want, 1e-12) {
				t.Errorf("PointAt(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestSegmentNearestPoint(t *testing.T) {
	s := Seg(math2d.V2(0, 0), math2d.V2(10, 0))
	tests := []struct {
		name     string
		p        math2d.Vec2
		want     math2d.Vec2
		wantT    float64
		wantDist float64
	}{
		{"above middle", math2d.V2(5, 3), math2d.V2(5, 0), 0.5, 3},
		{"beyond end clamps", math2d.V2(14, 3), math2d.V2(10, 0), 1, 5},
		{"before start clamps", math2d.V2(-4, 3), math2d.V2(0, 0), 0, 5},
		{"on segment", math2d.V2(2, 0), math2d.V2(2, 0), 0.2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotT, gotDist := s.NearestPoint(tt.p)
			if !got.EqualsEps(tt.want, 1e-12) {
				t.Errorf("NearestPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
			if math.Abs(gotT-tt.wantT) > 1e-12 {
				t.Errorf("NearestPoint(%v) t = %v, want %v", tt.p, gotT, tt.wantT)
			}
			if math.Abs(gotDist-tt.wantDist) > 1e-12 {
				t.Errorf("NearestPoint(%v) dist = %v, want %v", tt.p, gotDist, tt.wantDist)
			}
		})
	}

	// A zero-length segment is its own nearest point.
	degenerate := Seg(math2d.V2(2, 2), math2d.V2(2, 2))
	got, gotT, gotDist := degenerate.NearestPoint(math2d.V2(5, 6))
	if got != math2d.V2(2, 2) || gotT != 0 || math.Abs(gotDist-5) > 1e-12 {
		t.Errorf("degenerate NearestPoint = (%v, %v, %v), want ((2, 2), 0, 5)", got, gotT, gotDist)
	}
}

func TestSegmentIntersect(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Segment
		want   math2d.Vec2
		wantOK bool
	}{
		{
			"crossing",
			Seg(math2d.V2(0, 0), math2d.V2(10, 10)),
			Seg(math2d.V2(0, 10), math2d.V2(10, 0)),
			math2d.V2(5, 5), true,
		},
		{
			"touching at endpoint",
			Seg(math2d.V2(0, 0), math2d.V2(5, 5)),
			Seg(math2d.V2(5, 5), math2d.V2(10, 0)),
			math2d.V2(5, 5), true,
		},
		{
			"parallel",
			Seg(math2d.V2(0, 0), math2d.V2(10, 0)),
			Seg(math2d.V2(0, 1), math2d.V2(10, 1)),
			math2d.Vec2{}, false,
		},
		{
			// Collinear overlap has no single crossing point and reports none.
			"collinear overlapping",
			Seg(math2d.V2(0, 0), math2d.V2(10, 0)),
			Seg(math2d.V2(5, 0), math2d.V2(15, 0)),
			math2d.Vec2{}, false,
		},
		{
			"lines cross but segments fall short",
			Seg(math2d.V2(0, 0), math2d.V2(2, 2)),
			Seg(math2d.V2(0, 10), math2d.V2(10, 0)),
			math2d.Vec2{}, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersect(tt.b)
			if ok != tt.wantOK {
				t.Fatalf("Intersect ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.EqualsEps(tt.want, 1e-9) {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLineIntersection(t *testing.T) {
	// Infinite lines meet even where the segments would not.
	got, ok := LineIntersection(
		math2d.V2(0, 0), math2d.V2(2, 2),
		math2d.V2(0, 10), math2d.V2(10, 0),
	)
	if !ok {
		t.Fatal("LineIntersection of crossing lines reported parallel")
	}
	if !got.EqualsEps(math2d.V2(5, 5), 1e-9) {
		t.Errorf("LineIntersection = %v, want (5, 5)", got)
	}
	if _, ok := LineIntersection(
		math2d.V2(0, 0), math2d.V2(10, 0),
		math2d.V2(0, 1), math2d.V2(10, 1),
	); ok {
		t.Error("LineIntersection of parallel lines reported ok")
	}
}

func TestPointDistances(t *testing.T) {
	a, b := math2d.V2(0, 0), math2d.V2(10, 0)
	// Beyond the end, the segment clamps but the line does not.
	p := math2d.V2(14, 3)
	if got := PointSegmentDistance(p, a, b); math.Abs(got-5) > 1e-12 {
		t.Errorf("PointSegmentDistance = %v, want 5", got)
	}
	if got := PointLineDistance(p, a, b); math.Abs(got-3) > 1e-12 {
		t.Errorf("PointLineDistance = %v, want 3", got)
	}
	// Degenerate line falls back to point distance.
	if got := PointLineDistance(math2d.V2(3, 4), a, a); math.Abs(got-5) > 1e-12 {
		t.Errorf("PointLineDistance to a point = %v, want 5", got)
	}
}
