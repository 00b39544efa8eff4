package geom

import (
	"math"
	"testing"

	"github.com/taigrr/easel/pkg/math2d"
)

func TestCircleContainsPoint(t *testing.T) {
	c := NewCircle(math2d.V2(0, 0), 5)
	tests := []struct {
		name string
		pt   math2d.Vec2
		want bool
	}{
		{"center", math2d.V2(0, 0), true},
		{"interior", math2d.V2(3, 3), true},
		// A point exactly on the boundary counts as contained.
		{"on boundary", math2d.V2(3, 4), true},
		{"just outside", math2d.V2(3.1, 4), false},
		{"far away", math2d.V2(10, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ContainsPoint(tt.pt); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestCircleGeometry(t *testing.T) {
	c := NewCircle(math2d.V2(1, 2), 3)
	if got := c.Bounds(); got != NewBox(-2, -1, 4, 5) {
		t.Errorf("Bounds = %v, want (-2, -1, 4, 5)", got)
	}
	if got := c.Area(); math.Abs(got-9*math.Pi) > 1e-12 {
		t.Errorf("Area = %v, want 9π", got)
	}
	if got := c.Circumference(); math.Abs(got-6*math.Pi) > 1e-12 {
		t.Errorf("Circumference = %v, want 6π", got)
	}
	if got := c.PointAt(math.Pi / 2); !got.EqualsEps(math2d.V2(1, 5), 1e-9) {
		t.Errorf("PointAt(π/2) = %v, want (1, 5)", got)
	}
}

func TestCircleIntersectCircle(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		want []math2d.Vec2
	}{
		{
			"two points",
			NewCircle(math2d.V2(0, 0), 5),
			NewCircle(math2d.V2(8, 0), 5),
			[]math2d.Vec2{{X: 4, Y: 3}, {X: 4, Y: -3}},
		},
		{
			"external tangent",
			NewCircle(math2d.V2(0, 0), 5),
			NewCircle(math2d.V2(10, 0), 5),
			[]math2d.Vec2{{X: 5, Y: 0}},
		},
		{
			"disjoint",
			NewCircle(math2d.V2(0, 0), 5),
			NewCircle(math2d.V2(20, 0), 5),
			nil,
		},
		{
			"one inside the other",
			NewCircle(math2d.V2(0, 0), 5),
			NewCircle(math2d.V2(1, 0), 1),
			nil,
		},
		{
			"concentric",
			NewCircle(math2d.V2(0, 0), 5),
			NewCircle(math2d.V2(0, 0), 3),
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.IntersectCircle(tt.b)
			if len(got) != len(tt.want) {
				t.Fatalf("IntersectCircle returned %d points (%v), want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if !got[i].EqualsEps(tt.want[i], 1e-9) {
					t.Errorf("point %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCircleIntersectSegment(t *testing.T) {
	c := NewCircle(math2d.V2(0, 0), 5)
	tests := []struct {
		name string
		seg  Segment
		want []math2d.Vec2
	}{
		{
			"through the middle",
			Seg(math2d.V2(-10, 0), math2d.V2(10, 0)),
			[]math2d.Vec2{{X: -5, Y: 0}, {X: 5, Y: 0}},
		},
		{
			// Roots outside t in [0, 1] are discarded.
			"starts inside",
			Seg(math2d.V2(0, 0), math2d.V2(10, 0)),
			[]math2d.Vec2{{X: 5, Y: 0}},
		},
		{
			"tangent",
			Seg(math2d.V2(-10, 5), math2d.V2(10, 5)),
			[]math2d.Vec2{{X: 0, Y: 5}},
		},
		{
			"misses",
			Seg(math2d.V2(-10, 6), math2d.V2(10, 6)),
			nil,
		},
		{
			"fully inside",
			Seg(math2d.V2(-1, 0), math2d.V2(1, 0)),
			nil,
		},
		{
			"zero length",
			Seg(math2d.V2(0, 0), math2d.V2(0, 0)),
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.IntersectSegment(tt.seg)
			if len(got) != len(tt.want) {
				t.Fatalf("IntersectSegment returned %d points (%v), want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if !got[i].EqualsEps(tt.want[i], 1e-9) {
					t.Errorf("point %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCircleToPolygon(t *testing.T) {
	c := NewCircle(math2d.V2(2, 3), 5)
	p := c.ToPolygon(16)
	if len(p.Vertices) != 16 {
		t.Fatalf("ToPolygon vertex count = %d, want 16", len(p.Vertices))
	}
	if !p.Vertices[0].EqualsEps(math2d.V2(7, 3), 1e-9) {
		t.Errorf("first vertex = %v, want (7, 3) at angle 0", p.Vertices[0])
	}
	for i, v := range p.Vertices {
		if d := v.Distance(c.Center); math.Abs(d-5) > 1e-9 {
			t.Errorf("vertex %d at distance %v from center, want 5", i, d)
		}
	}
	// The polygon area converges toward the circle area from below.
	if got := p.Area(); got >= c.Area() || got < 0.9*c.Area() {
		t.Errorf("16-gon area = %v, want a bit under %v", got, c.Area())
	}
}
