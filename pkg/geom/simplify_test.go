package geom

import (
	"testing"

	"github.com/taigrr/easel/pkg/math2d"
)

func TestSimplify(t *testing.T) {
	// A nearly straight chain with one real detour at (2, 1).
	points := []math2d.Vec2{
		{X: 0, Y: 0}, {X: 1, Y: 0.05}, {X: 2, Y: 1}, {X: 3, Y: 0.04}, {X: 4, Y: 0},
	}
	got := Simplify(points, 0.5)
	want := []math2d.Vec2{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 0}}
	if len(got) != len(want) {
		t.Fatalf("Simplify kept %d points (%v), want %d", len(got), got, len(want))
	}
	for i := range want {
		if !got[i].EqualsEps(want[i], 1e-12) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSimplifyKeepsEndpoints(t *testing.T) {
	points := []math2d.Vec2{
		{X: 0, Y: 0}, {X: 1, Y: 3}, {X: 2, Y: -2}, {X: 3, Y: 4}, {X: 9, Y: 1},
	}
	// Even a tolerance larger than every deviation keeps the endpoints.
	got := Simplify(points, 1000)
	if len(got) != 2 {
		t.Fatalf("Simplify kept %d points, want only the endpoints", len(got))
	}
	if got[0] != points[0] || got[1] != points[len(points)-1] {
		t.Errorf("endpoints = %v, want %v and %v", got, points[0], points[len(points)-1])
	}
}

func TestSimplifyCollinear(t *testing.T) {
	points := []math2d.Vec2{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
	}
	// Zero deviation is never above tolerance, even at tolerance zero.
	got := Simplify(points, 0)
	if len(got) != 2 {
		t.Errorf("collinear Simplify kept %d points, want 2", len(got))
	}
}

func TestSimplifyPreservesDetail(t *testing.T) {
	zigzag := []math2d.Vec2{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 3, Y: 1}, {X: 4, Y: 0},
	}
	got := Simplify(zigzag, 0.5)
	if len(got) != len(zigzag) {
		t.Errorf("zigzag above tolerance lost points: kept %d of %d", len(got), len(zigzag))
	}
	// Short inputs come back as-is.
	pair := []math2d.Vec2{{X: 0, Y: 0}, {X: 5, Y: 5}}
	if got := Simplify(pair, 10); len(got) != 2 {
		t.Errorf("two-point Simplify = %v, want both points", got)
	}
}

func TestSimplifyDoesNotMutateInput(t *testing.T) {
	points := []math2d.Vec2{{X: 0, Y: 0}, {X: 1, Y: 5}, {X: 2, Y: 0}}
	Simplify(points, 10)
	if points[1] != math2d.V2(1, 5) {
		t.Errorf("Simplify mutated its input: %v", points)
	}
}
