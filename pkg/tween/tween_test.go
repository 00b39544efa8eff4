package tween

import (
	"math"
	"testing"

	"github.com/taigrr/easel/pkg/math2d"
)

func TestEaseEndpoints(t *testing.T) {
	curves := map[string]Ease{
		"Linear":     Linear,
		"QuadIn":     QuadIn,
		"QuadOut":    QuadOut,
		"QuadInOut":  QuadInOut,
		"CubicIn":    CubicIn,
		"CubicOut":   CubicOut,
		"CubicInOut": CubicInOut,
		"SmoothStep": SmoothStep,
	}
	for name, fn := range curves {
		if got := fn(0); math.Abs(got) > 1e-12 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-12 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		// The curves are monotone on [0,1].
		prev := fn(0)
		for i := 1; i <= 100; i++ {
			cur := fn(float64(i) / 100)
			if cur < prev-1e-12 {
				t.Errorf("%s decreases at t=%v", name, float64(i)/100)
				break
			}
			prev = cur
		}
	}
}

func TestEaseMidpoints(t *testing.T) {
	tests := []struct {
		name string
		fn   Ease
		t    float64
		want float64
	}{
		{"QuadIn", QuadIn, 0.5, 0.25},
		{"QuadOut", QuadOut, 0.5, 0.75},
		{"QuadInOut", QuadInOut, 0.5, 0.5},
		{"CubicIn", CubicIn, 0.5, 0.125},
		{"CubicOut", CubicOut, 0.5, 0.875},
		{"CubicInOut", CubicInOut, 0.5, 0.5},
		{"SmoothStep half", SmoothStep, 0.5, 0.5},
		{"SmoothStep quarter", SmoothStep, 0.25, 0.15625},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.t); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("%s(%v) = %v, want %v", tt.name, tt.t, got, tt.want)
			}
		})
	}
}

func TestTween(t *testing.T) {
	tw := NewTween(0, 10, 2, nil)

	if got := tw.Advance(0.5); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("value at 0.5s = %v, want 2.5", got)
	}
	if tw.Done() {
		t.Error("tween done too early")
	}
	if got := tw.Advance(5); got != 10 {
		t.Errorf("value past the end = %v, want 10", got)
	}
	if !tw.Done() {
		t.Error("tween should be done")
	}

	// Zero duration completes immediately.
	if got := NewTween(3, 7, 0, QuadIn).Value(); got != 7 {
		t.Errorf("zero-duration value = %v, want 7", got)
	}
}

func TestVec2Tween(t *testing.T) {
	tw := NewVec2Tween(math2d.Zero2(), math2d.V2(10, -20), 1, SmoothStep)

	if got := tw.Advance(0.5); !got.EqualsEps(math2d.V2(5, -10), 1e-9) {
		t.Errorf("midpoint = %v, want (5,-10)", got)
	}
	if got := tw.Advance(1); !got.Equals(math2d.V2(10, -20)) {
		t.Errorf("end = %v, want (10,-20)", got)
	}
}

func TestSpringConverges(t *testing.T) {
	s := NewSpring(60, 4.0, 1.0)
	s.Target = 10

	for i := 0; i < 600; i++ {
		s.Update()
	}
	if math.Abs(s.Position-10) > 1e-6 {
		t.Errorf("Position after 10s = %v, want 10", s.Position)
	}
	if !s.AtRest(1e-6) {
		t.Errorf("spring not at rest: pos=%v vel=%v", s.Position, s.Velocity)
	}
}

func TestSpringSnap(t *testing.T) {
	s := NewSpring(60, 4.0, 1.0)
	s.Target = 10
	s.Update()
	s.Snap(3)

	if s.Position != 3 || s.Velocity != 0 || s.Target != 3 {
		t.Errorf("after Snap: pos=%v vel=%v target=%v, want 3/0/3", s.Position, s.Velocity, s.Target)
	}
	s.Update()
	if s.Position != 3 {
		t.Errorf("snapped spring moved to %v", s.Position)
	}
}

func TestVec2SpringConverges(t *testing.T) {
	s := NewVec2Spring(60, 4.0, 1.0)
	s.Target = math2d.V2(100, -50)

	for i := 0; i < 600; i++ {
		s.Update()
	}
	if !s.Position.EqualsEps(s.Target, 1e-6) {
		t.Errorf("Position after 10s = %v, want %v", s.Position, s.Target)
	}
	if !s.AtRest(1e-6) {
		t.Errorf("spring not at rest: pos=%v vel=%v", s.Position, s.Velocity)
	}
}
