package math2d

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestVec2AddSub(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Vec2
		wantAdd Vec2
		wantSub Vec2
	}{
		{"positive", V2(1, 2), V2(3, 4), V2(4, 6), V2(-2, -2)},
		{"negative", V2(-1, -2), V2(1, 2), V2(0, 0), V2(-2, -4)},
		{"zero", V2(5, -3), V2(0, 0), V2(5, -3), V2(5, -3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); got != tt.wantAdd {
				t.Errorf("Add(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.wantAdd)
			}
			if got := tt.a.Sub(tt.b); got != tt.wantSub {
				t.Errorf("Sub(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.wantSub)
			}
		})
	}
}

func TestVec2ScaleDiv(t *testing.T) {
	v := V2(2, -4)
	if got := v.Scale(1.5); got != V2(3, -6) {
		t.Errorf("Scale(1.5) = %v, want (3, -6)", got)
	}
	if got := v.Div(2); got != V2(1, -2) {
		t.Errorf("Div(2) = %v, want (1, -2)", got)
	}
	// Division by zero falls back to the zero vector instead of Inf.
	if got := v.Div(0); got != (Vec2{}) {
		t.Errorf("Div(0) = %v, want zero vector", got)
	}
}

func TestVec2Len(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want float64
	}{
		{"3-4-5 triangle", V2(3, 4), 5},
		{"negative components", V2(-3, -4), 5},
		{"zero", V2(0, 0), 0},
		{"unit x", V2(1, 0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Len(); !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("Len(%v) = %v, want %v", tt.v, got, tt.want)
			}
			if got := tt.v.LenSq(); !almostEqual(got, tt.want*tt.want, 1e-12) {
				t.Errorf("LenSq(%v) = %v, want %v", tt.v, got, tt.want*tt.want)
			}
		})
	}
}

func TestVec2Normalize(t *testing.T) {
	v := V2(3, 4).Normalize()
	if !v.EqualsEps(V2(0.6, 0.8), 1e-12) {
		t.Errorf("Normalize(3, 4) = %v, want (0.6, 0.8)", v)
	}
	// Normalizing the zero vector stays zero, silently.
	if got := Zero2().Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize(0, 0) = %v, want zero vector", got)
	}
	// Normalizing is idempotent.
	once := V2(-7, 2.5).Normalize()
	twice := once.Normalize()
	if !once.EqualsEps(twice, 1e-12) {
		t.Errorf("Normalize twice = %v, want %v", twice, once)
	}
}

func TestVec2SetLength(t *testing.T) {
	if got := V2(3, 4).SetLength(10); !got.EqualsEps(V2(6, 8), 1e-12) {
		t.Errorf("SetLength(10) = %v, want (6, 8)", got)
	}
	if got := Zero2().SetLength(10); got != (Vec2{}) {
		t.Errorf("SetLength on zero vector = %v, want zero vector", got)
	}
}

func TestVec2Rotate(t *testing.T) {
	got := V2(1, 0).Rotate(math.Pi / 2)
	if !got.EqualsEps(V2(0, 1), 1e-9) {
		t.Errorf("Rotate(π/2) = %v, want (0, 1)", got)
	}
	// Rotation preserves length for any angle.
	v := V2(3.7, -1.2)
	for _, angle := range []float64{0, 0.5, math.Pi / 2, math.Pi, 2.2, -1.3} {
		if r := v.Rotate(angle); !almostEqual(r.Len(), v.Len(), 1e-9) {
			t.Errorf("Rotate(%v) changed length: %v, want %v", angle, r.Len(), v.Len())
		}
	}
}

func TestVec2RotateAround(t *testing.T) {
	got := V2(2, 1).RotateAround(V2(1, 1), math.Pi)
	if !got.EqualsEps(V2(0, 1), 1e-9) {
		t.Errorf("RotateAround((1,1), π) = %v, want (0, 1)", got)
	}
}

func TestVec2DotCross(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Vec2
		wantDot   float64
		wantCross float64
	}{
		{"perpendicular", V2(1, 0), V2(0, 1), 0, 1},
		{"parallel", V2(2, 3), V2(4, 6), 26, 0},
		{"opposite", V2(1, 0), V2(-1, 0), -1, 0},
		{"general", V2(1, 2), V2(3, 4), 11, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Dot(tt.b); !almostEqual(got, tt.wantDot, 1e-12) {
				t.Errorf("Dot = %v, want %v", got, tt.wantDot)
			}
			if got := tt.a.Cross(tt.b); !almostEqual(got, tt.wantCross, 1e-12) {
				t.Errorf("Cross = %v, want %v", got, tt.wantCross)
			}
		})
	}
}

func TestVec2AngleBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"right angle", V2(1, 0), V2(0, 1), math.Pi / 2},
		{"same direction different length", V2(1, 1), V2(5, 5), 0},
		{"opposite", V2(1, 0), V2(-3, 0), math.Pi},
		{"zero input", Zero2(), V2(1, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.AngleBetween(tt.b); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("AngleBetween(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVec2ProjectReject(t *testing.T) {
	a := V2(3, 4)
	onto := V2(1, 0)
	if got := a.Project(onto); !got.EqualsEps(V2(3, 0), 1e-12) {
		t.Errorf("Project = %v, want (3, 0)", got)
	}
	if got := a.Reject(onto); !got.EqualsEps(V2(0, 4), 1e-12) {
		t.Errorf("Reject = %v, want (0, 4)", got)
	}
	// Projection and rejection sum back to the original vector.
	onto = V2(2, -1)
	sum := a.Project(onto).Add(a.Reject(onto))
	if !sum.EqualsEps(a, 1e-9) {
		t.Errorf("Project + Reject = %v, want %v", sum, a)
	}
	// Projecting onto the zero vector yields the zero vector.
	if got := a.Project(Zero2()); got != (Vec2{}) {
		t.Errorf("Project onto zero = %v, want zero vector", got)
	}
}

func TestVec2Lerp(t *testing.T) {
	a, b := V2(0, 0), V2(10, -20)
	tests := []struct {
		name string
		t    float64
		want Vec2
	}{
		{"start", 0, V2(0, 0)},
		{"end", 1, V2(10, -20)},
		{"midpoint", 0.5, V2(5, -10)},
		{"extrapolate", 1.5, V2(15, -30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Lerp(b, tt.t); !got.EqualsEps(tt.want, 1e-12) {
				t.Errorf("Lerp(t=%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestVec2SmoothStep(t *testing.T) {
	a, b := V2(0, 0), V2(10, 0)
	// Endpoints and midpoint match plain lerp; quarters ease.
	if got := a.SmoothStep(b, 0); !got.EqualsEps(a, 1e-12) {
		t.Errorf("SmoothStep(0) = %v, want %v", got, a)
	}
	if got := a.SmoothStep(b, 1); !got.EqualsEps(b, 1e-12) {
		t.Errorf("SmoothStep(1) = %v, want %v", got, b)
	}
	if got := a.SmoothStep(b, 0.5); !got.EqualsEps(V2(5, 0), 1e-12) {
		t.Errorf("SmoothStep(0.5) = %v, want (5, 0)", got)
	}
	// 3t²-2t³ at t=0.25 is 0.15625.
	if got := a.SmoothStep(b, 0.25); !got.EqualsEps(V2(1.5625, 0), 1e-12) {
		t.Errorf("SmoothStep(0.25) = %v, want (1.5625, 0)", got)
	}
}

func TestVec2Distances(t *testing.T) {
	a, b := V2(1, 1), V2(4, 5)
	if got := a.Distance(b); !almostEqual(got, 5, 1e-12) {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := a.DistanceSq(b); !almostEqual(got, 25, 1e-12) {
		t.Errorf("DistanceSq = %v, want 25", got)
	}
	if got := a.ManhattanDistance(b); !almostEqual(got, 7, 1e-12) {
		t.Errorf("ManhattanDistance = %v, want 7", got)
	}
	if got := a.ChebyshevDistance(b); !almostEqual(got, 4, 1e-12) {
		t.Errorf("ChebyshevDistance = %v, want 4", got)
	}
}

func TestVec2Predicates(t *testing.T) {
	if !V2(1, 2).Equals(V2(1+5e-5, 2-5e-5)) {
		t.Error("Equals should tolerate differences below ComparisonEpsilon")
	}
	if V2(1, 2).Equals(V2(1.01, 2)) {
		t.Error("Equals should reject differences above ComparisonEpsilon")
	}
	if !V2(5e-5, -5e-5).IsZero() {
		t.Error("IsZero should tolerate components below ComparisonEpsilon")
	}
	if V2(0.1, 0).IsZero() {
		t.Error("IsZero should reject components above ComparisonEpsilon")
	}
	if !V2(2, 0).IsParallelTo(V2(-4, 0)) {
		t.Error("opposite directions along one line should be parallel")
	}
	if V2(1, 0).IsParallelTo(V2(1, 0.1)) {
		t.Error("diverging directions should not be parallel")
	}
	if !V2(1, 0).IsPerpendicularTo(V2(0, -3)) {
		t.Error("axis vectors should be perpendicular")
	}
	if V2(1, 0).IsPerpendicularTo(V2(1, 1)) {
		t.Error("45° apart should not be perpendicular")
	}
}

func TestVec2InPlace(t *testing.T) {
	v := V2(1, 2)
	got := v.AddInPlace(V2(2, 3)).ScaleInPlace(2)
	if got != &v {
		t.Error("in-place chain should return the receiver")
	}
	if v != V2(6, 10) {
		t.Errorf("after AddInPlace+ScaleInPlace v = %v, want (6, 10)", v)
	}

	v.Set(3, 4).NormalizeInPlace()
	if !v.EqualsEps(V2(0.6, 0.8), 1e-12) {
		t.Errorf("NormalizeInPlace = %v, want (0.6, 0.8)", v)
	}

	v.Set(2, -4).DivInPlace(0)
	if v != (Vec2{}) {
		t.Errorf("DivInPlace(0) = %v, want zero vector", v)
	}

	v.Set(2, 1).RotateAroundInPlace(V2(1, 1), math.Pi)
	if !v.EqualsEps(V2(0, 1), 1e-9) {
		t.Errorf("RotateAroundInPlace = %v, want (0, 1)", v)
	}

	// Clone detaches from the original.
	v.Set(1, 1)
	c := v.Clone()
	c.AddInPlace(V2(10, 10))
	if v != V2(1, 1) {
		t.Errorf("mutating a clone changed the original: %v", v)
	}
}
