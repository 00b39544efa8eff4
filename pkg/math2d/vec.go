// Package math2d provides the vector and affine matrix math underneath
// easel's geometry, scene graph and viewport code. Types are small values:
// every operation returns a new value, and hot-path mutation goes through
// the separate *InPlace method set.
package math2d

import (
	"fmt"
	"math"

	"fortio.org/log"
)

const (
	// Epsilon guards near-zero denominators and determinants.
	Epsilon = 1e-10
	// ComparisonEpsilon is the default tolerance for equality predicates.
	ComparisonEpsilon = 1e-4
)

// Vec2 represents a 2D vector or point.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Zero2 returns the zero vector.
func Zero2() Vec2 {
	return Vec2{}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Div returns a divided by the scalar s. Dividing by zero logs a warning
// and returns the zero vector rather than Inf/NaN components.
func (a Vec2) Div(s float64) Vec2 {
	if s == 0 {
		log.Warnf("Vec2.Div: zero divisor, returning zero vector")
		return Vec2{}
	}
	return Vec2{a.X / s, a.Y / s}
}

// Mul returns the component-wise product a * b.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the z component of the 3D cross product a × b.
func (a Vec2) Cross(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Len returns the length of the vector.
func (a Vec2) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec2) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Normalize returns the unit vector. The zero vector normalizes to itself.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// SetLength returns a vector in the direction of a with the given length.
// The zero vector has no direction and stays zero.
func (a Vec2) SetLength(l float64) Vec2 {
	return a.Normalize().Scale(l)
}

// Negate returns the negated vector.
func (a Vec2) Negate() Vec2 {
	return Vec2{-a.X, -a.Y}
}

// Abs returns the component-wise absolute value.
func (a Vec2) Abs() Vec2 {
	return Vec2{math.Abs(a.X), math.Abs(a.Y)}
}

// Min returns the component-wise minimum of a and b.
func (a Vec2) Min(b Vec2) Vec2 {
	return Vec2{math.Min(a.X, b.X), math.Min(a.Y, b.Y)}
}

// Max returns the component-wise maximum of a and b.
func (a Vec2) Max(b Vec2) Vec2 {
	return Vec2{math.Max(a.X, b.X), math.Max(a.Y, b.Y)}
}

// Clamp limits each component to the range [lo, hi].
func (a Vec2) Clamp(lo, hi Vec2) Vec2 {
	return a.Max(lo).Min(hi)
}

// Round returns the vector with each component rounded to the nearest integer.
func (a Vec2) Round() Vec2 {
	return Vec2{math.Round(a.X), math.Round(a.Y)}
}

// Lerp returns linear interpolation between a and b.
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
	}
}

// SmoothStep interpolates between a and b with the cubic 3t² - 2t³
// applied to t, easing in and out at the ends.
func (a Vec2) SmoothStep(b Vec2, t float64) Vec2 {
	return a.Lerp(b, t*t*(3-2*t))
}

// Rotate rotates the vector by angle (radians).
func (a Vec2) Rotate(angle float64) Vec2 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vec2{
		a.X*cos - a.Y*sin,
		a.X*sin + a.Y*cos,
	}
}

// RotateAround rotates the vector by angle (radians) about origin.
func (a Vec2) RotateAround(origin Vec2, angle float64) Vec2 {
	return a.Sub(origin).Rotate(angle).Add(origin)
}

// Perpendicular returns a perpendicular vector (90° counter-clockwise).
func (a Vec2) Perpendicular() Vec2 {
	return Vec2{-a.Y, a.X}
}

// Angle returns the angle of the vector in radians.
func (a Vec2) Angle() float64 {
	return math.Atan2(a.Y, a.X)
}

// AngleTo returns the direction angle from point a toward point b.
func (a Vec2) AngleTo(b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// AngleBetween returns the unsigned angle between a and b in [0, π].
// The cosine is clamped to [-1, 1] so rounding never produces NaN.
// Zero-length inputs yield 0.
func (a Vec2) AngleBetween(b Vec2) float64 {
	d := a.Len() * b.Len()
	if d == 0 {
		return 0
	}
	cos := a.Dot(b) / d
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// Project returns the projection of a onto b. Projecting onto a zero-length
// vector yields the zero vector.
func (a Vec2) Project(b Vec2) Vec2 {
	d := b.LenSq()
	if d == 0 {
		return Vec2{}
	}
	return b.Scale(a.Dot(b) / d)
}

// Reject returns the component of a perpendicular to b.
func (a Vec2) Reject(b Vec2) Vec2 {
	return a.Sub(a.Project(b))
}

// Distance returns the distance between two points.
func (a Vec2) Distance(b Vec2) float64 {
	return a.Sub(b).Len()
}

// DistanceSq returns the squared distance between two points.
func (a Vec2) DistanceSq(b Vec2) float64 {
	return a.Sub(b).LenSq()
}

// ManhattanDistance returns the L1 distance |dx| + |dy|.
func (a Vec2) ManhattanDistance(b Vec2) float64 {
	return math.Abs(b.X-a.X) + math.Abs(b.Y-a.Y)
}

// ChebyshevDistance returns the L∞ distance max(|dx|, |dy|).
func (a Vec2) ChebyshevDistance(b Vec2) float64 {
	return math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))
}

// Equals reports whether a and b match within ComparisonEpsilon.
func (a Vec2) Equals(b Vec2) bool {
	return a.EqualsEps(b, ComparisonEpsilon)
}

// EqualsEps reports whether each component of a and b matches within eps.
func (a Vec2) EqualsEps(b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// IsZero reports whether the vector is zero within ComparisonEpsilon.
func (a Vec2) IsZero() bool {
	return a.IsZeroEps(ComparisonEpsilon)
}

// IsZeroEps reports whether each component is zero within eps.
func (a Vec2) IsZeroEps(eps float64) bool {
	return math.Abs(a.X) <= eps && math.Abs(a.Y) <= eps
}

// IsParallelTo reports whether a and b lie along the same line, in either
// direction. The zero vector is parallel to everything.
func (a Vec2) IsParallelTo(b Vec2) bool {
	return a.IsParallelToEps(b, ComparisonEpsilon)
}

// IsParallelToEps is IsParallelTo with an explicit tolerance.
func (a Vec2) IsParallelToEps(b Vec2, eps float64) bool {
	return math.Abs(a.Normalize().Cross(b.Normalize())) <= eps
}

// IsPerpendicularTo reports whether a and b are at right angles.
func (a Vec2) IsPerpendicularTo(b Vec2) bool {
	return a.IsPerpendicularToEps(b, ComparisonEpsilon)
}

// IsPerpendicularToEps is IsPerpendicularTo with an explicit tolerance.
func (a Vec2) IsPerpendicularToEps(b Vec2, eps float64) bool {
	return math.Abs(a.Normalize().Dot(b.Normalize())) <= eps
}

// String implements fmt.Stringer.
func (a Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", a.X, a.Y)
}
