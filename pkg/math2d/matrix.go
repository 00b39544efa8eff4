package math2d

import (
	"fmt"
	"math"
)

// Mat3 is a 2D affine transform stored as the six meaningful coefficients
// of a 3x3 matrix whose bottom row is implicitly [0 0 1]:
//
//	| A  C  TX |   | x |
//	| B  D  TY | · | y |
//	| 0  0  1  |   | 1 |
//
// mapping (x, y) to (A·x + C·y + TX, B·x + D·y + TY).
type Mat3 struct {
	A, B, C, D, TX, TY float64
}

// Identity returns the identity transform.
func Identity() Mat3 {
	return Mat3{A: 1, D: 1}
}

// Translation returns a transform moving points by (tx, ty).
func Translation(tx, ty float64) Mat3 {
	return Mat3{A: 1, D: 1, TX: tx, TY: ty}
}

// Rotation returns a rotation about the origin by angle (radians).
func Rotation(angle float64) Mat3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Mat3{A: cos, B: sin, C: -sin, D: cos}
}

// RotationDegrees returns a rotation about the origin by angle (degrees).
func RotationDegrees(angle float64) Mat3 {
	return Rotation(angle * math.Pi / 180)
}

// RotationAround returns a rotation by angle (radians) about the point (cx, cy).
func RotationAround(angle, cx, cy float64) Mat3 {
	return Translation(cx, cy).Mul(Rotation(angle)).Mul(Translation(-cx, -cy))
}

// Scaling returns a scale about the origin by (sx, sy).
func Scaling(sx, sy float64) Mat3 {
	return Mat3{A: sx, D: sy}
}

// ScalingAround returns a scale by (sx, sy) about the point (cx, cy).
func ScalingAround(sx, sy, cx, cy float64) Mat3 {
	return Translation(cx, cy).Mul(Scaling(sx, sy)).Mul(Translation(-cx, -cy))
}

// Skewing returns a skew by the given angles (radians) along each axis.
// The coefficients hold the tangents of the angles.
func Skewing(ax, ay float64) Mat3 {
	return Mat3{A: 1, B: math.Tan(ay), C: math.Tan(ax), D: 1}
}

// SkewingX returns a skew along the x axis only.
func SkewingX(angle float64) Mat3 {
	return Skewing(angle, 0)
}

// SkewingY returns a skew along the y axis only.
func SkewingY(angle float64) Mat3 {
	return Skewing(0, angle)
}

// ReflectionX returns a reflection across the x axis (y is negated).
func ReflectionX() Mat3 {
	return Mat3{A: 1, D: -1}
}

// ReflectionY returns a reflection across the y axis (x is negated).
func ReflectionY() Mat3 {
	return Mat3{A: -1, D: 1}
}

// ReflectionOrigin returns a point reflection through the origin.
func ReflectionOrigin() Mat3 {
	return Mat3{A: -1, D: -1}
}

// ReflectionAcross returns a reflection across the line through the origin
// at the given angle (radians).
func ReflectionAcross(angle float64) Mat3 {
	cos, sin := math.Cos(2*angle), math.Sin(2*angle)
	return Mat3{A: cos, B: sin, C: sin, D: -cos}
}

// FromArray builds a transform from coefficients in [a b c d tx ty] order.
func FromArray(v [6]float64) Mat3 {
	return Mat3{A: v[0], B: v[1], C: v[2], D: v[3], TX: v[4], TY: v[5]}
}

// det3 expands a 3x3 determinant given in row-major order.
func det3(a, b, c, d, e, f, g, h, i float64) float64 {
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// FromPoints returns the affine transform mapping the three src points onto
// the three dst points, solved by Cramer's rule. Collinear source points
// admit no unique solution and yield the identity.
func FromPoints(src, dst [3]Vec2) Mat3 {
	det := det3(
		src[0].X, src[0].Y, 1,
		src[1].X, src[1].Y, 1,
		src[2].X, src[2].Y, 1,
	)
	if math.Abs(det) < Epsilon {
		return Identity()
	}
	return Mat3{
		A:  det3(dst[0].X, src[0].Y, 1, dst[1].X, src[1].Y, 1, dst[2].X, src[2].Y, 1) / det,
		C:  det3(src[0].X, dst[0].X, 1, src[1].X, dst[1].X, 1, src[2].X, dst[2].X, 1) / det,
		TX: det3(src[0].X, src[0].Y, dst[0].X, src[1].X, src[1].Y, dst[1].X, src[2].X, src[2].Y, dst[2].X) / det,
		B:  det3(dst[0].Y, src[0].Y, 1, dst[1].Y, src[1].Y, 1, dst[2].Y, src[2].Y, 1) / det,
		D:  det3(src[0].X, dst[0].Y, 1, src[1].X, dst[1].Y, 1, src[2].X, dst[2].Y, 1) / det,
		TY: det3(src[0].X, src[0].Y, dst[0].Y, src[1].X, src[1].Y, dst[1].Y, src[2].X, src[2].Y, dst[2].Y) / det,
	}
}

// Mul returns the composition applying o first, then m:
//
//	m.Mul(o).TransformPoint(p) == m.TransformPoint(o.TransformPoint(p))
func (m Mat3) Mul(o Mat3) Mat3 {
	return Mat3{
		A:  m.A*o.A + m.C*o.B,
		B:  m.B*o.A + m.D*o.B,
		C:  m.A*o.C + m.C*o.D,
		D:  m.B*o.C + m.D*o.D,
		TX: m.A*o.TX + m.C*o.TY + m.TX,
		TY: m.B*o.TX + m.D*o.TY + m.TY,
	}
}

// PreMul returns the composition applying m first, then o.
func (m Mat3) PreMul(o Mat3) Mat3 {
	return o.Mul(m)
}

// Translate composes a translation in the local frame of m.
func (m Mat3) Translate(tx, ty float64) Mat3 {
	return m.Mul(Translation(tx, ty))
}

// Rotate composes a rotation (radians) in the local frame of m.
func (m Mat3) Rotate(angle float64) Mat3 {
	return m.Mul(Rotation(angle))
}

// Scale composes a scale in the local frame of m.
func (m Mat3) Scale(sx, sy float64) Mat3 {
	return m.Mul(Scaling(sx, sy))
}

// Skew composes a skew (radians) in the local frame of m.
func (m Mat3) Skew(ax, ay float64) Mat3 {
	return m.Mul(Skewing(ax, ay))
}

// TransformPoint applies the full affine transform, translation included.
func (m Mat3) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		m.A*p.X + m.C*p.Y + m.TX,
		m.B*p.X + m.D*p.Y + m.TY,
	}
}

// TransformVector applies only the linear part. A direction or displacement
// never picks up translation; use this for normals, deltas and velocities.
func (m Mat3) TransformVector(v Vec2) Vec2 {
	return Vec2{
		m.A*v.X + m.C*v.Y,
		m.B*v.X + m.D*v.Y,
	}
}

// TransformPoints maps each point through m into a new slice.
func (m Mat3) TransformPoints(pts []Vec2) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// Det returns the determinant of the linear part.
func (m Mat3) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// IsInvertible reports whether the determinant is meaningfully nonzero.
func (m Mat3) IsInvertible() bool {
	return math.Abs(m.Det()) >= Epsilon
}

// Invert returns the inverse transform. A degenerate matrix (|det| below
// Epsilon) has no inverse; the identity and false are returned instead.
func (m Mat3) Invert() (Mat3, bool) {
	det := m.Det()
	if math.Abs(det) < Epsilon {
		return Identity(), false
	}
	return Mat3{
		A:  m.D / det,
		B:  -m.B / det,
		C:  -m.C / det,
		D:  m.A / det,
		TX: (m.C*m.TY - m.D*m.TX) / det,
		TY: (m.B*m.TX - m.A*m.TY) / det,
	}, true
}

// InvertInPlace replaces m with its inverse, reporting success. A degenerate
// matrix is left untouched.
func (m *Mat3) InvertInPlace() bool {
	inv, ok := m.Invert()
	if !ok {
		return false
	}
	*m = inv
	return true
}

// Decomposition holds the translate/rotate/scale/skew factors extracted
// from a transform. The factorization is approximate and not unique.
type Decomposition struct {
	Translation Vec2
	Rotation    float64
	Scale       Vec2
	Skew        float64
}

// Decompose factors m into translation, rotation, scale and skew. Rotation
// comes from the x basis column, scale from the column lengths (x negated
// when the transform is a reflection), and skew from the angle between the
// basis columns.
func (m Mat3) Decompose() Decomposition {
	sx := math.Hypot(m.A, m.B)
	sy := math.Hypot(m.C, m.D)
	if m.Det() < 0 {
		sx = -sx
	}
	rot := math.Atan2(m.B, m.A)
	return Decomposition{
		Translation: Vec2{m.TX, m.TY},
		Rotation:    rot,
		Scale:       Vec2{sx, sy},
		Skew:        rot + math.Pi/2 - math.Atan2(m.D, m.C),
	}
}

// IsIdentity reports whether m is the identity within ComparisonEpsilon.
func (m Mat3) IsIdentity() bool {
	return m.Equals(Identity())
}

// Equals reports whether m and o match within ComparisonEpsilon.
func (m Mat3) Equals(o Mat3) bool {
	return m.EqualsEps(o, ComparisonEpsilon)
}

// EqualsEps reports whether every coefficient of m and o matches within eps.
func (m Mat3) EqualsEps(o Mat3, eps float64) bool {
	return math.Abs(m.A-o.A) <= eps &&
		math.Abs(m.B-o.B) <= eps &&
		math.Abs(m.C-o.C) <= eps &&
		math.Abs(m.D-o.D) <= eps &&
		math.Abs(m.TX-o.TX) <= eps &&
		math.Abs(m.TY-o.TY) <= eps
}

// Array returns the coefficients in [a b c d tx ty] order.
func (m Mat3) Array() [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.TX, m.TY}
}

// String implements fmt.Stringer, printing the 2x3 matrix row by row.
func (m Mat3) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", m.A, m.C, m.TX, m.B, m.D, m.TY)
}
