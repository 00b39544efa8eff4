package math2d

import (
	"math"

	"fortio.org/log"
)

// The *InPlace methods mutate the receiver and return it so calls can be
// chained. They exist for hot paths that would otherwise churn short-lived
// values; the caller must own the vector it mutates.

// Set assigns both components and returns v.
func (v *Vec2) Set(x, y float64) *Vec2 {
	v.X, v.Y = x, y
	return v
}

// Clone returns a copy of v.
func (v *Vec2) Clone() *Vec2 {
	c := *v
	return &c
}

// AddInPlace adds b to v.
func (v *Vec2) AddInPlace(b Vec2) *Vec2 {
	v.X += b.X
	v.Y += b.Y
	return v
}

// SubInPlace subtracts b from v.
func (v *Vec2) SubInPlace(b Vec2) *Vec2 {
	v.X -= b.X
	v.Y -= b.Y
	return v
}

// ScaleInPlace multiplies v by the scalar s.
func (v *Vec2) ScaleInPlace(s float64) *Vec2 {
	v.X *= s
	v.Y *= s
	return v
}

// DivInPlace divides v by the scalar s. Dividing by zero logs a warning
// and zeroes the vector, matching Vec2.Div.
func (v *Vec2) DivInPlace(s float64) *Vec2 {
	if s == 0 {
		log.Warnf("Vec2.DivInPlace: zero divisor, zeroing vector")
		v.X, v.Y = 0, 0
		return v
	}
	v.X /= s
	v.Y /= s
	return v
}

// MulInPlace multiplies v component-wise by b.
func (v *Vec2) MulInPlace(b Vec2) *Vec2 {
	v.X *= b.X
	v.Y *= b.Y
	return v
}

// NegateInPlace negates both components.
func (v *Vec2) NegateInPlace() *Vec2 {
	v.X, v.Y = -v.X, -v.Y
	return v
}

// NormalizeInPlace scales v to unit length. The zero vector is left as is.
func (v *Vec2) NormalizeInPlace() *Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	v.X /= l
	v.Y /= l
	return v
}

// SetLengthInPlace scales v to the given length, keeping its direction.
// The zero vector has no direction and stays zero.
func (v *Vec2) SetLengthInPlace(l float64) *Vec2 {
	return v.NormalizeInPlace().ScaleInPlace(l)
}

// RotateInPlace rotates v by angle (radians).
func (v *Vec2) RotateInPlace(angle float64) *Vec2 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	v.X, v.Y = v.X*cos-v.Y*sin, v.X*sin+v.Y*cos
	return v
}

// RotateAroundInPlace rotates v by angle (radians) about origin.
func (v *Vec2) RotateAroundInPlace(origin Vec2, angle float64) *Vec2 {
	return v.SubInPlace(origin).RotateInPlace(angle).AddInPlace(origin)
}

// LerpInPlace moves v toward b by fraction t.
func (v *Vec2) LerpInPlace(b Vec2, t float64) *Vec2 {
	v.X += (b.X - v.X) * t
	v.Y += (b.Y - v.Y) * t
	return v
}
