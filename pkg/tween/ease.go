// Package tween provides easing curves, time-based interpolation and
// spring-smoothed values for animating viewport motion and shape
// properties.
package tween

// Ease maps normalized time t in [0,1] to a progress fraction. All the
// curves here pass through (0,0) and (1,1).
type Ease func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// QuadIn accelerates from rest.
func QuadIn(t float64) float64 { return t * t }

// QuadOut decelerates to rest.
func QuadOut(t float64) float64 { return t * (2 - t) }

// QuadInOut accelerates then decelerates.
func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// CubicIn accelerates from rest, more sharply than QuadIn.
func CubicIn(t float64) float64 { return t * t * t }

// CubicOut decelerates to rest, more sharply than QuadOut.
func CubicOut(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// CubicInOut accelerates then decelerates with cubic tails.
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}

// SmoothStep is the Hermite curve 3t^2 - 2t^3, the same cubic the
// vector SmoothStep interpolation uses.
func SmoothStep(t float64) float64 { return t * t * (3 - 2*t) }

// Clamp01 clamps t to [0,1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp interpolates from a to b by fraction t, unclamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
