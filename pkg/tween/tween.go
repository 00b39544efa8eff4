package tween

import (
	"github.com/taigrr/easel/pkg/math2d"
)

// Tween interpolates a scalar from From to To over Duration seconds
// through an easing curve. The zero Duration tween is complete
// immediately.
type Tween struct {
	From, To float64
	Duration float64
	Elapsed  float64
	Fn       Ease
}

// NewTween starts a scalar tween. A nil fn means Linear.
func NewTween(from, to, duration float64, fn Ease) *Tween {
	if fn == nil {
		fn = Linear
	}
	return &Tween{From: from, To: to, Duration: duration, Fn: fn}
}

// Advance adds dt seconds and returns the current value.
func (tw *Tween) Advance(dt float64) float64 {
	tw.Elapsed += dt
	return tw.Value()
}

// Value returns the eased value at the current elapsed time.
func (tw *Tween) Value() float64 {
	if tw.Duration <= 0 {
		return tw.To
	}
	return Lerp(tw.From, tw.To, tw.Fn(Clamp01(tw.Elapsed/tw.Duration)))
}

// Done reports whether the tween has run its full duration.
func (tw *Tween) Done() bool {
	return tw.Elapsed >= tw.Duration
}

// Vec2Tween interpolates a point from From to To over Duration seconds
// through an easing curve.
type Vec2Tween struct {
	From, To math2d.Vec2
	Duration float64
	Elapsed  float64
	Fn       Ease
}

// NewVec2Tween starts a point tween. A nil fn means Linear.
func NewVec2Tween(from, to math2d.Vec2, duration float64, fn Ease) *Vec2Tween {
	if fn == nil {
		fn = Linear
	}
	return &Vec2Tween{From: from, To: to, Duration: duration, Fn: fn}
}

// Advance adds dt seconds and returns the current point.
func (tw *Vec2Tween) Advance(dt float64) math2d.Vec2 {
	tw.Elapsed += dt
	return tw.Value()
}

// Value returns the eased point at the current elapsed time.
func (tw *Vec2Tween) Value() math2d.Vec2 {
	if tw.Duration <= 0 {
		return tw.To
	}
	return tw.From.Lerp(tw.To, tw.Fn(Clamp01(tw.Elapsed/tw.Duration)))
}

// Done reports whether the tween has run its full duration.
func (tw *Vec2Tween) Done() bool {
	return tw.Elapsed >= tw.Duration
}
