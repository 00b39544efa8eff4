package tween

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/easel/pkg/math2d"
)

// Spring smooths a scalar toward a moving target with damped harmonic
// motion, stepped once per frame. Damping 1.0 is critically damped:
// fastest approach with no overshoot.
type Spring struct {
	Position float64
	Velocity float64
	Target   float64

	spring harmonica.Spring
}

// NewSpring returns a spring stepped at the given frame rate. Frequency
// is the angular frequency in radians per second; 4.0 with damping 1.0
// settles in roughly a second.
func NewSpring(fps int, frequency, damping float64) *Spring {
	return &Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Snap teleports the spring to v with no residual motion.
func (s *Spring) Snap(v float64) {
	s.Position = v
	s.Velocity = 0
	s.Target = v
}

// Update advances one frame toward the target and returns the new
// position.
func (s *Spring) Update() float64 {
	s.Position, s.Velocity = s.spring.Update(s.Position, s.Velocity, s.Target)
	return s.Position
}

// AtRest reports whether the spring has effectively settled on its
// target.
func (s *Spring) AtRest(eps float64) bool {
	return math.Abs(s.Position-s.Target) <= eps && math.Abs(s.Velocity) <= eps
}

// Vec2Spring smooths a point toward a target, one independent spring
// per axis sharing the same tuning.
type Vec2Spring struct {
	Position math2d.Vec2
	Velocity math2d.Vec2
	Target   math2d.Vec2

	spring harmonica.Spring
}

// NewVec2Spring returns a point spring stepped at the given frame rate.
func NewVec2Spring(fps int, frequency, damping float64) *Vec2Spring {
	return &Vec2Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Snap teleports the spring to p with no residual motion.
func (s *Vec2Spring) Snap(p math2d.Vec2) {
	s.Position = p
	s.Velocity = math2d.Zero2()
	s.Target = p
}

// Update advances one frame toward the target and returns the new
// position.
func (s *Vec2Spring) Update() math2d.Vec2 {
	s.Position.X, s.Velocity.X = s.spring.Update(s.Position.X, s.Velocity.X, s.Target.X)
	s.Position.Y, s.Velocity.Y = s.spring.Update(s.Position.Y, s.Velocity.Y, s.Target.Y)
	return s.Position
}

// AtRest reports whether both axes have effectively settled.
func (s *Vec2Spring) AtRest(eps float64) bool {
	return s.Position.EqualsEps(s.Target, eps) && s.Velocity.Len() <= eps
}
