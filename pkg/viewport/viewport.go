// Package viewport maps between world and screen coordinates for an
// interactive view: panning, cursor-anchored zooming, fitting content
// into the window, and the nice-number grid stepping rulers use.
package viewport

import (
	"math"

	"github.com/taigrr/easel/pkg/geom"
	"github.com/taigrr/easel/pkg/math2d"
)

// Viewport is a window onto the world plane: a world center point, a
// zoom in screen pixels per world unit, and the screen size in pixels.
type Viewport struct {
	Width, Height float64
	Center        math2d.Vec2
	Zoom          float64

	MinZoom, MaxZoom float64
}

// New returns a viewport of the given screen size, centered on the world
// origin at 1:1 zoom.
func New(width, height float64) *Viewport {
	return &Viewport{
		Width:   width,
		Height:  height,
		Zoom:    1,
		MinZoom: 1e-4,
		MaxZoom: 1e4,
	}
}

// Resize updates the screen size, keeping the world center fixed.
func (v *Viewport) Resize(width, height float64) {
	v.Width = width
	v.Height = height
}

// WorldToScreen returns the transform from world to screen coordinates:
// translate the center to the origin, scale by the zoom, then move to
// the screen center.
func (v *Viewport) WorldToScreen() math2d.Mat3 {
	return math2d.Translation(v.Width/2, v.Height/2).
		Mul(math2d.Scaling(v.Zoom, v.Zoom)).
		Mul(math2d.Translation(-v.Center.X, -v.Center.Y))
}

// ScreenToWorld returns the inverse mapping, built directly so it stays
// exact even at extreme zooms.
func (v *Viewport) ScreenToWorld() math2d.Mat3 {
	return math2d.Translation(v.Center.X, v.Center.Y).
		Mul(math2d.Scaling(1/v.Zoom, 1/v.Zoom)).
		Mul(math2d.Translation(-v.Width/2, -v.Height/2))
}

// ToScreen maps a world point to screen coordinates.
func (v *Viewport) ToScreen(p math2d.Vec2) math2d.Vec2 {
	return v.WorldToScreen().TransformPoint(p)
}

// ToWorld maps a screen point to world coordinates.
func (v *Viewport) ToWorld(p math2d.Vec2) math2d.Vec2 {
	return v.ScreenToWorld().TransformPoint(p)
}

// Pan shifts the view by a screen-space delta: positive x moves the
// view right, so content appears to slide left.
func (v *Viewport) Pan(screenDelta math2d.Vec2) {
	v.Center = v.Center.Add(screenDelta.Scale(1 / v.Zoom))
}

// SetZoom sets the zoom, clamped to [MinZoom, MaxZoom].
func (v *Viewport) SetZoom(z float64) {
	v.Zoom = math.Min(math.Max(z, v.MinZoom), v.MaxZoom)
}

// ZoomAt multiplies the zoom by factor while keeping the world point
// under the given screen point fixed, the usual scroll-wheel behavior.
func (v *Viewport) ZoomAt(screenPoint math2d.Vec2, factor float64) {
	anchor := v.ToWorld(screenPoint)
	v.SetZoom(v.Zoom * factor)
	v.Center = v.Center.Add(anchor.Sub(v.ToWorld(screenPoint)))
}

// FitBounds centers the view on b and picks the largest zoom that keeps
// the whole box visible with the given margin in screen pixels on every
// side. Empty boxes and degenerate screen sizes leave the viewport
// unchanged; a zero-size box is centered without changing the zoom.
func (v *Viewport) FitBounds(b geom.Box, margin float64) {
	if !b.IsValid() || v.Width <= 0 || v.Height <= 0 {
		return
	}
	availW := v.Width - 2*margin
	availH := v.Height - 2*margin
	if availW <= 0 || availH <= 0 {
		return
	}
	zoom := math.Inf(1)
	if b.Width() > 0 {
		zoom = availW / b.Width()
	}
	if b.Height() > 0 {
		zoom = math.Min(zoom, availH/b.Height())
	}
	if !math.IsInf(zoom, 1) {
		v.SetZoom(zoom)
	}
	v.Center = b.Center()
}

// VisibleBounds returns the world-space rectangle currently on screen.
func (v *Viewport) VisibleBounds() geom.Box {
	return geom.BoxFromCorners(
		v.ToWorld(math2d.Zero2()),
		v.ToWorld(math2d.V2(v.Width, v.Height)),
	)
}

// GridStep returns the smallest world-space step from the 1, 2, 5
// decade ladder that spans at least minScreenPx pixels at the current
// zoom.
func (v *Viewport) GridStep(minScreenPx float64) float64 {
	if minScreenPx <= 0 || v.Zoom <= 0 {
		return 1
	}
	worldMin := minScreenPx / v.Zoom
	base := math.Pow(10, math.Floor(math.Log10(worldMin)))
	for _, m := range []float64{1, 2, 5, 10} {
		if m*base >= worldMin {
			return m * base
		}
	}
	return 10 * base
}

// SnapToGrid rounds p to the nearest multiple of step on both axes. A
// non-positive step returns p unchanged.
func SnapToGrid(p math2d.Vec2, step float64) math2d.Vec2 {
	if step <= 0 {
		return p
	}
	return math2d.V2(
		math.Round(p.X/step)*step,
		math.Round(p.Y/step)*step,
	)
}
