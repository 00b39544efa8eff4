package render

import (
	"image/color"

	"github.com/taigrr/easel/pkg/geom"
	"github.com/taigrr/easel/pkg/math2d"
	"github.com/taigrr/easel/pkg/scene"
	"github.com/taigrr/easel/pkg/viewport"
)

// Renderer draws a scene tree through a viewport onto a canvas, fills
// under strokes, children over parents.
type Renderer struct {
	Canvas *Canvas

	// CirclePrecision overrides the adaptive vertex count used for
	// circles and ellipses; zero keeps it adaptive.
	CirclePrecision int
}

// NewRenderer returns a renderer targeting the given canvas.
func NewRenderer(c *Canvas) *Renderer {
	return &Renderer{Canvas: c}
}

// CanvasViewport returns the identity mapping for a canvas of the given
// size: document coordinates are pixel coordinates.
func CanvasViewport(width, height float64) *viewport.Viewport {
	v := viewport.New(width, height)
	v.Center = math2d.V2(width/2, height/2)
	return v
}

// RenderScene draws the whole tree using the viewport's world-to-screen
// mapping. Invisible subtrees are skipped; node opacity accumulates
// down the tree.
func (r *Renderer) RenderScene(root *scene.Node, vp *viewport.Viewport) {
	toScreen := vp.WorldToScreen()
	root.Visit(func(n *scene.Node) bool {
		if !n.Visible {
			return false
		}
		if n.Shape != nil {
			r.drawNode(n, toScreen.Mul(n.World()))
		}
		return true
	})
}

func (r *Renderer) drawNode(n *scene.Node, m math2d.Mat3) {
	alpha := n.EffectiveOpacity()
	if alpha <= 0 {
		return
	}
	style := n.Style

	var outline geom.Polygon
	switch s := n.Shape.(type) {
	case geom.Polygon:
		outline = s.Transform(m)
	case geom.Box:
		outline = boxPolygon(s).Transform(m)
	case geom.Circle:
		outline = s.ToPolygon(circleSegments(s.Radius*meanScale(m), r.CirclePrecision)).Transform(m)
	case geom.Ellipse:
		outline = s.ToPolygon(circleSegments(maxRadius(s)*meanScale(m), r.CirclePrecision)).Transform(m)
	case scene.Line:
		if style.HasStroke {
			r.Canvas.DrawSegment(s.Seg.Transform(m), FromColorful(style.Stroke), alpha)
		}
		return
	default:
		return
	}

	if style.HasFill {
		r.Canvas.FillPolygon(outline, FromColorful(style.Fill), alpha)
	}
	if style.HasStroke {
		r.Canvas.DrawPolygon(outline, FromColorful(style.Stroke), alpha)
	}
}

func maxRadius(e geom.Ellipse) float64 {
	if e.RX > e.RY {
		return e.RX
	}
	return e.RY
}

// meanScale estimates how much the transform magnifies lengths, for
// picking circle tessellation in screen space.
func meanScale(m math2d.Mat3) float64 {
	d := m.Decompose()
	sx := d.Scale.X
	if sx < 0 {
		sx = -sx
	}
	sy := d.Scale.Y
	if sy < 0 {
		sy = -sy
	}
	return (sx + sy) / 2
}

// DrawGrid overlays grid lines at the viewport's nice step, covering
// the visible world region. minScreenPx sets the minimum on-screen
// spacing between lines.
func (r *Renderer) DrawGrid(vp *viewport.Viewport, minScreenPx float64, col color.RGBA, alpha float64) {
	step := vp.GridStep(minScreenPx)
	vis := vp.VisibleBounds()
	toScreen := vp.WorldToScreen()

	startX := step * float64(int(vis.MinX/step)-1)
	for x := startX; x <= vis.MaxX+step; x += step {
		a := toScreen.TransformPoint(math2d.V2(x, vis.MinY))
		b := toScreen.TransformPoint(math2d.V2(x, vis.MaxY))
		r.Canvas.DrawSegment(geom.Seg(a, b), col, alpha)
	}
	startY := step * float64(int(vis.MinY/step)-1)
	for y := startY; y <= vis.MaxY+step; y += step {
		a := toScreen.TransformPoint(math2d.V2(vis.MinX, y))
		b := toScreen.TransformPoint(math2d.V2(vis.MaxX, y))
		r.Canvas.DrawSegment(geom.Seg(a, b), col, alpha)
	}
}
