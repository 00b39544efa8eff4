package main

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"time"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"fortio.org/terminal/ansipixels/tcolor"

	"github.com/taigrr/easel/pkg/geom"
	"github.com/taigrr/easel/pkg/math2d"
	"github.com/taigrr/easel/pkg/render"
	"github.com/taigrr/easel/pkg/scene"
	"github.com/taigrr/easel/pkg/sketch"
	"github.com/taigrr/easel/pkg/tween"
	"github.com/taigrr/easel/pkg/viewport"
)

const (
	zoomStep  = 1.25
	panStep   = 40.0 // screen pixels per key press
	fitMargin = 16.0
	gridMinPx = 24.0
)

// hud is the text overlay drawn on top of the canvas.
type hud struct {
	title     string
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

func newHUD(title string) *hud {
	return &hud{title: title, fpsTime: time.Now()}
}

// updateFPS updates the FPS counter (call once per frame).
func (h *hud) updateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// ink picks a stroke color that contrasts with the background.
func ink(bg color.RGBA) color.RGBA {
	if int(bg.R)+int(bg.G)+int(bg.B) > 382 {
		return render.RGB(30, 30, 30)
	}
	return render.RGB(225, 225, 225)
}

func runView(path string) error {
	doc, err := sketch.LoadFile(path)
	if err != nil {
		return err
	}
	root, err := doc.Build()
	if err != nil {
		return err
	}
	bg, err := doc.BackgroundColor()
	if err != nil {
		return err
	}

	ap := ansipixels.NewAnsiPixels(targetFPS)
	if err = ap.Open(); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer func() {
		ap.ShowCursor()
		ap.MouseTrackingOff()
		ap.Out.Flush()
		ap.Restore()
	}()
	ap.SyncBackgroundColor()
	ap.MouseTrackingOn()
	ap.HideCursor()

	// 2x height for half-block characters
	canvas := render.NewCanvas(ap.W, ap.H*2)
	canvas.BG = render.FromColorful(bg)

	fps := int(math.Round(targetFPS))
	v := &sketchViewer{
		ap:       ap,
		root:     root,
		docBox:   geom.NewBox(0, 0, doc.Width, doc.Height),
		shapes:   root.Count() - 1,
		canvas:   canvas,
		rend:     render.NewRenderer(canvas),
		vp:       viewport.New(float64(ap.W), float64(ap.H*2)),
		center:   tween.NewVec2Spring(fps, 7, 1),
		zoom:     tween.NewSpring(fps, 7, 1),
		showGrid: startGrid,
		showHUD:  true,
		hud:      newHUD(filepath.Base(path)),
	}
	v.fit(true)

	ap.OnMouse = v.onMouse
	ap.OnResize = func() error {
		v.canvas.Resize(ap.W, ap.H*2)
		v.vp.Resize(float64(ap.W), float64(ap.H*2))
		return nil
	}
	if err := ap.FPSTicks(v.frame); err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	return nil
}

type sketchViewer struct {
	ap     *ansipixels.AnsiPixels
	root   *scene.Node
	docBox geom.Box
	shapes int

	canvas *render.Canvas
	rend   *render.Renderer
	vp     *viewport.Viewport

	center *tween.Vec2Spring
	zoom   *tween.Spring

	showGrid bool
	showHUD  bool
	hud      *hud

	lastMx, lastMy int
}

// target returns a copy of the viewport at the spring targets, so pan
// and zoom math anchors where the view is heading, not where it is.
func (v *sketchViewer) target() viewport.Viewport {
	t := *v.vp
	t.Center = v.center.Target
	t.Zoom = v.zoom.Target
	return t
}

func (v *sketchViewer) setTargets(t viewport.Viewport) {
	v.center.Target = t.Center
	v.zoom.Target = t.Zoom
}

func (v *sketchViewer) panScreen(dx, dy float64) {
	t := v.target()
	t.Pan(math2d.V2(dx, dy))
	v.setTargets(t)
}

func (v *sketchViewer) zoomAt(sp math2d.Vec2, factor float64) {
	t := v.target()
	t.ZoomAt(sp, factor)
	v.setTargets(t)
}

// fit frames the document plus anything drawn outside it. With snap the
// springs jump there immediately instead of animating.
func (v *sketchViewer) fit(snap bool) {
	box := v.docBox
	if wb := v.root.WorldBounds(); wb.IsValid() {
		box = box.Union(wb)
	}
	t := v.target()
	t.FitBounds(box, fitMargin)
	v.setTargets(t)
	if snap {
		v.center.Snap(t.Center)
		v.zoom.Snap(t.Zoom)
	}
}

func (v *sketchViewer) onMouse() {
	px := float64(v.ap.Mx)
	py := float64(v.ap.My * 2)
	switch {
	case v.ap.MouseWheelUp():
		v.zoomAt(math2d.V2(px, py), zoomStep)
	case v.ap.MouseWheelDown():
		v.zoomAt(math2d.V2(px, py), 1/zoomStep)
	case v.ap.LeftDrag():
		dx := float64(v.ap.Mx - v.lastMx)
		dy := float64(v.ap.My-v.lastMy) * 2 // cell rows are two pixels tall
		v.panScreen(-dx, -dy)
	}
	v.lastMx, v.lastMy = v.ap.Mx, v.ap.My
}

func (v *sketchViewer) handleKeys() bool {
	data := v.ap.Data
	for i := 0; i < len(data); i++ {
		b := data[i]
		// Arrow keys arrive as CSI sequences; consume them whole so the
		// leading byte is not mistaken for a bare Esc.
		if b == 27 && i+2 < len(data) && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				v.panScreen(0, -panStep)
			case 'B':
				v.panScreen(0, panStep)
			case 'C':
				v.panScreen(panStep, 0)
			case 'D':
				v.panScreen(-panStep, 0)
			}
			i += 2
			continue
		}
		switch b {
		case 'w', 'W':
			v.panScreen(0, -panStep)
		case 's', 'S':
			v.panScreen(0, panStep)
		case 'a', 'A':
			v.panScreen(-panStep, 0)
		case 'd', 'D':
			v.panScreen(panStep, 0)
		case '+', '=':
			v.zoomAt(math2d.V2(v.vp.Width/2, v.vp.Height/2), zoomStep)
		case '-', '_':
			v.zoomAt(math2d.V2(v.vp.Width/2, v.vp.Height/2), 1/zoomStep)
		case 'f', 'F':
			v.fit(false)
		case 'g', 'G':
			v.showGrid = !v.showGrid
		case '?':
			v.showHUD = !v.showHUD
		case 'q', 'Q', 27: // Esc
			return false
		case 3, 4: // Ctrl-C, Ctrl-D
			return false
		}
	}
	return true
}

func (v *sketchViewer) frame() bool {
	if !v.handleKeys() {
		return false
	}

	v.vp.Center = v.center.Update()
	v.vp.Zoom = v.zoom.Update()

	v.canvas.Clear()
	if v.showGrid {
		v.rend.DrawGrid(v.vp, gridMinPx, render.RGB(128, 128, 128), 0.4)
	}
	v.drawDocBorder()
	v.rend.RenderScene(v.root, v.vp)

	v.ap.ClearScreen()
	if err := v.ap.ShowScaledImage(v.canvas.ToImage()); err != nil {
		log.Errf("show image: %v", err)
		return false
	}
	v.hud.updateFPS()
	if v.showHUD {
		v.drawHUD()
	}
	return true
}

func (v *sketchViewer) drawDocBorder() {
	m := v.vp.WorldToScreen()
	c := v.docBox.Corners()
	pts := []math2d.Vec2{
		m.TransformPoint(c[0]), m.TransformPoint(c[1]),
		m.TransformPoint(c[2]), m.TransformPoint(c[3]),
	}
	v.canvas.DrawPolyline(pts, true, render.RGB(128, 128, 128), 0.6)
}

func (v *sketchViewer) drawHUD() {
	ap := v.ap

	// Top: FPS, filename, zoom level
	ap.WriteAt(0, 0, tcolor.Green.Foreground()+"%.0f FPS "+tcolor.Reset, v.hud.fps)
	ap.WriteCentered(0, "%s", v.hud.title)
	ap.WriteRight(0, tcolor.Cyan.Foreground()+"%.0f%%"+tcolor.Reset, v.vp.Zoom*100)

	// Bottom: grid indicator, shape count, cursor position in
	// document coordinates
	check := "[ ]"
	if v.showGrid {
		check = "[✓]"
	}
	ap.WriteAt(0, ap.H-1, "%s Grid  %d shapes", check, v.shapes)
	w := v.vp.ToWorld(math2d.V2(float64(ap.Mx), float64(ap.My*2)))
	ap.WriteRight(ap.H-1, tcolor.Yellow.Foreground()+"%.1f, %.1f"+tcolor.Reset, w.X, w.Y)
}
