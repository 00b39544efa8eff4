package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"fortio.org/terminal/ansipixels/tcolor"

	"github.com/taigrr/easel/pkg/math2d"
	"github.com/taigrr/easel/pkg/render"
	"github.com/taigrr/easel/pkg/trace"
	"github.com/taigrr/easel/pkg/tween"
	"github.com/taigrr/easel/pkg/viewport"
)

const orbitStep = math.Pi / 24 // radians per key press

func traceOptions() trace.Options {
	opts := trace.DefaultOptions()
	opts.CreaseAngle = traceCrease * math.Pi / 180
	opts.Silhouette = !traceNoSil
	opts.SimplifyTol = traceSimplify
	return opts
}

func runTrace(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	mesh, err := loadModel(path, ext)
	if err != nil {
		return err
	}
	if mesh.TriangleCount() == 0 {
		return fmt.Errorf("%s has no triangles", filepath.Base(path))
	}
	mesh.FitUnit()

	if traceOut != "" {
		return tracePNG(mesh)
	}
	return traceInteractive(mesh, filepath.Base(path))
}

func tracePNG(mesh *trace.Mesh) error {
	proj := trace.Project(mesh, traceYaw*math.Pi/180, tracePitch*math.Pi/180, traceOptions())
	if len(proj.Segments) == 0 {
		return errors.New("projection produced no edges, try a lower --crease")
	}

	// Size the image to the projection's aspect ratio, longest side
	// traceSize pixels.
	b := proj.Bounds
	w, h := traceSize, traceSize
	if b.Width() > 0 && b.Height() > 0 {
		if b.Width() >= b.Height() {
			h = max(1, int(float64(traceSize)*b.Height()/b.Width()+0.5))
		} else {
			w = max(1, int(float64(traceSize)*b.Width()/b.Height()+0.5))
		}
	}
	canvas := render.NewCanvas(w, h)
	vp := viewport.New(float64(w), float64(h))
	vp.FitBounds(b, float64(traceSize)/24)

	m := vp.WorldToScreen()
	col := render.RGB(25, 25, 25)
	for _, s := range proj.Segments {
		canvas.DrawSegment(s.Transform(m), col, 1)
	}
	if err := canvas.SavePNG(traceOut); err != nil {
		return err
	}
	log.Infof("Wrote %s (%dx%d, %d segments)", traceOut, w, h, len(proj.Segments))
	return nil
}

type modelViewer struct {
	ap   *ansipixels.AnsiPixels
	mesh *trace.Mesh
	opts trace.Options

	canvas *render.Canvas
	vp     *viewport.Viewport

	yaw   *tween.Spring
	pitch *tween.Spring

	proj    *trace.Projection
	fitNext bool

	col     color.RGBA
	showHUD bool
	hud     *hud

	lastMx, lastMy int
}

func traceInteractive(mesh *trace.Mesh, title string) error {
	ap := ansipixels.NewAnsiPixels(targetFPS)
	if err := ap.Open(); err != nil {
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

	canvas := render.NewCanvas(ap.W, ap.H*2)
	canvas.BG = color.RGBA{ap.Background.R, ap.Background.G, ap.Background.B, 255}

	fps := int(math.Round(targetFPS))
	v := &modelViewer{
		ap:      ap,
		mesh:    mesh,
		opts:    traceOptions(),
		canvas:  canvas,
		vp:      viewport.New(float64(ap.W), float64(ap.H*2)),
		yaw:     tween.NewSpring(fps, 5, 1),
		pitch:   tween.NewSpring(fps, 5, 1),
		fitNext: true,
		col:     ink(canvas.BG),
		showHUD: true,
		hud:     newHUD(title),
	}
	v.yaw.Snap(traceYaw * math.Pi / 180)
	v.pitch.Snap(tracePitch * math.Pi / 180)

	ap.OnMouse = v.onMouse
	ap.OnResize = func() error {
		v.canvas.Resize(ap.W, ap.H*2)
		v.vp.Resize(float64(ap.W), float64(ap.H*2))
		v.fitNext = true
		return nil
	}
	if err := ap.FPSTicks(v.frame); err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	return nil
}

func (v *modelViewer) onMouse() {
	switch {
	case v.ap.MouseWheelUp():
		v.vp.ZoomAt(math2d.V2(float64(v.ap.Mx), float64(v.ap.My*2)), zoomStep)
	case v.ap.MouseWheelDown():
		v.vp.ZoomAt(math2d.V2(float64(v.ap.Mx), float64(v.ap.My*2)), 1/zoomStep)
	case v.ap.LeftDrag():
		dx := float64(v.ap.Mx - v.lastMx)
		dy := float64(v.ap.My - v.lastMy)
		v.yaw.Target += dx * 0.03
		v.pitch.Target += dy * 0.03
	}
	v.lastMx, v.lastMy = v.ap.Mx, v.ap.My
}

func (v *modelViewer) handleKeys() bool {
	data := v.ap.Data
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b == 27 && i+2 < len(data) && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				v.pitch.Target -= orbitStep
			case 'B':
				v.pitch.Target += orbitStep
			case 'C':
				v.yaw.Target += orbitStep
			case 'D':
				v.yaw.Target -= orbitStep
			}
			i += 2
			continue
		}
		switch b {
		case 'w', 'W':
			v.pitch.Target -= orbitStep
		case 's', 'S':
			v.pitch.Target += orbitStep
		case 'a', 'A':
			v.yaw.Target -= orbitStep
		case 'd', 'D':
			v.yaw.Target += orbitStep
		case '+', '=':
			v.vp.ZoomAt(math2d.V2(v.vp.Width/2, v.vp.Height/2), zoomStep)
		case '-', '_':
			v.vp.ZoomAt(math2d.V2(v.vp.Width/2, v.vp.Height/2), 1/zoomStep)
		case 'f', 'F':
			v.fitNext = true
		case 'r', 'R':
			v.yaw.Target = traceYaw * math.Pi / 180
			v.pitch.Target = tracePitch * math.Pi / 180
			v.fitNext = true
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

func (v *modelViewer) frame() bool {
	if !v.handleKeys() {
		return false
	}

	// Only reproject while the view is actually turning.
	moving := !v.yaw.AtRest(1e-5) || !v.pitch.AtRest(1e-5)
	yaw := v.yaw.Update()
	pitch := v.pitch.Update()
	if v.proj == nil || moving {
		p := trace.Project(v.mesh, yaw, pitch, v.opts)
		v.proj = &p
	}
	if v.fitNext {
		v.vp.FitBounds(v.proj.Bounds, fitMargin)
		v.fitNext = false
	}

	v.canvas.Clear()
	m := v.vp.WorldToScreen()
	for _, s := range v.proj.Segments {
		v.canvas.DrawSegment(s.Transform(m), v.col, 1)
	}

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

func (v *modelViewer) drawHUD() {
	ap := v.ap
	ap.WriteAt(0, 0, tcolor.Green.Foreground()+"%.0f FPS "+tcolor.Reset, v.hud.fps)
	ap.WriteCentered(0, "%s", v.hud.title)
	ap.WriteRight(0, tcolor.Cyan.Foreground()+"%d lines"+tcolor.Reset, len(v.proj.Segments))
	ap.WriteAt(0, ap.H-1, "yaw %.0f°  pitch %.0f°", v.yaw.Position*180/math.Pi, v.pitch.Position*180/math.Pi)
	ap.WriteRight(ap.H-1, tcolor.Yellow.Foreground()+"%d tris"+tcolor.Reset, v.mesh.TriangleCount())
}
