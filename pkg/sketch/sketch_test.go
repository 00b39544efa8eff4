package sketch

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/easel/pkg/geom"
	"github.com/taigrr/easel/pkg/math2d"
	"github.com/taigrr/easel/pkg/scene"
)

const demoYAML = `
name: demo
width: 400
height: 300
background: "#202020"
shapes:
  - type: rect
    name: floor
    x: 0
    y: 0
    w: 100
    h: 20
    fill: "#ff0000"
  - type: circle
    cx: 50
    cy: 50
    r: 10
    translate: [10, 0]
  - type: group
    name: widgets
    rotate: 90
    children:
      - type: line
        x1: 0
        y1: 0
        x2: 10
        y2: 0
        strokeWidth: 2
`

func TestLoadYAMLAndBuild(t *testing.T) {
	doc, err := LoadYAML(strings.NewReader(demoYAML))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if doc.Width != 400 || doc.Height != 300 {
		t.Errorf("canvas = %vx%v, want 400x300", doc.Width, doc.Height)
	}

	root, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if root.Name != "demo" {
		t.Errorf("root name = %q, want demo", root.Name)
	}
	if got := root.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}

	floor := root.FindByName("floor")
	if floor == nil {
		t.Fatal("floor node missing")
	}
	box, ok := floor.Shape.(geom.Box)
	if !ok {
		t.Fatalf("floor shape is %T, want geom.Box", floor.Shape)
	}
	if box.Width() != 100 || box.Height() != 20 {
		t.Errorf("floor box = %vx%v, want 100x20", box.Width(), box.Height())
	}
	if !floor.Style.HasFill || floor.Style.Fill.Hex() != "#ff0000" {
		t.Errorf("floor fill = %+v, want #ff0000", floor.Style)
	}

	circle := root.FindByName("circle")
	if circle == nil {
		t.Fatal("circle node missing")
	}
	// The translate attribute moves the circle's local frame.
	got := circle.World().TransformPoint(math2d.V2(50, 50))
	if !got.Equals(math2d.V2(60, 50)) {
		t.Errorf("circle center in world = %v, want (60,50)", got)
	}

	line := root.FindByName("line")
	if line == nil {
		t.Fatal("line node missing")
	}
	l, ok := line.Shape.(scene.Line)
	if !ok {
		t.Fatalf("line shape is %T, want scene.Line", line.Shape)
	}
	if l.Tolerance != 1 {
		t.Errorf("line tolerance = %v, want 1 (half the stroke width)", l.Tolerance)
	}
	// The group's 90 degree rotation turns (10,0) into (0,10).
	end := line.World().TransformPoint(math2d.V2(10, 0))
	if !end.Equals(math2d.V2(0, 10)) {
		t.Errorf("rotated line end = %v, want (0,10)", end)
	}

	bg, err := doc.BackgroundColor()
	if err != nil {
		t.Fatalf("BackgroundColor: %v", err)
	}
	if bg.Hex() != "#202020" {
		t.Errorf("background = %s, want #202020", bg.Hex())
	}
}

func TestLoadJSON(t *testing.T) {
	const src = `{"width": 100, "height": 100, "shapes": [{"type": "circle", "cx": 5, "cy": 5, "r": 2}]}`
	doc, err := LoadJSON(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	root, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := root.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			"unknown type",
			`shapes: [{type: blob}]`,
			"unknown shape type",
		},
		{
			"bad color",
			`shapes: [{type: rect, w: 1, h: 1, fill: "red"}]`,
			"bad fill color",
		},
		{
			"bad stroke",
			`shapes: [{type: rect, w: 1, h: 1, stroke: "#zzz"}]`,
			"bad stroke color",
		},
		{
			"too few points",
			`shapes: [{type: polygon, points: [[0, 0], [1, 1]]}]`,
			"at least 3 points",
		},
		{
			"flat circle",
			`shapes: [{type: circle, r: 0}]`,
			"positive radius",
		},
		{
			"two-sided regular",
			`shapes: [{type: regular, r: 5, sides: 2}]`,
			"at least 3 sides",
		},
		{
			"nested error surfaces",
			`shapes: [{type: group, children: [{type: blob}]}]`,
			"unknown shape type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := LoadYAML(strings.NewReader(tt.yaml))
			if err != nil {
				t.Fatalf("LoadYAML: %v", err)
			}
			_, err = doc.Build()
			if err == nil {
				t.Fatal("Build succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	doc, err := LoadYAML(strings.NewReader(`shapes: []`))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if doc.Width != 800 || doc.Height != 600 {
		t.Errorf("default canvas = %vx%v, want 800x600", doc.Width, doc.Height)
	}
	bg, err := doc.BackgroundColor()
	if err != nil {
		t.Fatalf("BackgroundColor: %v", err)
	}
	if bg.Hex() != "#ffffff" {
		t.Errorf("default background = %s, want #ffffff", bg.Hex())
	}
	root, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if root.Name != "sketch" {
		t.Errorf("default root name = %q, want sketch", root.Name)
	}
}

func TestRoundTrip(t *testing.T) {
	doc, err := LoadYAML(strings.NewReader(demoYAML))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	root, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	out := FromScene(root, doc.Width, doc.Height)
	if len(out.Shapes) != 3 {
		t.Fatalf("exported %d shapes, want 3", len(out.Shapes))
	}
	for i, want := range []string{"rect", "circle", "group"} {
		if out.Shapes[i].Type != want {
			t.Errorf("shape[%d].Type = %q, want %q", i, out.Shapes[i].Type, want)
		}
	}
	if tr := out.Shapes[1].Translate; tr == nil || tr[0] != 10 || tr[1] != 0 {
		t.Errorf("circle translate = %v, want [10 0]", out.Shapes[1].Translate)
	}
	if out.Shapes[2].Rotate != 90 {
		t.Errorf("group rotate = %v, want 90", out.Shapes[2].Rotate)
	}
	if out.Shapes[0].Fill != "#ff0000" {
		t.Errorf("floor fill = %q, want #ff0000", out.Shapes[0].Fill)
	}

	// Writing and reloading builds an identical tree shape.
	var buf bytes.Buffer
	if err := out.SaveYAML(&buf); err != nil {
		t.Fatalf("SaveYAML: %v", err)
	}
	doc2, err := LoadYAML(&buf)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	root2, err := doc2.Build()
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if root2.Count() != root.Count() {
		t.Errorf("rebuilt count = %d, want %d", root2.Count(), root.Count())
	}
	b1, b2 := root.WorldBounds(), root2.WorldBounds()
	if !math2d.V2(b1.MinX, b1.MinY).EqualsEps(math2d.V2(b2.MinX, b2.MinY), 1e-6) ||
		!math2d.V2(b1.MaxX, b1.MaxY).EqualsEps(math2d.V2(b2.MaxX, b2.MaxY), 1e-6) {
		t.Errorf("rebuilt bounds %+v, want %+v", b2, b1)
	}
}

func TestSaveLoadFile(t *testing.T) {
	doc, err := LoadYAML(strings.NewReader(demoYAML))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}

	dir := t.TempDir()
	for _, name := range []string{"demo.yaml", "demo.json"} {
		path := filepath.Join(dir, name)
		if err := doc.SaveFile(path); err != nil {
			t.Fatalf("SaveFile(%s): %v", name, err)
		}
		got, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s): %v", name, err)
		}
		if got.Width != doc.Width || len(got.Shapes) != len(doc.Shapes) {
			t.Errorf("%s: reloaded %v/%d shapes, want %v/%d",
				name, got.Width, len(got.Shapes), doc.Width, len(doc.Shapes))
		}
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile on a missing file should fail")
	}
	if err := doc.SaveFile(filepath.Join(dir, "demo.txt")); err == nil {
		t.Error("SaveFile with an unknown extension should fail")
	}
}
