package sketch

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/taigrr/easel/pkg/geom"
	"github.com/taigrr/easel/pkg/math2d"
	"github.com/taigrr/easel/pkg/scene"
)

// Build turns the document into a scene tree. The root node carries the
// document name; each shape definition becomes one child node.
func (d *Document) Build() (*scene.Node, error) {
	name := d.Name
	if name == "" {
		name = "sketch"
	}
	root := scene.NewNode(name)
	for i := range d.Shapes {
		child, err := buildNode(&d.Shapes[i])
		if err != nil {
			return nil, err
		}
		root.AddChild(child)
	}
	return root, nil
}

func buildNode(def *ShapeDef) (*scene.Node, error) {
	shape, err := buildShape(def)
	if err != nil {
		return nil, err
	}

	n := scene.NewShapeNode(defName(def), shape)
	n.SetLocal(buildTransform(def))
	n.Visible = !def.Hidden
	if def.Opacity != nil {
		n.Opacity = *def.Opacity
	}
	if n.Style, err = buildStyle(def); err != nil {
		return nil, err
	}

	for i := range def.Children {
		child, err := buildNode(&def.Children[i])
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func defName(def *ShapeDef) string {
	if def.Name != "" {
		return def.Name
	}
	return def.Type
}

func buildShape(def *ShapeDef) (scene.Shape, error) {
	switch def.Type {
	case "group":
		return nil, nil
	case "rect":
		return geom.BoxFromCorners(math2d.V2(def.X, def.Y), math2d.V2(def.X+def.W, def.Y+def.H)), nil
	case "circle":
		if def.R <= 0 {
			return nil, fmt.Errorf("shape %q: circle needs a positive radius", defName(def))
		}
		return geom.NewCircle(math2d.V2(def.CX, def.CY), def.R), nil
	case "ellipse":
		if def.W <= 0 || def.H <= 0 {
			return nil, fmt.Errorf("shape %q: ellipse needs a positive width and height", defName(def))
		}
		center := math2d.V2(def.X+def.W/2, def.Y+def.H/2)
		return geom.NewEllipse(center, def.W/2, def.H/2), nil
	case "polygon":
		if len(def.Points) < 3 {
			return nil, fmt.Errorf("shape %q: polygon needs at least 3 points, got %d", defName(def), len(def.Points))
		}
		pts := make([]math2d.Vec2, len(def.Points))
		for i, p := range def.Points {
			pts[i] = math2d.V2(p[0], p[1])
		}
		return geom.NewPolygon(pts...), nil
	case "regular":
		if def.Sides < 3 {
			return nil, fmt.Errorf("shape %q: regular polygon needs at least 3 sides, got %d", defName(def), def.Sides)
		}
		if def.R <= 0 {
			return nil, fmt.Errorf("shape %q: regular polygon needs a positive radius", defName(def))
		}
		return geom.RegularPolygon(math2d.V2(def.CX, def.CY), def.R, def.Sides), nil
	case "line":
		width := def.StrokeWidth
		if width <= 0 {
			width = 1
		}
		return scene.NewLine(math2d.V2(def.X1, def.Y1), math2d.V2(def.X2, def.Y2), width/2), nil
	default:
		return nil, fmt.Errorf("unknown shape type: %q", def.Type)
	}
}

func buildTransform(def *ShapeDef) math2d.Mat3 {
	m := math2d.Identity()
	if def.Translate != nil {
		m = m.Translate(def.Translate[0], def.Translate[1])
	}
	if def.Rotate != 0 {
		m = m.Rotate(def.Rotate * math.Pi / 180)
	}
	if def.Scale != nil {
		m = m.Scale(def.Scale[0], def.Scale[1])
	}
	return m
}

func buildStyle(def *ShapeDef) (scene.Style, error) {
	s := scene.DefaultStyle()
	if def.StrokeWidth > 0 {
		s.StrokeWidth = def.StrokeWidth
	}
	switch def.Stroke {
	case "":
	case "none":
		s = s.WithoutStroke()
	default:
		c, err := colorful.Hex(def.Stroke)
		if err != nil {
			return s, fmt.Errorf("shape %q: bad stroke color %q: %w", defName(def), def.Stroke, err)
		}
		s = s.WithStroke(c, s.StrokeWidth)
	}
	if def.Fill != "" && def.Fill != "none" {
		c, err := colorful.Hex(def.Fill)
		if err != nil {
			return s, fmt.Errorf("shape %q: bad fill color %q: %w", defName(def), def.Fill, err)
		}
		s = s.WithFill(c)
	}
	return s, nil
}

// BackgroundColor returns the parsed background, or white when unset.
func (d *Document) BackgroundColor() (colorful.Color, error) {
	if d.Background == "" {
		return colorful.Color{R: 1, G: 1, B: 1}, nil
	}
	c, err := colorful.Hex(d.Background)
	if err != nil {
		return c, fmt.Errorf("bad background color %q: %w", d.Background, err)
	}
	return c, nil
}
