package sketch

import (
	"math"

	"fortio.org/log"

	"github.com/taigrr/easel/pkg/geom"
	"github.com/taigrr/easel/pkg/scene"
)

// FromScene converts a scene tree back into a document. Shapes the
// document format cannot express (skewed transforms, rotated ellipse
// geometry) are flattened with a warning rather than failing.
func FromScene(root *scene.Node, width, height float64) *Document {
	doc := &Document{Name: root.Name, Width: width, Height: height}
	for _, c := range root.Children() {
		doc.Shapes = append(doc.Shapes, defFromNode(c))
	}
	return doc
}

func defFromNode(n *scene.Node) ShapeDef {
	def := ShapeDef{}
	defFromShape(n, &def)
	if n.Name != "" && n.Name != def.Type {
		def.Name = n.Name
	}

	dec := n.Local().Decompose()
	if dec.Translation.X != 0 || dec.Translation.Y != 0 {
		def.Translate = &[2]float64{round9(dec.Translation.X), round9(dec.Translation.Y)}
	}
	if deg := round9(dec.Rotation * 180 / math.Pi); deg != 0 {
		def.Rotate = deg
	}
	if sx, sy := round9(dec.Scale.X), round9(dec.Scale.Y); sx != 1 || sy != 1 {
		def.Scale = &[2]float64{sx, sy}
	}
	if math.Abs(dec.Skew) > 1e-9 {
		log.Warnf("node %q: skew %.4f rad cannot be written to a document, dropping", n.Name, dec.Skew)
	}

	if n.Style.HasStroke {
		def.Stroke = n.Style.Stroke.Hex()
		def.StrokeWidth = n.Style.StrokeWidth
	} else {
		def.Stroke = "none"
	}
	if n.Style.HasFill {
		def.Fill = n.Style.Fill.Hex()
	}
	if n.Opacity != 1 {
		o := n.Opacity
		def.Opacity = &o
	}
	def.Hidden = !n.Visible

	for _, c := range n.Children() {
		def.Children = append(def.Children, defFromNode(c))
	}
	return def
}

func defFromShape(n *scene.Node, def *ShapeDef) {
	switch s := n.Shape.(type) {
	case nil:
		def.Type = "group"
	case geom.Box:
		def.Type = "rect"
		def.X, def.Y = s.MinX, s.MinY
		def.W, def.H = s.Width(), s.Height()
	case geom.Circle:
		def.Type = "circle"
		def.CX, def.CY = s.Center.X, s.Center.Y
		def.R = s.Radius
	case geom.Ellipse:
		def.Type = "ellipse"
		def.X, def.Y = s.Center.X-s.RX, s.Center.Y-s.RY
		def.W, def.H = 2*s.RX, 2*s.RY
		if s.Rotation != 0 {
			log.Warnf("node %q: ellipse rotation %.4f rad cannot be written to a document, dropping", n.Name, s.Rotation)
		}
	case geom.Polygon:
		def.Type = "polygon"
		def.Points = make([][2]float64, len(s.Vertices))
		for i, p := range s.Vertices {
			def.Points[i] = [2]float64{p.X, p.Y}
		}
	case scene.Line:
		def.Type = "line"
		def.X1, def.Y1 = s.Seg.Start.X, s.Seg.Start.Y
		def.X2, def.Y2 = s.Seg.End.X, s.Seg.End.Y
	default:
		log.Warnf("node %q: shape %T cannot be written to a document, emitting a group", n.Name, s)
		def.Type = "group"
	}
}

// round9 trims float noise to nine decimals so written documents stay
// hand-editable.
func round9(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}
