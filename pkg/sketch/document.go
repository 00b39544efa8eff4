// Package sketch reads and writes drawing documents: a declarative
// YAML or JSON shape tree that builds into a scene graph and back.
package sketch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a drawing: canvas metadata plus a
// nested shape tree.
type Document struct {
	Name       string     `json:"name,omitempty" yaml:"name,omitempty"`
	Width      float64    `json:"width" yaml:"width"`
	Height     float64    `json:"height" yaml:"height"`
	Background string     `json:"background,omitempty" yaml:"background,omitempty"`
	Shapes     []ShapeDef `json:"shapes" yaml:"shapes"`
}

// ShapeDef describes one node of the drawing. Type selects which
// geometry fields apply; Children nest arbitrarily under any type,
// "group" carries no geometry of its own.
type ShapeDef struct {
	Type string `json:"type" yaml:"type"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// rect and ellipse use X/Y/W/H; ellipse reads them as a bounding box.
	X float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y float64 `json:"y,omitempty" yaml:"y,omitempty"`
	W float64 `json:"w,omitempty" yaml:"w,omitempty"`
	H float64 `json:"h,omitempty" yaml:"h,omitempty"`

	// circle and regular polygons.
	CX    float64 `json:"cx,omitempty" yaml:"cx,omitempty"`
	CY    float64 `json:"cy,omitempty" yaml:"cy,omitempty"`
	R     float64 `json:"r,omitempty" yaml:"r,omitempty"`
	Sides int     `json:"sides,omitempty" yaml:"sides,omitempty"`

	// line endpoints.
	X1 float64 `json:"x1,omitempty" yaml:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty" yaml:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty" yaml:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty" yaml:"y2,omitempty"`

	// polygon vertices as [x, y] pairs.
	Points [][2]float64 `json:"points,omitempty" yaml:"points,omitempty"`

	// Transform, applied translate-rotate-scale. Rotation is in degrees.
	Translate *[2]float64 `json:"translate,omitempty" yaml:"translate,omitempty"`
	Rotate    float64     `json:"rotate,omitempty" yaml:"rotate,omitempty"`
	Scale     *[2]float64 `json:"scale,omitempty" yaml:"scale,omitempty"`

	// Paint. Colors are "#rrggbb" hex; the literal "none" clears the
	// stroke, which otherwise defaults to black.
	Stroke      string   `json:"stroke,omitempty" yaml:"stroke,omitempty"`
	Fill        string   `json:"fill,omitempty" yaml:"fill,omitempty"`
	StrokeWidth float64  `json:"strokeWidth,omitempty" yaml:"strokeWidth,omitempty"`
	Opacity     *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Hidden      bool     `json:"hidden,omitempty" yaml:"hidden,omitempty"`

	Children []ShapeDef `json:"children,omitempty" yaml:"children,omitempty"`
}

// LoadYAML decodes a document from YAML.
func LoadYAML(r io.Reader) (*Document, error) {
	var d Document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	d.applyDefaults()
	return &d, nil
}

// LoadJSON decodes a document from JSON.
func LoadJSON(r io.Reader) (*Document, error) {
	var d Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	d.applyDefaults()
	return &d, nil
}

// LoadFile reads a document, picking the format from the extension
// (.yaml, .yml or .json).
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".json":
		return LoadJSON(f)
	default:
		return nil, fmt.Errorf("unsupported document format: %s (use .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// SaveYAML encodes the document as YAML.
func (d *Document) SaveYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return enc.Close()
}

// SaveJSON encodes the document as indented JSON.
func (d *Document) SaveJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// SaveFile writes the document, picking the format from the extension.
func (d *Document) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return d.SaveYAML(f)
	case ".json":
		return d.SaveJSON(f)
	default:
		return fmt.Errorf("unsupported document format: %s (use .yaml, .yml or .json)", filepath.Ext(path))
	}
}

func (d *Document) applyDefaults() {
	if d.Width <= 0 {
		d.Width = 800
	}
	if d.Height <= 0 {
		d.Height = 600
	}
}
