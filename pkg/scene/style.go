package scene

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Style describes how a node's shape is painted. The Has flags
// distinguish "not set" from "painted black"; colorful's zero value is
// black.
type Style struct {
	Stroke      colorful.Color
	Fill        colorful.Color
	HasStroke   bool
	HasFill     bool
	StrokeWidth float64
}

// DefaultStyle returns a one-pixel black stroke with no fill.
func DefaultStyle() Style {
	return Style{HasStroke: true, StrokeWidth: 1}
}

// WithStroke returns a copy of the style with the stroke set.
func (s Style) WithStroke(c colorful.Color, width float64) Style {
	s.Stroke = c
	s.HasStroke = true
	s.StrokeWidth = width
	return s
}

// WithFill returns a copy of the style with the fill set.
func (s Style) WithFill(c colorful.Color) Style {
	s.Fill = c
	s.HasFill = true
	return s
}

// WithoutStroke returns a copy of the style with the stroke cleared.
func (s Style) WithoutStroke() Style {
	s.HasStroke = false
	return s
}
