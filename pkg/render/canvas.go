// Package render rasterizes scenes onto an RGBA pixel canvas: Bresenham
// strokes, even-odd polygon fills, grid overlays and PNG export.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// Canvas is a fixed-size RGBA pixel grid with a background color used
// by Clear.
type Canvas struct {
	Width, Height int
	BG            color.RGBA

	pix []color.RGBA
}

// NewCanvas returns a cleared canvas with a white background. Negative
// dimensions are clamped to zero.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{
		Width:  width,
		Height: height,
		BG:     RGB(255, 255, 255),
		pix:    make([]color.RGBA, width*height),
	}
	c.Clear()
	return c
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// FromColorful converts a style color to an opaque canvas pixel.
func FromColorful(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// InBounds reports whether (x, y) is a valid pixel coordinate.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// SetPixel writes one pixel. Out-of-bounds writes are ignored.
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	if !c.InBounds(x, y) {
		return
	}
	c.pix[y*c.Width+x] = col
}

// Pixel reads one pixel. Out-of-bounds reads return the background.
func (c *Canvas) Pixel(x, y int) color.RGBA {
	if !c.InBounds(x, y) {
		return c.BG
	}
	return c.pix[y*c.Width+x]
}

// BlendPixel source-over blends col onto the pixel with the given
// coverage alpha in [0,1]. Alpha 1 overwrites, alpha 0 is a no-op.
func (c *Canvas) BlendPixel(x, y int, col color.RGBA, alpha float64) {
	if !c.InBounds(x, y) || alpha <= 0 {
		return
	}
	if alpha >= 1 {
		c.pix[y*c.Width+x] = col
		return
	}
	dst := c.pix[y*c.Width+x]
	blend := func(s, d uint8) uint8 {
		return uint8(float64(s)*alpha + float64(d)*(1-alpha) + 0.5)
	}
	c.pix[y*c.Width+x] = color.RGBA{
		R: blend(col.R, dst.R),
		G: blend(col.G, dst.G),
		B: blend(col.B, dst.B),
		A: 255,
	}
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	for i := range c.pix {
		c.pix[i] = c.BG
	}
}

// Fill fills the canvas with a uniform color.
func (c *Canvas) Fill(col color.RGBA) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// Resize reallocates the canvas to a new size and clears it.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.Width = width
	c.Height = height
	c.pix = make([]color.RGBA, width*height)
	c.Clear()
}

// ToImage copies the canvas into a standard RGBA image.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.SetRGBA(x, y, c.pix[y*c.Width+x])
		}
	}
	return img
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, c.ToImage()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
