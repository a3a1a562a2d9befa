// Package svg serializes shape collections as SVG documents.
package svg

import (
	"os"

	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/shape"
)

// Canvas is a rectangular space to be filled with graphics. The
// y-axis points up, with the origin at the bottom-left corner.
type Canvas struct {
	Width, Height float64
	// Background is the background color. Nil leaves the background
	// transparent.
	Background shape.Pattern
	// T is the timepoint rendered for dynamic shapes. It is advanced
	// by animation drivers.
	T int

	objects shape.List
}

// NewCanvas returns a canvas with a white background.
func NewCanvas(width, height float64) *Canvas {
	return &Canvas{Width: width, Height: height, Background: shape.Plain("white")}
}

// Add adds one or more shapes or collections to the canvas.
func (c *Canvas) Add(objects ...shape.Shape) {
	c.objects = append(c.objects, objects...)
}

// Clear removes all objects from the canvas.
func (c *Canvas) Clear() {
	c.objects = nil
}

// New clears the canvas and then adds one or more shapes.
func (c *Canvas) New(objects ...shape.Shape) {
	c.Clear()
	c.Add(objects...)
}

// Objects returns the objects on the canvas in drawing order,
// preceded by the background rectangle if there is one.
func (c *Canvas) Objects() shape.List {
	if c.Background == nil {
		return c.objects
	}
	bg := shape.Rectangle(geom.Bounds{
		XMin: -1, YMin: -1, XMax: c.Width + 1, YMax: c.Height + 1,
	})
	bg.Style.Fill = c.Background
	return append(shape.List{bg}, c.objects...)
}

// Bounds returns the canvas extent.
func (c *Canvas) Bounds() geom.Bounds {
	return geom.Bounds{XMax: c.Width, YMax: c.Height}
}

// SVG returns the SVG representation of the canvas.
func (c *Canvas) SVG() string {
	return String(c.Objects(), c.Width, c.Height, c.T)
}

// WriteSVG writes the canvas to an SVG file.
func (c *Canvas) WriteSVG(path string) error {
	return os.WriteFile(path, []byte(c.SVG()), 0o644)
}
