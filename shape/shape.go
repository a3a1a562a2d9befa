// Package shape defines the drawing model: dynamic points, styled
// shapes, groups with clipping, and operations over (nested)
// collections of shapes.
package shape

import (
	"image"
	"math/rand"

	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/param"
)

// Shape is a drawable object: a styled geometric shape, a Group, or a
// nested List.
type Shape interface {
	isShape()
}

// List is a collection of shapes, possibly nested. It is itself a
// Shape so collections can be grouped and transformed together.
type List []Shape

func (List) isShape() {}

// Polygon is a closed polygon shape.
type Polygon struct {
	Points []Pt
	Style  Style
}

func (*Polygon) isShape() {}

// Spline is a smooth curve through a sequence of points.
type Spline struct {
	Points []Pt
	// Smoothing is the distance to each control point relative to the
	// distance to the adjacent point, usually between zero and one.
	// Zero means the default of 0.3.
	Smoothing float64
	// Circular connects the ends of the spline smoothly.
	Circular bool
	Style    Style
}

func (*Spline) isShape() {}

// Line is a line or polyline shape.
type Line struct {
	Points []Pt
	Style  Style
}

func (*Line) isShape() {}

// NewLine returns a line from p1 to p2.
func NewLine(p1, p2 Pt) *Line {
	return &Line{Points: []Pt{p1, p2}}
}

// Circle is a circle shape.
type Circle struct {
	C     Pt
	R     param.Param
	Style Style
}

func (*Circle) isShape() {}

// Raster is a bitmap placed on the canvas with its lower-left corner
// at (X, Y). The image's first row is drawn at the bottom, matching
// the bottom-left origin of the canvas.
type Raster struct {
	Img  image.Image
	X, Y float64
}

func (*Raster) isShape() {}

// Filter is a drop-shadow filter applied to a group.
type Filter struct {
	Stdev    float64
	Darkness float64
}

// Group is a collection of shapes, usually with a clip restricting
// where the members are visible.
type Group struct {
	Members List
	Clip    List
	Filter  *Filter
}

func (*Group) isShape() {}

// Clipped returns members clipped to the given outline.
func Clipped(members List, clip ...Shape) *Group {
	return &Group{Members: members, Clip: clip}
}

// Rectangle returns a rectangular polygon covering bounds.
func Rectangle(b geom.Bounds) *Polygon {
	return &Polygon{Points: []Pt{
		XY(b.XMin, b.YMin),
		XY(b.XMax, b.YMin),
		XY(b.XMax, b.YMax),
		XY(b.XMin, b.YMax),
	}}
}

// Flatten returns the non-list shapes within a nested collection, in
// drawing order.
func Flatten(shapes List) []Shape {
	var out []Shape
	for _, s := range shapes {
		if l, ok := s.(List); ok {
			out = append(out, Flatten(l)...)
		} else {
			out = append(out, s)
		}
	}
	return out
}

// Shuffle randomly reorders a list of shapes in place, changing the
// order in which they are drawn.
func Shuffle(shapes List) {
	rand.Shuffle(len(shapes), func(i, j int) {
		shapes[i], shapes[j] = shapes[j], shapes[i]
	})
}

// ReorderOutToIn sorts shapes so that those closer to center are drawn
// on top of those further away. Distance is determined by the furthest
// corner of each bounding box so that smaller objects tend to end up
// on top of larger ones that surround them.
func ReorderOutToIn(shapes List, center geom.Point) {
	key := func(s Shape) float64 {
		b := BoundingBox(s)
		d := geom.Distance(center, geom.Pt(b.XMin, b.YMin))
		for _, c := range []geom.Point{
			geom.Pt(b.XMin, b.YMax), geom.Pt(b.XMax, b.YMin), geom.Pt(b.XMax, b.YMax),
		} {
			if dc := geom.Distance(center, c); dc > d {
				d = dc
			}
		}
		return d
	}
	// Insertion sort keeps ties in drawing order.
	for i := 1; i < len(shapes); i++ {
		for j := i; j > 0 && key(shapes[j]) > key(shapes[j-1]); j-- {
			shapes[j], shapes[j-1] = shapes[j-1], shapes[j]
		}
	}
}

// Background inserts a filled rectangle covering the group's clip (plus
// a margin) at the beginning of its members.
func Background(g *Group, fill Pattern) {
	b := BoundingBox(g.Clip).AddMargin(10)
	bg := Rectangle(b)
	bg.Style.Fill = fill
	g.Members = append(List{bg}, g.Members...)
}

// Tint appends a translucent rectangle over the group's clip region.
func Tint(g *Group, fill Pattern, opacity float64) {
	b := BoundingBox(g.Clip).AddMargin(10)
	tint := Rectangle(b)
	tint.Style.Fill = fill
	tint.Style.Opacity = param.Num(opacity)
	g.Members = append(g.Members, tint)
}
