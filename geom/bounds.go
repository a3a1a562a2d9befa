package geom

// Bounds is an axis-aligned bounding box, such as a canvas viewport or
// a shape extent.
type Bounds struct {
	XMin, YMin, XMax, YMax float64
}

// W returns the width of the bounds.
func (b Bounds) W() float64 { return b.XMax - b.XMin }

// H returns the height of the bounds.
func (b Bounds) H() float64 { return b.YMax - b.YMin }

// Center returns the center point of the bounds.
func (b Bounds) Center() Point {
	return Point{X: (b.XMin + b.XMax) / 2, Y: (b.YMin + b.YMax) / 2}
}

// AddMargin widens the bounds by margin on all sides. A convenience
// used when generating objects to avoid artifacts at the edges of a
// region or canvas.
func (b Bounds) AddMargin(margin float64) Bounds {
	return Bounds{
		XMin: b.XMin - margin,
		YMin: b.YMin - margin,
		XMax: b.XMax + margin,
		YMax: b.YMax + margin,
	}
}

// Union returns the smallest bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if o.XMin < b.XMin {
		b.XMin = o.XMin
	}
	if o.YMin < b.YMin {
		b.YMin = o.YMin
	}
	if o.XMax > b.XMax {
		b.XMax = o.XMax
	}
	if o.YMax > b.YMax {
		b.YMax = o.YMax
	}
	return b
}

// Contains reports whether p lies within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// BoundsOf returns the bounding box of a set of points.
func BoundsOf(points []Point) Bounds {
	b := Bounds{XMin: points[0].X, YMin: points[0].Y, XMax: points[0].X, YMax: points[0].Y}
	for _, p := range points[1:] {
		b = b.Union(Bounds{XMin: p.X, YMin: p.Y, XMax: p.X, YMax: p.Y})
	}
	return b
}
