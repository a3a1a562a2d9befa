package shape

import (
	"math"
	"math/rand"

	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/param"
)

// outlineAt approximates a shape's footprint as a polygon at time t.
// Lines yield degenerate polygons, which is good enough for coverage
// and containment checks.
func outlineAt(s Shape, t int) []geom.Point {
	switch x := s.(type) {
	case *Polygon:
		return PointsAt(x.Points, t)
	case *Spline:
		return PointsAt(x.Points, t)
	case *Line:
		return PointsAt(x.Points, t)
	case *Circle:
		c := x.C.At(t)
		r := x.R.At(t)
		out := make([]geom.Point, 24)
		for i := range out {
			out[i] = geom.Endpoint(c, float64(i)/24*2*math.Pi, r)
		}
		return out
	case *Raster:
		b := x.Img.Bounds()
		return []geom.Point{
			geom.Pt(x.X, x.Y),
			geom.Pt(x.X+float64(b.Dx()), x.Y),
			geom.Pt(x.X+float64(b.Dx()), x.Y+float64(b.Dy())),
			geom.Pt(x.X, x.Y+float64(b.Dy())),
		}
	}
	return nil
}

// outlines collects the footprints of all non-group shapes in a
// collection, descending into group members and clips.
func outlines(s Shape, t int) [][]geom.Point {
	var out [][]geom.Point
	switch x := s.(type) {
	case List:
		for _, m := range x {
			out = append(out, outlines(m, t)...)
		}
	case *Group:
		if len(x.Clip) > 0 {
			out = append(out, outlines(x.Clip, t)...)
		} else {
			out = append(out, outlines(x.Members, t)...)
		}
	default:
		if o := outlineAt(s, t); o != nil {
			out = append(out, o)
		}
	}
	return out
}

// BoundingBox finds the bounding box of a shape or collection at t=0.
// For a clipped group only the clip matters.
func BoundingBox(s Shape) geom.Bounds {
	os := outlines(s, 0)
	b := geom.BoundsOf(os[0])
	for _, o := range os[1:] {
		b = b.Union(geom.BoundsOf(o))
	}
	return b
}

// RotatedBoundingBox finds the bounding box of a shape or collection
// in space rotated by angle degrees. Anything created using these
// coordinates must then be rotated by the same angle around the origin
// to be in the right place.
func RotatedBoundingBox(s Shape, angle float64) geom.Bounds {
	var b geom.Bounds
	first := true
	for _, o := range outlines(s, 0) {
		pts := append([]geom.Point{}, o...)
		geom.RotatePoints(pts, geom.Pt(0, 0), geom.Rad(-angle))
		if first {
			b = geom.BoundsOf(pts)
			first = false
		} else {
			b = b.Union(geom.BoundsOf(pts))
		}
	}
	return b
}

// Translate shifts the location of one or more shapes.
func Translate(s Shape, dx, dy float64) {
	eachGeometry(s, func(p Pt) Pt {
		return &Translation{Start: p, Offset: XY(dx, dy)}
	}, func(r param.Param) param.Param {
		return r
	})
}

// Rotate rotates one or more shapes around a pivot point. The angle is
// in degrees.
func Rotate(s Shape, angle float64, pivot geom.Point) {
	eachGeometry(s, func(p Pt) Pt {
		return &Rotation{Start: p, Pivot: P(pivot), Angle: param.Num(geom.Rad(angle))}
	}, func(r param.Param) param.Param {
		return r
	})
}

// Scale scales the coordinates of one or more shapes.
func Scale(s Shape, cx, cy float64) {
	abs := cx
	if abs < 0 {
		abs = -abs
	}
	eachGeometry(s, func(p Pt) Pt {
		return &Scaling{Start: p, Cx: param.Num(cx), Cy: param.Num(cy)}
	}, func(r param.Param) param.Param {
		return param.Scale(r, abs)
	})
}

// eachGeometry rewrites every point (and circle radius) in a nested
// collection, descending into group members and clips.
func eachGeometry(s Shape, pt func(Pt) Pt, radius func(param.Param) param.Param) {
	switch x := s.(type) {
	case List:
		for _, m := range x {
			eachGeometry(m, pt, radius)
		}
	case *Group:
		eachGeometry(x.Members, pt, radius)
		eachGeometry(x.Clip, pt, radius)
	case *Polygon:
		for i := range x.Points {
			x.Points[i] = pt(x.Points[i])
		}
	case *Spline:
		for i := range x.Points {
			x.Points[i] = pt(x.Points[i])
		}
	case *Line:
		for i := range x.Points {
			x.Points[i] = pt(x.Points[i])
		}
	case *Circle:
		x.C = pt(x.C)
		x.R = radius(x.R)
	case *Raster:
		p := pt(XY(x.X, x.Y)).At(0)
		x.X, x.Y = p.X, p.Y
	}
}

// Centroid finds the centroid of a shape at t=0.
func Centroid(s Shape) geom.Point {
	if c, ok := s.(*Circle); ok {
		return c.C.At(0)
	}
	return geom.PolygonCentroid(outlineAt(s, 0))
}

// SamplePointsIn samples n uniformly random points inside a shape.
func SamplePointsIn(s Shape, n int) []geom.Point {
	outline := outlineAt(s, 0)
	b := geom.BoundsOf(outline)
	points := make([]geom.Point, 0, n)
	for len(points) < n {
		p := geom.Pt(b.XMin+rand.Float64()*b.W(), b.YMin+rand.Float64()*b.H())
		if geom.ContainsPoint(outline, p) {
			points = append(points, p)
		}
	}
	return points
}

// KeepPointsInside returns the points that lie within a boundary given
// by one or more shapes.
func KeepPointsInside(points []geom.Point, boundary Shape) []geom.Point {
	bounds := outlines(boundary, 0)
	out := points[:0]
	for _, p := range points {
		for _, o := range bounds {
			if geom.ContainsPoint(o, p) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// KeepShapesInside removes shapes that lie entirely outside the
// boundary. A group's clip becomes the boundary for its members. Used
// to optimize output without altering the appearance.
func KeepShapesInside(shapes List, boundary Shape) List {
	bounds := outlines(boundary, 0)
	out := shapes[:0]
	for _, s := range shapes {
		switch x := s.(type) {
		case List:
			out = append(out, KeepShapesInside(x, boundary))
		case *Group:
			inner := boundary
			if len(x.Clip) > 0 {
				inner = x.Clip
			}
			x.Members = KeepShapesInside(x.Members, inner)
			out = append(out, x)
		default:
			keep := false
			for _, o := range outlines(s, 0) {
				for _, b := range bounds {
					if geom.PolygonsIntersect(b, o) {
						keep = true
						break
					}
				}
			}
			if keep {
				out = append(out, s)
			}
		}
	}
	return out
}

// RemoveHidden removes shapes that are entirely covered by shapes
// drawn over them, ignoring opacity. Used to optimize output when
// randomly placing objects to fill a region.
func RemoveHidden(shapes List) List {
	if len(outlines(shapes, 0)) == 0 {
		return shapes
	}
	cover := NewCover(BoundingBox(shapes).AddMargin(1), 200)
	var walk func(l List) List
	walk = func(l List) List {
		// Walk from topmost to bottom so the coverage of everything
		// drawn above each shape is known when it is tested.
		out := make(List, 0, len(l))
		for i := len(l) - 1; i >= 0; i-- {
			switch x := l[i].(type) {
			case List:
				if kept := walk(x); len(kept) > 0 {
					out = append(out, kept)
				}
			case *Group:
				if len(x.Clip) > 0 {
					x.Members = KeepShapesInside(x.Members, x.Clip)
				}
				x.Members = walk(x.Members)
				out = append(out, x)
			default:
				hidden := true
				for _, o := range outlines(l[i], 0) {
					if !cover.Covers(o) {
						hidden = false
					}
					cover.Add(o)
				}
				if !hidden {
					out = append(out, l[i])
				}
			}
		}
		// Restore drawing order.
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
		return out
	}
	return walk(shapes)
}
