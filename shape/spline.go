package shape

import (
	"math"

	"github.com/daniel-munro/algoraphics/geom"
)

// DefaultSmoothing is the control-point distance used by splines when
// none is specified.
const DefaultSmoothing = 0.3

// CubicSegment is one cubic Bezier segment of a spline path. Smooth
// marks segments whose first control point is the reflection of the
// previous segment's second control point, so writers can emit a
// shorthand command.
type CubicSegment struct {
	C1, C2, To geom.Point
	Smooth     bool
}

// CubicPath converts a point sequence into the cubic Bezier segments
// of a smooth curve through the points. smoothing gives the distance
// to each control point relative to the distance to the adjacent
// point; zero means DefaultSmoothing. If circular, the ends of the
// curve connect smoothly.
func CubicPath(points []geom.Point, smoothing float64, circular bool) (start geom.Point, segs []CubicSegment) {
	if smoothing == 0 {
		smoothing = DefaultSmoothing
	}
	var ext []geom.Point
	if circular {
		ext = append(append([]geom.Point{points[len(points)-1]}, points...),
			points[0], points[1])
	} else {
		// Reasonable control points at the open ends.
		p0 := geom.Rotated(points[1], points[0], math.Pi)
		pLast := geom.Rotated(points[len(points)-2], points[len(points)-1], math.Pi)
		ext = append(append([]geom.Point{p0}, points...), pLast)
	}

	ctrl := func(at, from, to geom.Point) geom.Point {
		angle := math.Atan2(to.Y-from.Y, to.X-from.X)
		return geom.Endpoint(at, angle, smoothing*geom.Distance(from, to))
	}

	start = ext[1]
	c1 := ctrl(ext[1], ext[0], ext[2])
	c2 := ctrl(ext[2], ext[3], ext[1])
	segs = append(segs, CubicSegment{C1: c1, C2: c2, To: ext[2]})
	for i := 3; i < len(ext)-1; i++ {
		// Reflect the previous control point for a smooth joint.
		prev := segs[len(segs)-1]
		c1 = geom.Rotated(prev.C2, prev.To, math.Pi)
		c2 = ctrl(ext[i], ext[i+1], ext[i-1])
		segs = append(segs, CubicSegment{C1: c1, C2: c2, To: ext[i], Smooth: true})
	}
	return start, segs
}
