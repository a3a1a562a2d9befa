// Package geom provides general functions involving points in 2D
// space. Angles passed to these functions are in radians unless noted
// otherwise; drawing-level APIs generally speak degrees and convert
// with Rad and Deg.
package geom

import (
	"math"
	"math/rand"
)

// Point is a location in 2D space.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Deg converts radians to degrees.
func Deg(rad float64) float64 { return rad * 180 / math.Pi }

// Endpoint returns the point at the given distance from start in the
// direction angle.
func Endpoint(start Point, angle, distance float64) Point {
	return Point{
		X: start.X + math.Cos(angle)*distance,
		Y: start.Y + math.Sin(angle)*distance,
	}
}

// MoveToward returns the point at the given distance from start in the
// direction of target.
func MoveToward(start, target Point, distance float64) Point {
	angle := math.Atan2(target.Y-start.Y, target.X-start.X)
	return Endpoint(start, angle, distance)
}

// RotateAndMove rotates ref around start and then moves the given
// distance from start in the resulting direction.
func RotateAndMove(start, ref Point, angle, distance float64) Point {
	x := Rotated(ref, start, angle)
	return MoveToward(start, x, distance)
}

// Distance returns the distance between two points.
func Distance(p1, p2 Point) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}

// Direction returns the direction of p2 from p1 in degrees.
func Direction(p1, p2 Point) float64 {
	return Deg(math.Atan2(p2.Y-p1.Y, p2.X-p1.X))
}

// Midpoint returns the midpoint between two points.
func Midpoint(p1, p2 Point) Point {
	return Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
}

// AngleBetween returns the angle at p2 from segment p2->p1 to segment
// p2->p3. The angle can be negative.
func AngleBetween(p1, p2, p3 Point) float64 {
	dir1 := math.Atan2(p1.Y-p2.Y, p1.X-p2.X)
	dir2 := math.Atan2(p3.Y-p2.Y, p3.X-p2.X)
	return dir2 - dir1
}

// Translated returns point shifted by (dx, dy).
func Translated(p Point, dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rotated returns the location of p after rotating around pivot.
func Rotated(p, pivot Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: (p.X-pivot.X)*cos - (p.Y-pivot.Y)*sin + pivot.X,
		Y: (p.Y-pivot.Y)*cos + (p.X-pivot.X)*sin + pivot.Y,
	}
}

// Scaled returns p with coordinates scaled by (cx, cy).
func Scaled(p Point, cx, cy float64) Point {
	return Point{X: p.X * cx, Y: p.Y * cy}
}

// RandPointOnCircle returns a uniformly random point on the circle
// with center c and radius r.
func RandPointOnCircle(c Point, r float64) Point {
	return Endpoint(c, rand.Float64()*2*math.Pi, r)
}

// RandomWalk generates n values starting from start, each offset from
// the previous by up to maxStep in either direction and clamped to
// [min, max].
func RandomWalk(min, max, maxStep float64, n int, start float64) []float64 {
	out := make([]float64, n)
	v := start
	for i := range out {
		v += (rand.Float64()*2 - 1) * maxStep
		v = math.Max(min, math.Min(max, v))
		out[i] = v
	}
	return out
}

// Nearest returns the index of the point in points closest to p.
func Nearest(points []Point, p Point) int {
	best := 0
	bestDist := Distance(points[0], p)
	for i := 1; i < len(points); i++ {
		if d := Distance(points[i], p); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
