package geom

import (
	"math"
	"math/rand"
)

// TranslatePoints shifts every point in place.
func TranslatePoints(points []Point, dx, dy float64) {
	for i := range points {
		points[i] = Translated(points[i], dx, dy)
	}
}

// RotatePoints rotates every point around pivot in place.
func RotatePoints(points []Point, pivot Point, angle float64) {
	for i := range points {
		points[i] = Rotated(points[i], pivot, angle)
	}
}

// ScalePoints scales the coordinates of every point in place.
func ScalePoints(points []Point, cx, cy float64) {
	for i := range points {
		points[i] = Scaled(points[i], cx, cy)
	}
}

// Jitter moves each point in place a uniformly random distance up to r
// in a uniformly random direction.
func Jitter(points []Point, r float64) {
	for i := range points {
		angle := rand.Float64() * 2 * math.Pi
		dist := rand.Float64() * r
		points[i] = Endpoint(points[i], angle, dist)
	}
}

// Jittered returns a jittered copy of points, leaving the input
// unchanged.
func Jittered(points []Point, r float64) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	Jitter(out, r)
	return out
}

// Interpolate inserts evenly spaced points between each consecutive
// pair so that no gap exceeds spacing, and returns the densified list.
func Interpolate(points []Point, spacing float64) []Point {
	out := make([]Point, 0, len(points))
	for i := 0; i < len(points)-1; i++ {
		p1, p2 := points[i], points[i+1]
		out = append(out, p1)
		n := int(math.Ceil(Distance(p1, p2)/spacing)) - 1
		for j := 1; j <= n; j++ {
			f := float64(j) / float64(n+1)
			out = append(out, Point{
				X: p1.X + f*(p2.X-p1.X),
				Y: p1.Y + f*(p2.Y-p1.Y),
			})
		}
	}
	return append(out, points[len(points)-1])
}

// PointsOnLine returns points from p1 to p2 inclusive, spaced at most
// spacing apart.
func PointsOnLine(p1, p2 Point, spacing float64) []Point {
	n := int(math.Ceil(Distance(p1, p2) / spacing))
	if n < 1 {
		n = 1
	}
	out := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		f := float64(i) / float64(n)
		out = append(out, Point{
			X: p1.X + f*(p2.X-p1.X),
			Y: p1.Y + f*(p2.Y-p1.Y),
		})
	}
	return out
}

// PointsOnArc returns points along the arc around center from angle a1
// to a2 (in degrees), spaced at most spacing apart along the arc.
func PointsOnArc(center Point, r, a1, a2, spacing float64) []Point {
	arcLen := math.Abs(Rad(a2-a1)) * r
	n := int(math.Ceil(arcLen / spacing))
	if n < 1 {
		n = 1
	}
	out := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := Rad(a1 + (a2-a1)*float64(i)/float64(n))
		out = append(out, Endpoint(center, a, r))
	}
	return out
}

// IsClockwise reports whether the polygon's vertices wind clockwise.
func IsClockwise(points []Point) bool {
	return SignedArea(points) < 0
}

// SignedArea returns the signed area of the polygon: positive for
// counter-clockwise winding.
func SignedArea(points []Point) float64 {
	var sum float64
	for i := range points {
		p1 := points[i]
		p2 := points[(i+1)%len(points)]
		sum += p1.X*p2.Y - p2.X*p1.Y
	}
	return sum / 2
}

// PolygonArea returns the area of the polygon.
func PolygonArea(points []Point) float64 {
	return math.Abs(SignedArea(points))
}

// PolygonCentroid returns the centroid of the polygon.
func PolygonCentroid(points []Point) Point {
	var cx, cy, a float64
	for i := range points {
		p1 := points[i]
		p2 := points[(i+1)%len(points)]
		cross := p1.X*p2.Y - p2.X*p1.Y
		cx += (p1.X + p2.X) * cross
		cy += (p1.Y + p2.Y) * cross
		a += cross
	}
	if a == 0 {
		// Degenerate polygon; fall back to the vertex mean.
		var s Point
		for _, p := range points {
			s.X += p.X
			s.Y += p.Y
		}
		return Point{X: s.X / float64(len(points)), Y: s.Y / float64(len(points))}
	}
	return Point{X: cx / (3 * a), Y: cy / (3 * a)}
}

// ContainsPoint reports whether p lies inside the polygon, using the
// even-odd rule.
func ContainsPoint(polygon []Point, p Point) bool {
	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

func segmentsIntersect(a1, a2, b1, b2 Point) bool {
	d := func(p, q, r Point) float64 {
		return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
	}
	d1 := d(b1, b2, a1)
	d2 := d(b1, b2, a2)
	d3 := d(a1, a2, b1)
	d4 := d(a1, a2, b2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// PolygonsIntersect reports whether two polygons overlap, touch along
// crossing edges, or contain one another.
func PolygonsIntersect(a, b []Point) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	for i := range a {
		for j := range b {
			if segmentsIntersect(a[i], a[(i+1)%len(a)], b[j], b[(j+1)%len(b)]) {
				return true
			}
		}
	}
	return ContainsPoint(a, b[0]) || ContainsPoint(b, a[0])
}

// HorizontalRange returns the magnitude of the horizontal extent of
// points.
func HorizontalRange(points []Point) float64 {
	if len(points) == 0 {
		return 0
	}
	min, max := points[0].X, points[0].X
	for _, p := range points[1:] {
		min = math.Min(min, p.X)
		max = math.Max(max, p.X)
	}
	return max - min
}

// LineToPolygon converts a polyline to the outline of a stroke of the
// given width along it.
func LineToPolygon(points []Point, width float64) []Point {
	pts := make([]Point, 0, 2*len(points))
	end1 := RotateAndMove(points[0], points[1], -math.Pi/2, width/2)
	end2 := RotateAndMove(points[len(points)-1], points[len(points)-2], math.Pi/2, width/2)
	end3 := RotateAndMove(points[len(points)-1], points[len(points)-2], -math.Pi/2, width/2)
	end4 := RotateAndMove(points[0], points[1], math.Pi/2, width/2)
	pts = append(pts, end1)
	for i := 1; i < len(points)-1; i++ {
		angle := AngleBetween(points[i-1], points[i], points[i+1])
		var dist float64
		if angle > Rad(10) || angle < -Rad(10) {
			dist = (width / 2) / math.Sin(angle/2)
		}
		pts = append(pts, RotateAndMove(points[i], points[i-1], angle/2, dist))
	}
	pts = append(pts, end2, end3)
	for i := len(points) - 2; i >= 1; i-- {
		pts = append(pts, Rotated(pts[i], points[i], math.Pi))
	}
	return append(pts, end4)
}
