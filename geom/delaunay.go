package geom

import "math"

// Triangle holds indices into a point slice.
type Triangle [3]int

// Delaunay computes the Delaunay triangulation of points using the
// Bowyer-Watson algorithm. Returned triangles index into points.
func Delaunay(points []Point) []Triangle {
	if len(points) < 3 {
		return nil
	}
	b := BoundsOf(points)
	// Super-triangle comfortably containing all points.
	m := math.Max(b.W(), b.H())
	c := b.Center()
	super := []Point{
		{X: c.X - 20*m, Y: c.Y - m},
		{X: c.X + 20*m, Y: c.Y - m},
		{X: c.X, Y: c.Y + 20*m},
	}
	pts := append(append([]Point{}, points...), super...)
	s0, s1, s2 := len(points), len(points)+1, len(points)+2

	tris := []Triangle{{s0, s1, s2}}
	for i := range points {
		p := pts[i]
		var bad []Triangle
		var keep []Triangle
		for _, tr := range tris {
			if inCircumcircle(pts[tr[0]], pts[tr[1]], pts[tr[2]], p) {
				bad = append(bad, tr)
			} else {
				keep = append(keep, tr)
			}
		}
		// Boundary of the cavity: edges belonging to exactly one bad
		// triangle.
		edgeCount := make(map[[2]int]int)
		for _, tr := range bad {
			for e := 0; e < 3; e++ {
				a, b := tr[e], tr[(e+1)%3]
				if a > b {
					a, b = b, a
				}
				edgeCount[[2]int{a, b}]++
			}
		}
		tris = keep
		for e, n := range edgeCount {
			if n == 1 {
				tris = append(tris, Triangle{e[0], e[1], i})
			}
		}
	}

	out := tris[:0]
	for _, tr := range tris {
		if tr[0] < len(points) && tr[1] < len(points) && tr[2] < len(points) {
			out = append(out, tr)
		}
	}
	return out
}

func inCircumcircle(a, b, c, p Point) bool {
	// Normalize to counter-clockwise so the determinant sign test holds.
	if SignedArea([]Point{a, b, c}) < 0 {
		b, c = c, b
	}
	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y
	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)
	return det > 0
}

// Circumcenter returns the center of the circle through a, b and c.
func Circumcenter(a, b, c Point) Point {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 {
		return Midpoint(a, c)
	}
	ux := ((a.X*a.X+a.Y*a.Y)*(b.Y-c.Y) +
		(b.X*b.X+b.Y*b.Y)*(c.Y-a.Y) +
		(c.X*c.X+c.Y*c.Y)*(a.Y-b.Y)) / d
	uy := ((a.X*a.X+a.Y*a.Y)*(c.X-b.X) +
		(b.X*b.X+b.Y*b.Y)*(a.X-c.X) +
		(c.X*c.X+c.Y*c.Y)*(b.X-a.X)) / d
	return Point{X: ux, Y: uy}
}

// VoronoiCells returns the finite Voronoi cells of points, as the dual
// of the Delaunay triangulation. The map keys are indices of points
// whose cells are bounded; each cell's vertices are ordered around the
// site.
func VoronoiCells(points []Point) map[int][]Point {
	tris := Delaunay(points)
	centers := make([]Point, len(tris))
	around := make(map[int][]int)
	onHull := make(map[int]bool)

	edgeTris := make(map[[2]int][]int)
	for ti, tr := range tris {
		centers[ti] = Circumcenter(points[tr[0]], points[tr[1]], points[tr[2]])
		for e := 0; e < 3; e++ {
			around[tr[e]] = append(around[tr[e]], ti)
			a, b := tr[e], tr[(e+1)%3]
			if a > b {
				a, b = b, a
			}
			edgeTris[[2]int{a, b}] = append(edgeTris[[2]int{a, b}], ti)
		}
	}
	// Sites on a hull edge have unbounded cells.
	for e, ts := range edgeTris {
		if len(ts) == 1 {
			onHull[e[0]] = true
			onHull[e[1]] = true
		}
	}

	cells := make(map[int][]Point)
	for site, ts := range around {
		if onHull[site] || len(ts) < 3 {
			continue
		}
		cell := make([]Point, len(ts))
		for i, ti := range ts {
			cell[i] = centers[ti]
		}
		sortAround(cell, points[site])
		cells[site] = cell
	}
	return cells
}

// VoronoiEdges returns the finite edges of the Voronoi diagram of
// points: one segment per pair of adjacent Delaunay triangles,
// connecting their circumcenters.
func VoronoiEdges(points []Point) [][2]Point {
	tris := Delaunay(points)
	centers := make([]Point, len(tris))
	edgeTris := make(map[[2]int][]int)
	for ti, tr := range tris {
		centers[ti] = Circumcenter(points[tr[0]], points[tr[1]], points[tr[2]])
		for e := 0; e < 3; e++ {
			a, b := tr[e], tr[(e+1)%3]
			if a > b {
				a, b = b, a
			}
			edgeTris[[2]int{a, b}] = append(edgeTris[[2]int{a, b}], ti)
		}
	}
	var out [][2]Point
	for _, ts := range edgeTris {
		if len(ts) == 2 {
			out = append(out, [2]Point{centers[ts[0]], centers[ts[1]]})
		}
	}
	return out
}

// sortAround orders points by angle around center.
func sortAround(pts []Point, center Point) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0; j-- {
			ai := math.Atan2(pts[j].Y-center.Y, pts[j].X-center.X)
			aj := math.Atan2(pts[j-1].Y-center.Y, pts[j-1].X-center.X)
			if ai >= aj {
				break
			}
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}
