package images

import (
	"image"
	"math"
	"sort"

	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/shape"
)

// dilate grows a mask by one pixel in every direction.
func dilate(mask [][]bool) [][]bool {
	h, w := len(mask), len(mask[0])
	out := make([][]bool, h)
	for y := range out {
		out[y] = make([]bool, w)
		copy(out[y], mask[y])
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !mask[y][x] {
				continue
			}
			if y > 0 {
				out[y-1][x] = true
			}
			if y < h-1 {
				out[y+1][x] = true
			}
			if x > 0 {
				out[y][x-1] = true
			}
			if x < w-1 {
				out[y][x+1] = true
			}
		}
	}
	return out
}

// mooreNeighbors in clockwise order starting from the pixel above.
var mooreNeighbors = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// traceContour returns the outer boundary pixels of a mask in order,
// using Moore-neighbor tracing. The mask must have an empty border.
func traceContour(mask [][]bool) []geom.Point {
	h, w := len(mask), len(mask[0])

	// Start at the first filled pixel in scan order.
	sx, sy := -1, -1
	for y := 0; y < h && sy < 0; y++ {
		for x := 0; x < w; x++ {
			if mask[y][x] {
				sx, sy = x, y
				break
			}
		}
	}
	if sy < 0 {
		return nil
	}

	start := [2]int{sx, sy}
	// The scan entered the start pixel from its empty left neighbor.
	startPrev := [2]int{sx - 1, sy}
	cur, prev := start, startPrev
	contour := []geom.Point{geom.Pt(float64(sx), float64(sy))}
	for steps := 0; steps < 4*w*h; steps++ {
		// Scan the Moore neighborhood clockwise starting just past the
		// backtrack pixel.
		pd := 0
		for i, n := range mooreNeighbors {
			if cur[0]+n[0] == prev[0] && cur[1]+n[1] == prev[1] {
				pd = i
				break
			}
		}
		found := false
		for i := 1; i <= 8; i++ {
			d := (pd + i) % 8
			nx, ny := cur[0]+mooreNeighbors[d][0], cur[1]+mooreNeighbors[d][1]
			if nx < 0 || nx >= w || ny < 0 || ny >= h || !mask[ny][nx] {
				continue
			}
			e := (pd + i - 1) % 8
			prev = [2]int{cur[0] + mooreNeighbors[e][0], cur[1] + mooreNeighbors[e][1]}
			cur = [2]int{nx, ny}
			found = true
			break
		}
		if !found {
			break // isolated pixel
		}
		// Stop on re-entering the start pixel the same way.
		if cur == start && prev == startPrev {
			break
		}
		contour = append(contour, geom.Pt(float64(cur[0]), float64(cur[1])))
	}
	return contour
}

// simplifyPath reduces a point sequence with the Douglas-Peucker
// algorithm, keeping every point within tol of the original path.
func simplifyPath(points []geom.Point, tol float64) []geom.Point {
	if len(points) < 3 {
		return points
	}
	maxDist := 0.0
	maxI := 0
	a, b := points[0], points[len(points)-1]
	for i := 1; i < len(points)-1; i++ {
		if d := distToSegment(points[i], a, b); d > maxDist {
			maxDist = d
			maxI = i
		}
	}
	if maxDist <= tol {
		return []geom.Point{a, b}
	}
	left := simplifyPath(points[:maxI+1], tol)
	right := simplifyPath(points[maxI:], tol)
	return append(left[:len(left)-1], right...)
}

func distToSegment(p, a, b geom.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return geom.Distance(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return geom.Distance(p, geom.Pt(a.X+t*dx, a.Y+t*dy))
}

// SegmentsToShapes converts an array of segment labels to closed
// spline shapes, generally in order from left to right and then
// bottom to top. Each segment is expanded by expand pixels in every
// direction so that adjacent shapes overlap instead of leaving gaps.
// simplify is the maximum distance from a simplified boundary to the
// traced one (zero for no simplification), and curvature sets the
// spline smoothing, usually between zero and one.
func SegmentsToShapes(seg [][]int, simplify float64, expand int, curvature float64) shape.List {
	h, w := len(seg), len(seg[0])
	labelSet := make(map[int]bool)
	for _, row := range seg {
		for _, l := range row {
			labelSet[l] = true
		}
	}
	labels := make([]int, 0, len(labelSet))
	for l := range labelSet {
		labels = append(labels, l)
	}
	sort.Ints(labels)

	pad := expand + 1
	var shapes shape.List
	for _, label := range labels {
		mask := make([][]bool, h+2*pad)
		for y := range mask {
			mask[y] = make([]bool, w+2*pad)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if seg[y][x] == label {
					mask[y+pad][x+pad] = true
				}
			}
		}
		for i := 0; i < expand; i++ {
			mask = dilate(mask)
		}
		points := traceContour(mask)
		if len(points) < 3 {
			continue
		}
		// Shift back to original coordinates.
		for i := range points {
			points[i].X -= float64(pad)
			points[i].Y -= float64(pad)
		}
		if simplify > 0 {
			closed := append(points, points[0])
			closed = simplifyPath(closed, simplify)
			points = closed[:len(closed)-1]
		}
		if len(points) < 3 {
			continue
		}
		shapes = append(shapes, &shape.Spline{
			Points:    shape.FromPoints(points),
			Smoothing: curvature,
			Circular:  true,
		})
	}
	return shapes
}

// Regions segments an image and returns its regions as closed spline
// shapes. See Segment and SegmentsToShapes for the parameters.
func Regions(img image.Image, nSegments int, compactness, smoothness, simplify float64, expand int, curvature float64) shape.List {
	seg := Segment(img, nSegments, compactness, smoothness)
	return SegmentsToShapes(seg, simplify, expand, curvature)
}
