package geom

import (
	"math"
	"math/rand"
	"sort"
)

// Index is an incremental nearest-neighbor structure over points,
// bucketing points into a uniform grid. The cell size should be on
// the order of typical query distances.
type Index struct {
	cell    float64
	buckets map[[2]int][]Point
	n       int
}

// NewIndex returns an empty index with the given bucket size.
func NewIndex(cellSize float64) *Index {
	return &Index{cell: cellSize, buckets: make(map[[2]int][]Point)}
}

func (ix *Index) key(p Point) [2]int {
	return [2]int{int(math.Floor(p.X / ix.cell)), int(math.Floor(p.Y / ix.cell))}
}

// Add inserts a point into the index.
func (ix *Index) Add(p Point) {
	k := ix.key(p)
	ix.buckets[k] = append(ix.buckets[k], p)
	ix.n++
}

// AddAll inserts points into the index.
func (ix *Index) AddAll(points []Point) {
	for _, p := range points {
		ix.Add(p)
	}
}

// Len returns the number of indexed points.
func (ix *Index) Len() int { return ix.n }

// ring visits buckets at Chebyshev distance r from center k.
func (ix *Index) ring(k [2]int, r int, visit func(Point)) {
	if r == 0 {
		for _, p := range ix.buckets[k] {
			visit(p)
		}
		return
	}
	for dx := -r; dx <= r; dx++ {
		for _, dy := range ringYs(dx, r) {
			for _, p := range ix.buckets[[2]int{k[0] + dx, k[1] + dy}] {
				visit(p)
			}
		}
	}
}

func ringYs(dx, r int) []int {
	if dx == -r || dx == r {
		ys := make([]int, 0, 2*r+1)
		for dy := -r; dy <= r; dy++ {
			ys = append(ys, dy)
		}
		return ys
	}
	return []int{-r, r}
}

// Nearest returns the indexed point closest to p. ok is false when the
// index is empty.
func (ix *Index) Nearest(p Point) (nearest Point, ok bool) {
	if ix.n == 0 {
		return Point{}, false
	}
	pts := ix.NearestN(p, 1)
	return pts[0], true
}

// NearestN returns up to n indexed points, ordered from closest to
// farthest from p.
func (ix *Index) NearestN(p Point, n int) []Point {
	if n > ix.n {
		n = ix.n
	}
	if n == 0 {
		return nil
	}
	k := ix.key(p)
	var cands []Point
	// Expand rings until the n-th best distance is certainly within
	// the searched radius.
	maxRing := 1
	for r := 0; ; r++ {
		ix.ring(k, r, func(q Point) { cands = append(cands, q) })
		if len(cands) >= n {
			sort.Slice(cands, func(i, j int) bool {
				return Distance(p, cands[i]) < Distance(p, cands[j])
			})
			if Distance(p, cands[n-1]) <= float64(r)*ix.cell || len(cands) == ix.n {
				return cands[:n]
			}
		}
		if r > maxRing && len(cands) == ix.n {
			return cands[:n]
		}
		maxRing = r + 1
	}
}

// SpacedPoints generates n random but evenly spaced points within
// bounds using Mitchell's best-candidate algorithm. nCand candidate
// points are drawn per output point; higher values give higher
// regularity.
func SpacedPoints(n int, b Bounds, nCand int) []Point {
	randPoint := func() Point {
		return Point{
			X: b.XMin + rand.Float64()*b.W(),
			Y: b.YMin + rand.Float64()*b.H(),
		}
	}
	cell := math.Max(b.W(), b.H()) / math.Sqrt(float64(n)+1)
	ix := NewIndex(cell)
	points := []Point{randPoint()}
	ix.Add(points[0])
	for i := 1; i < n; i++ {
		var best Point
		bestDist := -1.0
		for j := 0; j < nCand; j++ {
			cand := randPoint()
			nearest, _ := ix.Nearest(cand)
			if d := Distance(nearest, cand); d > bestDist {
				bestDist = d
				best = cand
			}
		}
		points = append(points, best)
		ix.Add(best)
	}
	return points
}
