package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func approxPt(t *testing.T, got, want Point) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("point mismatch (-want +got):\n%s", diff)
	}
}

func TestEndpointAndDirection(t *testing.T) {
	p := Endpoint(Pt(1, 1), Rad(90), 2)
	approxPt(t, p, Pt(1, 3))
	if d := Direction(Pt(0, 0), Pt(-1, 0)); math.Abs(d-180) > 1e-9 {
		t.Errorf("Direction = %v, want 180", d)
	}
}

func TestRotatedPreservesDistance(t *testing.T) {
	pivot := Pt(3, -2)
	p := Pt(7, 5)
	for _, angle := range []float64{0.3, 1.2, -2.5, math.Pi} {
		q := Rotated(p, pivot, angle)
		if math.Abs(Distance(p, pivot)-Distance(q, pivot)) > 1e-9 {
			t.Errorf("rotation by %v changed distance to pivot", angle)
		}
	}
	approxPt(t, Rotated(Pt(1, 0), Pt(0, 0), math.Pi/2), Pt(0, 1))
}

func TestAngleBetween(t *testing.T) {
	a := AngleBetween(Pt(1, 0), Pt(0, 0), Pt(0, 1))
	if math.Abs(a-math.Pi/2) > 1e-9 {
		t.Errorf("AngleBetween = %v, want %v", a, math.Pi/2)
	}
}

func TestInterpolateSpacing(t *testing.T) {
	pts := Interpolate([]Point{Pt(0, 0), Pt(10, 0), Pt(10, 3)}, 2)
	approxPt(t, pts[0], Pt(0, 0))
	approxPt(t, pts[len(pts)-1], Pt(10, 3))
	for i := 0; i < len(pts)-1; i++ {
		if d := Distance(pts[i], pts[i+1]); d > 2+1e-9 {
			t.Errorf("gap %d is %v, want <= 2", i, d)
		}
	}
}

func TestPointsOnArc(t *testing.T) {
	pts := PointsOnArc(Pt(0, 0), 5, 0, 90, 1)
	approxPt(t, pts[0], Pt(5, 0))
	approxPt(t, pts[len(pts)-1], Pt(0, 5))
	for _, p := range pts {
		if math.Abs(Distance(Pt(0, 0), p)-5) > 1e-9 {
			t.Errorf("arc point %v not at radius 5", p)
		}
	}
}

func TestWindingAndArea(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}
	if IsClockwise(square) {
		t.Error("counter-clockwise square reported as clockwise")
	}
	rev := []Point{Pt(0, 2), Pt(2, 2), Pt(2, 0), Pt(0, 0)}
	if !IsClockwise(rev) {
		t.Error("clockwise square not detected")
	}
	if a := PolygonArea(square); math.Abs(a-4) > 1e-9 {
		t.Errorf("area = %v, want 4", a)
	}
	approxPt(t, PolygonCentroid(square), Pt(1, 1))
}

func TestContainsPoint(t *testing.T) {
	tri := []Point{Pt(0, 0), Pt(4, 0), Pt(0, 4)}
	if !ContainsPoint(tri, Pt(1, 1)) {
		t.Error("interior point reported outside")
	}
	if ContainsPoint(tri, Pt(3, 3)) {
		t.Error("exterior point reported inside")
	}
}

func TestPolygonsIntersect(t *testing.T) {
	a := []Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}
	b := []Point{Pt(1, 1), Pt(3, 1), Pt(3, 3), Pt(1, 3)}
	c := []Point{Pt(5, 5), Pt(6, 5), Pt(6, 6)}
	inner := []Point{Pt(0.5, 0.5), Pt(1.5, 0.5), Pt(1, 1.5)}
	if !PolygonsIntersect(a, b) {
		t.Error("overlapping polygons not detected")
	}
	if PolygonsIntersect(a, c) {
		t.Error("disjoint polygons reported intersecting")
	}
	if !PolygonsIntersect(a, inner) {
		t.Error("contained polygon not detected")
	}
}

func TestIndexAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pts := make([]Point, 200)
	for i := range pts {
		pts[i] = Pt(rng.Float64()*100, rng.Float64()*100)
	}
	ix := NewIndex(10)
	ix.AddAll(pts)
	for q := 0; q < 50; q++ {
		p := Pt(rng.Float64()*100, rng.Float64()*100)
		got, ok := ix.Nearest(p)
		if !ok {
			t.Fatal("Nearest on populated index returned !ok")
		}
		want := pts[Nearest(pts, p)]
		if got != want {
			t.Errorf("Nearest(%v) = %v, want %v", p, got, want)
		}
	}
	near := ix.NearestN(Pt(50, 50), 6)
	if len(near) != 6 {
		t.Fatalf("NearestN returned %d points, want 6", len(near))
	}
	for i := 0; i < len(near)-1; i++ {
		if Distance(Pt(50, 50), near[i]) > Distance(Pt(50, 50), near[i+1]) {
			t.Error("NearestN results not ordered by distance")
		}
	}
}

func TestSpacedPoints(t *testing.T) {
	b := Bounds{XMin: 0, YMin: 0, XMax: 100, YMax: 100}
	pts := SpacedPoints(80, b, 10)
	if len(pts) != 80 {
		t.Fatalf("got %d points, want 80", len(pts))
	}
	minDist := math.Inf(1)
	for i := range pts {
		if !b.Contains(pts[i]) {
			t.Errorf("point %v outside bounds", pts[i])
		}
		for j := i + 1; j < len(pts); j++ {
			minDist = math.Min(minDist, Distance(pts[i], pts[j]))
		}
	}
	// Best-candidate sampling should keep points well separated
	// relative to uniform sampling.
	if minDist < 1 {
		t.Errorf("minimum spacing %v is too small", minDist)
	}
}

func TestDelaunayEmptyCircumcircle(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pts := make([]Point, 40)
	for i := range pts {
		pts[i] = Pt(rng.Float64()*10, rng.Float64()*10)
	}
	tris := Delaunay(pts)
	if len(tris) == 0 {
		t.Fatal("no triangles produced")
	}
	for _, tr := range tris {
		for i, p := range pts {
			if i == tr[0] || i == tr[1] || i == tr[2] {
				continue
			}
			if inCircumcircle(pts[tr[0]], pts[tr[1]], pts[tr[2]], p) {
				t.Fatalf("point %d inside circumcircle of triangle %v", i, tr)
			}
		}
	}
}

func TestVoronoiCellsContainSites(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	pts := make([]Point, 60)
	for i := range pts {
		pts[i] = Pt(rng.Float64()*100, rng.Float64()*100)
	}
	cells := VoronoiCells(pts)
	if len(cells) == 0 {
		t.Fatal("no bounded cells found")
	}
	for site, cell := range cells {
		if len(cell) < 3 {
			t.Fatalf("cell for site %d has %d vertices", site, len(cell))
		}
		if !ContainsPoint(cell, pts[site]) {
			t.Errorf("cell for site %d does not contain its site", site)
		}
	}
}

func TestLineToPolygon(t *testing.T) {
	line := []Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)}
	poly := LineToPolygon(line, 2)
	if len(poly) != 2*len(line) {
		t.Fatalf("got %d vertices, want %d", len(poly), 2*len(line))
	}
	if a := PolygonArea(poly); math.Abs(a-40) > 1e-6 {
		t.Errorf("stroke area = %v, want 40", a)
	}
}
