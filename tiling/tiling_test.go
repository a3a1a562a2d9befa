package tiling

import (
	"math"
	"testing"

	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/shape"
)

func samplePoints(n int) []geom.Point {
	return geom.SpacedPoints(n, geom.Bounds{XMin: 0, YMin: 0, XMax: 100, YMax: 100}, 10)
}

func TestTileCanvasVoronoi(t *testing.T) {
	tiles := TileCanvas(200, 150, VoronoiRegions, 500, 10)
	if len(tiles) == 0 {
		t.Fatal("no tiles generated")
	}
	for _, tile := range tiles {
		p, ok := tile.(*shape.Polygon)
		if !ok {
			t.Fatalf("tile is %T, want *shape.Polygon", tile)
		}
		if p.Style.Stroke != shape.Match {
			t.Error("tile stroke should match its fill")
		}
		if len(p.Points) < 3 {
			t.Errorf("tile with %d points", len(p.Points))
		}
	}
}

func TestTileRegionClips(t *testing.T) {
	outline := shape.Rectangle(geom.Bounds{XMin: 0, YMin: 0, XMax: 120, YMax: 90})
	g := TileRegion(outline, DelaunayRegions, 400, 10)
	if len(g.Clip) != 1 {
		t.Fatalf("got %d clip shapes, want 1", len(g.Clip))
	}
	if len(g.Members) == 0 {
		t.Fatal("no tiles generated")
	}
}

func TestDelaunayEdgesUnique(t *testing.T) {
	points := samplePoints(40)
	edges := DelaunayEdges(points)
	if len(edges) == 0 {
		t.Fatal("no edges generated")
	}
	type key [4]float64
	seen := make(map[key]bool)
	for _, e := range edges {
		l := e.(*shape.Line)
		p1, p2 := l.Points[0].At(0), l.Points[1].At(0)
		k := key{p1.X, p1.Y, p2.X, p2.Y}
		rk := key{p2.X, p2.Y, p1.X, p1.Y}
		if seen[k] || seen[rk] {
			t.Fatalf("duplicate edge %v - %v", p1, p2)
		}
		seen[k] = true
	}
	// Euler's formula bounds the edge count for a triangulation.
	if len(edges) > 3*len(points)-6 {
		t.Errorf("%d edges for %d points", len(edges), len(points))
	}
}

func TestVoronoiEdgesConnectCircumcenters(t *testing.T) {
	points := samplePoints(30)
	edges := VoronoiEdges(points)
	if len(edges) == 0 {
		t.Fatal("no edges generated")
	}
	for _, e := range edges {
		l := e.(*shape.Line)
		if geom.Distance(l.Points[0].At(0), l.Points[1].At(0)) == 0 {
			t.Error("degenerate zero-length edge")
		}
	}
}

func TestNestedTrianglesLevels(t *testing.T) {
	tip := geom.Pt(50, 100)
	height := 100.0
	side := 2 * height / math.Sqrt(3)
	triangles := NestedTriangles(tip, height, 2, 4)
	if len(triangles) < 4 {
		t.Fatalf("got %d triangles, want at least 4", len(triangles))
	}
	minSide := side / math.Pow(2, 4)
	maxSide := side / math.Pow(2, 2)
	for _, tri := range triangles {
		pts := shape.PointsAt(tri.(*shape.Polygon).Points, 0)
		s := geom.Distance(pts[1], pts[2])
		if s < minSide-1e-9 || s > maxSide+1e-9 {
			t.Errorf("triangle side %v outside [%v, %v]", s, minSide, maxSide)
		}
		// Upward-pointing: the apex is above the base.
		if pts[0].Y <= pts[1].Y {
			t.Error("downward-pointing triangle drawn")
		}
	}
}

func TestFillNestedTriangles(t *testing.T) {
	outline := shape.Rectangle(geom.Bounds{XMin: 0, YMin: 0, XMax: 80, YMax: 80})
	g := FillNestedTriangles(outline, 3, 5, shape.Plain("#204060"), shape.Plain("#f0f0f0"))
	if len(g.Members) < 2 {
		t.Fatal("no triangles in the filled region")
	}
	// The background rectangle is prepended as the first member.
	bg, ok := g.Members[0].(*shape.Polygon)
	if !ok || bg.Style.Fill == nil {
		t.Fatal("missing background")
	}
	if bg.Style.Fill.Hex(0) != "#f0f0f0" {
		t.Errorf("background fill = %q", bg.Style.Fill.Hex(0))
	}
	for _, m := range g.Members[1:] {
		if f := m.(*shape.Polygon).Style.Fill; f == nil || f.Hex(0) != "#204060" {
			t.Error("triangle fill not applied")
		}
	}
}
