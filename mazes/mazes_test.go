package mazes

import (
	"testing"

	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/shape"
)

func TestMazeSpansGrid(t *testing.T) {
	const rows, cols = 8, 10
	const spacing = 12.0
	s := Maze(rows, cols, spacing, geom.Pt(100, 50), StraightStyle{RelThickness: 0.3})
	poly, ok := s.(*shape.Polygon)
	if !ok {
		t.Fatalf("straight style output is %T, want *shape.Polygon", s)
	}
	b := shape.BoundingBox(poly)
	if b.XMin < 100 || b.YMin < 50 ||
		b.XMax > 100+float64(cols)*spacing || b.YMax > 50+float64(rows)*spacing {
		t.Errorf("maze bounds %+v escape the grid", b)
	}
	// The channel reaches well across the grid in both dimensions.
	if b.W() < float64(cols-1)*spacing || b.H() < float64(rows-1)*spacing {
		t.Errorf("maze bounds %+v do not span the grid", b)
	}
}

func TestMazeStyleOutputs(t *testing.T) {
	styles := []struct {
		name   string
		style  Style
		spline bool
	}{
		{"pipes", Pipes{RelThickness: 0.4}, true},
		{"round", Round{RelThickness: 0.4}, true},
		{"straight", StraightStyle{RelThickness: 0.3}, false},
		{"jagged", Jagged{MinW: 0.2, MaxW: 0.5}, false},
	}
	for _, tc := range styles {
		s := Maze(6, 6, 10, geom.Pt(0, 0), tc.style)
		if _, ok := s.(*shape.Spline); ok != tc.spline {
			t.Errorf("%s: output is %T", tc.name, s)
		}
	}
}

func TestFillMazeClips(t *testing.T) {
	outline := shape.Rectangle(geom.Bounds{XMin: 0, YMin: 0, XMax: 100, YMax: 80})
	g := FillMaze(outline, 15, Pipes{RelThickness: 0.5}, 30)
	if len(g.Clip) != 1 {
		t.Fatalf("got %d clip shapes, want 1", len(g.Clip))
	}
	if len(g.Members) != 1 {
		t.Fatalf("got %d members, want 1", len(g.Members))
	}
	// The rotated maze grid must cover the whole outline.
	b := shape.BoundingBox(g.Members[0])
	for _, c := range []geom.Point{
		geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(0, 80), geom.Pt(100, 80),
	} {
		if !b.Contains(c) {
			t.Errorf("maze bounds %+v miss outline corner %v", b, c)
		}
	}
}
