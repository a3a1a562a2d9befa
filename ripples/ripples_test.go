package ripples

import (
	"testing"

	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/shape"
)

func TestMarkovNext(t *testing.T) {
	probs := TransProbs{"S": {"R": 1}, "R": {"R": 0.9, "L": 0.1}}
	if got := markovNext("S", probs); got != "R" {
		t.Errorf("markovNext(S) = %q, want R", got)
	}
	for i := 0; i < 20; i++ {
		if got := markovNext("R", probs); got != "R" && got != "L" {
			t.Fatalf("markovNext(R) = %q", got)
		}
	}
}

func TestCanvasFillsWithSplines(t *testing.T) {
	const spacing = 10.0
	shapes := Canvas(100, 80, spacing, nil, nil)
	// The boundary curve plus at least one interior ripple.
	if len(shapes) < 2 {
		t.Fatalf("got %d curves, want at least 2", len(shapes))
	}
	var boundary, inner []geom.Point
	for i, s := range shapes {
		sp, ok := s.(*shape.Spline)
		if !ok {
			t.Fatalf("curve is %T, want *shape.Spline", s)
		}
		if sp.Style.Fill != shape.None {
			t.Error("ripple should not be filled")
		}
		if sp.Style.Stroke == nil {
			t.Error("ripple should be stroked")
		}
		if i == 0 {
			boundary = shape.PointsAt(sp.Points, 0)
		} else {
			inner = append(inner, shape.PointsAt(sp.Points, 0)...)
		}
	}
	// Ripples keep their distance from each other, themselves and the
	// canvas edge. The boundary curve itself is exempt since its corner
	// points can fall closer together.
	for i, p := range inner {
		for _, q := range inner[i+1:] {
			if d := geom.Distance(p, q); d < spacing*0.999-1e-9 {
				t.Fatalf("points %v and %v are %v apart, want >= %v", p, q, d, spacing*0.999)
			}
		}
		for _, q := range boundary {
			if d := geom.Distance(p, q); d < spacing*0.999-1e-9 {
				t.Fatalf("point %v is %v from the boundary, want >= %v", p, d, spacing*0.999)
			}
		}
	}
}

func TestCanvasAvoidsExistingPoints(t *testing.T) {
	const spacing = 10.0
	existing := []geom.Point{geom.Pt(50, 40)}
	shapes := Canvas(100, 80, spacing, TransProbs{"S": {"X": 1}, "X": {"X": 1}}, existing)
	for _, s := range shapes {
		for _, p := range shape.PointsAt(s.(*shape.Spline).Points, 0) {
			if d := geom.Distance(p, existing[0]); d < spacing*0.999-1e-9 {
				t.Fatalf("point %v is %v from an avoided point", p, d)
			}
		}
	}
}
