package svg

import (
	"strings"
	"testing"

	"github.com/daniel-munro/algoraphics/color"
	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/param"
	"github.com/daniel-munro/algoraphics/shape"
)

func TestCanvasBackgroundAndHeader(t *testing.T) {
	c := NewCanvas(400, 300)
	out := c.SVG()
	if !strings.Contains(out, `width="400" height="300"`) {
		t.Error("missing canvas dimensions")
	}
	if !strings.Contains(out, "translate(0, 300) scale(1, -1)") {
		t.Error("missing y-axis flip transform")
	}
	if !strings.Contains(out, "fill:white") {
		t.Error("missing background fill")
	}
	c.Background = nil
	if strings.Contains(c.SVG(), "polygon") {
		t.Error("background rectangle written despite nil background")
	}
}

func TestPolygonDefaults(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Background = nil
	c.Add(shape.Rectangle(geom.Bounds{XMax: 10, YMax: 10}))
	out := c.SVG()
	if !strings.Contains(out, `<polygon points="0,0 10,0 10,10 0,10"`) {
		t.Errorf("polygon points not serialized:\n%s", out)
	}
	// Unstyled closed shapes become unfilled black outlines.
	if !strings.Contains(out, "fill:none") || !strings.Contains(out, "stroke:black") {
		t.Errorf("default style not applied:\n%s", out)
	}
}

func TestFillColorAndMatchStroke(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Background = nil
	r := shape.Rectangle(geom.Bounds{XMax: 10, YMax: 10})
	r.Style.Fill = color.RGB(255, 0, 0)
	r.Style.Stroke = shape.Match
	c.Add(r)
	out := c.SVG()
	if !strings.Contains(out, "fill:#ff0000") {
		t.Error("fill color missing")
	}
	if !strings.Contains(out, "stroke:#ff0000") {
		t.Error("stroke did not match fill")
	}
}

func TestLineAndPolyline(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Background = nil
	c.Add(shape.NewLine(shape.XY(0, 0), shape.XY(5, 5)))
	c.Add(&shape.Line{Points: []shape.Pt{shape.XY(0, 0), shape.XY(1, 1), shape.XY(2, 0)}})
	out := c.SVG()
	if !strings.Contains(out, `<line x1="0" y1="0" x2="5" y2="5"`) {
		t.Error("line not serialized")
	}
	if !strings.Contains(out, "stroke:black") {
		t.Error("line default stroke missing")
	}
	if !strings.Contains(out, `<polyline points="0,0 1,1 2,0" fill="none"`) {
		t.Error("polyline not serialized")
	}
}

func TestSplinePath(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Background = nil
	c.Add(&shape.Spline{Points: []shape.Pt{
		shape.XY(0, 0), shape.XY(10, 0), shape.XY(20, 10), shape.XY(30, 10),
	}})
	out := c.SVG()
	if !strings.Contains(out, `<path d="M 0 0 C `) {
		t.Errorf("spline path missing:\n%s", out)
	}
	if !strings.Contains(out, " S ") {
		t.Error("smooth continuation commands missing")
	}
}

func TestClipDefsAndFilterDedup(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Background = nil
	clip := shape.Rectangle(geom.Bounds{XMax: 50, YMax: 50})
	f := &shape.Filter{Stdev: 2, Darkness: 0.5}
	c.Add(&shape.Group{
		Members: shape.List{&shape.Circle{C: shape.XY(10, 10), R: param.Num(5)}},
		Clip:    shape.List{clip},
		Filter:  f,
	})
	c.Add(&shape.Group{
		Members: shape.List{&shape.Circle{C: shape.XY(30, 30), R: param.Num(5)}},
		Filter:  &shape.Filter{Stdev: 2, Darkness: 0.5},
	})
	out := c.SVG()
	if !strings.Contains(out, "<clipPath id=\"") {
		t.Error("clipPath def missing")
	}
	if !strings.Contains(out, "clip-path=\"url(#") {
		t.Error("clip-path reference missing")
	}
	if strings.Count(out, "<filter id=") != 1 {
		t.Errorf("identical filters not deduplicated:\n%s", out)
	}
	if strings.Count(out, "filter=\"url(#filter0)\"") != 2 {
		t.Error("both groups should reference filter0")
	}
}

func TestDynamicTimepoint(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Background = nil
	circ := &shape.Circle{C: shape.XY(50, 50), R: &param.Uniform{Min: 5, Max: 20}}
	c.Add(circ)
	if c.SVG() != c.SVG() {
		t.Error("output differs across renders of the same timepoint")
	}
}
