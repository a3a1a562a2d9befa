package textures

import (
	"testing"

	"github.com/daniel-munro/algoraphics/color"
	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/shape"
)

func TestBillowingDimensionsAndPalette(t *testing.T) {
	colors := []color.Color{color.RGB(255, 0, 0), color.RGB(0, 0, 255)}
	img := Billowing(40, 30, colors, 20, "rgb")
	b := img.Bounds()
	if b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("image is %dx%d, want 40x30", b.Dx(), b.Dy())
	}
	// Every pixel mixes red and blue, so green stays at zero.
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.G != 0 {
				t.Fatalf("pixel (%d, %d) = %+v has green outside the gradient", x, y, c)
			}
			if c.A != 255 {
				t.Fatalf("pixel (%d, %d) not opaque", x, y)
			}
		}
	}
}

func TestBillowingHSLMode(t *testing.T) {
	colors := []color.Color{color.HSL(0.9, 1, 0.5), color.HSL(0.1, 1, 0.5)}
	img := Billowing(20, 20, colors, 10, "hsl")
	// Mixing hues 0.9 and 0.1 the short way around passes through red
	// (hue 0), never through cyan (hue 0.5), so red dominates blue and
	// green everywhere.
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R < c.G || c.R < c.B {
				t.Fatalf("pixel (%d, %d) = %+v not reddish", x, y, c)
			}
		}
	}
}

func TestBillowRegion(t *testing.T) {
	outline := shape.Rectangle(geom.Bounds{XMin: 10, YMin: 20, XMax: 60, YMax: 50})
	colors := []color.Color{color.RGB(200, 100, 0), color.RGB(50, 0, 100)}
	g := BillowRegion(outline, colors, 30, "rgb")
	if len(g.Clip) != 1 || len(g.Members) != 1 {
		t.Fatalf("got %d clip and %d members", len(g.Clip), len(g.Members))
	}
	r, ok := g.Members[0].(*shape.Raster)
	if !ok {
		t.Fatalf("member is %T, want *shape.Raster", g.Members[0])
	}
	if r.X != 8 || r.Y != 18 {
		t.Errorf("raster at (%v, %v), want margin around the outline", r.X, r.Y)
	}
	if w := r.Img.Bounds().Dx(); w != 54 {
		t.Errorf("raster width = %d, want 54", w)
	}
}

func TestShadowFilters(t *testing.T) {
	c := &shape.Circle{C: shape.XY(0, 0)}
	g := WithShadow(c, 10, 0.5)
	if g.Filter == nil || g.Filter.Stdev != 10 || g.Filter.Darkness != 0.5 {
		t.Fatalf("filter = %+v", g.Filter)
	}
	if len(g.Members) != 1 {
		t.Fatalf("got %d members, want 1", len(g.Members))
	}

	objects := shape.List{
		&shape.Circle{C: shape.XY(0, 0)},
		shape.List{&shape.Circle{C: shape.XY(5, 5)}, &shape.Circle{C: shape.XY(6, 6)}},
	}
	AddShadows(objects, 4, 1.5)
	for i, obj := range objects {
		grp, ok := obj.(*shape.Group)
		if !ok {
			t.Fatalf("element %d is %T, want *shape.Group", i, obj)
		}
		if grp.Filter == nil {
			t.Fatalf("element %d has no filter", i)
		}
	}
	// The nested list becomes one composite group.
	if n := len(objects[1].(*shape.Group).Members); n != 2 {
		t.Errorf("composite group has %d members, want 2", n)
	}
}
