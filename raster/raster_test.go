package raster

import (
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/daniel-munro/algoraphics/color"
	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/param"
	"github.com/daniel-munro/algoraphics/shape"
	"github.com/daniel-munro/algoraphics/svg"
)

func TestDrawFilledRectangle(t *testing.T) {
	c := svg.NewCanvas(50, 50)
	c.Background = nil
	r := shape.Rectangle(geom.Bounds{XMin: 10, YMin: 10, XMax: 40, YMax: 40})
	r.Style.Fill = color.RGB(255, 0, 0)
	c.Add(r)
	img := Draw(c)
	cr, _, _, ca := img.At(25, 25).RGBA()
	if ca == 0 || cr>>8 < 200 {
		t.Errorf("center pixel not red: %v", img.At(25, 25))
	}
	if _, _, _, a := img.At(2, 2).RGBA(); a != 0 {
		t.Error("pixel outside the rectangle should be transparent")
	}
}

func TestYAxisPointsUp(t *testing.T) {
	c := svg.NewCanvas(50, 50)
	c.Background = nil
	// A rectangle along the bottom of the canvas.
	r := shape.Rectangle(geom.Bounds{XMin: 0, YMin: 0, XMax: 50, YMax: 10})
	r.Style.Fill = color.RGB(0, 0, 255)
	c.Add(r)
	img := Draw(c)
	if _, _, _, a := img.At(25, 45).RGBA(); a == 0 {
		t.Error("bottom of canvas should be at the bottom of the image")
	}
	if _, _, _, a := img.At(25, 5).RGBA(); a != 0 {
		t.Error("top of image should be empty")
	}
}

func TestClippedGroup(t *testing.T) {
	c := svg.NewCanvas(50, 50)
	c.Background = nil
	member := shape.Rectangle(geom.Bounds{XMax: 50, YMax: 50})
	member.Style.Fill = color.RGB(0, 255, 0)
	clip := shape.Rectangle(geom.Bounds{XMin: 20, YMin: 20, XMax: 30, YMax: 30})
	c.Add(shape.Clipped(shape.List{member}, clip))
	img := Draw(c)
	if _, _, _, a := img.At(25, 25).RGBA(); a == 0 {
		t.Error("pixel inside clip should be drawn")
	}
	if _, _, _, a := img.At(5, 5).RGBA(); a != 0 {
		t.Error("pixel outside clip should be masked out")
	}
}

func TestStrokeOnly(t *testing.T) {
	c := svg.NewCanvas(50, 50)
	c.Background = nil
	line := shape.NewLine(shape.XY(0, 25), shape.XY(50, 25))
	line.Style.StrokeWidth = param.Num(3)
	c.Add(line)
	img := Draw(c)
	if _, _, _, a := img.At(25, 25).RGBA(); a == 0 {
		t.Error("stroked line not drawn")
	}
}

func TestWriteGIF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anim.gif")
	c := svg.NewCanvas(30, 30)
	circ := &shape.Circle{
		C: shape.XY(15, 15),
		R: param.NewDelta(param.Num(2), param.Num(1)),
	}
	circ.Style.Fill = color.RGB(200, 50, 50)
	c.Add(circ)
	if err := WriteGIF(path, c, 5, 4); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 4 {
		t.Errorf("got %d frames, want 4", len(g.Image))
	}
}
