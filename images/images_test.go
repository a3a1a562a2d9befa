package images

import (
	"image"
	stdcolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/shape"
)

// halves returns a w x h image with the left half one color and the
// right half another.
func halves(w, h int, left, right stdcolor.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.SetRGBA(x, y, left)
			} else {
				img.SetRGBA(x, y, right)
			}
		}
	}
	return img
}

var (
	red  = stdcolor.RGBA{R: 255, A: 255}
	blue = stdcolor.RGBA{B: 255, A: 255}
)

func TestOpenFlipsVertically(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if y < 2 {
				img.SetRGBA(x, y, red) // top rows of the file
			} else {
				img.SetRGBA(x, y, blue)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	// Row 0 is now the bottom of the picture, which was blue.
	if c := got.RGBAAt(0, 0); c.B != 255 {
		t.Errorf("bottom row = %+v, want blue", c)
	}
	if c := got.RGBAAt(0, 3); c.R != 255 {
		t.Errorf("top row = %+v, want red", c)
	}
}

func TestEncodeDataURI(t *testing.T) {
	img := halves(4, 4, red, blue)
	s, err := Encode(img, "png")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(s, "data:image/png;base64,") {
		t.Errorf("unexpected prefix in %q", s[:30])
	}
	if _, err := Encode(img, "bmp"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestResizeKeepsAspectAndNeverUpscales(t *testing.T) {
	img := halves(100, 50, red, blue)
	small := Resize(img, 40, 40)
	b := small.Bounds()
	if b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("resized to %dx%d, want 40x20", b.Dx(), b.Dy())
	}
	same := Resize(img, 200, 200)
	if same.Bounds() != img.Bounds() {
		t.Error("image should not be upscaled")
	}
}

func TestSampleColors(t *testing.T) {
	img := halves(10, 10, red, blue)
	colors := SampleColors(img, []geom.Point{
		geom.Pt(1, 1), geom.Pt(8, 8), geom.Pt(-5, 3), geom.Pt(100, 100),
	})
	if hex := colors[0].Hex(0); hex != "#ff0000" {
		t.Errorf("left sample = %s, want #ff0000", hex)
	}
	if hex := colors[1].Hex(0); hex != "#0000ff" {
		t.Errorf("right sample = %s, want #0000ff", hex)
	}
	// Out-of-range points sample the nearest pixel.
	if hex := colors[2].Hex(0); hex != "#ff0000" {
		t.Errorf("clamped left sample = %s", hex)
	}
	if hex := colors[3].Hex(0); hex != "#0000ff" {
		t.Errorf("clamped right sample = %s", hex)
	}
}

func TestRegionColorAndFillShapes(t *testing.T) {
	img := halves(20, 20, red, blue)
	left := shape.Rectangle(geom.Bounds{XMin: 1, YMin: 1, XMax: 8, YMax: 19})
	if hex := RegionColor(left, img, 20).Hex(0); hex != "#ff0000" {
		t.Errorf("region color = %s, want #ff0000", hex)
	}

	shapes := shape.List{
		shape.Rectangle(geom.Bounds{XMin: 1, YMin: 1, XMax: 8, YMax: 19}),
		shape.Rectangle(geom.Bounds{XMin: 12, YMin: 1, XMax: 19, YMax: 19}),
	}
	FillShapesFromImage(shapes, img)
	if hex := shapes[0].(*shape.Polygon).Style.Fill.Hex(0); hex != "#ff0000" {
		t.Errorf("left fill = %s", hex)
	}
	if hex := shapes[1].(*shape.Polygon).Style.Fill.Hex(0); hex != "#0000ff" {
		t.Errorf("right fill = %s", hex)
	}
}

func TestSegmentSeparatesColors(t *testing.T) {
	img := halves(40, 40, red, blue)
	seg := Segment(img, 4, 10, 0)
	if len(seg) != 40 || len(seg[0]) != 40 {
		t.Fatalf("segment array is %dx%d", len(seg), len(seg[0]))
	}
	if seg[20][5] == seg[20][35] {
		t.Error("left and right halves share a segment")
	}
	labels := make(map[int]bool)
	for _, row := range seg {
		for _, l := range row {
			labels[l] = true
		}
	}
	if len(labels) < 2 || len(labels) > 8 {
		t.Errorf("got %d segments for a two-color image", len(labels))
	}
}

func TestSegmentsToShapes(t *testing.T) {
	seg := make([][]int, 20)
	for y := range seg {
		seg[y] = make([]int, 20)
		for x := range seg[y] {
			if x >= 10 {
				seg[y][x] = 1
			}
		}
	}
	shapes := SegmentsToShapes(seg, 1, 2, 0.2)
	if len(shapes) != 2 {
		t.Fatalf("got %d shapes, want 2", len(shapes))
	}
	for i, s := range shapes {
		sp := s.(*shape.Spline)
		if !sp.Circular {
			t.Errorf("shape %d is not a closed spline", i)
		}
		if sp.Smoothing != 0.2 {
			t.Errorf("shape %d smoothing = %v", i, sp.Smoothing)
		}
	}
	// Expansion makes adjacent regions overlap across the boundary.
	b0 := shape.BoundingBox(shapes[0])
	b1 := shape.BoundingBox(shapes[1])
	if b0.XMax <= b1.XMin {
		t.Error("expanded segments should overlap")
	}
	// Shapes cover their own region.
	if b0.XMin > 0 || b0.YMin > 0 || b0.YMax < 19 {
		t.Errorf("first region bounds %+v too small", b0)
	}
	if b1.XMax < 19 {
		t.Errorf("second region bounds %+v too small", b1)
	}
}

func TestRegionsProducesClosedSplines(t *testing.T) {
	img := halves(30, 30, red, blue)
	shapes := Regions(img, 4, 10, 0, 1, 2, 0.2)
	if len(shapes) < 2 {
		t.Fatalf("got %d regions", len(shapes))
	}
	for _, s := range shapes {
		sp := s.(*shape.Spline)
		if !sp.Circular || len(sp.Points) < 3 {
			t.Error("region is not a closed spline")
		}
	}
}
