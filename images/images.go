// Package images derives graphics from raster images: color sampling
// for shapes generated elsewhere, and segmentation of an image into
// spline regions for mosaic-like effects.
package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif" // register decoder
	"image/jpeg"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/daniel-munro/algoraphics/color"
	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/shape"
)

// Open loads a PNG, JPEG or GIF image and flips it vertically so that
// row 0 is the bottom, matching the drawing coordinate system.
// Transparency is dropped.
func Open(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			img.Set(x, b.Dy()-1-y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return img, nil
}

// Encode encodes an image as a base64 data URI for embedding in SVG.
// format is "png" or "jpeg".
func Encode(img image.Image, format string) (string, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, nil)
	default:
		err = fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return "", err
	}
	return "data:image/" + format + ";base64," +
		base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Resize scales an image down so that it fits within width x height,
// preserving the aspect ratio. Images already within the limits are
// returned unchanged; zero for either limit leaves that dimension
// unconstrained.
func Resize(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if width <= 0 {
		width = w
	}
	if height <= 0 {
		height = h
	}
	if w <= width && h <= height {
		return img
	}
	scale := float64(width) / float64(w)
	if s := float64(height) / float64(h); s < scale {
		scale = s
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// SampleColors samples the image color at each point. Points outside
// the image sample the nearest pixel.
func SampleColors(img image.Image, points []geom.Point) []color.Color {
	b := img.Bounds()
	colors := make([]color.Color, len(points))
	for i, p := range points {
		x := clampInt(int(p.X), 0, b.Dx()-1)
		y := clampInt(int(p.Y), 0, b.Dy()-1)
		r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
		colors[i] = color.RGB(int(r>>8), int(g>>8), int(bl>>8))
	}
	return colors
}

// RegionColor finds a representative color for an image region by
// averaging the colors at points sampled inside the outline.
func RegionColor(outline shape.Shape, img image.Image, nPoints int) color.Color {
	points := shape.SamplePointsIn(outline, nPoints)
	return color.Average(SampleColors(img, points)...)
}

// FillShapesFromImage fills each shape with the image color at its
// centroid. Faster than RegionColor, but best used for regular shapes
// like tiles, since an irregular shape's centroid may fall outside it.
func FillShapesFromImage(shapes shape.List, img image.Image) {
	centroids := make([]geom.Point, len(shapes))
	for i, s := range shapes {
		centroids[i] = shape.Centroid(s)
	}
	for i, c := range SampleColors(img, centroids) {
		shape.SetFill(shapes[i], c)
	}
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
