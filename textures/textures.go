// Package textures generates raster textures and applies shadow
// filters to shapes.
package textures

import (
	"image"
	stdcolor "image/color"
	"math"

	"github.com/daniel-munro/algoraphics/color"
	"github.com/daniel-munro/algoraphics/grid"
	"github.com/daniel-munro/algoraphics/shape"
)

// Billowing generates a w x h billowing texture: distances along a
// random spanning tree over the pixel grid are mapped onto a cyclic
// gradient through colors, cycling every scale pixels. mode is "rgb"
// or "hsl" and chooses how neighboring colors are interpolated. Row 0
// of the image is the bottom of the texture.
func Billowing(w, h int, colors []color.Color, scale int, mode string) *image.RGBA {
	dists := grid.TreeDists(h, w)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			v := float64(dists[row][col]%scale) / float64(scale) * float64(len(colors))
			c1 := colors[int(v)%len(colors)]
			c2 := colors[(int(v)+1)%len(colors)]
			p := v - math.Floor(v)
			img.SetRGBA(col, row, mix(c1, c2, p, mode))
		}
	}
	return img
}

// mix interpolates between two colors, in RGB space or along the
// shorter way around the hue circle.
func mix(c1, c2 color.Color, p float64, mode string) stdcolor.RGBA {
	if mode == "hsl" {
		h1, s1, l1 := c1.At(0)
		h2, s2, l2 := c2.At(0)
		if h2-h1 > 0.5 {
			h1++
		}
		if h1-h2 > 0.5 {
			h2++
		}
		h := math.Mod(h1+p*(h2-h1), 1)
		mixed := color.HSL(h, s1+p*(s2-s1), l1+p*(l2-l1))
		n := mixed.NRGBA(0)
		return stdcolor.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
	}
	r1, g1, b1 := c1.RGBAt(0)
	r2, g2, b2 := c2.RGBAt(0)
	return stdcolor.RGBA{
		R: uint8((r1 + p*(r2-r1)) * 255),
		G: uint8((g1 + p*(g2-g1)) * 255),
		B: uint8((b1 + p*(b2-b1)) * 255),
		A: 255,
	}
}

// BillowRegion fills a region with a billowing texture clipped to the
// outline.
func BillowRegion(outline shape.Shape, colors []color.Color, scale int, mode string) *shape.Group {
	bounds := shape.BoundingBox(outline).AddMargin(2)
	img := Billowing(int(bounds.W()), int(bounds.H()), colors, scale, mode)
	billow := &shape.Raster{Img: img, X: bounds.XMin, Y: bounds.YMin}
	return shape.Clipped(shape.List{billow}, outline)
}

// Filtered wraps an object in a group with a filter applied to it.
func Filtered(obj shape.Shape, f shape.Filter) *shape.Group {
	members, ok := obj.(shape.List)
	if !ok {
		members = shape.List{obj}
	}
	return &shape.Group{Members: members, Filter: &f}
}

// WithShadow wraps an object in a group with a shadow filter.
// darkness below one gives a lighter shadow, above one a darker one.
func WithShadow(obj shape.Shape, stdev, darkness float64) *shape.Group {
	return Filtered(obj, shape.Filter{Stdev: stdev, Darkness: darkness})
}

// AddShadows replaces each element of a list with a group carrying
// its own shadow filter. An element that is itself a list gets one
// shadow for the composite object.
func AddShadows(objects shape.List, stdev, darkness float64) {
	for i, obj := range objects {
		objects[i] = WithShadow(obj, stdev, darkness)
	}
}
