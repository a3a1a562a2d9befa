// Package raster renders canvases to bitmap images by wrapping
// rasterx. It is a preview backend: SVG filters are ignored and
// clipped groups are composed through an alpha mask.
package raster

import (
	"image"
	stdcolor "image/color"
	"strconv"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"github.com/daniel-munro/algoraphics/color"
	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/shape"
	"github.com/daniel-munro/algoraphics/svg"
)

// Renderer rasterizes shapes onto an RGBA image. The dasher and
// filler are separate instances to avoid shared state.
type Renderer struct {
	dasher *rasterx.Dasher
	filler *rasterx.Filler
	w, h   int
	t      int
}

// NewRenderer returns a renderer drawing into img.
func NewRenderer(img *image.RGBA, t int) *Renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Renderer{
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
		w:      w,
		h:      h,
		t:      t,
	}
}

// Draw renders the canvas at its current timepoint.
func Draw(c *svg.Canvas) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(c.Width), int(c.Height)))
	rd := NewRenderer(img, c.T)
	rd.drawList(img, c.Objects())
	return img
}

func (rd *Renderer) drawList(img *image.RGBA, objects shape.List) {
	for _, obj := range shape.Flatten(objects) {
		if g, ok := obj.(*shape.Group); ok {
			rd.drawGroup(img, g)
		} else {
			rd.drawShape(img, obj)
		}
	}
}

// drawGroup renders a group's members offscreen and composes them
// through the alpha of its rendered clip.
func (rd *Renderer) drawGroup(img *image.RGBA, g *shape.Group) {
	if len(g.Clip) == 0 {
		rd.drawList(img, g.Members)
		return
	}
	off := image.NewRGBA(img.Bounds())
	sub := NewRenderer(off, rd.t)
	sub.drawList(off, g.Members)

	mask := image.NewRGBA(img.Bounds())
	mr := NewRenderer(mask, rd.t)
	for _, s := range shape.Flatten(g.Clip) {
		mr.fillShape(mask, s, stdcolor.NRGBA{A: 255})
	}
	draw.DrawMask(img, img.Bounds(), off, image.Point{}, mask, image.Point{}, draw.Over)
}

func (rd *Renderer) drawShape(img *image.RGBA, s shape.Shape) {
	if r, ok := s.(*shape.Raster); ok {
		rd.drawRaster(img, r)
		return
	}
	sty := styleOf(s)
	if sty == nil {
		return
	}
	fill, stroke := resolved(s, sty)
	opacity := 1.0
	if sty.Opacity != nil {
		opacity = sty.Opacity.At(rd.t)
	}

	if c, ok := rd.patternColor(fill); ok {
		op := opacity
		if sty.FillOpacity != nil {
			op *= sty.FillOpacity.At(rd.t)
		}
		rd.filler.Clear()
		rd.filler.SetColor(rasterx.ApplyOpacity(c, op))
		rd.path(rd.filler, s)
		rd.filler.Draw()
	}
	if c, ok := rd.patternColor(stroke); ok {
		op := opacity
		if sty.StrokeOpacity != nil {
			op *= sty.StrokeOpacity.At(rd.t)
		}
		width := 1.0
		if sty.StrokeWidth != nil {
			width = sty.StrokeWidth.At(rd.t)
		}
		rd.dasher.Clear()
		rd.dasher.SetColor(rasterx.ApplyOpacity(c, op))
		rd.dasher.SetStroke(
			fixed.Int26_6(width*64), 4<<6, rasterx.RoundCap, rasterx.RoundCap,
			rasterx.RoundGap, rasterx.Round, nil, 0,
		)
		rd.path(rd.dasher, s)
		rd.dasher.Draw()
	}
}

// fillShape rasterizes a shape's outline filled with a single color,
// used for clip masks.
func (rd *Renderer) fillShape(img *image.RGBA, s shape.Shape, c stdcolor.NRGBA) {
	rd.filler.Clear()
	rd.filler.SetColor(c)
	rd.path(rd.filler, s)
	rd.filler.Draw()
}

// path feeds a shape's outline to a rasterx adder, flipping the
// y-axis so the canvas origin is at the bottom-left.
func (rd *Renderer) path(adder rasterx.Adder, s shape.Shape) {
	switch x := s.(type) {
	case *shape.Polygon:
		pts := shape.PointsAt(x.Points, rd.t)
		adder.Start(rd.fixed(pts[0]))
		for _, p := range pts[1:] {
			adder.Line(rd.fixed(p))
		}
		adder.Stop(true)
	case *shape.Line:
		pts := shape.PointsAt(x.Points, rd.t)
		adder.Start(rd.fixed(pts[0]))
		for _, p := range pts[1:] {
			adder.Line(rd.fixed(p))
		}
		adder.Stop(false)
	case *shape.Spline:
		pts := shape.PointsAt(x.Points, rd.t)
		if len(pts) < 2 {
			return
		}
		start, segs := shape.CubicPath(pts, x.Smoothing, x.Circular)
		adder.Start(rd.fixed(start))
		for _, seg := range segs {
			adder.CubeBezier(rd.fixed(seg.C1), rd.fixed(seg.C2), rd.fixed(seg.To))
		}
		adder.Stop(x.Circular)
	case *shape.Circle:
		rd.circle(adder, x.C.At(rd.t), x.R.At(rd.t))
	}
}

// circle approximates a circle with four cubic Bezier arcs.
func (rd *Renderer) circle(adder rasterx.Adder, c geom.Point, r float64) {
	const k = 0.5519150244935105707435627
	adder.Start(rd.fixedXY(c.X+r, c.Y))
	arcs := [][6]float64{
		{c.X + r, c.Y + k*r, c.X + k*r, c.Y + r, c.X, c.Y + r},
		{c.X - k*r, c.Y + r, c.X - r, c.Y + k*r, c.X - r, c.Y},
		{c.X - r, c.Y - k*r, c.X - k*r, c.Y - r, c.X, c.Y - r},
		{c.X + k*r, c.Y - r, c.X + r, c.Y - k*r, c.X + r, c.Y},
	}
	for _, a := range arcs {
		adder.CubeBezier(rd.fixedXY(a[0], a[1]), rd.fixedXY(a[2], a[3]), rd.fixedXY(a[4], a[5]))
	}
	adder.Stop(true)
}

// drawRaster blits a bitmap whose first row belongs at the bottom.
func (rd *Renderer) drawRaster(img *image.RGBA, r *shape.Raster) {
	b := r.Img.Bounds()
	for row := 0; row < b.Dy(); row++ {
		for col := 0; col < b.Dx(); col++ {
			x := int(r.X) + col
			y := rd.h - 1 - (int(r.Y) + row)
			if x < 0 || x >= rd.w || y < 0 || y >= rd.h {
				continue
			}
			img.Set(x, y, r.Img.At(b.Min.X+col, b.Min.Y+row))
		}
	}
}

func (rd *Renderer) fixed(p geom.Point) fixed.Point26_6 {
	return rd.fixedXY(p.X, p.Y)
}

func (rd *Renderer) fixedXY(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6((float64(rd.h) - y) * 64),
	}
}

func styleOf(s shape.Shape) *shape.Style {
	switch x := s.(type) {
	case *shape.Polygon:
		return &x.Style
	case *shape.Spline:
		return &x.Style
	case *shape.Line:
		return &x.Style
	case *shape.Circle:
		return &x.Style
	}
	return nil
}

// resolved applies the same defaulting rules as the SVG writer:
// unfilled closed shapes get a black outline, lines default to a black
// stroke, and a Match stroke copies the fill.
func resolved(s shape.Shape, sty *shape.Style) (fill, stroke shape.Pattern) {
	fill, stroke = sty.Fill, sty.Stroke
	if _, isLine := s.(*shape.Line); isLine {
		fill = nil
		if stroke == nil {
			stroke = shape.Plain("black")
		}
	} else if fill == nil {
		fill = shape.None
		if stroke == nil {
			stroke = shape.Plain("black")
		}
	}
	if stroke == shape.Match {
		stroke = fill
	}
	return fill, stroke
}

// patternColor resolves a pattern to a concrete color at the current
// timepoint. ok is false for nil and "none".
func (rd *Renderer) patternColor(p shape.Pattern) (stdcolor.Color, bool) {
	switch x := p.(type) {
	case nil:
		return nil, false
	case color.Color:
		return x.NRGBA(rd.t), true
	}
	s := p.Hex(rd.t)
	if s == "" || s == "none" || s == "match" {
		return nil, false
	}
	if s[0] == '#' && len(s) == 7 {
		r, err1 := strconv.ParseUint(s[1:3], 16, 8)
		g, err2 := strconv.ParseUint(s[3:5], 16, 8)
		b, err3 := strconv.ParseUint(s[5:7], 16, 8)
		if err1 == nil && err2 == nil && err3 == nil {
			return stdcolor.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, true
		}
		return nil, false
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	return nil, false
}
