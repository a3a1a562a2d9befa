package svg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"math/rand"
	"strconv"
	"strings"

	"github.com/daniel-munro/algoraphics/shape"
)

// String creates an SVG document for a collection of objects. Objects
// are placed onto the canvas in drawing order. t selects the timepoint
// for dynamic shapes.
func String(objects shape.List, w, h float64, t int) string {
	wr := &writer{t: t}
	var body strings.Builder
	for _, obj := range shape.Flatten(objects) {
		wr.shape(&body, obj)
	}

	var out strings.Builder
	out.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" `)
	out.WriteString(`xmlns:xlink="http://www.w3.org/1999/xlink" `)
	fmt.Fprintf(&out, "width=\"%s\" height=\"%s\">\n", num(w), num(h))
	out.WriteString("<defs>\n")
	for _, def := range wr.defs {
		out.WriteString(def)
	}
	for i, f := range wr.filters {
		out.WriteString(filterDef(i, f))
	}
	out.WriteString("</defs>\n")
	// Flip the y-axis so zero is at the bottom.
	fmt.Fprintf(&out, "<g transform=\"translate(0, %s) scale(1, -1)\">\n", num(h))
	out.WriteString(body.String())
	out.WriteString("</g>\n</svg>\n")
	return out.String()
}

type writer struct {
	t       int
	defs    []string
	filters []shape.Filter
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (wr *writer) shape(out *strings.Builder, s shape.Shape) {
	switch x := s.(type) {
	case *shape.Group:
		wr.group(out, x)
	case *shape.Polygon:
		pts := shape.PointsAt(x.Points, wr.t)
		out.WriteString(`<polygon points="`)
		for i, p := range pts {
			if i > 0 {
				out.WriteByte(' ')
			}
			out.WriteString(num(p.X) + "," + num(p.Y))
		}
		fmt.Fprintf(out, "\" %s/>\n", wr.style(&x.Style, true))
	case *shape.Spline:
		pts := shape.PointsAt(x.Points, wr.t)
		if len(pts) < 2 {
			return
		}
		start, segs := shape.CubicPath(pts, x.Smoothing, x.Circular)
		var d strings.Builder
		d.WriteString("M " + num(start.X) + " " + num(start.Y))
		for _, seg := range segs {
			if seg.Smooth {
				d.WriteString(" S " + num(seg.C2.X) + " " + num(seg.C2.Y))
			} else {
				d.WriteString(" C " + num(seg.C1.X) + " " + num(seg.C1.Y))
				d.WriteString(" " + num(seg.C2.X) + " " + num(seg.C2.Y))
			}
			d.WriteString(" " + num(seg.To.X) + " " + num(seg.To.Y))
		}
		fmt.Fprintf(out, "<path d=\"%s\" %s/>\n", d.String(), wr.style(&x.Style, true))
	case *shape.Line:
		pts := shape.PointsAt(x.Points, wr.t)
		sty := wr.lineStyle(&x.Style)
		if len(pts) == 2 {
			fmt.Fprintf(out, "<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" %s/>\n",
				num(pts[0].X), num(pts[0].Y), num(pts[1].X), num(pts[1].Y), sty)
		} else {
			out.WriteString(`<polyline points="`)
			for i, p := range pts {
				if i > 0 {
					out.WriteByte(' ')
				}
				out.WriteString(num(p.X) + "," + num(p.Y))
			}
			fmt.Fprintf(out, "\" fill=\"none\" %s/>\n", sty)
		}
	case *shape.Circle:
		c := x.C.At(wr.t)
		fmt.Fprintf(out, "<circle cx=\"%s\" cy=\"%s\" r=\"%s\" %s/>\n",
			num(c.X), num(c.Y), num(x.R.At(wr.t)), wr.style(&x.Style, true))
	case *shape.Raster:
		wr.raster(out, x)
	}
}

func (wr *writer) group(out *strings.Builder, g *shape.Group) {
	out.WriteString("<g ")
	if len(g.Clip) > 0 {
		id := clipID()
		var clip strings.Builder
		clip.WriteString("<clipPath id=\"" + id + "\">\n")
		for _, o := range shape.Flatten(g.Clip) {
			wr.shape(&clip, o)
		}
		clip.WriteString("</clipPath>\n")
		wr.defs = append(wr.defs, clip.String())
		out.WriteString("clip-path=\"url(#" + id + ")\" ")
	}
	if g.Filter != nil {
		out.WriteString("filter=\"url(#" + wr.filterID(*g.Filter) + ")\" ")
	}
	out.WriteString(">\n")
	for _, o := range shape.Flatten(g.Members) {
		wr.shape(out, o)
	}
	out.WriteString("</g>\n")
}

func (wr *writer) raster(out *strings.Builder, r *shape.Raster) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.Img); err != nil {
		return
	}
	data := base64.StdEncoding.EncodeToString(buf.Bytes())
	b := r.Img.Bounds()
	// The surrounding y-flip also flips the bitmap, putting its first
	// row at the bottom.
	fmt.Fprintf(out,
		"<image x=\"%s\" y=\"%s\" width=\"%d\" height=\"%d\" xlink:href=\"data:image/png;base64,%s\"/>\n",
		num(r.X), num(r.Y), b.Dx(), b.Dy(), data)
}

// filterID returns the def id for a filter, reusing the definition of
// an identical filter seen earlier.
func (wr *writer) filterID(f shape.Filter) string {
	for i, g := range wr.filters {
		if g == f {
			return "filter" + strconv.Itoa(i)
		}
	}
	wr.filters = append(wr.filters, f)
	return "filter" + strconv.Itoa(len(wr.filters)-1)
}

func filterDef(i int, f shape.Filter) string {
	var out strings.Builder
	fmt.Fprintf(&out, "<filter id=\"filter%d\" x=\"-50%%\" y=\"-50%%\" width=\"200%%\" height=\"200%%\">\n", i)
	fmt.Fprintf(&out, "<feGaussianBlur in=\"SourceAlpha\" stdDeviation=\"%s\" result=\"blur\" />\n", num(f.Stdev))
	fmt.Fprintf(&out, "<feFlood flood-color=\"black\" flood-opacity=\"%s\" />\n", num(f.Darkness))
	out.WriteString("<feComposite in2=\"blur\" operator=\"in\" />\n")
	out.WriteString("<feMerge><feMergeNode /><feMergeNode in=\"SourceGraphic\" /></feMerge>\n")
	out.WriteString("</filter>\n")
	return out.String()
}

const clipLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func clipID() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = clipLetters[rand.Intn(len(clipLetters))]
	}
	return string(b)
}

// style builds the style attribute for a closed shape. Shapes with no
// fill default to an unfilled black outline.
func (wr *writer) style(s *shape.Style, closed bool) string {
	fill, stroke := s.Fill, s.Stroke
	if closed && fill == nil {
		fill = shape.None
		if stroke == nil {
			stroke = shape.Plain("black")
		}
	}
	if stroke == shape.Match {
		stroke = fill
	}
	return wr.styleAttr(s, fill, stroke)
}

// lineStyle builds the style attribute for a line, which defaults to a
// black stroke.
func (wr *writer) lineStyle(s *shape.Style) string {
	stroke := s.Stroke
	if stroke == nil {
		stroke = shape.Plain("black")
	}
	if stroke == shape.Match {
		stroke = s.Fill
	}
	return wr.styleAttr(s, s.Fill, stroke)
}

func (wr *writer) styleAttr(s *shape.Style, fill, stroke shape.Pattern) string {
	var props []string
	if fill != nil {
		props = append(props, "fill:"+fill.Hex(wr.t))
	}
	if stroke != nil {
		props = append(props, "stroke:"+stroke.Hex(wr.t))
	}
	if s.StrokeWidth != nil {
		props = append(props, "stroke-width:"+num(s.StrokeWidth.At(wr.t)))
	}
	if s.Opacity != nil {
		props = append(props, "opacity:"+num(s.Opacity.At(wr.t)))
	}
	if s.FillOpacity != nil {
		props = append(props, "fill-opacity:"+num(s.FillOpacity.At(wr.t)))
	}
	if s.StrokeOpacity != nil {
		props = append(props, "stroke-opacity:"+num(s.StrokeOpacity.At(wr.t)))
	}
	if s.Dash != "" {
		props = append(props, "stroke-dasharray:"+s.Dash)
	}
	return `style="` + strings.Join(props, ";") + `" `
}
