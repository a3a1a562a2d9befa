// Package tiling fills regions or the canvas with tiles and webs
// derived from evenly spaced sample points.
package tiling

import (
	"math"
	"math/rand"

	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/param"
	"github.com/daniel-munro/algoraphics/shape"
)

// TileFunc turns a set of sample points into tile shapes.
type TileFunc func(points []geom.Point) shape.List

// TileRegion fills a region with uncolored tiles clipped to the
// outline. tileSize is the approximate area of each tile, and
// regularity (one or higher) is the number of candidates per sample
// point; higher values give a more even spacing.
func TileRegion(outline shape.Shape, tileFun TileFunc, tileSize float64, regularity int) *shape.Group {
	bounds := shape.BoundingBox(outline).AddMargin(30)
	n := int(bounds.W() * bounds.H() / tileSize)
	points := geom.SpacedPoints(n, bounds, regularity)
	return shape.Clipped(tileFun(points), outline)
}

// TileCanvas fills a w x h canvas with uncolored tiles. The sample
// points extend beyond the canvas so that the outermost tiles bleed
// off its edges.
func TileCanvas(w, h float64, tileFun TileFunc, tileSize float64, regularity int) shape.List {
	bounds := geom.Bounds{XMin: 0, YMin: 0, XMax: w, YMax: h}.AddMargin(30)
	n := int(bounds.W() * bounds.H() / tileSize)
	points := geom.SpacedPoints(n, bounds, regularity)
	return tileFun(points)
}

// VoronoiRegions returns the finite Voronoi cells of a set of points
// as polygons. Cells do not correspond one-to-one to input points
// because points on the periphery have no finite cell. Strokes are
// set to match the fill so that adjacent tiles leave no gaps.
func VoronoiRegions(points []geom.Point) shape.List {
	cells := geom.VoronoiCells(points)
	out := make(shape.List, 0, len(cells))
	for _, cell := range cells {
		out = append(out, &shape.Polygon{
			Points: shape.FromPoints(cell),
			Style:  shape.Style{Stroke: shape.Match, StrokeWidth: param.Num(0.3)},
		})
	}
	return out
}

// VoronoiEdges returns the finite edges of the Voronoi diagram of a
// set of points as lines.
func VoronoiEdges(points []geom.Point) shape.List {
	edges := geom.VoronoiEdges(points)
	out := make(shape.List, len(edges))
	for i, e := range edges {
		out[i] = shape.NewLine(shape.P(e[0]), shape.P(e[1]))
	}
	return out
}

// DelaunayRegions returns the Delaunay triangulation of a set of
// points as triangular polygons.
func DelaunayRegions(points []geom.Point) shape.List {
	tris := geom.Delaunay(points)
	out := make(shape.List, len(tris))
	for i, tri := range tris {
		out[i] = &shape.Polygon{
			Points: []shape.Pt{
				shape.P(points[tri[0]]), shape.P(points[tri[1]]), shape.P(points[tri[2]]),
			},
			Style: shape.Style{Stroke: shape.Match, StrokeWidth: param.Num(1)},
		}
	}
	return out
}

// DelaunayEdges returns the unique edges of the Delaunay
// triangulation of a set of points as lines.
func DelaunayEdges(points []geom.Point) shape.List {
	seen := make(map[[2]int]bool)
	var out shape.List
	for _, tri := range geom.Delaunay(points) {
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			if !seen[[2]int{a, b}] {
				seen[[2]int{a, b}] = true
				out = append(out, shape.NewLine(shape.P(points[a]), shape.P(points[b])))
			}
		}
	}
	return out
}

// NestedTriangles generates nested equilateral triangles. tip is the
// apex of the bounding triangle and height its height (negative for
// an upside-down triangle). minLevel is the level of the largest
// triangles drawn (0 being the bounding triangle itself) and maxLevel
// that of the smallest. Only upward-pointing triangles are drawn; the
// downward gaps between them show the background.
func NestedTriangles(tip geom.Point, height float64, minLevel, maxLevel int) shape.List {
	var triangles shape.List
	var process func(tip geom.Point, height float64, level int)
	process = func(tip geom.Point, height float64, level int) {
		b1 := geom.Pt(tip.X-height/math.Sqrt(3), tip.Y-height)
		b2 := geom.Pt(tip.X+height/math.Sqrt(3), tip.Y-height)
		if level < minLevel || (level < maxLevel && rand.Float64() < 0.75) {
			process(tip, height/2, level+1)
			process(geom.Midpoint(tip, b1), height/2, level+1)
			process(geom.Midpoint(tip, b2), height/2, level+1)
			process(geom.Pt(tip.X, tip.Y-height), -height/2, level+1)
		} else if height > 0 {
			triangles = append(triangles, &shape.Polygon{
				Points: []shape.Pt{shape.P(tip), shape.P(b1), shape.P(b2)},
			})
		}
	}
	process(tip, height, 0)
	return triangles
}

// FillNestedTriangles fills a region with a randomly oriented nested
// triangle pattern. fill colors the triangles and background colors
// the gaps between them; either may be nil to leave the default.
func FillNestedTriangles(outline shape.Shape, minLevel, maxLevel int, fill, background shape.Pattern) *shape.Group {
	rotation := rand.Float64() * 360
	bounds := shape.RotatedBoundingBox(outline, rotation).AddMargin(10)
	w := bounds.W()
	tip := geom.Pt(bounds.XMin+w/2, bounds.YMax+(w/2)*math.Sqrt(3))
	height := tip.Y - bounds.YMin

	triangles := NestedTriangles(tip, height, minLevel, maxLevel)
	shape.Rotate(triangles, rotation, geom.Pt(0, 0))
	triangles = shape.KeepShapesInside(triangles, outline)

	region := shape.Clipped(triangles, outline)
	if fill != nil {
		shape.SetFill(region.Members, fill)
	}
	if background != nil {
		shape.Background(region, background)
	}
	return region
}
