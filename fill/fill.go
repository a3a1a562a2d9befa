// Package fill fills region outlines with randomly placed objects:
// filaments, non-overlapping doodle tilings, and Ishihara-style spots.
package fill

import (
	"math"
	"math/rand"

	"github.com/daniel-munro/algoraphics/color"
	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/param"
	"github.com/daniel-munro/algoraphics/shape"
	"github.com/daniel-munro/algoraphics/structures"
)

// ObjectFunc generates one randomly placed object extending into the
// given bounds.
type ObjectFunc func(geom.Bounds) shape.Shape

// Region fills a region by iteratively placing randomly generated
// objects, keeping those that claim previously unclaimed space.
// minCoverage is the fraction of the region's area to fill before
// stopping, and maxTries, if positive, caps the number of objects
// generated (including discarded ones). Returns a group clipped to the
// outline, with completely hidden objects removed.
func Region(outline shape.Shape, objectFun ObjectFunc, minCoverage float64, maxTries int) *shape.Group {
	bounds := shape.BoundingBox(outline).AddMargin(10)
	region := shape.NewCover(bounds, 200)
	region.AddShape(outline)
	filled := shape.NewCover(bounds, 200)

	var objects shape.List
	covered := 0
	for tries := 0; maxTries <= 0 || tries < maxTries; tries++ {
		if float64(covered) >= minCoverage*float64(region.Count()) {
			break
		}
		obj := objectFun(bounds)
		if added := filled.AddShapeWithin(obj, region); added > 0 {
			objects = append(objects, obj)
			covered += added
		}
	}
	return shape.Clipped(shape.RemoveHidden(objects), outline)
}

// FilamentFill returns an object function that grows a filament from
// outside the region toward its center, for use with Region.
// directionDelta drives the filament's meandering, and each filament
// gets its own copy of the color, whose walk advances per segment.
func FilamentFill(directionDelta, width, segLength param.Param, c color.Color) ObjectFunc {
	return func(b geom.Bounds) shape.Shape {
		center := b.Center()
		r := geom.Distance(center, geom.Pt(b.XMax, b.YMax))
		start := geom.RandPointOnCircle(center, r)
		angle := geom.Deg(geom.Direction(start, center)) + rand.Float64()*120 - 60
		direction := param.NewDelta(param.Num(angle), param.Clone(directionDelta))
		n := int(2.2 * r / param.Mean(segLength))

		backbone := structures.Backbone(shape.P(start), direction, param.Clone(segLength), n)
		segs := structures.Filament(backbone, param.Clone(width))
		cc := c.Clone()
		out := make(shape.List, len(segs))
		for i, seg := range segs {
			seg.Style.Fill = shape.Plain(cc.Hex(i))
			out[i] = seg
		}
		return out
	}
}

// A Doodle generates copies of a small drawing along with the boolean
// grid footprint they occupy, so that tilings can pack them without
// overlap. Each doodle can be placed in 8 orientations (4 rotations,
// optionally flipped); orientations that no longer fit anywhere are
// retired.
type Doodle struct {
	fn           func() shape.Shape
	fp           [][]bool
	nCells       int
	orientations [8]bool
}

// NewDoodle creates a doodle generator. fn draws the doodle with its
// footprint's bottom-left cell spanning (0, 0) to (1, 1). Row 0 of
// footprint corresponds to the top row of the doodle.
func NewDoodle(fn func() shape.Shape, footprint [][]bool) *Doodle {
	fp := make([][]bool, len(footprint))
	n := 0
	for i, row := range footprint {
		// Reverse the rows so that row 0 is the bottom.
		fp[len(footprint)-1-i] = row
		for _, b := range row {
			if b {
				n++
			}
		}
	}
	d := &Doodle{fn: fn, fp: fp, nCells: n}
	for i := range d.orientations {
		d.orientations[i] = true
	}
	return d
}

func rot90cw(m [][]bool) [][]bool {
	rows, cols := len(m), len(m[0])
	out := make([][]bool, cols)
	for i := range out {
		out[i] = make([]bool, rows)
		for j := range out[i] {
			out[i][j] = m[rows-1-j][i]
		}
	}
	return out
}

func transposed(m [][]bool) [][]bool {
	rows, cols := len(m), len(m[0])
	out := make([][]bool, cols)
	for i := range out {
		out[i] = make([]bool, rows)
		for j := range out[i] {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Footprint returns the doodle's footprint in a given orientation
// (0 to 7).
func (d *Doodle) Footprint(orientation int) [][]bool {
	oriented := d.fp
	// Rotate in the same direction as the shapes.
	for i := 0; i < orientation%4; i++ {
		oriented = rot90cw(oriented)
	}
	if orientation > 3 {
		oriented = transposed(oriented)
	}
	return oriented
}

// Oriented draws the doodle in a given orientation (0 to 7).
func (d *Doodle) Oriented(orientation int) shape.Shape {
	rows, cols := len(d.fp), len(d.fp[0])
	x := d.fn()
	rotate := orientation % 4
	shape.Rotate(x, float64(rotate)*90, geom.Pt(0, 0))
	switch rotate {
	case 1:
		shape.Translate(x, float64(rows), 0)
	case 2:
		shape.Translate(x, float64(cols), float64(rows))
	case 3:
		shape.Translate(x, 0, float64(cols))
	}
	if orientation > 3 {
		shape.Scale(x, 1, -1)
		shape.Rotate(x, 90, geom.Pt(0, 0))
	}
	return x
}

// doodleFits reports whether the footprint fits at (r, c) without
// overlapping occupied cells.
func doodleFits(grid [][]bool, r, c int, fp [][]bool) bool {
	if r+len(fp) > len(grid) || c+len(fp[0]) > len(grid[0]) {
		return false
	}
	for i, row := range fp {
		for j, b := range row {
			if b && grid[r+i][c+j] {
				return false
			}
		}
	}
	return true
}

func placeDoodle(grid [][]bool, r, c int, fp [][]bool) {
	for i, row := range fp {
		for j, b := range row {
			if b {
				grid[r+i][c+j] = true
			}
		}
	}
}

func nextCell(r, c, rows, cols int) (int, int) {
	c++
	if c == cols {
		c = 0
		r++
		if r == rows {
			r = 0
		}
	}
	return r, c
}

// GridWrappingPaper tiles a rows x cols grid with non-overlapping
// doodles. spacing is the cell width and start the grid's bottom-left
// point. Doodles are chosen with probability proportional to their
// footprint size; orientations of a doodle that fit nowhere are
// retired, and the tiling stops when the grid is full or every doodle
// is exhausted.
func GridWrappingPaper(rows, cols int, spacing float64, start geom.Point, doodles []*Doodle) shape.List {
	remaining := append([]*Doodle{}, doodles...)

	// Extra cells on each side let the tiling fully cover the grid.
	margin := 0
	for _, d := range remaining {
		fp := d.Footprint(0)
		if len(fp) > margin+1 {
			margin = len(fp) - 1
		}
		if len(fp[0]) > margin+1 {
			margin = len(fp[0]) - 1
		}
	}
	occupied := make([][]bool, rows+2*margin)
	for i := range occupied {
		occupied[i] = make([]bool, cols+2*margin)
	}
	open := (rows + 2*margin) * (cols + 2*margin)

	var shapes shape.List
	for open > 0 && len(remaining) > 0 {
		// Choose among the remaining doodles weighted by size.
		total := 0
		for _, d := range remaining {
			total += d.nCells
		}
		pick := rand.Intn(total)
		o := 0
		for pick >= remaining[o].nCells {
			pick -= remaining[o].nCells
			o++
		}
		doodle := remaining[o]

		var avail []int
		for i, ok := range doodle.orientations {
			if ok {
				avail = append(avail, i)
			}
		}
		orientation := avail[rand.Intn(len(avail))]
		fp := doodle.Footprint(orientation)

		// Walk the grid from a random cell looking for open space.
		rStart := rand.Intn(margin + rows)
		cStart := rand.Intn(margin + cols)
		r, c := rStart, cStart
		for {
			if doodleFits(occupied, r, c, fp) {
				placeDoodle(occupied, r, c, fp)
				open -= doodle.nCells
				s := doodle.Oriented(orientation)
				shape.Translate(s, float64(c), float64(r))
				shapes = append(shapes, s)
				break
			}
			r, c = nextCell(r, c, margin+rows, margin+cols)
			if r == rStart && c == cStart {
				// This orientation fits nowhere.
				doodle.orientations[orientation] = false
				if len(avail) == 1 {
					remaining = append(remaining[:o], remaining[o+1:]...)
				}
				break
			}
		}
	}

	shape.Translate(shapes, -float64(margin), -float64(margin))
	shape.Scale(shapes, spacing, spacing)
	shape.Translate(shapes, start.X, start.Y)
	return shapes
}

// WrappingPaper fills a region with a tiling of non-overlapping
// doodles, clipped to the outline. If rotate is true the grid is
// placed in a random orientation.
func WrappingPaper(outline shape.Shape, spacing float64, doodles []*Doodle, rotate bool) *shape.Group {
	var bounds geom.Bounds
	var rotation float64
	if rotate {
		rotation = rand.Float64() * 90
		bounds = shape.RotatedBoundingBox(outline, rotation)
	} else {
		bounds = shape.BoundingBox(outline)
	}

	rows := int(math.Ceil(bounds.H() / spacing))
	cols := int(math.Ceil(bounds.W() / spacing))
	fill := GridWrappingPaper(rows, cols, spacing, geom.Pt(bounds.XMin, bounds.YMin), doodles)

	if rotate {
		shape.Rotate(fill, rotation, geom.Pt(0, 0))
	}
	fill = shape.KeepShapesInside(fill, outline)
	return shape.Clipped(fill, outline)
}

// Spots fills a region with randomly sized spots reminiscent of
// Ishihara color blindness tests. The spots are not completely
// non-overlapping, but overlaps are avoided by spacing out their
// centers; radii shrink as the region fills in.
func Spots(outline shape.Shape, spacing float64) shape.List {
	bounds := shape.BoundingBox(outline)
	n := int(bounds.W()*bounds.H()/(spacing*spacing)) + 1
	points := geom.SpacedPoints(n, bounds, 10)
	points = shape.KeepPointsInside(points, outline)
	if len(points) == 0 {
		points = shape.SamplePointsIn(outline, 1)
	}
	spots := make(shape.List, len(points))
	for i, pt := range points {
		r := (1 - float64(i)/float64(len(points))) * spacing
		spots[i] = &shape.Circle{C: shape.P(pt), R: param.Num(r)}
	}
	return spots
}
